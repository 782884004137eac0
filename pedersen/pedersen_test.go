package pedersen

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestCommitDeterministic(t *testing.T) {
	var v, r fr.Element
	v.SetUint64(5)
	r.SetUint64(99)

	p1 := Commit(v, r)
	p2 := Commit(v, r)
	require.True(t, p1.Equal(&p2))
	require.Equal(t, [PointSize]byte(p1.Bytes()), [PointSize]byte(CommitCompressed(v, r)))
}

func TestCommitBindsValue(t *testing.T) {
	var v1, v2, r fr.Element
	v1.SetUint64(5)
	v2.SetUint64(6)

	p1 := Commit(v1, r)
	p2 := Commit(v2, r)
	require.False(t, p1.Equal(&p2))
}

func TestCommitHomomorphic(t *testing.T) {
	var a, b, r, s fr.Element
	a.SetUint64(11)
	b.SetUint64(31)
	r.SetUint64(7)
	s.SetUint64(13)

	var sumV, sumB fr.Element
	sumV.Add(&a, &b)
	sumB.Add(&r, &s)

	pa := Commit(a, r)
	pb := Commit(b, s)
	var sum bn254.G1Affine
	sum.Add(&pa, &pb)

	want := Commit(sumV, sumB)
	require.True(t, sum.Equal(&want))
}

func TestDecompressRoundTrip(t *testing.T) {
	var v, r fr.Element
	v.SetUint64(123)
	r.SetUint64(456)

	c := CommitCompressed(v, r)
	p, err := Decompress(c)
	require.NoError(t, err)
	want := Commit(v, r)
	require.True(t, p.Equal(&want))
}

func TestDecompressRejectsGarbage(t *testing.T) {
	var c CompressedPoint
	for i := range c {
		c[i] = 0xff
	}
	_, err := Decompress(c)
	require.Error(t, err)
}
