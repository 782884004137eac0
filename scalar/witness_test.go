package scalar

import (
	"math"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestIntegerArithmeticStaysInteger(t *testing.T) {
	a := FromInt(20)
	b := FromInt(-3)

	require.Equal(t, "17", a.Add(b).String())
	require.Equal(t, "-60", a.Mul(b).String())
	require.Equal(t, "23", a.Sub(b).String())
	require.Equal(t, "-20", a.Neg().String())
}

func TestOverflowPromotesToScalar(t *testing.T) {
	a := FromInt(math.MaxInt64)
	b := FromInt(math.MaxInt64)

	sum := a.Add(b)
	var want fr.Element
	want.SetBigInt(new(big.Int).Add(
		big.NewInt(math.MaxInt64),
		big.NewInt(math.MaxInt64),
	))
	got := sum.ToElement()
	require.True(t, got.Equal(&want))

	prod := a.Mul(b)
	want.SetBigInt(new(big.Int).Mul(
		big.NewInt(math.MaxInt64),
		big.NewInt(math.MaxInt64),
	))
	got = prod.ToElement()
	require.True(t, got.Equal(&want))
}

func TestNegMinInt64Promotes(t *testing.T) {
	n := FromInt(math.MinInt64).Neg()
	var want fr.Element
	want.SetBigInt(new(big.Int).Neg(big.NewInt(math.MinInt64)))
	got := n.ToElement()
	require.True(t, got.Equal(&want))
}

func TestNegativeIntegerToElement(t *testing.T) {
	var want fr.Element
	want.SetUint64(5)
	want.Neg(&want)
	got := FromInt(-5).ToElement()
	require.True(t, got.Equal(&want))
}

func TestEqualAcrossRepresentations(t *testing.T) {
	var e fr.Element
	e.SetUint64(42)
	require.True(t, FromInt(42).Equal(FromElement(e)))
	require.False(t, FromInt(43).Equal(FromElement(e)))
	require.True(t, FromInt(0).IsZero())
	require.True(t, FromElement(fr.Element{}).IsZero())
}

func TestOptionPropagatesUnknown(t *testing.T) {
	k := KnownInt(7)
	u := Unknown()

	require.True(t, k.IsKnown())
	require.False(t, u.IsKnown())

	require.False(t, k.Add(u).IsKnown())
	require.False(t, u.Mul(k).IsKnown())
	require.False(t, u.Neg().IsKnown())
	require.False(t, k.Sub(u).IsKnown())

	w, ok := k.Add(KnownInt(3)).Witness()
	require.True(t, ok)
	require.Equal(t, "10", w.String())

	w, ok = k.Mul(KnownInt(3)).Witness()
	require.True(t, ok)
	require.Equal(t, "21", w.String())
}
