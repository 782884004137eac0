// Package pedersen implements the Pedersen commitment primitive used by the
// constraint compiler: commit(value, blinding) = value*G + blinding*H over
// bn254, with fixed default generators.
//
// For background on the Pedersen commitment scheme, see:
// https://rareskills.io/post/pedersen-commitment
package pedersen

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// PointSize is the byte length of a compressed commitment point. Wire
// formats built on top rely on it.
const PointSize = 32

// check that the curve's compressed encoding matches PointSize
var _ = func() [PointSize]byte { var p bn254.G1Affine; return p.Bytes() }()

// CompressedPoint is the canonical 32-byte form of a commitment point.
type CompressedPoint [PointSize]byte

// Commit returns value*G + blinding*H using the default generators.
func Commit(value, blinding fr.Element) bn254.G1Affine {
	var vG, rH, res bn254.G1Affine
	vG.ScalarMultiplication(&gens.G, value.BigInt(new(big.Int)))
	rH.ScalarMultiplication(&gens.H, blinding.BigInt(new(big.Int)))
	res.Add(&vG, &rH)
	return res
}

// CommitCompressed returns the compressed form of Commit.
func CommitCompressed(value, blinding fr.Element) CompressedPoint {
	p := Commit(value, blinding)
	return p.Bytes()
}

// Decompress parses a compressed point. It errs on encodings that are not
// points of the curve subgroup.
func Decompress(c CompressedPoint) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	_, err := p.SetBytes(c[:])
	return p, err
}

// The default generator parameters. G is the curve generator; H is derived
// by hashing to the curve so that its discrete log relative to G is unknown.
var gens = func() struct{ G, H bn254.G1Affine } {
	_, _, g, _ := bn254.Generators()
	h, err := bn254.HashToG1([]byte("slingshot.pedersen.H"), []byte("slingshot.pedersen.domain"))
	if err != nil {
		panic(err)
	}
	return struct{ G, H bn254.G1Affine }{G: g, H: h}
}()
