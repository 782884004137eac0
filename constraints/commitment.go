// Package constraints implements the constraint compiler: commitments,
// variables, expressions and constraints, and their lowering into
// multiplication gates and linear constraints of an r1cs engine.
package constraints

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/decentralisedkev/slingshot/encoding"
	"github.com/decentralisedkev/slingshot/pedersen"
	"github.com/decentralisedkev/slingshot/scalar"
)

// Commitment is an open or closed Pedersen commitment. A closed commitment
// carries only the compressed point (the verifier's view); an open one also
// carries the secret value and blinding factor (the prover's view). Open and
// closed commitments to the same secret have the same point, which is the
// commitment's canonical public identity.
type Commitment struct {
	// open is nil for closed commitments.
	open  *CommitmentWitness
	point pedersen.CompressedPoint
}

// CommitmentWitness is the prover's opening: the committed value and its
// blinding factor.
type CommitmentWitness struct {
	value    scalar.Witness
	blinding fr.Element
}

// FromPoint returns a closed commitment around a compressed point.
func FromPoint(p pedersen.CompressedPoint) Commitment {
	return Commitment{point: p}
}

// Unblinded returns an open commitment with a zero blinding factor, for
// public constants.
func Unblinded(value scalar.Witness) Commitment {
	return Commitment{open: &CommitmentWitness{value: value}}
}

// Blinded returns an open commitment with a blinding factor drawn from
// crypto/rand.
func Blinded(value scalar.Witness) Commitment {
	var blinding fr.Element
	if _, err := blinding.SetRandom(); err != nil {
		// SetRandom fails only when crypto/rand does; a predictable
		// blinding would break hiding, so there is nothing to recover.
		panic(err)
	}
	return BlindedWithFactor(value, blinding)
}

// BlindedWithFactor returns an open commitment with a caller-supplied
// blinding factor, e.g. for homomorphic reuse.
func BlindedWithFactor(value scalar.Witness, blinding fr.Element) Commitment {
	return Commitment{open: &CommitmentWitness{value: value, blinding: blinding}}
}

// ToPoint returns the compressed commitment point.
func (c Commitment) ToPoint() pedersen.CompressedPoint {
	if c.open == nil {
		return c.point
	}
	return c.open.toPoint()
}

// SerializedLength returns the number of bytes Encode appends.
func (c Commitment) SerializedLength() int {
	return pedersen.PointSize
}

// Encode appends the canonical byte form of the commitment point.
func (c Commitment) Encode(buf *encoding.OutputBuf) {
	buf.AppendPoint(c.ToPoint())
}

// Witness returns the secret value and blinding factor of an open
// commitment. The last return is false for closed commitments.
func (c Commitment) Witness() (scalar.Witness, fr.Element, bool) {
	if c.open == nil {
		return scalar.Witness{}, fr.Element{}, false
	}
	return c.open.value, c.open.blinding, true
}

// Assignment returns the committed value without the blinding factor;
// Unknown for closed commitments.
func (c Commitment) Assignment() scalar.Option {
	if c.open == nil {
		return scalar.Unknown()
	}
	return scalar.Known(c.open.value)
}

func (w *CommitmentWitness) toPoint() pedersen.CompressedPoint {
	return pedersen.CommitCompressed(w.value.ToElement(), w.blinding)
}
