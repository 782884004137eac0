// Package r1cs defines the boundary between the constraint compiler and a
// rank-1 constraint system engine: wire handles, linear combinations over
// wires, the engine capability interfaces, and a reference in-process engine
// that records gates and constraints and checks their satisfaction.
package r1cs

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// VariableKind tags the class of a wire.
type VariableKind uint8

const (
	// KindOne is the reserved wire carrying the constant 1.
	KindOne VariableKind = iota
	// KindCommitted is a high-level wire backed by a Pedersen commitment.
	KindCommitted
	// KindMulLeft, KindMulRight and KindMulOutput are the three wires of a
	// multiplier; Index identifies the multiplier.
	KindMulLeft
	KindMulRight
	KindMulOutput
)

// Variable is a handle to a single wire of the constraint system.
type Variable struct {
	Kind  VariableKind
	Index int
}

// One returns the reserved constant-1 wire.
func One() Variable {
	return Variable{Kind: KindOne}
}

// Term is a wire scaled by a coefficient.
type Term struct {
	Var   Variable
	Coeff fr.Element
}

// LinearCombination is an ordered sequence of terms. Order is irrelevant to
// its meaning and terms over the same wire are not merged: an empty
// combination means zero, but combinations are never canonicalized, so
// callers must not rely on representation-level equality.
type LinearCombination []Term

// FromVariable returns the combination 1*v.
func FromVariable(v Variable) LinearCombination {
	var one fr.Element
	one.SetOne()
	return LinearCombination{{Var: v, Coeff: one}}
}

// FromConstant returns the combination c*one-wire.
func FromConstant(c fr.Element) LinearCombination {
	return LinearCombination{{Var: One(), Coeff: c}}
}

// Clone returns a copy sharing no memory with lc.
func (lc LinearCombination) Clone() LinearCombination {
	res := make(LinearCombination, len(lc))
	copy(res, lc)
	return res
}

// Add returns lc + o as a fresh combination.
func (lc LinearCombination) Add(o LinearCombination) LinearCombination {
	res := make(LinearCombination, 0, len(lc)+len(o))
	res = append(res, lc...)
	res = append(res, o...)
	return res
}

// Sub returns lc - o as a fresh combination.
func (lc LinearCombination) Sub(o LinearCombination) LinearCombination {
	return lc.Add(o.Neg())
}

// Neg returns -lc as a fresh combination.
func (lc LinearCombination) Neg() LinearCombination {
	res := lc.Clone()
	for i := range res {
		res[i].Coeff.Neg(&res[i].Coeff)
	}
	return res
}

// MulScalar returns c*lc as a fresh combination.
func (lc LinearCombination) MulScalar(c fr.Element) LinearCombination {
	res := lc.Clone()
	for i := range res {
		res[i].Coeff.Mul(&res[i].Coeff, &c)
	}
	return res
}
