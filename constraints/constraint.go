package constraints

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/decentralisedkev/slingshot/r1cs"
	"github.com/decentralisedkev/slingshot/scalar"
)

// andChallengeLabel is the transcript domain for the challenge combining
// the two sides of a conjunction.
const andChallengeLabel = "slingshot.verify.and-challenge"

// DefaultMaxDepth bounds constraint-tree nesting in Verify. Flattening
// recursion and gate count both grow with depth, so over-deep trees from
// buggy or adversarial callers are rejected before touching the engine.
const DefaultMaxDepth = 64

// ErrDepthExceeded is returned when a constraint tree nests deeper than the
// configured maximum.
var ErrDepthExceeded = errors.New("constraints: maximum nesting depth exceeded")

// Constraint is a boolean-valued tree over expressions: an equality, or a
// conjunction, disjunction or negation of sub-constraints. Truth is
// represented as "flattens to zero". A Constraint stores no witness; the
// secret assignment is derived during flattening. Each compound node owns
// its children exclusively, and a Constraint is consumed by Verify rather
// than reused.
type Constraint interface {
	flatten(cs r1cs.RandomizedConstraintSystem, depth int) (r1cs.LinearCombination, scalar.Option, error)
}

// Eq constrains two expressions to be equal.
func Eq(left, right Expression) Constraint {
	return eqConstraint{left: left, right: right}
}

// And constrains both sub-constraints to hold.
func And(c1, c2 Constraint) Constraint {
	return andConstraint{c1: c1, c2: c2}
}

// Or constrains at least one sub-constraint to hold.
//
// The flattened result is the raw product wire: it is zero iff one side is
// zero, but it is not asserted to be 0/1. That is sound here because Verify
// only ever compares the final combination to zero; do not reuse the
// intermediate result as a boolean without adding a range assertion.
func Or(c1, c2 Constraint) Constraint {
	return orConstraint{c1: c1, c2: c2}
}

// Not constrains the sub-constraint to not hold.
func Not(c Constraint) Constraint {
	return notConstraint{c: c}
}

// Verify registers deferred work with the engine that flattens the
// constraint tree and records the result as one linear constraint equal to
// zero. The work runs only after all commitments of the proving round are
// transcript-bound, because And draws its combining challenge there.
// The constraint tree may nest up to DefaultMaxDepth levels.
func Verify(c Constraint, cs r1cs.ConstraintSystem) error {
	return VerifyWithDepth(c, cs, DefaultMaxDepth)
}

// VerifyWithDepth is Verify with a caller-chosen nesting bound.
func VerifyWithDepth(c Constraint, cs r1cs.ConstraintSystem, maxDepth int) error {
	return cs.SpecifyRandomizedConstraints(func(rcs r1cs.RandomizedConstraintSystem) error {
		lc, _, err := c.flatten(rcs, maxDepth)
		if err != nil {
			return err
		}
		return rcs.Constrain(lc)
	})
}

type eqConstraint struct {
	left, right Expression
}

// flatten lowers e1 == e2 to e1 - e2, which the caller constrains to zero.
// No gate is needed.
func (c eqConstraint) flatten(cs r1cs.RandomizedConstraintSystem, depth int) (r1cs.LinearCombination, scalar.Option, error) {
	if depth <= 0 {
		return nil, scalar.Unknown(), ErrDepthExceeded
	}
	lc := c.left.toLC().Sub(c.right.toLC())
	assignment := c.left.eval().Sub(c.right.eval())
	return lc, assignment, nil
}

type andConstraint struct {
	c1, c2 Constraint
}

// flatten lowers a ∧ b to a + z*b for a transcript challenge z. For a
// random z, a + z*b = 0 implies a = 0 and b = 0 with overwhelming
// probability, so the conjunction costs one challenge and no gate.
func (c andConstraint) flatten(cs r1cs.RandomizedConstraintSystem, depth int) (r1cs.LinearCombination, scalar.Option, error) {
	if depth <= 0 {
		return nil, scalar.Unknown(), ErrDepthExceeded
	}
	a, aAssg, err := c.c1.flatten(cs, depth-1)
	if err != nil {
		return nil, scalar.Unknown(), err
	}
	b, bAssg, err := c.c2.flatten(cs, depth-1)
	if err != nil {
		return nil, scalar.Unknown(), err
	}
	z := cs.ChallengeScalar(andChallengeLabel)
	assignment := aAssg.Add(bAssg.Mul(scalar.Known(scalar.FromElement(z))))
	return a.Add(b.MulScalar(z)), assignment, nil
}

type orConstraint struct {
	c1, c2 Constraint
}

// flatten lowers a ∨ b to the output wire of one multiplier computing a*b:
// in a field without zero divisors, a*b = 0 iff a = 0 or b = 0.
func (c orConstraint) flatten(cs r1cs.RandomizedConstraintSystem, depth int) (r1cs.LinearCombination, scalar.Option, error) {
	if depth <= 0 {
		return nil, scalar.Unknown(), ErrDepthExceeded
	}
	a, aAssg, err := c.c1.flatten(cs, depth-1)
	if err != nil {
		return nil, scalar.Unknown(), err
	}
	b, bAssg, err := c.c2.flatten(cs, depth-1)
	if err != nil {
		return nil, scalar.Unknown(), err
	}
	_, _, o, err := cs.Multiply(a, b)
	if err != nil {
		return nil, scalar.Unknown(), err
	}
	return r1cs.FromVariable(o), aAssg.Mul(bAssg), nil
}

type notConstraint struct {
	c Constraint
}

// flatten lowers ¬x to an auxiliary boolean y with y = 1 iff x = 0, using
// two multipliers and four linear constraints:
//
//	x*y = 0      forces y = 0 whenever x != 0
//	x*w = 1 - y  forces y = 1 whenever x = 0
//
// w is a free helper wire (the inverse of x when x != 0, arbitrary
// otherwise) and is deliberately left unconstrained.
func (c notConstraint) flatten(cs r1cs.RandomizedConstraintSystem, depth int) (r1cs.LinearCombination, scalar.Option, error) {
	if depth <= 0 {
		return nil, scalar.Unknown(), ErrDepthExceeded
	}
	x, xAssg, err := c.c.flatten(cs, depth-1)
	if err != nil {
		return nil, scalar.Unknown(), err
	}

	// Wire assignments for the two multipliers. The selection of y and w
	// is branch-free in the bit pattern of the secret x: branching on a
	// secret is a timing side channel.
	var xyAssg, xwAssg *r1cs.MultiplierAssignment
	yAssg := scalar.Unknown()
	if xe, ok := xAssg.Element(); ok {
		mask := isZeroMask(&xe)
		var zero, one, y, w fr.Element
		one.SetOne()
		y.Select(mask, &zero, &one)
		w.Select(mask, &xe, &one)
		w.Inverse(&w)
		xyAssg = &r1cs.MultiplierAssignment{Left: xe, Right: y}
		xwAssg = &r1cs.MultiplierAssignment{Left: xe, Right: w}
		yAssg = scalar.Known(scalar.FromElement(y))
	}

	l1, r1, o1, err := cs.AllocateMultiplier(xyAssg)
	if err != nil {
		return nil, scalar.Unknown(), err
	}
	l2, _, o2, err := cs.AllocateMultiplier(xwAssg)
	if err != nil {
		return nil, scalar.Unknown(), err
	}

	// (1) l1 == x
	if err := cs.Constrain(r1cs.FromVariable(l1).Sub(x)); err != nil {
		return nil, scalar.Unknown(), err
	}
	// (2) l1 == l2, so both multipliers take x on the left
	if err := cs.Constrain(r1cs.FromVariable(l1).Sub(r1cs.FromVariable(l2))); err != nil {
		return nil, scalar.Unknown(), err
	}
	// (3) x*y == 0
	if err := cs.Constrain(r1cs.FromVariable(o1)); err != nil {
		return nil, scalar.Unknown(), err
	}
	// (4) x*w - 1 + y == 0, i.e. x*w == 1 - y
	var one fr.Element
	one.SetOne()
	lc := r1cs.FromVariable(o2).Sub(r1cs.FromConstant(one)).Add(r1cs.FromVariable(r1))
	if err := cs.Constrain(lc); err != nil {
		return nil, scalar.Unknown(), err
	}

	// the result is y itself: the right wire of the first multiplier
	return r1cs.FromVariable(r1), yAssg, nil
}

// isZeroMask returns 1 when x is zero and 0 otherwise, without branching on
// the value.
func isZeroMask(x *fr.Element) int {
	var acc uint64
	for i := 0; i < len(x); i++ {
		acc |= x[i]
	}
	return int(1 - ((acc | -acc) >> 63))
}
