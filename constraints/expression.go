package constraints

import (
	"github.com/decentralisedkev/slingshot/r1cs"
	"github.com/decentralisedkev/slingshot/scalar"
)

// Expression is a linear combination of committed wires, gate wires and
// constants. Add and Neg are pure; Multiply allocates a multiplication gate
// only when both operands are non-constant, so constant folding never
// touches the circuit.
type Expression interface {
	// Add returns e + rhs. Pure: no gates are allocated.
	Add(rhs Expression) Expression
	// Neg returns -e. Pure: no gates are allocated.
	Neg() Expression
	// Multiply returns e * rhs, allocating exactly one multiplier when
	// both operands are linear combinations and none otherwise.
	Multiply(rhs Expression, cs r1cs.ConstraintSystem) (Expression, error)

	// toLC lowers the expression to an engine linear combination.
	toLC() r1cs.LinearCombination
	// eval returns the secret assignment, Unknown when any underlying
	// witness is missing.
	eval() scalar.Option
}

// Constant is a pure number with no circuit presence.
type Constant struct {
	value scalar.Witness
}

// LinearCombination is a sequence of scaled wires plus the derived secret
// assignment, which is Known iff every term's secret is known. An empty
// term list means zero but is not canonicalized to a Constant; callers must
// not rely on representation-level equality.
type LinearCombination struct {
	terms      r1cs.LinearCombination
	assignment scalar.Option
}

// NewConstant lifts a witness value to a constant expression.
func NewConstant(value scalar.Witness) Expression {
	return Constant{value: value}
}

// NewConstantInt lifts an integer to a constant expression.
func NewConstantInt(i int64) Expression {
	return NewConstant(scalar.FromInt(i))
}

func (c Constant) toLC() r1cs.LinearCombination {
	return r1cs.FromConstant(c.value.ToElement())
}

func (c Constant) eval() scalar.Option {
	return scalar.Known(c.value)
}

func (lc LinearCombination) toLC() r1cs.LinearCombination {
	return lc.terms
}

func (lc LinearCombination) eval() scalar.Option {
	return lc.assignment
}

// Add returns c + rhs.
func (c Constant) Add(rhs Expression) Expression {
	switch r := rhs.(type) {
	case Constant:
		return Constant{value: c.value.Add(r.value)}
	case LinearCombination:
		// the constant becomes an ordinary term on the reserved one-wire
		terms := make(r1cs.LinearCombination, 0, len(r.terms)+1)
		terms = append(terms, r1cs.FromConstant(c.value.ToElement())...)
		terms = append(terms, r.terms...)
		return LinearCombination{
			terms:      terms,
			assignment: scalar.Known(c.value).Add(r.assignment),
		}
	default:
		panic("constraints: unknown expression type")
	}
}

// Add returns lc + rhs.
func (lc LinearCombination) Add(rhs Expression) Expression {
	switch r := rhs.(type) {
	case Constant:
		return LinearCombination{
			terms:      lc.terms.Add(r1cs.FromConstant(r.value.ToElement())),
			assignment: lc.assignment.Add(scalar.Known(r.value)),
		}
	case LinearCombination:
		return LinearCombination{
			terms:      lc.terms.Add(r.terms),
			assignment: lc.assignment.Add(r.assignment),
		}
	default:
		panic("constraints: unknown expression type")
	}
}

// Neg returns -c.
func (c Constant) Neg() Expression {
	return Constant{value: c.value.Neg()}
}

// Neg returns -lc.
func (lc LinearCombination) Neg() Expression {
	return LinearCombination{
		terms:      lc.terms.Neg(),
		assignment: lc.assignment.Neg(),
	}
}

// Multiply returns c * rhs. Constant*Constant folds arithmetically;
// Constant*LinearCombination scales coefficients. No gate either way.
func (c Constant) Multiply(rhs Expression, cs r1cs.ConstraintSystem) (Expression, error) {
	switch r := rhs.(type) {
	case Constant:
		return Constant{value: c.value.Mul(r.value)}, nil
	case LinearCombination:
		return scaleLinear(r, c.value), nil
	default:
		panic("constraints: unknown expression type")
	}
}

// Multiply returns lc * rhs. The LinearCombination*LinearCombination case
// allocates exactly one multiplier, feeding both combinations as its left
// and right wires, and returns the output wire.
func (lc LinearCombination) Multiply(rhs Expression, cs r1cs.ConstraintSystem) (Expression, error) {
	switch r := rhs.(type) {
	case Constant:
		return scaleLinear(lc, r.value), nil
	case LinearCombination:
		_, _, o, err := cs.Multiply(lc.terms, r.terms)
		if err != nil {
			return nil, err
		}
		return LinearCombination{
			terms:      r1cs.FromVariable(o),
			assignment: lc.assignment.Mul(r.assignment),
		}, nil
	default:
		panic("constraints: unknown expression type")
	}
}

func scaleLinear(lc LinearCombination, by scalar.Witness) LinearCombination {
	return LinearCombination{
		terms:      lc.terms.MulScalar(by.ToElement()),
		assignment: lc.assignment.Mul(scalar.Known(by)),
	}
}
