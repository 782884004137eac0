package constraints

import "github.com/decentralisedkev/slingshot/r1cs"

// Variable is a handle to a single commitment inside the constraint system.
// The indirection lets an interpreter refer to commitments by position and
// refresh their content (e.g. reblinding) without changing the handle's
// identity.
type Variable struct {
	c *Commitment
}

// NewVariable returns a handle owning the given commitment.
func NewVariable(c Commitment) Variable {
	return Variable{c: &c}
}

// Commitment returns the current commitment behind the handle.
func (v Variable) Commitment() Commitment {
	return *v.c
}

// Refresh replaces the commitment behind the handle. The handle's identity
// is unchanged: expressions already built from it keep their wires.
func (v Variable) Refresh(c Commitment) {
	*v.c = c
}

// Attach binds the commitment point into the engine's transcript and
// returns the committed wire as a one-term expression carrying the
// commitment's assignment (Unknown on the verifier side).
func (v Variable) Attach(cs r1cs.ConstraintSystem) (Expression, error) {
	wire, err := cs.Commit(v.c.ToPoint(), v.c.Assignment())
	if err != nil {
		return nil, err
	}
	return LinearCombination{
		terms:      r1cs.FromVariable(wire),
		assignment: v.c.Assignment(),
	}, nil
}
