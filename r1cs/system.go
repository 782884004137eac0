package r1cs

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/decentralisedkev/slingshot/pedersen"
	"github.com/decentralisedkev/slingshot/scalar"
)

var (
	// ErrTooManyMultipliers is returned when an allocation would exceed the
	// engine's multiplier budget.
	ErrTooManyMultipliers = errors.New("r1cs: multiplier budget exceeded")

	// ErrSealed is returned when the commitment transcript has been closed
	// and no further commitments or deferred callbacks may be registered.
	ErrSealed = errors.New("r1cs: system already sealed")

	// ErrNotSealed is returned when satisfaction is checked before the
	// deferred constraints have run.
	ErrNotSealed = errors.New("r1cs: system not sealed")

	// ErrUnknownAssignment is returned when satisfaction cannot be decided
	// because a wire has no assignment.
	ErrUnknownAssignment = errors.New("r1cs: unknown wire assignment")

	// ErrUnsatisfied is returned when a recorded constraint does not hold.
	ErrUnsatisfied = errors.New("r1cs: constraint not satisfied")
)

// MultiplierAssignment carries the prover's left/right input values for an
// unconstrained multiplier. The output is derived as Left*Right.
type MultiplierAssignment struct {
	Left, Right fr.Element
}

// RandomizedCallback is deferred work that runs once the commitment
// transcript is closed. It receives the only view of the system from which
// challenges can be drawn.
type RandomizedCallback func(RandomizedConstraintSystem) error

// ConstraintSystem is the capability the constraint compiler requires from
// an engine before the transcript is closed.
type ConstraintSystem interface {
	// Commit binds a commitment point into the transcript and returns the
	// committed wire. value carries the prover's opening; verifiers pass
	// scalar.Unknown().
	Commit(point pedersen.CompressedPoint, value scalar.Option) (Variable, error)

	// Multiply allocates one multiplier, constrains left and right to its
	// input wires, and returns the three wires.
	Multiply(left, right LinearCombination) (l, r, o Variable, err error)

	// AllocateMultiplier allocates one multiplier with unconstrained wires.
	// assignment supplies the prover's inputs and may be nil on the
	// verifier side.
	AllocateMultiplier(assignment *MultiplierAssignment) (l, r, o Variable, err error)

	// Constrain records lc == 0.
	Constrain(lc LinearCombination) error

	// SpecifyRandomizedConstraints defers fn until the transcript is
	// closed. Challenges drawn any earlier could be biased by a prover
	// choosing commitments after seeing them.
	SpecifyRandomizedConstraints(fn RandomizedCallback) error
}

// RandomizedConstraintSystem extends ConstraintSystem with challenge
// drawing. Values of this type are only handed to RandomizedCallbacks, so a
// challenge drawn before the transcript is closed is a compile-time error.
type RandomizedConstraintSystem interface {
	ConstraintSystem

	// ChallengeScalar derives a transcript-bound challenge under the given
	// domain label. Successive draws under the same label differ.
	ChallengeScalar(label string) fr.Element
}
