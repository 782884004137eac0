package r1cs

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"

	"github.com/decentralisedkev/slingshot/logger"
	"github.com/decentralisedkev/slingshot/pedersen"
	"github.com/decentralisedkev/slingshot/scalar"
)

// DefaultMaxMultipliers bounds gate allocation of a System unless
// overridden with WithMaxMultipliers.
const DefaultMaxMultipliers = 1 << 16

// System is a reference in-process engine. It records multipliers and
// linear constraints together with the prover's assignments (when known),
// binds committed points into a transcript, and runs deferred randomized
// callbacks when sealed. It builds and checks constraint systems; producing
// an actual proof is the job of a proof system behind the same interfaces.
type System struct {
	transcript *Transcript

	commitments []commitmentSlot
	muls        []multiplier
	constraints []LinearCombination
	deferred    []RandomizedCallback

	sealed         bool
	maxMultipliers int
	log            zerolog.Logger
}

type commitmentSlot struct {
	point pedersen.CompressedPoint
	value fr.Element
	known bool
}

// multiplier wire assignments; known is false on the verifier side.
type multiplier struct {
	left, right, out fr.Element
	known            bool
}

var (
	_ ConstraintSystem           = (*System)(nil)
	_ RandomizedConstraintSystem = randomizedSystem{}
)

// Option configures a System.
type Option func(*System)

// WithMaxMultipliers overrides the multiplier budget.
func WithMaxMultipliers(n int) Option {
	return func(s *System) { s.maxMultipliers = n }
}

// WithLogger overrides the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *System) { s.log = l }
}

// NewSystem returns an engine whose transcript is domain-separated by label.
func NewSystem(label string, opts ...Option) *System {
	s := &System{
		transcript:     NewTranscript(label),
		maxMultipliers: DefaultMaxMultipliers,
		log:            logger.Logger(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Commit implements ConstraintSystem.
func (s *System) Commit(point pedersen.CompressedPoint, value scalar.Option) (Variable, error) {
	if s.sealed {
		return Variable{}, ErrSealed
	}
	s.transcript.AppendMessage("commitment", point[:])
	slot := commitmentSlot{point: point}
	slot.value, slot.known = value.Element()
	s.commitments = append(s.commitments, slot)
	return Variable{Kind: KindCommitted, Index: len(s.commitments) - 1}, nil
}

// Multiply implements ConstraintSystem. The multiplier's assignment is
// derived by evaluating left and right over the wires recorded so far.
func (s *System) Multiply(left, right LinearCombination) (Variable, Variable, Variable, error) {
	lv, lok := s.Eval(left)
	rv, rok := s.Eval(right)
	var m multiplier
	if lok && rok {
		m.known = true
		m.left, m.right = lv, rv
		m.out.Mul(&lv, &rv)
	}
	l, r, o, err := s.appendMultiplier(m)
	if err != nil {
		return Variable{}, Variable{}, Variable{}, err
	}
	// wire the inputs: l == left, r == right
	if err := s.Constrain(FromVariable(l).Sub(left)); err != nil {
		return Variable{}, Variable{}, Variable{}, err
	}
	if err := s.Constrain(FromVariable(r).Sub(right)); err != nil {
		return Variable{}, Variable{}, Variable{}, err
	}
	return l, r, o, nil
}

// AllocateMultiplier implements ConstraintSystem. The three wires are left
// unconstrained.
func (s *System) AllocateMultiplier(assignment *MultiplierAssignment) (Variable, Variable, Variable, error) {
	var m multiplier
	if assignment != nil {
		m.known = true
		m.left, m.right = assignment.Left, assignment.Right
		m.out.Mul(&m.left, &m.right)
	}
	return s.appendMultiplier(m)
}

func (s *System) appendMultiplier(m multiplier) (Variable, Variable, Variable, error) {
	if len(s.muls) >= s.maxMultipliers {
		return Variable{}, Variable{}, Variable{}, fmt.Errorf("%w (max %d)", ErrTooManyMultipliers, s.maxMultipliers)
	}
	s.muls = append(s.muls, m)
	i := len(s.muls) - 1
	return Variable{Kind: KindMulLeft, Index: i},
		Variable{Kind: KindMulRight, Index: i},
		Variable{Kind: KindMulOutput, Index: i},
		nil
}

// Constrain implements ConstraintSystem.
func (s *System) Constrain(lc LinearCombination) error {
	s.constraints = append(s.constraints, lc.Clone())
	return nil
}

// SpecifyRandomizedConstraints implements ConstraintSystem.
func (s *System) SpecifyRandomizedConstraints(fn RandomizedCallback) error {
	if s.sealed {
		return ErrSealed
	}
	s.deferred = append(s.deferred, fn)
	return nil
}

// Seal closes the commitment transcript and runs the deferred callbacks in
// registration order. A failing callback leaves no gates or constraints of
// its own behind.
func (s *System) Seal() error {
	if s.sealed {
		return ErrSealed
	}
	s.sealed = true
	s.transcript.AppendMessage("seal", nil)
	for _, fn := range s.deferred {
		nbMuls, nbCons := len(s.muls), len(s.constraints)
		if err := fn(randomizedSystem{s}); err != nil {
			s.muls = s.muls[:nbMuls]
			s.constraints = s.constraints[:nbCons]
			return err
		}
	}
	s.deferred = nil
	s.log.Debug().
		Int("multipliers", len(s.muls)).
		Int("constraints", len(s.constraints)).
		Int("commitments", len(s.commitments)).
		Msg("sealed constraint system")
	return nil
}

// randomizedSystem is the post-seal view of a System. It is the only type
// implementing RandomizedConstraintSystem, and values of it exist only
// inside deferred callbacks.
type randomizedSystem struct {
	*System
}

// ChallengeScalar implements RandomizedConstraintSystem.
func (r randomizedSystem) ChallengeScalar(label string) fr.Element {
	return r.transcript.ChallengeScalar(label)
}

// Eval evaluates lc over the recorded wire assignments. The second return
// is false when any referenced wire has no assignment.
func (s *System) Eval(lc LinearCombination) (fr.Element, bool) {
	var sum, tmp fr.Element
	for _, t := range lc {
		v, ok := s.wireValue(t.Var)
		if !ok {
			return fr.Element{}, false
		}
		tmp.Mul(&t.Coeff, &v)
		sum.Add(&sum, &tmp)
	}
	return sum, true
}

func (s *System) wireValue(v Variable) (fr.Element, bool) {
	switch v.Kind {
	case KindOne:
		var one fr.Element
		one.SetOne()
		return one, true
	case KindCommitted:
		c := s.commitments[v.Index]
		return c.value, c.known
	case KindMulLeft:
		m := s.muls[v.Index]
		return m.left, m.known
	case KindMulRight:
		m := s.muls[v.Index]
		return m.right, m.known
	case KindMulOutput:
		m := s.muls[v.Index]
		return m.out, m.known
	default:
		panic(fmt.Sprintf("r1cs: unknown wire kind %d", v.Kind))
	}
}

// Satisfied checks every multiplier and linear constraint against the
// recorded assignments. It reports ErrUnknownAssignment when a wire needed
// by a constraint has no assignment and ErrUnsatisfied when a constraint
// does not hold. The system must be sealed first.
func (s *System) Satisfied() error {
	if !s.sealed {
		return ErrNotSealed
	}
	var tmp fr.Element
	for i, m := range s.muls {
		if !m.known {
			return fmt.Errorf("%w: multiplier %d", ErrUnknownAssignment, i)
		}
		tmp.Mul(&m.left, &m.right)
		if !tmp.Equal(&m.out) {
			return fmt.Errorf("%w: multiplier %d", ErrUnsatisfied, i)
		}
	}
	for i, lc := range s.constraints {
		v, ok := s.Eval(lc)
		if !ok {
			return fmt.Errorf("%w: constraint %d", ErrUnknownAssignment, i)
		}
		if !v.IsZero() {
			return fmt.Errorf("%w: constraint %d", ErrUnsatisfied, i)
		}
	}
	return nil
}

// NbMultipliers returns the number of allocated multipliers.
func (s *System) NbMultipliers() int { return len(s.muls) }

// NbConstraints returns the number of recorded linear constraints.
func (s *System) NbConstraints() int { return len(s.constraints) }

// NbCommitments returns the number of committed wires.
func (s *System) NbCommitments() int { return len(s.commitments) }
