package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decentralisedkev/slingshot/r1cs"
	"github.com/decentralisedkev/slingshot/scalar"
)

// openExpr attaches a fresh open commitment to v and returns its expression.
func openExpr(t *testing.T, cs *r1cs.System, v int64) Expression {
	t.Helper()
	e, err := NewVariable(Blinded(scalar.FromInt(v))).Attach(cs)
	require.NoError(t, err)
	return e
}

// closedExpr attaches the verifier's view of a commitment to v.
func closedExpr(t *testing.T, cs *r1cs.System, v int64) Expression {
	t.Helper()
	e, err := NewVariable(FromPoint(Blinded(scalar.FromInt(v)).ToPoint())).Attach(cs)
	require.NoError(t, err)
	return e
}

func evalKnown(t *testing.T, e Expression) scalar.Witness {
	t.Helper()
	w, ok := e.eval().Witness()
	require.True(t, ok)
	return w
}

func TestMultiplicationGateMinimality(t *testing.T) {
	cs := r1cs.NewSystem("test")

	// Constant * Constant: no gate
	e, err := NewConstantInt(3).Multiply(NewConstantInt(4), cs)
	require.NoError(t, err)
	require.Equal(t, 0, cs.NbMultipliers())
	require.Equal(t, "12", evalKnown(t, e).String())

	// Constant * LinearCombination: no gate, coefficients scaled
	x := openExpr(t, cs, 5)
	e, err = NewConstantInt(3).Multiply(x, cs)
	require.NoError(t, err)
	require.Equal(t, 0, cs.NbMultipliers())
	require.Equal(t, "15", evalKnown(t, e).String())

	// LinearCombination * Constant: no gate
	e, err = x.Multiply(NewConstantInt(2), cs)
	require.NoError(t, err)
	require.Equal(t, 0, cs.NbMultipliers())
	require.Equal(t, "10", evalKnown(t, e).String())

	// LinearCombination * LinearCombination: exactly one gate
	y := openExpr(t, cs, 7)
	e, err = x.Multiply(y, cs)
	require.NoError(t, err)
	require.Equal(t, 1, cs.NbMultipliers())
	require.Equal(t, "35", evalKnown(t, e).String())
}

func TestAddAndNeg(t *testing.T) {
	cs := r1cs.NewSystem("test")
	x := openExpr(t, cs, 5)

	require.Equal(t, "7", evalKnown(t, x.Add(NewConstantInt(2))).String())
	require.Equal(t, "7", evalKnown(t, NewConstantInt(2).Add(x)).String())
	require.Equal(t, "-5", evalKnown(t, x.Neg()).String())
	require.Equal(t, "9", evalKnown(t, NewConstantInt(4).Add(NewConstantInt(5))).String())
	require.Equal(t, "-4", evalKnown(t, NewConstantInt(4).Neg()).String())

	y := openExpr(t, cs, 11)
	require.Equal(t, "16", evalKnown(t, x.Add(y)).String())

	// no gates were allocated by any of the above
	require.Equal(t, 0, cs.NbMultipliers())
}

func TestAssignmentMatchesEngineEvaluation(t *testing.T) {
	cs := r1cs.NewSystem("test")
	x := openExpr(t, cs, 5)
	y := openExpr(t, cs, 11)

	e, err := x.Add(y.Neg()).Add(NewConstantInt(3)).Multiply(y, cs)
	require.NoError(t, err)

	want := evalKnown(t, e).ToElement()
	got, ok := cs.Eval(e.toLC())
	require.True(t, ok)
	require.True(t, got.Equal(&want))
}

func TestUnknownAssignmentPropagation(t *testing.T) {
	cs := r1cs.NewSystem("test")
	x := closedExpr(t, cs, 5)
	y := openExpr(t, cs, 3)

	require.False(t, x.eval().IsKnown())
	require.False(t, x.Add(y).eval().IsKnown())
	require.False(t, x.Neg().eval().IsKnown())
	require.False(t, x.Add(NewConstantInt(1)).eval().IsKnown())

	e, err := NewConstantInt(2).Multiply(x, cs)
	require.NoError(t, err)
	require.False(t, e.eval().IsKnown())

	e, err = x.Multiply(y, cs)
	require.NoError(t, err)
	require.False(t, e.eval().IsKnown())

	// the structure is still built: one gate for the linear*linear case
	require.Equal(t, 1, cs.NbMultipliers())
}
