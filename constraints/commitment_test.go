package constraints

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/decentralisedkev/slingshot/encoding"
	"github.com/decentralisedkev/slingshot/pedersen"
	"github.com/decentralisedkev/slingshot/scalar"
)

func TestCommitmentRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("BlindedWithFactor(v,r).ToPoint() == commit(v,r) and Witness() recovers (v,r)", prop.ForAll(
		func(v int64, r uint64) bool {
			var blinding fr.Element
			blinding.SetUint64(r)
			c := BlindedWithFactor(scalar.FromInt(v), blinding)

			if c.ToPoint() != pedersen.CommitCompressed(scalar.FromInt(v).ToElement(), blinding) {
				return false
			}
			value, gotBlinding, ok := c.Witness()
			return ok && value.Equal(scalar.FromInt(v)) && gotBlinding.Equal(&blinding)
		},
		gen.Int64(),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestClosedCommitmentHidesWitness(t *testing.T) {
	open := Blinded(scalar.FromInt(42))
	closed := FromPoint(open.ToPoint())

	require.Equal(t, open.ToPoint(), closed.ToPoint())

	_, _, ok := closed.Witness()
	require.False(t, ok)
	require.False(t, closed.Assignment().IsKnown())

	_, _, ok = open.Witness()
	require.True(t, ok)
	require.True(t, open.Assignment().IsKnown())
}

func TestSerializedLength(t *testing.T) {
	var blinding fr.Element
	blinding.SetUint64(9)
	for _, c := range []Commitment{
		Unblinded(scalar.FromInt(1)),
		Blinded(scalar.FromInt(2)),
		BlindedWithFactor(scalar.FromInt(3), blinding),
		FromPoint(Unblinded(scalar.FromInt(4)).ToPoint()),
	} {
		require.Equal(t, 32, c.SerializedLength())

		var buf encoding.OutputBuf
		c.Encode(&buf)
		require.Len(t, buf.Bytes(), c.SerializedLength())
	}
}

func TestUnblindedEquality(t *testing.T) {
	require.Equal(t, Unblinded(scalar.FromInt(5)).ToPoint(), Unblinded(scalar.FromInt(5)).ToPoint())
	require.NotEqual(t, Unblinded(scalar.FromInt(5)).ToPoint(), Unblinded(scalar.FromInt(6)).ToPoint())
}

func TestBlindedDrawsFreshBlinding(t *testing.T) {
	// same value, fresh random blinding: points must differ
	a := Blinded(scalar.FromInt(5))
	b := Blinded(scalar.FromInt(5))
	require.NotEqual(t, a.ToPoint(), b.ToPoint())
}

func TestVariableRefreshKeepsIdentity(t *testing.T) {
	v := NewVariable(Unblinded(scalar.FromInt(5)))
	before := v.Commitment().ToPoint()

	var blinding fr.Element
	blinding.SetUint64(77)
	v.Refresh(BlindedWithFactor(scalar.FromInt(5), blinding))

	require.NotEqual(t, before, v.Commitment().ToPoint())
	value, _, ok := v.Commitment().Witness()
	require.True(t, ok)
	require.True(t, value.Equal(scalar.FromInt(5)))
}
