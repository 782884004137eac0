package scalar

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Option is an explicitly two-state witness: Known carries a value, Unknown
// carries nothing. Every combinator propagates Unknown on any Unknown input,
// so verifier-side code (which never holds secrets) composes without error
// handling. There is no sentinel value: the zero Option is Unknown.
type Option struct {
	w     Witness
	known bool
}

// Known wraps a witness value.
func Known(w Witness) Option {
	return Option{w: w, known: true}
}

// KnownInt wraps an integer witness value.
func KnownInt(i int64) Option {
	return Known(FromInt(i))
}

// Unknown returns the absent witness.
func Unknown() Option {
	return Option{}
}

// Witness returns the value and whether it is known.
func (o Option) Witness() (Witness, bool) {
	return o.w, o.known
}

// Element reduces a known witness to a field scalar.
func (o Option) Element() (fr.Element, bool) {
	if !o.known {
		return fr.Element{}, false
	}
	return o.w.ToElement(), true
}

// IsKnown reports whether a value is present.
func (o Option) IsKnown() bool {
	return o.known
}

// Add returns Known(a+b) when both are known.
func (o Option) Add(p Option) Option {
	if !o.known || !p.known {
		return Unknown()
	}
	return Known(o.w.Add(p.w))
}

// Sub returns Known(a-b) when both are known.
func (o Option) Sub(p Option) Option {
	if !o.known || !p.known {
		return Unknown()
	}
	return Known(o.w.Sub(p.w))
}

// Mul returns Known(a*b) when both are known.
func (o Option) Mul(p Option) Option {
	if !o.known || !p.known {
		return Unknown()
	}
	return Known(o.w.Mul(p.w))
}

// Neg returns Known(-a) when a is known.
func (o Option) Neg() Option {
	if !o.known {
		return Unknown()
	}
	return Known(o.w.Neg())
}
