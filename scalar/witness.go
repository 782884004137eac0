// Package scalar implements the witness value carried by open commitments
// and threaded through the constraint compiler: either a signed 64-bit
// integer or an opaque scalar of the bn254 scalar field.
//
// Integer witnesses stay integers under arithmetic as long as the result
// fits in 64 bits; on overflow the operation transparently promotes both
// operands to field scalars.
package scalar

import (
	"fmt"
	"math"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Witness is a signed integer or a field scalar. The zero value is the
// integer 0.
type Witness struct {
	isScalar bool
	i        int64
	s        fr.Element
}

// FromInt returns an integer witness.
func FromInt(i int64) Witness {
	return Witness{i: i}
}

// FromElement returns a scalar witness.
func FromElement(e fr.Element) Witness {
	return Witness{isScalar: true, s: e}
}

// ToElement reduces the witness to a field scalar.
// Negative integers map to -|i| mod p.
func (w Witness) ToElement() fr.Element {
	if w.isScalar {
		return w.s
	}
	var e fr.Element
	e.SetBigInt(big.NewInt(w.i))
	return e
}

// Add returns w + o, staying in the integer domain when possible.
func (w Witness) Add(o Witness) Witness {
	if !w.isScalar && !o.isScalar {
		if s, ok := addInt64(w.i, o.i); ok {
			return Witness{i: s}
		}
	}
	var e fr.Element
	a, b := w.ToElement(), o.ToElement()
	e.Add(&a, &b)
	return Witness{isScalar: true, s: e}
}

// Sub returns w - o.
func (w Witness) Sub(o Witness) Witness {
	return w.Add(o.Neg())
}

// Neg returns -w.
func (w Witness) Neg() Witness {
	if !w.isScalar && w.i != math.MinInt64 {
		return Witness{i: -w.i}
	}
	var e fr.Element
	a := w.ToElement()
	e.Neg(&a)
	return Witness{isScalar: true, s: e}
}

// Mul returns w * o, staying in the integer domain when possible.
func (w Witness) Mul(o Witness) Witness {
	if !w.isScalar && !o.isScalar {
		if p, ok := mulInt64(w.i, o.i); ok {
			return Witness{i: p}
		}
	}
	var e fr.Element
	a, b := w.ToElement(), o.ToElement()
	e.Mul(&a, &b)
	return Witness{isScalar: true, s: e}
}

// IsZero reports whether the witness reduces to zero.
func (w Witness) IsZero() bool {
	if !w.isScalar {
		return w.i == 0
	}
	return w.s.IsZero()
}

// Equal reports whether both witnesses reduce to the same field scalar.
func (w Witness) Equal(o Witness) bool {
	a, b := w.ToElement(), o.ToElement()
	return a.Equal(&b)
}

func (w Witness) String() string {
	if !w.isScalar {
		return fmt.Sprintf("%d", w.i)
	}
	return w.s.String()
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
