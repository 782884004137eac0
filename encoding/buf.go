// Package encoding implements the byte codec for commitments and scalars.
package encoding

import (
	"encoding/binary"
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/decentralisedkev/slingshot/pedersen"
)

// ErrShortBuffer is returned when a read runs past the end of the input.
var ErrShortBuffer = errors.New("encoding: short buffer")

type OutputBuf struct {
	buf []byte
}

// AppendPoint appends the canonical 32-byte form of a compressed point.
func (o *OutputBuf) AppendPoint(p pedersen.CompressedPoint) {
	o.buf = append(o.buf, p[:]...)
}

// AppendElement appends the canonical 32-byte big-endian form of a scalar.
func (o *OutputBuf) AppendElement(e fr.Element) {
	b := e.Bytes()
	o.buf = append(o.buf, b[:]...)
}

func (o *OutputBuf) AppendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

type InputBuf struct {
	buf []byte
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

// ReadPoint reads a compressed point. The bytes are not validated against
// the curve; use pedersen.Decompress for that.
func (i *InputBuf) ReadPoint() (pedersen.CompressedPoint, error) {
	var p pedersen.CompressedPoint
	if len(i.buf) < pedersen.PointSize {
		return p, ErrShortBuffer
	}
	copy(p[:], i.buf[:pedersen.PointSize])
	i.buf = i.buf[pedersen.PointSize:]
	return p, nil
}

// ReadElement reads a 32-byte big-endian scalar and errs when the value is
// not a canonical field element.
func (i *InputBuf) ReadElement() (fr.Element, error) {
	var e fr.Element
	if len(i.buf) < fr.Bytes {
		return e, ErrShortBuffer
	}
	if err := e.SetBytesCanonical(i.buf[:fr.Bytes]); err != nil {
		return e, err
	}
	i.buf = i.buf[fr.Bytes:]
	return e, nil
}

func (i *InputBuf) ReadUint32() (uint32, error) {
	if len(i.buf) < 4 {
		return 0, ErrShortBuffer
	}
	x := binary.LittleEndian.Uint32(i.buf[:4])
	i.buf = i.buf[4:]
	return x, nil
}

func (i *InputBuf) ReadUint64() (uint64, error) {
	if len(i.buf) < 8 {
		return 0, ErrShortBuffer
	}
	x := binary.LittleEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return x, nil
}
