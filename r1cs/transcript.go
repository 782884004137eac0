package r1cs

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// Transcript is a hash chain over labeled messages. Challenges are derived
// from the running state by hashing to the scalar field and are folded back
// in, so successive draws under one label differ.
type Transcript struct {
	state [blake2b.Size256]byte
}

// NewTranscript returns a transcript domain-separated by label.
func NewTranscript(label string) *Transcript {
	t := &Transcript{}
	t.AppendMessage("transcript.init", []byte(label))
	return t
}

// AppendMessage absorbs a labeled message into the state.
func (t *Transcript) AppendMessage(label string, msg []byte) {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	var n [8]byte
	h.Write(t.state[:])
	binary.LittleEndian.PutUint64(n[:], uint64(len(label)))
	h.Write(n[:])
	h.Write([]byte(label))
	binary.LittleEndian.PutUint64(n[:], uint64(len(msg)))
	h.Write(n[:])
	h.Write(msg)
	h.Sum(t.state[:0])
}

// ChallengeScalar derives a field element bound to the current state and the
// label, then absorbs it.
func (t *Transcript) ChallengeScalar(label string) fr.Element {
	es, err := fr.Hash(t.state[:], []byte("slingshot.challenge."+label), 1)
	if err != nil {
		panic(err)
	}
	b := es[0].Bytes()
	t.AppendMessage(label, b[:])
	return es[0]
}
