package bba

import "fmt"

// Nonce domain-separates each (session, proposer, epoch) common-coin
// invocation. Every node must derive bit-identical bytes from the same
// inputs, so the encoding is a single canonical Sprintf.
type Nonce []byte

// NewNonce derives the nonce for one (session, proposer, epoch) coin
// invocation from the session's invocation ID, the session ID, the
// proposer's canonical index, and the agreement epoch.
func NewNonce(invocationID []byte, sessionID uint64, proposerIndex int, epoch uint32) Nonce {
	return Nonce(fmt.Sprintf("Nonce for Honey Badger %x@%d:%d:%d", invocationID, sessionID, epoch, proposerIndex))
}

func (n Nonce) String() string {
	return string(n)
}
