package bba

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the host-facing surface. Every other
// protocol-level anomaly — obsolete messages, duplicates, malformed
// contents from faulty peers — is absorbed silently rather than raised;
// a Byzantine peer must never be able to poison the state machine by
// forcing an error return.
var (
	// ErrUnknownProposer is returned by New when proposerID is not a
	// member of the validator set.
	ErrUnknownProposer = errors.New("bba: unknown proposer")
	// ErrInputNotAccepted is returned by Input when called outside epoch
	// 0 or a second time; the caller's bug, not a protocol fault.
	ErrInputNotAccepted = errors.New("bba: input not accepted")
)

// wrapCoinErr tags an error surfaced by the CommonCoin collaborator with the
// call site, the way consensus/istanbul/core wraps decode/verify failures
// with logger context instead of swallowing them.
func wrapCoinErr(err error, where string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "bba: common coin error in %s", where)
}
