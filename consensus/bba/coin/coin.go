// Package coin provides HashCoin, a non-cryptographic stand-in for the
// threshold-signature common coin the bba.CommonCoin interface describes.
// Real deployments plug in a threshold-BLS coin; that machinery is
// genuinely external to this repository, so HashCoin exists purely to
// exercise and test the BBA core end to end. It is not safe for
// production use: the "shares" are plain hashes of a shared secret, not
// threshold signatures, so anyone who learns the secret can predict every
// output.
package coin

import (
	"golang.org/x/crypto/sha3"

	"github.com/ground-x/bba/consensus/bba"
	"github.com/ground-x/bba/consensus/bba/sortedmap"
	"github.com/ground-x/bba/internal/logging"
)

// shareMessage is the only CoinMessage variant HashCoin emits: one
// validator's share for this instance's nonce.
type shareMessage struct {
	share [32]byte
}

// HashCoin implements bba.CommonCoin. Each validator's "share" is
// sha3.Sum256(nonce || nodeID || secret); once every validator's share for
// this instance's nonce has been collected, the shares are XOR-folded in
// canonical NodeID order and the low bit of the fold is the output.
// Completion is deliberately held until all N shares are in, not just f+1:
// folding whatever subset happens to have arrived first would let two
// correct nodes lock in different subsets under different delivery orders
// and disagree on the output, so the fold only ever runs over the single,
// fully-determined set of all validators' shares.
type HashCoin struct {
	netinfo bba.NetworkInfo
	nonce   bba.Nonce
	secret  func(bba.NodeID) []byte

	inputCalled bool
	done        bool
	shares      *sortedmap.Map[bba.NodeID, [32]byte]

	log *logging.Logger
}

// SecretFunc derives a per-node secret mixed into its share. In a real
// deployment this would be a threshold secret-key share; here it is
// whatever the host passes to NewFactory (cmd/bba-sim and the tests pass
// a fixed shared demo secret, since there is no real key material in this
// non-production collaborator).
type SecretFunc func(bba.NodeID) []byte

// NewFactory returns a bba.CoinFactory that builds HashCoin instances
// sharing the given per-node secret derivation.
func NewFactory(secret SecretFunc) bba.CoinFactory {
	return func(netinfo bba.NetworkInfo, nonce bba.Nonce) bba.CommonCoin {
		return &HashCoin{
			netinfo: netinfo,
			nonce:   nonce,
			secret:  secret,
			shares:  sortedmap.New[bba.NodeID, [32]byte](bba.CmpNodeID),
			log:     logging.New("bba.coin").With("nonce", nonce.String()),
		}
	}
}

func (c *HashCoin) shareFor(id bba.NodeID) [32]byte {
	h := sha3.New256()
	h.Write([]byte(c.nonce))
	h.Write(id[:])
	h.Write(c.secret(id))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Input contributes our own share and checks for early completion (a
// single-validator session can complete on its own input).
func (c *HashCoin) Input() (bba.CoinStep, error) {
	if c.inputCalled {
		return bba.CoinStep{}, nil
	}
	c.inputCalled = true
	return c.contribute(c.netinfo.OurID())
}

// HandleMessage records sender's share and checks for completion.
func (c *HashCoin) HandleMessage(sender bba.NodeID, msg bba.CoinMessage) (bba.CoinStep, error) {
	share, ok := msg.(shareMessage)
	if !ok {
		// Malformed sub-message from a faulty peer: absorbed, not raised,
		// the same way BBA itself absorbs any other protocol anomaly.
		return bba.CoinStep{}, nil
	}
	c.shares.Put(sender, share.share)
	return c.tryComplete()
}

func (c *HashCoin) contribute(self bba.NodeID) (bba.CoinStep, error) {
	share := c.shareFor(self)
	c.shares.Put(self, share)

	step := bba.CoinStep{
		Messages: []bba.TargetedCoinMessage{
			{Target: bba.TargetAll(), Msg: shareMessage{share: share}},
		},
	}
	complete, err := c.tryComplete()
	if err != nil {
		return step, err
	}
	step.Output = complete.Output
	return step, nil
}

func (c *HashCoin) tryComplete() (bba.CoinStep, error) {
	if c.done {
		return bba.CoinStep{}, nil
	}
	if c.shares.Len() < c.netinfo.NumNodes() {
		return bba.CoinStep{}, nil
	}

	// Fold every validator's share, in canonical NodeID order (sortedmap
	// always iterates that way), so that every correct node computes the
	// fold over the identical, fully-populated set regardless of the
	// order shares actually arrived in.
	var fold [32]byte
	c.shares.Each(func(_ bba.NodeID, share [32]byte) {
		for i := range fold {
			fold[i] ^= share[i]
		}
	})
	out := fold[0]&1 == 1
	c.done = true
	c.log.Debug("coin output", "value", out, "shares", c.shares.Len())

	return bba.CoinStep{Output: &out}, nil
}
