package bba

import (
	"github.com/ground-x/bba/consensus/bba/sortedmap"
	"github.com/ground-x/bba/internal/logging"
)

// Agreement is one Binary Byzantine Agreement instance: the top-level
// state machine a host drives by calling Input once and HandleMessage for
// every inbound peer message, transmitting whatever Step each call
// returns.
type Agreement struct {
	netinfo     NetworkInfo
	coinFactory CoinFactory
	sessionID   uint64
	proposerID  NodeID
	proposerIdx int

	epoch uint32
	cur   *epochState

	estimated *bool
	decision  *bool
	terminated bool

	receivedTerm *sortedmap.Map[NodeID, bool]

	queue *futureQueue

	log *logging.Logger
}

// New creates an Agreement instance for the given session and proposer. It
// fails ErrUnknownProposer if proposerID is not a member of netinfo's
// validator set.
func New(netinfo NetworkInfo, coinFactory CoinFactory, sessionID uint64, proposerID NodeID) (*Agreement, error) {
	idx, ok := netinfo.NodeIndex(proposerID)
	if !ok {
		return nil, ErrUnknownProposer
	}
	a := &Agreement{
		netinfo:      netinfo,
		coinFactory:  coinFactory,
		sessionID:    sessionID,
		proposerID:   proposerID,
		proposerIdx:  idx,
		epoch:        0,
		receivedTerm: sortedmap.New[NodeID, bool](CmpNodeID),
		queue:        newFutureQueue(),
		log:          logging.New("bba").With("proposer", proposerID),
	}
	a.cur = newEpochState(0, a.nonceFor(0))
	return a, nil
}

func (a *Agreement) nonceFor(epoch uint32) Nonce {
	return NewNonce(a.netinfo.InvocationID(), a.sessionID, a.proposerIdx, epoch)
}

// AcceptsInput reports whether Input may still be called: only in epoch 0,
// before an estimate has been set.
func (a *Agreement) AcceptsInput() bool {
	return a.epoch == 0 && a.estimated == nil
}

// Terminated reports whether this instance has decided and will silently
// drop all further input.
func (a *Agreement) Terminated() bool {
	return a.terminated
}

// OurID returns the local node's identifier.
func (a *Agreement) OurID() NodeID {
	return a.netinfo.OurID()
}

// Epoch returns the current epoch number, for host-side observability
// (e.g. tests checking whether an epoch transition happened).
func (a *Agreement) Epoch() uint32 {
	return a.epoch
}

// Input supplies this node's initial boolean estimate. Legal only while
// AcceptsInput(); otherwise returns ErrInputNotAccepted.
func (a *Agreement) Input(b bool) (Step, error) {
	if !a.AcceptsInput() {
		return Step{}, ErrInputNotAccepted
	}

	if a.netinfo.NumNodes() == 1 {
		// Single-node session: no one else to hear from. Emit the
		// BVal/Aux handshake (a harmless self-loop) and decide immediately.
		step, err := a.sendBVal(b)
		if err != nil {
			return step, err
		}
		auxStep, err := a.sendAux(b)
		if err != nil {
			step.Extend(auxStep)
			return step, err
		}
		step.Extend(auxStep)
		step.Extend(a.decide(b))
		return step, nil
	}

	a.estimated = &b
	return a.sendBVal(b)
}

// HandleMessage processes one message received from sender.
func (a *Agreement) HandleMessage(sender NodeID, msg Message) (Step, error) {
	if a.terminated || msg.Epoch < a.epoch {
		return Step{}, nil
	}
	if msg.Epoch > a.epoch {
		a.queue.push(a.epoch, sender, msg)
		return Step{}, nil
	}

	switch c := msg.Content.(type) {
	case BValContent:
		return a.handleBVal(sender, bool(c))
	case AuxContent:
		return a.handleAux(sender, bool(c))
	case ConfContent:
		return a.handleConf(sender, c.Values)
	case TermContent:
		return a.handleTerm(sender, bool(c)), nil
	case CoinContent:
		return a.handleCoin(sender, c.Msg)
	default:
		// Unreachable: Content is a sealed interface (message.go); a value
		// satisfying contentVariant() that isn't one of the five listed
		// above cannot be constructed from outside this package.
		return Step{}, nil
	}
}
