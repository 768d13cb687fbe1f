package bba

import "github.com/ground-x/bba/consensus/bba/sortedmap"

// coinSchedule is the per-epoch method of deriving the coin value: fixed
// true, fixed false, or a genuine distributed flip.
type coinSchedule int

const (
	scheduleTrue coinSchedule = iota
	scheduleFalse
	scheduleRandom
)

func scheduleForEpoch(epoch uint32) coinSchedule {
	switch epoch % 3 {
	case 0:
		return scheduleTrue
	case 1:
		return scheduleFalse
	default:
		return scheduleRandom
	}
}

// epochState holds everything reset at an epoch boundary, except
// receivedTerm which is cross-epoch and lives on Agreement directly.
type epochState struct {
	binValues BinValues

	receivedBVal *sortedmap.Map[NodeID, BinValues]
	sentBVal     BinValues

	receivedAux *sortedmap.Map[NodeID, bool]

	receivedConf *sortedmap.Map[NodeID, BinValues]
	confRound    bool

	schedule coinSchedule
	nonce    Nonce
	coin     CommonCoin // constructed lazily; see ensureCoin
}

func newEpochState(epoch uint32, nonce Nonce) *epochState {
	return &epochState{
		receivedBVal: sortedmap.New[NodeID, BinValues](CmpNodeID),
		receivedAux:  sortedmap.New[NodeID, bool](CmpNodeID),
		receivedConf: sortedmap.New[NodeID, BinValues](CmpNodeID),
		schedule:     scheduleForEpoch(epoch),
		nonce:        nonce,
	}
}

// ensureCoin lazily constructs the embedded CommonCoin the first time it is
// actually needed. In epochs whose schedule is deterministic (True/False)
// the coin is never consulted, so deterministic epochs never pay the cost
// of building one.
func (e *epochState) ensureCoin(netinfo NetworkInfo, factory CoinFactory) CommonCoin {
	if e.coin == nil {
		e.coin = factory(netinfo, e.nonce)
	}
	return e.coin
}
