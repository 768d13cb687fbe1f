package bba

// Content is the closed sum of the five message variants the algorithm
// exchanges. Implementations are unexported concrete types; callers type
// switch on Content the way core/*.go in consensus/istanbul switches on a
// message's Code, except exhaustiveness here is enforced by the sealed
// contentVariant marker method rather than a numeric code.
type Content interface {
	contentVariant()
}

// BValContent asserts "I know b is a viable output."
type BValContent bool

// AuxContent asserts "I know every correct node will believe b."
type AuxContent bool

// ConfContent carries a node's current candidate set during the Conf phase.
type ConfContent struct {
	Values BinValues
}

// TermContent asserts "I have decided b." It counts as an Aux(b) witness
// in every later epoch (see countAux); BVal thresholds do not count it.
type TermContent bool

// CoinContent wraps an opaque common-coin sub-message. BBA never inspects
// the payload; it only tags it with the current epoch and relays it.
type CoinContent struct {
	Msg CoinMessage
}

func (BValContent) contentVariant() {}
func (AuxContent) contentVariant()  {}
func (ConfContent) contentVariant() {}
func (TermContent) contentVariant() {}
func (CoinContent) contentVariant() {}

// Message is an AgreementMessage: a content variant tagged with the epoch
// it belongs to.
type Message struct {
	Epoch   uint32
	Content Content
}

func withEpoch(epoch uint32, c Content) Message {
	return Message{Epoch: epoch, Content: c}
}
