package bba

// Target names the recipients of an outbound message: either every peer, or
// one specific peer. Mirrors messaging::Target from the original crate.
type Target struct {
	all bool
	to  NodeID
}

// TargetAll addresses every peer (the common case: BVal/Aux/Conf/Term are
// always multicast).
func TargetAll() Target { return Target{all: true} }

// TargetNode addresses a single peer.
func TargetNode(id NodeID) Target { return Target{to: id} }

// IsAll reports whether this target is the broadcast target.
func (t Target) IsAll() bool { return t.all }

// Node returns the single-peer target's recipient; only meaningful when
// !IsAll().
func (t Target) Node() NodeID { return t.to }

// TargetedMessage pairs an outbound Message with its Target.
type TargetedMessage struct {
	Target  Target
	Message Message
}

// Step is the batch a single input/handle_message call produces: zero or
// more outbound messages, and zero or one decided output value.
type Step struct {
	Messages []TargetedMessage
	Output   []bool
}

// send appends a broadcast-to-all message.
func (s *Step) send(epoch uint32, c Content) {
	s.Messages = append(s.Messages, TargetedMessage{
		Target:  TargetAll(),
		Message: withEpoch(epoch, c),
	})
}

// Extend appends all of other's messages and outputs onto s, the way the
// original's Step::extend folds a sub-step into the caller's step.
func (s *Step) Extend(other Step) {
	s.Messages = append(s.Messages, other.Messages...)
	s.Output = append(s.Output, other.Output...)
}

// HasOutput reports whether a decision was produced in this step.
func (s Step) HasOutput() bool {
	return len(s.Output) > 0
}
