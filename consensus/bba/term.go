package bba

// handleTerm records sender's decision and, if more than f peers now agree
// on the same value while we haven't decided, expedites termination: with
// more than f matching Term messages at least one is from a correct node,
// so that value was the consensus result.
func (a *Agreement) handleTerm(sender NodeID, b bool) Step {
	a.receivedTerm.Put(sender, b)

	if a.decision != nil {
		return Step{}
	}
	matching := a.receivedTerm.Count(func(_ NodeID, v bool) bool { return v == b })
	if matching > a.netinfo.NumFaulty() {
		return a.decide(b)
	}
	return Step{}
}
