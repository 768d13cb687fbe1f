package bba

// decide latches the decision, emits it as output, and — if we are a
// validator — broadcasts Term(b) and records our own Term vote so later
// countAux calls see it too. A no-op once already
// terminated.
func (a *Agreement) decide(b bool) Step {
	if a.terminated {
		return Step{}
	}

	var step Step
	step.Output = append(step.Output, b)
	a.decision = &b

	a.log.Debug("decided", "epoch", a.epoch, "value", b, "is_validator", a.netinfo.IsValidator())

	if a.netinfo.IsValidator() {
		step.send(a.epoch, TermContent(b))
		a.receivedTerm.Put(a.netinfo.OurID(), b)
	}
	a.terminated = true
	return step
}
