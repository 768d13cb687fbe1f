package bba

// sendBVal multicasts BVal(b), records it as sent, and folds the resulting
// self-delivery back through handleBVal so the local count is consistent
// with what every other node will eventually observe.
func (a *Agreement) sendBVal(b bool) (Step, error) {
	if !a.netinfo.IsValidator() {
		return Step{}, nil
	}
	a.cur.sentBVal.Insert(b)

	var step Step
	step.send(a.epoch, BValContent(b))

	selfStep, err := a.handleBVal(a.netinfo.OurID(), b)
	step.Extend(selfStep)
	return step, err
}

// sendAux multicasts Aux(b) and folds the self-delivery through handleAux.
func (a *Agreement) sendAux(b bool) (Step, error) {
	if !a.netinfo.IsValidator() {
		return Step{}, nil
	}

	var step Step
	step.send(a.epoch, AuxContent(b))

	selfStep, err := a.handleAux(a.netinfo.OurID(), b)
	step.Extend(selfStep)
	return step, err
}

// sendConf enters the Conf phase at most once per epoch and multicasts our
// current candidate set, folding the self-delivery through handleConf.
func (a *Agreement) sendConf() (Step, error) {
	if a.cur.confRound {
		return Step{}, nil
	}
	// Mark the round started before broadcasting: only one Conf is ever
	// sent per epoch, even if this call races with another trigger.
	a.cur.confRound = true

	if !a.netinfo.IsValidator() {
		return Step{}, nil
	}

	v := a.cur.binValues
	var step Step
	step.send(a.epoch, ConfContent{Values: v})

	selfStep, err := a.handleConf(a.netinfo.OurID(), v)
	step.Extend(selfStep)
	return step, err
}
