package bba

// handleBVal records sender's assertion of b and checks the two BVal
// thresholds. Both triggers are checked on equality, not
// inequality, so each fires exactly once per (b, epoch) no matter how many
// duplicate BVal(b) a peer re-sends.
func (a *Agreement) handleBVal(sender NodeID, b bool) (Step, error) {
	set, _ := a.cur.receivedBVal.Get(sender)
	set.Insert(b)
	a.cur.receivedBVal.Put(sender, set)

	count := a.cur.receivedBVal.Count(func(_ NodeID, vals BinValues) bool {
		return vals.Contains(b)
	})

	var step Step

	if count == a.netinfo.NumFaulty()+1 && !a.cur.sentBVal.Contains(b) {
		// f+1 asserters means at least one is correct: b is viable.
		// Amplify by asserting it ourselves too, unless we already have.
		s, err := a.sendBVal(b)
		if err != nil {
			return step, err
		}
		step.Extend(s)
	}

	if count == 2*a.netinfo.NumFaulty()+1 {
		wasEmpty := a.cur.binValues == BinNone
		changed := a.cur.binValues.Insert(b)

		if wasEmpty {
			// First non-empty transition this epoch: send our one Aux.
			s, err := a.sendAux(b)
			if err != nil {
				return step, err
			}
			step.Extend(s)
		}
		if changed {
			s, err := a.onBinValuesChanged()
			if err != nil {
				return step, err
			}
			step.Extend(s)
		}
	}

	return step, nil
}

// onBinValuesChanged re-checks whatever threshold depends on bin_values
// growing: for deterministic coin schedules, the N-f Aux threshold may now
// be met (a newly viable value can retroactively admit previously received
// Aux messages); for the Random schedule, a previously received Conf may
// now be admissible.
func (a *Agreement) onBinValuesChanged() (Step, error) {
	switch a.cur.schedule {
	case scheduleTrue:
		return a.checkAuxThreshold(true)
	case scheduleFalse:
		return a.checkAuxThreshold(false)
	default: // scheduleRandom
		return a.tryFinishConfRound()
	}
}

func (a *Agreement) checkAuxThreshold(coin bool) (Step, error) {
	count, vals := a.countAux()
	if count < a.netinfo.NumNodes()-a.netinfo.NumFaulty() {
		return Step{}, nil
	}
	return a.onCoin(coin, definitePtr(vals))
}
