package bba

// handleAux records sender's Aux(b), first write wins for the epoch, and
// once bin_values is non-empty checks the N-f Aux threshold to drive the
// coin schedule.
func (a *Agreement) handleAux(sender NodeID, b bool) (Step, error) {
	if a.cur.confRound {
		// The Aux phase is closed once Conf has started.
		return Step{}, nil
	}
	if !a.cur.receivedAux.Contains(sender) {
		a.cur.receivedAux.Put(sender, b)
	}

	if a.cur.binValues == BinNone {
		return Step{}, nil
	}

	count, vals := a.countAux()
	if count < a.netinfo.NumNodes()-a.netinfo.NumFaulty() {
		return Step{}, nil
	}

	switch a.cur.schedule {
	case scheduleFalse:
		return a.onCoin(false, definitePtr(vals))
	case scheduleTrue:
		return a.onCoin(true, definitePtr(vals))
	default: // scheduleRandom
		return a.sendConf()
	}
}

// countAux computes (|combined|, union) over received Aux messages whose
// value lies in bin_values, combined with received Term witnesses (a
// terminated peer's decision implicitly asserts Aux(b) for every later
// epoch. A peer contributes at most one entry even if it has both an Aux
// and a Term on file.
func (a *Agreement) countAux() (int, BinValues) {
	combined := make(map[NodeID]bool)
	a.cur.receivedAux.Each(func(id NodeID, b bool) {
		if a.cur.binValues.Contains(b) {
			combined[id] = b
		}
	})
	a.receivedTerm.Each(func(id NodeID, b bool) {
		if a.cur.binValues.Contains(b) {
			combined[id] = b
		}
	})

	var vals BinValues
	for _, b := range combined {
		vals.Insert(b)
	}
	return len(combined), vals
}

// definitePtr converts a BinValues's sole member, if any, into a *bool for
// passing to onCoin.
func definitePtr(vals BinValues) *bool {
	v, ok := vals.Definite()
	if !ok {
		return nil
	}
	return &v
}
