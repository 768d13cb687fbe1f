package bba

// handleConf records sender's Conf(v) for the current epoch and tries to
// close out the Conf round.
func (a *Agreement) handleConf(sender NodeID, v BinValues) (Step, error) {
	// Overwritten on a repeat, not rejected: a well-behaved peer never
	// sends a different value the second time, and the map key already
	// ensures a peer is counted at most once.
	a.cur.receivedConf.Put(sender, v)
	return a.tryFinishConfRound()
}

// tryFinishConfRound triggers the common coin once N-f admissible Conf
// values have been received, folding whatever coin Step results.
func (a *Agreement) tryFinishConfRound() (Step, error) {
	if !a.cur.confRound {
		return Step{}, nil
	}
	count, _ := a.countConf()
	if count < a.netinfo.NumNodes()-a.netinfo.NumFaulty() {
		return Step{}, nil
	}

	coin := a.cur.ensureCoin(a.netinfo, a.coinFactory)
	coinStep, err := coin.Input()
	if err != nil {
		return Step{}, wrapCoinErr(err, "input")
	}
	return a.onCoinStep(coinStep)
}

// countConf computes (|admissible|, union) over received Conf sets that
// are subsets of bin_values.
func (a *Agreement) countConf() (int, BinValues) {
	count := 0
	var vals BinValues
	a.cur.receivedConf.Each(func(_ NodeID, v BinValues) {
		if !v.IsSubset(a.cur.binValues) {
			return
		}
		count++
		vals = vals.Union(v)
	})
	return count, vals
}
