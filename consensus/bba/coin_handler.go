package bba

// handleCoin forwards a Coin sub-message to the embedded CommonCoin
// instance and folds whatever Step it produces.
func (a *Agreement) handleCoin(sender NodeID, msg CoinMessage) (Step, error) {
	if a.cur.schedule != scheduleRandom {
		// Deterministic epochs never run the coin; absorb the message
		// without building one.
		return Step{}, nil
	}
	coin := a.cur.ensureCoin(a.netinfo, a.coinFactory)
	coinStep, err := coin.HandleMessage(sender, msg)
	if err != nil {
		return Step{}, wrapCoinErr(err, "handle_message")
	}
	return a.onCoinStep(coinStep)
}

// onCoinStep re-tags every outbound coin message with the current epoch
// and, if the coin produced a boolean output, invokes onCoin with the
// admissible Conf values' sole candidate, if any.
func (a *Agreement) onCoinStep(coinStep CoinStep) (Step, error) {
	var step Step
	for _, tm := range coinStep.Messages {
		step.Messages = append(step.Messages, TargetedMessage{
			Target:  tm.Target,
			Message: withEpoch(a.epoch, CoinContent{Msg: tm.Msg}),
		})
	}
	if coinStep.Output == nil {
		return step, nil
	}

	_, confVals := a.countConf()
	next, err := a.onCoin(*coinStep.Output, definitePtr(confVals))
	step.Extend(next)
	return step, err
}

// onCoin resolves the coin schedule outcome: decides if the admissible
// candidate matches the coin, then always advances the epoch and re-seeds
// the estimate.
func (a *Agreement) onCoin(coin bool, defBinValue *bool) (Step, error) {
	if a.terminated {
		// Guards against reentry while replaying the queue after decide().
		return Step{}, nil
	}

	var step Step
	var b bool
	if defBinValue != nil {
		b = *defBinValue
		if a.decision == nil && b == coin {
			step.Extend(a.decide(b))
		}
	} else {
		b = coin
	}

	a.updateEpoch()

	a.estimated = &b
	s, err := a.sendBVal(b)
	if err != nil {
		step.Extend(s)
		return step, err
	}
	step.Extend(s)

	for _, qm := range a.queue.drainAll() {
		if a.terminated {
			break
		}
		s, err := a.HandleMessage(qm.peer, qm.msg)
		if err != nil {
			step.Extend(s)
			return step, err
		}
		step.Extend(s)
	}
	return step, nil
}

// updateEpoch clears every per-epoch buffer before the new epoch's
// estimate is seeded: the clear must happen before sendBVal, or stale
// receivedBVal entries could misfire thresholds in the new epoch.
func (a *Agreement) updateEpoch() {
	a.epoch++
	a.cur = newEpochState(a.epoch, a.nonceFor(a.epoch))
	a.log.Debug("epoch started", "epoch", a.epoch, "schedule", a.cur.schedule)
}
