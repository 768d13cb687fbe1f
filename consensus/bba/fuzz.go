package bba

import "math/rand"

// RandomMessage builds a structurally valid, arbitrarily-contentful
// message for fuzz/property testing, generalizing the original crate's
// `impl rand::Rand for AgreementContent` (kept out of the main build in
// the original via rand::Rand's deprecation note) to Go's math/rand.
// The Coin variant carries a random opaque byte blob rather than a real
// coin sub-message, since BBA never inspects it anyway.
func RandomMessage(rng *rand.Rand, epoch uint32) Message {
	switch rng.Intn(5) {
	case 0:
		return withEpoch(epoch, BValContent(rng.Intn(2) == 0))
	case 1:
		return withEpoch(epoch, AuxContent(rng.Intn(2) == 0))
	case 2:
		var v BinValues
		if rng.Intn(2) == 0 {
			v.Insert(false)
		}
		if rng.Intn(2) == 0 {
			v.Insert(true)
		}
		return withEpoch(epoch, ConfContent{Values: v})
	case 3:
		return withEpoch(epoch, TermContent(rng.Intn(2) == 0))
	default:
		blob := make([]byte, 8)
		rng.Read(blob)
		return withEpoch(epoch, CoinContent{Msg: blob})
	}
}
