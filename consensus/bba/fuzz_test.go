package bba

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHandleMessageNeverErrorsOnRandomInput throws a large volume of
// structurally valid but semantically arbitrary messages at a running
// instance and checks the one property that must hold for any input a
// Byzantine peer could ever construct: HandleMessage never returns an
// error and never panics, no matter what epoch or content it's handed.
func TestHandleMessageNeverErrorsOnRandomInput(t *testing.T) {
	net := newFakeNetwork(4, 1, 0)
	a, err := New(net, func(NetworkInfo, Nonce) CommonCoin { return &fixedCoin{} }, 0, net.our)
	require.NoError(t, err)
	_, err = a.Input(true)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		sender := net.ids[rng.Intn(len(net.ids))]
		epoch := a.Epoch() + uint32(rng.Intn(5)) - 2 // [epoch-2, epoch+2], may underflow on epoch 0
		msg := RandomMessage(rng, epoch)

		_, err := a.HandleMessage(sender, msg)
		require.NoError(t, err)
	}
}
