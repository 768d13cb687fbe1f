package bba_test

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ground-x/bba/consensus/bba"
	"github.com/ground-x/bba/consensus/bba/coin"
	"github.com/ground-x/bba/consensus/bba/membership"
	"github.com/ground-x/bba/internal/netsim"
)

func nodeID(i int) bba.NodeID {
	var id bba.NodeID
	sum := sha256.Sum256([]byte(fmt.Sprintf("scenario-node-%d", i)))
	copy(id[:], sum[:])
	return id
}

func buildNetwork(t *testing.T, n, f int, seed int64) (*netsim.Network, []bba.NodeID) {
	t.Helper()
	ids := make([]bba.NodeID, n)
	for i := range ids {
		ids[i] = nodeID(i)
	}
	rng := rand.New(rand.NewSource(seed))
	secret := func(bba.NodeID) []byte { return []byte("scenario demo secret") }
	coinFactory := coin.NewFactory(secret)

	nodes := make([]*netsim.Node, n)
	for i, id := range ids {
		table := membership.New(ids, id, f, []byte("scenario"))
		agreement, err := bba.New(table, coinFactory, 0, ids[0])
		require.NoError(t, err)
		nodes[i] = &netsim.Node{ID: id, Agreement: agreement}
	}
	return netsim.New(nodes, rng), ids
}

func TestAllHonestAgreeOnTrue(t *testing.T) {
	net, ids := buildNetwork(t, 4, 1, 1)
	for _, id := range ids {
		require.NoError(t, net.Input(id, true))
	}
	_, err := net.Run(10000)
	require.NoError(t, err)

	decisions := net.Decisions()
	require.Len(t, decisions, len(ids))
	for _, id := range ids {
		require.True(t, decisions[id], "every correct node must decide true")
	}
}

func TestAllHonestAgreeOnFalse(t *testing.T) {
	net, ids := buildNetwork(t, 4, 1, 2)
	for _, id := range ids {
		require.NoError(t, net.Input(id, false))
	}
	_, err := net.Run(10000)
	require.NoError(t, err)

	decisions := net.Decisions()
	for _, id := range ids {
		require.False(t, decisions[id])
	}
}

// TestMajorityTrueSurvivesLateDissent: N=4, f=1, inputs
// [true, true, true, false]; the late false input must not stop the other
// three from deciding true.
func TestMajorityTrueSurvivesLateDissent(t *testing.T) {
	net, ids := buildNetwork(t, 4, 1, 3)
	inputs := []bool{true, true, true, false}
	for i, id := range ids {
		require.NoError(t, net.Input(id, inputs[i]))
	}
	_, err := net.Run(20000)
	require.NoError(t, err)

	decisions := net.Decisions()
	require.Len(t, decisions, len(ids))
	for _, v := range decisions {
		require.True(t, v, "decided value must be true: at least one correct node input true")
	}
}

// TestSplitInputsConverge mirrors the N=7,f=2 split-input scenario; all
// correct nodes must still converge on a single value, possibly via the
// random-coin branch.
func TestSplitInputsConverge(t *testing.T) {
	net, ids := buildNetwork(t, 7, 2, 4)
	inputs := []bool{true, true, true, true, false, false, false}
	for i, id := range ids {
		require.NoError(t, net.Input(id, inputs[i]))
	}
	_, err := net.Run(50000)
	require.NoError(t, err)

	decisions := net.Decisions()
	require.Len(t, decisions, len(ids))
	var want *bool
	for _, v := range decisions {
		if want == nil {
			vv := v
			want = &vv
			continue
		}
		require.Equal(t, *want, v, "all correct nodes must decide the same value")
	}
}

func TestSingleNodeDecidesImmediately(t *testing.T) {
	net, ids := buildNetwork(t, 1, 0, 5)
	require.NoError(t, net.Input(ids[0], true))
	decisions := net.Decisions()
	require.True(t, decisions[ids[0]], "N=1 must decide within the single Input call")
}

func TestExpediteTerminationOnTermQuorum(t *testing.T) {
	// f+1 = 2 matching Term messages, delivered before the node has
	// produced any output of its own, must decide without the coin.
	ids := make([]bba.NodeID, 4)
	for i := range ids {
		ids[i] = nodeID(100 + i)
	}
	table := membership.New(ids, ids[0], 1, []byte("expedite"))
	secret := func(bba.NodeID) []byte { return []byte("expedite secret") }
	agreement, err := bba.New(table, coin.NewFactory(secret), 0, ids[0])
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		step, err := agreement.HandleMessage(ids[i], bba.Message{Epoch: 0, Content: bba.TermContent(true)})
		require.NoError(t, err)
		if agreement.Terminated() {
			require.True(t, step.HasOutput())
			require.True(t, step.Output[0])
			return
		}
	}
	t.Fatal("expected expedite termination after f+1 matching Term messages")
}

func TestFutureEpochMessageIsBuffered(t *testing.T) {
	ids := make([]bba.NodeID, 4)
	for i := range ids {
		ids[i] = nodeID(200 + i)
	}
	table := membership.New(ids, ids[0], 1, []byte("future"))
	secret := func(bba.NodeID) []byte { return []byte("future secret") }
	agreement, err := bba.New(table, coin.NewFactory(secret), 0, ids[0])
	require.NoError(t, err)

	step, err := agreement.HandleMessage(ids[1], bba.Message{Epoch: 1, Content: bba.BValContent(true)})
	require.NoError(t, err)
	require.Empty(t, step.Messages, "a future-epoch message must not produce any immediate output")
	require.Equal(t, uint32(0), agreement.Epoch(), "receiving a future message must not itself advance the epoch")
}
