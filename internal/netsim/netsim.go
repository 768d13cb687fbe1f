// Package netsim is a scaled-down version of the original crate's
// tests/net "crank the network" harness: an in-process message bus that
// delivers one message per crank, optionally through an adversary that can
// reorder or drop deliveries, with the same trace-on-failure idea as the
// original's HBBFT_TEST_TRACE / net_trace! machinery. It backs both the
// consensus/bba scenario tests (scenario_test.go) and cmd/bba-sim.
package netsim

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ground-x/bba/consensus/bba"
)

// Node wraps one Agreement instance in the simulated network.
type Node struct {
	ID        bba.NodeID
	Agreement *bba.Agreement
	Faulty    bool
}

type envelope struct {
	from, to bba.NodeID
	msg      bba.Message
}

// Adversary may reorder or drop the pending queue before each crank. It
// receives the queue and returns the (possibly mutated) replacement.
type Adversary func(pending []envelope) []envelope

// Network cranks a fixed set of nodes, delivering one message at a time.
type Network struct {
	nodes     map[bba.NodeID]*Node
	order     []bba.NodeID
	pending   []envelope
	adversary Adversary
	rng       *rand.Rand
	decisions map[bba.NodeID]bool
	trace     *os.File
}

// New builds a Network over the given nodes. rng picks which pending
// message each crank delivers; pass nil for deterministic FIFO delivery.
func New(nodes []*Node, rng *rand.Rand) *Network {
	m := make(map[bba.NodeID]*Node, len(nodes))
	order := make([]bba.NodeID, 0, len(nodes))
	for _, n := range nodes {
		m[n.ID] = n
		order = append(order, n.ID)
	}
	net := &Network{
		nodes:     m,
		order:     order,
		rng:       rng,
		decisions: make(map[bba.NodeID]bool),
	}
	if os.Getenv("BBA_SIM_TRACE") == "1" {
		f, err := os.Create(fmt.Sprintf("netsim-trace-%d.txt", os.Getpid()))
		if err == nil {
			net.trace = f
		}
	}
	return net
}

// SetAdversary installs a function run against the pending queue before
// every crank.
func (n *Network) SetAdversary(a Adversary) { n.adversary = a }

// Input delivers b as id's input and enqueues the resulting step.
func (n *Network) Input(id bba.NodeID, b bool) error {
	node := n.nodes[id]
	step, err := node.Agreement.Input(b)
	if err != nil {
		return err
	}
	n.absorb(id, step)
	return nil
}

func (n *Network) absorb(from bba.NodeID, step bba.Step) {
	for _, out := range step.Output {
		n.decisions[from] = out
	}
	for _, tm := range step.Messages {
		if tm.Target.IsAll() {
			for _, to := range n.order {
				if to == from {
					continue
				}
				n.pending = append(n.pending, envelope{from: from, to: to, msg: tm.Message})
			}
			continue
		}
		n.pending = append(n.pending, envelope{from: from, to: tm.Target.Node(), msg: tm.Message})
	}
}

// Crank delivers exactly one pending message and returns false if the
// queue was already empty.
func (n *Network) Crank() (bool, error) {
	if n.adversary != nil {
		n.pending = n.adversary(n.pending)
	}
	if len(n.pending) == 0 {
		return false, nil
	}

	idx := 0
	if n.rng != nil {
		idx = n.rng.Intn(len(n.pending))
	}
	env := n.pending[idx]
	n.pending = append(n.pending[:idx], n.pending[idx+1:]...)

	node, ok := n.nodes[env.to]
	if !ok {
		return true, nil
	}
	step, err := node.Agreement.HandleMessage(env.from, env.msg)
	if err != nil {
		n.dumpTrace()
		return true, err
	}
	n.absorb(env.to, step)
	return true, nil
}

// Run cranks until the queue drains or maxCranks is reached, whichever
// comes first. Returns the number of cranks performed.
func (n *Network) Run(maxCranks int) (int, error) {
	for i := 0; i < maxCranks; i++ {
		more, err := n.Crank()
		if err != nil {
			return i, err
		}
		if !more {
			return i, nil
		}
	}
	n.dumpTrace()
	return maxCranks, nil
}

// Decisions returns every node's latched output so far.
func (n *Network) Decisions() map[bba.NodeID]bool {
	out := make(map[bba.NodeID]bool, len(n.decisions))
	for k, v := range n.decisions {
		out[k] = v
	}
	return out
}

// Pending reports how many messages are still undelivered.
func (n *Network) Pending() int { return len(n.pending) }

func (n *Network) dumpTrace() {
	if n.trace == nil {
		return
	}
	defer n.trace.Close()
	fmt.Fprintf(n.trace, "undelivered messages at failure:\n%s\n", spew.Sdump(n.pending))
	fmt.Fprintf(n.trace, "decisions so far:\n%s\n", spew.Sdump(n.decisions))
}
