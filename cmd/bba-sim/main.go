// Command bba-sim runs a small local Binary Byzantine Agreement network,
// in the spirit of klaytn's cmd/homi genesis/harness tooling and the
// original crate's tests/net harness: it wires up N nodes sharing a
// membership table and a common-coin factory, feeds them inputs, and
// cranks the simulated network until no message is pending or a crank
// budget is exhausted, then prints each node's decision.
package main

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/ground-x/bba/consensus/bba"
	"github.com/ground-x/bba/consensus/bba/coin"
	"github.com/ground-x/bba/consensus/bba/membership"
	"github.com/ground-x/bba/internal/netsim"
)

func main() {
	app := cli.NewApp()
	app.Name = "bba-sim"
	app.Usage = "run a local Binary Byzantine Agreement simulation"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "n", Value: 4, Usage: "total number of validators"},
		cli.IntFlag{Name: "f", Value: 1, Usage: "maximum tolerated Byzantine validators"},
		cli.StringFlag{Name: "inputs", Value: "", Usage: "comma-separated true/false per node; random if empty"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed for inputs and delivery order"},
		cli.IntFlag{Name: "max-cranks", Value: 10000, Usage: "safety bound on message deliveries"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	n := c.Int("n")
	f := c.Int("f")
	if 3*f >= n {
		return fmt.Errorf("need 3f < n, got f=%d n=%d", f, n)
	}

	rng := rand.New(rand.NewSource(c.Int64("seed")))

	ids := make([]bba.NodeID, n)
	for i := range ids {
		ids[i] = nodeIDFor(i)
	}

	inputs := parseInputs(c.String("inputs"), n, rng)

	secret := func(bba.NodeID) []byte { return []byte("bba-sim demo secret") }
	coinFactory := coin.NewFactory(secret)

	nodes := make([]*netsim.Node, n)
	for i, id := range ids {
		table := membership.New(ids, id, f, []byte("bba-sim"))
		agreement, err := bba.New(table, coinFactory, 0, ids[0])
		if err != nil {
			return err
		}
		nodes[i] = &netsim.Node{ID: id, Agreement: agreement}
	}

	net := netsim.New(nodes, rng)
	for i, node := range nodes {
		if err := net.Input(node.ID, inputs[i]); err != nil {
			return err
		}
	}

	cranked, err := net.Run(c.Int("max-cranks"))
	if err != nil {
		return err
	}

	decisions := net.Decisions()
	fmt.Printf("cranked %d messages, %d/%d decided, %d pending\n", cranked, len(decisions), n, net.Pending())
	for _, id := range ids {
		v, ok := decisions[id]
		fmt.Printf("  %s input=%t decided=%v value=%t\n", id, inputs[indexOf(ids, id)], ok, v)
	}
	return nil
}

func nodeIDFor(i int) bba.NodeID {
	var id bba.NodeID
	sum := sha256.Sum256([]byte(fmt.Sprintf("bba-sim-node-%d", i)))
	copy(id[:], sum[:])
	return id
}

func indexOf(ids []bba.NodeID, target bba.NodeID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}

func parseInputs(raw string, n int, rng *rand.Rand) []bool {
	out := make([]bool, n)
	if raw == "" {
		for i := range out {
			out[i] = rng.Intn(2) == 0
		}
		return out
	}
	parts := strings.Split(raw, ",")
	for i := range out {
		if i < len(parts) {
			out[i] = strings.TrimSpace(parts[i]) == "true"
		}
	}
	return out
}
