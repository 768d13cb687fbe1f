// Package membership provides a concrete bba.NetworkInfo: a fixed,
// read-only validator table shared by every Agreement/CommonCoin instance
// in a session, the way klaytn's istanbul.ValidatorSet is shared by a
// core instance (consensus/istanbul/validator).
package membership

import (
	"sort"

	"github.com/ground-x/bba/consensus/bba"
)

// Table is an immutable validator set: N members (of which f may be
// Byzantine, 3f < N), canonically ordered so every node computes the same
// NodeIndex for the same id.
type Table struct {
	ours         bba.NodeID
	ids          []bba.NodeID
	index        map[bba.NodeID]int
	faulty       int
	invocationID []byte
	validator    bool
}

// New builds a Table from the full member list. faulty is f; the caller
// is responsible for ensuring 3*faulty < len(members). ours must be a
// member. invocationID domain-separates this session's nonces from any
// other session sharing the same process.
func New(members []bba.NodeID, ours bba.NodeID, faulty int, invocationID []byte) *Table {
	ids := make([]bba.NodeID, len(members))
	copy(ids, members)
	sort.Slice(ids, func(i, j int) bool { return ids[i].Cmp(ids[j]) < 0 })

	index := make(map[bba.NodeID]int, len(ids))
	isValidator := false
	for i, id := range ids {
		index[id] = i
		if id == ours {
			isValidator = true
		}
	}

	return &Table{
		ours:         ours,
		ids:          ids,
		index:        index,
		faulty:       faulty,
		invocationID: invocationID,
		validator:    isValidator,
	}
}

func (t *Table) NumNodes() int  { return len(t.ids) }
func (t *Table) NumFaulty() int { return t.faulty }
func (t *Table) IsValidator() bool { return t.validator }
func (t *Table) OurID() bba.NodeID { return t.ours }

func (t *Table) NodeIndex(id bba.NodeID) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

func (t *Table) InvocationID() []byte { return t.invocationID }

// Members returns the canonically ordered validator list.
func (t *Table) Members() []bba.NodeID {
	out := make([]bba.NodeID, len(t.ids))
	copy(out, t.ids)
	return out
}
