package membership_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ground-x/bba/consensus/bba"
	"github.com/ground-x/bba/consensus/bba/membership"
)

func TestTableOrdersMembersCanonically(t *testing.T) {
	var a, b, c bba.NodeID
	a[0], b[0], c[0] = 3, 1, 2

	table := membership.New([]bba.NodeID{a, b, c}, b, 0, []byte("inv"))
	require.Equal(t, 3, table.NumNodes())
	require.True(t, table.IsValidator())

	idxA, ok := table.NodeIndex(a)
	require.True(t, ok)
	idxB, _ := table.NodeIndex(b)
	idxC, _ := table.NodeIndex(c)
	require.True(t, idxB < idxC)
	require.True(t, idxC < idxA)
}

func TestTableRejectsNonMemberAsSelf(t *testing.T) {
	var a, b, stranger bba.NodeID
	a[0], b[0], stranger[0] = 1, 2, 9

	table := membership.New([]bba.NodeID{a, b}, stranger, 0, []byte("inv"))
	require.False(t, table.IsValidator())
	_, ok := table.NodeIndex(stranger)
	require.False(t, ok)
}
