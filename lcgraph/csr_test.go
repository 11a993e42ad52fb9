package lcgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ustiugov/Galois/lcgraph"
	"github.com/ustiugov/Galois/nhood"
	"github.com/ustiugov/Galois/structural"
)

// diamond builds the reference graph used throughout the package tests:
// 0→1(w=5), 0→2(w=1), 1→2(w=3), 2→3(w=2).
func diamond(t *testing.T) *structural.Memory[int64] {
	t.Helper()

	b, err := structural.NewBuilder[int64](4)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 5))
	require.NoError(t, b.AddEdge(0, 2, 1))
	require.NoError(t, b.AddEdge(1, 2, 3))
	require.NoError(t, b.AddEdge(2, 3, 2))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

type CSRSuite struct {
	suite.Suite
	g *lcgraph.CSR[int, int64]
}

func (s *CSRSuite) SetupTest() {
	g, err := lcgraph.LoadCSR[int, int64](diamond(s.T()), lcgraph.WithWorkers(2))
	require.NoError(s.T(), err)
	s.g = g
}

// edgeRow collects (dst, payload) pairs of n's out-edges in order.
func (s *CSRSuite) edgeRow(n lcgraph.NodeID) (dsts []lcgraph.NodeID, weights []int64) {
	c := nhood.NewCtx(0)
	edges, ok := s.g.EdgesOf(c, n, lcgraph.None)
	require.True(s.T(), ok)
	for e := range edges {
		dsts = append(dsts, s.g.EdgeDst(e))
		weights = append(weights, *s.g.EdgeData(e, lcgraph.None))
	}

	return dsts, weights
}

func (s *CSRSuite) TestTopologyFidelity() {
	require := require.New(s.T())
	require.Equal(4, s.g.Size())
	require.Equal(4, s.g.EdgeCount())

	dsts, weights := s.edgeRow(0)
	require.Equal([]lcgraph.NodeID{1, 2}, dsts, "structural neighbor order preserved")
	require.Equal([]int64{5, 1}, weights)

	dsts, weights = s.edgeRow(2)
	require.Equal([]lcgraph.NodeID{3}, dsts)
	require.Equal([]int64{2}, weights)

	dsts, _ = s.edgeRow(3)
	require.Empty(dsts)

	require.True(s.g.HasNeighbor(0, 2))
	require.False(s.g.HasNeighbor(2, 0))
}

func (s *CSRSuite) TestSortEdgesByDataKeepsPairing() {
	require := require.New(s.T())
	c := nhood.NewCtx(0)

	require.True(s.g.SortEdgesByData(c, 0, func(a, b int64) bool { return a < b }, lcgraph.CheckRace))

	dsts, weights := s.edgeRow(0)
	require.Equal([]lcgraph.NodeID{2, 1}, dsts, "ascending sort flips the row")
	require.Equal([]int64{1, 5}, weights, "payload stays paired with its destination")

	// Descending restores the original permutation; pairing must survive.
	require.True(s.g.SortEdgesByData(c, 0, func(a, b int64) bool { return a > b }, lcgraph.CheckRace))
	dsts, weights = s.edgeRow(0)
	require.Equal([]lcgraph.NodeID{1, 2}, dsts)
	require.Equal([]int64{5, 1}, weights)
}

func (s *CSRSuite) TestSortEdgesByPair() {
	require := require.New(s.T())
	c := nhood.NewCtx(0)

	require.True(s.g.SortEdges(c, 0, func(a, b lcgraph.EdgeSortValue[lcgraph.NodeID, int64]) bool {
		return a.Dst > b.Dst
	}, lcgraph.CheckRace))
	dsts, weights := s.edgeRow(0)
	require.Equal([]lcgraph.NodeID{2, 1}, dsts)
	require.Equal([]int64{1, 5}, weights)
}

// TestClaimBlocksRival: A claims node 2, B's claim fails, and A's
// subsequent CheckRace access succeeds without re-claiming.
func (s *CSRSuite) TestClaimBlocksRival() {
	require := require.New(s.T())
	a := nhood.NewCtx(0)
	b := nhood.NewCtx(1)

	_, ok := s.g.GetData(a, 2, lcgraph.CheckRace)
	require.True(ok)
	require.Equal(1, a.Claims())

	_, ok = s.g.GetData(b, 2, lcgraph.CheckRace)
	require.False(ok, "rival claim on node 2 must fail")

	_, ok = s.g.GetData(a, 2, lcgraph.CheckRace)
	require.True(ok, "holder re-access succeeds")
	require.Equal(1, a.Claims(), "re-access must not re-claim")

	// None never upgrades and never blocks: B can still read unsafely.
	_, ok = s.g.GetData(b, 2, lcgraph.None)
	require.True(ok)

	a.ReleaseAll()
	_, ok = s.g.GetData(b, 2, lcgraph.CheckRace)
	require.True(ok)
}

func (s *CSRSuite) TestPayloadMutation() {
	require := require.New(s.T())
	c := nhood.NewCtx(0)

	d, ok := s.g.GetData(c, 1, lcgraph.WriteIntent)
	require.True(ok)
	require.Zero(*d, "node payload is default-constructed at load")
	*d = 17

	d2, ok := s.g.GetData(c, 1, lcgraph.CheckRace)
	require.True(ok)
	require.Equal(17, *d2)

	edges, ok := s.g.EdgesOf(c, 0, lcgraph.None)
	require.True(ok)
	for e := range edges {
		*s.g.EdgeData(e, lcgraph.WriteIntent) += 10
	}
	_, weights := s.edgeRow(0)
	require.Equal([]int64{15, 11}, weights)
}

func (s *CSRSuite) TestLocalNodesPartitionNodes() {
	require := require.New(s.T())

	seen := make(map[lcgraph.NodeID]int)
	for w := 0; w < 2; w++ {
		for n := range s.g.LocalNodes(w) {
			seen[n]++
		}
	}
	require.Len(seen, 4, "workers must cover every node")
	for n, count := range seen {
		require.Equal(1, count, "node %d seen more than once", n)
	}
}

func (s *CSRSuite) TestNodesRestartable() {
	require := require.New(s.T())

	nodes := s.g.Nodes()
	first := make([]lcgraph.NodeID, 0, 4)
	for n := range nodes {
		first = append(first, n)
	}
	second := make([]lcgraph.NodeID, 0, 4)
	for n := range nodes {
		second = append(second, n)
	}
	require.Equal(first, second, "node sequence must be restartable")
	require.Equal([]lcgraph.NodeID{0, 1, 2, 3}, first)
}

func TestCSRSuite(t *testing.T) {
	suite.Run(t, new(CSRSuite))
}

func TestLoadCSRNil(t *testing.T) {
	_, err := lcgraph.LoadCSR[int, int64](nil)
	require.ErrorIs(t, err, lcgraph.ErrNilStructural)
}

func TestWriteAuditHook(t *testing.T) {
	require := require.New(t)

	audits := 0
	g, err := lcgraph.LoadCSR[int, int64](diamond(t), lcgraph.WithWriteAudit(func() { audits++ }))
	require.NoError(err)

	c := nhood.NewCtx(0)
	_, ok := g.GetData(c, 0, lcgraph.WriteIntent)
	require.True(ok)
	require.Equal(1, audits)

	_, ok = g.GetData(c, 0, lcgraph.CheckRace)
	require.True(ok)
	require.Equal(1, audits, "non-write policies must not fire the audit hook")
}
