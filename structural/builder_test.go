package structural_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ustiugov/Galois/structural"
)

type BuilderSuite struct {
	suite.Suite
	b *structural.Builder[int]
}

func (s *BuilderSuite) SetupTest() {
	var err error
	s.b, err = structural.NewBuilder[int](4)
	require.NoError(s.T(), err)
}

func (s *BuilderSuite) TestNegativeSize() {
	_, err := structural.NewBuilder[int](-1)
	require.ErrorIs(s.T(), err, structural.ErrNegativeSize)
}

func (s *BuilderSuite) TestRangeValidation() {
	require := require.New(s.T())
	require.ErrorIs(s.b.AddEdge(0, 4, 1), structural.ErrNodeRange)
	require.ErrorIs(s.b.AddEdge(4, 0, 1), structural.ErrNodeRange)
	require.NoError(s.b.AddEdge(3, 0, 1))
}

func (s *BuilderSuite) TestInsertionOrderPreserved() {
	require := require.New(s.T())
	// Two edges out of 0, in a deliberate non-sorted destination order.
	require.NoError(s.b.AddEdge(0, 2, 7))
	require.NoError(s.b.AddEdge(0, 1, 9))

	g, err := s.b.Build()
	require.NoError(err)

	require.Equal(4, g.Size())
	require.Equal(2, g.SizeEdges())
	require.Equal(2, g.Degree(0))
	require.Equal(structural.NodeID(2), g.Neighbor(0, 0))
	require.Equal(structural.NodeID(1), g.Neighbor(0, 1))
	require.Equal(7, g.EdgeValue(0, 0))
	require.Equal(9, g.EdgeValue(0, 1))
	require.Zero(g.Degree(3))
}

func (s *BuilderSuite) TestEmptyGraph() {
	require := require.New(s.T())
	b, err := structural.NewBuilder[int](0)
	require.NoError(err)
	g, err := b.Build()
	require.NoError(err)
	require.Zero(g.Size())
	require.Zero(g.SizeEdges())
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

// TestTranspose verifies that every edge u→v(w) appears as v→u(w) and that
// per-target rows are ordered by ascending source.
func TestTranspose(t *testing.T) {
	require := require.New(t)

	b, err := structural.NewBuilder[int](4)
	require.NoError(err)
	require.NoError(b.AddEdge(0, 1, 5))
	require.NoError(b.AddEdge(0, 2, 1))
	require.NoError(b.AddEdge(1, 2, 3))
	require.NoError(b.AddEdge(2, 3, 2))
	g, err := b.Build()
	require.NoError(err)

	tg := structural.Transpose[int](g)
	require.Equal(g.Size(), tg.Size())
	require.Equal(g.SizeEdges(), tg.SizeEdges())

	require.Zero(tg.Degree(0))
	require.Equal(1, tg.Degree(1))
	require.Equal(structural.NodeID(0), tg.Neighbor(1, 0))
	require.Equal(5, tg.EdgeValue(1, 0))

	// Node 2 receives from 0 (w=1) and 1 (w=3), ordered by ascending source.
	require.Equal(2, tg.Degree(2))
	require.Equal(structural.NodeID(0), tg.Neighbor(2, 0))
	require.Equal(1, tg.EdgeValue(2, 0))
	require.Equal(structural.NodeID(1), tg.Neighbor(2, 1))
	require.Equal(3, tg.EdgeValue(2, 1))

	require.Equal(1, tg.Degree(3))
	require.Equal(structural.NodeID(2), tg.Neighbor(3, 0))
	require.Equal(2, tg.EdgeValue(3, 0))
}

func TestGenerators(t *testing.T) {
	require := require.New(t)

	c := structural.Cycle[int](5, structural.ConstantWeight(1))
	require.Equal(5, c.Size())
	require.Equal(5, c.SizeEdges())
	for i := 0; i < 5; i++ {
		require.Equal(1, c.Degree(structural.NodeID(i)))
		require.Equal(structural.NodeID((i+1)%5), c.Neighbor(structural.NodeID(i), 0))
	}

	st := structural.Star(4, func(_, dst structural.NodeID) int { return int(dst) })
	require.Equal(3, st.SizeEdges())
	require.Equal(3, st.Degree(0))
	require.Equal(2, st.EdgeValue(0, 1))

	k := structural.Complete[int](3, structural.ConstantWeight(1))
	require.Equal(6, k.SizeEdges())
	require.Equal(2, k.Degree(1))
	require.Equal(structural.NodeID(0), k.Neighbor(1, 0))
	require.Equal(structural.NodeID(2), k.Neighbor(1, 1))

	require.Panics(func() { structural.Cycle[int](2, structural.ConstantWeight(1)) })
}
