package nhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ustiugov/Galois/nhood"
)

func TestComparatorProjectsActive(t *testing.T) {
	require := require.New(t)

	cmp := nhood.NewComparator(func(a, b int) bool { return a < b })

	lo := nhood.NewOrdered(0, 3)
	hi := nhood.NewOrdered(1, 7)

	require.True(cmp.Less(lo, hi))
	require.False(cmp.Less(hi, lo))
	require.False(cmp.Less(lo, lo), "strict ordering: no element precedes itself")
}

func TestComparatorNilContracts(t *testing.T) {
	require.Panics(t, func() { nhood.NewComparator[int](nil) })

	cmp := nhood.NewComparator(func(a, b int) bool { return a < b })
	require.Panics(t, func() { cmp.Less(nil, nhood.NewOrdered(0, 1)) })
}

// TestOrderedIsClaimIdentity verifies an Ordered context claims through
// its embedded Ctx.
func TestOrderedIsClaimIdentity(t *testing.T) {
	require := require.New(t)

	m := nhood.NewPtrManager(2)
	var l nhood.Lockable

	task := nhood.NewOrdered(0, 42)
	rival := nhood.NewOrdered(1, 1)

	require.True(nhood.Acquire(m, &task.Ctx, &l))
	require.False(nhood.Acquire(m, &rival.Ctx, &l))

	require.Equal(42, task.Active())
	task.SetActive(43)
	require.Equal(43, task.Active())

	task.ReleaseAll()
	require.True(nhood.Acquire(m, &rival.Ctx, &l))
}
