package nhood_test

import (
	"fmt"

	"github.com/ustiugov/Galois/nhood"
)

// ExampleAcquire walks the claim lifecycle of one contested resource: the
// first context wins, the rival observes contention, and bulk release
// hands the resource over.
func ExampleAcquire() {
	mgr := nhood.NewPtrManager(2)
	var node nhood.Lockable

	a := nhood.NewCtx(0)
	b := nhood.NewCtx(1)

	fmt.Println("a claims:", nhood.Acquire(mgr, a, &node))
	fmt.Println("b claims:", nhood.Acquire(mgr, b, &node))

	a.ReleaseAll()
	fmt.Println("b retries:", nhood.Acquire(mgr, b, &node))

	// Output:
	// a claims: true
	// b claims: false
	// b retries: true
}

// ExampleComparator orders speculative tasks by their active element, the
// way a priority scheduler decides which conflicting task proceeds.
func ExampleComparator() {
	cmp := nhood.NewComparator(func(a, b int) bool { return a < b })

	urgent := nhood.NewOrdered(0, 10)
	later := nhood.NewOrdered(1, 99)

	fmt.Println("urgent first:", cmp.Less(urgent, later))

	// Output:
	// urgent first: true
}
