// Package allocator assigns integer identifiers and display-order values.
// Both only ever look at the current maximum, so gaps left by deletions are
// never refilled.
package allocator

// NextID returns max(ids)+1, or 1 for an empty collection.
func NextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// NextOrder returns max(orders)+1, or 0 for an empty collection. For menu
// items the caller restricts orders to the items of one category.
func NextOrder(orders []int) int {
	max := -1
	for _, o := range orders {
		if o > max {
			max = o
		}
	}
	return max + 1
}
