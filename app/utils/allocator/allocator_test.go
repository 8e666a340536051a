package allocator

import "testing"

func TestNextIDEmpty(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Errorf("NextID(nil) = %d, want 1", got)
	}
}

func TestNextIDSkipsGaps(t *testing.T) {
	if got := NextID([]int{3, 7}); got != 8 {
		t.Errorf("NextID({3,7}) = %d, want 8", got)
	}
}

func TestNextIDStrictlyIncreasing(t *testing.T) {
	ids := []int{}
	last := 0
	for i := 0; i < 50; i++ {
		id := NextID(ids)
		if id <= last {
			t.Fatalf("allocated id %d not greater than previous %d", id, last)
		}
		ids = append(ids, id)
		last = id
	}
}

func TestNextOrder(t *testing.T) {
	if got := NextOrder(nil); got != 0 {
		t.Errorf("NextOrder(nil) = %d, want 0", got)
	}
	if got := NextOrder([]int{0, 4, 2}); got != 5 {
		t.Errorf("NextOrder({0,4,2}) = %d, want 5", got)
	}
}
