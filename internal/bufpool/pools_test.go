package bufpool

import "testing"

func TestGetReturnsCapacityAtLeastRequested(t *testing.T) {
	for _, n := range []int{1, 100, 1 << 12, 1<<12 + 1, 1 << 20} {
		b := Get(n)
		if cap(b) < n {
			t.Errorf("Get(%d) cap = %d, want >= %d", n, cap(b), n)
		}
		if len(b) != 0 {
			t.Errorf("Get(%d) len = %d, want 0", n, len(b))
		}
		Put(b)
	}
}

func TestPutGetRoundTripsSameSizeClass(t *testing.T) {
	b := Get(1 << 16)
	backing := cap(b)
	Put(b)
	b2 := Get(1 << 16)
	if cap(b2) != backing {
		t.Errorf("Get after Put cap = %d, want reused capacity %d", cap(b2), backing)
	}
	Put(b2)
}

func TestPutIgnoresBufferBelowMinimumSegment(t *testing.T) {
	small := make([]byte, 0, 4)
	Put(small) // must not panic or corrupt the pool
	b := Get(1 << 12)
	if cap(b) < 1<<12 {
		t.Errorf("Get(1<<12) cap = %d, want >= %d", cap(b), 1<<12)
	}
	Put(b)
}

func TestWarmForThresholdSeedsMatchingSizeClass(t *testing.T) {
	const threshold = 1 << 15
	WarmForThreshold(threshold)
	b := Get(threshold)
	if cap(b) < threshold {
		t.Errorf("Get(%d) after warm cap = %d, want >= %d", threshold, cap(b), threshold)
	}
	Put(b)
}

func TestWarmForThresholdIgnoresNonPositive(t *testing.T) {
	WarmForThreshold(0)
	WarmForThreshold(-1) // must not panic
}
