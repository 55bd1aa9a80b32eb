package gallery

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(ids ...int) []ImageRecord {
	out := make([]ImageRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, ImageRecord{ID: id, SourceURL: "https://cdn.example.com/" + string(rune('a'+id%26)), AltText: "img", Width: 800, Height: 533})
	}
	return out
}

func currentID(t *testing.T, n *Navigator) int {
	t.Helper()
	cur, ok := n.Current()
	require.True(t, ok, "viewer should be open")
	return cur.ID
}

func TestNavigator_StartsClosed(t *testing.T) {
	n := NewNavigator(records(1, 2, 3))

	assert.Equal(t, StateClosed, n.State())
	_, ok := n.Current()
	assert.False(t, ok)

	snap := n.Snapshot()
	assert.Equal(t, StateClosed, snap.State)
	assert.Nil(t, snap.Current)
	assert.Equal(t, -1, snap.Index)
	assert.Equal(t, 3, snap.Total)
}

func TestNavigator_WraparoundScenario(t *testing.T) {
	const a, b, c = 10, 20, 30
	n := NewNavigator(records(a, b, c))

	require.True(t, n.Open(a))
	n.Next()
	assert.Equal(t, b, currentID(t, n))
	n.Previous()
	assert.Equal(t, a, currentID(t, n))
	n.Previous()
	assert.Equal(t, c, currentID(t, n))
	n.Next()
	assert.Equal(t, a, currentID(t, n))

	n.Open(b)
	n.Next()
	assert.Equal(t, c, currentID(t, n))
	n.Next()
	assert.Equal(t, a, currentID(t, n))
}

func TestNavigator_CycleClosure(t *testing.T) {
	for size := 2; size <= 7; size++ {
		ids := make([]int, size)
		for i := range ids {
			ids[i] = 100 + i
		}
		n := NewNavigator(records(ids...))

		for _, start := range ids {
			n.Open(start)
			for i := 0; i < size; i++ {
				n.Next()
			}
			assert.Equal(t, start, currentID(t, n), "size=%d start=%d forward", size, start)

			for i := 0; i < size; i++ {
				n.Previous()
			}
			assert.Equal(t, start, currentID(t, n), "size=%d start=%d backward", size, start)
		}
	}
}

func TestNavigator_NextThenPreviousIsIdentity(t *testing.T) {
	n := NewNavigator(records(1, 2, 3, 4, 5))

	for _, id := range []int{1, 3, 5} {
		n.Open(id)
		n.Next()
		n.Previous()
		assert.Equal(t, id, currentID(t, n))

		n.Previous()
		n.Next()
		assert.Equal(t, id, currentID(t, n))
	}
}

func TestNavigator_SingleEntry(t *testing.T) {
	n := NewNavigator(records(7))

	require.True(t, n.Open(7))
	assert.False(t, n.Next())
	assert.Equal(t, 7, currentID(t, n))
	assert.False(t, n.Previous())
	assert.Equal(t, 7, currentID(t, n))

	prev, next, ok := n.Lookahead()
	require.True(t, ok)
	assert.Equal(t, 7, prev.ID)
	assert.Equal(t, 7, next.ID)
	assert.False(t, n.Snapshot().CanNavigate())
}

func TestNavigator_EmptyListNeverOpens(t *testing.T) {
	n := NewNavigator(nil)

	for _, id := range []int{0, 1, -1, 42} {
		assert.False(t, n.Open(id))
		assert.Equal(t, StateClosed, n.State())
	}
	assert.False(t, n.Next())
	assert.False(t, n.Previous())
	assert.Equal(t, StateClosed, n.State())
}

func TestNavigator_UnknownIDIsNoop(t *testing.T) {
	n := NewNavigator(records(1, 2, 3))

	assert.False(t, n.Open(99))
	assert.Equal(t, StateClosed, n.State())

	n.Open(2)
	assert.False(t, n.Open(99))
	assert.Equal(t, 2, currentID(t, n))
}

func TestNavigator_NavigateWhileClosedIsNoop(t *testing.T) {
	n := NewNavigator(records(1, 2, 3))

	assert.False(t, n.Next())
	assert.False(t, n.Previous())
	assert.Equal(t, StateClosed, n.State())
}

func TestNavigator_CloseFromAnyState(t *testing.T) {
	n := NewNavigator(records(1, 2))

	assert.False(t, n.Close(), "already closed")
	assert.Equal(t, StateClosed, n.State())

	n.Open(2)
	assert.True(t, n.Close())
	assert.Equal(t, StateClosed, n.State())
	_, _, ok := n.Lookahead()
	assert.False(t, ok)
}

func TestNavigator_LookaheadFollowsEveryMove(t *testing.T) {
	n := NewNavigator(records(1, 2, 3, 4))

	n.Open(1)
	prev, next, _ := n.Lookahead()
	assert.Equal(t, 4, prev.ID)
	assert.Equal(t, 2, next.ID)

	n.Next()
	prev, next, _ = n.Lookahead()
	assert.Equal(t, 1, prev.ID)
	assert.Equal(t, 3, next.ID)

	n.Previous()
	n.Previous()
	prev, next, _ = n.Lookahead()
	assert.Equal(t, 3, prev.ID)
	assert.Equal(t, 1, next.ID)

	snap := n.Snapshot()
	assert.Equal(t, 4, snap.Current.ID)
	assert.Equal(t, 3, snap.Previous.ID)
	assert.Equal(t, 1, snap.Next.ID)
	assert.Equal(t, 3, snap.Index)
}

func TestNavigator_ResetCloses(t *testing.T) {
	n := NewNavigator(records(1, 2, 3))
	n.Open(3)

	n.Reset(records(3, 4))
	assert.Equal(t, StateClosed, n.State())
	assert.Equal(t, 2, n.Len())

	n.Reset(nil)
	assert.False(t, n.Open(3))
}

func TestNavigator_ListIsCopied(t *testing.T) {
	list := records(1, 2)
	n := NewNavigator(list)
	list[0].ID = 50

	assert.True(t, n.Open(1))
	imgs := n.Images()
	imgs[1].ID = 60
	n.Next()
	assert.Equal(t, 2, currentID(t, n))
}

func TestNavigator_TransitionHook(t *testing.T) {
	n := NewNavigator(records(1, 2))

	var calls atomic.Int32
	n.OnTransition(func() {
		calls.Add(1)
		_ = n.State() // re-entrant calls must not deadlock
	})

	n.Open(99) // no-op
	n.Next()   // closed, no-op
	n.Close()  // closed, no-op
	n.Open(1)
	n.Next()
	n.Previous()
	n.Close()
	n.Close()

	assert.Equal(t, int32(4), calls.Load())
}

func TestNavigator_ConcurrentUse(t *testing.T) {
	n := NewNavigator(records(1, 2, 3, 4, 5))
	n.Open(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					n.Next()
				} else {
					n.Previous()
				}
				_ = n.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	// 400 nexts and 400 previouses cancel out.
	assert.Equal(t, 1, currentID(t, n))
}
