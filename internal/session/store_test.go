package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightlock/internal/auth"
	"lightlock/internal/gallery"
)

var demoProfile = auth.UserProfile{ID: "1", Email: "user@example.com", Name: "Demo User"}

func records(ids ...int) []gallery.ImageRecord {
	out := make([]gallery.ImageRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, gallery.ImageRecord{ID: id, Width: 800, Height: 533})
	}
	return out
}

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s := NewStore(ttl, time.Hour, time.Hour)
	t.Cleanup(s.Close)
	return s
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	sess := store.Create(demoProfile, records(1, 2, 3), records(101, 102))
	require.NotEmpty(t, sess.Token)

	got, ok := store.Get(sess.Token)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, demoProfile, got.Profile)
	assert.Equal(t, 1, store.Count())

	assert.Equal(t, gallery.StateClosed, got.Viewer.State())
	cur, ok := got.Carousel.Current()
	require.True(t, ok)
	assert.Equal(t, 101, cur.ID)
}

func TestGet_UnknownOrEmptyToken(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	_, ok := store.Get("")
	assert.False(t, ok)
	_, ok = store.Get("not-a-token")
	assert.False(t, ok)
}

func TestDestroy(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	sess := store.Create(demoProfile, records(1, 2), nil)
	sess.Viewer.Open(2)

	assert.True(t, store.Destroy(sess.Token))
	assert.False(t, store.Destroy(sess.Token))

	_, ok := store.Get(sess.Token)
	assert.False(t, ok)
	assert.Zero(t, store.Count())
	assert.Equal(t, gallery.StateClosed, sess.Viewer.State())
}

func TestGet_ExpiredSessionIsRemoved(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, 20*time.Millisecond)

	sess := store.Create(demoProfile, records(1), nil)
	time.Sleep(40 * time.Millisecond)

	_, ok := store.Get(sess.Token)
	assert.False(t, ok)
	assert.Zero(t, store.Count())
}

func TestGet_ExtendsLifetime(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	sess := store.Create(demoProfile, nil, nil)
	before := sess.ExpiresAt()
	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get(sess.Token)
	require.True(t, ok)
	assert.True(t, sess.ExpiresAt().After(before))
}

func TestSweeper_RemovesExpired(t *testing.T) {
	t.Parallel()
	store := NewStore(10*time.Millisecond, 5*time.Millisecond, time.Hour)
	t.Cleanup(store.Close)

	store.Create(demoProfile, nil, nil)
	store.Create(demoProfile, nil, nil)

	require.Eventually(t, func() bool { return store.Count() == 0 }, time.Second, 5*time.Millisecond)
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	a := store.Create(demoProfile, records(1, 2, 3), nil)
	b := store.Create(demoProfile, records(1, 2, 3), nil)
	assert.NotEqual(t, a.Token, b.Token)

	a.Viewer.Open(3)
	assert.Equal(t, gallery.StateOpen, a.Viewer.State())
	assert.Equal(t, gallery.StateClosed, b.Viewer.State())
}

func TestUseList(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	sess := store.Create(demoProfile, records(1, 2, 3, 4, 5), nil)
	sess.Viewer.Open(2)

	all := Filter{Category: gallery.CategoryAll}
	assert.False(t, sess.UseList(all, records(1, 2, 3, 4, 5)))
	assert.Equal(t, gallery.StateOpen, sess.Viewer.State())

	city := Filter{Category: gallery.CategoryCity}
	assert.True(t, sess.UseList(city, records(2)))
	assert.Equal(t, gallery.StateClosed, sess.Viewer.State())
	assert.Equal(t, 1, sess.Viewer.Len())
	assert.Equal(t, city, sess.Filter())
}

func TestViewerTransitionsTouchControls(t *testing.T) {
	t.Parallel()
	store := NewStore(time.Hour, time.Hour, 30*time.Millisecond)
	t.Cleanup(store.Close)

	sess := store.Create(demoProfile, records(1, 2, 3), nil)
	require.Eventually(t, func() bool { return !sess.Controls.Visible() }, time.Second, 5*time.Millisecond)

	sess.Viewer.Open(1)
	assert.True(t, sess.Controls.Visible())
	assert.True(t, sess.Controls.Loading(), "a freshly opened image is loading")

	sess.Controls.SetLoading(false)
	sess.Viewer.Close()
	assert.False(t, sess.Controls.Loading())
}

func TestCreate_CopiesLists(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	grid := records(1, 2, 3)
	sess := store.Create(demoProfile, grid, records(101))
	grid[0].ID = 99

	assert.Equal(t, 1, sess.Grid()[0].ID)
	assert.Len(t, sess.Featured(), 1)
}

func TestClose_IsIdempotent(t *testing.T) {
	t.Parallel()
	store := NewStore(time.Hour, time.Hour, time.Hour)
	store.Create(demoProfile, nil, nil)

	store.Close()
	store.Close()
	assert.Zero(t, store.Count())
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()
	store := newTestStore(t, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := store.Create(demoProfile, records(1, 2, 3), nil)
			sess.Viewer.Open(1)
			sess.Viewer.Next()
			_, _ = store.Get(sess.Token)
			store.Destroy(sess.Token)
		}()
	}
	wg.Wait()
	assert.Zero(t, store.Count())
}
