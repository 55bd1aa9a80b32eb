// Package session holds the explicit per-user application state: who is
// signed in and where their viewer and carousel currently are.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lightlock/internal/auth"
	"lightlock/internal/gallery"
	"lightlock/pkg/logger"
)

// Session is one authenticated visitor. The navigators and controls are
// scoped to it and torn down with it.
type Session struct {
	Token     string
	Profile   auth.UserProfile
	CreatedAt time.Time

	Viewer   *gallery.Navigator
	Carousel *gallery.Navigator
	Controls *gallery.Controls

	grid     []gallery.ImageRecord
	featured []gallery.ImageRecord

	mu        sync.Mutex
	expiresAt time.Time
	filter    Filter
}

// Filter is the category/search the viewer list was built from.
type Filter struct {
	Category string
	Query    string
}

// Grid is the catalog snapshot taken at sign-in. Callers must not modify it.
func (s *Session) Grid() []gallery.ImageRecord {
	return s.grid
}

// Featured is the carousel snapshot taken at sign-in.
func (s *Session) Featured() []gallery.ImageRecord {
	return s.featured
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(ttl time.Duration) {
	s.mu.Lock()
	s.expiresAt = time.Now().Add(ttl)
	s.mu.Unlock()
}

// Filter returns the filter the viewer list was last built from.
func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// UseList points the viewer at a new list. When the filter is unchanged
// the current viewer state is kept, otherwise the viewer is reset and
// closed. It reports whether a reset happened.
func (s *Session) UseList(f Filter, images []gallery.ImageRecord) bool {
	s.mu.Lock()
	same := s.filter == f
	s.filter = f
	s.mu.Unlock()

	if same {
		return false
	}
	s.Viewer.Reset(images)
	return true
}

// viewerMoved shows the controls and, while a new image is up, marks it as
// loading until the client reports it loaded.
func (s *Session) viewerMoved() {
	s.Controls.SetLoading(s.Viewer.State() == gallery.StateOpen)
	s.Controls.Touch()
}

func (s *Session) teardown() {
	s.Controls.Stop()
	s.Viewer.OnTransition(nil)
	s.Viewer.Close()
}

// Store keeps sessions in memory keyed by token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	idle     time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewStore starts a store whose sessions live for ttl after their last
// use. A sweeper removes expired sessions every sweepInterval until Close.
func NewStore(ttl, sweepInterval, controlsIdle time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		idle:     controlsIdle,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

// Create signs profile in. The grid and featured lists are copied, so the
// session keeps seeing the same lists for its whole lifetime.
func (s *Store) Create(profile auth.UserProfile, images, featured []gallery.ImageRecord) *Session {
	now := time.Now()
	images = append([]gallery.ImageRecord(nil), images...)
	featured = append([]gallery.ImageRecord(nil), featured...)

	sess := &Session{
		Token:     uuid.NewString(),
		Profile:   profile,
		CreatedAt: now,
		Viewer:    gallery.NewNavigator(images),
		Carousel:  gallery.NewNavigator(featured),
		Controls:  gallery.NewControls(s.idle),
		grid:      images,
		featured:  featured,
		expiresAt: now.Add(s.ttl),
		filter:    Filter{Category: gallery.CategoryAll},
	}
	sess.Viewer.OnTransition(sess.viewerMoved)

	// The carousel is always showing something.
	if len(featured) > 0 {
		sess.Carousel.Open(featured[0].ID)
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the live session for token and extends its lifetime.
// Expired sessions are removed on the spot.
func (s *Store) Get(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if sess.expired(time.Now()) {
		s.Destroy(token)
		return nil, false
	}

	sess.touch(s.ttl)
	return sess, true
}

// Destroy signs the session out. Unknown tokens are ignored.
func (s *Store) Destroy(token string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	if ok {
		delete(s.sessions, token)
	}
	s.mu.Unlock()

	if ok {
		sess.teardown()
	}
	return ok
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the sweeper and tears down every remaining session.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.done

		s.mu.Lock()
		remaining := s.sessions
		s.sessions = make(map[string]*Session)
		s.mu.Unlock()

		for _, sess := range remaining {
			sess.teardown()
		}
	})
}

func (s *Store) sweep(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			if n := s.removeExpired(now); n > 0 {
				logger.LogInfo("Session sweep: %d expired session(s) removed", n)
			}
		}
	}
}

func (s *Store) removeExpired(now time.Time) int {
	var expired []*Session

	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.expired(now) {
			delete(s.sessions, token)
			expired = append(expired, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.teardown()
	}
	return len(expired)
}
