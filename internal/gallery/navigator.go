package gallery

import "sync"

// ViewerState is the navigator's state: Closed, or Open on some image.
type ViewerState string

const (
	StateClosed ViewerState = "closed"
	StateOpen   ViewerState = "open"
)

// Snapshot is a read-only copy of the navigator for presentation. Previous
// and Next are the preload candidates; all three are nil when closed.
type Snapshot struct {
	State    ViewerState  `json:"state"`
	Current  *ImageRecord `json:"current,omitempty"`
	Previous *ImageRecord `json:"previous,omitempty"`
	Next     *ImageRecord `json:"next,omitempty"`
	Index    int          `json:"index"`
	Total    int          `json:"total"`
}

// CanNavigate reports whether next/previous would move.
func (s Snapshot) CanNavigate() bool {
	return s.State == StateOpen && s.Total >= 2
}

// Navigator owns which image of a fixed, ordered list is open and what the
// neighbours are. Navigation wraps around in both directions.
//
// Invalid requests (unknown id, navigating while closed, navigating a
// single-image list) are absorbed as no-ops. A Navigator is safe for
// concurrent use.
type Navigator struct {
	mu     sync.Mutex
	images []ImageRecord
	open   int // index into images, -1 when closed
	prev   int
	next   int

	// onTransition fires after every state change, outside the lock.
	onTransition func()
}

func NewNavigator(images []ImageRecord) *Navigator {
	n := &Navigator{open: -1}
	n.images = cloneImages(images)
	return n
}

// OnTransition registers f to run after every successful open, next,
// previous or close. Passing nil removes it.
func (n *Navigator) OnTransition(f func()) {
	n.mu.Lock()
	n.onTransition = f
	n.mu.Unlock()
}

// Open moves to Open(id). Unknown ids, including every id of an empty
// list, leave the state untouched. It reports whether the state changed.
func (n *Navigator) Open(id int) bool {
	n.mu.Lock()
	i := IndexOf(n.images, id)
	if i < 0 {
		n.mu.Unlock()
		return false
	}
	n.moveTo(i)
	return n.unlockAndNotify()
}

// Close returns to Closed unconditionally. It reports whether the viewer
// was open; closing a closed viewer does not run the transition hook.
func (n *Navigator) Close() bool {
	n.mu.Lock()
	if n.open < 0 {
		n.mu.Unlock()
		return false
	}
	n.open, n.prev, n.next = -1, -1, -1
	return n.unlockAndNotify()
}

// Next advances by one with wraparound. It is a no-op when closed or when
// the list has fewer than two entries.
func (n *Navigator) Next() bool {
	return n.step(1)
}

// Previous steps back by one with wraparound, under the same conditions as Next.
func (n *Navigator) Previous() bool {
	return n.step(-1)
}

func (n *Navigator) step(delta int) bool {
	n.mu.Lock()
	total := len(n.images)
	if n.open < 0 || total < 2 {
		n.mu.Unlock()
		return false
	}
	n.moveTo((n.open + delta + total) % total)
	return n.unlockAndNotify()
}

// Reset swaps in a new list and closes the viewer. The machine is reset,
// never torn down.
func (n *Navigator) Reset(images []ImageRecord) {
	n.mu.Lock()
	n.images = cloneImages(images)
	n.open, n.prev, n.next = -1, -1, -1
	n.unlockAndNotify()
}

// moveTo opens index i and recomputes the lookahead. Caller holds mu.
func (n *Navigator) moveTo(i int) {
	total := len(n.images)
	n.open = i
	n.next = (i + 1) % total
	n.prev = (i - 1 + total) % total
}

// unlockAndNotify releases mu and then runs the transition hook, so the
// hook may call back into the navigator.
func (n *Navigator) unlockAndNotify() bool {
	f := n.onTransition
	n.mu.Unlock()
	if f != nil {
		f()
	}
	return true
}

func (n *Navigator) State() ViewerState {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.open < 0 {
		return StateClosed
	}
	return StateOpen
}

// Current returns the open image.
func (n *Navigator) Current() (ImageRecord, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.open < 0 {
		return ImageRecord{}, false
	}
	return n.images[n.open], true
}

// Lookahead returns the previous and next images to preload. With a single
// entry both are the current image.
func (n *Navigator) Lookahead() (prev, next ImageRecord, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.open < 0 {
		return ImageRecord{}, ImageRecord{}, false
	}
	return n.images[n.prev], n.images[n.next], true
}

// Images returns a copy of the list being navigated.
func (n *Navigator) Images() []ImageRecord {
	n.mu.Lock()
	defer n.mu.Unlock()
	return cloneImages(n.images)
}

func (n *Navigator) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.images)
}

func (n *Navigator) Snapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()

	s := Snapshot{State: StateClosed, Index: -1, Total: len(n.images)}
	if n.open < 0 {
		return s
	}

	cur, prev, next := n.images[n.open], n.images[n.prev], n.images[n.next]
	s.State = StateOpen
	s.Index = n.open
	s.Current = &cur
	s.Previous = &prev
	s.Next = &next
	return s
}

func cloneImages(images []ImageRecord) []ImageRecord {
	if len(images) == 0 {
		return nil
	}
	out := make([]ImageRecord, len(images))
	copy(out, images)
	return out
}
