package field

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/format"
)

// Change is a value together with its validation state
type Change struct {
	Value *mathx.Decimal
	State format.State
}

// String renders the change for logs and the CLI
func (c Change) String() string {
	value := "<nil>"
	if c.Value != nil {
		value = c.Value.String()
	}
	return fmt.Sprintf("value=%s state=%s", value, c.State)
}

// Stream holds the latest Change of a field. It is written from the event
// loop only; Load may be called from any goroutine.
type Stream struct {
	latest atomic.Pointer[Change]

	mu     sync.Mutex
	subs   []subscriber
	nextID uint64
}

type subscriber struct {
	id uint64
	fn func(Change)
}

// NewStream creates an empty stream
func NewStream() *Stream {
	return &Stream{}
}

// Load returns the latest change and whether one was published yet
func (s *Stream) Load() (Change, bool) {
	c := s.latest.Load()
	if c == nil {
		return Change{}, false
	}
	return *c, true
}

// Subscribe registers fn for every future change. The returned function
// removes the subscription and may be called more than once.
func (s *Stream) Subscribe(fn func(Change)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// publish stores c and notifies subscribers outside the lock
func (s *Stream) publish(c Change) {
	stored := c
	s.latest.Store(&stored)

	s.mu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(c)
	}
}
