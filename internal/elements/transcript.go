package elements

import (
	"sync"

	"github.com/Samit-B/school-management/internal/models"
)

// Transcript is the append-only message list of a chat session
type Transcript struct {
	mu        sync.RWMutex
	turns     []models.Turn
	scrolls   int
	listeners []func()
}

// NewTranscript creates an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a turn at the end of the list
func (t *Transcript) Append(turn models.Turn) {
	t.mu.Lock()
	t.turns = append(t.turns, turn)
	t.mu.Unlock()

	t.notify()
}

// ScrollToBottom asks listeners to reveal the newest turn
func (t *Transcript) ScrollToBottom() {
	t.mu.Lock()
	t.scrolls++
	t.mu.Unlock()

	t.notify()
}

// Turns returns a snapshot of the list in append order
func (t *Transcript) Turns() []models.Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	turns := make([]models.Turn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

// Len returns the number of turns
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

// Last returns the newest turn, false when the list is empty
func (t *Transcript) Last() (models.Turn, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.turns) == 0 {
		return models.Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}

// Scrolls returns how many times the list was scrolled to the bottom
func (t *Transcript) Scrolls() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrolls
}

// OnChange registers fn to run after every append or scroll.
// Listeners run on the goroutine that changed the transcript.
func (t *Transcript) OnChange(fn func()) {
	t.mu.Lock()
	t.listeners = append(t.listeners, fn)
	t.mu.Unlock()
}

func (t *Transcript) notify() {
	t.mu.RLock()
	listeners := make([]func(), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
