// Package capture holds the client-side acquisition session: one still image
// from a remote URL, a local file, or a live camera, and the transient state
// around submitting it for detection.
package capture

import (
	"fmt"
	"sync"

	"github.com/AmoghShukla/VisionID/internal/domain"
)

// State is the session's position in the acquisition/detection cycle.
type State int

const (
	StateIdle State = iota
	StateAcquiring
	StatePreviewing
	StateDetecting
	StateShowingResults
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAcquiring:
		return "acquiring"
	case StatePreviewing:
		return "previewing"
	case StateDetecting:
		return "detecting"
	case StateShowingResults:
		return "showing-results"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// validNext is the allowed transition set. Fail is reachable from any state
// and is handled separately.
var validNext = map[State][]State{
	StateIdle:           {StateAcquiring},
	StateAcquiring:      {StatePreviewing},
	StatePreviewing:     {StateDetecting, StateAcquiring},
	StateDetecting:      {StateShowingResults},
	StateShowingResults: {StateAcquiring, StateDetecting},
	StateError:          {StateAcquiring},
}

// Snapshot is the observable session state handed to observers. Slices are
// shared read-only; observers must not mutate them.
type Snapshot struct {
	State     State
	SourceURL string
	Image     []byte
	Faces     []domain.Face
	ErrMsg    string
}

// Session is the explicit finite state holder for one page-lifetime of UI
// state. Everything here is transient: nothing survives the process.
type Session struct {
	mu        sync.Mutex
	state     State
	sourceURL string
	image     []byte
	faces     []domain.Face
	errMsg    string
	observers []func(Snapshot)
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// Observe registers a callback invoked after every state change, including
// every image or result-set change, so rendering re-runs when either moves.
func (s *Session) Observe(fn func(Snapshot)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// StartAcquire begins a new acquisition. Starting a different acquisition
// path discards any previous preview and results.
func (s *Session) StartAcquire() error {
	return s.transition(StateAcquiring, func() {
		s.sourceURL = ""
		s.image = nil
		s.faces = nil
		s.errMsg = ""
	})
}

// SetPreview records the acquired image (or remote URL) as the active
// preview source.
func (s *Session) SetPreview(image []byte, sourceURL string) error {
	return s.transition(StatePreviewing, func() {
		s.image = image
		s.sourceURL = sourceURL
	})
}

// StartDetect marks a submission in flight. The busy state is advisory:
// it blocks a second StartDetect on the same session but is not a hard
// mutex across goroutines racing past the check elsewhere.
func (s *Session) StartDetect() error {
	return s.transition(StateDetecting, nil)
}

// ShowResults records the detection response and clears any prior error.
func (s *Session) ShowResults(faces []domain.Face) error {
	return s.transition(StateShowingResults, func() {
		s.faces = faces
		s.errMsg = ""
	})
}

// Fail is valid from every state: any failure becomes a user-visible
// message, and detection results are cleared.
func (s *Session) Fail(msg string) {
	s.mu.Lock()
	s.state = StateError
	s.errMsg = msg
	s.faces = nil
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) transition(to State, apply func()) error {
	s.mu.Lock()

	allowed := false
	for _, next := range validNext[s.state] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		from := s.state
		s.mu.Unlock()
		return fmt.Errorf("invalid session transition %s -> %s", from, to)
	}

	s.state = to
	if apply != nil {
		apply()
	}
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return nil
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:     s.state,
		SourceURL: s.sourceURL,
		Image:     s.image,
		Faces:     s.faces,
		ErrMsg:    s.errMsg,
	}
}
