// Package assessment drives a user through the question sequence: capturing
// answers, advancing, tracking domain completion, and resuming interrupted
// attempts. Persistence is best-effort; the in-memory session is the source
// of truth for the live flow.
package assessment

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"coachassess/internal/model"
)

// State is the session lifecycle. "Already initializing" is a real state
// here, not a side flag.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitializing  State = "initializing"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

var (
	ErrAlreadyInitialized = errors.New("session already initialized")
	ErrNotReady           = errors.New("session is not ready")
	ErrInvalidValue       = errors.New("response value must be between 1 and 5")
	ErrUnanswered         = errors.New("current question has no answer")
	ErrNoQuestions        = errors.New("no questions found")
	ErrAtFirstQuestion    = errors.New("already at the first question")
	ErrCompleted          = errors.New("attempt is already completed")
)

// CelebrationClearDelay is how long the client should show the
// domain-completion signal before clearing it. Sent in the event payload.
const CelebrationClearDelay = 2 * time.Second

// Store is the external persistence collaborator. Every call is best-effort:
// the session logs and swallows failures rather than blocking progression.
type Store interface {
	FetchOrCreateAttempt(ctx context.Context, userID string) (*model.Attempt, error)
	LoadResponses(ctx context.Context, attemptID string) (map[int]int, error)
	SaveResponse(ctx context.Context, attemptID string, questionID, value int) error
	SaveProgress(ctx context.Context, attemptID string, currentIndex int) error
	CompleteAttempt(ctx context.Context, attemptID string) error
}

// Broadcaster surfaces transient UI signals. The websocket hub implements it.
type Broadcaster interface {
	BroadcastToUser(userID, event string, payload interface{})
}

// Celebration is the payload for a domain-completion signal
type Celebration struct {
	DomainID     int    `json:"domainId"`
	DomainName   string `json:"domainName"`
	ClearAfterMS int64  `json:"clearAfterMs"`
}

// Progress is the plain observable state handed to the presentation layer
type Progress struct {
	State          State               `json:"state"`
	Status         model.AttemptStatus `json:"status"`
	AttemptID      string              `json:"attemptId,omitempty"` // empty when running in-memory only
	CurrentIndex   int                 `json:"currentIndex"`
	TotalQuestions int                 `json:"totalQuestions"`
	Responses      map[int]int         `json:"responses"`
	AnsweredCount  int                 `json:"answeredCount"`
}

// Session sequences one user's assessment attempt
type Session struct {
	mu sync.Mutex

	userID      string
	questions   []model.Question // ordered as presented
	domains     map[int]model.Domain
	domainTotal map[int]int // domainID -> question count

	state        State
	status       model.AttemptStatus
	attemptID    string
	currentIndex int
	responses    map[int]int  // questionID -> value
	celebrated   map[int]bool // domainID -> already fired

	store       Store
	broadcaster Broadcaster
}

// NewSession creates an uninitialized session for a user
func NewSession(userID string, questions []model.Question, domains []model.Domain, store Store, broadcaster Broadcaster) *Session {
	domainMap := make(map[int]model.Domain, len(domains))
	totals := make(map[int]int)
	for _, d := range domains {
		domainMap[d.ID] = d
	}
	for _, q := range questions {
		totals[q.DomainID]++
	}

	return &Session{
		userID:      userID,
		questions:   questions,
		domains:     domainMap,
		domainTotal: totals,
		state:       StateUninitialized,
		status:      model.AttemptInProgress,
		responses:   make(map[int]int),
		celebrated:  make(map[int]bool),
		store:       store,
		broadcaster: broadcaster,
	}
}

// Initialize fetches or creates the user's attempt and resumes any persisted
// responses. A dead store degrades to an in-memory-only session rather than
// blocking the user. Calling Initialize on anything but an uninitialized
// session returns ErrAlreadyInitialized.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return ErrAlreadyInitialized
	}
	if len(s.questions) == 0 {
		s.state = StateFailed
		return ErrNoQuestions
	}
	s.state = StateInitializing

	attempt, err := s.store.FetchOrCreateAttempt(ctx, s.userID)
	if err != nil {
		log.Printf("assessment: attempt fetch failed for user %s, continuing in-memory: %v", s.userID, err)
		s.state = StateReady
		return nil
	}
	s.attemptID = attempt.ID
	s.status = attempt.Status

	persisted, err := s.store.LoadResponses(ctx, attempt.ID)
	if err != nil {
		log.Printf("assessment: response reload failed for attempt %s: %v", attempt.ID, err)
		s.state = StateReady
		return nil
	}
	for qid, v := range persisted {
		if model.ValidValue(v) {
			s.responses[qid] = v
		}
	}

	// Resume at the first unanswered question. Counting persisted responses
	// is robust to missed best-effort index updates; the stored index is
	// deliberately ignored.
	s.currentIndex = len(s.responses)
	if s.currentIndex > len(s.questions)-1 && s.status == model.AttemptInProgress {
		s.currentIndex = len(s.questions) - 1
	}

	// Re-derive celebration latches so resumed attempts don't re-fire for
	// domains completed before the interruption.
	for domainID, total := range s.domainTotal {
		if s.answeredInDomain(domainID) == total {
			s.celebrated[domainID] = true
		}
	}

	s.state = StateReady
	return nil
}

// SelectAnswer records an answer in memory only. Idempotent overwrite; it
// does not persist and does not advance.
func (s *Session) SelectAnswer(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}
	if s.status == model.AttemptCompleted {
		return ErrCompleted
	}
	if !model.ValidValue(value) {
		return ErrInvalidValue
	}

	s.responses[s.questions[s.currentIndex].ID] = value
	return nil
}

// Next confirms the current answer: persists it best-effort, runs the
// domain-completion check, then advances the index or completes the attempt.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}
	if s.status == model.AttemptCompleted {
		return ErrCompleted
	}

	q := s.questions[s.currentIndex]
	value, ok := s.responses[q.ID]
	if !ok {
		return ErrUnanswered
	}

	if s.attemptID != "" {
		if err := s.store.SaveResponse(ctx, s.attemptID, q.ID, value); err != nil {
			log.Printf("assessment: response save failed for attempt %s q%d: %v", s.attemptID, q.ID, err)
		}
	}

	s.checkDomainCompletion(q.DomainID)

	if s.currentIndex == len(s.questions)-1 {
		s.status = model.AttemptCompleted
		if s.attemptID != "" {
			if err := s.store.CompleteAttempt(ctx, s.attemptID); err != nil {
				log.Printf("assessment: completion save failed for attempt %s: %v", s.attemptID, err)
			}
		}
		return nil
	}

	s.currentIndex++
	if s.attemptID != "" {
		if err := s.store.SaveProgress(ctx, s.attemptID, s.currentIndex); err != nil {
			log.Printf("assessment: progress save failed for attempt %s: %v", s.attemptID, err)
		}
	}
	return nil
}

// Previous steps back one question. Responses are untouched.
func (s *Session) Previous(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}
	if s.currentIndex == 0 {
		return ErrAtFirstQuestion
	}

	s.currentIndex--
	if s.attemptID != "" {
		if err := s.store.SaveProgress(ctx, s.attemptID, s.currentIndex); err != nil {
			log.Printf("assessment: progress save failed for attempt %s: %v", s.attemptID, err)
		}
	}
	return nil
}

// checkDomainCompletion fires the celebration signal the first time every
// question in a domain has an answer. The latch never re-fires within an
// attempt, even through Previous/re-answer cycles. Caller holds the lock.
func (s *Session) checkDomainCompletion(domainID int) {
	total, ok := s.domainTotal[domainID]
	if !ok || s.celebrated[domainID] {
		return
	}
	if s.answeredInDomain(domainID) != total {
		return
	}

	s.celebrated[domainID] = true
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(s.userID, "domain_celebration", Celebration{
			DomainID:     domainID,
			DomainName:   s.domains[domainID].Name,
			ClearAfterMS: CelebrationClearDelay.Milliseconds(),
		})
	}
}

func (s *Session) answeredInDomain(domainID int) int {
	count := 0
	for _, q := range s.questions {
		if q.DomainID != domainID {
			continue
		}
		if _, ok := s.responses[q.ID]; ok {
			count++
		}
	}
	return count
}

// CurrentQuestion returns the question at the current index, or nil when the
// attempt is completed
func (s *Session) CurrentQuestion() *model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady || s.status == model.AttemptCompleted {
		return nil
	}
	q := s.questions[s.currentIndex]
	return &q
}

// Snapshot returns the plain observable state for the presentation layer
func (s *Session) Snapshot() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make(map[int]int, len(s.responses))
	for k, v := range s.responses {
		responses[k] = v
	}

	return Progress{
		State:          s.state,
		Status:         s.status,
		AttemptID:      s.attemptID,
		CurrentIndex:   s.currentIndex,
		TotalQuestions: len(s.questions),
		Responses:      responses,
		AnsweredCount:  len(responses),
	}
}
