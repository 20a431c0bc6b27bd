package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"coachassess/internal/assessment"
	"coachassess/internal/cache"
	"coachassess/internal/model"
	"coachassess/internal/repository"
)

var ErrAttemptNotFound = errors.New("attempt not found")

// AssessmentService owns the live assessment sessions and the persistence
// adapter behind them. One session per user at a time.
type AssessmentService struct {
	catalogRepo  repository.CatalogRepo
	attemptRepo  repository.AttemptRepo
	responseRepo repository.ResponseRepo
	attemptCache cache.AttemptCache
	broadcaster  assessment.Broadcaster

	mu       sync.Mutex
	sessions map[string]*assessment.Session // userID -> live session
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	catalogRepo repository.CatalogRepo,
	attemptRepo repository.AttemptRepo,
	responseRepo repository.ResponseRepo,
	attemptCache cache.AttemptCache,
) *AssessmentService {
	return &AssessmentService{
		catalogRepo:  catalogRepo,
		attemptRepo:  attemptRepo,
		responseRepo: responseRepo,
		attemptCache: attemptCache,
		sessions:     make(map[string]*assessment.Session),
	}
}

// SetBroadcaster sets the broadcaster for live progress events
func (s *AssessmentService) SetBroadcaster(b assessment.Broadcaster) {
	s.broadcaster = b
}

// Session returns the user's live session, creating and initializing one on
// first use. The catalog is fetched outside the lock so one slow Mongo round
// trip can't serialize every user's first request; the map is re-checked
// afterwards so concurrent first calls still converge on a single session.
func (s *AssessmentService) Session(ctx context.Context, userID string) (*assessment.Session, error) {
	s.mu.Lock()
	existing, ok := s.sessions[userID]
	s.mu.Unlock()
	if ok {
		return existing, nil
	}

	questions, err := s.catalogRepo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	domains, err := s.catalogRepo.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load domains: %w", err)
	}

	s.mu.Lock()
	if existing, ok := s.sessions[userID]; ok {
		s.mu.Unlock()
		return existing, nil
	}
	session := assessment.NewSession(userID, questions, domains, s.storeAdapter(), s.broadcaster)
	s.sessions[userID] = session
	s.mu.Unlock()

	if err := session.Initialize(ctx); err != nil {
		s.mu.Lock()
		delete(s.sessions, userID)
		s.mu.Unlock()
		return nil, err
	}
	return session, nil
}

// SelectAnswer records an in-memory answer for the user's current question
func (s *AssessmentService) SelectAnswer(ctx context.Context, userID string, value int) (assessment.Progress, error) {
	session, err := s.Session(ctx, userID)
	if err != nil {
		return assessment.Progress{}, err
	}
	if err := session.SelectAnswer(value); err != nil {
		return assessment.Progress{}, err
	}
	return session.Snapshot(), nil
}

// Next confirms the current answer and advances
func (s *AssessmentService) Next(ctx context.Context, userID string) (assessment.Progress, error) {
	session, err := s.Session(ctx, userID)
	if err != nil {
		return assessment.Progress{}, err
	}
	if err := session.Next(ctx); err != nil {
		return assessment.Progress{}, err
	}

	progress := session.Snapshot()
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, "progress_update", progress)
	}
	if progress.Status == model.AttemptCompleted {
		// A finished session has nothing left to sequence
		s.mu.Lock()
		delete(s.sessions, userID)
		s.mu.Unlock()
	}
	return progress, nil
}

// Previous steps back one question
func (s *AssessmentService) Previous(ctx context.Context, userID string) (assessment.Progress, error) {
	session, err := s.Session(ctx, userID)
	if err != nil {
		return assessment.Progress{}, err
	}
	if err := session.Previous(ctx); err != nil {
		return assessment.Progress{}, err
	}
	return session.Snapshot(), nil
}

// CurrentQuestion returns the question at the user's current index
func (s *AssessmentService) CurrentQuestion(ctx context.Context, userID string) (*model.Question, assessment.Progress, error) {
	session, err := s.Session(ctx, userID)
	if err != nil {
		return nil, assessment.Progress{}, err
	}
	return session.CurrentQuestion(), session.Snapshot(), nil
}

// ListAttempts returns the user's attempt history
func (s *AssessmentService) ListAttempts(ctx context.Context, userID string) ([]*model.Attempt, error) {
	return s.attemptRepo.ListByUser(ctx, userID)
}

// DeleteAttempt removes an attempt, its responses, and its cache entries.
// Only the owner may delete.
func (s *AssessmentService) DeleteAttempt(ctx context.Context, userID, attemptID string) error {
	attempt, err := s.attemptRepo.GetByID(ctx, attemptID)
	if err != nil {
		return fmt.Errorf("failed to load attempt: %w", err)
	}
	if attempt == nil || attempt.UserID != userID {
		return ErrAttemptNotFound
	}

	if err := s.responseRepo.DeleteByAttempt(ctx, attemptID); err != nil {
		return fmt.Errorf("failed to delete responses: %w", err)
	}
	if err := s.attemptRepo.Delete(ctx, attemptID); err != nil {
		return fmt.Errorf("failed to delete attempt: %w", err)
	}
	if err := s.attemptCache.Clear(ctx, attemptID); err != nil {
		log.Printf("assessment: cache clear failed for attempt %s: %v", attemptID, err)
	}

	// Drop the live session if it was sequencing this attempt
	s.mu.Lock()
	if session, ok := s.sessions[userID]; ok && session.Snapshot().AttemptID == attemptID {
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	return nil
}

// storeAdapter bridges the session's Store interface onto the repos and the
// redis mirror. Cache writes are best-effort on top of best-effort.
func (s *AssessmentService) storeAdapter() assessment.Store {
	return &sessionStore{
		attemptRepo:  s.attemptRepo,
		responseRepo: s.responseRepo,
		attemptCache: s.attemptCache,
	}
}

type sessionStore struct {
	attemptRepo  repository.AttemptRepo
	responseRepo repository.ResponseRepo
	attemptCache cache.AttemptCache
}

func (st *sessionStore) FetchOrCreateAttempt(ctx context.Context, userID string) (*model.Attempt, error) {
	return st.attemptRepo.FetchOrCreate(ctx, userID)
}

func (st *sessionStore) LoadResponses(ctx context.Context, attemptID string) (map[int]int, error) {
	// The redis mirror is faster and usually current; fall through to the
	// system of record when it's cold.
	cached, err := st.attemptCache.GetResponses(ctx, attemptID)
	if err == nil && len(cached) > 0 {
		return cached, nil
	}
	if err != nil {
		log.Printf("assessment: cache read failed for attempt %s: %v", attemptID, err)
	}
	return st.responseRepo.MapByAttempt(ctx, attemptID)
}

func (st *sessionStore) SaveResponse(ctx context.Context, attemptID string, questionID, value int) error {
	if err := st.attemptCache.SetResponse(ctx, attemptID, questionID, value); err != nil {
		log.Printf("assessment: cache write failed for attempt %s q%d: %v", attemptID, questionID, err)
	}
	return st.responseRepo.Upsert(ctx, attemptID, questionID, value)
}

func (st *sessionStore) SaveProgress(ctx context.Context, attemptID string, currentIndex int) error {
	return st.attemptRepo.UpdateProgress(ctx, attemptID, currentIndex)
}

func (st *sessionStore) CompleteAttempt(ctx context.Context, attemptID string) error {
	if err := st.attemptCache.Clear(ctx, attemptID); err != nil {
		log.Printf("assessment: cache clear failed for attempt %s: %v", attemptID, err)
	}
	return st.attemptRepo.MarkCompleted(ctx, attemptID)
}
