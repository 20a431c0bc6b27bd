package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coachassess/internal/hexchart"
	"coachassess/internal/model"
	"coachassess/internal/recommend"
	"coachassess/internal/repository"
	"coachassess/internal/scoring"
)

var ErrNoCompletedAssessment = errors.New("no completed assessment found")

// Default chart layout handed to clients that don't override it
var defaultChartCenter = hexchart.Point{X: 200, Y: 200}

const defaultChartRadius = 150.0

// AssessmentResults is the full payload for the results view
type AssessmentResults struct {
	AttemptID       string                      `json:"attemptId"`
	CompletedAt     *time.Time                  `json:"completedAt,omitempty"`
	Scores          model.ScoreResults          `json:"scores"`
	Recommendations model.RecommendationsResult `json:"recommendations"`
	Chart           hexchart.Chart              `json:"chart"`
}

// ResultsService computes the results payload for completed attempts.
// Fetches are bounded by a hard timeout, and a just-completed attempt whose
// responses aren't readable yet gets one delayed retry to absorb backend
// write-then-read lag.
type ResultsService struct {
	catalogRepo  repository.CatalogRepo
	attemptRepo  repository.AttemptRepo
	responseRepo repository.ResponseRepo

	fetchTimeout time.Duration
	retryDelay   time.Duration
}

// NewResultsService creates a new results service
func NewResultsService(
	catalogRepo repository.CatalogRepo,
	attemptRepo repository.AttemptRepo,
	responseRepo repository.ResponseRepo,
) *ResultsService {
	return &ResultsService{
		catalogRepo:  catalogRepo,
		attemptRepo:  attemptRepo,
		responseRepo: responseRepo,
		fetchTimeout: 10 * time.Second,
		retryDelay:   2 * time.Second,
	}
}

// GetResults returns the scored results for one of the user's completed
// attempts. ErrNoCompletedAssessment distinguishes "nothing to show, go take
// the assessment" from transient backend failures.
func (s *ResultsService) GetResults(ctx context.Context, userID, attemptID string) (*AssessmentResults, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	attempt, err := s.attemptRepo.GetByID(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt: %w", err)
	}
	if attempt == nil || attempt.UserID != userID || attempt.Status != model.AttemptCompleted {
		return nil, ErrNoCompletedAssessment
	}

	return s.buildResults(ctx, attempt)
}

// GetLatestResults returns results for the user's most recent completed
// attempt
func (s *ResultsService) GetLatestResults(ctx context.Context, userID string) (*AssessmentResults, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	attempt, err := s.attemptRepo.GetLatestCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt: %w", err)
	}
	if attempt == nil {
		return nil, ErrNoCompletedAssessment
	}

	return s.buildResults(ctx, attempt)
}

func (s *ResultsService) buildResults(ctx context.Context, attempt *model.Attempt) (*AssessmentResults, error) {
	responses, err := s.responseRepo.MapByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	// A completed attempt with no readable responses is almost always the
	// store lagging behind the completion write. One retry absorbs it.
	if len(responses) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
		responses, err = s.responseRepo.MapByAttempt(ctx, attempt.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load responses: %w", err)
		}
		if len(responses) == 0 {
			return nil, ErrNoCompletedAssessment
		}
	}

	questions, err := s.catalogRepo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	domains, err := s.catalogRepo.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load domains: %w", err)
	}

	scores := scoring.CalculateScoreResults(responses, questions, domains)
	recommendations := recommend.Generate(scores.DomainScores)
	chart := hexchart.Build(defaultChartCenter, defaultChartRadius, scores.DomainScores)

	return &AssessmentResults{
		AttemptID:       attempt.ID,
		CompletedAt:     attempt.CompletedAt,
		Scores:          scores,
		Recommendations: recommendations,
		Chart:           chart,
	}, nil
}
