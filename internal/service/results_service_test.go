package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachassess/internal/model"
)

type fakeCatalogRepo struct {
	mu        sync.Mutex
	domains   []model.Domain
	questions []model.Question
	err       error
	listCalls int
}

func (f *fakeCatalogRepo) ListDomains(ctx context.Context) ([]model.Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.domains, f.err
}

func (f *fakeCatalogRepo) ListQuestions(ctx context.Context) ([]model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.questions, f.err
}

func (f *fakeCatalogRepo) ReplaceCatalog(ctx context.Context, domains []model.Domain, questions []model.Question) error {
	return nil
}

type fakeAttemptRepo struct {
	mu        sync.Mutex
	byID      map[string]*model.Attempt
	latest    *model.Attempt
	inFlight  *model.Attempt
	fetchCnt  int
	completed map[string]bool
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{
		byID:      make(map[string]*model.Attempt),
		completed: make(map[string]bool),
	}
}

func (f *fakeAttemptRepo) FetchOrCreate(ctx context.Context, userID string) (*model.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCnt++
	if f.inFlight == nil {
		f.inFlight = &model.Attempt{ID: "att_live0001", UserID: userID, Status: model.AttemptInProgress}
	}
	return f.inFlight, nil
}

func (f *fakeAttemptRepo) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeAttemptRepo) GetLatestCompleted(ctx context.Context, userID string) (*model.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, nil
}

func (f *fakeAttemptRepo) ListByUser(ctx context.Context, userID string) ([]*model.Attempt, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) UpdateProgress(ctx context.Context, id string, currentIndex int) error {
	return nil
}

func (f *fakeAttemptRepo) MarkCompleted(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed[id] = true
	return nil
}

func (f *fakeAttemptRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeAttemptRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeResponseRepo returns mapSeq entries on successive MapByAttempt calls;
// the last entry repeats once the sequence is exhausted.
type fakeResponseRepo struct {
	mu       sync.Mutex
	mapSeq   []map[int]int
	mapCalls int
	err      error
}

func (f *fakeResponseRepo) Upsert(ctx context.Context, attemptID string, questionID, value int) error {
	return nil
}

func (f *fakeResponseRepo) GetByAttempt(ctx context.Context, attemptID string) ([]*model.Response, error) {
	return nil, nil
}

func (f *fakeResponseRepo) MapByAttempt(ctx context.Context, attemptID string) (map[int]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	i := f.mapCalls
	f.mapCalls++
	if i >= len(f.mapSeq) {
		i = len(f.mapSeq) - 1
	}
	if i < 0 {
		return map[int]int{}, nil
	}
	return f.mapSeq[i], nil
}

func (f *fakeResponseRepo) DeleteByAttempt(ctx context.Context, attemptID string) error {
	return nil
}

func (f *fakeResponseRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mapCalls
}

type fakeAttemptCache struct{}

func (fakeAttemptCache) SetResponse(ctx context.Context, attemptID string, questionID, value int) error {
	return nil
}

func (fakeAttemptCache) GetResponses(ctx context.Context, attemptID string) (map[int]int, error) {
	return nil, nil
}

func (fakeAttemptCache) Clear(ctx context.Context, attemptID string) error { return nil }

func resultsCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		domains: []model.Domain{
			{ID: 1, Name: "Active Listening"},
			{ID: 2, Name: "Powerful Questioning"},
		},
		questions: []model.Question{
			{ID: 1, DomainID: 1, Text: "q1", Order: 1},
			{ID: 2, DomainID: 1, Text: "q2", Order: 2},
			{ID: 3, DomainID: 2, Text: "q3", Order: 1},
		},
	}
}

func completedAttempt(userID string) *model.Attempt {
	done := time.Now()
	return &model.Attempt{
		ID:          "att_done0001",
		UserID:      userID,
		Status:      model.AttemptCompleted,
		CompletedAt: &done,
	}
}

func newResultsService(cat *fakeCatalogRepo, att *fakeAttemptRepo, resp *fakeResponseRepo) *ResultsService {
	return &ResultsService{
		catalogRepo:  cat,
		attemptRepo:  att,
		responseRepo: resp,
		fetchTimeout: time.Second,
		retryDelay:   10 * time.Millisecond,
	}
}

func TestGetResults_RetryAbsorbsWriteLag(t *testing.T) {
	att := newFakeAttemptRepo()
	att.byID["att_done0001"] = completedAttempt("u_1")
	// First read races the completion write and sees nothing; the delayed
	// retry sees the full response set
	resp := &fakeResponseRepo{mapSeq: []map[int]int{{}, {1: 4, 2: 5, 3: 2}}}

	svc := newResultsService(resultsCatalog(), att, resp)
	results, err := svc.GetResults(context.Background(), "u_1", "att_done0001")

	require.NoError(t, err)
	assert.Equal(t, 2, resp.calls(), "exactly one retry")
	assert.Equal(t, "att_done0001", results.AttemptID)
	assert.Equal(t, 11, results.Scores.TotalScore)
	require.Len(t, results.Scores.DomainScores, 2)
	assert.NotEmpty(t, results.Recommendations.Domains)
	assert.Len(t, results.Chart.Score, 2)
}

func TestGetResults_EmptyAfterRetry(t *testing.T) {
	att := newFakeAttemptRepo()
	att.byID["att_done0001"] = completedAttempt("u_1")
	resp := &fakeResponseRepo{mapSeq: []map[int]int{{}, {}}}

	svc := newResultsService(resultsCatalog(), att, resp)
	_, err := svc.GetResults(context.Background(), "u_1", "att_done0001")

	assert.ErrorIs(t, err, ErrNoCompletedAssessment)
	assert.Equal(t, 2, resp.calls(), "gives up after a single retry")
}

func TestGetResults_DeadlineExpiresDuringRetryWait(t *testing.T) {
	att := newFakeAttemptRepo()
	att.byID["att_done0001"] = completedAttempt("u_1")
	resp := &fakeResponseRepo{mapSeq: []map[int]int{{}}}

	svc := newResultsService(resultsCatalog(), att, resp)
	svc.fetchTimeout = 20 * time.Millisecond
	svc.retryDelay = 500 * time.Millisecond

	_, err := svc.GetResults(context.Background(), "u_1", "att_done0001")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, resp.calls(), "retry never ran")
}

func TestGetResults_DataAbsenceVsTransientFailure(t *testing.T) {
	cat := resultsCatalog()

	t.Run("unknown attempt", func(t *testing.T) {
		svc := newResultsService(cat, newFakeAttemptRepo(), &fakeResponseRepo{})
		_, err := svc.GetResults(context.Background(), "u_1", "att_missing")
		assert.ErrorIs(t, err, ErrNoCompletedAssessment)
	})

	t.Run("someone else's attempt", func(t *testing.T) {
		att := newFakeAttemptRepo()
		att.byID["att_done0001"] = completedAttempt("u_other")
		svc := newResultsService(cat, att, &fakeResponseRepo{})
		_, err := svc.GetResults(context.Background(), "u_1", "att_done0001")
		assert.ErrorIs(t, err, ErrNoCompletedAssessment)
	})

	t.Run("attempt still in progress", func(t *testing.T) {
		att := newFakeAttemptRepo()
		att.byID["att_live0001"] = &model.Attempt{ID: "att_live0001", UserID: "u_1", Status: model.AttemptInProgress}
		svc := newResultsService(cat, att, &fakeResponseRepo{})
		_, err := svc.GetResults(context.Background(), "u_1", "att_live0001")
		assert.ErrorIs(t, err, ErrNoCompletedAssessment)
	})

	t.Run("store failure is not absence", func(t *testing.T) {
		att := newFakeAttemptRepo()
		att.byID["att_done0001"] = completedAttempt("u_1")
		svc := newResultsService(cat, att, &fakeResponseRepo{err: errors.New("connection reset")})
		_, err := svc.GetResults(context.Background(), "u_1", "att_done0001")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoCompletedAssessment)
	})
}

func TestGetLatestResults(t *testing.T) {
	att := newFakeAttemptRepo()
	att.latest = completedAttempt("u_1")
	resp := &fakeResponseRepo{mapSeq: []map[int]int{{1: 3, 2: 3, 3: 3}}}

	svc := newResultsService(resultsCatalog(), att, resp)
	results, err := svc.GetLatestResults(context.Background(), "u_1")

	require.NoError(t, err)
	assert.Equal(t, "att_done0001", results.AttemptID)
	assert.Equal(t, 9, results.Scores.TotalScore)
}

func TestGetLatestResults_NoneCompleted(t *testing.T) {
	svc := newResultsService(resultsCatalog(), newFakeAttemptRepo(), &fakeResponseRepo{})
	_, err := svc.GetLatestResults(context.Background(), "u_1")
	assert.ErrorIs(t, err, ErrNoCompletedAssessment)
}
