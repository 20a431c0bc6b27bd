// Package scoring turns a sparse response map into per-domain and total
// scores. Everything here is pure: plain data in, plain data out, no I/O,
// no hidden state. Safe to call from any goroutine.
package scoring

import (
	"math"
	"sort"

	"coachassess/internal/model"
)

// CalculateDomainScores computes one DomainScore per domain. Unanswered
// questions contribute 0 to the score but still count toward MaxScore, so a
// partially completed attempt can never show more than its true potential.
// Stored values outside the Likert range are skipped rather than summed; a
// poisoned row must not push a percentage past 100. Results are sorted by
// domain ID regardless of input order.
func CalculateDomainScores(responses map[int]int, questions []model.Question, domains []model.Domain) []model.DomainScore {
	byDomain := make(map[int][]model.Question)
	for _, q := range questions {
		byDomain[q.DomainID] = append(byDomain[q.DomainID], q)
	}

	scores := make([]model.DomainScore, 0, len(domains))
	for _, d := range domains {
		qs := byDomain[d.ID]
		score := 0
		for _, q := range qs {
			v, ok := responses[q.ID]
			if !ok || !model.ValidValue(v) {
				continue
			}
			score += v
		}

		maxScore := len(qs) * model.LikertMax
		pct := 0.0
		if maxScore > 0 {
			pct = roundPct(float64(score) / float64(maxScore) * 100)
		}

		scores = append(scores, model.DomainScore{
			DomainID:   d.ID,
			DomainName: d.Name,
			Score:      score,
			MaxScore:   maxScore,
			Percentage: pct,
			Color:      d.ColorHex,
			Emoji:      d.IconEmoji,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].DomainID < scores[j].DomainID
	})
	return scores
}

// CalculateTotalScore sums all domain scores
func CalculateTotalScore(domainScores []model.DomainScore) int {
	total := 0
	for _, ds := range domainScores {
		total += ds.Score
	}
	return total
}

// CalculateScoreResults composes the full scoring aggregate
func CalculateScoreResults(responses map[int]int, questions []model.Question, domains []model.Domain) model.ScoreResults {
	domainScores := CalculateDomainScores(responses, questions, domains)
	total := CalculateTotalScore(domainScores)

	maxPossible := 0
	for _, ds := range domainScores {
		maxPossible += ds.MaxScore
	}

	overallPct := 0.0
	if maxPossible > 0 {
		overallPct = roundPct(float64(total) / float64(maxPossible) * 100)
	}

	picks := IdentifyPriorities(domainScores)

	return model.ScoreResults{
		TotalScore:         total,
		MaxPossibleScore:   maxPossible,
		OverallPercentage:  overallPct,
		Category:           CategoryFor(total, maxPossible),
		DomainScores:       domainScores,
		EasiestWin:         picks.EasiestWin,
		BiggestOpportunity: picks.BiggestOpportunity,
	}
}

// roundPct rounds to one decimal place
func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
