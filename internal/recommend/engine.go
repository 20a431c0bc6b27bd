// Package recommend derives per-domain priorities and static guidance from
// computed domain scores. Like scoring, it is pure: no I/O, no state.
package recommend

import (
	"fmt"

	"coachassess/internal/model"
	"coachassess/internal/scoring"
)

// Priority rule thresholds
const (
	maintainThreshold    = 85.0 // at or above: maintain_strength
	opportunityThreshold = 50.0 // below, and unique global minimum: biggest_opportunity
)

// Generate builds the full recommendations aggregate for a score set.
// Priority picks come from scoring.IdentifyPriorities so the results view and
// the recommendations view can never disagree about which domain is which.
func Generate(domainScores []model.DomainScore) model.RecommendationsResult {
	picks := scoring.IdentifyPriorities(domainScores)

	recs := make([]model.DomainRecommendation, 0, len(domainScores))
	for _, ds := range domainScores {
		priority := DeterminePriority(ds, picks, domainScores)
		content := contentFor(ds.DomainID)
		recs = append(recs, model.DomainRecommendation{
			DomainID:   ds.DomainID,
			DomainName: ds.DomainName,
			Percentage: ds.Percentage,
			Priority:   priority,
			Rationale:  rationale(ds, priority),
			Practices:  content.Practices,
			Courses:    content.Courses,
		})
	}

	return model.RecommendationsResult{
		Domains:            recs,
		OverallGuidance:    OverallGuidance(domainScores, picks),
		EasiestWin:         picks.EasiestWin,
		BiggestOpportunity: picks.BiggestOpportunity,
	}
}

// DeterminePriority classifies one domain. Rules apply in order, first match
// wins:
//
//  1. percentage >= 85                          -> maintain_strength
//  2. unique global minimum and percentage < 50 -> biggest_opportunity
//  3. domain is the easiest-win pick            -> easiest_win
//  4. otherwise                                 -> continue_growth
//
// A domain at 85-90% can satisfy both rules 1 and 3; rule 1 winning by
// ordering is deliberate and part of the contract.
func DeterminePriority(ds model.DomainScore, picks model.PriorityPicks, all []model.DomainScore) model.Priority {
	if ds.Percentage >= maintainThreshold {
		return model.PriorityMaintainStrength
	}

	if picks.BiggestOpportunity != nil &&
		picks.BiggestOpportunity.DomainID == ds.DomainID &&
		ds.Percentage < opportunityThreshold &&
		isUniqueMinimum(ds, all) {
		return model.PriorityBiggestOpportunity
	}

	if picks.EasiestWin != nil && picks.EasiestWin.DomainID == ds.DomainID {
		return model.PriorityEasiestWin
	}

	return model.PriorityContinueGrowth
}

func isUniqueMinimum(ds model.DomainScore, all []model.DomainScore) bool {
	for _, other := range all {
		if other.DomainID != ds.DomainID && other.Percentage <= ds.Percentage {
			return false
		}
	}
	return true
}

// rationale explains the priority assignment in plain language
func rationale(ds model.DomainScore, priority model.Priority) string {
	switch priority {
	case model.PriorityMaintainStrength:
		return fmt.Sprintf("%s is a real strength at %.1f%%. Protect it: strengths erode when they stop getting attention.", ds.DomainName, ds.Percentage)
	case model.PriorityBiggestOpportunity:
		return fmt.Sprintf("%s is your lowest area at %.1f%%. Improvement here will change how every session feels.", ds.DomainName, ds.Percentage)
	case model.PriorityEasiestWin:
		return fmt.Sprintf("%s sits at %.1f%%, close enough to strong that focused practice will tip it over quickly.", ds.DomainName, ds.Percentage)
	default:
		return fmt.Sprintf("%s is developing steadily at %.1f%%. Keep it in your regular practice rotation.", ds.DomainName, ds.Percentage)
	}
}

// OverallGuidance selects the summary message by average domain percentage,
// naming the extremal domains when they exist.
func OverallGuidance(domainScores []model.DomainScore, picks model.PriorityPicks) string {
	if len(domainScores) == 0 {
		return "Complete the assessment to receive personalized guidance."
	}

	sum := 0.0
	for _, ds := range domainScores {
		sum += ds.Percentage
	}
	avg := sum / float64(len(domainScores))

	win := ""
	if picks.EasiestWin != nil {
		win = picks.EasiestWin.DomainName
	}
	opp := ""
	if picks.BiggestOpportunity != nil {
		opp = picks.BiggestOpportunity.DomainName
	}

	switch {
	case avg >= 80:
		msg := "You're operating at a high level across the board."
		if win != "" {
			msg += fmt.Sprintf(" Pushing %s over the top would round out an already strong profile.", win)
		}
		return msg
	case avg >= 65:
		msg := "You have a solid, balanced skill set."
		if win != "" {
			msg += fmt.Sprintf(" %s is your fastest path to a visible improvement.", win)
		}
		if opp != "" {
			msg += fmt.Sprintf(" Keep an eye on %s as a longer-term project.", opp)
		}
		return msg
	case avg >= 50:
		msg := "Your foundations are in place, with clear room to grow."
		if opp != "" {
			msg += fmt.Sprintf(" Start with %s, it's holding the rest back.", opp)
		}
		return msg
	default:
		msg := "You're early in your coaching development, which means fast gains are available everywhere."
		if opp != "" {
			msg += fmt.Sprintf(" %s is the place to begin.", opp)
		}
		return msg
	}
}
