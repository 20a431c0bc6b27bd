package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachassess/internal/model"
	"coachassess/internal/scoring"
)

func score(id int, name string, pct float64) model.DomainScore {
	return model.DomainScore{DomainID: id, DomainName: name, Percentage: pct}
}

func TestDeterminePriority_RuleOrder(t *testing.T) {
	all := []model.DomainScore{
		score(1, "Active Listening", 92),
		score(2, "Powerful Questioning", 70),
		score(3, "Goal Setting & Accountability", 42),
		score(4, "Emotional Intelligence", 55),
	}
	picks := scoring.IdentifyPriorities(all)

	assert.Equal(t, model.PriorityMaintainStrength, DeterminePriority(all[0], picks, all))
	assert.Equal(t, model.PriorityEasiestWin, DeterminePriority(all[1], picks, all))
	assert.Equal(t, model.PriorityBiggestOpportunity, DeterminePriority(all[2], picks, all))
	assert.Equal(t, model.PriorityContinueGrowth, DeterminePriority(all[3], picks, all))
}

func TestDeterminePriority_MaintainBeatsEasiestWin(t *testing.T) {
	// A domain at 87% is inside the (60,90) easiest-win band AND above the
	// 85% maintain line. Rule 1 wins by ordering; that precedence is the
	// contract.
	all := []model.DomainScore{
		score(1, "Active Listening", 87),
		score(2, "Powerful Questioning", 95),
	}
	picks := scoring.IdentifyPriorities(all)
	require.NotNil(t, picks.EasiestWin)
	require.Equal(t, 1, picks.EasiestWin.DomainID)

	assert.Equal(t, model.PriorityMaintainStrength, DeterminePriority(all[0], picks, all))
}

func TestDeterminePriority_MinimumAboveFiftyIsNotBiggestOpportunity(t *testing.T) {
	all := []model.DomainScore{
		score(1, "Active Listening", 58),
		score(2, "Powerful Questioning", 75),
	}
	picks := scoring.IdentifyPriorities(all)
	require.Equal(t, 1, picks.BiggestOpportunity.DomainID)

	// Global minimum, but not under 50: falls through to continue_growth
	assert.Equal(t, model.PriorityContinueGrowth, DeterminePriority(all[0], picks, all))
}

func TestDeterminePriority_TiedMinimumIsNotUnique(t *testing.T) {
	all := []model.DomainScore{
		score(1, "Active Listening", 40),
		score(2, "Powerful Questioning", 40),
		score(3, "Goal Setting & Accountability", 70),
	}
	picks := scoring.IdentifyPriorities(all)

	// Neither tied domain gets the biggest_opportunity tag
	assert.Equal(t, model.PriorityContinueGrowth, DeterminePriority(all[0], picks, all))
	assert.Equal(t, model.PriorityContinueGrowth, DeterminePriority(all[1], picks, all))
}

func TestGenerate_KnownDomainsGetSpecificContent(t *testing.T) {
	all := []model.DomainScore{
		score(1, "Active Listening", 72),
		score(6, "Personal Development", 45),
	}

	result := Generate(all)
	require.Len(t, result.Domains, 2)

	for _, rec := range result.Domains {
		assert.NotEmpty(t, rec.Rationale)
		assert.NotEmpty(t, rec.Practices)
		assert.LessOrEqual(t, len(rec.Practices), 3)
		assert.NotEmpty(t, rec.Courses)
		assert.LessOrEqual(t, len(rec.Courses), 2)
		assert.Contains(t, rec.Rationale, rec.DomainName)
	}
}

func TestGenerate_UnknownDomainFallsBack(t *testing.T) {
	// A domain missing from the content tables must not throw: it gets the
	// generic practice list and at least one course
	all := []model.DomainScore{
		score(42, "Quantum Rapport", 66),
	}

	result := Generate(all)
	require.Len(t, result.Domains, 1)
	rec := result.Domains[0]
	assert.NotEmpty(t, rec.Practices)
	require.NotEmpty(t, rec.Courses)
	assert.Equal(t, "Core Coaching Skills", rec.Courses[0].Title)
}

func TestGenerate_PicksMatchScoringPackage(t *testing.T) {
	all := []model.DomainScore{
		score(1, "Active Listening", 88),
		score(2, "Powerful Questioning", 35),
		score(3, "Goal Setting & Accountability", 65),
	}

	result := Generate(all)
	picks := scoring.IdentifyPriorities(all)

	require.NotNil(t, result.EasiestWin)
	require.NotNil(t, result.BiggestOpportunity)
	assert.Equal(t, picks.EasiestWin.DomainID, result.EasiestWin.DomainID)
	assert.Equal(t, picks.BiggestOpportunity.DomainID, result.BiggestOpportunity.DomainID)
}

func TestOverallGuidance_Tiers(t *testing.T) {
	tests := []struct {
		name string
		pcts []float64
		want string
	}{
		{"high", []float64{85, 90, 82}, "high level"},
		{"solid", []float64{70, 68, 72}, "solid, balanced"},
		{"foundation", []float64{55, 52, 58}, "foundations"},
		{"early", []float64{30, 35, 40}, "early in your coaching"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var all []model.DomainScore
			for i, p := range tc.pcts {
				all = append(all, score(i+1, "d", p))
			}
			msg := OverallGuidance(all, scoring.IdentifyPriorities(all))
			if !strings.Contains(msg, tc.want) {
				t.Fatalf("guidance %q does not contain %q", msg, tc.want)
			}
		})
	}
}

func TestOverallGuidance_NamesExtremalDomains(t *testing.T) {
	all := []model.DomainScore{
		score(1, "Active Listening", 70),
		score(2, "Powerful Questioning", 64),
	}
	msg := OverallGuidance(all, scoring.IdentifyPriorities(all))
	assert.Contains(t, msg, "Active Listening")   // easiest win at 70
	assert.Contains(t, msg, "Powerful Questioning") // biggest opportunity at 64
}

func TestOverallGuidance_Empty(t *testing.T) {
	msg := OverallGuidance(nil, model.PriorityPicks{})
	assert.NotEmpty(t, msg)
}
