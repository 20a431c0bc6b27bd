package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachassess/internal/model"
)

func ds(id int, pct float64) model.DomainScore {
	return model.DomainScore{DomainID: id, DomainName: "d", Percentage: pct}
}

func TestIdentifyPriorities_EasiestWinBandIsExclusive(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want bool
	}{
		{"below band", 60.0, false},
		{"just inside low", 60.1, true},
		{"mid band", 75.0, true},
		{"just inside high", 89.9, true},
		{"at high bound", 90.0, false},
		{"above band", 100.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			picks := IdentifyPriorities([]model.DomainScore{ds(1, tc.pct)})
			if tc.want {
				require.NotNil(t, picks.EasiestWin)
				assert.Equal(t, 1, picks.EasiestWin.DomainID)
			} else {
				assert.Nil(t, picks.EasiestWin)
			}
		})
	}
}

func TestIdentifyPriorities_PicksHighestInBand(t *testing.T) {
	picks := IdentifyPriorities([]model.DomainScore{
		ds(1, 65), ds(2, 88), ds(3, 72),
	})
	require.NotNil(t, picks.EasiestWin)
	assert.Equal(t, 2, picks.EasiestWin.DomainID)
}

func TestIdentifyPriorities_BiggestOpportunityIsUnconditional(t *testing.T) {
	// Even when every domain is strong, the lowest is still the pick
	picks := IdentifyPriorities([]model.DomainScore{
		ds(1, 95), ds(2, 92), ds(3, 98),
	})
	require.NotNil(t, picks.BiggestOpportunity)
	assert.Equal(t, 2, picks.BiggestOpportunity.DomainID)
}

func TestIdentifyPriorities_AllTiedAt70(t *testing.T) {
	// Six-way tie: both picks must resolve deterministically to the first
	// domain in ascending ID order
	var scores []model.DomainScore
	for id := 1; id <= 6; id++ {
		scores = append(scores, ds(id, 70))
	}

	picks := IdentifyPriorities(scores)
	require.NotNil(t, picks.EasiestWin)
	require.NotNil(t, picks.BiggestOpportunity)
	assert.Equal(t, 1, picks.EasiestWin.DomainID)
	assert.Equal(t, 1, picks.BiggestOpportunity.DomainID)
}

func TestIdentifyPriorities_Empty(t *testing.T) {
	picks := IdentifyPriorities(nil)
	assert.Nil(t, picks.EasiestWin)
	assert.Nil(t, picks.BiggestOpportunity)
}
