package scoring

import "coachassess/internal/model"

// Easiest-win band: a domain qualifies only when its percentage sits strictly
// between these bounds. Below it the gap is too wide to be a quick win, above
// it there is too little headroom left.
const (
	easiestWinLow  = 60.0
	easiestWinHigh = 90.0
)

// IdentifyPriorities picks the two extremal domains from a score set. This is
// the single source of truth for both the results aggregate and the
// recommendation engine.
//
// EasiestWin is the highest-percentage domain strictly inside (60,90), nil if
// none qualifies. BiggestOpportunity is the lowest-percentage domain
// unconditionally; ties resolve to the first in ascending domain-ID order,
// which is the order CalculateDomainScores returns. Both are nil only for an
// empty input.
func IdentifyPriorities(domainScores []model.DomainScore) model.PriorityPicks {
	var picks model.PriorityPicks
	for i := range domainScores {
		ds := &domainScores[i]

		if ds.Percentage > easiestWinLow && ds.Percentage < easiestWinHigh {
			if picks.EasiestWin == nil || ds.Percentage > picks.EasiestWin.Percentage {
				picks.EasiestWin = ds
			}
		}

		if picks.BiggestOpportunity == nil || ds.Percentage < picks.BiggestOpportunity.Percentage {
			picks.BiggestOpportunity = ds
		}
	}
	return picks
}
