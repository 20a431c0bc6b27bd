package model

// DomainScore is the computed result for a single domain. Derived, never stored.
type DomainScore struct {
	DomainID   int     `json:"domainId"`
	DomainName string  `json:"domainName"`
	Score      int     `json:"score"`
	MaxScore   int     `json:"maxScore"`   // answerable questions * LikertMax
	Percentage float64 `json:"percentage"` // rounded to 1 decimal, 0 when MaxScore is 0
	Color      string  `json:"color"`
	Emoji      string  `json:"emoji"`
}

// ScoreCategory is the qualitative tier for a total score
type ScoreCategory struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// PriorityPicks holds the two extremal domains identified from a score set.
// Either pointer may be nil: EasiestWin when no domain sits in the (60,90)
// band, both only when the input was empty.
type PriorityPicks struct {
	EasiestWin         *DomainScore `json:"easiestWin"`
	BiggestOpportunity *DomainScore `json:"biggestOpportunity"`
}

// ScoreResults is the full scoring aggregate handed to the presentation layer
type ScoreResults struct {
	TotalScore         int           `json:"totalScore"`
	MaxPossibleScore   int           `json:"maxPossibleScore"`
	OverallPercentage  float64       `json:"overallPercentage"`
	Category           ScoreCategory `json:"category"`
	DomainScores       []DomainScore `json:"domainScores"`
	EasiestWin         *DomainScore  `json:"easiestWin"`
	BiggestOpportunity *DomainScore  `json:"biggestOpportunity"`
}
