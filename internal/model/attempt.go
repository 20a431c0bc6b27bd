package model

import "time"

// Likert scale bounds. Every response value must sit inside this range.
const (
	LikertMin = 1
	LikertMax = 5
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
	AttemptAbandoned  AttemptStatus = "abandoned"
)

// Attempt is one run-through of the assessment by a user
type Attempt struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	UserID       string        `json:"userId" bson:"userId"`
	Status       AttemptStatus `json:"status" bson:"status"`
	CurrentIndex int           `json:"currentIndex" bson:"currentIndex"`
	StartedAt    time.Time     `json:"startedAt" bson:"startedAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// Response is a single Likert answer within an attempt
type Response struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	AttemptID  string    `json:"attemptId" bson:"attemptId"`
	QuestionID int       `json:"questionId" bson:"questionId"`
	Value      int       `json:"value" bson:"value"` // 1..5
	AnsweredAt time.Time `json:"answeredAt" bson:"answeredAt"`
}

// ValidValue reports whether v is a legal Likert response
func ValidValue(v int) bool {
	return v >= LikertMin && v <= LikertMax
}
