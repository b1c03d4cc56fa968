package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is one applicant's in-progress or completed assessment attempt.
// CurrentIndex points into the fixed question order and advances once per
// newly answered question.
type Session struct {
	ID           string
	UserID       string
	Language     string
	StartedAt    time.Time
	CurrentIndex int
	Answers      map[string]Answer
}

func GenerateUUID() string {
	return uuid.New().String()
}
