package models

import "time"

type QuestionAnalytics struct {
	ID          int       `db:"id" json:"id"`
	Question    string    `db:"question" json:"question"`
	Category    string    `db:"category" json:"category"`
	Count       int       `db:"count" json:"count"`
	LastAskedAt time.Time `db:"last_asked_at" json:"last_asked_at"`
}
