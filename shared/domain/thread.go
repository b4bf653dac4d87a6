package domain

import (
	"time"
)

// Thread is stored once and never mutated
type Thread struct {
	Id        ThreadId
	Title     string
	Body      string
	Owner     UserId
	CreatedAt time.Time
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// ThreadDetail is the aggregated read view: thread, owner username and every comment.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
