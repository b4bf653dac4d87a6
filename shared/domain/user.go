package domain

import "time"

type User struct {
	Id        UserId
	Username  Username
	Fullname  string
	PassHash  string
	CreatedAt time.Time
}

// AddedUser is returned by registration, never carries the hash.
type AddedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}
