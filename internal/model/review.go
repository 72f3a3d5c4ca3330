package model

import "time"

type ReviewList []Review

type Review struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_id"`
	HobbyID      int64     `db:"hobby_id"`
	Rating       int32     `db:"rating"`
	Comment      string    `db:"comment"`
	CreatedAt    time.Time `db:"created_at"`
	AuthorName   string    `db:"author_name"`
	AuthorAvatar string    `db:"author_avatar"`
	HobbyTitle   string    `db:"hobby_title"`
}
