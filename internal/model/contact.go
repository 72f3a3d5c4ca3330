package model

import "time"

type ContactList []Contact

// Contact is one row of a user's conversation list: the counterpart's
// profile data plus a preview of the latest exchanged message. The unread
// count is filled in from the counter store, not from this query.
type Contact struct {
	UserID               string     `db:"user_id"`
	FullName             string     `db:"full_name"`
	AvatarURL            string     `db:"avatar_url"`
	LastMessageContent   *string    `db:"last_message_content"`
	LastMessageTimestamp *time.Time `db:"last_message_timestamp"`
	UnreadCount          int64      `db:"-"`
}
