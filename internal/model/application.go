package model

import "time"

const ApplicationStatusPending = "pending"

type TutorApplication struct {
	ID            int64     `db:"id"`
	UserID        string    `db:"user_id"`
	FullName      string    `db:"full_name"`
	Expertise     string    `db:"expertise"`
	Motivation    string    `db:"motivation"`
	CredentialURL string    `db:"credential_url"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}
