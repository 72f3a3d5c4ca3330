package model

import "time"

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"

	PlanCourse   = "course"
	PlanCoaching = "coaching"
)

type EnrollmentList []Enrollment

type Enrollment struct {
	ID              int64     `db:"id"`
	UserID          string    `db:"user_id"`
	HobbyID         int64     `db:"hobby_id"`
	Status          string    `db:"status"`
	CoachingEnabled bool      `db:"coaching_enabled"`
	CreatedAt       time.Time `db:"created_at"`

	HobbyTitle    string `db:"hobby_title"`
	HobbyImageURL string `db:"hobby_image_url"`
	TutorName     string `db:"tutor_name"`
	TutorID       string `db:"tutor_id"`
}

type RosterList []RosterEntry

// RosterEntry is one student enrollment in a listing owned by the tutor.
type RosterEntry struct {
	ID              int64     `db:"id"`
	HobbyID         int64     `db:"hobby_id"`
	HobbyTitle      string    `db:"hobby_title"`
	StudentID       string    `db:"student_id"`
	StudentName     string    `db:"student_name"`
	StudentAvatar   string    `db:"student_avatar"`
	Status          string    `db:"status"`
	CoachingEnabled bool      `db:"coaching_enabled"`
	CreatedAt       time.Time `db:"created_at"`
}
