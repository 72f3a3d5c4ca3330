package model

import "time"

const (
	AppointmentStatusPending  = "pending"
	AppointmentStatusAccepted = "accepted"
)

type Appointment struct {
	ID          int64     `db:"id"`
	StudentID   string    `db:"student_id"`
	TutorID     string    `db:"tutor_id"`
	ScheduledAt time.Time `db:"scheduled_at"`
	Status      string    `db:"status"`
	MeetingLink *string   `db:"meeting_link"`
	CreatedAt   time.Time `db:"created_at"`
}
