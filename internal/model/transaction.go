package model

import "time"

const (
	TransactionTypePayment = "payment"
	TransactionTypeEarning = "earning"

	// PlatformFee is the share of every enrollment payment kept by the
	// platform; tutors are credited the remainder.
	PlatformFee = 0.10
)

type TransactionList []Transaction

type Transaction struct {
	ID        int64     `db:"id"`
	ProfileID string    `db:"profile_id"`
	HobbyID   int64     `db:"hobby_id"`
	Amount    float64   `db:"amount"`
	PlanName  string    `db:"plan_name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}
