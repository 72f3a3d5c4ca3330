package model

import (
	"encoding/json"
	"time"
)

const (
	HobbyStatusPending  = "pending"
	HobbyStatusApproved = "approved"
	HobbyStatusRejected = "rejected"
)

const (
	HobbySortNewest    = "newest"
	HobbySortPriceAsc  = "price_asc"
	HobbySortPriceDesc = "price_desc"
)

type HobbyList []Hobby

// Hobby is a course listing. Lessons live in a JSONB column, mirroring the
// curriculum shape the classroom view consumes.
type Hobby struct {
	ID          int64           `db:"id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	ImageURL    string          `db:"image_url"`
	Price       float64         `db:"price"`
	Price1on1   float64         `db:"price_1on1"`
	Lessons     json.RawMessage `db:"lessons"`
	Status      string          `db:"status"`
	Featured    bool            `db:"featured"`
	CreatedBy   string          `db:"created_by"`
	TutorName   string          `db:"tutor_name"`
	CreatedAt   time.Time       `db:"created_at"`
}

type HobbyFilter struct {
	Category string
	Search   string
	Sort     string
}
