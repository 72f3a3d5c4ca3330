package model

import "time"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

type ProfileList []Profile

type Profile struct {
	ID        string    `db:"id"`
	FullName  string    `db:"full_name"`
	Bio       string    `db:"bio"`
	AvatarURL string    `db:"avatar_url"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}
