package model

import (
	"time"
)

type User struct {
	ID         string    `db:"id" json:"id"`
	ExternalID string    `db:"external_id" json:"externalId"`
	FullName   string    `db:"full_name" json:"fullName"`
	Email      string    `db:"email" json:"email"`
	ProfilePic *string   `db:"profile_pic" json:"profilePic,omitempty"` // Nullable, provider-supplied URL
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
