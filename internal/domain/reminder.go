package domain

import "github.com/aarogyaai/aarogya-backend/internal/pkg/pointers"

// Reminder is a medication/activity reminder. Schedule is opaque text
// shown back to the user; nothing interprets it.
type Reminder struct {
	Title      string  `json:"title" bson:"title" binding:"required"`
	Schedule   string  `json:"schedule" bson:"schedule" binding:"required"`
	Active     *bool   `json:"active" bson:"active"`
	OwnerEmail *string `json:"owner_email,omitempty" bson:"owner_email,omitempty" binding:"omitempty,email"`
}

func (r *Reminder) ApplyDefaults() {
	if r.Active == nil {
		r.Active = pointers.Ptr(true)
	}
}
