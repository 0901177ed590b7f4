package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ContactMessage is a free-form inquiry from the public contact form.
type ContactMessage struct {
	bun.BaseModel `bun:"table:contact_messages"`

	ID        int64     `json:"id" bun:"id,pk,autoincrement"`
	Name      string    `json:"name" bun:"name,notnull"`
	Email     string    `json:"email" bun:"email,notnull"`
	Subject   string    `json:"subject" bun:"subject,notnull"`
	Message   string    `json:"message" bun:"message,notnull"`
	IsRead    bool      `json:"isRead" bun:"is_read,notnull,default:false"`
	CreatedAt time.Time `json:"createdAt" bun:"created_at,notnull,default:current_timestamp"`
}

// ContactRequest is the raw public form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ReadStatusRequest is the admin PATCH body for a contact message.
type ReadStatusRequest struct {
	IsRead *bool `json:"isRead"`
}
