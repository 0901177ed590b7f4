package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// ValidStatus reports whether s is one of the four booking statuses.
// Any valid status may be set from any other: the lifecycle is intentionally
// unrestricted because administrators correct mistakes by moving bookings
// backwards as well as forwards.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// ServiceTypes offered by the studio, matching the public booking form.
var ServiceTypes = []string{"wedding", "events", "commercial", "portrait", "aerial", "video", "other"}

// Budget bounds in KSh.
const (
	MinBudget = 10000
	MaxBudget = 200000
)

// Booking is a customer service request with a lifecycle status.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID          int64         `json:"id" bun:"id,pk,autoincrement"`
	FirstName   string        `json:"firstName" bun:"first_name,notnull"`
	LastName    string        `json:"lastName" bun:"last_name,notnull"`
	Email       string        `json:"email" bun:"email,notnull"`
	Phone       string        `json:"phone" bun:"phone,notnull"`
	ServiceType string        `json:"serviceType" bun:"service_type,notnull"`
	EventDate   *time.Time    `json:"eventDate" bun:"event_date,nullzero"`
	Location    string        `json:"location" bun:"location"`
	Message     string        `json:"message" bun:"message"`
	Budget      int           `json:"budget" bun:"budget,notnull"`
	Status      BookingStatus `json:"status" bun:"status,notnull,default:'pending'"`
	CreatedAt   time.Time     `json:"createdAt" bun:"created_at,notnull,default:current_timestamp"`
}

// BookingRequest is the raw public form submission. AgreeToTerms is consumed
// by validation and never persisted.
type BookingRequest struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	ServiceType  string     `json:"serviceType"`
	EventDate    *time.Time `json:"eventDate"`
	Location     string     `json:"location"`
	Message      string     `json:"message"`
	Budget       int        `json:"budget"`
	AgreeToTerms bool       `json:"agreeToTerms"`
}

// StatusUpdateRequest is the admin PATCH body for a booking.
type StatusUpdateRequest struct {
	Status BookingStatus `json:"status"`
}

// BookingListOptions carries the backend-side filter and sort for listing
// bookings. The free-text search is applied locally on top of the query
// result, never pushed to the backend.
type BookingListOptions struct {
	Status        BookingStatus
	SortField     string
	SortAscending bool
	Search        string
}

// BookingSortFields are the column names the admin table may sort by.
var BookingSortFields = map[string]bool{
	"id":           true,
	"first_name":   true,
	"last_name":    true,
	"service_type": true,
	"event_date":   true,
	"budget":       true,
	"status":       true,
	"created_at":   true,
}
