package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Offer is a time-boxed promotional package shown on the offers page.
type Offer struct {
	bun.BaseModel `bun:"table:offers"`

	ID              int64      `json:"id" bun:"id,pk,autoincrement"`
	Title           string     `json:"title" bun:"title,notnull"`
	Description     string     `json:"description" bun:"description,notnull"`
	Image           string     `json:"image" bun:"image,notnull"`
	OriginalPrice   int        `json:"originalPrice" bun:"original_price,notnull"`
	DiscountedPrice int        `json:"discountedPrice" bun:"discounted_price,notnull"`
	Discount        string     `json:"discount" bun:"discount"`
	StartDate       time.Time  `json:"startDate" bun:"start_date,notnull"`
	EndDate         *time.Time `json:"endDate" bun:"end_date,nullzero"`
	IsNew           bool       `json:"isNew" bun:"is_new,notnull,default:false"`
	IsActive        bool       `json:"isActive" bun:"is_active,notnull,default:true"`
	CreatedAt       time.Time  `json:"createdAt" bun:"created_at,notnull,default:current_timestamp"`
}

// PortfolioItem is a gallery entry. Category is one of the service slugs
// (wedding, commercial, events, portrait).
type PortfolioItem struct {
	bun.BaseModel `bun:"table:portfolio_items"`

	ID          int64     `json:"id" bun:"id,pk,autoincrement"`
	Title       string    `json:"title" bun:"title,notnull"`
	Description string    `json:"description" bun:"description,notnull"`
	Category    string    `json:"category" bun:"category,notnull"`
	Image       string    `json:"image" bun:"image,notnull"`
	IsVideo     bool      `json:"isVideo" bun:"is_video,notnull,default:false"`
	VideoURL    string    `json:"videoUrl" bun:"video_url"`
	Featured    bool      `json:"featured" bun:"featured,notnull,default:false"`
	CreatedAt   time.Time `json:"createdAt" bun:"created_at,notnull,default:current_timestamp"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials"`

	ID        int64     `json:"id" bun:"id,pk,autoincrement"`
	Name      string    `json:"name" bun:"name,notnull"`
	Role      string    `json:"role" bun:"role,notnull"`
	Quote     string    `json:"quote" bun:"quote,notnull"`
	Image     string    `json:"image" bun:"image,notnull"`
	IsActive  bool      `json:"isActive" bun:"is_active,notnull,default:true"`
	CreatedAt time.Time `json:"createdAt" bun:"created_at,notnull,default:current_timestamp"`
}

// PortfolioListOptions filters the public portfolio gallery.
type PortfolioListOptions struct {
	Category string
	Featured bool
}
