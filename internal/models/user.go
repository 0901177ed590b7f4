package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an administrator account. Authentication depth is deliberately
// thin: username, bcrypt hash, admin flag.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID             int64     `json:"id" bun:"id,pk,autoincrement"`
	Username       string    `json:"username" bun:"username,notnull,unique"`
	HashedPassword string    `json:"-" bun:"password,notnull"`
	IsAdmin        bool      `json:"isAdmin" bun:"is_admin,notnull,default:false"`
	CreatedAt      time.Time `json:"createdAt" bun:"created_at,notnull,default:current_timestamp"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
