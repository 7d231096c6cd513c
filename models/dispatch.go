// GORM model for the dispatch journal + simple DTOs used in handlers.

package models

import "time"

// Journal statuses.
const (
	StatusOK            = "ok"
	StatusClassNotFound = "class_not_found"
	StatusUnknownRole   = "unknown_role"
	StatusError         = "error"
)

// Dispatch is one journal row: which class a request resolved to and how it went.
type Dispatch struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  string    `gorm:"size:36;uniqueIndex;not null" json:"request_id"`
	Role       string    `gorm:"size:20;not null" json:"role"`
	Path       string    `gorm:"size:255" json:"path"`
	ClassName  string    `gorm:"size:255" json:"class_name"`
	Status     string    `gorm:"size:32;index;not null" json:"status"`
	Error      string    `gorm:"size:512" json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// PagedDispatches is the response envelope for the journal list endpoint.
type PagedDispatches struct {
	Items []Dispatch `json:"items"` // Current page.
	Total int64      `json:"total"` // Total rows (for pagination UIs).
	Page  int        `json:"page"`  // 1-based page number.
	Limit int        `json:"limit"` // Page size used.
}

// LoginRequest is the payload for the operator login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the issued JWT.
type AuthResponse struct {
	Token string `json:"token"`
}

// ResolveResponse previews the class a role/path pair maps to.
type ResolveResponse struct {
	Role       Role   `json:"role"`
	Path       string `json:"path"`
	ClassName  string `json:"class_name"`
	Registered bool   `json:"registered"`
}
