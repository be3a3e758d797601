package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fees are stored as numeric(10,2): at most 8 integer digits and 2 decimals.
const (
	FeesScale         = 2
	FeesIntegerDigits = 8
)

// Course represents a course offered on the public site
type Course struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Duration    string          `gorm:"size:100;not null" json:"duration"` // free text, e.g. "3 months"
	Fees        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"fees"`
	ImageURL    *string         `gorm:"size:500" json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
