package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NutritionalInfo is stored as a jsonb blob; values are free-form numbers.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Food is a single menu/inventory item.
//
// CategoryID is a weak reference: there is deliberately no foreign key, no
// existence check on write, and no cascade on category delete. A dangling id
// is valid data.
type Food struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"index;not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Image       *string
	Ingredients []string         `gorm:"type:jsonb;serializer:json;not null"`
	Allergens   []string         `gorm:"type:jsonb;serializer:json;not null"`
	Nutrition   *NutritionalInfo `gorm:"type:jsonb;serializer:json"`
	IsAvailable bool             `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Food) TableName() string { return "foods" }
