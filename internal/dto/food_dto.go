package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/model"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateFoodRequest struct {
	Name        string                 `json:"name"            validate:"required,min=1,max=120"`
	Description string                 `json:"description"     validate:"required,min=1"`
	Price       *decimal.Decimal       `json:"price"           validate:"required,min=0"`
	Category    string                 `json:"category"        validate:"required,uuid"`
	Image       *string                `json:"image"`
	Ingredients []string               `json:"ingredients"`
	Allergens   []string               `json:"allergens"`
	Nutrition   *model.NutritionalInfo `json:"nutritionalInfo"`
	IsAvailable *bool                  `json:"isAvailable"`
}

// UpdateFoodRequest is a partial document: nil fields are left unchanged.
type UpdateFoodRequest struct {
	Name        *string                `json:"name"            validate:"omitempty,min=1,max=120"`
	Description *string                `json:"description"     validate:"omitempty,min=1"`
	Price       *decimal.Decimal       `json:"price"           validate:"omitempty,min=0"`
	Category    *string                `json:"category"        validate:"omitempty,uuid"`
	Image       *string                `json:"image"`
	Ingredients []string               `json:"ingredients"`
	Allergens   []string               `json:"allergens"`
	Nutrition   *model.NutritionalInfo `json:"nutritionalInfo"`
	IsAvailable *bool                  `json:"isAvailable"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// CategoryRef is the populated form of the weak category reference.
// Name is empty when the referenced category no longer exists.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

type FoodResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Category    CategoryRef            `json:"category"`
	Image       *string                `json:"image,omitempty"`
	Ingredients []string               `json:"ingredients"`
	Allergens   []string               `json:"allergens"`
	Nutrition   *model.NutritionalInfo `json:"nutritionalInfo,omitempty"`
	IsAvailable bool                   `json:"isAvailable"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
