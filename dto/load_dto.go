package dto

import "time"

type CreateLoadDTO struct {
	Origin      string    `json:"origin" binding:"required"`
	Destination string    `json:"destination" binding:"required"`
	Equipment   string    `json:"equipment" binding:"required,oneof=dry_van reefer flatbed step_deck"`
	WeightLbs   int       `json:"weight_lbs" binding:"omitempty,min=0"`
	RateCents   int64     `json:"rate_cents" binding:"required,min=1"`
	PickupDate  time.Time `json:"pickup_date" binding:"required"`
}

type UpdateLoadDTO struct {
	Origin      *string    `json:"origin"`
	Destination *string    `json:"destination"`
	Equipment   *string    `json:"equipment" binding:"omitempty,oneof=dry_van reefer flatbed step_deck"`
	WeightLbs   *int       `json:"weight_lbs" binding:"omitempty,min=0"`
	RateCents   *int64     `json:"rate_cents" binding:"omitempty,min=1"`
	PickupDate  *time.Time `json:"pickup_date"`
}

type ListLoadsQuery struct {
	Available   bool    `form:"available"`
	Equipment   *string `form:"equipment"`
	Origin      *string `form:"origin"`
	Destination *string `form:"destination"`
	Page        int     `form:"page,default=1"`
	Limit       int     `form:"limit,default=50"`
}
