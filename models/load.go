package models

import "time"

type EquipmentType string

const (
	EquipmentDryVan  EquipmentType = "dry_van"
	EquipmentReefer  EquipmentType = "reefer"
	EquipmentFlatbed EquipmentType = "flatbed"
	EquipmentStepDek EquipmentType = "step_deck"
)

// Load is a posted shipment. Whether a carrier has taken it is carried
// by the Booked flag; the legacy status string was dropped from the
// schema in favour of it.
type Load struct {
	LID         uint      `gorm:"primaryKey;column:l_id" json:"l_id"`
	Reference   string    `gorm:"size:36;not null;unique" json:"reference"`
	ShipperID   uint      `gorm:"not null" json:"shipper_id"` // foreign key: users.u_id
	CarrierID   *uint     `json:"carrier_id"`                 // set when booked
	Origin      string    `gorm:"size:100;not null" json:"origin"`
	Destination string    `gorm:"size:100;not null" json:"destination"`
	Equipment   string    `gorm:"size:30;not null" json:"equipment"`
	WeightLbs   int       `json:"weight_lbs"`
	RateCents   int64     `gorm:"not null" json:"rate_cents"`
	PickupDate  time.Time `json:"pickup_date"`
	Booked      bool      `gorm:"not null;default:false" json:"booked"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
