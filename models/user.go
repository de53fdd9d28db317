package models

import "time"

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleShipper UserRole = "shipper"
	UserRoleCarrier UserRole = "carrier"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id"`
	Username  string    `gorm:"size:50;not null;unique" json:"Username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100"`
	Company   *string   `gorm:"size:100"`
	Role      string    `gorm:"size:20;default:'carrier';not null"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime"`
}
