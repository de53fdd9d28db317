package models

import "time"

// LoadDocument points at an object in the document bucket (rate
// confirmations, BOLs, proof of delivery scans).
type LoadDocument struct {
	DID         uint      `gorm:"primaryKey;column:d_id" json:"d_id"`
	LoadID      uint      `gorm:"not null" json:"load_id"` // foreign key: loads.l_id
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:512;not null;unique" json:"object_key"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  uint      `gorm:"not null" json:"uploaded_by"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}
