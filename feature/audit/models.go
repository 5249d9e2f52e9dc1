package audit

import (
	"time"
)

// SyncRecord is one synchronized variant.
type SyncRecord struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	ProductID    string    `gorm:"column:product_id;type:varchar(64);index" json:"product_id"`
	VariantRef   string    `gorm:"column:variant_ref;type:varchar(128)" json:"variant_ref"`
	VariantID    int64     `gorm:"column:variant_id;index" json:"variant_id"`
	Brand        string    `gorm:"column:brand;type:varchar(128)" json:"brand"`
	Gender       string    `gorm:"column:gender;type:varchar(8)" json:"gender"`
	Size         string    `gorm:"column:size;type:varchar(16)" json:"size"`
	ScaleMatched string    `gorm:"column:scale_matched;type:varchar(8)" json:"scale_matched"`
	Created      int       `gorm:"column:created;default:0" json:"created"`
	Updated      int       `gorm:"column:updated;default:0" json:"updated"`
	Unchanged    int       `gorm:"column:unchanged;default:0" json:"unchanged"`
	Skipped      int       `gorm:"column:skipped;default:0" json:"skipped"`
	Failed       int       `gorm:"column:failed;default:0" json:"failed"`
	DryRun       bool      `gorm:"column:dry_run;default:false" json:"dry_run"`
	Error        string    `gorm:"column:error;type:text" json:"error,omitempty"`
	RayID        string    `gorm:"column:ray_id;type:varchar(64)" json:"ray_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (SyncRecord) TableName() string {
	return "sync_records"
}
