package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;autoUpdateTime" json:"updatedAt"`
}
