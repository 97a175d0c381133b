package fundraiser

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

type Fundraiser struct {
	Id              ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId         ulid.ULID  `gorm:"type:varchar(26);index:idx_fundraisers_owner_id;not null" json:"ownerId"`
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Goal            float64    `gorm:"type:decimal(10,2);not null" json:"goal"`
	ImageURL        string     `gorm:"type:varchar(500)" json:"imageUrl"`
	Location        string     `gorm:"type:text" json:"location"`
	StartDate       *time.Time `gorm:"type:date" json:"startDate"`
	EndDate         *time.Time `gorm:"type:date" json:"endDate"`
	Status          Status     `gorm:"type:varchar(20);default:'draft';index:idx_fundraisers_status" json:"status"`
	EnableRewards   bool       `gorm:"not null;default:false" json:"enableRewards"`
	RequireApproval bool       `gorm:"not null;default:false" json:"requireApproval"`
	SortOrder       int        `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Fundraiser) TableName() string {
	return "fundraisers"
}

// IsOpen is derived from status and never persisted.
func (f *Fundraiser) IsOpen() bool {
	return f.Status == StatusActive
}

func (f *Fundraiser) OwnerUserID() ulid.ULID {
	return f.OwnerId
}
