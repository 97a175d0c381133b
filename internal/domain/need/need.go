package need

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeMoney Type = "money"
	TypeTime  Type = "time"
	TypeItem  Type = "item"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeMoney, TypeTime, TypeItem:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen      Status = "open"
	StatusPartial   Status = "partial"
	StatusFilled    Status = "filled"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusPartial, StatusFilled, StatusCancelled:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Need is the base row; exactly one type-matched detail attaches to it.
// NeedType is immutable after creation. Status and priority are informational
// and never derived from pledge totals.
type Need struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	FundraiserId ulid.ULID `gorm:"type:varchar(26);index:idx_needs_fundraiser_id;not null" json:"fundraiserId"`
	NeedType     Type      `gorm:"type:varchar(20);not null" json:"needType"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Status       Status    `gorm:"type:varchar(20);default:'open'" json:"status"`
	Priority     Priority  `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	SortOrder    int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Owner of the parent fundraiser, filled by the repository via join.
	FundraiserOwnerId ulid.ULID `gorm:"-" json:"-"`
}

func (Need) TableName() string {
	return "needs"
}

func (n *Need) OwnerUserID() ulid.ULID {
	return n.FundraiserOwnerId
}
