package reward

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

type Tier struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	FundraiserId ulid.ULID `gorm:"type:varchar(26);index:idx_reward_tiers_fundraiser_id;not null" json:"fundraiserId"`
	RewardType   Type      `gorm:"type:varchar(20);not null" json:"rewardType"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	// Minimum cash amount to qualify; only meaningful for money tiers and
	// cleared to nil for any other type on save.
	MinimumContributionValue *float64  `gorm:"type:decimal(10,2)" json:"minimumContributionValue"`
	ImageURL                 string    `gorm:"type:varchar(500)" json:"imageUrl"`
	SortOrder                int       `gorm:"not null;default:0" json:"sortOrder"`
	MaxBackers               *uint     `json:"maxBackers"`
	CreatedAt                time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Owner of the parent fundraiser, filled by the repository via join.
	FundraiserOwnerId ulid.ULID `gorm:"-" json:"-"`
}

func (Tier) TableName() string {
	return "reward_tiers"
}

func (t *Tier) OwnerUserID() ulid.ULID {
	return t.FundraiserOwnerId
}

// Normalize enforces the save-time invariant that only money tiers carry a
// contribution threshold.
func (t *Tier) Normalize() {
	if t.RewardType != TypeMoney {
		t.MinimumContributionValue = nil
	}
}
