package pledge

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// ActorRole is who is driving a status transition, derived from the acting
// identity before the state machine runs.
type ActorRole string

const (
	RoleSupporter ActorRole = "supporter"
	RoleOwner     ActorRole = "owner"
)

type Pledge struct {
	Id           ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	FundraiserId ulid.ULID  `gorm:"type:varchar(26);index:idx_pledges_fundraiser_id;not null" json:"fundraiserId"`
	NeedId       *ulid.ULID `gorm:"type:varchar(26);index:idx_pledges_need_id" json:"needId"`
	SupporterId  ulid.ULID  `gorm:"type:varchar(26);index:idx_pledges_supporter_id;not null" json:"supporterId"`
	Status       Status     `gorm:"type:varchar(20);default:'pending';index:idx_pledges_status" json:"status"`
	// Assigned by the allocation engine, never chosen by the pledger.
	RewardTierId *ulid.ULID `gorm:"type:varchar(26)" json:"rewardTierId"`
	Comment      string     `gorm:"type:text" json:"comment"`
	Anonymous    bool       `gorm:"not null;default:false" json:"anonymous"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Owner of the parent fundraiser, filled by the repository via join and
	// used to derive the actor role for transitions.
	FundraiserOwnerId ulid.ULID `gorm:"-" json:"-"`
}

func (Pledge) TableName() string {
	return "pledges"
}

// OwnerUserID identifies the supporter: pledges and their detail rows are
// supporter-owned for permission purposes.
func (p *Pledge) OwnerUserID() ulid.ULID {
	return p.SupporterId
}
