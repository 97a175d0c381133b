package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type NeedCreateRequest struct {
	ActorId      ulid.ULID
	FundraiserId ulid.ULID
	NeedType     string
	Title        string
	Description  string
	Status       string
	Priority     string
	SortOrder    int
}

type NeedUpdateRequest struct {
	Id          ulid.ULID
	ActorId     ulid.ULID
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	SortOrder   *int
}

type MoneyNeedCreateRequest struct {
	ActorId      ulid.ULID
	NeedId       ulid.ULID
	TargetAmount float64
	Comment      string
}

type MoneyNeedUpdateRequest struct {
	Id           ulid.ULID
	ActorId      ulid.ULID
	TargetAmount *float64
	Comment      *string
}

type TimeNeedCreateRequest struct {
	ActorId          ulid.ULID
	NeedId           ulid.ULID
	StartDatetime    time.Time
	EndDatetime      time.Time
	VolunteersNeeded int
	RoleTitle        string
	Location         string
	RewardTierId     *ulid.ULID
}

type TimeNeedUpdateRequest struct {
	Id               ulid.ULID
	ActorId          ulid.ULID
	StartDatetime    *time.Time
	EndDatetime      *time.Time
	VolunteersNeeded *int
	RoleTitle        *string
	Location         *string
	RewardTierId     *ulid.ULID
	ClearRewardTier  bool
}

type ItemNeedCreateRequest struct {
	ActorId              ulid.ULID
	NeedId               ulid.ULID
	ItemName             string
	QuantityNeeded       int
	Mode                 string
	Notes                string
	DonationRewardTierId *ulid.ULID
	LoanRewardTierId     *ulid.ULID
}

type ItemNeedUpdateRequest struct {
	Id                   ulid.ULID
	ActorId              ulid.ULID
	ItemName             *string
	QuantityNeeded       *int
	Mode                 *string
	Notes                *string
	DonationRewardTierId *ulid.ULID
	LoanRewardTierId     *ulid.ULID
	ClearDonationTier    bool
	ClearLoanTier        bool
}
