package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type TemplateCreateRequest struct {
	ActorId     ulid.ULID
	Name        string
	Description string
	IsActive    *bool

	Title         string
	Goal          float64
	ImageURL      string
	Location      string
	EnableRewards bool
}

type TemplateUpdateRequest struct {
	Id      ulid.ULID
	ActorId ulid.ULID

	Name        *string
	Description *string
	IsActive    *bool

	Title         *string
	Goal          *float64
	ImageURL      *string
	Location      *string
	EnableRewards *bool
}

type TemplateNeedCreateRequest struct {
	ActorId    ulid.ULID
	TemplateId ulid.ULID

	NeedType    string
	Title       string
	Description string
	Priority    string
	SortOrder   int

	TargetAmount *float64

	StartDatetime    *time.Time
	EndDatetime      *time.Time
	VolunteersNeeded *int
	RoleTitle        string
	Location         string
	RewardTierRef    *ulid.ULID

	ItemName              string
	QuantityNeeded        *int
	Mode                  string
	Notes                 string
	DonationRewardTierRef *ulid.ULID
	LoanRewardTierRef     *ulid.ULID
}

type TemplateRewardTierCreateRequest struct {
	ActorId    ulid.ULID
	TemplateId ulid.ULID

	RewardType               string
	Name                     string
	Description              string
	MinimumContributionValue *float64
	ImageURL                 string
	SortOrder                int
	MaxBackers               *uint
}
