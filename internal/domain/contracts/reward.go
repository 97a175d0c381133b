package contracts

import (
	"github.com/oklog/ulid/v2"
)

type RewardTierCreateRequest struct {
	ActorId                  ulid.ULID
	FundraiserId             ulid.ULID
	RewardType               string
	Name                     string
	Description              string
	MinimumContributionValue *float64
	ImageURL                 string
	SortOrder                int
	MaxBackers               *uint
}

type RewardTierUpdateRequest struct {
	Id                       ulid.ULID
	ActorId                  ulid.ULID
	Name                     *string
	Description              *string
	MinimumContributionValue *float64
	ClearMinimum             bool
	ImageURL                 *string
	SortOrder                *int
	MaxBackers               *uint
}
