package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type FundraiserCreateRequest struct {
	OwnerId         ulid.ULID
	Title           string
	Description     string
	Goal            float64
	ImageURL        string
	Location        string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          string
	EnableRewards   bool
	RequireApproval bool
	SortOrder       int
}

type FundraiserUpdateRequest struct {
	Id              ulid.ULID
	ActorId         ulid.ULID
	Title           *string
	Description     *string
	Goal            *float64
	ImageURL        *string
	Location        *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	EnableRewards   *bool
	RequireApproval *bool
	SortOrder       *int
}
