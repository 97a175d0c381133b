package contracts

import (
	"time"

	domainPledge "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
)

// Exactly one of money/time/item must be present; the service enforces the
// one-of rule and the type match against the target need.
type PledgeCreateRequest struct {
	FundraiserId string  `json:"fundraiser_id" binding:"required"`
	NeedId       *string `json:"need_id"`
	Comment      string  `json:"comment"`
	Anonymous    bool    `json:"anonymous"`

	Money *MoneyPledgeRequest `json:"money"`
	Time  *TimePledgeRequest  `json:"time"`
	Item  *ItemPledgeRequest  `json:"item"`
}

type MoneyPledgeRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Comment string  `json:"comment"`
}

type TimePledgeRequest struct {
	StartDatetime  time.Time `json:"start_datetime" binding:"required"`
	EndDatetime    time.Time `json:"end_datetime" binding:"required"`
	HoursCommitted float64   `json:"hours_committed" binding:"required,gt=0"`
	Comment        string    `json:"comment"`
}

type ItemPledgeRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Mode     string `json:"mode" binding:"omitempty,oneof=donation loan"`
	Comment  string `json:"comment"`
}

type PledgeUpdateRequest struct {
	Comment   *string `json:"comment"`
	Anonymous *bool   `json:"anonymous"`
}

type MoneyPledgeUpdateRequest struct {
	Amount  *float64 `json:"amount" binding:"omitempty,gt=0"`
	Comment *string  `json:"comment"`
}

type TimePledgeUpdateRequest struct {
	StartDatetime  *time.Time `json:"start_datetime"`
	EndDatetime    *time.Time `json:"end_datetime"`
	HoursCommitted *float64   `json:"hours_committed" binding:"omitempty,gt=0"`
	Comment        *string    `json:"comment"`
}

type ItemPledgeUpdateRequest struct {
	Quantity *int    `json:"quantity" binding:"omitempty,gt=0"`
	Mode     *string `json:"mode" binding:"omitempty,oneof=donation loan"`
	Comment  *string `json:"comment"`
}

type PledgeTransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type PledgeResponse struct {
	Pledge *domainPledge.Pledge `json:"pledge"`
}

type PledgeListResponse struct {
	Pledges []*domainPledge.Pledge `json:"pledges"`
}
