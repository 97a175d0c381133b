package report

import (
	"github.com/oklog/ulid/v2"
)

// FundraiserSummary aggregates a fundraiser's pledge activity. Money totals
// include pledges of every status; reports deliberately mirror what the
// allocation engine sums.
type FundraiserSummary struct {
	FundraiserId      ulid.ULID      `json:"fundraiserId"`
	Title             string         `json:"title"`
	Goal              float64        `json:"goal"`
	TotalPledgedMoney float64        `json:"totalPledgedMoney"`
	PledgeCount       int64          `json:"pledgeCount"`
	SupporterCount    int64          `json:"supporterCount"`
	Needs             []NeedProgress `json:"needs"`
}

// NeedProgress reports how far along one need is; only the fields matching
// the need's type are populated.
type NeedProgress struct {
	NeedId   ulid.ULID `json:"needId"`
	Title    string    `json:"title"`
	NeedType string    `json:"needType"`
	Status   string    `json:"status"`

	TargetAmount  float64 `json:"targetAmount,omitempty"`
	PledgedAmount float64 `json:"pledgedAmount,omitempty"`

	VolunteersNeeded int     `json:"volunteersNeeded,omitempty"`
	VolunteerCount   int64   `json:"volunteerCount,omitempty"`
	HoursCommitted   float64 `json:"hoursCommitted,omitempty"`

	QuantityNeeded  int   `json:"quantityNeeded,omitempty"`
	QuantityPledged int64 `json:"quantityPledged,omitempty"`
}

// PledgeView is a pledge as shown to its supporter, with the reward name
// derived at read time rather than read from the stored assignment.
type PledgeView struct {
	PledgeId       ulid.ULID  `json:"pledgeId"`
	FundraiserId   ulid.ULID  `json:"fundraiserId"`
	NeedId         *ulid.ULID `json:"needId"`
	Status         string     `json:"status"`
	Comment        string     `json:"comment"`
	Anonymous      bool       `json:"anonymous"`
	RewardTierId   *ulid.ULID `json:"rewardTierId"`
	RewardTierName string     `json:"rewardTierName"`
}

// EarnedReward is one reward a supporter currently holds on a fundraiser,
// read from the persisted assignment.
type EarnedReward struct {
	FundraiserId    ulid.ULID `json:"fundraiserId"`
	FundraiserTitle string    `json:"fundraiserTitle"`
	RewardTierId    ulid.ULID `json:"rewardTierId"`
	RewardTierName  string    `json:"rewardTierName"`
	RewardType      string    `json:"rewardType"`
}
