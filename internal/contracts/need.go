package contracts

import (
	"time"

	domainNeed "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
)

type NeedCreateRequest struct {
	FundraiserId string `json:"fundraiser_id" binding:"required"`
	NeedType     string `json:"need_type" binding:"required,oneof=money time item"`
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	Status       string `json:"status" binding:"omitempty,oneof=open partial filled cancelled"`
	Priority     string `json:"priority" binding:"omitempty,oneof=high medium low"`
	SortOrder    int    `json:"sort_order"`
}

type NeedUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=open partial filled cancelled"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	SortOrder   *int    `json:"sort_order"`
}

type MoneyNeedCreateRequest struct {
	NeedId       string  `json:"need_id" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Comment      string  `json:"comment"`
}

type MoneyNeedUpdateRequest struct {
	TargetAmount *float64 `json:"target_amount" binding:"omitempty,gt=0"`
	Comment      *string  `json:"comment"`
}

type TimeNeedCreateRequest struct {
	NeedId           string    `json:"need_id" binding:"required"`
	StartDatetime    time.Time `json:"start_datetime" binding:"required"`
	EndDatetime      time.Time `json:"end_datetime" binding:"required"`
	VolunteersNeeded int       `json:"volunteers_needed" binding:"required,gt=0"`
	RoleTitle        string    `json:"role_title" binding:"required,max=200"`
	Location         string    `json:"location"`
	RewardTierId     *string   `json:"reward_tier_id"`
}

type TimeNeedUpdateRequest struct {
	StartDatetime    *time.Time `json:"start_datetime"`
	EndDatetime      *time.Time `json:"end_datetime"`
	VolunteersNeeded *int       `json:"volunteers_needed" binding:"omitempty,gt=0"`
	RoleTitle        *string    `json:"role_title" binding:"omitempty,max=200"`
	Location         *string    `json:"location"`
	RewardTierId     *string    `json:"reward_tier_id"`
	ClearRewardTier  bool       `json:"clear_reward_tier"`
}

type ItemNeedCreateRequest struct {
	NeedId               string  `json:"need_id" binding:"required"`
	ItemName             string  `json:"item_name" binding:"required,max=200"`
	QuantityNeeded       int     `json:"quantity_needed" binding:"required,gt=0"`
	Mode                 string  `json:"mode" binding:"required,oneof=donation loan either"`
	Notes                string  `json:"notes"`
	DonationRewardTierId *string `json:"donation_reward_tier_id"`
	LoanRewardTierId     *string `json:"loan_reward_tier_id"`
}

type ItemNeedUpdateRequest struct {
	ItemName             *string `json:"item_name" binding:"omitempty,max=200"`
	QuantityNeeded       *int    `json:"quantity_needed" binding:"omitempty,gt=0"`
	Mode                 *string `json:"mode" binding:"omitempty,oneof=donation loan either"`
	Notes                *string `json:"notes"`
	DonationRewardTierId *string `json:"donation_reward_tier_id"`
	LoanRewardTierId     *string `json:"loan_reward_tier_id"`
	ClearDonationTier    bool    `json:"clear_donation_tier"`
	ClearLoanTier        bool    `json:"clear_loan_tier"`
}

type NeedResponse struct {
	Need *domainNeed.Need `json:"need"`
}

type MoneyNeedResponse struct {
	Detail *domainNeed.MoneyNeed `json:"detail"`
}

type TimeNeedResponse struct {
	Detail *domainNeed.TimeNeed `json:"detail"`
}

type ItemNeedResponse struct {
	Detail *domainNeed.ItemNeed `json:"detail"`
}
