package contracts

import (
	"time"

	domainFundraiser "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	domainTemplate "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
)

type TemplateCreateRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`

	Title         string  `json:"title" binding:"omitempty,max=200"`
	Goal          float64 `json:"goal" binding:"omitempty,gt=0"`
	ImageURL      string  `json:"image_url" binding:"omitempty,url"`
	Location      string  `json:"location"`
	EnableRewards bool    `json:"enable_rewards"`
}

type TemplateUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`

	Title         *string  `json:"title" binding:"omitempty,max=200"`
	Goal          *float64 `json:"goal" binding:"omitempty,gt=0"`
	ImageURL      *string  `json:"image_url" binding:"omitempty,url"`
	Location      *string  `json:"location"`
	EnableRewards *bool    `json:"enable_rewards"`
}

type TemplateNeedCreateRequest struct {
	NeedType    string `json:"need_type" binding:"required,oneof=money time item"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=high medium low"`
	SortOrder   int    `json:"sort_order"`

	TargetAmount *float64 `json:"target_amount" binding:"omitempty,gt=0"`

	StartDatetime    *time.Time `json:"start_datetime"`
	EndDatetime      *time.Time `json:"end_datetime"`
	VolunteersNeeded *int       `json:"volunteers_needed" binding:"omitempty,gt=0"`
	RoleTitle        string     `json:"role_title" binding:"omitempty,max=200"`
	Location         string     `json:"location"`
	RewardTierRef    *string    `json:"reward_tier_ref"`

	ItemName              string  `json:"item_name" binding:"omitempty,max=200"`
	QuantityNeeded        *int    `json:"quantity_needed" binding:"omitempty,gt=0"`
	Mode                  string  `json:"mode" binding:"omitempty,oneof=donation loan either"`
	Notes                 string  `json:"notes"`
	DonationRewardTierRef *string `json:"donation_reward_tier_ref"`
	LoanRewardTierRef     *string `json:"loan_reward_tier_ref"`
}

type TemplateRewardTierCreateRequest struct {
	RewardType               string   `json:"reward_type" binding:"required,oneof=money time item"`
	Name                     string   `json:"name" binding:"required,max=100"`
	Description              string   `json:"description"`
	MinimumContributionValue *float64 `json:"minimum_contribution_value" binding:"omitempty,gte=0"`
	ImageURL                 string   `json:"image_url" binding:"omitempty,url"`
	SortOrder                int      `json:"sort_order"`
	MaxBackers               *uint    `json:"max_backers"`
}

type ApplyTemplateRequest struct {
	TemplateId string `json:"template_id" binding:"required"`
}

type TemplateResponse struct {
	Template *domainTemplate.FundraiserTemplate `json:"template"`
}

type ApplyTemplateResponse struct {
	Fundraiser *domainFundraiser.Fundraiser `json:"fundraiser"`
}
