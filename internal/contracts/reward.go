package contracts

import (
	domainReward "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
)

type RewardTierCreateRequest struct {
	FundraiserId             string   `json:"fundraiser_id" binding:"required"`
	RewardType               string   `json:"reward_type" binding:"required,oneof=money time item"`
	Name                     string   `json:"name" binding:"required,max=100"`
	Description              string   `json:"description"`
	MinimumContributionValue *float64 `json:"minimum_contribution_value" binding:"omitempty,gte=0"`
	ImageURL                 string   `json:"image_url" binding:"omitempty,url"`
	SortOrder                int      `json:"sort_order"`
	MaxBackers               *uint    `json:"max_backers"`
}

type RewardTierUpdateRequest struct {
	Name                     *string  `json:"name" binding:"omitempty,max=100"`
	Description              *string  `json:"description"`
	MinimumContributionValue *float64 `json:"minimum_contribution_value" binding:"omitempty,gte=0"`
	ClearMinimum             bool     `json:"clear_minimum"`
	ImageURL                 *string  `json:"image_url" binding:"omitempty,url"`
	SortOrder                *int     `json:"sort_order"`
	MaxBackers               *uint    `json:"max_backers"`
}

type RewardTierResponse struct {
	RewardTier *domainReward.Tier `json:"reward_tier"`
}

type RewardTierListResponse struct {
	RewardTiers []*domainReward.Tier `json:"reward_tiers"`
}
