package contracts

import (
	"time"

	domainFundraiser "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
)

type FundraiserCreateRequest struct {
	Title           string     `json:"title" binding:"required,max=200"`
	Description     string     `json:"description"`
	Goal            float64    `json:"goal" binding:"required,gt=0"`
	ImageURL        string     `json:"image_url" binding:"omitempty,url"`
	Location        string     `json:"location"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Status          string     `json:"status" binding:"omitempty,oneof=draft active closed cancelled"`
	EnableRewards   bool       `json:"enable_rewards"`
	RequireApproval bool       `json:"require_approval"`
	SortOrder       int        `json:"sort_order"`
}

type FundraiserUpdateRequest struct {
	Title           *string    `json:"title" binding:"omitempty,max=200"`
	Description     *string    `json:"description"`
	Goal            *float64   `json:"goal" binding:"omitempty,gt=0"`
	ImageURL        *string    `json:"image_url" binding:"omitempty,url"`
	Location        *string    `json:"location"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Status          *string    `json:"status" binding:"omitempty,oneof=draft active closed cancelled"`
	EnableRewards   *bool      `json:"enable_rewards"`
	RequireApproval *bool      `json:"require_approval"`
	SortOrder       *int       `json:"sort_order"`
}

type FundraiserResponse struct {
	Fundraiser *domainFundraiser.Fundraiser `json:"fundraiser"`
}
