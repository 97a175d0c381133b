package template

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// FundraiserTemplate is a reusable blueprint: applying it clones its needs and
// reward tiers into a real fundraiser and copies its scalar defaults over.
type FundraiserTemplate struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId     ulid.ULID `gorm:"type:varchar(26);index:idx_fundraiser_templates_owner_id;not null" json:"ownerId"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`

	// Scalar defaults copied onto the target fundraiser when non-empty.
	Title         string  `gorm:"type:varchar(200)" json:"title"`
	Goal          float64 `gorm:"type:decimal(10,2);not null;default:0" json:"goal"`
	ImageURL      string  `gorm:"type:varchar(500)" json:"imageUrl"`
	Location      string  `gorm:"type:text" json:"location"`
	EnableRewards bool    `gorm:"not null;default:false" json:"enableRewards"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (FundraiserTemplate) TableName() string {
	return "fundraiser_templates"
}

func (t *FundraiserTemplate) OwnerUserID() ulid.ULID {
	return t.OwnerId
}

// TemplateNeed carries the union of the typed detail fields as optionals; the
// fields required for its NeedType are validated at materialization time.
type TemplateNeed struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	TemplateId  ulid.ULID `gorm:"type:varchar(26);index:idx_template_needs_template_id;not null" json:"templateId"`
	NeedType    string    `gorm:"type:varchar(20);not null" json:"needType"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    string    `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	SortOrder   int       `gorm:"not null;default:0" json:"sortOrder"`

	// money
	TargetAmount *float64 `gorm:"type:decimal(10,2)" json:"targetAmount"`

	// time
	StartDatetime    *time.Time `gorm:"type:timestamp" json:"startDatetime"`
	EndDatetime      *time.Time `gorm:"type:timestamp" json:"endDatetime"`
	VolunteersNeeded *int       `json:"volunteersNeeded"`
	RoleTitle        string     `gorm:"type:varchar(200)" json:"roleTitle"`
	Location         string     `gorm:"type:text" json:"location"`
	RewardTierRef    *ulid.ULID `gorm:"type:varchar(26)" json:"rewardTierRef"`

	// item
	ItemName              string     `gorm:"type:varchar(200)" json:"itemName"`
	QuantityNeeded        *int       `json:"quantityNeeded"`
	Mode                  string     `gorm:"type:varchar(20)" json:"mode"`
	Notes                 string     `gorm:"type:text" json:"notes"`
	DonationRewardTierRef *ulid.ULID `gorm:"type:varchar(26)" json:"donationRewardTierRef"`
	LoanRewardTierRef     *ulid.ULID `gorm:"type:varchar(26)" json:"loanRewardTierRef"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Owner of the parent template, filled by the repository via join.
	TemplateOwnerId ulid.ULID `gorm:"-" json:"-"`
}

func (TemplateNeed) TableName() string {
	return "template_needs"
}

func (n *TemplateNeed) OwnerUserID() ulid.ULID {
	return n.TemplateOwnerId
}

type TemplateRewardTier struct {
	Id                       ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	TemplateId               ulid.ULID `gorm:"type:varchar(26);index:idx_template_reward_tiers_template_id;not null" json:"templateId"`
	RewardType               string    `gorm:"type:varchar(20);not null" json:"rewardType"`
	Name                     string    `gorm:"type:varchar(200);not null" json:"name"`
	Description              string    `gorm:"type:text" json:"description"`
	MinimumContributionValue *float64  `gorm:"type:decimal(10,2)" json:"minimumContributionValue"`
	ImageURL                 string    `gorm:"type:varchar(500)" json:"imageUrl"`
	SortOrder                int       `gorm:"not null;default:0" json:"sortOrder"`
	MaxBackers               *uint     `json:"maxBackers"`
	CreatedAt                time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	TemplateOwnerId ulid.ULID `gorm:"-" json:"-"`
}

func (TemplateRewardTier) TableName() string {
	return "template_reward_tiers"
}

func (t *TemplateRewardTier) OwnerUserID() ulid.ULID {
	return t.TemplateOwnerId
}
