package need

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type ItemMode string

const (
	ItemModeDonation ItemMode = "donation"
	ItemModeLoan     ItemMode = "loan"
	ItemModeEither   ItemMode = "either"
)

func (m ItemMode) IsValid() bool {
	switch m {
	case ItemModeDonation, ItemModeLoan, ItemModeEither:
		return true
	}
	return false
}

type MoneyNeed struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	NeedId       ulid.ULID `gorm:"type:varchar(26);uniqueIndex:idx_money_needs_need_id;not null" json:"needId"`
	TargetAmount float64   `gorm:"type:decimal(10,2);not null" json:"targetAmount"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (MoneyNeed) TableName() string {
	return "money_needs"
}

type TimeNeed struct {
	Id               ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	NeedId           ulid.ULID  `gorm:"type:varchar(26);uniqueIndex:idx_time_needs_need_id;not null" json:"needId"`
	StartDatetime    time.Time  `gorm:"type:timestamp;not null" json:"startDatetime"`
	EndDatetime      time.Time  `gorm:"type:timestamp;not null" json:"endDatetime"`
	VolunteersNeeded int        `gorm:"not null" json:"volunteersNeeded"`
	RoleTitle        string     `gorm:"type:varchar(200);not null" json:"roleTitle"`
	Location         string     `gorm:"type:varchar(200);not null" json:"location"`
	RewardTierId     *ulid.ULID `gorm:"type:varchar(26)" json:"rewardTierId"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (TimeNeed) TableName() string {
	return "time_needs"
}

type ItemNeed struct {
	Id                   ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	NeedId               ulid.ULID  `gorm:"type:varchar(26);uniqueIndex:idx_item_needs_need_id;not null" json:"needId"`
	ItemName             string     `gorm:"type:varchar(200);not null" json:"itemName"`
	QuantityNeeded       int        `gorm:"not null" json:"quantityNeeded"`
	Mode                 ItemMode   `gorm:"type:varchar(20);not null" json:"mode"`
	Notes                string     `gorm:"type:text" json:"notes"`
	DonationRewardTierId *ulid.ULID `gorm:"type:varchar(26)" json:"donationRewardTierId"`
	LoanRewardTierId     *ulid.ULID `gorm:"type:varchar(26)" json:"loanRewardTierId"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (ItemNeed) TableName() string {
	return "item_needs"
}
