package pledge

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type ItemMode string

const (
	ItemModeDonation ItemMode = "donation"
	ItemModeLoan     ItemMode = "loan"
)

func (m ItemMode) IsValid() bool {
	switch m {
	case ItemModeDonation, ItemModeLoan:
		return true
	}
	return false
}

type MoneyPledge struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	PledgeId  ulid.ULID `gorm:"type:varchar(26);uniqueIndex:idx_money_pledges_pledge_id;not null" json:"pledgeId"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (MoneyPledge) TableName() string {
	return "money_pledges"
}

type TimePledge struct {
	Id             ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	PledgeId       ulid.ULID `gorm:"type:varchar(26);uniqueIndex:idx_time_pledges_pledge_id;not null" json:"pledgeId"`
	StartDatetime  time.Time `gorm:"type:timestamp;not null" json:"startDatetime"`
	EndDatetime    time.Time `gorm:"type:timestamp;not null" json:"endDatetime"`
	HoursCommitted float64   `gorm:"type:decimal(5,2);not null" json:"hoursCommitted"`
	Comment        string    `gorm:"type:text" json:"comment"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (TimePledge) TableName() string {
	return "time_pledges"
}

type ItemPledge struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	PledgeId  ulid.ULID `gorm:"type:varchar(26);uniqueIndex:idx_item_pledges_pledge_id;not null" json:"pledgeId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Mode      ItemMode  `gorm:"type:varchar(20);not null" json:"mode"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (ItemPledge) TableName() string {
	return "item_pledges"
}
