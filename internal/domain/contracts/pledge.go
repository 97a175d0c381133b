package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Exactly one of the typed details must be set on creation; its type has to
// match the target need's type when a need is given.
type PledgeCreateRequest struct {
	SupporterId  ulid.ULID
	FundraiserId ulid.ULID
	NeedId       *ulid.ULID
	Comment      string
	Anonymous    bool

	Money *MoneyPledgePayload
	Time  *TimePledgePayload
	Item  *ItemPledgePayload
}

type MoneyPledgePayload struct {
	Amount  float64
	Comment string
}

type TimePledgePayload struct {
	StartDatetime  time.Time
	EndDatetime    time.Time
	HoursCommitted float64
	Comment        string
}

type ItemPledgePayload struct {
	Quantity int
	Mode     string
	Comment  string
}

type PledgeUpdateRequest struct {
	Id        ulid.ULID
	ActorId   ulid.ULID
	Comment   *string
	Anonymous *bool
	NeedId    *ulid.ULID
	ClearNeed bool
}

type MoneyPledgeUpdateRequest struct {
	Id      ulid.ULID
	ActorId ulid.ULID
	Amount  *float64
	Comment *string
}

type TimePledgeUpdateRequest struct {
	Id             ulid.ULID
	ActorId        ulid.ULID
	StartDatetime  *time.Time
	EndDatetime    *time.Time
	HoursCommitted *float64
	Comment        *string
}

type ItemPledgeUpdateRequest struct {
	Id       ulid.ULID
	ActorId  ulid.ULID
	Quantity *int
	Mode     *string
	Comment  *string
}
