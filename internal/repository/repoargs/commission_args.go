package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/shopspring/decimal"
)

type CommissionCreate struct {
	InviterID        int64
	InviteeID        int64
	OrderID          string
	OrderAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	CommissionRate   decimal.Decimal
	EventType        domain.CommissionEventType
}

// CommissionFilter условия выборки записей комиссий. Нулевые значения полей
// трактуются как отсутствие фильтра.
type CommissionFilter struct {
	InviterID int64
	InviteeID int64
	EventType domain.CommissionEventType
	Status    domain.CommissionStatusType
	From      *time.Time
	To        *time.Time
	Limit     uint
	Offset    uint
}

// CommissionStatusSum агрегат сумм комиссий по статусу.
type CommissionStatusSum struct {
	Status domain.CommissionStatusType
	Sum    decimal.Decimal
}
