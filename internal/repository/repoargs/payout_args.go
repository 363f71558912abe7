package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/shopspring/decimal"
)

type PayoutRequestCreate struct {
	UserID         int64
	Amount         decimal.Decimal
	Method         domain.PayoutMethodType
	Account        string
	AccountName    string
	Network        string
	RequestedNotes string
}

// PayoutFilter условия выборки заявок на выплату. Нулевые значения полей
// трактуются как отсутствие фильтра.
type PayoutFilter struct {
	UserID int64
	Status domain.PayoutStatusType
	From   *time.Time
	To     *time.Time
	Limit  uint
	Offset uint
}

type PayoutReview struct {
	RequestID   int64
	Status      domain.PayoutStatusType
	ReviewNotes string
	ReviewedBy  int64
}

type PayoutSettingUpsert struct {
	UserID      int64
	Method      domain.PayoutMethodType
	Account     string
	AccountName string
	Network     string
}

// PayoutStatusSum агрегат сумм заявок на выплату по статусу.
type PayoutStatusSum struct {
	Status domain.PayoutStatusType
	Sum    decimal.Decimal
}
