package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User принадлежит внешней системе аутентификации. Здесь читаются только поля,
// необходимые для проверки владельца реферального кода.
type User struct {
	ID        int64
	CreatedAt time.Time
	Username  string
	Banned    bool
}

// AffiliateProfile агрегат пригласившего: текущий реферальный код и денормализованные
// счетчики. Счетчики меняются только в одной транзакции с породившей их записью.
type AffiliateProfile struct {
	ID                    int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
	UserID                int64
	ReferralCode          string
	InviteCount           int64
	CommissionBalance     decimal.Decimal
	TotalCommissionEarned decimal.Decimal
}

// ReferralBinding связь приглашенного с пригласившим. Создается один раз при регистрации
// и никогда не меняется.
type ReferralBinding struct {
	ID        int64
	CreatedAt time.Time
	InviteeID int64
	InviterID int64
	CodeUsed  string
}

// CommissionRule текущая версия правил начисления. Обновления добавляют новую версию,
// Get читает последнюю.
type CommissionRule struct {
	ID          int64
	CreatedAt   time.Time
	Enabled     bool
	FirstRate   decimal.Decimal
	RenewalRate decimal.Decimal
	UpdatedBy   int64
}

type CommissionRecord struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	InviterID        int64
	InviteeID        int64
	OrderID          string
	OrderAmount      decimal.Decimal
	CommissionAmount decimal.Decimal
	CommissionRate   decimal.Decimal
	EventType        CommissionEventType
	Status           CommissionStatusType
	ReviewNotes      string
	SettledAt        *time.Time
}

type PayoutSetting struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Method      PayoutMethodType
	Account     string
	AccountName string
	Network     string
}

type PayoutRequest struct {
	ID             int64
	CreatedAt      time.Time
	UserID         int64
	Amount         decimal.Decimal
	Method         PayoutMethodType
	Account        string
	AccountName    string
	Network        string
	Status         PayoutStatusType
	RequestedNotes string
	ReviewNotes    string
	ReviewedBy     *int64
	ReviewedAt     *time.Time
	PaidAt         *time.Time
}
