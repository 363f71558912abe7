package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type AffiliateProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.AffiliateProfile, error)
	FindByUserIDForUpdate(ctx context.Context, userID int64) (*domain.AffiliateProfile, error)
	FindByCode(ctx context.Context, code string) (*domain.AffiliateProfile, error)
	CreateWithCode(ctx context.Context, userID int64, code string) (*domain.AffiliateProfile, error)
	UpdateCode(ctx context.Context, userID int64, code string) (*domain.AffiliateProfile, error)
	IncrementInviteCount(ctx context.Context, userID int64) error
	AddCommission(ctx context.Context, userID int64, amount decimal.Decimal) error
	SubtractCommission(ctx context.Context, userID int64, amount decimal.Decimal) error
	DebitBalance(ctx context.Context, userID int64, amount decimal.Decimal) error
}

type ReferralBindingRepository interface {
	Create(ctx context.Context, args repoargs.BindingCreate) (*domain.ReferralBinding, error)
	FindByInviteeID(ctx context.Context, inviteeID int64) (*domain.ReferralBinding, error)
	GetByInviterID(ctx context.Context, inviterID int64, limit uint) ([]domain.ReferralBinding, error)
}

type CommissionRuleRepository interface {
	GetLatest(ctx context.Context) (*domain.CommissionRule, error)
	Create(ctx context.Context, args repoargs.RuleCreate) (*domain.CommissionRule, error)
}

type CommissionRecordRepository interface {
	Create(ctx context.Context, args repoargs.CommissionCreate) (*domain.CommissionRecord, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.CommissionRecord, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		status domain.CommissionStatusType,
		reviewNotes string,
		settledAt *time.Time,
	) (*domain.CommissionRecord, error)
	HasSettledForInvitee(ctx context.Context, inviteeID int64, excludeOrderID string) (bool, error)
	Filter(ctx context.Context, filter repoargs.CommissionFilter) ([]domain.CommissionRecord, error)
	SumByInviter(ctx context.Context, inviterID int64) ([]repoargs.CommissionStatusSum, error)
}

type PayoutRequestRepository interface {
	Create(ctx context.Context, args repoargs.PayoutRequestCreate) (*domain.PayoutRequest, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.PayoutRequest, error)
	UpdateStatus(
		ctx context.Context,
		review repoargs.PayoutReview,
		reviewedAt time.Time,
		paidAt *time.Time,
	) (*domain.PayoutRequest, error)
	SumReserved(ctx context.Context, userID int64) (decimal.Decimal, error)
	SumByUser(ctx context.Context, userID int64) ([]repoargs.PayoutStatusSum, error)
	Filter(ctx context.Context, filter repoargs.PayoutFilter) ([]domain.PayoutRequest, error)
}

type PayoutSettingRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.PayoutSetting, error)
	Upsert(ctx context.Context, args repoargs.PayoutSettingUpsert) (*domain.PayoutSetting, error)
}
