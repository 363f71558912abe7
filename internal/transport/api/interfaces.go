package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/internal/service"
)

// ReferralServicer интерфейс исключительно для моков.
type ReferralServicer interface {
	EnsureCode(ctx context.Context, userID int64, force bool) (*domain.AffiliateProfile, error)
	Bind(ctx context.Context, inviteeID int64, code string) (*domain.ReferralBinding, error)
	GetDashboard(ctx context.Context, userID int64) (*service.Dashboard, error)
}

type RuleServicer interface {
	Get(ctx context.Context) (*domain.CommissionRule, error)
	Update(ctx context.Context, args service.UpdateRuleArgs, operatorID int64) (*domain.CommissionRule, error)
}

type CommissionServicer interface {
	UpdateStatus(
		ctx context.Context,
		commissionID int64,
		newStatus domain.CommissionStatusType,
		reviewNotes string,
		operatorID int64,
	) (*domain.CommissionRecord, error)
	UserCommissions(
		ctx context.Context,
		inviterID int64,
		filter repoargs.CommissionFilter,
	) ([]domain.CommissionRecord, error)
	AdminCommissions(ctx context.Context, filter repoargs.CommissionFilter) ([]domain.CommissionRecord, error)
}

type PayoutServicer interface {
	Apply(ctx context.Context, args service.ApplyPayoutArgs) (*domain.PayoutRequest, error)
	Review(ctx context.Context, args service.ReviewPayoutArgs) (*domain.PayoutRequest, error)
	UserPayoutRequests(
		ctx context.Context,
		userID int64,
		filter repoargs.PayoutFilter,
	) ([]domain.PayoutRequest, error)
	AdminPayoutRequests(ctx context.Context, filter repoargs.PayoutFilter) ([]domain.PayoutRequest, error)
	GetSetting(ctx context.Context, userID int64) (*domain.PayoutSetting, error)
	UpsertSetting(ctx context.Context, args service.UpsertSettingArgs) (*domain.PayoutSetting, error)
}
