package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

type PayoutService struct {
	uow         uow.UOW
	payoutRepo  PayoutRequestRepository
	settingRepo PayoutSettingRepository
	audit       domain.AuditRecorder
}

func NewPayoutService(u uow.UOW, audit domain.AuditRecorder) (*PayoutService, error) {
	payoutRepo, err := uow.GetRepositoryAs[PayoutRequestRepository](u, uow.RepositoryName(repoargs.PayoutRequestRepoName))
	if err != nil {
		return nil, err
	}
	settingRepo, err := uow.GetRepositoryAs[PayoutSettingRepository](u, uow.RepositoryName(repoargs.PayoutSettingRepoName))
	if err != nil {
		return nil, err
	}
	return &PayoutService{
		uow:         u,
		payoutRepo:  payoutRepo,
		settingRepo: settingRepo,
		audit:       audit,
	}, nil
}

type ApplyPayoutArgs struct {
	UserID      int64
	Amount      decimal.Decimal
	Method      domain.PayoutMethodType
	Account     string
	AccountName string
	Network     string
	Notes       string
}

// Apply создает заявку на выплату. Реквизиты, не указанные в заявке, подставляются
// из сохраненных настроек юзера. Проверка доступного остатка и вставка заявки
// выполняются в одной транзакции под блокировкой строки профиля: две одновременные
// заявки не могут обе пройти проверку по устаревшему балансу.
//
// Доступный остаток = баланс профиля минус сумма заявок в статусах pending и approved
// (зарезервированные, но еще не списанные деньги).
func (s *PayoutService) Apply(ctx context.Context, args ApplyPayoutArgs) (*domain.PayoutRequest, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("applying for payout: %w: amount must be positive", domain.ErrValidation)
	}

	if fillErr := s.fillDestination(ctx, &args); fillErr != nil {
		return nil, fillErr
	}

	var request *domain.PayoutRequest
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		profileRepo, repoErr := uow.GetAs[AffiliateProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		payoutRepo, repoErr := uow.GetAs[PayoutRequestRepository](tx, uow.RepositoryName(repoargs.PayoutRequestRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		profile, lockErr := profileRepo.FindByUserIDForUpdate(c, args.UserID)
		if lockErr != nil {
			// Юзер без профиля не зарабатывал комиссий, выводить нечего.
			if errors.Is(lockErr, domain.ErrRecordNotFound) {
				return domain.ErrNotEnoughBalance
			}
			return lockErr //nolint:wrapcheck
		}

		reserved, reservedErr := payoutRepo.SumReserved(c, args.UserID)
		if reservedErr != nil {
			return reservedErr //nolint:wrapcheck
		}

		available := profile.CommissionBalance.Sub(reserved)
		if args.Amount.GreaterThan(available) {
			return domain.ErrNotEnoughBalance
		}

		var createErr error
		request, createErr = payoutRepo.Create(c, repoargs.PayoutRequestCreate{
			UserID:         args.UserID,
			Amount:         args.Amount,
			Method:         args.Method,
			Account:        args.Account,
			AccountName:    args.AccountName,
			Network:        args.Network,
			RequestedNotes: args.Notes,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrNotEnoughBalance) {
			return nil, domain.ErrNotEnoughBalance
		}
		return nil, fmt.Errorf("applying for payout: %w", txErr)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		OperatorID: args.UserID,
		TargetType: "payout_request",
		TargetID:   strconv.FormatInt(request.ID, 10),
		Action:     "payout.apply",
		Summary:    "payout request created",
		Detail: map[string]string{
			"amount": args.Amount.String(),
			"method": string(args.Method),
		},
	})
	return request, nil
}

// fillDestination подставляет недостающие реквизиты из настроек выплат юзера.
// Если реквизиты не указаны и настроек нет - ErrValidation.
func (s *PayoutService) fillDestination(ctx context.Context, args *ApplyPayoutArgs) error {
	if args.Method != "" && !args.Method.Valid() {
		return fmt.Errorf("applying for payout: %w: unsupported method `%s`", domain.ErrValidation, args.Method)
	}
	if args.Method != "" && args.Account != "" {
		return nil
	}

	setting, settingErr := s.settingRepo.FindByUserID(ctx, args.UserID)
	if settingErr != nil {
		if errors.Is(settingErr, domain.ErrRecordNotFound) {
			return fmt.Errorf("applying for payout: %w: payout destination is not set", domain.ErrValidation)
		}
		return fmt.Errorf("applying for payout: %w", settingErr)
	}

	if args.Method == "" {
		args.Method = setting.Method
	}
	if args.Account == "" {
		// Реквизиты из настроек применимы только для их метода: заявка на alipay
		// не должна унаследовать USDT-кошелек и сеть из сохраненных настроек.
		if setting.Method != args.Method {
			return fmt.Errorf(
				"applying for payout: %w: account is required for method `%s`",
				domain.ErrValidation, args.Method,
			)
		}
		args.Account = setting.Account
		args.AccountName = setting.AccountName
		args.Network = setting.Network
	}
	return nil
}

type ReviewPayoutArgs struct {
	RequestID   int64
	Status      domain.PayoutStatusType
	ReviewNotes string
	ReviewerID  int64
}

// Review переводит заявку в новый статус: pending -> approved|rejected, approved -> paid.
// Перевод в paid - момент необратимого списания суммы с баланса; rejected освобождает
// зарезервированную сумму. Списание и смена статуса выполняются в одной транзакции.
func (s *PayoutService) Review(ctx context.Context, args ReviewPayoutArgs) (*domain.PayoutRequest, error) {
	switch args.Status {
	case domain.PayoutStatusApproved, domain.PayoutStatusRejected, domain.PayoutStatusPaid:
	default:
		return nil, fmt.Errorf("reviewing payout request: %w: unsupported target status `%s`",
			domain.ErrValidation, args.Status)
	}

	var updated *domain.PayoutRequest
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		payoutRepo, repoErr := uow.GetAs[PayoutRequestRepository](tx, uow.RepositoryName(repoargs.PayoutRequestRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		profileRepo, repoErr := uow.GetAs[AffiliateProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		request, findErr := payoutRepo.FindByIDForUpdate(c, args.RequestID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !request.Status.CanTransitionTo(args.Status) {
			return domain.NewInvalidTransitionError(string(request.Status), string(args.Status))
		}

		now := time.Now()
		var paidAt *time.Time
		if args.Status == domain.PayoutStatusPaid {
			if _, lockErr := profileRepo.FindByUserIDForUpdate(c, request.UserID); lockErr != nil {
				return lockErr //nolint:wrapcheck
			}
			if debitErr := profileRepo.DebitBalance(c, request.UserID, request.Amount); debitErr != nil {
				return debitErr //nolint:wrapcheck
			}
			paidAt = &now
		}

		var updErr error
		updated, updErr = payoutRepo.UpdateStatus(c, repoargs.PayoutReview{
			RequestID:   args.RequestID,
			Status:      args.Status,
			ReviewNotes: args.ReviewNotes,
			ReviewedBy:  args.ReviewerID,
		}, now, paidAt)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrInvalidTransition) ||
			errors.Is(txErr, domain.ErrRecordNotFound) ||
			errors.Is(txErr, domain.ErrNotEnoughBalance) {
			return nil, txErr
		}
		return nil, fmt.Errorf("reviewing payout request %d: %w", args.RequestID, txErr)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		OperatorID: args.ReviewerID,
		TargetType: "payout_request",
		TargetID:   strconv.FormatInt(args.RequestID, 10),
		Action:     "payout.review",
		Summary:    fmt.Sprintf("payout request reviewed: %s", args.Status),
		Detail: map[string]string{
			"status":       string(args.Status),
			"review_notes": args.ReviewNotes,
		},
	})
	return updated, nil
}

// UserPayoutRequests возвращает заявки юзера с фильтрами и пагинацией.
func (s *PayoutService) UserPayoutRequests(
	ctx context.Context,
	userID int64,
	filter repoargs.PayoutFilter,
) ([]domain.PayoutRequest, error) {
	filter.UserID = userID
	normalizePayoutFilter(&filter)

	requests, err := s.payoutRepo.Filter(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

// AdminPayoutRequests возвращает заявки по произвольному фильтру оператора.
func (s *PayoutService) AdminPayoutRequests(
	ctx context.Context,
	filter repoargs.PayoutFilter,
) ([]domain.PayoutRequest, error) {
	normalizePayoutFilter(&filter)

	requests, err := s.payoutRepo.Filter(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

func (s *PayoutService) GetSetting(ctx context.Context, userID int64) (*domain.PayoutSetting, error) {
	setting, err := s.settingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return setting, nil
}

type UpsertSettingArgs struct {
	UserID      int64
	Method      domain.PayoutMethodType
	Account     string
	AccountName string
	Network     string
}

// UpsertSetting заменяет реквизиты выплат юзера. Настройки не участвуют в транзакциях
// леджера - это только источник значений по умолчанию для Apply.
func (s *PayoutService) UpsertSetting(ctx context.Context, args UpsertSettingArgs) (*domain.PayoutSetting, error) {
	if !args.Method.Valid() {
		return nil, fmt.Errorf("upserting payout setting: %w: unsupported method `%s`",
			domain.ErrValidation, args.Method)
	}
	if strings.TrimSpace(args.Account) == "" {
		return nil, fmt.Errorf("upserting payout setting: %w: account is required", domain.ErrValidation)
	}

	setting, err := s.settingRepo.Upsert(ctx, repoargs.PayoutSettingUpsert{
		UserID:      args.UserID,
		Method:      args.Method,
		Account:     strings.TrimSpace(args.Account),
		AccountName: strings.TrimSpace(args.AccountName),
		Network:     strings.TrimSpace(args.Network),
	})
	if err != nil {
		return nil, fmt.Errorf("upserting payout setting: %w", err)
	}
	return setting, nil
}

func normalizePayoutFilter(filter *repoargs.PayoutFilter) {
	if filter.Limit == 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
}
