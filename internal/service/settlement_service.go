package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

// errAlreadySettled внутренняя метка повторной попытки расчета по тому же заказу.
// Наружу не выходит: источник платежных событий доставляет их как минимум один раз,
// и повтор - штатная ситуация, а не ошибка.
var errAlreadySettled = errors.New("commission already settled for order")

type SettlementService struct {
	uow         uow.UOW
	bindingRepo ReferralBindingRepository
	ruleRepo    CommissionRuleRepository
	commRepo    CommissionRecordRepository
	audit       domain.AuditRecorder
	l           *logrus.Entry
}

func NewSettlementService(u uow.UOW, audit domain.AuditRecorder, l *logrus.Logger) (*SettlementService, error) {
	bindingRepo, err := uow.GetRepositoryAs[ReferralBindingRepository](u, uow.RepositoryName(repoargs.BindingRepoName))
	if err != nil {
		return nil, err
	}
	ruleRepo, err := uow.GetRepositoryAs[CommissionRuleRepository](u, uow.RepositoryName(repoargs.RuleRepoName))
	if err != nil {
		return nil, err
	}
	commRepo, err := uow.GetRepositoryAs[CommissionRecordRepository](u, uow.RepositoryName(repoargs.CommissionRepoName))
	if err != nil {
		return nil, err
	}
	return &SettlementService{
		uow:         u,
		bindingRepo: bindingRepo,
		ruleRepo:    ruleRepo,
		commRepo:    commRepo,
		audit:       audit,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "settlement",
		}),
	}, nil
}

// PaidEvent завершенное платежное событие из внешней биллинговой подсистемы.
// OrderID глобально уникален для каждого оплаченного заказа и служит ключом
// идемпотентности.
type PaidEvent struct {
	InviteeID     int64
	OrderID       string
	OrderAmount   decimal.Decimal
	RedeemedValue *decimal.Decimal
}

// Settle классифицирует платежное событие, считает и фиксирует комиссию пригласившего.
// Возвращает nil без ошибки когда начислять нечего: у приглашенного нет привязки,
// правила выключены, сумма не определяется или комиссия по заказу уже записана.
//
// Классификация - это чтение; гарантия "ровно одна запись на заказ" обеспечивается
// на вставке уникальным ограничением по order_id. Вставка записи и изменение баланса
// пригласившего выполняются в одной транзакции под блокировкой строки профиля.
func (s *SettlementService) Settle(ctx context.Context, event PaidEvent) (*domain.CommissionRecord, error) {
	if event.OrderID == "" {
		return nil, fmt.Errorf("settling commission: %w: order id is required", domain.ErrValidation)
	}

	binding, bindingErr := s.bindingRepo.FindByInviteeID(ctx, event.InviteeID)
	if bindingErr != nil {
		if errors.Is(bindingErr, domain.ErrRecordNotFound) {
			// Без привязки комиссия не существует.
			return nil, nil
		}
		return nil, fmt.Errorf("settling commission: %w", bindingErr)
	}

	rule, ruleErr := s.ruleRepo.GetLatest(ctx)
	if ruleErr != nil {
		if errors.Is(ruleErr, domain.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("settling commission: %w", ruleErr)
	}

	orderAmount := ResolveOrderAmount(event.OrderAmount, event.RedeemedValue)
	if !orderAmount.IsPositive() {
		return nil, nil
	}

	eventType, classifyErr := s.classify(ctx, event.InviteeID, event.OrderID)
	if classifyErr != nil {
		return nil, fmt.Errorf("settling commission: %w", classifyErr)
	}

	commission := ComputeCommission(orderAmount, eventType, *rule)
	if !commission.IsPositive() {
		return nil, nil
	}

	record, txErr := s.recordCommission(ctx, repoargs.CommissionCreate{
		InviterID:        binding.InviterID,
		InviteeID:        event.InviteeID,
		OrderID:          event.OrderID,
		OrderAmount:      orderAmount,
		CommissionAmount: commission,
		CommissionRate:   commissionRate(eventType, *rule),
		EventType:        eventType,
	})
	if txErr != nil {
		if errors.Is(txErr, errAlreadySettled) {
			s.l.WithField("orderID", event.OrderID).Debug("duplicate settlement attempt, skipping")
			return nil, nil
		}
		return nil, fmt.Errorf("settling commission: %w", txErr)
	}
	return record, nil
}

// classify относит событие к первому пополнению или продлению: первое пополнение -
// когда у приглашенного нет подтвержденной комиссии по другому заказу.
func (s *SettlementService) classify(
	ctx context.Context,
	inviteeID int64,
	orderID string,
) (domain.CommissionEventType, error) {
	hasSettled, err := s.commRepo.HasSettledForInvitee(ctx, inviteeID, orderID)
	if err != nil {
		return "", err
	}
	if hasSettled {
		return domain.CommissionEventRenewal, nil
	}
	return domain.CommissionEventFirstRecharge, nil
}

// recordCommission единственная точка записи, увеличивающая баланс пригласившего.
// Транзитные сбои транзакции повторяются один раз.
func (s *SettlementService) recordCommission(
	ctx context.Context,
	args repoargs.CommissionCreate,
) (*domain.CommissionRecord, error) {
	var record *domain.CommissionRecord

	doInsert := func() error {
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			profileRepo, repoErr := uow.GetAs[AffiliateProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			commRepo, repoErr := uow.GetAs[CommissionRecordRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}

			// Блокировка профиля сериализует все мутации баланса между конкурентными
			// расчетами, ревью комиссий и заявками на выплату.
			if _, lockErr := profileRepo.FindByUserIDForUpdate(c, args.InviterID); lockErr != nil {
				return lockErr //nolint:wrapcheck
			}

			var createErr error
			record, createErr = commRepo.Create(c, args)
			if createErr != nil {
				if errors.Is(createErr, domain.ErrDuplicateKey) {
					return errAlreadySettled
				}
				return createErr //nolint:wrapcheck
			}

			return profileRepo.AddCommission(c, args.InviterID, args.CommissionAmount) //nolint:wrapcheck
		})
	}

	err := doInsert()
	if err != nil && errors.Is(err, domain.ErrUnknown) {
		err = doInsert()
	}
	return record, err
}

// UpdateStatus переводит запись комиссии в новый статус: pending -> approved|rejected,
// approved -> paid. Отклонение откатывает вклад записи в баланс пригласившего в той же
// транзакции; если баланс уже зарезервирован заявками на выплату, откат завершится
// ошибкой ErrNotEnoughBalance.
func (s *SettlementService) UpdateStatus(
	ctx context.Context,
	commissionID int64,
	newStatus domain.CommissionStatusType,
	reviewNotes string,
	operatorID int64,
) (*domain.CommissionRecord, error) {
	var updated *domain.CommissionRecord

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		commRepo, repoErr := uow.GetAs[CommissionRecordRepository](tx, uow.RepositoryName(repoargs.CommissionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		profileRepo, repoErr := uow.GetAs[AffiliateProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		record, findErr := commRepo.FindByIDForUpdate(c, commissionID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !record.Status.CanTransitionTo(newStatus) {
			return domain.NewInvalidTransitionError(string(record.Status), string(newStatus))
		}

		if newStatus == domain.CommissionStatusRejected {
			payoutRepo, payoutRepoErr := uow.GetAs[PayoutRequestRepository](tx, uow.RepositoryName(repoargs.PayoutRequestRepoName))
			if payoutRepoErr != nil {
				return payoutRepoErr //nolint:wrapcheck
			}

			profile, lockErr := profileRepo.FindByUserIDForUpdate(c, record.InviterID)
			if lockErr != nil {
				return lockErr //nolint:wrapcheck
			}

			// Откат не должен опустить баланс ниже суммы, зарезервированной
			// заявками на выплату в статусах pending и approved.
			reserved, reservedErr := payoutRepo.SumReserved(c, record.InviterID)
			if reservedErr != nil {
				return reservedErr //nolint:wrapcheck
			}
			if profile.CommissionBalance.Sub(record.CommissionAmount).LessThan(reserved) {
				return domain.ErrNotEnoughBalance
			}

			if subErr := profileRepo.SubtractCommission(c, record.InviterID, record.CommissionAmount); subErr != nil {
				return subErr //nolint:wrapcheck
			}
		}

		var settledAt *time.Time
		if newStatus == domain.CommissionStatusPaid {
			now := time.Now()
			settledAt = &now
		}

		var updErr error
		updated, updErr = commRepo.UpdateStatus(c, commissionID, newStatus, reviewNotes, settledAt)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrInvalidTransition) ||
			errors.Is(txErr, domain.ErrRecordNotFound) ||
			errors.Is(txErr, domain.ErrNotEnoughBalance) {
			return nil, txErr
		}
		return nil, fmt.Errorf("updating commission %d status: %w", commissionID, txErr)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		OperatorID: operatorID,
		TargetType: "commission_record",
		TargetID:   strconv.FormatInt(commissionID, 10),
		Action:     "commission.review",
		Summary:    fmt.Sprintf("commission record reviewed: %s", newStatus),
		Detail: map[string]string{
			"status":       string(newStatus),
			"review_notes": reviewNotes,
		},
	})
	return updated, nil
}

// UserCommissions возвращает записи комиссий пригласившего с фильтрами и пагинацией.
func (s *SettlementService) UserCommissions(
	ctx context.Context,
	inviterID int64,
	filter repoargs.CommissionFilter,
) ([]domain.CommissionRecord, error) {
	filter.InviterID = inviterID
	normalizeCommissionFilter(&filter)

	records, err := s.commRepo.Filter(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return records, nil
}

// AdminCommissions возвращает записи комиссий по произвольному фильтру оператора.
func (s *SettlementService) AdminCommissions(
	ctx context.Context,
	filter repoargs.CommissionFilter,
) ([]domain.CommissionRecord, error) {
	normalizeCommissionFilter(&filter)

	records, err := s.commRepo.Filter(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return records, nil
}

func commissionRate(eventType domain.CommissionEventType, rule domain.CommissionRule) decimal.Decimal {
	if eventType == domain.CommissionEventFirstRecharge {
		return rule.FirstRate
	}
	return rule.RenewalRate
}

const (
	defaultPageLimit uint = 20
	maxPageLimit     uint = 100
)

func normalizeCommissionFilter(filter *repoargs.CommissionFilter) {
	if filter.Limit == 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
}
