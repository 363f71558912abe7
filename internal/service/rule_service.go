package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

type RuleService struct {
	uow      uow.UOW
	ruleRepo CommissionRuleRepository
	audit    domain.AuditRecorder
}

func NewRuleService(u uow.UOW, audit domain.AuditRecorder) (*RuleService, error) {
	ruleRepo, err := uow.GetRepositoryAs[CommissionRuleRepository](u, uow.RepositoryName(repoargs.RuleRepoName))
	if err != nil {
		return nil, err
	}
	return &RuleService{
		uow:      u,
		ruleRepo: ruleRepo,
		audit:    audit,
	}, nil
}

// Get возвращает текущую версию правил начисления. Пока администратор не настроил
// правила ни разу, возвращается выключенная конфигурация с нулевыми ставками.
func (s *RuleService) Get(ctx context.Context) (*domain.CommissionRule, error) {
	rule, err := s.ruleRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.CommissionRule{
				Enabled:     false,
				FirstRate:   decimal.Zero,
				RenewalRate: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("getting commission rule: %w", err)
	}
	return rule, nil
}

type UpdateRuleArgs struct {
	Enabled     bool
	FirstRate   decimal.Decimal
	RenewalRate decimal.Decimal
}

// Update полностью заменяет правила начисления новой версией. Ставки валидируются
// в диапазоне [0, 1]. Каждое обновление атрибутируется оператору в журнале аудита.
func (s *RuleService) Update(
	ctx context.Context,
	args UpdateRuleArgs,
	operatorID int64,
) (*domain.CommissionRule, error) {
	if !rateInRange(args.FirstRate) || !rateInRange(args.RenewalRate) {
		return nil, fmt.Errorf("updating commission rule: %w: rate must be within [0, 1]", domain.ErrValidation)
	}

	rule, createErr := s.ruleRepo.Create(ctx, repoargs.RuleCreate{
		Enabled:     args.Enabled,
		FirstRate:   args.FirstRate,
		RenewalRate: args.RenewalRate,
		UpdatedBy:   operatorID,
	})
	if createErr != nil {
		return nil, fmt.Errorf("updating commission rule: %w", createErr)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		OperatorID: operatorID,
		TargetType: "commission_rule",
		TargetID:   strconv.FormatInt(rule.ID, 10),
		Action:     "rule.update",
		Summary:    "commission rule updated",
		Detail: map[string]string{
			"enabled":      strconv.FormatBool(rule.Enabled),
			"first_rate":   rule.FirstRate.String(),
			"renewal_rate": rule.RenewalRate.String(),
		},
	})
	return rule, nil
}

func rateInRange(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
