package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

type AppServices struct {
	ReferralService   *ReferralService
	RuleService       *RuleService
	SettlementService *SettlementService
	PayoutService     *PayoutService
}

func Factory(unitOfWork uow.UOW, audit domain.AuditRecorder, l *logrus.Logger) (*AppServices, error) {
	referralService, referralServiceErr := NewReferralService(unitOfWork, audit)
	if referralServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", referralServiceErr.Error())
	}

	ruleService, ruleServiceErr := NewRuleService(unitOfWork, audit)
	if ruleServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ruleServiceErr.Error())
	}

	settlementService, settlementServiceErr := NewSettlementService(unitOfWork, audit, l)
	if settlementServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", settlementServiceErr.Error())
	}

	payoutService, payoutServiceErr := NewPayoutService(unitOfWork, audit)
	if payoutServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", payoutServiceErr.Error())
	}

	return &AppServices{
		ReferralService:   referralService,
		RuleService:       ruleService,
		SettlementService: settlementService,
		PayoutService:     payoutService,
	}, nil
}
