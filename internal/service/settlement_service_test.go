package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-affiliate/internal/audit"
	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/logger"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/internal/service/mocks"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-affiliate/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockBindingRepo *mocks.MockReferralBindingRepository
	mockRuleRepo    *mocks.MockCommissionRuleRepository
	mockCommRepo    *mocks.MockCommissionRecordRepository
	mockProfileRepo *mocks.MockAffiliateProfileRepository
	mockPayoutRepo  *mocks.MockPayoutRequestRepository
	service         *SettlementService
}

func TestSettlementServiceSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}

func (s *SettlementServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockBindingRepo = mocks.NewMockReferralBindingRepository(s.mockCtrl)
	s.mockRuleRepo = mocks.NewMockCommissionRuleRepository(s.mockCtrl)
	s.mockCommRepo = mocks.NewMockCommissionRecordRepository(s.mockCtrl)
	s.mockProfileRepo = mocks.NewMockAffiliateProfileRepository(s.mockCtrl)
	s.mockPayoutRepo = mocks.NewMockPayoutRequestRepository(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BindingRepoName)).
		Return(s.mockBindingRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RuleRepoName)).
		Return(s.mockRuleRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CommissionRepoName)).
		Return(s.mockCommRepo, nil).AnyTimes()

	l := logger.New(io.Discard)

	service, servErr := NewSettlementService(s.mockUOW, audit.New(l), l)
	s.Require().NoError(servErr)
	s.service = service
}

func (s *SettlementServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx настраивает получение репозиториев из транзакции и прокидывание fn через Do.
func (s *SettlementServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CommissionRepoName)).
		Return(s.mockCommRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PayoutRequestRepoName)).
		Return(s.mockPayoutRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).AnyTimes()
}

func (s *SettlementServiceTestSuite) defaultRule() *domain.CommissionRule {
	return &domain.CommissionRule{
		ID:          1,
		Enabled:     true,
		FirstRate:   decimal.RequireFromString("0.1"),
		RenewalRate: decimal.RequireFromString("0.05"),
	}
}

func (s *SettlementServiceTestSuite) TestSettle_FirstRecharge() {
	event := PaidEvent{
		InviteeID:   10,
		OrderID:     "ORD-1001",
		OrderAmount: decimal.NewFromInt(100),
	}
	binding := domain.ReferralBinding{ID: 1, InviteeID: 10, InviterID: 7}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(&binding, nil)
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).
		Return(s.defaultRule(), nil)
	// Подтвержденных комиссий еще нет - событие классифицируется как первое пополнение.
	s.mockCommRepo.EXPECT().HasSettledForInvitee(gomock.Any(), event.InviteeID, event.OrderID).
		Return(false, nil)

	s.expectTx()
	s.mockProfileRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), binding.InviterID).
		Return(&domain.AffiliateProfile{UserID: binding.InviterID}, nil)
	s.mockCommRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CommissionCreate) (*domain.CommissionRecord, error) {
			s.Equal(binding.InviterID, args.InviterID)
			s.Equal(event.OrderID, args.OrderID)
			s.Equal(domain.CommissionEventFirstRecharge, args.EventType)
			// 100 * 0.1 = 10.00
			s.True(decimal.NewFromInt(10).Equal(args.CommissionAmount))
			return &domain.CommissionRecord{
				ID:               1,
				InviterID:        args.InviterID,
				InviteeID:        args.InviteeID,
				OrderID:          args.OrderID,
				CommissionAmount: args.CommissionAmount,
				EventType:        args.EventType,
				Status:           domain.CommissionStatusPending,
			}, nil
		})
	s.mockProfileRepo.EXPECT().
		AddCommission(gomock.Any(), binding.InviterID, decimal.NewFromInt(10).Round(2)).
		Return(nil)

	record, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
	s.Require().NotNil(record)
	s.Equal(domain.CommissionStatusPending, record.Status)
	s.Equal(domain.CommissionEventFirstRecharge, record.EventType)
}

func (s *SettlementServiceTestSuite) TestSettle_Renewal() {
	event := PaidEvent{
		InviteeID:   10,
		OrderID:     "ORD-1002",
		OrderAmount: decimal.NewFromInt(100),
	}
	binding := domain.ReferralBinding{ID: 1, InviteeID: 10, InviterID: 7}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(&binding, nil)
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).
		Return(s.defaultRule(), nil)
	// Уже есть подтвержденная комиссия по другому заказу - это продление.
	s.mockCommRepo.EXPECT().HasSettledForInvitee(gomock.Any(), event.InviteeID, event.OrderID).
		Return(true, nil)

	s.expectTx()
	s.mockProfileRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), binding.InviterID).
		Return(&domain.AffiliateProfile{UserID: binding.InviterID}, nil)
	s.mockCommRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CommissionCreate) (*domain.CommissionRecord, error) {
			s.Equal(domain.CommissionEventRenewal, args.EventType)
			// 100 * 0.05 = 5.00
			s.True(decimal.NewFromInt(5).Equal(args.CommissionAmount))
			return &domain.CommissionRecord{ID: 2, EventType: args.EventType}, nil
		})
	s.mockProfileRepo.EXPECT().AddCommission(gomock.Any(), binding.InviterID, gomock.Any()).
		Return(nil)

	record, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
	s.Require().NotNil(record)
}

func (s *SettlementServiceTestSuite) TestSettle_RedeemedValueWins() {
	// Если передана погашенная стоимость, комиссия считается от нее, а не от суммы заказа.
	redeemed := decimal.NewFromInt(80)
	event := PaidEvent{
		InviteeID:     10,
		OrderID:       "ORD-1003",
		OrderAmount:   decimal.NewFromInt(100),
		RedeemedValue: &redeemed,
	}
	binding := domain.ReferralBinding{InviteeID: 10, InviterID: 7}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(&binding, nil)
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).
		Return(s.defaultRule(), nil)
	s.mockCommRepo.EXPECT().HasSettledForInvitee(gomock.Any(), event.InviteeID, event.OrderID).
		Return(false, nil)

	s.expectTx()
	s.mockProfileRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), binding.InviterID).
		Return(&domain.AffiliateProfile{UserID: binding.InviterID}, nil)
	s.mockCommRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CommissionCreate) (*domain.CommissionRecord, error) {
			s.True(redeemed.Equal(args.OrderAmount))
			// 80 * 0.1 = 8.00
			s.True(decimal.NewFromInt(8).Equal(args.CommissionAmount))
			return &domain.CommissionRecord{ID: 3}, nil
		})
	s.mockProfileRepo.EXPECT().AddCommission(gomock.Any(), binding.InviterID, gomock.Any()).
		Return(nil)

	_, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
}

func (s *SettlementServiceTestSuite) TestSettle_NoBinding() {
	event := PaidEvent{InviteeID: 99, OrderID: "ORD-2001", OrderAmount: decimal.NewFromInt(100)}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(nil, domain.ErrRecordNotFound)

	record, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
	s.Nil(record)
}

func (s *SettlementServiceTestSuite) TestSettle_RuleDisabled() {
	event := PaidEvent{InviteeID: 10, OrderID: "ORD-2002", OrderAmount: decimal.NewFromInt(100)}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(&domain.ReferralBinding{InviteeID: 10, InviterID: 7}, nil)

	rule := s.defaultRule()
	rule.Enabled = false
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).Return(rule, nil)
	s.mockCommRepo.EXPECT().HasSettledForInvitee(gomock.Any(), event.InviteeID, event.OrderID).
		Return(false, nil)

	record, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
	s.Nil(record)
}

func (s *SettlementServiceTestSuite) TestSettle_NonPositiveAmount() {
	event := PaidEvent{InviteeID: 10, OrderID: "ORD-2003", OrderAmount: decimal.Zero}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(&domain.ReferralBinding{InviteeID: 10, InviterID: 7}, nil)
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).Return(s.defaultRule(), nil)

	record, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
	s.Nil(record)
}

func (s *SettlementServiceTestSuite) TestSettle_EmptyOrderID() {
	_, err := s.service.Settle(s.T().Context(), PaidEvent{InviteeID: 10, OrderAmount: decimal.NewFromInt(100)})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *SettlementServiceTestSuite) TestSettle_DuplicateOrder() {
	// Повторная доставка того же заказа не создает вторую запись и не меняет баланс.
	event := PaidEvent{InviteeID: 10, OrderID: "ORD-3001", OrderAmount: decimal.NewFromInt(100)}
	binding := domain.ReferralBinding{InviteeID: 10, InviterID: 7}

	s.mockBindingRepo.EXPECT().FindByInviteeID(gomock.Any(), event.InviteeID).
		Return(&binding, nil)
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).Return(s.defaultRule(), nil)
	s.mockCommRepo.EXPECT().HasSettledForInvitee(gomock.Any(), event.InviteeID, event.OrderID).
		Return(false, nil)

	s.expectTx()
	s.mockProfileRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), binding.InviterID).
		Return(&domain.AffiliateProfile{UserID: binding.InviterID}, nil)
	s.mockCommRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	// AddCommission вызываться не должен.
	s.mockProfileRepo.EXPECT().AddCommission(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	record, err := s.service.Settle(s.T().Context(), event)
	s.Require().NoError(err)
	s.Nil(record)
}

func (s *SettlementServiceTestSuite) TestUpdateStatus_Approve() {
	record := domain.CommissionRecord{
		ID:               5,
		InviterID:        7,
		CommissionAmount: decimal.NewFromInt(10),
		Status:           domain.CommissionStatusPending,
	}

	s.expectTx()
	s.mockCommRepo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID).
		Return(&record, nil)
	s.mockCommRepo.EXPECT().
		UpdateStatus(gomock.Any(), record.ID, domain.CommissionStatusApproved, "ok", nil).
		DoAndReturn(func(_ context.Context, id int64, status domain.CommissionStatusType, notes string, _ *time.Time) (*domain.CommissionRecord, error) {
			updated := record
			updated.Status = status
			updated.ReviewNotes = notes
			return &updated, nil
		})

	updated, err := s.service.UpdateStatus(s.T().Context(), record.ID, domain.CommissionStatusApproved, "ok", 1)
	s.Require().NoError(err)
	s.Equal(domain.CommissionStatusApproved, updated.Status)
}

func (s *SettlementServiceTestSuite) TestUpdateStatus_RejectRevertsBalance() {
	record := domain.CommissionRecord{
		ID:               6,
		InviterID:        7,
		CommissionAmount: decimal.NewFromInt(10),
		Status:           domain.CommissionStatusPending,
	}

	s.expectTx()
	s.mockCommRepo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID).
		Return(&record, nil)
	s.mockProfileRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), record.InviterID).
		Return(&domain.AffiliateProfile{
			UserID:            record.InviterID,
			CommissionBalance: decimal.NewFromInt(30),
		}, nil)
	s.mockPayoutRepo.EXPECT().SumReserved(gomock.Any(), record.InviterID).
		Return(decimal.NewFromInt(15), nil)
	s.mockProfileRepo.EXPECT().
		SubtractCommission(gomock.Any(), record.InviterID, record.CommissionAmount).
		Return(nil)
	s.mockCommRepo.EXPECT().
		UpdateStatus(gomock.Any(), record.ID, domain.CommissionStatusRejected, "fraud", nil).
		Return(&domain.CommissionRecord{ID: record.ID, Status: domain.CommissionStatusRejected}, nil)

	updated, err := s.service.UpdateStatus(s.T().Context(), record.ID, domain.CommissionStatusRejected, "fraud", 1)
	s.Require().NoError(err)
	s.Equal(domain.CommissionStatusRejected, updated.Status)
}

func (s *SettlementServiceTestSuite) TestUpdateStatus_RejectWithReservedBalance() {
	// Баланс 30, заявками на выплату зарезервировано 25. Откат комиссии на 10
	// оставил бы 20 < 25, хотя сам баланс остается положительным - отклонение
	// должно упасть до списания.
	record := domain.CommissionRecord{
		ID:               7,
		InviterID:        7,
		CommissionAmount: decimal.NewFromInt(10),
		Status:           domain.CommissionStatusPending,
	}

	s.expectTx()
	s.mockCommRepo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID).
		Return(&record, nil)
	s.mockProfileRepo.EXPECT().FindByUserIDForUpdate(gomock.Any(), record.InviterID).
		Return(&domain.AffiliateProfile{
			UserID:            record.InviterID,
			CommissionBalance: decimal.NewFromInt(30),
		}, nil)
	s.mockPayoutRepo.EXPECT().SumReserved(gomock.Any(), record.InviterID).
		Return(decimal.NewFromInt(25), nil)
	s.mockProfileRepo.EXPECT().
		SubtractCommission(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)
	s.mockCommRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	_, err := s.service.UpdateStatus(s.T().Context(), record.ID, domain.CommissionStatusRejected, "", 1)
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *SettlementServiceTestSuite) TestUpdateStatus_PaidSetsSettledAt() {
	record := domain.CommissionRecord{
		ID:        8,
		InviterID: 7,
		Status:    domain.CommissionStatusApproved,
	}

	s.expectTx()
	s.mockCommRepo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID).
		Return(&record, nil)
	s.mockCommRepo.EXPECT().
		UpdateStatus(gomock.Any(), record.ID, domain.CommissionStatusPaid, "", gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, id int64, status domain.CommissionStatusType, notes string, settledAt *time.Time) (*domain.CommissionRecord, error) {
			s.Require().NotNil(settledAt)
			return &domain.CommissionRecord{ID: id, Status: status, SettledAt: settledAt}, nil
		})

	updated, err := s.service.UpdateStatus(s.T().Context(), record.ID, domain.CommissionStatusPaid, "", 1)
	s.Require().NoError(err)
	s.NotNil(updated.SettledAt)
}

func (s *SettlementServiceTestSuite) TestUpdateStatus_InvalidTransition() {
	record := domain.CommissionRecord{
		ID:     9,
		Status: domain.CommissionStatusRejected,
	}

	s.expectTx()
	s.mockCommRepo.EXPECT().FindByIDForUpdate(gomock.Any(), record.ID).
		Return(&record, nil)

	_, err := s.service.UpdateStatus(s.T().Context(), record.ID, domain.CommissionStatusApproved, "", 1)
	s.Require().ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *SettlementServiceTestSuite) TestUserCommissions_ScopedToInviter() {
	var inviterID int64 = 7

	s.mockCommRepo.EXPECT().Filter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repoargs.CommissionFilter) ([]domain.CommissionRecord, error) {
			// Фильтр всегда ограничен текущим юзером, даже если пришел чужой ID.
			s.Equal(inviterID, filter.InviterID)
			s.Equal(defaultPageLimit, filter.Limit)
			return []domain.CommissionRecord{{ID: 1, InviterID: inviterID}}, nil
		})

	records, err := s.service.UserCommissions(s.T().Context(), inviterID, repoargs.CommissionFilter{InviterID: 999})
	s.Require().NoError(err)
	s.Len(records, 1)
}
