package service

import (
	"context"
	"io"
	"testing"

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

type RuleServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockRuleRepo *mocks.MockCommissionRuleRepository
	service      *RuleService
}

func TestRuleServiceSuite(t *testing.T) {
	suite.Run(t, new(RuleServiceTestSuite))
}

func (s *RuleServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockRuleRepo = mocks.NewMockCommissionRuleRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RuleRepoName)).
		Return(s.mockRuleRepo, nil).AnyTimes()

	service, servErr := NewRuleService(s.mockUOW, audit.New(logger.New(io.Discard)))
	s.Require().NoError(servErr)
	s.service = service
}

func (s *RuleServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RuleServiceTestSuite) TestGet() {
	stored := domain.CommissionRule{
		ID:          3,
		Enabled:     true,
		FirstRate:   decimal.RequireFromString("0.1"),
		RenewalRate: decimal.RequireFromString("0.05"),
	}

	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).Return(&stored, nil)

	rule, err := s.service.Get(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(3), rule.ID)
	s.True(rule.Enabled)
}

func (s *RuleServiceTestSuite) TestGet_DefaultWhenUnset() {
	// Пока правил нет, движок выключен и ставки нулевые.
	s.mockRuleRepo.EXPECT().GetLatest(gomock.Any()).Return(nil, domain.ErrRecordNotFound)

	rule, err := s.service.Get(s.T().Context())
	s.Require().NoError(err)
	s.False(rule.Enabled)
	s.True(rule.FirstRate.IsZero())
	s.True(rule.RenewalRate.IsZero())
}

func (s *RuleServiceTestSuite) TestUpdate() {
	args := UpdateRuleArgs{
		Enabled:     true,
		FirstRate:   decimal.RequireFromString("0.15"),
		RenewalRate: decimal.RequireFromString("0.05"),
	}

	s.mockRuleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, create repoargs.RuleCreate) (*domain.CommissionRule, error) {
			s.True(create.Enabled)
			s.True(args.FirstRate.Equal(create.FirstRate))
			s.Equal(int64(1), create.UpdatedBy)
			return &domain.CommissionRule{
				ID:          4,
				Enabled:     create.Enabled,
				FirstRate:   create.FirstRate,
				RenewalRate: create.RenewalRate,
				UpdatedBy:   create.UpdatedBy,
			}, nil
		})

	rule, err := s.service.Update(s.T().Context(), args, 1)
	s.Require().NoError(err)
	s.Equal(int64(4), rule.ID)
}

func (s *RuleServiceTestSuite) TestUpdate_RateOutOfRange() {
	testCases := []struct {
		name string
		args UpdateRuleArgs
	}{
		{
			name: "first rate above one",
			args: UpdateRuleArgs{FirstRate: decimal.RequireFromString("1.01"), RenewalRate: decimal.Zero},
		},
		{
			name: "negative renewal rate",
			args: UpdateRuleArgs{FirstRate: decimal.Zero, RenewalRate: decimal.RequireFromString("-0.05")},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.Update(s.T().Context(), tc.args, 1)
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}
}
