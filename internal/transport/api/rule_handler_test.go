package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/logger"
	"github.com/fsdevblog/groph-affiliate/internal/service"
	"github.com/fsdevblog/groph-affiliate/internal/service/tokens"
	"github.com/fsdevblog/groph-affiliate/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-affiliate/internal/transport/api/testutils"
)

type RuleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockRuleService *mocks.MockRuleServicer
	jwtSecret       []byte
}

func TestRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}

func (s *RuleHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockRuleService = mocks.NewMockRuleServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		RuleService:  s.mockRuleService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *RuleHandlerTestSuite) TestShow() {
	var adminID int64 = 1
	var userID int64 = 2

	adminJWTToken, aJWTErr := tokens.GenerateUserJWT(adminID, tokens.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(aJWTErr)
	userJWTToken, uJWTErr := tokens.GenerateUserJWT(userID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(uJWTErr)

	s.mockRuleService.EXPECT().
		Get(gomock.Any()).
		Return(&domain.CommissionRule{
			ID:          3,
			Enabled:     true,
			FirstRate:   decimal.RequireFromString("0.1"),
			RenewalRate: decimal.RequireFromString("0.05"),
			UpdatedBy:   adminID,
		}, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   adminJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "forbidden for regular user",
			jwtToken:   userJWTToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "not authorized",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    AdminRouteGroup + AdminRuleRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response RuleResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.True(response.Enabled)
				s.Equal("0.1", response.FirstRate)
				s.Equal("0.05", response.RenewalRate)
			}
		})
	}
}

func (s *RuleHandlerTestSuite) TestUpdate() {
	var adminID int64 = 1

	adminJWTToken, aJWTErr := tokens.GenerateUserJWT(adminID, tokens.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(aJWTErr)

	// Моки
	s.mockRuleService.EXPECT().
		Update(gomock.Any(), gomock.Any(), adminID).
		DoAndReturn(func(_ context.Context, args service.UpdateRuleArgs, operatorID int64) (*domain.CommissionRule, error) {
			s.True(args.Enabled)
			s.True(decimal.RequireFromString("0.15").Equal(args.FirstRate))
			return &domain.CommissionRule{
				ID:          4,
				Enabled:     args.Enabled,
				FirstRate:   args.FirstRate,
				RenewalRate: args.RenewalRate,
				UpdatedBy:   operatorID,
			}, nil
		}).Times(1)
	s.mockRuleService.EXPECT().
		Update(gomock.Any(), gomock.Any(), adminID).
		Return(nil, fmt.Errorf("%w: rate must be within [0, 1]", domain.ErrValidation)).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"enabled": true, "first_rate": 0.15, "renewal_rate": 0.05}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "rate out of range",
			payload:    []byte(`{"enabled": true, "first_rate": 1.5, "renewal_rate": 0.05}`),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "malformed body",
			payload:    []byte(`{"enabled":`),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    AdminRouteGroup + AdminRuleRoute,
				Body:   bytes.NewReader(t.payload),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", adminJWTToken)),
				testutils.WithHeader("Content-Type", "application/json; charset=utf-8"),
			)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
