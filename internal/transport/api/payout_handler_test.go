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

type PayoutHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPayoutService *mocks.MockPayoutServicer
	jwtSecret         []byte
}

func TestPayoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlerTestSuite))
}

func (s *PayoutHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockPayoutService = mocks.NewMockPayoutServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		PayoutService: s.mockPayoutService,
		JWTSecretKey:  s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *PayoutHandlerTestSuite) TestApply() {
	var currentUserID int64 = 1

	currentUserJWTToken, jwtErr := tokens.GenerateUserJWT(currentUserID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	// Моки
	// Успешная заявка.
	s.mockPayoutService.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ApplyPayoutArgs) (*domain.PayoutRequest, error) {
			s.Equal(currentUserID, args.UserID)
			s.True(decimal.RequireFromString("50").Equal(args.Amount))
			return &domain.PayoutRequest{
				ID:     1,
				UserID: args.UserID,
				Amount: args.Amount,
				Method: args.Method,
				Status: domain.PayoutStatusPending,
			}, nil
		}).Times(1)
	// Нехватка доступного остатка.
	s.mockPayoutService.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ApplyPayoutArgs) (*domain.PayoutRequest, error) {
			s.True(decimal.RequireFromString("9000").Equal(args.Amount))
			return nil, domain.ErrNotEnoughBalance
		}).Times(1)
	// Реквизиты не указаны и настроек нет.
	s.mockPayoutService.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ApplyPayoutArgs) (*domain.PayoutRequest, error) {
			s.Empty(args.Account)
			return nil, fmt.Errorf("%w: payout destination is not set", domain.ErrValidation)
		}).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"amount": 50, "method": "alipay", "account": "user@example.com"}`),
			jwtToken:   currentUserJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "not enough balance",
			payload:    []byte(`{"amount": 9000, "method": "alipay", "account": "user@example.com"}`),
			jwtToken:   currentUserJWTToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "no destination",
			payload:    []byte(`{"amount": 10}`),
			jwtToken:   currentUserJWTToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "unsupported method",
			payload:    []byte(`{"amount": 10, "method": "paypal", "account": "acc"}`),
			jwtToken:   currentUserJWTToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			payload:    []byte(`{"amount": 10}`),
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PayoutsRoute,
				Body:   bytes.NewReader(t.payload),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json; charset=utf-8"))
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PayoutHandlerTestSuite) TestIndex() {
	var userID int64 = 1
	var emptyUserID int64 = 2

	userJWTToken, uJWTErr := tokens.GenerateUserJWT(userID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(uJWTErr)
	emptyUserJWTToken, eJWTErr := tokens.GenerateUserJWT(emptyUserID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(eJWTErr)

	requests := []domain.PayoutRequest{
		{
			ID:        1,
			UserID:    userID,
			Amount:    decimal.NewFromInt(50),
			Method:    domain.PayoutMethodAlipay,
			Account:   "user@example.com",
			Status:    domain.PayoutStatusPending,
			CreatedAt: time.Now(),
		},
	}

	s.mockPayoutService.EXPECT().
		UserPayoutRequests(gomock.Any(), userID, gomock.Any()).
		Return(requests, nil)
	s.mockPayoutService.EXPECT().
		UserPayoutRequests(gomock.Any(), emptyUserID, gomock.Any()).
		Return([]domain.PayoutRequest{}, nil)

	cases := []struct {
		name       string
		url        string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			url:        RouteGroup + PayoutsRoute,
			jwtToken:   userJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "no requests",
			url:        RouteGroup + PayoutsRoute,
			jwtToken:   emptyUserJWTToken,
			wantStatus: http.StatusNoContent,
		}, {
			name:       "unknown status filter",
			url:        RouteGroup + PayoutsRoute + "?status=frozen",
			jwtToken:   userJWTToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "not authorized",
			url:        RouteGroup + PayoutsRoute,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
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
		})
	}
}

func (s *PayoutHandlerTestSuite) TestReview() {
	var adminID int64 = 1
	var userID int64 = 2

	adminJWTToken, aJWTErr := tokens.GenerateUserJWT(adminID, tokens.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(aJWTErr)
	userJWTToken, uJWTErr := tokens.GenerateUserJWT(userID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(uJWTErr)

	now := time.Now()

	// Моки
	s.mockPayoutService.EXPECT().
		Review(gomock.Any(), service.ReviewPayoutArgs{
			RequestID:  5,
			Status:     domain.PayoutStatusPaid,
			ReviewerID: adminID,
		}).
		Return(&domain.PayoutRequest{ID: 5, Status: domain.PayoutStatusPaid, PaidAt: &now}, nil).Times(1)
	s.mockPayoutService.EXPECT().
		Review(gomock.Any(), service.ReviewPayoutArgs{
			RequestID:  6,
			Status:     domain.PayoutStatusApproved,
			ReviewerID: adminID,
		}).
		Return(nil, domain.NewInvalidTransitionError("paid", "approved")).Times(1)
	s.mockPayoutService.EXPECT().
		Review(gomock.Any(), service.ReviewPayoutArgs{
			RequestID:  404,
			Status:     domain.PayoutStatusApproved,
			ReviewerID: adminID,
		}).
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name       string
		id         string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "mark paid",
			id:         "5",
			payload:    []byte(`{"status": "paid"}`),
			jwtToken:   adminJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "invalid transition",
			id:         "6",
			payload:    []byte(`{"status": "approved"}`),
			jwtToken:   adminJWTToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "request not found",
			id:         "404",
			payload:    []byte(`{"status": "approved"}`),
			jwtToken:   adminJWTToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "forbidden for regular user",
			id:         "5",
			payload:    []byte(`{"status": "paid"}`),
			jwtToken:   userJWTToken,
			wantStatus: http.StatusForbidden,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    AdminRouteGroup + AdminPayoutsRoute + "/" + t.id,
				Body:   bytes.NewReader(t.payload),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)),
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

func (s *PayoutHandlerTestSuite) TestShowSetting() {
	var userID int64 = 1
	var noSettingUserID int64 = 2

	userJWTToken, uJWTErr := tokens.GenerateUserJWT(userID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(uJWTErr)
	noSettingJWTToken, nJWTErr := tokens.GenerateUserJWT(noSettingUserID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(nJWTErr)

	s.mockPayoutService.EXPECT().
		GetSetting(gomock.Any(), userID).
		Return(&domain.PayoutSetting{
			UserID:  userID,
			Method:  domain.PayoutMethodUSDT,
			Account: "0xDEADBEEF",
			Network: "TRC20",
		}, nil)
	s.mockPayoutService.EXPECT().
		GetSetting(gomock.Any(), noSettingUserID).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   userJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "no setting",
			jwtToken:   noSettingJWTToken,
			wantStatus: http.StatusNoContent,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + PayoutSettingRoute,
			}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response PayoutSettingResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Equal("usdt", response.Method)
				s.Equal("0xDEADBEEF", response.Account)
			}
		})
	}
}

func (s *PayoutHandlerTestSuite) TestUpsertSetting() {
	var currentUserID int64 = 1

	currentUserJWTToken, jwtErr := tokens.GenerateUserJWT(currentUserID, "", time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	s.mockPayoutService.EXPECT().
		UpsertSetting(gomock.Any(), service.UpsertSettingArgs{
			UserID:  currentUserID,
			Method:  domain.PayoutMethodAlipay,
			Account: "user@example.com",
		}).
		Return(&domain.PayoutSetting{
			UserID:  currentUserID,
			Method:  domain.PayoutMethodAlipay,
			Account: "user@example.com",
		}, nil).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"method": "alipay", "account": "user@example.com"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "missing account",
			payload:    []byte(`{"method": "alipay"}`),
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "unsupported method",
			payload:    []byte(`{"method": "paypal", "account": "acc"}`),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    RouteGroup + PayoutSettingRoute,
				Body:   bytes.NewReader(t.payload),
			}
			res, err := testutils.MakeRequest(args,
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", currentUserJWTToken)),
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
