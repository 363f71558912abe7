package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/service"
	"github.com/fsdevblog/groph-affiliate/internal/transport/billing/client"
	"github.com/fsdevblog/groph-affiliate/internal/transport/billing/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, "", logger)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoEvents Тест на случай, когда оплаченных заказов нет.
func (s *ProcessorTestSuite) TestProcess_NoEvents() {
	s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		Return([]client.PaidEvent{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoEvents)
}

// TestProcess_Success Тест на успешный расчет и подтверждение пачки заказов.
func (s *ProcessorTestSuite) TestProcess_Success() {
	events := []client.PaidEvent{
		{OrderID: "ORD-001", InviteeID: 100, OrderAmount: decimal.NewFromInt(100)},
		{OrderID: "ORD-002", InviteeID: 101, OrderAmount: decimal.NewFromInt(200)},
	}

	s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		Return(events, nil)

	// Первый заказ дает комиссию, второй - штатный no-op (нет привязки).
	s.mockService.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event service.PaidEvent) (*domain.CommissionRecord, error) {
			switch event.OrderID {
			case "ORD-001":
				return &domain.CommissionRecord{ID: 1, OrderID: event.OrderID}, nil
			case "ORD-002":
				return nil, nil
			default:
				return nil, errors.New("unexpected order")
			}
		}).Times(2)

	// Оба заказа подтверждаются: no-op тоже считается обработанным.
	s.mockHTTPClient.EXPECT().
		AckPaidEvents(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, orderIDs []string) {
			s.Require().Len(orderIDs, 2)
			s.ElementsMatch([]string{"ORD-001", "ORD-002"}, orderIDs)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_FailedSettleNotAcked Тест на то, что заказ с ошибкой расчета не подтверждается
// и будет выдан биллингом повторно.
func (s *ProcessorTestSuite) TestProcess_FailedSettleNotAcked() {
	events := []client.PaidEvent{
		{OrderID: "ORD-001", InviteeID: 100, OrderAmount: decimal.NewFromInt(100)},
		{OrderID: "ORD-002", InviteeID: 101, OrderAmount: decimal.NewFromInt(200)},
	}

	s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		Return(events, nil)

	s.mockService.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event service.PaidEvent) (*domain.CommissionRecord, error) {
			if event.OrderID == "ORD-002" {
				return nil, domain.ErrUnknown
			}
			return &domain.CommissionRecord{ID: 1, OrderID: event.OrderID}, nil
		}).Times(2)

	s.mockHTTPClient.EXPECT().
		AckPaidEvents(gomock.Any(), []string{"ORD-001"}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_AllFailed Тест на случай когда все расчеты упали: подтверждать нечего.
func (s *ProcessorTestSuite) TestProcess_AllFailed() {
	events := []client.PaidEvent{
		{OrderID: "ORD-001", InviteeID: 100, OrderAmount: decimal.NewFromInt(100)},
	}

	s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		Return(events, nil)
	s.mockService.EXPECT().
		Settle(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnknown)
	// AckPaidEvents вызываться не должен.
	s.mockHTTPClient.EXPECT().
		AckPaidEvents(gomock.Any(), gomock.Any()).
		Times(0)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProduce_RetryAfterTooManyRequests Тест на повторный запрос после 429 с паузой из заголовка.
func (s *ProcessorTestSuite) TestProduce_RetryAfterTooManyRequests() {
	events := []client.PaidEvent{
		{OrderID: "ORD-001", InviteeID: 100, OrderAmount: decimal.NewFromInt(100)},
	}

	first := s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, client.NewTooManyRequestError(10*time.Millisecond))
	s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		After(first).
		Return(events, nil)

	got, err := s.processor.produce(s.T().Context())
	s.Require().NoError(err)
	s.Len(got, 1)
}

// TestProduce_FetchError Тест на то, что прочие ошибки биллинга не ретраятся внутри produce.
func (s *ProcessorTestSuite) TestProduce_FetchError() {
	s.mockHTTPClient.EXPECT().
		FetchPaidEvents(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, client.NewStatusCodeError(500))

	_, err := s.processor.produce(s.T().Context())

	var statusErr *client.StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(500, statusErr.Code)
}
