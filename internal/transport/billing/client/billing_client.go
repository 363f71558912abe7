package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

const (
	RoutePaidEvents    = "/api/internal/paid-events?limit=%d"
	RoutePaidEventsAck = "/api/internal/paid-events/ack"
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// PaidEvent оплаченный заказ из биллинга, еще не прошедший расчет комиссии.
type PaidEvent struct {
	OrderID       string           `json:"order_id"`
	InviteeID     int64            `json:"user_id"`
	OrderAmount   decimal.Decimal  `json:"order_amount"`
	RedeemedValue *decimal.Decimal `json:"redeemed_value,omitempty"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к биллингу.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// FetchPaidEvents получает пачку оплаченных заказов, ожидающих расчета комиссии.
// При ответе сервера со статусом отличным от http.StatusOK, возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) FetchPaidEvents(ctx context.Context, limit uint) (events []PaidEvent, err error) {
	// Формируем URL запроса.
	url := c.baseURL + fmt.Sprintf(RoutePaidEvents, limit)

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	if jsonErr := json.Unmarshal(body, &events); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	return events, nil
}

type ackRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// AckPaidEvents подтверждает биллингу обработку заказов. Повторная доставка
// уже подтвержденного заказа безопасна: леджер идемпотентен по order_id.
//
//nolint:nonamedreturns
func (c HTTPClient) AckPaidEvents(ctx context.Context, orderIDs []string) (err error) {
	payload, marshalErr := json.Marshal(ackRequest{OrderIDs: orderIDs})
	if marshalErr != nil {
		return fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	url := c.baseURL + RoutePaidEventsAck
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode != http.StatusOK {
		return NewStatusCodeError(resp.StatusCode)
	}
	return nil
}

func parseRetryAfter(retryAfterStr string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(retryAfterStr)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}

	return time.Duration(retryAfter.IntPart()) * time.Second
}
