package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/internal/service"
)

type PayoutHandler struct {
	svs PayoutServicer
}

func NewPayoutHandler(svs PayoutServicer) *PayoutHandler {
	return &PayoutHandler{
		svs: svs,
	}
}

type PayoutResponse struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Amount      float64    `json:"amount"`
	Method      string     `json:"method"`
	Account     string     `json:"account"`
	AccountName string     `json:"account_name,omitempty"`
	Network     string     `json:"network,omitempty"`
	Status      string     `json:"status"`
	ReviewNotes string     `json:"review_notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func newPayoutResponse(request domain.PayoutRequest) PayoutResponse {
	return PayoutResponse{
		ID:          request.ID,
		UserID:      request.UserID,
		Amount:      request.Amount.InexactFloat64(),
		Method:      string(request.Method),
		Account:     request.Account,
		AccountName: request.AccountName,
		Network:     request.Network,
		Status:      string(request.Status),
		ReviewNotes: request.ReviewNotes,
		CreatedAt:   request.CreatedAt,
		ReviewedAt:  request.ReviewedAt,
		PaidAt:      request.PaidAt,
	}
}

func payoutFilterFromQuery(c *gin.Context) (repoargs.PayoutFilter, error) {
	var filter repoargs.PayoutFilter

	if raw := c.Query("status"); raw != "" {
		status := domain.PayoutStatusType(raw)
		switch status {
		case domain.PayoutStatusPending, domain.PayoutStatusApproved,
			domain.PayoutStatusRejected, domain.PayoutStatusPaid:
			filter.Status = status
		default:
			return filter, errors.New("unknown status")
		}
	}
	filter.From = parseTimeQuery(c, "from")
	filter.To = parseTimeQuery(c, "to")
	filter.Limit = parseUintQuery(c, "limit")
	filter.Offset = paginationOffset(parseUintQuery(c, "page"), filter.Limit)
	return filter, nil
}

// Index GET RouteGroup + PayoutsRoute. Заявки текущего юзера.
func (h *PayoutHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	filter, filterErr := payoutFilterFromQuery(c)
	if filterErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, filterErr).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.svs.UserPayoutRequests(ctx, currentUserID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(requests) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]PayoutResponse, len(requests))
	for i, request := range requests {
		response[i] = newPayoutResponse(request)
	}
	c.JSON(http.StatusOK, response)
}

type ApplyPayoutParams struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `binding:"omitempty,oneof=alipay usdt" json:"method"`
	Account     string          `binding:"omitempty,max_bytes=128"     json:"account"`
	AccountName string          `binding:"omitempty,max_bytes=128"     json:"account_name"`
	Network     string          `binding:"omitempty,max_bytes=32"      json:"network"`
	Notes       string          `binding:"omitempty,max_bytes=500"     json:"notes"`
}

// Apply POST RouteGroup + PayoutsRoute. Создает заявку на выплату; при нехватке
// доступного остатка вернется 402.
func (h *PayoutHandler) Apply(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ApplyPayoutParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.svs.Apply(ctx, service.ApplyPayoutArgs{
		UserID:      currentUserID,
		Amount:      params.Amount,
		Method:      domain.PayoutMethodType(params.Method),
		Account:     params.Account,
		AccountName: params.AccountName,
		Network:     params.Network,
		Notes:       params.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrValidation):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newPayoutResponse(*request))
}

// AdminIndex GET AdminRouteGroup + AdminPayoutsRoute.
func (h *PayoutHandler) AdminIndex(c *gin.Context) {
	filter, filterErr := payoutFilterFromQuery(c)
	if filterErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, filterErr).SetType(gin.ErrorTypePublic)
		return
	}
	filter.UserID = parseInt64Query(c, "user_id")

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.svs.AdminPayoutRequests(ctx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(requests) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]PayoutResponse, len(requests))
	for i, request := range requests {
		response[i] = newPayoutResponse(request)
	}
	c.JSON(http.StatusOK, response)
}

type PayoutReviewParams struct {
	Status      string `binding:"required,oneof=approved rejected paid" json:"status"`
	ReviewNotes string `binding:"omitempty,max_bytes=500"               json:"review_notes"`
}

// Review PATCH AdminRouteGroup + AdminPayoutsRoute + /:id. Смена статуса заявки
// оператором; перевод в paid списывает сумму с баланса.
func (h *PayoutHandler) Review(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	requestID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusNotFound, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	var params PayoutReviewParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.svs.Review(ctx, service.ReviewPayoutArgs{
		RequestID:   requestID,
		Status:      domain.PayoutStatusType(params.Status),
		ReviewNotes: params.ReviewNotes,
		ReviewerID:  currentUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidTransition):
			_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newPayoutResponse(*request))
}

// ShowSetting GET RouteGroup + PayoutSettingRoute.
func (h *PayoutHandler) ShowSetting(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	setting, err := h.svs.GetSetting(ctx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &PayoutSettingResponse{
		Method:      string(setting.Method),
		Account:     setting.Account,
		AccountName: setting.AccountName,
		Network:     setting.Network,
	})
}

type UpsertSettingParams struct {
	Method      string `binding:"required,oneof=alipay usdt" json:"method"`
	Account     string `binding:"required,max_bytes=128"     json:"account"`
	AccountName string `binding:"omitempty,max_bytes=128"    json:"account_name"`
	Network     string `binding:"omitempty,max_bytes=32"     json:"network"`
}

// UpsertSetting PUT RouteGroup + PayoutSettingRoute. Полностью заменяет реквизиты выплат.
func (h *PayoutHandler) UpsertSetting(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params UpsertSettingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	setting, err := h.svs.UpsertSetting(ctx, service.UpsertSettingArgs{
		UserID:      currentUserID,
		Method:      domain.PayoutMethodType(params.Method),
		Account:     params.Account,
		AccountName: params.AccountName,
		Network:     params.Network,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &PayoutSettingResponse{
		Method:      string(setting.Method),
		Account:     setting.Account,
		AccountName: setting.AccountName,
		Network:     setting.Network,
	})
}
