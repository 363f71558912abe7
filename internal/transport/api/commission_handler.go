package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
)

type CommissionHandler struct {
	svs CommissionServicer
}

func NewCommissionHandler(svs CommissionServicer) *CommissionHandler {
	return &CommissionHandler{
		svs: svs,
	}
}

type CommissionResponse struct {
	ID               int64      `json:"id"`
	InviterID        int64      `json:"inviter_id"`
	InviteeID        int64      `json:"invitee_id"`
	OrderID          string     `json:"order_id"`
	OrderAmount      float64    `json:"order_amount"`
	CommissionAmount float64    `json:"commission_amount"`
	CommissionRate   string     `json:"commission_rate"`
	EventType        string     `json:"event_type"`
	Status           string     `json:"status"`
	ReviewNotes      string     `json:"review_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	SettledAt        *time.Time `json:"settled_at,omitempty"`
}

func newCommissionResponse(record domain.CommissionRecord) CommissionResponse {
	return CommissionResponse{
		ID:               record.ID,
		InviterID:        record.InviterID,
		InviteeID:        record.InviteeID,
		OrderID:          record.OrderID,
		OrderAmount:      record.OrderAmount.InexactFloat64(),
		CommissionAmount: record.CommissionAmount.InexactFloat64(),
		CommissionRate:   record.CommissionRate.String(),
		EventType:        string(record.EventType),
		Status:           string(record.Status),
		ReviewNotes:      record.ReviewNotes,
		CreatedAt:        record.CreatedAt,
		SettledAt:        record.SettledAt,
	}
}

// commissionFilterFromQuery собирает фильтр из query параметров. Некорректные
// значения трактуются как отсутствие фильтра, кроме event_type и status -
// там неизвестное значение это ошибка клиента.
func commissionFilterFromQuery(c *gin.Context) (repoargs.CommissionFilter, error) {
	var filter repoargs.CommissionFilter

	if raw := c.Query("event_type"); raw != "" {
		eventType := domain.CommissionEventType(raw)
		if !eventType.Valid() {
			return filter, errors.New("unknown event_type")
		}
		filter.EventType = eventType
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.CommissionStatusType(raw)
		switch status {
		case domain.CommissionStatusPending, domain.CommissionStatusApproved,
			domain.CommissionStatusRejected, domain.CommissionStatusPaid:
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

// Index GET RouteGroup + CommissionsRoute. Записи комиссий текущего юзера.
func (h *CommissionHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	filter, filterErr := commissionFilterFromQuery(c)
	if filterErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, filterErr).SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	records, err := h.svs.UserCommissions(ctx, currentUserID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(records) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]CommissionResponse, len(records))
	for i, record := range records {
		response[i] = newCommissionResponse(record)
	}
	c.JSON(http.StatusOK, response)
}

// AdminIndex GET AdminRouteGroup + AdminCommissionsRoute. Выборка по любому юзеру.
func (h *CommissionHandler) AdminIndex(c *gin.Context) {
	filter, filterErr := commissionFilterFromQuery(c)
	if filterErr != nil {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, filterErr).SetType(gin.ErrorTypePublic)
		return
	}
	filter.InviterID = parseInt64Query(c, "user_id")

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	records, err := h.svs.AdminCommissions(ctx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(records) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]CommissionResponse, len(records))
	for i, record := range records {
		response[i] = newCommissionResponse(record)
	}
	c.JSON(http.StatusOK, response)
}

type CommissionReviewParams struct {
	Status      string `binding:"required,oneof=approved rejected paid" json:"status"`
	ReviewNotes string `binding:"omitempty,max_bytes=500"               json:"review_notes"`
}

// Review PATCH AdminRouteGroup + AdminCommissionsRoute + /:id. Смена статуса записи
// комиссии оператором.
func (h *CommissionHandler) Review(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	commissionID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusNotFound, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	var params CommissionReviewParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	record, err := h.svs.UpdateStatus(
		ctx,
		commissionID,
		domain.CommissionStatusType(params.Status),
		params.ReviewNotes,
		currentUserID,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidTransition):
			_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			_ = c.AbortWithError(http.StatusConflict, errors.New("balance is reserved by payout requests")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newCommissionResponse(*record))
}
