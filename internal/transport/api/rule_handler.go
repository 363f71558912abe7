package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/service"
)

type RuleHandler struct {
	svs RuleServicer
}

func NewRuleHandler(svs RuleServicer) *RuleHandler {
	return &RuleHandler{
		svs: svs,
	}
}

type RuleResponse struct {
	Enabled     bool      `json:"enabled"`
	FirstRate   string    `json:"first_rate"`
	RenewalRate string    `json:"renewal_rate"`
	UpdatedBy   int64     `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Show GET AdminRouteGroup + AdminRuleRoute.
func (h *RuleHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rule, err := h.svs.Get(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &RuleResponse{
		Enabled:     rule.Enabled,
		FirstRate:   rule.FirstRate.String(),
		RenewalRate: rule.RenewalRate.String(),
		UpdatedBy:   rule.UpdatedBy,
		UpdatedAt:   rule.CreatedAt,
	})
}

type RuleUpdateParams struct {
	Enabled     bool            `json:"enabled"`
	FirstRate   decimal.Decimal `json:"first_rate"`
	RenewalRate decimal.Decimal `json:"renewal_rate"`
}

// Update PUT AdminRouteGroup + AdminRuleRoute. Полностью заменяет правила начисления.
func (h *RuleHandler) Update(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params RuleUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rule, err := h.svs.Update(ctx, service.UpdateRuleArgs{
		Enabled:     params.Enabled,
		FirstRate:   params.FirstRate,
		RenewalRate: params.RenewalRate,
	}, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &RuleResponse{
		Enabled:     rule.Enabled,
		FirstRate:   rule.FirstRate.String(),
		RenewalRate: rule.RenewalRate.String(),
		UpdatedBy:   rule.UpdatedBy,
		UpdatedAt:   rule.CreatedAt,
	})
}
