package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
)

type ReferralHandler struct {
	svs ReferralServicer
}

func NewReferralHandler(svs ReferralServicer) *ReferralHandler {
	return &ReferralHandler{
		svs: svs,
	}
}

type EnsureCodeParams struct {
	Force bool `json:"force"`
}

type ProfileResponse struct {
	ReferralCode string `json:"referral_code"`
	InviteCount  int64  `json:"invite_count"`
}

// EnsureCode POST RouteGroup + ReferralCodeRoute. Выдает реферальный код юзера,
// генерируя его при первом обращении. `force: true` принудительно заменяет код.
func (h *ReferralHandler) EnsureCode(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params EnsureCodeParams
	// тело опционально: без тела выполняется обычный ensure.
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.svs.EnsureCode(ctx, currentUserID, params.Force)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &ProfileResponse{
		ReferralCode: profile.ReferralCode,
		InviteCount:  profile.InviteCount,
	})
}

type BindParams struct {
	Code string `binding:"required,min=1,max_bytes=32" json:"code"`
}

type BindingResponse struct {
	InviterID int64     `json:"inviter_id"`
	CodeUsed  string    `json:"code_used"`
	CreatedAt time.Time `json:"created_at"`
}

// Bind POST RouteGroup + ReferralBindRoute. Привязывает текущего юзера к владельцу кода.
// Привязка одноразовая и не перезаписывается.
func (h *ReferralHandler) Bind(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params BindParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	binding, err := h.svs.Bind(ctx, currentUserID, params.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReferral):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("referral code is invalid")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrSelfReferral):
			_ = c.AbortWithError(http.StatusConflict, errors.New("self referral is not allowed")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrAlreadyBound):
			_ = c.AbortWithError(http.StatusConflict, errors.New("inviter is already set")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &BindingResponse{
		InviterID: binding.InviterID,
		CodeUsed:  binding.CodeUsed,
		CreatedAt: binding.CreatedAt,
	})
}

type DashboardStatsResponse struct {
	InviteCount            int64   `json:"invite_count"`
	CommissionBalance      float64 `json:"commission_balance"`
	TotalCommissionEarned  float64 `json:"total_commission_earned"`
	PendingAmount          float64 `json:"pending_amount"`
	ApprovedAmount         float64 `json:"approved_amount"`
	PayoutProcessingAmount float64 `json:"payout_processing_amount"`
	PayoutPaidAmount       float64 `json:"payout_paid_amount"`
}

type DashboardInviteResponse struct {
	InviteeID int64     `json:"invitee_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PayoutSettingResponse struct {
	Method      string `json:"method"`
	Account     string `json:"account"`
	AccountName string `json:"account_name,omitempty"`
	Network     string `json:"network,omitempty"`
}

type DashboardResponse struct {
	ReferralCode  string                    `json:"referral_code"`
	Stats         DashboardStatsResponse    `json:"stats"`
	Invites       []DashboardInviteResponse `json:"invites"`
	Inviter       *BindingResponse          `json:"inviter,omitempty"`
	PayoutSetting *PayoutSettingResponse    `json:"payout_setting,omitempty"`
}

// Dashboard GET RouteGroup + ReferralDashboardRoute.
func (h *ReferralHandler) Dashboard(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dashboard, err := h.svs.GetDashboard(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := DashboardResponse{
		ReferralCode: dashboard.ReferralCode,
		Stats: DashboardStatsResponse{
			InviteCount:            dashboard.Stats.InviteCount,
			CommissionBalance:      dashboard.Stats.CommissionBalance.InexactFloat64(),
			TotalCommissionEarned:  dashboard.Stats.TotalCommissionEarned.InexactFloat64(),
			PendingAmount:          dashboard.Stats.PendingAmount.InexactFloat64(),
			ApprovedAmount:         dashboard.Stats.ApprovedAmount.InexactFloat64(),
			PayoutProcessingAmount: dashboard.Stats.PayoutProcessingAmount.InexactFloat64(),
			PayoutPaidAmount:       dashboard.Stats.PayoutPaidAmount.InexactFloat64(),
		},
		Invites: make([]DashboardInviteResponse, len(dashboard.Invites)),
	}
	for i, invite := range dashboard.Invites {
		response.Invites[i] = DashboardInviteResponse{
			InviteeID: invite.InviteeID,
			CreatedAt: invite.CreatedAt,
		}
	}
	if dashboard.Inviter != nil {
		response.Inviter = &BindingResponse{
			InviterID: dashboard.Inviter.InviterID,
			CodeUsed:  dashboard.Inviter.CodeUsed,
			CreatedAt: dashboard.Inviter.CreatedAt,
		}
	}
	if dashboard.PayoutSetting != nil {
		response.PayoutSetting = &PayoutSettingResponse{
			Method:      string(dashboard.PayoutSetting.Method),
			Account:     dashboard.PayoutSetting.Account,
			AccountName: dashboard.PayoutSetting.AccountName,
			Network:     dashboard.PayoutSetting.Network,
		}
	}

	c.JSON(http.StatusOK, response)
}
