package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-affiliate/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup      = "/api"
	AdminRouteGroup = "/api/admin"

	ReferralCodeRoute      = "/user/referral/code"
	ReferralBindRoute      = "/user/referral/bind"
	ReferralDashboardRoute = "/user/referral/dashboard"
	CommissionsRoute       = "/user/referral/commissions"
	PayoutsRoute           = "/user/referral/payouts"
	PayoutSettingRoute     = "/user/referral/payout-setting"

	AdminRuleRoute        = "/referral/rule"
	AdminCommissionsRoute = "/referral/commissions"
	AdminPayoutsRoute     = "/referral/payouts"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	ReferralService   ReferralServicer
	RuleService       RuleServicer
	CommissionService CommissionServicer
	PayoutService     PayoutServicer
	JWTSecretKey      []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	referralHandler := NewReferralHandler(args.ReferralService)
	ruleHandler := NewRuleHandler(args.RuleService)
	commissionHandler := NewCommissionHandler(args.CommissionService)
	payoutHandler := NewPayoutHandler(args.PayoutService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// все роуты группы требуют авторизованного пользователя.
	api.POST(ReferralCodeRoute, referralHandler.EnsureCode)
	api.POST(ReferralBindRoute, referralHandler.Bind)
	api.GET(ReferralDashboardRoute, referralHandler.Dashboard)

	api.GET(CommissionsRoute, commissionHandler.Index)

	api.GET(PayoutsRoute, payoutHandler.Index)
	api.POST(PayoutsRoute, payoutHandler.Apply)
	api.GET(PayoutSettingRoute, payoutHandler.ShowSetting)
	api.PUT(PayoutSettingRoute, payoutHandler.UpsertSetting)

	admin := r.Group(AdminRouteGroup)
	admin.Use(middlewares.AuthRequired(args.JWTSecretKey), middlewares.AdminRequired())
	admin.GET(AdminRuleRoute, ruleHandler.Show)
	admin.PUT(AdminRuleRoute, ruleHandler.Update)

	admin.GET(AdminCommissionsRoute, commissionHandler.AdminIndex)
	admin.PATCH(AdminCommissionsRoute+"/:id", commissionHandler.Review)

	admin.GET(AdminPayoutsRoute, payoutHandler.AdminIndex)
	admin.PATCH(AdminPayoutsRoute+"/:id", payoutHandler.Review)
	return r, nil
}
