package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"

	"github.com/fsdevblog/groph-affiliate/internal/transport/billing"

	"github.com/fsdevblog/groph-affiliate/pkg/uow"

	"github.com/fsdevblog/groph-affiliate/internal/audit"
	"github.com/fsdevblog/groph-affiliate/internal/config"
	"github.com/fsdevblog/groph-affiliate/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-affiliate/internal/service"
	"github.com/fsdevblog/groph-affiliate/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	auditRecorder := audit.New(a.Logger)

	services, sErr := service.Factory(unitOfWork, auditRecorder, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		ReferralService:   services.ReferralService,
		RuleService:       services.RuleService,
		CommissionService: services.SettlementService,
		PayoutService:     services.PayoutService,
		JWTSecretKey:      []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	if a.Config.BillingSystemAddress != "" {
		processor := billing.New(services.SettlementService, a.Config.BillingSystemAddress, a.Logger).
			SetSettleWorkers(5).     //nolint:mnd
			SetLimitPerIteration(50) //nolint:mnd

		go processor.Run(notifyCtx)
	}

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	type repoFactory struct {
		name      repoargs.RepositoryName
		factoryFn uow.RepositoryFactory
	}

	factories := []repoFactory{
		{repoargs.UserRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		}},
		{repoargs.ProfileRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAffiliateProfileRepository(dbtx)
		}},
		{repoargs.BindingRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewReferralBindingRepository(dbtx)
		}},
		{repoargs.RuleRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCommissionRuleRepository(dbtx)
		}},
		{repoargs.CommissionRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCommissionRecordRepository(dbtx)
		}},
		{repoargs.PayoutRequestRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPayoutRequestRepository(dbtx)
		}},
		{repoargs.PayoutSettingRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPayoutSettingRepository(dbtx)
		}},
	}

	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
