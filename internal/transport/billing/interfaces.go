package billing

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/service"
	"github.com/fsdevblog/groph-affiliate/internal/transport/billing/client"
)

type Client interface {
	FetchPaidEvents(ctx context.Context, limit uint) ([]client.PaidEvent, error)
	AckPaidEvents(ctx context.Context, orderIDs []string) error
}

type Servicer interface {
	Settle(ctx context.Context, event service.PaidEvent) (*domain.CommissionRecord, error)
}
