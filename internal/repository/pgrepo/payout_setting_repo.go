package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

const payoutSettingColumns = `id, created_at, updated_at, user_id, method, account, account_name, network`

type PayoutSettingRepository struct {
	conn uow.DBTX
}

func NewPayoutSettingRepository(conn uow.DBTX) *PayoutSettingRepository {
	return &PayoutSettingRepository{conn: conn}
}

func (r *PayoutSettingRepository) FindByUserID(ctx context.Context, userID int64) (*domain.PayoutSetting, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+payoutSettingColumns+` FROM payout_settings WHERE user_id = $1`, userID)
	setting, err := scanPayoutSetting(row)
	if err != nil {
		return nil, convertErr(err, "finding payout setting by userID %d", userID)
	}
	return setting, nil
}

// Upsert заменяет реквизиты выплат юзера целиком.
func (r *PayoutSettingRepository) Upsert(
	ctx context.Context,
	args repoargs.PayoutSettingUpsert,
) (*domain.PayoutSetting, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO payout_settings (user_id, method, account, account_name, network)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET method = excluded.method, account = excluded.account,
		     account_name = excluded.account_name, network = excluded.network,
		     updated_at = now()
		 RETURNING `+payoutSettingColumns,
		args.UserID, args.Method, args.Account, args.AccountName, args.Network)
	setting, err := scanPayoutSetting(row)
	if err != nil {
		return nil, convertErr(err, "upserting payout setting for userID %d", args.UserID)
	}
	return setting, nil
}

func scanPayoutSetting(row rowScanner) (*domain.PayoutSetting, error) {
	var s domain.PayoutSetting
	err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.UserID, &s.Method, &s.Account, &s.AccountName, &s.Network)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
