package pgrepo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
)

func TestConvertErr(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil passes through",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows",
			err:     pgx.ErrNoRows,
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "commission_records_order_id_key"},
			wantErr: domain.ErrDuplicateKey,
		},
		{
			name:    "balance check violation",
			err:     &pgconn.PgError{Code: "23514", ConstraintName: "affiliate_profiles_balance_non_negative"},
			wantErr: domain.ErrNotEnoughBalance,
		},
		{
			// Другие check-ограничения (например запрет самоприглашения) не должны
			// маскироваться под нехватку баланса.
			name:    "unrelated check violation",
			err:     &pgconn.PgError{Code: "23514", ConstraintName: "referral_bindings_no_self_referral"},
			wantErr: domain.ErrUnknown,
		},
		{
			name:    "plain error",
			err:     errors.New("connection reset"),
			wantErr: domain.ErrUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := convertErr(tc.err, "test op")
			if tc.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantErr)
		})
	}
}
