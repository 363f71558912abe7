package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

const bindingColumns = `id, created_at, invitee_id, inviter_id, code_used`

type ReferralBindingRepository struct {
	conn uow.DBTX
}

func NewReferralBindingRepository(conn uow.DBTX) *ReferralBindingRepository {
	return &ReferralBindingRepository{conn: conn}
}

// Create вставляет привязку. Повторная привязка того же invitee упирается
// в уникальный индекс и возвращается как domain.ErrDuplicateKey.
func (r *ReferralBindingRepository) Create(
	ctx context.Context,
	args repoargs.BindingCreate,
) (*domain.ReferralBinding, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO referral_bindings (invitee_id, inviter_id, code_used)
		 VALUES ($1, $2, $3)
		 RETURNING `+bindingColumns, args.InviteeID, args.InviterID, args.CodeUsed)
	binding, err := scanBinding(row)
	if err != nil {
		return nil, convertErr(err, "creating referral binding for inviteeID %d", args.InviteeID)
	}
	return binding, nil
}

func (r *ReferralBindingRepository) FindByInviteeID(
	ctx context.Context,
	inviteeID int64,
) (*domain.ReferralBinding, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+bindingColumns+` FROM referral_bindings WHERE invitee_id = $1`, inviteeID)
	binding, err := scanBinding(row)
	if err != nil {
		return nil, convertErr(err, "finding referral binding by inviteeID %d", inviteeID)
	}
	return binding, nil
}

// GetByInviterID возвращает привязки пригласившего, новые первыми.
func (r *ReferralBindingRepository) GetByInviterID(
	ctx context.Context,
	inviterID int64,
	limit uint,
) ([]domain.ReferralBinding, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+bindingColumns+` FROM referral_bindings
		 WHERE inviter_id = $1 ORDER BY created_at DESC LIMIT $2`, inviterID, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting referral bindings by inviterID %d", inviterID)
	}
	defer rows.Close()

	var bindings []domain.ReferralBinding
	for rows.Next() {
		binding, scanErr := scanBinding(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning referral binding")
		}
		bindings = append(bindings, *binding)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating referral bindings")
	}
	return bindings, nil
}

func scanBinding(row rowScanner) (*domain.ReferralBinding, error) {
	var b domain.ReferralBinding
	err := row.Scan(&b.ID, &b.CreatedAt, &b.InviteeID, &b.InviterID, &b.CodeUsed)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
