package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

const payoutRequestColumns = `id, created_at, user_id, amount, method, account, account_name,
	network, status, requested_notes, review_notes, reviewed_by, reviewed_at, paid_at`

type PayoutRequestRepository struct {
	conn uow.DBTX
}

func NewPayoutRequestRepository(conn uow.DBTX) *PayoutRequestRepository {
	return &PayoutRequestRepository{conn: conn}
}

func (r *PayoutRequestRepository) Create(
	ctx context.Context,
	args repoargs.PayoutRequestCreate,
) (*domain.PayoutRequest, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO payout_requests (user_id, amount, method, account, account_name, network, status, requested_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+payoutRequestColumns,
		args.UserID, args.Amount, args.Method, args.Account, args.AccountName,
		args.Network, domain.PayoutStatusPending, args.RequestedNotes)
	request, err := scanPayoutRequest(row)
	if err != nil {
		return nil, convertErr(err, "creating payout request for userID %d", args.UserID)
	}
	return request, nil
}

// FindByIDForUpdate блокирует заявку на время транзакции смены статуса.
func (r *PayoutRequestRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.PayoutRequest, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+payoutRequestColumns+` FROM payout_requests WHERE id = $1 FOR UPDATE`, id)
	request, err := scanPayoutRequest(row)
	if err != nil {
		return nil, convertErr(err, "locking payout request %d", id)
	}
	return request, nil
}

func (r *PayoutRequestRepository) UpdateStatus(
	ctx context.Context,
	review repoargs.PayoutReview,
	reviewedAt time.Time,
	paidAt *time.Time,
) (*domain.PayoutRequest, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE payout_requests
		 SET status = $2, review_notes = $3, reviewed_by = $4, reviewed_at = $5, paid_at = $6
		 WHERE id = $1
		 RETURNING `+payoutRequestColumns,
		review.RequestID, review.Status, review.ReviewNotes, review.ReviewedBy, reviewedAt, paidAt)
	request, err := scanPayoutRequest(row)
	if err != nil {
		return nil, convertErr(err, "updating payout request %d status to %s", review.RequestID, review.Status)
	}
	return request, nil
}

// SumReserved возвращает сумму заявок юзера в статусах pending и approved -
// зарезервированную, но еще не списанную с баланса часть.
func (r *PayoutRequestRepository) SumReserved(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payout_requests
		 WHERE user_id = $1 AND status IN ($2, $3)`,
		userID, domain.PayoutStatusPending, domain.PayoutStatusApproved).Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing reserved payouts for userID %d", userID)
	}
	return sum, nil
}

// SumByUser возвращает суммы заявок юзера сгруппированные по статусу.
func (r *PayoutRequestRepository) SumByUser(
	ctx context.Context,
	userID int64,
) ([]repoargs.PayoutStatusSum, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT status, COALESCE(SUM(amount), 0)
		 FROM payout_requests WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return nil, convertErr(err, "summing payouts by userID %d", userID)
	}
	defer rows.Close()

	var sums []repoargs.PayoutStatusSum
	for rows.Next() {
		var s repoargs.PayoutStatusSum
		if scanErr := rows.Scan(&s.Status, &s.Sum); scanErr != nil {
			return nil, convertErr(scanErr, "scanning payout sum")
		}
		sums = append(sums, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating payout sums")
	}
	return sums, nil
}

// Filter возвращает заявки на выплату по условиям фильтра, новые первыми.
func (r *PayoutRequestRepository) Filter(
	ctx context.Context,
	filter repoargs.PayoutFilter,
) ([]domain.PayoutRequest, error) {
	query, args := buildPayoutFilterQuery(filter)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "filtering payout requests")
	}
	defer rows.Close()

	var requests []domain.PayoutRequest
	for rows.Next() {
		request, scanErr := scanPayoutRequest(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payout request")
		}
		requests = append(requests, *request)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating payout requests")
	}
	return requests, nil
}

func buildPayoutFilterQuery(filter repoargs.PayoutFilter) (string, []any) {
	var conditions []string
	var args []any

	appendCondition := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.UserID != 0 {
		appendCondition("user_id = $%d", filter.UserID)
	}
	if filter.Status != "" {
		appendCondition("status = $%d", filter.Status)
	}
	if filter.From != nil {
		appendCondition("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		appendCondition("created_at <= $%d", *filter.To)
	}

	query := `SELECT ` + payoutRequestColumns + ` FROM payout_requests`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	args = append(args, int64(filter.Limit))
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, int64(filter.Offset))
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return query, args
}

func scanPayoutRequest(row rowScanner) (*domain.PayoutRequest, error) {
	var p domain.PayoutRequest
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UserID, &p.Amount, &p.Method, &p.Account, &p.AccountName,
		&p.Network, &p.Status, &p.RequestedNotes, &p.ReviewNotes, &p.ReviewedBy, &p.ReviewedAt, &p.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
