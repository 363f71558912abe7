package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

const commissionColumns = `id, created_at, updated_at, inviter_id, invitee_id, order_id,
	order_amount, commission_amount, commission_rate, event_type, status, review_notes, settled_at`

type CommissionRecordRepository struct {
	conn uow.DBTX
}

func NewCommissionRecordRepository(conn uow.DBTX) *CommissionRecordRepository {
	return &CommissionRecordRepository{conn: conn}
}

// Create вставляет запись комиссии в статусе pending. Идемпотентность по order_id
// обеспечивается на уровне вставки: при конфликте строка не вставляется и возвращается
// domain.ErrDuplicateKey, а не результат предварительной проверки существования.
func (r *CommissionRecordRepository) Create(
	ctx context.Context,
	args repoargs.CommissionCreate,
) (*domain.CommissionRecord, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO commission_records
		   (inviter_id, invitee_id, order_id, order_amount, commission_amount, commission_rate, event_type, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (order_id) DO NOTHING
		 RETURNING `+commissionColumns,
		args.InviterID, args.InviteeID, args.OrderID, args.OrderAmount,
		args.CommissionAmount, args.CommissionRate, args.EventType, domain.CommissionStatusPending)
	record, err := scanCommission(row)
	if err != nil {
		converted := convertErr(err, "creating commission record for orderID `%s`", args.OrderID)
		// ON CONFLICT DO NOTHING не возвращает строку - вставка не состоялась из-за дубликата.
		if isNotFound(converted) {
			return nil, fmt.Errorf("[repository/creating commission record for orderID `%s`] %w",
				args.OrderID, domain.ErrDuplicateKey)
		}
		return nil, converted
	}
	return record, nil
}

// FindByIDForUpdate блокирует запись комиссии на время транзакции смены статуса.
func (r *CommissionRecordRepository) FindByIDForUpdate(
	ctx context.Context,
	id int64,
) (*domain.CommissionRecord, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+commissionColumns+` FROM commission_records WHERE id = $1 FOR UPDATE`, id)
	record, err := scanCommission(row)
	if err != nil {
		return nil, convertErr(err, "locking commission record %d", id)
	}
	return record, nil
}

func (r *CommissionRecordRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CommissionStatusType,
	reviewNotes string,
	settledAt *time.Time,
) (*domain.CommissionRecord, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE commission_records
		 SET status = $2, review_notes = $3, settled_at = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+commissionColumns, id, status, reviewNotes, settledAt)
	record, err := scanCommission(row)
	if err != nil {
		return nil, convertErr(err, "updating commission record %d status to %s", id, status)
	}
	return record, nil
}

// HasSettledForInvitee проверяет есть ли у приглашенного подтвержденная (approved/paid)
// комиссия по заказу отличному от excludeOrderID. Используется классификатором платежа.
func (r *CommissionRecordRepository) HasSettledForInvitee(
	ctx context.Context,
	inviteeID int64,
	excludeOrderID string,
) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM commission_records
		   WHERE invitee_id = $1 AND order_id <> $2 AND status IN ($3, $4)
		 )`, inviteeID, excludeOrderID, domain.CommissionStatusApproved, domain.CommissionStatusPaid).
		Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking settled commissions for inviteeID %d", inviteeID)
	}
	return exists, nil
}

// Filter возвращает записи комиссий по условиям фильтра, новые первыми.
func (r *CommissionRecordRepository) Filter(
	ctx context.Context,
	filter repoargs.CommissionFilter,
) ([]domain.CommissionRecord, error) {
	query, args := buildCommissionFilterQuery(filter)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "filtering commission records")
	}
	defer rows.Close()

	var records []domain.CommissionRecord
	for rows.Next() {
		record, scanErr := scanCommission(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning commission record")
		}
		records = append(records, *record)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating commission records")
	}
	return records, nil
}

// SumByInviter возвращает суммы комиссий пригласившего сгруппированные по статусу.
func (r *CommissionRecordRepository) SumByInviter(
	ctx context.Context,
	inviterID int64,
) ([]repoargs.CommissionStatusSum, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT status, COALESCE(SUM(commission_amount), 0)
		 FROM commission_records WHERE inviter_id = $1 GROUP BY status`, inviterID)
	if err != nil {
		return nil, convertErr(err, "summing commissions by inviterID %d", inviterID)
	}
	defer rows.Close()

	var sums []repoargs.CommissionStatusSum
	for rows.Next() {
		var s repoargs.CommissionStatusSum
		if scanErr := rows.Scan(&s.Status, &s.Sum); scanErr != nil {
			return nil, convertErr(scanErr, "scanning commission sum")
		}
		sums = append(sums, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterating commission sums")
	}
	return sums, nil
}

func buildCommissionFilterQuery(filter repoargs.CommissionFilter) (string, []any) {
	var conditions []string
	var args []any

	appendCondition := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.InviterID != 0 {
		appendCondition("inviter_id = $%d", filter.InviterID)
	}
	if filter.InviteeID != 0 {
		appendCondition("invitee_id = $%d", filter.InviteeID)
	}
	if filter.EventType != "" {
		appendCondition("event_type = $%d", filter.EventType)
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

	query := `SELECT ` + commissionColumns + ` FROM commission_records`
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

func scanCommission(row rowScanner) (*domain.CommissionRecord, error) {
	var c domain.CommissionRecord
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.InviterID, &c.InviteeID, &c.OrderID,
		&c.OrderAmount, &c.CommissionAmount, &c.CommissionRate, &c.EventType,
		&c.Status, &c.ReviewNotes, &c.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
