package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

const ruleColumns = `id, created_at, enabled, first_rate, renewal_rate, updated_by`

type CommissionRuleRepository struct {
	conn uow.DBTX
}

func NewCommissionRuleRepository(conn uow.DBTX) *CommissionRuleRepository {
	return &CommissionRuleRepository{conn: conn}
}

// GetLatest возвращает последнюю версию правил начисления.
func (r *CommissionRuleRepository) GetLatest(ctx context.Context) (*domain.CommissionRule, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+ruleColumns+` FROM commission_rules ORDER BY id DESC LIMIT 1`)
	rule, err := scanRule(row)
	if err != nil {
		return nil, convertErr(err, "getting latest commission rule")
	}
	return rule, nil
}

// Create добавляет новую версию правил. Таблица append-only, история версий сохраняется.
func (r *CommissionRuleRepository) Create(
	ctx context.Context,
	args repoargs.RuleCreate,
) (*domain.CommissionRule, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO commission_rules (enabled, first_rate, renewal_rate, updated_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+ruleColumns, args.Enabled, args.FirstRate, args.RenewalRate, args.UpdatedBy)
	rule, err := scanRule(row)
	if err != nil {
		return nil, convertErr(err, "creating commission rule version")
	}
	return rule, nil
}

func scanRule(row rowScanner) (*domain.CommissionRule, error) {
	var r domain.CommissionRule
	err := row.Scan(&r.ID, &r.CreatedAt, &r.Enabled, &r.FirstRate, &r.RenewalRate, &r.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
