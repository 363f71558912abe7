package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

const profileColumns = `id, created_at, updated_at, user_id, referral_code,
	invite_count, commission_balance, total_commission_earned`

type AffiliateProfileRepository struct {
	conn uow.DBTX
}

func NewAffiliateProfileRepository(conn uow.DBTX) *AffiliateProfileRepository {
	return &AffiliateProfileRepository{conn: conn}
}

func (r *AffiliateProfileRepository) FindByUserID(ctx context.Context, userID int64) (*domain.AffiliateProfile, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM affiliate_profiles WHERE user_id = $1`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate profile by userID %d", userID)
	}
	return profile, nil
}

// FindByUserIDForUpdate блокирует строку профиля до конца транзакции. Все мутации
// баланса проходят через эту блокировку.
func (r *AffiliateProfileRepository) FindByUserIDForUpdate(
	ctx context.Context,
	userID int64,
) (*domain.AffiliateProfile, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM affiliate_profiles WHERE user_id = $1 FOR UPDATE`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "locking affiliate profile by userID %d", userID)
	}
	return profile, nil
}

// FindByCode ищет профиль по текущему реферальному коду. Код сравнивается без учета регистра.
func (r *AffiliateProfileRepository) FindByCode(ctx context.Context, code string) (*domain.AffiliateProfile, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM affiliate_profiles WHERE referral_code = upper($1)`, code)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate profile by code `%s`", code)
	}
	return profile, nil
}

// CreateWithCode создает профиль с кодом. При гонке за создание профиля одного юзера
// вставка проигравшего не происходит и возвращается domain.ErrRecordNotFound, профиль
// выигравшего читается повторно на вызывающей стороне. Коллизия самого кода
// возвращается как domain.ErrDuplicateKey.
func (r *AffiliateProfileRepository) CreateWithCode(
	ctx context.Context,
	userID int64,
	code string,
) (*domain.AffiliateProfile, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO affiliate_profiles (user_id, referral_code)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO NOTHING
		 RETURNING `+profileColumns, userID, code)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "creating affiliate profile for userID %d", userID)
	}
	return profile, nil
}

// UpdateCode заменяет текущий код профиля. Прежний код перестает резолвиться для новых привязок.
func (r *AffiliateProfileRepository) UpdateCode(
	ctx context.Context,
	userID int64,
	code string,
) (*domain.AffiliateProfile, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE affiliate_profiles SET referral_code = $2, updated_at = now()
		 WHERE user_id = $1
		 RETURNING `+profileColumns, userID, code)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "updating referral code for userID %d", userID)
	}
	return profile, nil
}

func (r *AffiliateProfileRepository) IncrementInviteCount(ctx context.Context, userID int64) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE affiliate_profiles SET invite_count = invite_count + 1, updated_at = now()
		 WHERE user_id = $1`, userID)
	if err != nil {
		return convertErr(err, "incrementing invite count for userID %d", userID)
	}
	return nil
}

// AddCommission увеличивает баланс и счетчик всего заработанного. Вызывается только
// в транзакции со вставкой записи комиссии.
func (r *AffiliateProfileRepository) AddCommission(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE affiliate_profiles
		 SET commission_balance = commission_balance + $2,
		     total_commission_earned = total_commission_earned + $2,
		     updated_at = now()
		 WHERE user_id = $1`, userID, amount)
	if err != nil {
		return convertErr(err, "adding commission for userID %d", userID)
	}
	return nil
}

// SubtractCommission откатывает вклад отклоненной комиссии. Check-ограничение схемы
// не даст балансу уйти в минус.
func (r *AffiliateProfileRepository) SubtractCommission(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE affiliate_profiles
		 SET commission_balance = commission_balance - $2,
		     total_commission_earned = total_commission_earned - $2,
		     updated_at = now()
		 WHERE user_id = $1`, userID, amount)
	if err != nil {
		return convertErr(err, "subtracting commission for userID %d", userID)
	}
	return nil
}

// DebitBalance списывает с баланса сумму выплаченной заявки.
func (r *AffiliateProfileRepository) DebitBalance(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) error {
	_, err := r.conn.Exec(ctx,
		`UPDATE affiliate_profiles
		 SET commission_balance = commission_balance - $2, updated_at = now()
		 WHERE user_id = $1`, userID, amount)
	if err != nil {
		return convertErr(err, "debiting balance for userID %d", userID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.AffiliateProfile, error) {
	var p domain.AffiliateProfile
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.UserID, &p.ReferralCode,
		&p.InviteCount, &p.CommissionBalance, &p.TotalCommissionEarned,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
