package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"

	balanceCheckConstraint = "affiliate_profiles_balance_non_negative"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Особенности:
//   - pgx.ErrNoRows возвращается как domain.ErrRecordNotFound.
//   - Нарушение уникального ключа (23505) - как domain.ErrDuplicateKey.
//   - Нарушение check-ограничения на баланс профиля - как domain.ErrNotEnoughBalance.
//     Остальные check-ограничения схемы (диапазон ставок, запрет самоприглашения,
//     положительная сумма) под это правило не попадают.
//   - Все остальные ошибки возвращаются как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case checkViolationCode:
			if pgErr.ConstraintName == balanceCheckConstraint {
				errType = domain.ErrNotEnoughBalance
			}
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}
