package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

// UserRepository читает таблицу юзеров, принадлежащую внешней системе аутентификации.
// Ядру нужен только статус аккаунта владельца реферального кода.
type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.conn.QueryRow(ctx,
		`SELECT id, created_at, username, banned FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.CreatedAt, &u.Username, &u.Banned)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return &u, nil
}
