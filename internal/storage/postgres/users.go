package postgres

import (
	"context"

	"github.com/polkiloo/ecomlite/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, name, email, password_hash, is_admin, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, is_admin) VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	u := *user
	err := r.storage.pool.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash, u.IsAdmin).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

// Update overwrites the mutable account fields.
func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `UPDATE users SET name=$1, email=$2, password_hash=$3, is_admin=$4, updated_at=NOW()
                   WHERE id=$5 RETURNING updated_at`
	u := *user
	err := r.storage.pool.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.ID).Scan(&u.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}
