package auth

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	SetUsername(ctx context.Context, id int64, username string) error
	SetPasswordHash(ctx context.Context, id int64, passwordHash string) error
	SetUserLanguage(ctx context.Context, id int64, language string) error

	CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetTokenUserID(ctx context.Context, token string) (int64, error)
	DeleteToken(ctx context.Context, token string) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	query := `
		INSERT INTO users (username, password_hash, language, created_at)
		VALUES ($1, $2, 'english', $3)
		RETURNING id, username, password_hash, language, created_at
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username, passwordHash, time.Now()))
}

func (r *postgresRepo) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash, language, created_at FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *postgresRepo) GetUserByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT id, username, password_hash, language, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresRepo) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Language, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) SetUsername(ctx context.Context, id int64, username string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET username = $2 WHERE id = $1`, id, username)
	return err
}

func (r *postgresRepo) SetPasswordHash(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	return err
}

func (r *postgresRepo) SetUserLanguage(ctx context.Context, id int64, language string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET language = $2 WHERE id = $1`, id, language)
	return err
}

func (r *postgresRepo) CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	query := `INSERT INTO auth_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, token, userID, expiresAt)
	return err
}

func (r *postgresRepo) GetTokenUserID(ctx context.Context, token string) (int64, error) {
	query := `SELECT user_id FROM auth_tokens WHERE token = $1 AND expires_at > $2`
	var userID int64
	err := r.db.QueryRowContext(ctx, query, token, time.Now()).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *postgresRepo) DeleteToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE token = $1`, token)
	return err
}
