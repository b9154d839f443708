package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
)

// ErrUniqueViolation is returned when an insert hits the unique username
// constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when no
// such user exists. Absence is a valid result, not an error.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll returns every user record ordered by creation time.
func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, role, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users.
func (r *UserReadRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("user query",
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// CountByRole returns the number of users carrying the given role.
func (r *UserReadRepository) CountByRole(ctx context.Context, role string) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE role = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, role)

	logger.Log.Infow("user query",
		"query", query,
		"args", []any{role},
		"result", count,
		"error", err,
	)

	return count, err
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created record. A duplicate
// username yields ErrUniqueViolation via the database constraint.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email, role string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING user_id, username, email, password_hash, role, created_at, updated_at
	`
	args := []any{username, email, passwordHash, role}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, role},
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil fields of upd to the named user, always
// bumping updated_at. It reports whether a record was modified.
func (r *UserWriteRepository) Update(ctx context.Context, username string, upd models.UserUpdate) (bool, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    role = COALESCE($4, role),
		    updated_at = NOW()
		WHERE username = $1
	`
	args := []any{username, upd.Email, upd.PasswordHash, upd.Role}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the named user and reports whether a record existed.
func (r *UserWriteRepository) Delete(ctx context.Context, username string) (bool, error) {
	const query = `DELETE FROM users WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user query",
		"query", query,
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
