package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aarya-club/backend/internal/models"
)

// Store is the admin persistence interface the handler depends on.
type Store interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// ErrDuplicate reports an insert that hit one of the uniqueness constraints
// on the admins table.
var ErrDuplicate = errors.New("admin already exists")

// Repository handles admin persistence on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an admin repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByUsername returns an admin by username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	const q = `SELECT id, username, email, password_hash, COALESCE(full_name,''), created_at
		FROM admins WHERE username = $1`
	var a models.Admin
	err := r.pool.QueryRow(ctx, q, username).
		Scan(&a.ID, &a.Username, &a.Email, &a.Password, &a.FullName, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ExistsByUsername reports whether an admin with the username exists.
func (r *Repository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)`, username).
		Scan(&exists)
	return exists, err
}

// ExistsByEmail reports whether an admin with the email exists.
func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).
		Scan(&exists)
	return exists, err
}

// Create inserts a new admin. A concurrent insert that trips the username or
// email uniqueness constraint comes back as ErrDuplicate, so registration
// maps it to the same conflict response as the pre-checks.
func (r *Repository) Create(ctx context.Context, admin *models.Admin) error {
	const q = `INSERT INTO admins (username, email, password_hash, full_name)
		VALUES ($1, $2, $3, NULLIF($4,''))
		RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, q, admin.Username, admin.Email, admin.Password, admin.FullName).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
