package members

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aarya-club/backend/internal/models"
)

// Store is the member persistence interface the service depends on.
type Store interface {
	List(ctx context.Context) ([]models.Member, error)
	Get(ctx context.Context, id int64) (*models.Member, error)
	Save(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, m *models.Member) error
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// Repository handles member persistence on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a member repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const memberColumns = `id, name, position, email, image_url, description, active`

// List returns all members in id order.
func (r *Repository) List(ctx context.Context) ([]models.Member, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Email, &m.ImageURL,
			&m.Description, &m.Active); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Get returns a member by id.
func (r *Repository) Get(ctx context.Context, id int64) (*models.Member, error) {
	var m models.Member
	err := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Position, &m.Email, &m.ImageURL, &m.Description, &m.Active)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts a new member, assigning its id.
func (r *Repository) Save(ctx context.Context, m *models.Member) error {
	const q = `INSERT INTO members (name, position, email, image_url, description, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.pool.QueryRow(ctx, q, m.Name, m.Position, m.Email, m.ImageURL, m.Description, m.Active).
		Scan(&m.ID)
}

// Update replaces the member row identified by m.ID.
func (r *Repository) Update(ctx context.Context, m *models.Member) error {
	const q = `UPDATE members SET name = $2, position = $3, email = $4, image_url = $5,
		description = $6, active = $7 WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, m.ID, m.Name, m.Position, m.Email, m.ImageURL, m.Description, m.Active)
	return err
}

// Delete removes a member by id, reporting whether a row was deleted.
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Exists reports whether a member with the id exists.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM members WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}
