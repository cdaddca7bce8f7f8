package events

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aarya-club/backend/internal/models"
)

// Store is the event persistence interface the service depends on.
type Store interface {
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int) (*models.Event, error)
	Save(ctx context.Context, e *models.Event) error
	Upsert(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int) (bool, error)
}

// Repository handles event persistence on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an event repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const eventColumns = `id, title, date, description, image_url, registration_form_url,
	photo_gallery_url, category, location, max_participants, current_participants`

// List returns all events in id order.
func (r *Repository) List(ctx context.Context) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Description, &e.ImageURL,
			&e.RegistrationFormURL, &e.PhotoGalleryURL, &e.Category, &e.Location,
			&e.MaxParticipants, &e.CurrentParticipants); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Get returns an event by id.
func (r *Repository) Get(ctx context.Context, id int) (*models.Event, error) {
	var e models.Event
	err := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id).
		Scan(&e.ID, &e.Title, &e.Date, &e.Description, &e.ImageURL,
			&e.RegistrationFormURL, &e.PhotoGalleryURL, &e.Category, &e.Location,
			&e.MaxParticipants, &e.CurrentParticipants)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Save inserts a new event, assigning its id.
func (r *Repository) Save(ctx context.Context, e *models.Event) error {
	const q = `INSERT INTO events (title, date, description, image_url, registration_form_url,
		photo_gallery_url, category, location, max_participants, current_participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	return r.pool.QueryRow(ctx, q, e.Title, e.Date, e.Description, e.ImageURL,
		e.RegistrationFormURL, e.PhotoGalleryURL, e.Category, e.Location,
		e.MaxParticipants, e.CurrentParticipants).Scan(&e.ID)
}

// Upsert stores the event under its id, creating or fully replacing the row.
func (r *Repository) Upsert(ctx context.Context, e *models.Event) error {
	const q = `INSERT INTO events (id, title, date, description, image_url, registration_form_url,
		photo_gallery_url, category, location, max_participants, current_participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			date = EXCLUDED.date,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			registration_form_url = EXCLUDED.registration_form_url,
			photo_gallery_url = EXCLUDED.photo_gallery_url,
			category = EXCLUDED.category,
			location = EXCLUDED.location,
			max_participants = EXCLUDED.max_participants,
			current_participants = EXCLUDED.current_participants`
	_, err := r.pool.Exec(ctx, q, e.ID, e.Title, e.Date, e.Description, e.ImageURL,
		e.RegistrationFormURL, e.PhotoGalleryURL, e.Category, e.Location,
		e.MaxParticipants, e.CurrentParticipants)
	return err
}

// Delete removes an event by id, reporting whether a row was deleted.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
