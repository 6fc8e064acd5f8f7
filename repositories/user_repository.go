package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/linkedin-agent/models"
)

// UserRepository is the credential store for provider-linked identities
type UserRepository interface {
	// Upsert creates the identity for externalID, or overwrites its
	// profile and token in place. A single statement, so concurrent
	// callbacks for the same externalID cannot lose updates.
	Upsert(ctx context.Context, externalID, email, displayName, accessToken string) (*models.UserIdentity, error)
	GetByID(ctx context.Context, id int64) (*models.UserIdentity, error)
	GetAll(ctx context.Context) ([]models.UserIdentity, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db, now: time.Now}
}

const userColumns = `id, external_id, email, display_name, access_token, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.UserIdentity, error) {
	var (
		user      models.UserIdentity
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&user.ID,
		&user.ExternalID,
		&user.Email,
		&user.DisplayName,
		&user.AccessToken,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	user.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &user, nil
}

// Upsert inserts or refreshes the identity keyed by externalID
func (r *userRepository) Upsert(ctx context.Context, externalID, email, displayName, accessToken string) (*models.UserIdentity, error) {
	if externalID == "" {
		return nil, errors.New("external ID is required")
	}

	query := `
		INSERT INTO user_identities (external_id, email, display_name, access_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			email        = excluded.email,
			display_name = excluded.display_name,
			access_token = excluded.access_token,
			updated_at   = excluded.updated_at
		RETURNING ` + userColumns

	now := r.now().UnixNano()
	user, err := scanUser(r.db.QueryRowContext(ctx, query,
		externalID,
		email,
		displayName,
		accessToken,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user identity: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user identity by its local key
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.UserIdentity, error) {
	query := `SELECT ` + userColumns + ` FROM user_identities WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user identity with ID %d: %w", id, models.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user identity: %w", err)
	}

	return user, nil
}

// GetAll retrieves every stored identity ordered by local key
func (r *userRepository) GetAll(ctx context.Context) ([]models.UserIdentity, error) {
	query := `SELECT ` + userColumns + ` FROM user_identities ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user identities: %w", err)
	}
	defer rows.Close()

	users := []models.UserIdentity{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user identity: %w", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user identities: %w", err)
	}

	return users, nil
}
