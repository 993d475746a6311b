package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/bill-tracker/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, avatar_url, theme, language, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var name, avatarURL *string

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &name, &avatarURL, &user.Theme, &user.Language, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	user.Name = name
	user.AvatarURL = avatarURL
	return user, nil
}

// Create создает пользователя с настройками по умолчанию.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, name *string) (models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		email, passwordHash, name,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user, ErrConflict
		}
		return user, err
	}

	return user, nil
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE email = $1`,
		email,
	))
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE id = $1`,
		id,
	))
}

// UpdateProfile обновляет имя и аватар пользователя.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, avatarURL *string) (models.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`UPDATE users
		 SET name = $2,
		     avatar_url = $3,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, name, avatarURL,
	))
}

// UpdatePreferences сохраняет тему и язык интерфейса.
func (r *UserRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, theme models.ThemeMode, language models.Language) (models.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`UPDATE users
		 SET theme = $2,
		     language = $3,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, theme, language,
	))
}

// Delete удаляет аккаунт; счета и refresh-токены уходят каскадом.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM users
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
