package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"coderr-backend/internal/domains/profile/model"
	"coderr-backend/internal/shared"
	"coderr-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, type, is_staff, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Type, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) CreateUserWithProfile(ctx context.Context, user *model.User, profile *model.Profile) (*model.User, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.User, error) {
		const insertUser = `
			INSERT INTO users (id, username, email, password_hash, type, is_staff)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + userColumns

		created, err := scanUser(tx.QueryRow(ctx, insertUser,
			user.ID, user.Username, user.Email, user.PasswordHash, user.Type, user.IsStaff,
		))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.ConstraintName {
				case "users_username_key":
					return nil, model.ErrUsernameTaken
				case "users_email_key":
					return nil, model.ErrEmailTaken
				}
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}

		const insertProfile = `
			INSERT INTO profiles (user_id, first_name, last_name, file, location, tel, description, working_hours)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err = tx.Exec(ctx, insertProfile,
			created.ID, profile.FirstName, profile.LastName, profile.File,
			profile.Location, profile.Tel, profile.Description, profile.WorkingHours,
		)
		if err != nil {
			return nil, fmt.Errorf("insert profile: %w", err)
		}

		return created, nil
	})
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *postgresRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

const profileWithUserColumns = `
	p.user_id, p.first_name, p.last_name, p.file, p.location, p.tel,
	p.description, p.working_hours, p.created_at, p.updated_at,
	u.username, u.email, u.type
`

func scanProfileWithUser(row pgx.Row) (*model.ProfileWithUser, error) {
	var p model.ProfileWithUser
	err := row.Scan(
		&p.UserID, &p.FirstName, &p.LastName, &p.File, &p.Location, &p.Tel,
		&p.Description, &p.WorkingHours, &p.CreatedAt, &p.UpdatedAt,
		&p.Username, &p.Email, &p.Type,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*model.ProfileWithUser, error) {
	query := `
		SELECT ` + profileWithUserColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	profile, err := scanProfileWithUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (r *postgresRepository) ListProfilesByType(ctx context.Context, role shared.Role) ([]model.ProfileWithUser, error) {
	query := `
		SELECT ` + profileWithUserColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE u.type = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.ProfileWithUser
	for rows.Next() {
		p, err := scanProfileWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return profiles, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, profile *model.Profile, email *string) (*model.ProfileWithUser, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.ProfileWithUser, error) {
		const updateProfile = `
			UPDATE profiles
			SET first_name = $2, last_name = $3, file = $4, location = $5,
			    tel = $6, description = $7, working_hours = $8, updated_at = NOW()
			WHERE user_id = $1
		`
		tag, err := tx.Exec(ctx, updateProfile,
			profile.UserID, profile.FirstName, profile.LastName, profile.File,
			profile.Location, profile.Tel, profile.Description, profile.WorkingHours,
		)
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, model.ErrProfileNotFound
		}

		if email != nil {
			_, err := tx.Exec(ctx,
				`UPDATE users SET email = $2, updated_at = NOW() WHERE id = $1`,
				profile.UserID, *email,
			)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key" {
					return nil, model.ErrEmailTaken
				}
				return nil, fmt.Errorf("update user email: %w", err)
			}
		}

		query := `
			SELECT ` + profileWithUserColumns + `
			FROM profiles p
			JOIN users u ON u.id = p.user_id
			WHERE p.user_id = $1
		`
		updated, err := scanProfileWithUser(tx.QueryRow(ctx, query, profile.UserID))
		if err != nil {
			return nil, fmt.Errorf("reload profile: %w", err)
		}
		return updated, nil
	})
}

func (r *postgresRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
