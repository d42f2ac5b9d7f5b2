package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = "id, user_id, name, email, summary, education, skills, links, created_at, updated_at"

func scanProfile(row pgx.Row, l logger.Logger) (*profile.Profile, error) {
	p := &profile.Profile{}
	var educationBytes, linksBytes []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Summary,
		&educationBytes,
		&p.Skills,
		&linksBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		l.Warn("Failed to unmarshal profile education", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Education = []profile.EducationEntry{}
	}
	if err := json.Unmarshal(linksBytes, &p.Links); err != nil {
		l.Warn("Failed to unmarshal profile links", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Links = profile.Links{}
	}
	if p.Education == nil {
		p.Education = []profile.EducationEntry{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}

	return p, nil
}

func scanProfiles(rows pgx.Rows, l logger.Logger) ([]*profile.Profile, error) {
	defer rows.Close()
	profiles := make([]*profile.Profile, 0)

	for rows.Next() {
		p, err := scanProfile(rows, l)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile rows", err)
	}
	return profiles, nil
}

// mapProfileWriteError normalizes unique violations raised by the storage
// layer into the same conflict the pre-write checks produce, so a create
// racing past the email check still reports 409.
func mapProfileWriteError(p *profile.Profile, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "profiles_user_id_key" {
			return apperror.NewConflict("profile", "account", p.ID.String())
		}
		return apperror.NewConflict("profile", "email", p.Email)
	}
	return nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile education", err)
	}
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile links", err)
	}

	query := `
		INSERT INTO profiles (id, user_id, name, email, summary, education, skills, links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.UserID, p.Name, p.Email, p.Summary,
		educationBytes, p.Skills, linksBytes,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if conflictErr := mapProfileWriteError(p, err); conflictErr != nil {
			return conflictErr
		}
		return apperror.NewInternal("failed to insert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanProfile(row, r.logger)
}

func (r *postgresProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	row := r.db.QueryRow(ctx, query, email)
	return scanProfile(row, r.logger)
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	row := r.db.QueryRow(ctx, query, userID)
	return scanProfile(row, r.logger)
}

func (r *postgresProfileRepo) First(ctx context.Context) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC LIMIT 1`
	row := r.db.QueryRow(ctx, query)
	return scanProfile(row, r.logger)
}

func (r *postgresProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	builder := psqlProfile.Select(profileColumns).
		From("profiles").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list profiles query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles", err)
	}

	return scanProfiles(rows, r.logger)
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile education", err)
	}
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile links", err)
	}

	query := `
		UPDATE profiles SET
			name = $2, email = $3, summary = $4, education = $5, skills = $6,
			links = $7, updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Email, p.Summary,
		educationBytes, p.Skills, linksBytes,
		p.UpdatedAt,
	)
	if err != nil {
		if conflictErr := mapProfileWriteError(p, err); conflictErr != nil {
			return conflictErr
		}
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Profile", p.ID.String())
	}
	return nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Projects and work experiences go with it via ON DELETE CASCADE.
	query := `DELETE FROM profiles WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("Profile", id.String())
	}
	return nil
}
