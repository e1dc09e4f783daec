package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

type causeRepository struct {
	pool *pgxpool.Pool
}

// NewCauseRepository returns a Postgres-backed implementation of CauseRepository.
func NewCauseRepository(pool *pgxpool.Pool) repository.CauseRepository {
	return &causeRepository{pool: pool}
}

func (r *causeRepository) Create(ctx context.Context, cause *domain.Cause) (*domain.Cause, error) {
	if cause == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO causes (title, image_path, location, tags, funding_goal)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, amount_raised, created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		cause.Title,
		cause.ImagePath,
		cause.Location,
		cause.Tags,
		cause.FundingGoal,
	).Scan(&cause.ID, &cause.AmountRaised, &cause.CreatedAt); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "insert cause", err)
	}
	return cause, nil
}

func (r *causeRepository) GetByID(ctx context.Context, id int64) (*domain.Cause, error) {
	const query = `
	SELECT id, title, image_path, location, tags, funding_goal, amount_raised, created_at
	FROM causes
	WHERE id = $1
	`
	var cause domain.Cause
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&cause.ID,
		&cause.Title,
		&cause.ImagePath,
		&cause.Location,
		&cause.Tags,
		&cause.FundingGoal,
		&cause.AmountRaised,
		&cause.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCauseNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeStorage, "get cause", err)
	}
	return &cause, nil
}

func (r *causeRepository) List(ctx context.Context) ([]domain.Cause, error) {
	const query = `
	SELECT id, title, image_path, location, tags, funding_goal, amount_raised, created_at
	FROM causes
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "list causes", err)
	}
	defer rows.Close()

	var causes []domain.Cause
	for rows.Next() {
		var cause domain.Cause
		if err := rows.Scan(
			&cause.ID,
			&cause.Title,
			&cause.ImagePath,
			&cause.Location,
			&cause.Tags,
			&cause.FundingGoal,
			&cause.AmountRaised,
			&cause.CreatedAt,
		); err != nil {
			return nil, domain.WrapError(domain.ErrCodeStorage, "scan cause", err)
		}
		causes = append(causes, cause)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "iterate causes", err)
	}
	return causes, nil
}
