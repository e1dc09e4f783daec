package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation of ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) repository.ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	if message == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO contact_messages (full_name, email, website, message)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		message.FullName,
		message.Email,
		message.Website,
		message.Message,
	).Scan(&message.ID, &message.CreatedAt); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "insert contact message", err)
	}
	return message, nil
}
