package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/causeway/backend/domain"
	"github.com/causeway/backend/repository"
)

const fkViolation = "23503"

type donationRepository struct {
	pool *pgxpool.Pool
}

// NewDonationRepository returns a Postgres-backed implementation of DonationRepository.
func NewDonationRepository(pool *pgxpool.Pool) repository.DonationRepository {
	return &donationRepository{pool: pool}
}

// Record inserts the donation and, when a cause is referenced, increments that
// cause's amount_raised in the same transaction. The increment is an in-place
// expression so concurrent donations to the same cause never lose updates;
// amount_raised is never read into application memory on this path.
func (r *donationRepository) Record(ctx context.Context, donation *domain.Donation) error {
	if donation == nil {
		return domain.ErrInvalidPayload
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.WrapError(domain.ErrCodeStorage, "begin donation transaction", err)
	}
	// No-op after a successful commit; unwinds the insert and the
	// increment together on every other exit path.
	defer tx.Rollback(ctx)

	const insert = `
	INSERT INTO donations (donor_name, donor_email, amount_cents, message, cause_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insert,
		donation.DonorName,
		donation.DonorEmail,
		donation.AmountCents,
		nullString(donation.Message),
		donation.CauseID,
	).Scan(&donation.ID, &donation.CreatedAt); err != nil {
		if isPgError(err, fkViolation) {
			return domain.ErrUnknownCause
		}
		return domain.WrapError(domain.ErrCodeStorage, "insert donation", err)
	}

	if donation.CauseID != nil {
		const increment = `
		UPDATE causes
		SET amount_raised = amount_raised + $1
		WHERE id = $2
		`
		tag, err := tx.Exec(ctx, increment, donation.AmountCents, *donation.CauseID)
		if err != nil {
			return domain.WrapError(domain.ErrCodeStorage, "increment cause total", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrUnknownCause
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.WrapError(domain.ErrCodeStorage, "commit donation", err)
	}
	return nil
}

func (r *donationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	const query = `
	SELECT id, donor_name, donor_email, amount_cents, COALESCE(message, ''), cause_id, created_at
	FROM donations
	ORDER BY created_at DESC
	LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "list donations", err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var donation domain.Donation
		if err := rows.Scan(
			&donation.ID,
			&donation.DonorName,
			&donation.DonorEmail,
			&donation.AmountCents,
			&donation.Message,
			&donation.CauseID,
			&donation.CreatedAt,
		); err != nil {
			return nil, domain.WrapError(domain.ErrCodeStorage, "scan donation", err)
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorage, "iterate donations", err)
	}
	return donations, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
