package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
)

// PaywallReadRepository handles paywall record reads.
type PaywallReadRepository struct {
	db *sqlx.DB
}

func NewPaywallReadRepository(db *sqlx.DB) *PaywallReadRepository {
	return &PaywallReadRepository{db: db}
}

// GetByPublicID returns the paywall record for one image, or nil when the
// image has no paywall.
func (r *PaywallReadRepository) GetByPublicID(ctx context.Context, publicID string) (*models.PaywallDB, error) {
	const query = `
		SELECT public_id, url, paywall_url, created_at
		FROM gallery
		WHERE public_id = $1
	`

	var record models.PaywallDB
	err := r.db.GetContext(ctx, &record, query, publicID)

	logger.Log.Infow("paywall query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{publicID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByPublicIDs returns paywall records for all given identifiers in a
// single query, keyed by public_id. Identifiers with no record are simply
// absent from the map.
func (r *PaywallReadRepository) GetByPublicIDs(ctx context.Context, publicIDs []string) (map[string]models.PaywallDB, error) {
	if len(publicIDs) == 0 {
		return map[string]models.PaywallDB{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT public_id, url, paywall_url, created_at
		FROM gallery
		WHERE public_id IN (?)
	`, publicIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var records []models.PaywallDB
	err = r.db.SelectContext(ctx, &records, query, args...)

	logger.Log.Infow("paywall query",
		"query", strings.Join(strings.Fields(query), " "),
		"ids", len(publicIDs),
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.PaywallDB, len(records))
	for _, rec := range records {
		byID[rec.PublicID] = rec
	}
	return byID, nil
}

// PaywallWriteRepository handles paywall record writes.
type PaywallWriteRepository struct {
	db *sqlx.DB
}

func NewPaywallWriteRepository(db *sqlx.DB) *PaywallWriteRepository {
	return &PaywallWriteRepository{db: db}
}

// Save persists a minted paywall link and returns the stored record.
// A second record for the same image hits the unique constraint and yields
// ErrUniqueViolation.
func (r *PaywallWriteRepository) Save(ctx context.Context, publicID, url, paywallURL string) (*models.PaywallDB, error) {
	const query = `
		INSERT INTO gallery (public_id, url, paywall_url, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING public_id, url, paywall_url, created_at
	`
	args := []any{publicID, url, paywallURL}

	var record models.PaywallDB
	err := r.db.GetContext(ctx, &record, query, args...)

	logger.Log.Infow("paywall query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}
	return &record, nil
}
