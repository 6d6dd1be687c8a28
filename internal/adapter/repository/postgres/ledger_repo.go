package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// BalanceDrift finds resources whose stored balance disagrees with the sum
// of their committed movements. Exits count negative; entries and
// adjustments carry their stored sign.
func (r *LedgerRepository) BalanceDrift(ctx context.Context) ([]domain.BalanceDrift, error) {
	query := `
		SELECT r.id, r.slug, r.current_balance,
			r.initial_balance + COALESCE(SUM(
				CASE WHEN m.movement_type = 'EXIT' THEN -m.quantity ELSE m.quantity END
			), 0) AS computed
		FROM resources r
		LEFT JOIN movements m ON m.resource_id = r.id
		GROUP BY r.id
		HAVING r.current_balance <> r.initial_balance + COALESCE(SUM(
			CASE WHEN m.movement_type = 'EXIT' THEN -m.quantity ELSE m.quantity END
		), 0)
		ORDER BY r.slug
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drift []domain.BalanceDrift
	for rows.Next() {
		var (
			d        domain.BalanceDrift
			stored   pgtype.Numeric
			computed pgtype.Numeric
		)

		if err := rows.Scan(&d.ResourceID, &d.Slug, &stored, &computed); err != nil {
			return nil, err
		}

		d.Stored = numericToDecimal(stored)
		d.Computed = numericToDecimal(computed)
		drift = append(drift, d)
	}

	return drift, rows.Err()
}
