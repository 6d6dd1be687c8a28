package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// MovementRepository implements usecase.MovementRepository. Movements are
// append-only: there is no update or delete statement in this repository.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create inserts a movement inside the ledger transaction.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	var metadata []byte
	if movement.Metadata != nil {
		b, err := json.Marshal(movement.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal movement metadata: %w", err)
		}
		metadata = b
	}

	query := `
		INSERT INTO movements (
			id, resource_id, movement_type, quantity, notes,
			reference_period, metadata, performed_by_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := pgxTx.Exec(ctx, query,
		movement.ID,
		movement.ResourceID,
		string(movement.Type),
		decimalToNumeric(movement.Quantity),
		movement.Notes,
		movement.ReferencePeriod,
		metadata,
		movement.PerformedByID,
		timeToPgTimestamptz(movement.CreatedAt),
	)

	return err
}

// ListByResource returns all movements for a resource, newest-first.
func (r *MovementRepository) ListByResource(ctx context.Context, resourceID string) ([]*domain.Movement, error) {
	query := `
		SELECT id, resource_id, movement_type, quantity, notes,
			reference_period, metadata, performed_by_id, created_at
		FROM movements
		WHERE resource_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*domain.Movement
	for rows.Next() {
		var (
			movement  domain.Movement
			quantity  pgtype.Numeric
			metadata  []byte
			createdAt pgtype.Timestamptz
		)

		err := rows.Scan(
			&movement.ID, &movement.ResourceID, &movement.Type, &quantity,
			&movement.Notes, &movement.ReferencePeriod, &metadata,
			&movement.PerformedByID, &createdAt,
		)
		if err != nil {
			return nil, err
		}

		movement.Quantity = numericToDecimal(quantity)
		movement.CreatedAt = createdAt.Time

		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &movement.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal movement metadata: %w", err)
			}
		}

		movements = append(movements, &movement)
	}

	return movements, rows.Err()
}
