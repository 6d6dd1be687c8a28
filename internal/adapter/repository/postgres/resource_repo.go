package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

// ResourceRepository implements usecase.ResourceRepository.
type ResourceRepository struct {
	pool *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository.
func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

const resourceColumns = `id, slug, name, description, department_id,
	initial_balance, current_balance, status, created_by_id, created_at, updated_at`

// Create inserts a new resource.
func (r *ResourceRepository) Create(ctx context.Context, resource *domain.Resource) error {
	query := `
		INSERT INTO resources (` + resourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		resource.ID,
		resource.Slug,
		resource.Name,
		resource.Description,
		resource.DepartmentID,
		decimalToNumeric(resource.InitialBalance),
		decimalToNumeric(resource.CurrentBalance),
		resource.Status,
		resource.CreatedByID,
		timeToPgTimestamptz(resource.CreatedAt),
		timeToPgTimestamptz(resource.UpdatedAt),
	)

	return err
}

// GetByID retrieves a resource by ID.
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	return r.scanResource(r.pool.QueryRow(ctx, query, id))
}

// GetBySlug retrieves a resource by slug.
func (r *ResourceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE slug = $1`
	return r.scanResource(r.pool.QueryRow(ctx, query, slug))
}

// GetByIDForUpdate retrieves a resource by ID with a FOR UPDATE row lock.
// The lock serializes concurrent movements against the same resource so
// the read-check-write balance update cannot act on a stale balance.
func (r *ResourceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Resource, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1 FOR UPDATE`
	return r.scanResource(pgxTx.QueryRow(ctx, query, id))
}

// UpdateBalance updates the balance of a resource inside a transaction.
func (r *ResourceRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE resources SET current_balance = $2, updated_at = $3 WHERE id = $1`
	_, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt))

	return err
}

// SlugExists reports whether a slug is already taken.
func (r *ResourceRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM resources WHERE slug = $1)`, slug,
	).Scan(&exists)

	return exists, err
}

// List returns all resources newest-first, enriched with department,
// creator and movement count.
func (r *ResourceRepository) List(ctx context.Context) ([]*domain.ResourceListing, error) {
	query := `
		SELECT
			r.id, r.slug, r.name, r.description, r.department_id,
			r.initial_balance, r.current_balance, r.status, r.created_by_id,
			r.created_at, r.updated_at,
			d.id, d.name, d.created_at,
			u.id, u.name, u.email,
			COUNT(m.id) AS movement_count
		FROM resources r
		LEFT JOIN departments d ON d.id = r.department_id
		LEFT JOIN users u ON u.id = r.created_by_id
		LEFT JOIN movements m ON m.resource_id = r.id
		GROUP BY r.id, d.id, u.id
		ORDER BY r.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*domain.ResourceListing
	for rows.Next() {
		var (
			listing        domain.ResourceListing
			initial        pgtype.Numeric
			current        pgtype.Numeric
			createdAt      pgtype.Timestamptz
			updatedAt      pgtype.Timestamptz
			depID, depName *string
			depCreatedAt   pgtype.Timestamptz
			usrID, usrName *string
			usrEmail       *string
		)

		err := rows.Scan(
			&listing.ID, &listing.Slug, &listing.Name, &listing.Description, &listing.DepartmentID,
			&initial, &current, &listing.Status, &listing.CreatedByID,
			&createdAt, &updatedAt,
			&depID, &depName, &depCreatedAt,
			&usrID, &usrName, &usrEmail,
			&listing.MovementCount,
		)
		if err != nil {
			return nil, err
		}

		listing.InitialBalance = numericToDecimal(initial)
		listing.CurrentBalance = numericToDecimal(current)
		listing.CreatedAt = createdAt.Time
		listing.UpdatedAt = updatedAt.Time

		if depID != nil {
			listing.Department = &domain.Department{
				ID:        *depID,
				Name:      derefString(depName),
				CreatedAt: depCreatedAt.Time,
			}
		}
		if usrID != nil {
			listing.CreatedBy = &domain.UserRef{
				ID:    *usrID,
				Name:  derefString(usrName),
				Email: derefString(usrEmail),
			}
		}

		listings = append(listings, &listing)
	}

	return listings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ResourceRepository) scanResource(row rowScanner) (*domain.Resource, error) {
	var (
		resource  domain.Resource
		initial   pgtype.Numeric
		current   pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&resource.ID, &resource.Slug, &resource.Name, &resource.Description, &resource.DepartmentID,
		&initial, &current, &resource.Status, &resource.CreatedByID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrResourceNotFound
		}
		return nil, err
	}

	resource.InitialBalance = numericToDecimal(initial)
	resource.CurrentBalance = numericToDecimal(current)
	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return &resource, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
