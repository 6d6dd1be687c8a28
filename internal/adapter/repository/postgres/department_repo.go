package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// DepartmentRepository implements usecase.DepartmentRepository.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	var (
		department domain.Department
		createdAt  pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM departments WHERE id = $1`, id,
	).Scan(&department.ID, &department.Name, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}

	department.CreatedAt = createdAt.Time

	return &department, nil
}

// List returns all departments ordered by name.
func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*domain.Department
	for rows.Next() {
		var (
			department domain.Department
			createdAt  pgtype.Timestamptz
		)

		if err := rows.Scan(&department.ID, &department.Name, &createdAt); err != nil {
			return nil, err
		}

		department.CreatedAt = createdAt.Time
		departments = append(departments, &department)
	}

	return departments, rows.Err()
}
