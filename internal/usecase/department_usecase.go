package usecase

import (
	"context"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
)

// DepartmentUseCase exposes the read-only department directory used to
// resolve the weak department references on resources.
type DepartmentUseCase struct {
	departmentRepo DepartmentRepository
}

// NewDepartmentUseCase creates a new DepartmentUseCase.
func NewDepartmentUseCase(departmentRepo DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{departmentRepo: departmentRepo}
}

// List returns all departments.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]*domain.Department, error) {
	return uc.departmentRepo.List(ctx)
}

// Get retrieves a department by ID.
func (uc *DepartmentUseCase) Get(ctx context.Context, id string) (*domain.Department, error) {
	return uc.departmentRepo.GetByID(ctx, id)
}
