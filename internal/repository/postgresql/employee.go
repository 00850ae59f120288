package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tempohq/tempo-backend-go/internal/domain/employee"
	"github.com/tempohq/tempo-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// GetByID implements employee.DirectoryRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string, organizationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, organization_id, full_name, employment_type, employment_status,
			   primary_location, work_model, created_at, updated_at
		FROM employees
		WHERE id = $1
		  AND organization_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&emp.ID, &emp.OrganizationID, &emp.FullName, &emp.EmploymentType, &emp.EmploymentStatus,
		&emp.PrimaryLocation, &emp.WorkModel, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// CountActiveByOrganization implements employee.DirectoryRepository.
func (e *employeeRepository) CountActiveByOrganization(ctx context.Context, organizationID string) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE organization_id = $1
		  AND employment_status = 'active'
	`

	var count int
	if err := q.QueryRow(ctx, query, organizationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

func NewEmployeeRepository(db *database.DB) employee.DirectoryRepository {
	return &employeeRepository{db: db}
}
