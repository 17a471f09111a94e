package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// GetByEmail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// Update implements employee.EmployeeService. Only provided fields change.
// The salary written here is the base figure shown on admin screens; the
// attendance-derived pay in the salary report is computed independently.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	if req.HireDate != nil && *req.HireDate != "" {
		hd, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid hire_date: %w", err)
		}
		emp.HireDate = &hd
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:         emp.ID,
		Email:      emp.Email,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Department: emp.Department,
		Position:   emp.Position,
		Phone:      emp.Phone,
		Address:    emp.Address,
		Gender:     emp.Gender,
		Salary:     emp.Salary,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.HireDate != nil {
		hd := emp.HireDate.Format("2006-01-02")
		resp.HireDate = &hd
	}
	return resp
}
