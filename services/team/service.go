package team

import (
	"context"

	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"
)

// Service manages team members and their roles.
type Service interface {
	Employees(ctx context.Context, token string) ([]models.Employee, error)
	SetEmployeeStatus(ctx context.Context, token, employeeID, status string) error
	Roles(ctx context.Context, token string) ([]models.Role, error)
	AssignRole(ctx context.Context, token, userID, roleID string) error
}

// DefaultTeamService is the production implementation.
type DefaultTeamService struct {
	API *upstream.Client
}

func (s *DefaultTeamService) Employees(ctx context.Context, token string) ([]models.Employee, error) {
	return s.API.Employees(ctx, token)
}

func (s *DefaultTeamService) SetEmployeeStatus(ctx context.Context, token, employeeID, status string) error {
	if status != "active" && status != "inactive" {
		return utils.NewValidationError("status", "status must be active or inactive")
	}
	return s.API.UpdateEmployeeStatus(ctx, token, employeeID, status)
}

func (s *DefaultTeamService) Roles(ctx context.Context, token string) ([]models.Role, error) {
	return s.API.Roles(ctx, token)
}

func (s *DefaultTeamService) AssignRole(ctx context.Context, token, userID, roleID string) error {
	if userID == "" {
		return utils.NewValidationError("userId", "user is required")
	}
	if roleID == "" {
		return utils.NewValidationError("roleId", "role is required")
	}
	return s.API.AssignUserRole(ctx, token, userID, roleID)
}

var _ Service = (*DefaultTeamService)(nil)
