package upstream

import (
	"context"
	"net/http"

	"github.com/eassylife/b2bportal/models"
)

type employeesEnvelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    []models.Employee `json:"data"`
}

// Employees lists team members under the current user.
func (c *Client) Employees(ctx context.Context, token string) ([]models.Employee, error) {
	var env employeesEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/get-user-details", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}

type statusEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// UpdateEmployeeStatus toggles an employee between active and inactive.
func (c *Client) UpdateEmployeeStatus(ctx context.Context, token, employeeID, status string) error {
	body := map[string]string{"status": status}
	var env statusEnvelope
	if err := c.do(ctx, token, http.MethodPatch, "b2b/employees/"+employeeID+"/status", nil, body, &env); err != nil {
		return err
	}
	if !env.Status {
		return &Rejection{Message: env.Message}
	}
	return nil
}

type rolesEnvelope struct {
	Status  bool          `json:"status"`
	Message string        `json:"message"`
	Data    []models.Role `json:"data"`
}

// Roles lists all assignable roles.
func (c *Client) Roles(ctx context.Context, token string) ([]models.Role, error) {
	var env rolesEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/roles/all", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}

// AssignUserRole reassigns an employee's role.
func (c *Client) AssignUserRole(ctx context.Context, token, userID, roleID string) error {
	body := map[string]string{"userId": userID, "roleId": roleID}
	var env statusEnvelope
	if err := c.do(ctx, token, http.MethodPut, "b2b/roles/user-role", nil, body, &env); err != nil {
		return err
	}
	if !env.Status {
		return &Rejection{Message: env.Message}
	}
	return nil
}
