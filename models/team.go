package models

// Role is an assignable team role.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EmployeeLocation is the location record attached to an employee.
type EmployeeLocation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Parent struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	} `json:"parent"`
}

// Employee is a team member under the current user.
type Employee struct {
	B2BUser
	Location EmployeeLocation `json:"location"`
	Role     Role             `json:"role"`
}
