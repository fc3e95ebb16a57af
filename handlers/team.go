package handlers

import (
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/services/team"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves the roles/team management view.
type TeamHandler struct {
	Service team.Service
}

func NewTeamHandler(svc team.Service) *TeamHandler {
	return &TeamHandler{Service: svc}
}

func (h *TeamHandler) EmployeesHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	employees, err := h.Service.Employees(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to load employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *TeamHandler) SetStatusHandler(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status", err.Error())
		return
	}

	if err := h.Service.SetEmployeeStatus(c.Request.Context(), sess.Token, c.Param("id"), req.Status); err != nil {
		respondError(c, err, "Failed to update employee status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *TeamHandler) RolesHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	roles, err := h.Service.Roles(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to load roles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *TeamHandler) AssignRoleHandler(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req struct {
		UserID string `json:"userId" binding:"required"`
		RoleID string `json:"roleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid role assignment", err.Error())
		return
	}

	if err := h.Service.AssignRole(c.Request.Context(), sess.Token, req.UserID, req.RoleID); err != nil {
		respondError(c, err, "Failed to assign role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
