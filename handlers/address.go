package handlers

import (
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/services/address"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
)

// AddressHandler serves the address book and the place-component extraction
// used by the address picker.
type AddressHandler struct {
	Service address.Service
}

func NewAddressHandler(svc address.Service) *AddressHandler {
	return &AddressHandler{Service: svc}
}

func (h *AddressHandler) ListHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	addresses, err := h.Service.List(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to load addresses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

func (h *AddressHandler) AddHandler(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid address", err.Error())
		return
	}
	if req.B2BCustomerID == "" && sess.User != nil {
		req.B2BCustomerID = sess.User.ID
	}

	created, err := h.Service.Add(c.Request.Context(), sess.Token, req)
	if err != nil {
		respondError(c, err, "Failed to add address")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address added successfully", "address": created})
}

// ExtractPlaceHandler maps geocoder components onto address-form fields.
// Purely local; the maps provider itself is the browser's concern.
func (h *AddressHandler) ExtractPlaceHandler(c *gin.Context) {
	var req struct {
		Components []address.PlaceComponent `json:"components" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid place components", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address.FromPlaceComponents(req.Components)})
}
