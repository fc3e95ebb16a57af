package handlers

import (
	"errors"
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/services/order"
	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses: validation
// failures 400, authorization loss 401 (with the one cross-cutting side
// effect of clearing the session), server rejections 422 with the verbatim
// upstream message, network failures 502/504. Anything else is a 500 with
// the per-endpoint fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	if middleware.HandleUpstreamAuthLoss(c, err) {
		return
	}

	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, verr.Message, verr.Field)
		return
	}

	if errors.Is(err, order.ErrDraftNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Order draft not found or expired", "")
		return
	}

	var rej *upstream.Rejection
	if errors.As(err, &rej) {
		message := rej.Message
		if message == "" {
			message = fallback
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, message, "")
		return
	}

	var nerr *upstream.NetworkError
	if errors.As(err, &nerr) {
		status := http.StatusBadGateway
		if nerr.Timeout {
			status = http.StatusGatewayTimeout
		}
		utils.JSONError(c, status, fallback, "The service is unreachable. Please try again.")
		return
	}

	var aerr *upstream.APIError
	if errors.As(err, &aerr) {
		message := aerr.Message
		if message == "" {
			message = fallback
		}
		utils.JSONError(c, http.StatusBadGateway, message, "")
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, fallback, "")
}
