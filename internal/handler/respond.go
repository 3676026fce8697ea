package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"canteen/internal/apperror"
	"canteen/internal/invoice"
	"canteen/internal/logger"
	"canteen/internal/menu"
	"canteen/internal/order"
	"canteen/internal/user"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromCtx(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps a domain error onto a status code and a short message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	http.Error(w, msg, status)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, menu.ErrMissingField):
		return http.StatusBadRequest, "Missing item or price"
	case errors.Is(err, menu.ErrInvalidPrice):
		return http.StatusBadRequest, "Invalid price value"
	case errors.Is(err, order.ErrInvalidQuantity):
		return http.StatusBadRequest, "Invalid quantity"
	case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrInvalidTransition):
		return http.StatusBadRequest, "Invalid status"
	case errors.Is(err, user.ErrMissingData):
		return http.StatusBadRequest, "Missing data"
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Login Failed"
	case errors.Is(err, invoice.ErrRenderTimeout):
		return http.StatusGatewayTimeout, "Invoice generation timed out"
	}

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest, "Bad request"
	case apperror.KindNotFound:
		return http.StatusNotFound, "Not found"
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized, "Unauthorized"
	case apperror.KindExternal:
		return http.StatusBadGateway, "Invoice generation failed"
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// pathID parses the {id} path segment. ok is false for anything that is not
// a non-negative integer.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
