package rest

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/stockmarket/notifier/pkg/errors"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusOf maps error codes to HTTP statuses. Errors without details are internal.
func statusOf(err error) (int, errorResponse) {
	var details *errors.ErrorDetails
	if !stderrors.As(err, &details) {
		return http.StatusInternalServerError, errorResponse{
			Code:    errors.GeneralInternalServerError.String(),
			Message: "internal server error",
		}
	}

	resp := errorResponse{Code: details.Code, Message: details.Message, Field: details.Field}
	switch errors.ErrorCode(details.Code) {
	case errors.GeneralBadRequestError:
		return http.StatusBadRequest, resp
	case errors.StockEventNotFound, errors.GeneralNotFoundError:
		return http.StatusNotFound, resp
	default:
		return http.StatusInternalServerError, errorResponse{Code: details.Code, Message: "internal server error"}
	}
}
