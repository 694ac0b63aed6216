package response

import (
	"context"
	"encoding/json"
	"evently-catalog-backend/apperror"
	"evently-catalog-backend/logger"
	"fmt"
	"net/http"
)

type ErrorResponse struct {
	StatusCode  int    `json:"-"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	logger.Errorf(ctx, r.Error())
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

// FromError maps the normalized error kinds onto their HTTP treatment:
// not-found is 404, unauthorized is 403, everything else is 500.
func FromError(err error) ErrorResponse {
	switch {
	case apperror.IsNotFound(err):
		return ResourceNotFound("Requested resource not found", err.Error())
	case apperror.IsUnauthorized(err):
		return Forbidden(err.Error())
	case apperror.IsInvalid(err):
		return InvalidData(err.Error())
	default:
		return SomethingWrong()
	}
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD_REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT_FOUND",
		Description: description,
	}
}

func Unauthorized() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "No valid auth token",
		Status:     "UNAUTHORISED",
	}
}

func Forbidden(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusForbidden,
		Success:     false,
		Message:     "Not allowed to modify this resource",
		Status:      "FORBIDDEN",
		Description: description,
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func InvalidData(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Invalid data passed",
		Status:      "INVALID_DATA",
		Description: description,
	}
}
