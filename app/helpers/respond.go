package helpers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// APIResponse is the JSON envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func NewRenderer() *render.Render {
	return render.New(render.Options{
		IndentJSON: false,
	})
}

func RespondSuccess(rnd *render.Render, w http.ResponseWriter, status int, data interface{}) {
	if err := rnd.JSON(w, status, APIResponse{Success: true, Data: data}); err != nil {
		log.Printf("RespondSuccess: failed to write response: %v", err)
	}
}

func RespondMessage(rnd *render.Render, w http.ResponseWriter, status int, data interface{}, message string) {
	if err := rnd.JSON(w, status, APIResponse{Success: true, Data: data, Message: message}); err != nil {
		log.Printf("RespondMessage: failed to write response: %v", err)
	}
}

func RespondError(rnd *render.Render, w http.ResponseWriter, status int, errMsg string) {
	if err := rnd.JSON(w, status, APIResponse{Success: false, Error: errMsg}); err != nil {
		log.Printf("RespondError: failed to write response: %v", err)
	}
}

func RespondValidationErrors(rnd *render.Render, w http.ResponseWriter, errs validator.ValidationErrors) {
	resp := APIResponse{
		Success: false,
		Error:   "Validation failed",
		Data:    FormatValidationErrors(errs),
	}
	if err := rnd.JSON(w, http.StatusBadRequest, resp); err != nil {
		log.Printf("RespondValidationErrors: failed to write response: %v", err)
	}
}
