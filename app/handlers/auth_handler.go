package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	userRepo  repositories.UserRepositoryImpl
	store     sessions.SessionStore
	render    *render.Render
	validator *validator.Validate
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, store sessions.SessionStore, rnd *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		store:     store,
		render:    rnd,
		validator: validator.New(),
	}
}

// UserPayload is the API shape of a user; isAdmin is derived from the role so
// clients never need to know role strings.
type UserPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
	IsActive  bool   `json:"isActive"`
}

func NewUserPayload(user *models.User) UserPayload {
	return UserPayload{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		IsAdmin:   user.IsAdmin(),
		IsActive:  user.IsActive,
	}
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=20"`
	Password  string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(&input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		helpers.RespondValidationErrors(h.render, w, validationErrors)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), input.Email)
	if err != nil {
		log.Printf("Register: error checking email %s: %v", input.Email, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to register")
		return
	}
	if existing != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Email is already registered")
		return
	}

	user := &models.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Password:  input.Password,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("Register: failed to create user %s: %v", input.Email, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to register")
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		log.Printf("Register: failed to start session for %s: %v", user.ID, err)
	}

	helpers.RespondSuccess(h.render, w, http.StatusCreated, NewUserPayload(user))
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(&input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		helpers.RespondValidationErrors(h.render, w, validationErrors)
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), input.Email)
	if err != nil {
		log.Printf("Login: error finding user %s: %v", input.Email, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(input.Password)) {
		helpers.RespondError(h.render, w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.IsActive {
		helpers.RespondError(h.render, w, http.StatusForbidden, "Account is deactivated")
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		log.Printf("Login: failed to start session for %s: %v", user.ID, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, NewUserPayload(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Logged out")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok || user == nil {
		helpers.RespondError(h.render, w, http.StatusUnauthorized, "Authentication required")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, NewUserPayload(user))
}
