package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/unrolled/render"
)

type UserAdminHandler struct {
	userRepo repositories.UserRepositoryImpl
	render   *render.Render
}

func NewUserAdminHandler(userRepo repositories.UserRepositoryImpl, rnd *render.Render) *UserAdminHandler {
	return &UserAdminHandler{
		userRepo: userRepo,
		render:   rnd,
	}
}

type userPayload struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"isAdmin"`
	IsActive   bool   `json:"isActive"`
	OrderCount int64  `json:"orderCount"`
}

func newUserPayload(user *models.User, orderCount int64) userPayload {
	return userPayload{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Phone:      user.Phone,
		Role:       user.Role,
		IsAdmin:    user.IsAdmin(),
		IsActive:   user.IsActive,
		OrderCount: orderCount,
	}
}

type userListPayload struct {
	Users      []userPayload `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

func (h *UserAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	users, total, err := h.userRepo.GetAllPaginated(r.Context(), limit, offset)
	if err != nil {
		log.Printf("admin List users: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	payloads := make([]userPayload, 0, len(users))
	for i := range users {
		count, err := h.userRepo.CountOrders(r.Context(), users[i].ID)
		if err != nil {
			log.Printf("admin List users: failed to count orders for %s: %v", users[i].ID, err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		payloads = append(payloads, newUserPayload(&users[i], count))
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, userListPayload{
		Users:      payloads,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *UserAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.userRepo.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("admin Get user %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "User not found")
		return
	}

	count, err := h.userRepo.CountOrders(r.Context(), id)
	if err != nil {
		log.Printf("admin Get user %s: failed to count orders: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, newUserPayload(user, count))
}

type updateUserInput struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// Update changes a user's role or active flag. Admins cannot demote or
// deactivate themselves; locking out the last admin by accident would need a
// database fix to recover from.
func (h *UserAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input updateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), id)
	if err != nil {
		log.Printf("admin Update user %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if user == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "User not found")
		return
	}

	if actor := currentUser(r); actor != nil && actor.ID == id {
		if input.Role != nil && *input.Role != models.RoleAdmin {
			helpers.RespondError(h.render, w, http.StatusBadRequest, "You cannot demote yourself")
			return
		}
		if input.IsActive != nil && !*input.IsActive {
			helpers.RespondError(h.render, w, http.StatusBadRequest, "You cannot deactivate yourself")
			return
		}
	}

	if input.Role != nil {
		if *input.Role != models.RoleAdmin && *input.Role != models.RoleCustomer {
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid role")
			return
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := h.userRepo.Update(r.Context(), user); err != nil {
		log.Printf("admin Update user %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	count, err := h.userRepo.CountOrders(r.Context(), id)
	if err != nil {
		count = 0
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, newUserPayload(user, count), "User updated")
}
