package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Me(ctx context.Context) (*domain.User, *domain.Profile, error)
	List(ctx context.Context, input user.ListInput) ([]*domain.User, error)
	UpsertProfile(ctx context.Context, input user.UpsertProfileInput) (*domain.Profile, error)
	DeleteAccount(ctx context.Context) error
}

// UserHandler serves account and profile endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type profileResponse struct {
	ID        string  `json:"id"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	Website   *string `json:"website"`
}

type meResponse struct {
	userResponse
	Profile *profileResponse `json:"profile"`
}

type upsertProfileRequest struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	Website   *string `json:"website"`
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, p, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := meResponse{userResponse: toUserResponse(u)}
	if p != nil {
		pr := toProfileResponse(p)
		resp.Profile = &pr
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context(), user.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpsertProfile handles PUT /users/me/profile.
func (h *UserHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req upsertProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpsertProfile(r.Context(), user.UpsertProfileInput{
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Website:   req.Website,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// DeleteAccount handles DELETE /users/me.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID.String(),
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Website:   p.Website,
	}
}
