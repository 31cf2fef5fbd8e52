package rest

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/internal/service/blog"
)

// blogService defines the minimal interface needed by BlogHandler.
type blogService interface {
	Create(ctx context.Context, input blog.CreateInput) (*domain.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context, input blog.ListInput) ([]*domain.Blog, error)
	Update(ctx context.Context, input blog.UpdateInput) (*domain.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Tags(ctx context.Context) ([]domain.Tag, error)
	RecordVisit(ctx context.Context, blogID uuid.UUID, visit blog.Visit) error
	Visitors(ctx context.Context, input blog.VisitorsInput) ([]*domain.Visitor, int64, error)
}

// BlogHandler serves blog, tag and visitor endpoints.
type BlogHandler struct {
	svc blogService
	log *slog.Logger
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(svc blogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, log: logger.With("handler", "blog")}
}

type createBlogRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

// updateBlogRequest keeps the nil-vs-empty distinction for Tags: a request
// without the field leaves the tag set untouched, an empty array clears it.
type updateBlogRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

type blogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"authorId"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type tagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type visitorResponse struct {
	ID        string    `json:"id"`
	IPHash    string    `json:"ipHash"`
	UserAgent string    `json:"userAgent"`
	Referer   *string   `json:"referer"`
	CreatedAt time.Time `json:"createdAt"`
}

type visitorsResponse struct {
	Total    int64             `json:"total"`
	Visitors []visitorResponse `json:"visitors"`
}

// Create handles POST /blogs.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.svc.Create(r.Context(), blog.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBlogResponse(b))
}

// Get handles GET /blogs/{id}. Every successful read also records a visit;
// a failure there is logged and dropped so the read path stays intact.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RecordVisit(r.Context(), id, blog.Visit{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}); err != nil {
		h.log.WarnContext(r.Context(), "record visit failed",
			slog.String("blog_id", id.String()),
			slog.String("error", err.Error()))
	}

	writeJSON(w, http.StatusOK, toBlogResponse(b))
}

// List handles GET /blogs?author=&tag=&search=&limit=&offset=.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	input := blog.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	if v := r.URL.Query().Get("author"); v != "" {
		authorID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid author")
			return
		}
		input.AuthorID = &authorID
	}
	if v := r.URL.Query().Get("tag"); v != "" {
		input.TagName = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		input.Search = &v
	}

	blogs, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]blogResponse, 0, len(blogs))
	for _, b := range blogs {
		resp = append(resp, toBlogResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /blogs/{id}.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateBlogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	b, err := h.svc.Update(r.Context(), blog.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBlogResponse(b))
}

// Delete handles DELETE /blogs/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Visitors handles GET /blogs/{id}/visitors.
func (h *BlogHandler) Visitors(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	visitors, total, err := h.svc.Visitors(r.Context(), blog.VisitorsInput{
		BlogID: id,
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := visitorsResponse{
		Total:    total,
		Visitors: make([]visitorResponse, 0, len(visitors)),
	}
	for _, v := range visitors {
		resp.Visitors = append(resp.Visitors, visitorResponse{
			ID:        v.ID.String(),
			IPHash:    v.IPHash,
			UserAgent: v.UserAgent,
			Referer:   v.Referer,
			CreatedAt: v.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Tags handles GET /tags.
func (h *BlogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Tags(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, tagResponse{ID: t.ID.String(), Name: t.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toBlogResponse(b *domain.Blog) blogResponse {
	tags := make([]string, 0, len(b.Tags))
	for _, t := range b.Tags {
		tags = append(tags, t.Name)
	}
	return blogResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		AuthorID:    b.AuthorID.String(),
		Tags:        tags,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// clientIP prefers the first X-Forwarded-For hop when the server sits behind
// a proxy, falling back to the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
