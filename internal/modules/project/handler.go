package project

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"portfolio/internal/domain"
	"portfolio/internal/modules/upload"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// MediaStore saves an incoming image and returns its stored record.
type MediaStore interface {
	Store(ctx context.Context, fileHeader *multipart.FileHeader) (*domain.Upload, error)
}

type Handler struct {
	service *Service
	media   MediaStore
}

func NewHandler(service *Service, media MediaStore) *Handler {
	return &Handler{service: service, media: media}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/projects", h.List)
	api.GET("/projects/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/projects", h.Create)
	protected.PUT("/projects/:id", h.Update)
	protected.DELETE("/projects/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list projects")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load project")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"project": p})
}

// Create accepts multipart/form-data (image as the "image" file field) or a
// plain JSON body with an image URL.
func (h *Handler) Create(c *gin.Context) {
	in, ok := h.bindCreate(c)
	if !ok {
		return
	}

	p, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"title, description, technologies, github_url, demo_url and image are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create project")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": p})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in, ok := h.bindUpdate(c)
	if !ok {
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project fields")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update project")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete project")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ---- binding helpers ----

type projectJSON struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Technologies json.RawMessage `json:"technologies"`
	Image        *string         `json:"image"`
	GithubURL    *string         `json:"github_url"`
	DemoURL      *string         `json:"demo_url"`
	Role         *string         `json:"role"`
	IsMini       *bool           `json:"is_mini"`
}

func (h *Handler) bindCreate(c *gin.Context) (CreateInput, bool) {
	var in CreateInput

	if isMultipart(c) {
		in.Title = c.PostForm("title")
		in.Description = c.PostForm("description")
		in.Technologies = ParseTechnologies(c.PostForm("technologies"))
		in.GithubURL = c.PostForm("github_url")
		in.DemoURL = c.PostForm("demo_url")
		in.Role = c.PostForm("role")
		in.IsMini = parseFormBool(c.PostForm("is_mini"))
		in.Image = c.PostForm("image")

		if url, ok := h.storeImage(c); ok {
			in.Image = url
		} else if c.IsAborted() {
			return in, false
		}
		return in, true
	}

	var body projectJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return in, false
	}

	in.Title = strVal(body.Title)
	in.Description = strVal(body.Description)
	in.Technologies = parseTechnologiesJSON(body.Technologies)
	in.Image = strVal(body.Image)
	in.GithubURL = strVal(body.GithubURL)
	in.DemoURL = strVal(body.DemoURL)
	in.Role = strVal(body.Role)
	if body.IsMini != nil {
		in.IsMini = *body.IsMini
	}
	return in, true
}

func (h *Handler) bindUpdate(c *gin.Context) (UpdateInput, bool) {
	var in UpdateInput

	if isMultipart(c) {
		if v, ok := c.GetPostForm("title"); ok {
			in.Title = &v
		}
		if v, ok := c.GetPostForm("description"); ok {
			in.Description = &v
		}
		if v, ok := c.GetPostForm("technologies"); ok {
			in.Technologies = ParseTechnologies(v)
		}
		if v, ok := c.GetPostForm("github_url"); ok {
			in.GithubURL = &v
		}
		if v, ok := c.GetPostForm("demo_url"); ok {
			in.DemoURL = &v
		}
		if v, ok := c.GetPostForm("role"); ok {
			in.Role = &v
		}
		if v, ok := c.GetPostForm("is_mini"); ok {
			b := parseFormBool(v)
			in.IsMini = &b
		}
		if v, ok := c.GetPostForm("image"); ok {
			in.Image = &v
		}

		if url, ok := h.storeImage(c); ok {
			in.Image = &url
		} else if c.IsAborted() {
			return in, false
		}
		return in, true
	}

	var body projectJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return in, false
	}

	in.Title = body.Title
	in.Description = body.Description
	if body.Technologies != nil {
		in.Technologies = parseTechnologiesJSON(body.Technologies)
	}
	in.Image = body.Image
	in.GithubURL = body.GithubURL
	in.DemoURL = body.DemoURL
	in.Role = body.Role
	in.IsMini = body.IsMini
	return in, true
}

// storeImage saves the optional multipart "image" file. The bool reports
// whether a file was stored; upload failures abort the request.
func (h *Handler) storeImage(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", false // no file attached
	}

	u, err := h.media.Store(c.Request.Context(), fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unsupported image type")
		case errors.Is(err, upload.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image exceeds the size limit")
		case errors.Is(err, upload.ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image file is empty")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to store image")
		}
		c.Abort()
		return "", false
	}
	return u.FileURL, true
}

// parseTechnologiesJSON accepts `["Go","React"]` or `"Go, React"`.
func parseTechnologiesJSON(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return trimNonEmpty(list)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return ParseTechnologies(s)
	}
	return nil
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return 0, false
	}
	return id, true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func parseFormBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
