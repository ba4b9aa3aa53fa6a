package photolog

import (
	"errors"
	"net/http"

	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the interactions any visitor may perform:
// reads, idempotent init, like/unlike and commenting.
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	log := api.Group("/photolog")
	{
		log.GET("", h.List)
		log.POST("/init", h.Init)
		log.GET("/:photoId", h.Get)
		log.GET("/:photoId/comments", h.ListComments)
		log.POST("/:photoId/like", h.Like)
		log.POST("/:photoId/unlike", h.Unlike)
		log.POST("/:photoId/comment", h.AddComment)
	}
}

// RegisterModerationRoutes wires the destructive operations. main decides
// whether they sit behind the auth guard (the default) or stay open.
func (h *Handler) RegisterModerationRoutes(group *gin.RouterGroup) {
	log := group.Group("/photolog")
	{
		log.PUT("/:photoId", h.Update)
		log.DELETE("/:photoId", h.Delete)
		log.POST("/:photoId/reset-likes", h.ResetLikes)
		log.DELETE("/:photoId/comment/:commentId", h.DeleteComment)
		log.DELETE("/:photoId/comments", h.ClearComments)
	}
}

func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list photo entries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) Init(c *gin.Context) {
	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "photo_id is required")
		return
	}

	result, err := h.service.Init(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "photo_id is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to init photo entry")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	response.Success(c, status, gin.H{"entry": result.Entry})
}

func (h *Handler) Get(c *gin.Context) {
	entry, err := h.service.Get(c.Request.Context(), c.Param("photoId"))
	if err != nil {
		h.renderError(c, err, "Failed to load photo entry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": entry})
}

func (h *Handler) Like(c *gin.Context) {
	likes, err := h.service.Like(c.Request.Context(), c.Param("photoId"))
	if err != nil {
		h.renderError(c, err, "Failed to like photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes": likes})
}

func (h *Handler) Unlike(c *gin.Context) {
	likes, err := h.service.Unlike(c.Request.Context(), c.Param("photoId"))
	if err != nil {
		h.renderError(c, err, "Failed to unlike photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes": likes})
}

func (h *Handler) ResetLikes(c *gin.Context) {
	if err := h.service.ResetLikes(c.Request.Context(), c.Param("photoId")); err != nil {
		h.renderError(c, err, "Failed to reset likes")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"likes": 0})
}

func (h *Handler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "text is required")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), c.Param("photoId"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"text must be 1-500 characters and author at most 50")
			return
		}
		h.renderError(c, err, "Failed to add comment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("photoId"))
	if err != nil {
		h.renderError(c, err, "Failed to list comments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"comments": comments})
}

func (h *Handler) DeleteComment(c *gin.Context) {
	err := h.service.DeleteComment(c.Request.Context(), c.Param("photoId"), c.Param("commentId"))
	if err != nil {
		h.renderError(c, err, "Failed to delete comment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ClearComments(c *gin.Context) {
	if err := h.service.ClearComments(c.Request.Context(), c.Param("photoId")); err != nil {
		h.renderError(c, err, "Failed to clear comments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	entry, err := h.service.Update(c.Request.Context(), c.Param("photoId"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update photo entry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": entry})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("photoId")); err != nil {
		h.renderError(c, err, "Failed to delete photo entry")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Photo entry not found")
	case errors.Is(err, ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", fallback)
	}
}
