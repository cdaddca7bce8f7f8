package events

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aarya-club/backend/internal/models"
	"github.com/aarya-club/backend/pkg/response"
)

// Handler handles event HTTP endpoints.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates an event handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List handles GET /api/events.
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list events", zap.Error(err))
		response.Internal(c, "failed to list events")
		return
	}
	if list == nil {
		list = []models.Event{}
	}
	response.OK(c, list)
}

// Get handles GET /api/events/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	e, err := h.service.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		h.logger.Error("get event", zap.Error(err))
		response.Internal(c, "failed to get event")
		return
	}
	response.OK(c, e)
}

// Create handles POST /api/events (admin only).
func (h *Handler) Create(c *gin.Context) {
	var e models.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequest(c, response.BindingMessage(err))
		return
	}
	msg, err := h.service.Add(c.Request.Context(), &e)
	if err != nil {
		h.logger.Error("create event", zap.Error(err))
		response.Internal(c, "failed to create event")
		return
	}
	response.Message(c, msg)
}

// Update handles PUT /api/events/:id (admin only). The id always comes from
// the path; any id in the body is ignored.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	var e models.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequest(c, response.BindingMessage(err))
		return
	}
	msg, err := h.service.Update(c.Request.Context(), id, &e)
	if err != nil {
		h.logger.Error("update event", zap.Error(err))
		response.Internal(c, "failed to update event")
		return
	}
	response.Message(c, msg)
}

// Delete handles DELETE /api/events/:id (admin only).
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	msg, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		h.logger.Error("delete event", zap.Error(err))
		response.Internal(c, "failed to delete event")
		return
	}
	response.Message(c, msg)
}
