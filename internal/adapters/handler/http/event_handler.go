package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
	"github.com/comitanigiacomo/kanso-insights/internal/core/services"
)

type EventHandler struct {
	svc *services.EventService
	log *slog.Logger
}

func NewEventHandler(svc *services.EventService, log *slog.Logger) *EventHandler {
	if log == nil {
		log = slog.Default()
	}
	return &EventHandler{
		svc: svc,
		log: log.With("component", "http"),
	}
}

type createEventRequest struct {
	Name            string     `json:"name" binding:"required"`
	Category        string     `json:"category"`
	Timestamp       *time.Time `json:"timestamp"`
	ComplianceLevel *int       `json:"compliance_level"`
	Notes           *string    `json:"notes"`
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/today", h.Today)
		events.GET("/week", h.ThisWeek)
		events.GET("/count", h.Count)
		events.GET("/:id", h.Get)
		events.DELETE("/:id", h.Delete)
	}
	router.GET("/categories", h.Categories)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.svc.Create(c.Request.Context(), services.CreateEventInput{
		Name:            req.Name,
		Category:        req.Category,
		Timestamp:       req.Timestamp,
		ComplianceLevel: req.ComplianceLevel,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// List serves the whole log, one category (?category=) or a time window (?from=&to=).
func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if category, ok := c.GetQuery("category"); ok {
		events, err := h.svc.ListByCategory(ctx, category)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	fromStr, hasFrom := c.GetQuery("from")
	toStr, hasTo := c.GetQuery("to")
	if hasFrom || hasTo {
		from, err := domain.ParseTimestamp("from", fromStr)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		to, err := domain.ParseTimestamp("to", toStr)
		if err != nil {
			respondError(c, h.log, err)
			return
		}

		events, err := h.svc.ListByRange(ctx, from, to)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, events)
		return
	}

	events, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Today(c *gin.Context) {
	events, err := h.svc.Today(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ThisWeek(c *gin.Context) {
	events, err := h.svc.ThisWeek(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *EventHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.CategoryNames())
}
