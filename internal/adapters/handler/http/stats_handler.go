package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
	"github.com/comitanigiacomo/kanso-insights/internal/core/services"
)

var errMonthOutOfRange = errors.New("month must be between 1 and 12")

type StatsHandler struct {
	svc *services.StatsService
	log *slog.Logger
}

func NewStatsHandler(svc *services.StatsService, log *slog.Logger) *StatsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StatsHandler{
		svc: svc,
		log: log.With("component", "http"),
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/daily", h.GetDailyStats)
		stats.GET("/weekly", h.GetWeeklyStats)
		stats.GET("/monthly", h.GetMonthlyStats)
		stats.GET("/streak", h.GetStreak)
	}
}

// dateParam reads a YYYY-MM-DD query parameter, falling back when it is absent.
func dateParam(c *gin.Context, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return domain.ParseDate(name, raw)
}

func (h *StatsHandler) GetDailyStats(c *gin.Context) {
	date, err := dateParam(c, "date", h.svc.Today())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	stats, err := h.svc.GetDailyStats(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	weekStart, err := dateParam(c, "week_start", services.StartOfWeek(h.svc.Today()))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	stats, err := h.svc.GetWeeklyStats(c.Request.Context(), weekStart)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetMonthlyStats(c *gin.Context) {
	today := h.svc.Today()
	year, month := today.Year(), int(today.Month())

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, h.log, &domain.ParseError{Field: "year", Value: raw, Err: err})
			return
		}
		year = v
	}

	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, h.log, &domain.ParseError{Field: "month", Value: raw, Err: err})
			return
		}
		if v < 1 || v > 12 {
			respondError(c, h.log, &domain.ParseError{Field: "month", Value: raw, Err: errMonthOutOfRange})
			return
		}
		month = v
	}

	stats, err := h.svc.GetMonthlyStats(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetStreak(c *gin.Context) {
	streak, err := h.svc.GetCurrentStreak(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_streak": streak})
}
