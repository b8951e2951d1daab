package dashboard

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
	"github.com/Nazarious-ucu/weather-dashboard/internal/services/forecast"
)

const (
	defaultTimeout = 10 * time.Second

	pageTemplate = "dashboard.html"

	// ErrorPrefix starts every inline fetch error shown on the page.
	ErrorPrefix = "Error fetching data: "
)

//go:embed templates/*.html
var templatesFS embed.FS

type forecastFetcher interface {
	Fetch(ctx context.Context) (models.WeatherSnapshot, error)
	Invalidate(ctx context.Context) error
}

type presenter interface {
	Present(s models.WeatherSnapshot) models.Dashboard
}

type stateReporter interface {
	State() string
}

type Handler struct {
	fetcher   forecastFetcher
	presenter presenter
	upstream  stateReporter
	page      *template.Template
	title     string
	timeout   time.Duration
	logger    zerolog.Logger
}

type pageData struct {
	Title     string
	Error     string
	Dashboard *models.Dashboard
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func NewHandler(fetcher forecastFetcher, p presenter, title string, logger zerolog.Logger) (*Handler, error) {
	page, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		fetcher:   fetcher,
		presenter: p,
		page:      page,
		title:     title,
		timeout:   defaultTimeout,
		logger:    logger,
	}, nil
}

// WithTimeout bounds the work a single request may wait on. It must stay
// below the server write timeout so the error page can still be written.
func (h *Handler) WithTimeout(d time.Duration) *Handler {
	h.timeout = d
	return h
}

// WithUpstream makes Health report the upstream breaker state.
func (h *Handler) WithUpstream(upstream stateReporter) *Handler {
	h.upstream = upstream
	return h
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	return template.New(pageTemplate).
		Funcs(template.FuncMap{"optional": optional}).
		ParseFS(templatesFS, "templates/*.html")
}

// Dashboard
// @Summary Weather dashboard page
// @Description Renders current conditions, the next 24 hours and the raw hourly table.
// @Tags dashboard
// @Produce html
// @Success 200
// @Failure 502
// @Router / [get]
func (h *Handler) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	d, err := h.load(ctx)
	if err != nil {
		h.renderPage(c, http.StatusBadGateway, pageData{Title: h.title, Error: ErrorPrefix + err.Error()})
		return
	}
	h.renderPage(c, http.StatusOK, pageData{Title: h.title, Dashboard: &d})
}

// Refresh
// @Summary Refresh data
// @Description Drops the cached forecast and redirects back to the dashboard.
// @Tags dashboard
// @Success 303
// @Failure 500
// @Router /refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.fetcher.Invalidate(ctx); err != nil {
		h.renderPage(c, http.StatusInternalServerError,
			pageData{Title: h.title, Error: "Error refreshing data: " + err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// GetForecast
// @Summary Get forecast
// @Description Returns the dashboard model as JSON.
// @Tags forecast
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 502 {object} errorResponse
// @Router /api/v1/forecast [get]
func (h *Handler) GetForecast(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	d, err := h.load(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, toErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// RefreshForecast
// @Summary Refresh forecast
// @Description Drops the cached forecast and returns a freshly fetched dashboard model.
// @Tags forecast
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 500 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/v1/forecast/refresh [post]
func (h *Handler) RefreshForecast(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.fetcher.Invalidate(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	d, err := h.load(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, toErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// Health
// @Summary Health check
// @Description Reports liveness and, when known, the Open-Meteo breaker state.
// @Tags health
// @Produce json
// @Success 200
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	resp := gin.H{"status": "ok"}
	if h.upstream != nil {
		resp["upstream"] = h.upstream.State()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) load(ctx context.Context) (models.Dashboard, error) {
	snapshot, err := h.fetcher.Fetch(ctx)
	if err != nil {
		h.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("failed to fetch forecast")
		return models.Dashboard{}, err
	}
	return h.presenter.Present(snapshot), nil
}

func (h *Handler) renderPage(c *gin.Context, code int, data pageData) {
	c.Render(code, render.HTML{Template: h.page, Name: pageTemplate, Data: data})
}

func toErrorResponse(err error) errorResponse {
	resp := errorResponse{Error: err.Error()}
	var failure *models.FetchFailure
	if errors.As(err, &failure) {
		resp.Reason = string(failure.Reason)
	}
	return resp
}

func optional(v *float64) string {
	if v == nil {
		return forecast.Placeholder
	}
	return forecast.FormatNumber(*v)
}
