package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dhl_location_finder/internal/locationfinder/service"
	"dhl_location_finder/internal/locationfinder/transport"
	"dhl_location_finder/platform/httpkit"
)

const (
	msgInvalidRequest = "invalid request"
	pageTitle         = "DHL location finder"
)

// Renderer renders a named HTML page.
type Renderer interface {
	Render(c *gin.Context, status int, name string, data any)
}

// Handler handles HTTP requests for location searches.
type Handler struct {
	svc         *service.Service
	views       Renderer
	pagePath    string
	settingsURL string
}

// New creates a new location finder handler.
func New(svc *service.Service, views Renderer, pagePath, settingsURL string) *Handler {
	return &Handler{svc: svc, views: views, pagePath: pagePath, settingsURL: settingsURL}
}

// Search runs a location search and returns JSON.
// GET /api/v1/locations?country=&city=&postCode=
func (h *Handler) Search(c *gin.Context) {
	var query transport.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result := h.svc.Search(c.Request.Context(), query)
	if result.Err != nil {
		httpkit.HandleError(c, result.Err)
		return
	}
	httpkit.OK(c, transport.SearchResponse{
		Outcome:     string(result.Outcome),
		CountryCode: result.CountryCode,
		Locations:   result.Locations,
		Message:     result.Message,
	})
}

type searchPage struct {
	Title       string
	Outcome     string
	SettingsURL string
	FormAction  string
	Query       transport.SearchQuery
	Locations   []transport.FilteredLocation
	Message     string
}

// Page renders the search form and, once submitted, its result.
// GET /dhl-location-finder
func (h *Handler) Page(c *gin.Context) {
	var query transport.SearchQuery
	_ = c.ShouldBindQuery(&query)

	result := h.svc.Search(c.Request.Context(), query)
	h.views.Render(c, http.StatusOK, "location_finder", searchPage{
		Title:       pageTitle,
		Outcome:     string(result.Outcome),
		SettingsURL: h.settingsURL,
		FormAction:  h.pagePath,
		Query:       result.Query,
		Locations:   result.Locations,
		Message:     result.Message,
	})
}
