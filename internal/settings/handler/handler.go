package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dhl_location_finder/internal/settings/service"
	"dhl_location_finder/internal/settings/transport"
	"dhl_location_finder/platform/apperr"
	"dhl_location_finder/platform/httpkit"
)

const (
	msgInvalidRequest = "invalid request"
	msgSaved          = "The configuration options have been saved."
	msgSaveFailed     = "The configuration could not be saved. Please check logs for more information."

	pageTitle    = "DHL api configuration"
	developerURL = "https://developer.dhl.com/user/login?action=create-app"
)

// Renderer renders a named HTML page.
type Renderer interface {
	Render(c *gin.Context, status int, name string, data any)
}

// Handler handles HTTP requests for the settings API and admin form.
type Handler struct {
	svc      *service.Service
	views    Renderer
	formPath string
}

// New creates a new settings handler.
func New(svc *service.Service, views Renderer, formPath string) *Handler {
	return &Handler{svc: svc, views: views, formPath: formPath}
}

// Get returns whether an API key is configured.
// GET /api/v1/admin/settings
func (h *Handler) Get(c *gin.Context) {
	result, err := h.svc.Get(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Update stores a new API key.
// PUT /api/v1/admin/settings
func (h *Handler) Update(c *gin.Context) {
	var req transport.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.SaveAPIKey(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// formPage never carries the stored key; the form only shows whether one is set.
type formPage struct {
	Title        string
	FormAction   string
	Configured   bool
	KeyHint      string
	DeveloperURL string
	Message      string
	Error        string
}

// ShowForm renders the API key form.
// GET /admin/config/services/dhl-settings
func (h *Handler) ShowForm(c *gin.Context) {
	page := h.newPage()

	current, err := h.svc.Get(c.Request.Context())
	if err != nil {
		page.Error = msgSaveFailed
		h.views.Render(c, http.StatusInternalServerError, "settings", page)
		return
	}
	page.Configured = current.APIKeyConfigured
	page.KeyHint = current.APIKeyHint
	if c.Query("saved") == "1" {
		page.Message = msgSaved
	}
	h.views.Render(c, http.StatusOK, "settings", page)
}

// SubmitForm saves the posted API key and redirects back to the form.
// POST /admin/config/services/dhl-settings
func (h *Handler) SubmitForm(c *gin.Context) {
	var req transport.UpdateSettingsRequest
	_ = c.ShouldBind(&req)

	page := h.newPage()

	if _, err := h.svc.SaveAPIKey(c.Request.Context(), req); err != nil {
		status := http.StatusInternalServerError
		page.Error = msgSaveFailed
		var domainErr *apperr.Error
		if errors.As(err, &domainErr) && domainErr.Kind == apperr.KindValidation {
			status = domainErr.HTTPStatus()
			page.Error = domainErr.Message
		}
		h.views.Render(c, status, "settings", page)
		return
	}

	c.Redirect(http.StatusSeeOther, h.formPath+"?saved=1")
}

func (h *Handler) newPage() formPage {
	return formPage{
		Title:        pageTitle,
		FormAction:   h.formPath,
		DeveloperURL: developerURL,
	}
}
