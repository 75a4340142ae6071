package settings

import (
	apphttp "dhl_location_finder/internal/http"
	"dhl_location_finder/internal/settings/handler"
	"dhl_location_finder/internal/settings/repository"
	"dhl_location_finder/internal/settings/service"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/validator"
)

// Module is the settings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the settings module.
func NewModule(repo repository.Repository, val *validator.Validator, views handler.Renderer, log *logger.Logger) *Module {
	svc := service.New(repo, val, log)
	return &Module{
		handler: handler.New(svc, views, FormPath),
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "settings"
}

// Service returns the service layer for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the settings store, used for readiness checks.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts settings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/settings", m.handler.Get)
	ctx.Admin.PUT("/settings", m.handler.Update)

	ctx.AdminPages.GET("/config/services/dhl-settings", m.handler.ShowForm)
	ctx.AdminPages.POST("/config/services/dhl-settings", m.handler.SubmitForm)
}

var _ APIKeyReader = (*service.Service)(nil)

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
