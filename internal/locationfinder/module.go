package locationfinder

import (
	apphttp "dhl_location_finder/internal/http"
	"dhl_location_finder/internal/locationfinder/client"
	"dhl_location_finder/internal/locationfinder/handler"
	"dhl_location_finder/internal/locationfinder/service"
	"dhl_location_finder/platform/config"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/validator"
)

// Module is the location finder bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewService wires the upstream clients and the search service. The CLI uses it
// without the HTTP module.
func NewService(cfg config.LocationFinderConfig, keys service.APIKeyReader, val *validator.Validator, log *logger.Logger, settingsURL string) *service.Service {
	httpClient := client.NewHTTPClient(cfg.GetOutboundHTTPTimeout())
	return service.New(
		keys,
		client.NewCountryClient(httpClient, cfg.GetCountryCodesAPIURL()),
		client.NewDHLClient(httpClient, cfg.GetDHLAPIURL()),
		val,
		log,
		settingsURL,
	)
}

// NewModule creates and initializes the location finder module.
func NewModule(cfg config.LocationFinderConfig, keys service.APIKeyReader, val *validator.Validator, views handler.Renderer, log *logger.Logger, settingsURL string) *Module {
	svc := NewService(cfg, keys, val, log, settingsURL)
	return &Module{
		handler: handler.New(svc, views, PagePath, settingsURL),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "locationfinder"
}

// Service returns the search service.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts location finder routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Pages.GET(PagePath, m.handler.Page)
	ctx.V1.GET("/locations", m.handler.Search)
}

var _ Searcher = (*service.Service)(nil)

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
