package countries

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/joefazee/atlas/internal/logger"
)

const (
	CountryRepoKey    = "country_repository"
	CountryServiceKey = "country_service"
)

// MountPublic mounts the country routes
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	countriesGroup := r.Group("/countries")
	countriesGroup.POST("/refresh", handler.Refresh)
	countriesGroup.GET("", handler.ListCountries)
	countriesGroup.GET("/image", handler.SummaryImage)
	countriesGroup.GET("/:name", handler.GetCountryByName)
	countriesGroup.DELETE("/:name", handler.DeleteCountryByName)

	r.GET("/status", handler.Status)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(CountryRepoKey, repo)
}

// InitServices wires the refresh pipeline and registers it
func InitServices(container *deps.Container, config *Config) {
	repo := container.GetRepository(CountryRepoKey).(Repository)

	log := container.Logger
	if log == nil {
		log = logger.NewNullLogger()
	}

	service := NewService(
		repo,
		NewGateway(config),
		NewPNGRenderer(),
		container.ArtifactCache,
		container.Sanitizer,
		NewMultiplierSource(),
		log,
		config,
	)
	container.RegisterService(CountryServiceKey, service)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	service := container.GetService(CountryServiceKey).(Service)
	return NewHandler(service)
}
