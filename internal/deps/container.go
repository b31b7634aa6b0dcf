package deps

import (
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/sanitizer"
	"gorm.io/gorm"
)

// Container holds all shared dependencies
type Container struct {
	DB        *gorm.DB
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger

	// ArtifactCache holds rendered snapshot artifacts keyed by name.
	ArtifactCache cache.Cache[[]byte]

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB, sanitizer sanitizer.HTMLStripperer, logger logger.Logger, artifactCache cache.Cache[[]byte]) *Container {
	return &Container{
		DB:            db,
		Sanitizer:     sanitizer,
		Logger:        logger,
		ArtifactCache: artifactCache,
		repositories:  make(map[string]interface{}),
		services:      make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
