package router

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container}
}

// Public routes - no authentication required
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	group := engine.Group("/api/v1")
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFunc MountFunc) *RouteGroup {
	mountFunc(rg.group, rg.container)
	return rg
}

// Group creates a sub-group for organizing routes
func (rg *RouteGroup) Group(path string) *RouteGroup {
	subGroup := rg.group.Group(path)
	return &RouteGroup{group: subGroup, container: rg.container}
}
