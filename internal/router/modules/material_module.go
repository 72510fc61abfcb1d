package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mitrabahan/backend/internal/container"
	"github.com/mitrabahan/backend/internal/domain/entity"
	handlers "github.com/mitrabahan/backend/internal/interface/http"
	"github.com/mitrabahan/backend/internal/interface/middleware"
	"github.com/mitrabahan/backend/pkg/helpers"
)

// MaterialModule wires supplier inventory routes. Every route requires
// authentication; mutations additionally require the supplier role and
// are owner-scoped inside the store.
type MaterialModule struct {
	Handler *handlers.MaterialHandler
	JWT     *helpers.JWTManager
}

func NewMaterialModule(h *handlers.MaterialHandler, jwt *helpers.JWTManager) *MaterialModule {
	return &MaterialModule{Handler: h, JWT: jwt}
}

func (m *MaterialModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/materials")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccount(), nil))

	// Browsing is open to every authenticated role.
	auth.GET("/available", m.Handler.Available)
	auth.GET("/search", m.Handler.Search)

	supplier := middleware.RequireRole(entity.RoleSupplier)
	auth.POST("", supplier, m.Handler.Create)
	auth.GET("/mine", supplier, m.Handler.Mine)
	auth.PUT("/:id", supplier, m.Handler.Update)
	auth.DELETE("/:id", supplier, m.Handler.Delete)
}
