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

// ProductModule wires manufacturer product routes. POST is the finalize
// endpoint of the purchase workflow.
type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	// Customer-facing browsing of finished goods.
	browse := rg.Group("/products")
	browse.Use(middleware.Auth(m.JWT))
	browse.GET("/available", m.Handler.Available)

	auth := rg.Group("/manufacturer/products")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccount(), nil))

	manufacturer := middleware.RequireRole(entity.RoleManufacturer)
	auth.POST("", manufacturer, m.Handler.Create)
	auth.GET("/mine", manufacturer, m.Handler.Mine)
	auth.PUT("/:id", manufacturer, m.Handler.Update)
	auth.DELETE("/:id", manufacturer, m.Handler.Delete)
}
