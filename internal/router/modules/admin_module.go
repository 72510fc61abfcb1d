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

// AdminModule wires the read-only reporting routes, admin role only.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	admin.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByAccount(), nil))
	{
		admin.GET("/users", m.Handler.Users)
		admin.GET("/stats", m.Handler.Stats)
	}
}
