package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mitrabahan/backend/internal/container"
	handlers "github.com/mitrabahan/backend/internal/interface/http"
	"github.com/mitrabahan/backend/internal/interface/middleware"
	"github.com/mitrabahan/backend/pkg/helpers"
)

// AuthModule wires registration, login, and profile routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me, PUT /api/auth/wallet
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAccount(), nil))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/wallet", m.Handler.SetWallet)
	}
}
