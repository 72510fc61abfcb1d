package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/application"
	"github.com/mitrabahan/backend/internal/domain/entity"
	"github.com/mitrabahan/backend/internal/interface/middleware"
	"github.com/mitrabahan/backend/pkg/response"
	"github.com/mitrabahan/backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Company  string `json:"company" binding:"required"`
	Role     string `json:"role" binding:"omitempty,regrole"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type walletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

// accountJSON serializes an account for clients. The password hash never
// leaves the server.
func accountJSON(a *entity.Account) gin.H {
	return gin.H{
		"id":             a.ID,
		"name":           a.Name,
		"email":          a.Email,
		"company":        a.Company,
		"role":           a.Role,
		"wallet_address": a.WalletAddress,
		"is_active":      a.IsActive,
		"is_verified":    a.IsVerified,
		"created_at":     a.CreatedAt,
		"last_login":     a.LastLogin,
	}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	a, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
		Role:     req.Role,
	})
	switch {
	case err == nil:
	case err == application.ErrEmailTaken:
		response.Error[any](c, http.StatusConflict, "email already registered", nil)
		return
	case err == application.ErrRoleNotAllowed:
		response.Error[any](c, http.StatusBadRequest, "role not allowed", nil)
		return
	default:
		h.Logger.WithError(err).Error("register failed")
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"token": token, "account": accountJSON(a)}, "account created", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	a, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password answer identically.
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "account": accountJSON(a)}, "login successful", nil)
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxAccountIDKey)
	a, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "account not found", nil)
		return
	}
	response.Success(c, http.StatusOK, accountJSON(a), "profile", nil)
}

// SetWallet PUT /api/auth/wallet (auth required)
func (h *AuthHandler) SetWallet(c *gin.Context) {
	var req walletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxAccountIDKey)
	if err := h.Svc.SetWallet(c.Request.Context(), uid, req.WalletAddress); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to save wallet address", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"wallet_address": req.WalletAddress}, "wallet address saved", nil)
}
