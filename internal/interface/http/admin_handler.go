package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/application"
	"github.com/mitrabahan/backend/pkg/response"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// Users GET /api/admin/users (admin role)
func (h *AdminHandler) Users(c *gin.Context) {
	accounts, err := h.Svc.ListAccounts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list accounts failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	out := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountJSON(a))
	}
	response.Success(c, http.StatusOK, gin.H{"users": out}, "users", nil)
}

// Stats GET /api/admin/stats (admin role)
func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("stats failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to compute stats", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"total_accounts":    st.Total,
		"active_accounts":   st.Active,
		"inactive_accounts": st.Inactive,
		"users_by_role":     st.ByRole,
	}, "stats", nil)
}
