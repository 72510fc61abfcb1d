package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/application"
	"github.com/mitrabahan/backend/internal/interface/middleware"
	"github.com/mitrabahan/backend/pkg/response"
	"github.com/mitrabahan/backend/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, auth *application.AuthService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Auth: auth, Logger: logger}
}

type createProductRequest struct {
	MaterialID  string  `json:"material_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image" binding:"required"`
	Description string  `json:"description"`
	// Opaque correlation string from the wallet transfer; stored verbatim.
	ExternalTxHash string `json:"external_tx_hash" binding:"required"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"image"`
	Description *string  `json:"description"`
}

// Create POST /api/manufacturer/products (manufacturer role)
// This is the finalize step of the purchase workflow: the only call the
// backend ever sees.
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxAccountIDKey)
	owner, err := h.Auth.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "account not found", nil)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), owner, application.CreateProductInput{
		MaterialID:     req.MaterialID,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Price:          req.Price,
		ImageURL:       req.Image,
		Description:    req.Description,
		ExternalTxHash: req.ExternalTxHash,
	})
	if err != nil {
		if errors.Is(err, application.ErrMissingMaterial) || errors.Is(err, application.ErrMissingImage) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("product create failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create product", nil)
		return
	}

	response.Success(c, http.StatusCreated, productJSON(p), "product created", nil)
}

// Mine GET /api/manufacturer/products/mine (manufacturer role)
func (h *ProductHandler) Mine(c *gin.Context) {
	uid := c.GetString(middleware.CtxAccountIDKey)
	ps, err := h.Svc.ListOwn(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	response.Success(c, http.StatusOK, productsJSON(ps), "products", nil)
}

// Available GET /api/products/available (any authenticated role)
func (h *ProductHandler) Available(c *gin.Context) {
	ps, err := h.Svc.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	response.Success(c, http.StatusOK, productsJSON(ps), "products", nil)
}

// Update PUT /api/manufacturer/products/:id (manufacturer role, owner-scoped)
func (h *ProductHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxAccountIDKey)
	p, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateProductInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update product", nil)
		return
	}
	response.Success(c, http.StatusOK, productJSON(p), "product updated", nil)
}

// Delete DELETE /api/manufacturer/products/:id (manufacturer role, owner-scoped)
func (h *ProductHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxAccountIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete product", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "product deleted", nil)
}
