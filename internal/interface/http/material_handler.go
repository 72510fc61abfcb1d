package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mitrabahan/backend/internal/application"
	"github.com/mitrabahan/backend/internal/interface/middleware"
	"github.com/mitrabahan/backend/pkg/response"
	"github.com/mitrabahan/backend/pkg/validation"
)

type MaterialHandler struct {
	Svc    *application.MaterialService
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewMaterialHandler(svc *application.MaterialService, auth *application.AuthService, logger *logrus.Logger) *MaterialHandler {
	return &MaterialHandler{Svc: svc, Auth: auth, Logger: logger}
}

type updateMaterialRequest struct {
	Name        *string  `json:"name"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"image"`
	Description *string  `json:"description"`
}

// Create POST /api/materials (supplier role, multipart with image)
func (h *MaterialHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"name": "is required"})
		return
	}
	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "0"))
	if err != nil || quantity < 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"quantity": "must be a non-negative integer"})
		return
	}
	price, err := strconv.ParseFloat(c.DefaultPostForm("price", "0"), 64)
	if err != nil || price < 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"price": "must be a non-negative number"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	uid := c.GetString(middleware.CtxAccountIDKey)
	owner, err := h.Auth.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "account not found", nil)
		return
	}

	imageURL, err := h.Svc.UploadImage(c.Request.Context(), uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).Error("image upload failed")
		response.Error[any](c, http.StatusInternalServerError, "image upload failed", nil)
		return
	}

	m, err := h.Svc.Create(c.Request.Context(), owner, application.CreateMaterialInput{
		Name:        name,
		Quantity:    quantity,
		Price:       price,
		ImageURL:    imageURL,
		Description: c.PostForm("description"),
	})
	if err != nil {
		if errors.Is(err, application.ErrMissingImage) {
			response.Error[any](c, http.StatusBadRequest, "image reference is required", nil)
			return
		}
		h.Logger.WithError(err).Error("material create failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create material", nil)
		return
	}

	response.Success(c, http.StatusCreated, materialJSON(m), "material created", nil)
}

// Mine GET /api/materials/mine (supplier role)
func (h *MaterialHandler) Mine(c *gin.Context) {
	uid := c.GetString(middleware.CtxAccountIDKey)
	ms, err := h.Svc.ListOwn(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list materials", nil)
		return
	}
	response.Success(c, http.StatusOK, materialsJSON(ms), "materials", nil)
}

// Available GET /api/materials/available (any authenticated role)
func (h *MaterialHandler) Available(c *gin.Context) {
	ms, err := h.Svc.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list materials", nil)
		return
	}
	response.Success(c, http.StatusOK, materialsJSON(ms), "materials", nil)
}

// Search GET /api/materials/search?q= (any authenticated role)
func (h *MaterialHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// Update PUT /api/materials/:id (supplier role, owner-scoped)
func (h *MaterialHandler) Update(c *gin.Context) {
	var req updateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxAccountIDKey)
	m, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateMaterialInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			// Non-owner and nonexistent id are the same answer.
			response.Error[any](c, http.StatusNotFound, "material not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to update material", nil)
		return
	}
	response.Success(c, http.StatusOK, materialJSON(m), "material updated", nil)
}

// Delete DELETE /api/materials/:id (supplier role, owner-scoped)
func (h *MaterialHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxAccountIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, application.ErrRecordNotFound) {
			response.Error[any](c, http.StatusNotFound, "material not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete material", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "material deleted", nil)
}
