package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mitrabahan/backend/internal/domain/entity"
)

func materialJSON(m *entity.Material) gin.H {
	return gin.H{
		"id":               m.ID,
		"name":             m.Name,
		"quantity":         m.Quantity,
		"price":            m.Price,
		"image":            m.ImageURL,
		"description":      m.Description,
		"supplier_id":      m.SupplierID,
		"supplier_name":    m.SupplierName,
		"supplier_company": m.SupplierCompany,
		"created_at":       m.CreatedAt,
	}
}

func materialsJSON(ms []*entity.Material) []gin.H {
	out := make([]gin.H, 0, len(ms))
	for _, m := range ms {
		out = append(out, materialJSON(m))
	}
	return out
}

func productJSON(p *entity.Product) gin.H {
	return gin.H{
		"id":                   p.ID,
		"material_id":          p.MaterialID,
		"name":                 p.Name,
		"quantity":             p.Quantity,
		"price":                p.Price,
		"image":                p.ImageURL,
		"description":          p.Description,
		"manufacturer_id":      p.ManufacturerID,
		"manufacturer_name":    p.ManufacturerName,
		"manufacturer_company": p.ManufacturerCompany,
		"external_tx_hash":     p.ExternalTxHash,
		"created_at":           p.CreatedAt,
	}
}

func productsJSON(ps []*entity.Product) []gin.H {
	out := make([]gin.H, 0, len(ps))
	for _, p := range ps {
		out = append(out, productJSON(p))
	}
	return out
}
