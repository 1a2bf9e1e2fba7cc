// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hearthmade/storefront-backend/internal/catalog"
	"github.com/hearthmade/storefront-backend/internal/services"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// List handles GET /products. Unknown query keys are ignored; malformed
// values for known keys reject the request.
func (h *ProductHandler) List(c *gin.Context) {
	query, err := catalog.Decode(c.Request.URL.Query())
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	result, err := h.catalogService.Execute(query)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Get handles GET /products/:ref where ref is the product slug.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.catalogService.GetBySlug(c.Param("ref"))
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}
