// internal/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hearthmade/storefront-backend/internal/services"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

type AdminHandler struct {
	adminService   *services.AdminService
	storageService *services.StorageService
}

func NewAdminHandler(adminService *services.AdminService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		storageService: storageService,
	}
}

// List handles GET /admin/products. Unpublished products are included; this
// is the only listing that sees them.
func (h *AdminHandler) List(c *gin.Context) {
	products, err := h.adminService.ListAll()
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"items": products})
}

func (h *AdminHandler) Create(c *gin.Context) {
	var draft services.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.adminService.Create(&draft)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// Patch handles PATCH /admin/products/:id. The body is decoded as a raw map
// so an absent field and a zero-valued field stay distinguishable.
func (h *AdminHandler) Patch(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.adminService.Patch(id, patch)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.adminService.Delete(id); err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"ok": true})
}

// UploadImage handles POST /admin/products/upload-image.
func (h *AdminHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadHeroImage(file, header)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"url": result.URL,
		"key": result.Key,
	})
}

func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}
