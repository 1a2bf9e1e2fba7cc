// internal/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hearthmade/storefront-backend/internal/services"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type submitReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// List handles GET /products/:ref/reviews where ref is the product id.
func (h *ReviewHandler) List(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return
	}

	reviews, aggregate, err := h.reviewService.List(productID)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
		"avg":     aggregate.Avg,
		"count":   aggregate.Count,
	})
}

// Create handles POST /products/:ref/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return
	}

	userIDStr, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.Submit(productID, userID, req.Rating, req.Text)
	if err != nil {
		utils.FailResponse(c, err)
		return
	}

	utils.CreatedResponse(c, review)
}
