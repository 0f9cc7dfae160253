// controllers/review.go
package controllers

import (
	"net/http"

	"eventhub-backend/services"
	"eventhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReviewInput struct {
	ServiceID uint   `json:"serviceId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReviewController serves the append-only review feed.
type ReviewController struct {
	Reviews *services.ReviewService
}

func (rc *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := rc.Reviews.List()
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review, err := rc.Reviews.Create(userID, input.ServiceID, input.Rating, input.Comment)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
