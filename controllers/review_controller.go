package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteleo-server/models"
	"hoteleo-server/services"
	"hoteleo-server/utils"
)

// ReviewProvider is the review service surface the controller depends on.
type ReviewProvider interface {
	Add(roomID string, review models.Review) (int64, error)
	Latest() ([]services.LatestReview, error)
}

type ReviewController struct {
	Reviews ReviewProvider
}

func NewReviewController(reviews ReviewProvider) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type addReviewPayload struct {
	Review models.Review `json:"review"`
}

// AddReview handles PATCH /review/:roomId.
func (rc *ReviewController) AddReview(c *gin.Context) {
	var payload addReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid review data")
		return
	}

	modified, err := rc.Reviews.Add(c.Param("roomId"), payload.Review)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReview):
			utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid review data")
		case errors.Is(err, services.ErrInvalidRoomID):
			utils.JSONMessage(c, http.StatusBadRequest, false, "Invalid room ID")
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONMessage(c, http.StatusNotFound, false, "Room not found or no changes made")
		default:
			log.Printf("add review failed: %v", err)
			utils.JSONMessage(c, http.StatusInternalServerError, false, "Failed to add review")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"modifiedCount": modified,
	})
}

// GetLatestReviews handles GET /latest-reviews.
func (rc *ReviewController) GetLatestReviews(c *gin.Context) {
	reviews, err := rc.Reviews.Latest()
	if err != nil {
		log.Printf("latest reviews failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
