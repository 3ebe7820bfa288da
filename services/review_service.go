package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hoteleo-server/models"
)

// ReviewService wraps *gorm.DB for a room's embedded reviews.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

const latestReviewsLimit = 10

// LatestReview is a review annotated with its owning room.
type LatestReview struct {
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
	RoomTitle string    `json:"roomTitle"`
	RoomID    uint      `json:"roomId"`
	RoomImage string    `json:"roomImage"`
}

func validReview(r models.Review) bool {
	return r.Name != "" && r.Rating != 0 && r.Comment != ""
}

// Add appends a review to the room. The review shape is rejected before any
// store access; Date defaults to the write time.
func (s *ReviewService) Add(rawRoomID string, review models.Review) (int64, error) {
	if !validReview(review) {
		return 0, ErrInvalidReview
	}
	roomID, err := parseRoomID(rawRoomID)
	if err != nil {
		return 0, err
	}
	if review.Date.IsZero() {
		review.Date = time.Now().UTC()
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		reviews := append([]models.Review(room.Reviews), review)
		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
			Update("reviews", datatypes.NewJSONSlice(reviews)).Error; err != nil {
			return fmt.Errorf("failed to add review: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return 1, nil
}

// Latest flattens every room's reviews, newest first, capped at ten. The
// sort is stable, so reviews with equal timestamps keep room order.
func (s *ReviewService) Latest() ([]LatestReview, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to scan reviews: %w", err)
	}
	return latestReviews(rooms), nil
}

func latestReviews(rooms []models.Room) []LatestReview {
	all := []LatestReview{}
	for _, room := range rooms {
		for _, rev := range room.Reviews {
			all = append(all, LatestReview{
				Name:      rev.Name,
				Rating:    rev.Rating,
				Comment:   rev.Comment,
				Date:      rev.Date,
				RoomTitle: room.Title,
				RoomID:    room.ID,
				RoomImage: room.Image,
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	if len(all) > latestReviewsLimit {
		all = all[:latestReviewsLimit]
	}
	return all
}
