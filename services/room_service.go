package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"hoteleo-server/models"
)

// RoomService wraps *gorm.DB for room creation, listing and ranking.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

const topRatedLimit = 6

// RankedRoom is the top-rated projection: the room's public fields plus its
// computed rating aggregates.
type RankedRoom struct {
	ID           uint             `json:"id"`
	Title        string           `json:"title"`
	Image        string           `json:"image"`
	Price        float64          `json:"price"`
	Description  string           `json:"description"`
	Features     []string         `json:"features"`
	Location     string           `json:"location"`
	BedType      string           `json:"bedType"`
	Size         string           `json:"size"`
	MaxGuests    int              `json:"maxGuests"`
	Amenities    []string         `json:"amenities"`
	Tags         []string         `json:"tags"`
	Availability bool             `json:"availability"`
	BookedDates  []models.Booking `json:"bookedDates"`
	Reviews      []models.Review  `json:"reviews"`
	AvgRating    float64          `json:"avgRating"`
	TotalReviews int              `json:"totalReviews"`
}

// parseRoomID validates a caller-supplied room id. Room ids are numeric
// auto-increment keys; anything else is malformed.
func parseRoomID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidRoomID
	}
	return uint(id), nil
}

// budgetFilter maps a budget bracket token to a price predicate. Unknown
// tokens (including "1501+") fall through to price > 1500; only an empty or
// "All" token means no filter.
func budgetFilter(budget string) (string, []interface{}) {
	switch budget {
	case "", "All":
		return "", nil
	case "0-1000":
		return "price <= ?", []interface{}{1000.0}
	case "1001-1500":
		return "price > ? AND price <= ?", []interface{}{1000.0, 1500.0}
	default:
		return "price > ?", []interface{}{1500.0}
	}
}

func (s *RoomService) Create(room *models.Room) error {
	// New rooms always start available with no embedded entries, whatever
	// the payload claimed.
	room.Availability = true
	room.BookedDates = nil
	room.Reviews = nil

	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetAll(budget string) ([]models.Room, error) {
	var rooms []models.Room

	q := s.DB
	if cond, args := budgetFilter(budget); cond != "" {
		q = q.Where(cond, args...)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(rawID string) (models.Room, error) {
	var room models.Room

	id, err := parseRoomID(rawID)
	if err != nil {
		return room, err
	}

	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return room, nil
}

// TopRated ranks all rooms by average review rating (desc), ties broken by
// review count (desc), and returns the first six.
func (s *RoomService) TopRated() ([]RankedRoom, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms for ranking: %w", err)
	}
	return rankTopRooms(rooms), nil
}

func rankTopRooms(rooms []models.Room) []RankedRoom {
	ranked := make([]RankedRoom, 0, len(rooms))
	for _, room := range rooms {
		avg := 0.0
		if len(room.Reviews) > 0 {
			var sum float64
			for _, rev := range room.Reviews {
				sum += rev.Rating
			}
			avg = sum / float64(len(room.Reviews))
		}
		ranked = append(ranked, RankedRoom{
			ID:           room.ID,
			Title:        room.Title,
			Image:        room.Image,
			Price:        room.Price,
			Description:  room.Description,
			Features:     room.Features,
			Location:     room.Location,
			BedType:      room.BedType,
			Size:         room.Size,
			MaxGuests:    room.MaxGuests,
			Amenities:    room.Amenities,
			Tags:         room.Tags,
			Availability: room.Availability,
			BookedDates:  room.BookedDates,
			Reviews:      room.Reviews,
			AvgRating:    avg,
			TotalReviews: len(room.Reviews),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AvgRating != ranked[j].AvgRating {
			return ranked[i].AvgRating > ranked[j].AvgRating
		}
		return ranked[i].TotalReviews > ranked[j].TotalReviews
	})

	if len(ranked) > topRatedLimit {
		ranked = ranked[:topRatedLimit]
	}
	return ranked
}
