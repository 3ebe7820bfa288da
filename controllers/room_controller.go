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

// RoomProvider is the room service surface the controller depends on.
type RoomProvider interface {
	Create(room *models.Room) error
	GetAll(budget string) ([]models.Room, error)
	GetByID(id string) (models.Room, error)
	TopRated() ([]services.RankedRoom, error)
}

type RoomController struct {
	Rooms RoomProvider
}

func NewRoomController(rooms RoomProvider) *RoomController {
	return &RoomController{Rooms: rooms}
}

// CreateRoom handles POST /rooms.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid room payload",
			"details": err.Error(),
		})
		return
	}

	if err := rc.Rooms.Create(&room); err != nil {
		log.Printf("create room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRooms handles GET /rooms with an optional budget bracket query param.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll(c.Query("budget"))
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetTopRatedRooms handles GET /top-rated-room.
func (rc *RoomController) GetTopRatedRooms(c *gin.Context) {
	ranked, err := rc.Rooms.TopRated()
	if err != nil {
		log.Printf("top rated rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to rank rooms")
		return
	}
	c.JSON(http.StatusOK, ranked)
}

// GetRoomDetails handles GET /rooms/:id.
func (rc *RoomController) GetRoomDetails(c *gin.Context) {
	room, err := rc.Rooms.GetByID(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRoomID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found")
		default:
			log.Printf("room details failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load room")
		}
		return
	}
	c.JSON(http.StatusOK, room)
}
