package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/httpresp"
	"github.com/angiescolor/salon-agenda/internal/models"
)

type RoomHandler struct {
	db *gorm.DB
}

func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{db: db}
}

type RoomRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *RoomHandler) List(c *gin.Context) {
	var rooms []models.Room
	if err := h.db.Order("name ASC").Find(&rooms).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rooms", "Error al listar salas.")
		return
	}
	httpresp.List(c, rooms)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	room := models.Room{Name: strings.TrimSpace(req.Name)}
	if room.Name == "" {
		httperr.BadRequest(c, "invalid_request", "El nombre es obligatorio.")
		return
	}

	if err := h.db.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "name_taken", "Ya existe una sala con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_create_room", "Error al crear la sala.")
		return
	}

	httpresp.Created(c, room)
}
