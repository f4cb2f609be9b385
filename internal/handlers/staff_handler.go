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

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type StaffRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *StaffHandler) List(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.Order("name ASC").Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Error al listar profesionales.")
		return
	}
	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	staff := models.Staff{Name: strings.TrimSpace(req.Name)}
	if staff.Name == "" {
		httperr.BadRequest(c, "invalid_request", "El nombre es obligatorio.")
		return
	}

	if err := h.db.Create(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "name_taken", "Ya existe un profesional con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_create_staff", "Error al crear el profesional.")
		return
	}

	httpresp.Created(c, staff)
}
