package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/angiescolor/salon-agenda/internal/httperr"
	"github.com/angiescolor/salon-agenda/internal/httpresp"
	"github.com/angiescolor/salon-agenda/internal/models"
	"github.com/angiescolor/salon-agenda/internal/validators"
)

type SpecialtyHandler struct {
	db *gorm.DB
}

func NewSpecialtyHandler(db *gorm.DB) *SpecialtyHandler {
	return &SpecialtyHandler{db: db}
}

type SpecialtyRequest struct {
	Name     string `json:"name" binding:"required"`
	ColorHex string `json:"color_hex"`
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	var specialties []models.Specialty
	if err := h.db.Order("name ASC").Find(&specialties).Error; err != nil {
		httperr.Internal(c, "failed_to_list_specialties", "Error al listar especialidades.")
		return
	}
	httpresp.List(c, specialties)
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	specialty := models.Specialty{Name: strings.TrimSpace(req.Name)}

	if req.ColorHex != "" {
		if !validators.IsHexColor(req.ColorHex) {
			httperr.BadRequest(c, "invalid_color", "El color debe ser #RRGGBB.")
			return
		}
		specialty.ColorHex = req.ColorHex
	}

	if err := h.db.Create(&specialty).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "name_taken", "Ya existe una especialidad con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_create_specialty", "Error al crear la especialidad.")
		return
	}

	httpresp.Created(c, specialty)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var specialty models.Specialty
	if err := h.db.First(&specialty, id).Error; err != nil {
		httperr.NotFound(c, "specialty_not_found", "Especialidad no encontrada.")
		return
	}

	var req SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	specialty.Name = strings.TrimSpace(req.Name)
	if req.ColorHex != "" {
		if !validators.IsHexColor(req.ColorHex) {
			httperr.BadRequest(c, "invalid_color", "El color debe ser #RRGGBB.")
			return
		}
		specialty.ColorHex = req.ColorHex
	}

	if err := h.db.Save(&specialty).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "name_taken", "Ya existe una especialidad con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_update_specialty", "Error al actualizar la especialidad.")
		return
	}

	httpresp.OK(c, specialty)
}
