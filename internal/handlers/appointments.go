package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"appointment-booking-server/internal/logger"
	"appointment-booking-server/internal/middleware"
	"appointment-booking-server/internal/models"
	"appointment-booking-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB  *gorm.DB
	log zerolog.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db, log: logger.Get()}
}

// SubmitAppointmentRequest represents the public booking form.
type SubmitAppointmentRequest struct {
	FullName string `form:"fullName" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
	Category string `form:"category" binding:"required"`
	Service  string `form:"service" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Time     string `form:"time" binding:"required"`
}

// Submit handles the public booking form. All six fields must be present and
// non-empty; on success the browser is redirected to the static success page.
func (h *AppointmentHandler) Submit(c *gin.Context) {
	var req SubmitAppointmentRequest
	if err := utils.BindForm(c, &req); err != nil {
		c.String(http.StatusBadRequest, "All fields are required.")
		return
	}

	appointment := models.Appointment{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Category:        req.Category,
		Service:         req.Service,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		h.log.Error().Err(err).Msg("error saving appointment")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.log.Info().Uint("id", appointment.ID).Str("service", appointment.Service).Msg("new appointment booked")
	c.Redirect(http.StatusFound, "/success.html")
}

// List returns every appointment, newest date first, earliest time first
// within a date.
func (h *AppointmentHandler) List(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Order("appointment_date DESC, appointment_time ASC").Find(&appointments).Error; err != nil {
		h.log.Error().Err(err).Msg("error fetching appointments")
		utils.InternalServerError(c)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ResetAll deletes every appointment row.
func (h *AppointmentHandler) ResetAll(c *gin.Context) {
	if err := h.DB.Where("1 = 1").Delete(&models.Appointment{}).Error; err != nil {
		h.log.Error().Err(err).Msg("error resetting appointments")
		utils.InternalServerError(c)
		return
	}

	adminID, _ := middleware.GetAdminIDFromContext(c)
	h.log.Info().Uint("admin_id", adminID).Msg("all appointments cleared")
	utils.JSONMessage(c, "All appointments have been cleared successfully.")
}

// Delete removes a single appointment by id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid appointment id.")
		return
	}

	result := h.DB.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		h.log.Error().Err(result.Error).Int("id", id).Msg("error deleting appointment")
		utils.InternalServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Appointment not found.")
		return
	}

	utils.JSONMessage(c, "Appointment deleted successfully.")
}
