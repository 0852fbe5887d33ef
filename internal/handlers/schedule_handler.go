package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop-finance-api/internal/scheduling"
)

// ScheduleHandler handles client and appointment requests
type ScheduleHandler struct {
	book *scheduling.Book
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(book *scheduling.Book) *ScheduleHandler {
	return &ScheduleHandler{book: book}
}

// CreateClientRequest is the payload for registering a client
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CreateAppointmentRequest is the payload for booking an appointment
type CreateAppointmentRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Barber     string `json:"barber" binding:"required"`
}

// @Summary Register a client
// @Tags scheduling
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /clients [post]
func (h *ScheduleHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.book.AddClient(req.Name, req.Phone); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to add client",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "client " + req.Name + " added"})
}

// @Summary Book an appointment
// @Tags scheduling
// @Accept json
// @Produce json
// @Param appointment body CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /appointments [post]
func (h *ScheduleHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	appt := scheduling.Appointment{
		Date:   req.Date,
		Time:   req.Time,
		Barber: req.Barber,
	}
	if err := h.book.AddAppointment(req.ClientName, appt); err != nil {
		if errors.Is(err, scheduling.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "Client not found",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to add appointment",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "appointment for " + req.ClientName + " added"})
}

// @Summary List upcoming appointments
// @Tags scheduling
// @Produce json
// @Success 200 {array} scheduling.UpcomingAppointment
// @Failure 500 {object} ErrorResponse
// @Router /appointments [get]
func (h *ScheduleHandler) ListAppointments(c *gin.Context) {
	upcoming, err := h.book.Upcoming()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list appointments",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, upcoming)
}
