package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop-finance-api/internal/services"
)

// FinanceHandler handles barber, service, transaction and expense requests
type FinanceHandler struct {
	catalog services.CatalogService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(catalog services.CatalogService) *FinanceHandler {
	return &FinanceHandler{catalog: catalog}
}

// @Summary Register a barber
// @Description Register a new barber with an optional commission policy
// @Tags barbers
// @Accept json
// @Produce json
// @Param barber body services.CreateBarberRequest true "Barber data"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /barbers [post]
func (h *FinanceHandler) CreateBarber(c *gin.Context) {
	var req services.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	barber, err := h.catalog.CreateBarber(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create barber",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": barber.ID})
}

// @Summary List barbers
// @Tags barbers
// @Produce json
// @Success 200 {array} models.Barber
// @Failure 500 {object} ErrorResponse
// @Router /barbers [get]
func (h *FinanceHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.catalog.ListBarbers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list barbers",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, barbers)
}

// @Summary Register a service
// @Tags services
// @Accept json
// @Produce json
// @Param service body services.CreateServiceRequest true "Service data"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /services [post]
func (h *FinanceHandler) CreateService(c *gin.Context) {
	var req services.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	service, err := h.catalog.CreateService(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create service",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": service.ID})
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} ErrorResponse
// @Router /services [get]
func (h *FinanceHandler) ListServices(c *gin.Context) {
	list, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list services",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Record a transaction
// @Description Record a sale. Price defaults to the service's base price when omitted.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body services.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [post]
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req services.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	tx, err := h.catalog.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "Service not found and no price provided",
				Message: err.Error(),
			})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create transaction",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": tx.ID})
}

// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body services.CreateExpenseRequest true "Expense data"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses [post]
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req services.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	expense, err := h.catalog.CreateExpense(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create expense",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": expense.ID})
}
