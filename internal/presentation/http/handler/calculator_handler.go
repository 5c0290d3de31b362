package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/request"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/response"
)

// CalculatorHandler serves the grade-cut price calculator
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

// GradeCut handles a grade-cut price calculation
func (h *CalculatorHandler) GradeCut(c *gin.Context) {
	var req request.GradeCutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.calculatorService.GradeCut(req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Calculation completed", result)
}
