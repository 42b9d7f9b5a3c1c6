package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classforge/timetable-optimizer/internal/dto"
	"github.com/classforge/timetable-optimizer/internal/service"
	appErrors "github.com/classforge/timetable-optimizer/pkg/errors"
	"github.com/classforge/timetable-optimizer/pkg/response"
)

// ScheduleGeneratorHandler exposes the schedule generation endpoint.
type ScheduleGeneratorHandler struct {
	service *service.ScheduleGeneratorService
}

// NewScheduleGeneratorHandler constructs the handler.
func NewScheduleGeneratorHandler(svc *service.ScheduleGeneratorService) *ScheduleGeneratorHandler {
	return &ScheduleGeneratorHandler{service: svc}
}

// Generate godoc
// @Summary Generate a conflict-minimized weekly schedule
// @Description Runs the evolutionary engine against the supplied teacher
// @Description qualifications, classroom capabilities and curriculum demand,
// @Description returning the best individual found.
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body dto.GenerateScheduleRequest true "Generate schedule payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/generate [post]
func (h *ScheduleGeneratorHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
