package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/classforge/timetable-optimizer/internal/dto"
	"github.com/classforge/timetable-optimizer/internal/service"
)

func newTestHandler() *ScheduleGeneratorHandler {
	svc := service.NewScheduleGeneratorService(zap.NewNop(), service.NewMetricsService(), nil)
	return NewScheduleGeneratorHandler(svc)
}

func TestScheduleGeneratorGenerateSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler()

	payload := dto.GenerateScheduleRequest{
		Teachers:   []dto.TeacherQualificationRow{{TeacherID: 1, SubjectID: 100}},
		Classrooms: []dto.ClassroomCapabilityRow{{ClassroomID: 10, TypeID: 1}},
		Curriculum: []dto.CurriculumDemandRow{{SectionID: 1, SubjectID: 100, WeeklyHours: 2, RequiredClassroomTypeID: 1}},
		Config:     dto.EngineConfig{PopulationSize: 4, Generations: 2, Seed: 7},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusOK, w.Code)

	var decoded struct {
		Data dto.GenerateScheduleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	require.Len(t, decoded.Data.Assignments, 2)
}

func TestScheduleGeneratorGenerateInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler()

	req, _ := http.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewReader([]byte(`{"teachers":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleGeneratorGenerateValidationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler()

	// Missing required teachers/classrooms.
	req, _ := http.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
