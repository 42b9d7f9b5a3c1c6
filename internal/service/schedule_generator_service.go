package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/classforge/timetable-optimizer/internal/domain"
	"github.com/classforge/timetable-optimizer/internal/dto"
	"github.com/classforge/timetable-optimizer/internal/optimizer"
	appErrors "github.com/classforge/timetable-optimizer/pkg/errors"
)

// ScheduleGeneratorService converts a generate-schedule request into the
// domain model, builds the Feasibility Index, runs the Evolutionary Engine
// to completion, and maps the winning Individual back to a response.
type ScheduleGeneratorService struct {
	log       *zap.Logger
	metrics   *MetricsService
	validator *validator.Validate
}

// NewScheduleGeneratorService constructs the service. metrics and validate
// may both be nil: metrics disables instrumentation, validate falls back to
// validator.New().
func NewScheduleGeneratorService(log *zap.Logger, metrics *MetricsService, validate *validator.Validate) *ScheduleGeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	return &ScheduleGeneratorService{log: log, metrics: metrics, validator: validate}
}

// Generate runs one optimizer pass for req and returns the resulting
// schedule. It never blocks on I/O: the whole operation is CPU-bound.
func (s *ScheduleGeneratorService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := s.validator.Struct(req.Config); err != nil {
		s.log.Warn("schedule_generation_invalid_config", zap.Error(err))
		return nil, optimizer.ErrInvalidConfig
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "generate payload failed validation")
	}

	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID))

	curriculum := toCurriculumDemand(req.Curriculum)
	slots := domain.BuildLessonSlots(curriculum)

	if len(slots) == 0 {
		log.Info("schedule_generation_empty")
		return &dto.GenerateScheduleResponse{
			Assignments:    []dto.ScheduledLesson{},
			BestFitness:    dto.Fitness{Hard: 0, Soft: 0},
			Feasible:       true,
			GenerationsRun: 0,
		}, nil
	}

	teachers := toTeacherQualifications(req.Teachers)
	classrooms := toClassroomCapabilities(req.Classrooms)

	index, err := domain.BuildFeasibilityIndex(slots, teachers, classrooms)
	if err != nil {
		log.Warn("schedule_generation_infeasible_input", zap.Error(err))
		return nil, optimizer.ErrInputInfeasible
	}

	cfg := toEngineConfig(req.Config)
	engine, err := optimizer.NewEngine(cfg, slots, index)
	if err != nil {
		return nil, err
	}

	log.Info("schedule_generation_started",
		zap.Int("slots", len(slots)),
		zap.Int("population_size", cfg.PopulationSize),
		zap.Int("generations", cfg.Generations),
	)

	start := time.Now()
	result := engine.Run()
	elapsed := time.Since(start)

	s.metrics.ObserveScheduleGeneration(elapsed, result.GenerationsRun, result.Best.Hard, result.Best.Soft, result.Feasible)

	log.Info("schedule_generation_finished",
		zap.Duration("elapsed", elapsed),
		zap.Int("generations_run", result.GenerationsRun),
		zap.Int("hard", result.Best.Hard),
		zap.Int("soft", result.Best.Soft),
		zap.Bool("feasible", result.Feasible),
	)

	return &dto.GenerateScheduleResponse{
		Assignments:    toScheduledLessons(slots, result.Best),
		BestFitness:    dto.Fitness{Hard: result.Best.Hard, Soft: result.Best.Soft},
		Feasible:       result.Feasible,
		GenerationsRun: result.GenerationsRun,
	}, nil
}

func toTeacherQualifications(rows []dto.TeacherQualificationRow) []domain.TeacherQualification {
	out := make([]domain.TeacherQualification, len(rows))
	for i, r := range rows {
		out[i] = domain.TeacherQualification{TeacherID: r.TeacherID, SubjectID: r.SubjectID}
	}
	return out
}

func toClassroomCapabilities(rows []dto.ClassroomCapabilityRow) []domain.ClassroomCapability {
	out := make([]domain.ClassroomCapability, len(rows))
	for i, r := range rows {
		out[i] = domain.ClassroomCapability{ClassroomID: r.ClassroomID, TypeID: r.TypeID}
	}
	return out
}

func toCurriculumDemand(rows []dto.CurriculumDemandRow) []domain.CurriculumDemand {
	out := make([]domain.CurriculumDemand, len(rows))
	for i, r := range rows {
		out[i] = domain.CurriculumDemand{
			SectionID:               r.SectionID,
			SubjectID:               r.SubjectID,
			WeeklyHours:             r.WeeklyHours,
			RequiredClassroomTypeID: r.RequiredClassroomTypeID,
		}
	}
	return out
}

func toEngineConfig(c dto.EngineConfig) optimizer.Config {
	return optimizer.Config{
		PopulationSize: c.PopulationSize,
		Generations:    c.Generations,
		PCrossover:     c.PCrossover,
		PMutate:        c.PMutate,
		PGene:          c.PGene,
		GreedyAttempts: c.GreedyAttempts,
		RepairCycles:   c.RepairCycles,
		RepairAttempts: c.RepairAttempts,
		Seed:           c.Seed,
	}
}

func toScheduledLessons(slots []domain.LessonSlot, ind *domain.Individual) []dto.ScheduledLesson {
	out := make([]dto.ScheduledLesson, len(slots))
	for i, slot := range slots {
		gene := ind.Genes[i]
		out[i] = dto.ScheduledLesson{
			SectionID: slot.SectionID,
			SubjectID: slot.SubjectID,
			Index:     slot.WithinSubjectIndex,
			Assignment: dto.Assignment{
				TeacherID:   gene.TeacherID,
				ClassroomID: gene.ClassroomID,
				Day:         gene.Day,
				Period:      gene.Period,
			},
		}
	}
	return out
}
