package dto

// TeacherQualificationRow states that a teacher may be assigned to teach a
// subject.
type TeacherQualificationRow struct {
	TeacherID int `json:"teacherId" validate:"required"`
	SubjectID int `json:"subjectId" validate:"required"`
}

// ClassroomCapabilityRow states that a classroom supports a room type.
type ClassroomCapabilityRow struct {
	ClassroomID int `json:"classroomId" validate:"required"`
	TypeID      int `json:"typeId" validate:"required"`
}

// CurriculumDemandRow states how many weekly lessons a section needs of a
// subject, and what classroom type those lessons require.
type CurriculumDemandRow struct {
	SectionID               int `json:"sectionId" validate:"required"`
	SubjectID               int `json:"subjectId" validate:"required"`
	WeeklyHours             int `json:"weeklyHours" validate:"required,min=1"`
	RequiredClassroomTypeID int `json:"requiredClassroomTypeId" validate:"required"`
}

// EngineConfig is the request-facing mirror of optimizer.Config. Every field
// is optional; zero count fields fall back to the engine's defaults, while a
// zero (or omitted) probability is used as zero.
type EngineConfig struct {
	PopulationSize int     `json:"populationSize" validate:"omitempty,min=2"`
	Generations    int     `json:"generations" validate:"omitempty,min=0"`
	PCrossover     float64 `json:"pCrossover" validate:"omitempty,min=0,max=1"`
	PMutate        float64 `json:"pMutate" validate:"omitempty,min=0,max=1"`
	PGene          float64 `json:"pGene" validate:"omitempty,min=0,max=1"`
	GreedyAttempts int     `json:"greedyAttempts" validate:"omitempty,min=1"`
	RepairCycles   int     `json:"repairCycles" validate:"omitempty,min=0"`
	RepairAttempts int     `json:"repairAttempts" validate:"omitempty,min=1"`
	Seed           int64   `json:"seed"`
}

// GenerateScheduleRequest is the full input to one optimizer run: the
// feasibility inputs (who can teach what, which rooms support what, and how
// much of each subject every section needs) plus engine tuning.
type GenerateScheduleRequest struct {
	Teachers   []TeacherQualificationRow `json:"teachers" validate:"required,min=1,dive"`
	Classrooms []ClassroomCapabilityRow  `json:"classrooms" validate:"required,min=1,dive"`
	Curriculum []CurriculumDemandRow     `json:"curriculum" validate:"omitempty,dive"`
	Config     EngineConfig              `json:"config"`
}

// Assignment is the (teacher, classroom, day, period) placement of one
// lesson occurrence.
type Assignment struct {
	TeacherID   int `json:"teacherId"`
	ClassroomID int `json:"classroomId"`
	Day         int `json:"day"`
	Period      int `json:"period"`
}

// ScheduledLesson ties an Assignment back to the curriculum demand it
// fulfils: section, subject, and which weekly occurrence of that subject
// this is (0-indexed).
type ScheduledLesson struct {
	SectionID int `json:"sectionId"`
	SubjectID int `json:"subjectId"`
	Index     int `json:"index"`
	Assignment
}

// Fitness is the (hard, soft) objective pair the engine minimizes.
type Fitness struct {
	Hard int `json:"hard"`
	Soft int `json:"soft"`
}

// GenerateScheduleResponse is the optimizer's terminal output for one run.
type GenerateScheduleResponse struct {
	Assignments    []ScheduledLesson `json:"assignments"`
	BestFitness    Fitness           `json:"bestFitness"`
	Feasible       bool              `json:"feasible"`
	GenerationsRun int               `json:"generationsRun"`
}
