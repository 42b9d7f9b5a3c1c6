package optimizer

import (
	"net/http"

	appErrors "github.com/classforge/timetable-optimizer/pkg/errors"
)

// Error kinds surfaced by the optimizer, per spec §7.
var (
	// ErrInputInfeasible: a slot has an empty qualified-teacher or
	// suitable-room set. Fatal — surfaced before evolution starts.
	ErrInputInfeasible = appErrors.New("INPUT_INFEASIBLE", http.StatusUnprocessableEntity, "timetable input is structurally infeasible")

	// ErrInvalidConfig: population_size < 2, generations < 0, or a
	// probability outside [0,1]. Surfaced pre-run. N == 0 is not an error:
	// the service returns an empty, feasible result for it.
	ErrInvalidConfig = appErrors.New("INVALID_CONFIG", http.StatusBadRequest, "invalid engine configuration")
)

// NoFeasibleSolution is not an error: generations were exhausted with
// hard > 0. It is reported via Result.Feasible, never returned as an error.
