package model

// SchedulingResult is the immutable outcome of one Schedule or ForceSchedule call. Column
// order here is the column order of the results CSV (see pkg/results).
type SchedulingResult struct {
	Success               bool
	Task                  string
	SchedulingDurationMsec int64
	TargetNode            *string
	TargetNodeType        *string
	Score                 *int

	AvgPredLatencySLO *float64
	AvgPredLatency    *float64
	AvgDataLatencySLO *float64
	AvgDataLatency    *float64

	DegCOverRecommended *float64
	DegCOverMax         *float64

	FailureReason *string
}
