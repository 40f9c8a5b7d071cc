package models

// StudyPlanRequest holds the parsed inputs of a study plan.
type StudyPlanRequest struct {
	Subjects    []string `json:"subjects"`
	HoursPerDay float64  `json:"hours_per_day"`
	Days        int      `json:"days"`
}

// StudyPlanLine is one day of a generated plan.
type StudyPlanLine struct {
	Day         int     `json:"day"`
	Subject     string  `json:"subject"`
	TheoryHours float64 `json:"theory_hours"`
	ReviewHours float64 `json:"review_hours"`
}

// HasReview reports whether the day carries a review block.
func (l StudyPlanLine) HasReview() bool {
	return l.ReviewHours > 0
}
