package models

// Criteria is the 0-3 rubric used by the session report: each skill is
// a component score mapped onto a 3-point scale.
type Criteria struct {
	Accuracy  float64 `json:"accuracy"`
	Depth     float64 `json:"depth"`
	Clarity   float64 `json:"clarity"`
	Relevance float64 `json:"relevance"`
}

// EvaluatedAnswer is one scored answer as the report generator consumes
// it: the 0-10 score plus the rubric breakdown and the evaluator's
// feedback line.
type EvaluatedAnswer struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Score    float64  `json:"score"`
	Reason   string   `json:"reason"`
	Criteria Criteria `json:"criteria"`
}

// QuestionFeedback is the per-question section of a report.
type QuestionFeedback struct {
	Question          string  `json:"question"`
	YourAnswer        string  `json:"your_answer"`
	Score             float64 `json:"score"`
	Performance       string  `json:"performance"`
	Feedback          string  `json:"feedback"`
	Tips              string  `json:"tips"`
	CriteriaBreakdown string  `json:"criteria_breakdown"`
}

// Report is the full end-of-session summary.
type Report struct {
	Evaluations     []QuestionFeedback `json:"evaluations"`
	OverallScore    float64            `json:"overall_score"`
	OverallFeedback string             `json:"overall_feedback"`
	Strengths       []string           `json:"strengths"`
	Weaknesses      []string           `json:"weaknesses"`
	SkillSummary    Criteria           `json:"skill_summary"`
	ImprovementPlan []string           `json:"improvement_plan"`
}
