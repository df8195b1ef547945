package report

import (
	"fmt"
	"math"

	"github.com/interview-coach/backend/internal/engine"
	"github.com/interview-coach/backend/internal/models"
)

// Performance bands over the 0-10 score.
const (
	PerformanceHigh    = "high"
	PerformanceAverage = "average"
	PerformanceLow     = "low"
)

// ClassifyPerformance bands a 0-10 score: >=7 high, >=4 average,
// otherwise low.
func ClassifyPerformance(score float64) string {
	switch {
	case score >= 7:
		return PerformanceHigh
	case score >= 4:
		return PerformanceAverage
	default:
		return PerformanceLow
	}
}

func tipsFor(performance string) string {
	switch performance {
	case PerformanceHigh:
		return "Strong answer — you covered key concepts well. " +
			"Try adding real-world examples or deeper insights to reach excellence."
	case PerformanceAverage:
		return "Decent attempt — some relevant points are there, but depth or clarity is missing. " +
			"Improve structure and provide more detailed explanations."
	default:
		return "Weak response — core concepts were either missing or unclear. " +
			"Revise the fundamentals and practice structured explanations."
	}
}

// CriteriaFrom maps an evaluation onto the 0-3 rubric: semantic
// alignment becomes accuracy, keyword coverage becomes relevance,
// delivery clarity stays clarity, and the answer's length-fit band
// stands in for depth.
func CriteriaFrom(res models.EvaluationResult, answer string) models.Criteria {
	return models.Criteria{
		Accuracy:  round2(res.Components.Semantic * 3),
		Depth:     round2(engine.LengthFit(answer) * 3),
		Clarity:   round2(res.Components.Clarity * 3),
		Relevance: round2(res.Components.Keyword * 3),
	}
}

func improvementPlan() []string {
	return []string{
		"Revise fundamental concepts from each topic.",
		"Practice structured 3-step answers (Definition → Explanation → Example).",
		"Use real-world examples to improve depth.",
		"Increase clarity by writing shorter and more organised points.",
	}
}

// Generate builds the end-of-session report from the evaluated
// answers. An empty input yields the explicit no-answers report rather
// than an error.
func Generate(answers []models.EvaluatedAnswer) models.Report {
	if len(answers) == 0 {
		return models.Report{
			Evaluations:     []models.QuestionFeedback{},
			OverallFeedback: "No answers submitted.",
			Strengths:       []string{},
			Weaknesses:      []string{},
			ImprovementPlan: []string{},
		}
	}

	var (
		evaluations []models.QuestionFeedback
		total       float64
		skills      models.Criteria
	)

	for _, a := range answers {
		performance := ClassifyPerformance(a.Score)

		skills.Accuracy += a.Criteria.Accuracy
		skills.Depth += a.Criteria.Depth
		skills.Clarity += a.Criteria.Clarity
		skills.Relevance += a.Criteria.Relevance

		answer := a.Answer
		if answer == "" {
			answer = "Not provided"
		}

		evaluations = append(evaluations, models.QuestionFeedback{
			Question:    a.Question,
			YourAnswer:  answer,
			Score:       a.Score,
			Performance: performance,
			Feedback:    a.Reason,
			Tips:        tipsFor(performance),
			CriteriaBreakdown: fmt.Sprintf(
				"Accuracy: %g, Depth: %g, Clarity: %g, Relevance: %g",
				a.Criteria.Accuracy, a.Criteria.Depth, a.Criteria.Clarity, a.Criteria.Relevance),
		})

		total += a.Score
	}

	n := float64(len(answers))
	avg := round2(total / n)
	summary := models.Criteria{
		Accuracy:  round2(skills.Accuracy / n),
		Depth:     round2(skills.Depth / n),
		Clarity:   round2(skills.Clarity / n),
		Relevance: round2(skills.Relevance / n),
	}

	return models.Report{
		Evaluations:     evaluations,
		OverallScore:    avg,
		OverallFeedback: overallMessage(avg),
		Strengths:       strengths(summary),
		Weaknesses:      weaknesses(summary),
		SkillSummary:    summary,
		ImprovementPlan: improvementPlan(),
	}
}

func overallMessage(avg float64) string {
	switch {
	case avg >= 7:
		return fmt.Sprintf("Excellent performance! Average score: %g/10. "+
			"Your answers show strong understanding and clarity.", avg)
	case avg >= 4:
		return fmt.Sprintf("Average performance with a score of %g/10. "+
			"You have a decent grasp of concepts but need to improve structure and depth.", avg)
	default:
		return fmt.Sprintf("Below-average performance with a score of %g/10. "+
			"Fundamental concepts need improvement.", avg)
	}
}

func strengths(summary models.Criteria) []string {
	var out []string
	if summary.Accuracy >= 2 {
		out = append(out, "Good conceptual accuracy.")
	}
	if summary.Clarity >= 2 {
		out = append(out, "Clear and understandable explanations.")
	}
	if summary.Relevance >= 2 {
		out = append(out, "Answers remained focused and relevant to the question.")
	}
	if len(out) == 0 {
		return []string{"No major strengths identified."}
	}
	return out
}

func weaknesses(summary models.Criteria) []string {
	var out []string
	if summary.Depth < 2 {
		out = append(out, "Lack of depth in explanations.")
	}
	if summary.Accuracy < 1.5 {
		out = append(out, "Some conceptual inaccuracies.")
	}
	if summary.Clarity < 1.5 {
		out = append(out, "Explanations were unclear or poorly structured.")
	}
	if len(out) == 0 {
		return []string{"No major weaknesses identified."}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
