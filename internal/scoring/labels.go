package scoring

// Color classes for a total score.
const (
	ColorSuccess     = "success"
	ColorWarning     = "warning"
	ColorDestructive = "destructive"
)

// ScoreColor classifies a total into three colour tiers.
func ScoreColor(total int) string {
	switch {
	case total >= 80:
		return ColorSuccess
	case total >= 50:
		return ColorWarning
	default:
		return ColorDestructive
	}
}

// ScoreLabel classifies a total into six quality labels.
func ScoreLabel(total int) string {
	switch {
	case total >= 85:
		return "Excellent"
	case total >= 70:
		return "Great"
	case total >= 55:
		return "Good"
	case total >= 40:
		return "Fair"
	case total >= 20:
		return "Basic"
	default:
		return "Needs Work"
	}
}

// Labels lists every label from best to worst.
func Labels() []string {
	return []string{"Excellent", "Great", "Good", "Fair", "Basic", "Needs Work"}
}
