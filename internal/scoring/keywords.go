package scoring

// Keywords holds the curated lists the rubric matches against. All entries
// are lowercase; matching is case-insensitive substring containment.
type Keywords struct {
	Role           []string
	RoleAdjacent   []string
	Constraints    []string
	Output         []string
	SpecificVerbs  []string
	SectionMarkers []string
	ExampleMarkers []string
}

// DefaultKeywords returns a fresh copy of the built-in keyword tables.
func DefaultKeywords() Keywords {
	return Keywords{
		Role: []string{
			"you are", "act as", "as a", "your role", "you're a",
			"assume the role", "persona", "expert in", "specialist",
		},
		RoleAdjacent: []string{
			"i want you to", "your job", "pretend", "imagine you're", "behave as",
		},
		Constraints: []string{
			"must", "should", "do not", "don't", "avoid", "ensure", "limit",
			"only", "never", "always", "no more than", "at least", "within", "between",
		},
		Output: []string{
			"format", "output", "respond with", "return", "provide", "deliver",
			"structure your", "in json", "in markdown", "as a list", "table",
			"bullet points", "numbered list", "csv", "xml", "yaml",
		},
		SpecificVerbs: []string{
			"analyze", "compare", "evaluate", "create", "design", "implement",
			"explain", "summarize", "generate", "optimize", "review", "assess",
			"develop", "outline", "describe", "debug", "refactor", "translate",
			"classify", "extract", "rank", "propose",
		},
		SectionMarkers: []string{
			"##", "**", "- ", "1.", "2.", "3.", "context:", "goal:", "task:",
			"output:", "constraints:", "role:", "instructions:", "requirements:",
			"background:", "examples:",
		},
		ExampleMarkers: []string{
			"for example", "e.g.", "such as", "here's an example", "example:",
			"sample:", "like this:", "input:", "output:", "few-shot",
		},
	}
}
