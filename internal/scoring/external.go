package scoring

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/score.schema.json
var scoreSchemaJSON string

var (
	scoreSchema  = mustCompileSchema(scoreSchemaJSON, "score.schema.json")
	errorPrinter = message.NewPrinter(language.English)
)

// ErrEmptyExternal is returned when there is nothing to parse.
var ErrEmptyExternal = errors.New("external score is empty")

type externalScore struct {
	Breakdown struct {
		Role         float64 `json:"role"`
		Specificity  float64 `json:"specificity"`
		Clarity      float64 `json:"clarity"`
		Structure    float64 `json:"structure"`
		Constraints  float64 `json:"constraints"`
		OutputFormat float64 `json:"outputFormat"`
	} `json:"breakdown"`
	Suggestions []string `json:"suggestions"`
}

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// StripFences removes a leading ``` (optionally tagged, e.g. ```json) and a
// trailing ``` from a model answer.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseExternal normalises a score produced outside the scorer. Malformed
// JSON is repaired, the shape is validated, every field is clamped and the
// total is recomputed from the breakdown.
func ParseExternal(raw string) (PromptScore, error) {
	body := StripFences(raw)
	if body == "" {
		return PromptScore{}, ErrEmptyExternal
	}

	repaired, err := jsonrepair.RepairJSON(body)
	if err != nil {
		return PromptScore{}, fmt.Errorf("repairing external score: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(repaired))
	if err != nil {
		return PromptScore{}, fmt.Errorf("decoding external score: %w", err)
	}
	if err := scoreSchema.Validate(inst); err != nil {
		return PromptScore{}, fmt.Errorf("invalid external score: %s", describeSchemaError(err))
	}

	var ext externalScore
	if err := json.Unmarshal([]byte(repaired), &ext); err != nil {
		return PromptScore{}, fmt.Errorf("decoding external score: %w", err)
	}

	b := Clamp(ScoreBreakdown{
		Role:         round(ext.Breakdown.Role),
		Specificity:  round(ext.Breakdown.Specificity),
		Clarity:      round(ext.Breakdown.Clarity),
		Structure:    round(ext.Breakdown.Structure),
		Constraints:  round(ext.Breakdown.Constraints),
		OutputFormat: round(ext.Breakdown.OutputFormat),
	})
	return NewPromptScore(b, ext.Suggestions, nil), nil
}

func round(v float64) int {
	return int(math.Round(v))
}

func describeSchemaError(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collectSchemaErrors(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(errorPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, msgs)
	}
}
