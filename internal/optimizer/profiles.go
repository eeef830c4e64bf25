package optimizer

import (
	"regexp"
	"strings"

	"github.com/suchetkumbar/Syntara/internal/textutil"
)

// Profile describes how prompts are adapted for one model.
type Profile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Provider     string   `json:"provider"`
	ContextLimit int      `json:"contextLimit"`
	Tips         []string `json:"tips"`

	transform func(string) string
}

const (
	systemPreamble = "You are a helpful AI assistant. Follow these instructions precisely:\n\n"
	jsonHint       = "\n\n> Note: Respond in valid JSON if structured data is requested."
	conciseHint    = "\n\n> Important: Keep your response focused and concise."
	thinkHint      = "\n\nPlease think through this carefully before responding."
	stepsHint      = "\n\nBreak your response into clear, numbered steps."
	formatHint     = "\n\nFormat your response clearly with sections and bullet points."

	conciseWordLimit = 500
)

var (
	structuredData = regexp.MustCompile(`(?i)json|object|array|data`)
	respondInJSON  = regexp.MustCompile(`(?i)respond in json`)
	markdownHeader = regexp.MustCompile(`(?m)^## (.+)$`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	nonTagChars    = regexp.MustCompile(`[^a-z_]`)
	reasoning      = regexp.MustCompile(`(?i)think|reason|step.*by.*step`)
	decomposition  = regexp.MustCompile(`(?i)step|phase|stage|part`)
	layout         = regexp.MustCompile(`(?i)format|structure|layout`)
)

var profiles = []Profile{
	{
		ID:           "gpt-4o",
		Name:         "GPT-4o",
		Provider:     "OpenAI",
		ContextLimit: 128_000,
		Tips: []string{
			"GPT-4o excels with structured prompts using clear headers",
			"Supports JSON mode: add 'Respond in JSON' for structured output",
			"Handles multi-step reasoning well with explicit step markers",
		},
		transform: func(p string) string {
			p = ensureSection(p, "Role", "You are an expert AI assistant.")
			if structuredData.MatchString(p) && !respondInJSON.MatchString(p) {
				p += jsonHint
			}
			return p
		},
	},
	{
		ID:           "gpt-35",
		Name:         "GPT-3.5 Turbo",
		Provider:     "OpenAI",
		ContextLimit: 16_385,
		Tips: []string{
			"GPT-3.5 works best with concise, focused prompts",
			"Avoid overly complex multi-step instructions",
			"Use explicit examples for better results",
		},
		transform: func(p string) string {
			if textutil.WordCount(p) > conciseWordLimit {
				p += conciseHint
			}
			if lower := strings.ToLower(p); !strings.Contains(lower, "you are") && !strings.Contains(lower, "act as") {
				p = wrapAsSystemMessage(p)
			}
			return p
		},
	},
	{
		ID:           "claude-35",
		Name:         "Claude 3.5 Sonnet",
		Provider:     "Anthropic",
		ContextLimit: 200_000,
		Tips: []string{
			"Claude responds well to XML-tagged sections for structure",
			"Prefers 'Human/Assistant' turn format in conversations",
			"Excels with long-form analysis and nuanced reasoning",
		},
		transform: func(p string) string {
			p = markdownHeader.ReplaceAllStringFunc(p, func(line string) string {
				title := markdownHeader.FindStringSubmatch(line)[1]
				return "<" + xmlTag(title) + ">\n<!-- " + title + " -->"
			})
			if !reasoning.MatchString(p) {
				p += thinkHint
			}
			return p
		},
	},
	{
		ID:           "gemini-pro",
		Name:         "Gemini Pro",
		Provider:     "Google",
		ContextLimit: 1_000_000,
		Tips: []string{
			"Gemini handles very long contexts well, so don't be afraid of detail",
			"Supports multimodal input references",
			"Responds well to clear task decomposition",
		},
		transform: func(p string) string {
			if !decomposition.MatchString(p) {
				p += stepsHint
			}
			return p
		},
	},
	{
		ID:           "llama-3",
		Name:         "Llama 3",
		Provider:     "Meta",
		ContextLimit: 8_192,
		Tips: []string{
			"Llama 3 works best with system prompts that set clear boundaries",
			"Keep prompts under 2000 tokens for best performance",
			"Use explicit examples to demonstrate expected format",
		},
		transform: func(p string) string {
			p = wrapAsSystemMessage(p)
			if !layout.MatchString(p) {
				p += formatHint
			}
			return p
		},
	},
}

// ensureSection appends "## header" with content unless the header word
// already appears anywhere in the prompt.
func ensureSection(p, header, content string) string {
	if strings.Contains(strings.ToLower(p), strings.ToLower(header)) {
		return p
	}
	return p + "\n\n## " + header + "\n" + content
}

func wrapAsSystemMessage(p string) string {
	if strings.HasPrefix(p, "You are") || strings.HasPrefix(p, "Act as") {
		return p
	}
	return systemPreamble + p
}

func xmlTag(title string) string {
	tag := whitespaceRun.ReplaceAllString(strings.ToLower(title), "_")
	return nonTagChars.ReplaceAllString(tag, "")
}
