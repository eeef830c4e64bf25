// Package generator turns a short idea into a structured prompt and
// assembles prompts from named blocks.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suchetkumbar/Syntara/internal/textutil"
)

// Strategy selects a prompt template.
type Strategy string

// Supported strategies.
const (
	StrategyStandard       Strategy = "standard"
	StrategyChainOfThought Strategy = "chain-of-thought"
	StrategyFewShot        Strategy = "few-shot"
	StrategySystemPrompt   Strategy = "system-prompt"
)

// ErrUnknownStrategy is returned by ParseStrategy for unsupported names.
var ErrUnknownStrategy = errors.New("unknown strategy")

// StrategyInfo describes a strategy for listings and forms.
type StrategyInfo struct {
	Strategy    Strategy `json:"strategy"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
}

var strategies = []StrategyInfo{
	{StrategyStandard, "Standard", "Role, goal, context, constraints and output format sections"},
	{StrategyChainOfThought, "Chain of Thought", "Guides the model through explicit reasoning steps"},
	{StrategyFewShot, "Few-Shot", "Shows worked examples the model should follow"},
	{StrategySystemPrompt, "System Prompt", "Defines persistent behaviour for an assistant"},
}

var templates = map[Strategy]func(idea string) string{
	StrategyStandard:       standard,
	StrategyChainOfThought: chainOfThought,
	StrategyFewShot:        fewShot,
	StrategySystemPrompt:   systemPrompt,
}

// Strategies lists every strategy in display order.
func Strategies() []StrategyInfo {
	return append([]StrategyInfo(nil), strategies...)
}

// ParseStrategy validates a strategy name. An empty name selects standard.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return StrategyStandard, nil
	}
	if _, ok := templates[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Generate renders idea with the given strategy. A blank idea yields "" and
// an unknown strategy falls back to standard.
func Generate(idea string, strategy Strategy) string {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return ""
	}
	tmpl, ok := templates[strategy]
	if !ok {
		tmpl = standard
	}
	return tmpl(idea)
}

func standard(idea string) string {
	return fmt.Sprintf(`## Role
You are an expert AI assistant specialized in %[1]s.

## Goal
%[2]s. Deliver a comprehensive, actionable, and well-structured response.

## Context
The user needs help with %[1]s. Consider best practices, common pitfalls, and industry standards when forming your response.

## Constraints
- Be specific and actionable; avoid vague or generic advice
- Use concrete examples where applicable
- Keep the response well-organized and scannable
- Do not include unnecessary filler content
- Ensure accuracy and cite reasoning where possible

## Output Format
Provide your response in a structured format using:
- Clear headings for each section
- Bullet points for key items
- Code blocks if technical content is involved
- A brief summary at the end`, idea, textutil.Capitalize(idea))
}

func chainOfThought(idea string) string {
	return fmt.Sprintf(`## Role
You are an expert problem solver specialized in %[1]s.

## Task
%[2]s. Work through the problem step by step before giving a final answer.

## Reasoning Process
1. **Understand**: restate the problem and identify what is being asked.
2. **Break Down**: split the problem into smaller, manageable parts.
3. **Analyze**: examine each part, noting assumptions and trade-offs.
4. **Synthesize**: combine the partial results into a coherent solution.
5. **Conclude**: state the final answer and how confident you are in it.

## Constraints
- Show your reasoning for each step
- Do not skip steps, even when they seem obvious
- Flag any assumption you make

## Output Format
Number each reasoning step, then end with a clearly labelled **Final Answer** section.`, idea, textutil.Capitalize(idea))
}

func fewShot(idea string) string {
	return fmt.Sprintf(`## Role
You are an expert AI assistant specialized in %[1]s.

## Task
%[2]s. Follow the pattern shown in the examples below.

## Examples
**Example 1:**
Input: a typical request about %[1]s
Output: a concise, structured answer that addresses the request directly

**Example 2:**
Input: a more complex request about %[1]s with extra constraints
Output: a detailed answer that honours every constraint and explains trade-offs

## Constraints
- Match the tone, depth and structure of the examples
- Keep the same input/output pattern for new requests
- Do not copy example content verbatim

## Output Format
Respond with the same layout as the example outputs.`, idea, textutil.Capitalize(idea))
}

func systemPrompt(idea string) string {
	return fmt.Sprintf(`You are a dedicated assistant for %[1]s.

**Core Behaviors:**
- Stay focused on %[1]s and related topics
- Ask a clarifying question when a request is ambiguous
- Give accurate, actionable answers and state your assumptions
- Decline requests outside your scope politely

**Communication Style:**
- Clear and concise, with structured formatting for longer answers
- Professional and approachable
- Use examples to illustrate complex points

**Boundaries:**
- Never invent facts or sources
- Always say so when you are unsure`, idea)
}
