package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"daily-planner/internal/planner"
	"daily-planner/pkg/llmprovider"
)

var (
	errNoDraftJSON  = errors.New("assistant: no JSON object in model output")
	errNoDraftTasks = errors.New("assistant: draft has no tasks")

	fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")
)

// DraftSchedule asks the model for durations and an order. Model output is
// reconciled against the input names; any failure yields the fallback draft.
func (a *implAssistant) DraftSchedule(ctx context.Context, names []string) Draft {
	if len(names) == 0 {
		return FallbackDraft(names)
	}

	text, err := a.generate(ctx, generateOptions{
		system:      PromptJSONOnlySystem,
		messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, fmt.Sprintf(PromptDraft, strings.Join(names, ", ")))},
		temperature: DraftTemperature,
		maxTokens:   DraftMaxTokens,
		jsonOutput:  true,
	})
	if err != nil {
		a.l.Warnf(ctx, "%s: model unavailable, using fallback: %v", LogPrefixDraft, err)
		return FallbackDraft(names)
	}

	parsed, err := parseDraft(text)
	if err != nil {
		a.l.Warnf(ctx, "%s: unusable model output, using fallback: %v", LogPrefixDraft, err)
		return FallbackDraft(names)
	}

	commentary := strings.TrimSpace(parsed.Commentary)
	if commentary == "" {
		commentary = MessageDraftDefault
	}

	return Draft{
		Tasks:      reconcileDraft(names, parsed.Tasks),
		Commentary: commentary,
		Source:     DraftSourceModel,
	}
}

// FallbackDraft builds a draft without the model: estimated durations and
// priorities by thirds of the list.
func FallbackDraft(names []string) Draft {
	n := len(names)
	tasks := make([]DraftTask, n)
	for i, name := range names {
		tasks[i] = DraftTask{
			Name:        name,
			Duration:    planner.EstimateDuration(name, i, n),
			Priority:    priorityByPosition(i, n),
			Description: "Complete " + name,
		}
	}

	commentary := MessageDraftFallback
	if n == 0 {
		commentary = MessageDraftDefault
	}
	return Draft{Tasks: tasks, Commentary: commentary, Source: DraftSourceFallback}
}

func priorityByPosition(i, n int) string {
	switch {
	case 3*i < n:
		return PriorityHigh
	case 3*i < 2*n:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// parseDraft tries, in order: the whole text, a fenced code block, and the
// span from the first '{' to the last '}'.
func parseDraft(text string) (modelDraft, error) {
	candidates := []string{strings.TrimSpace(text)}
	if m := fencedBlock.FindStringSubmatch(text); len(m) > 1 {
		candidates = append(candidates, m[1])
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	lastErr := errNoDraftJSON
	for _, c := range candidates {
		var d modelDraft
		if err := decodeStrict(c, &d); err != nil {
			lastErr = err
			continue
		}
		if len(d.Tasks) == 0 {
			lastErr = errNoDraftTasks
			continue
		}
		return d, nil
	}
	return modelDraft{}, lastErr
}

func decodeStrict(s string, v any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errNoDraftJSON
	}
	return nil
}

type draftCandidate struct {
	name        string
	raw         any
	priority    string
	description string
}

// reconcileDraft keeps the model's order for tasks it named correctly,
// drops tasks it invented and appends any it forgot. When no name matches
// but the counts agree, tasks are paired by position. The user's own
// spelling of each name is kept.
func reconcileDraft(names []string, modelTasks []modelDraftTask) []DraftTask {
	positions := make(map[string][]int, len(names))
	for i, n := range names {
		key := nameKey(n)
		positions[key] = append(positions[key], i)
	}

	used := make([]bool, len(names))
	ordered := make([]draftCandidate, 0, len(names))
	for _, mt := range modelTasks {
		key := nameKey(mt.Name)
		for _, pos := range positions[key] {
			if used[pos] {
				continue
			}
			used[pos] = true
			ordered = append(ordered, draftCandidate{
				name:        names[pos],
				raw:         mt.rawDuration(),
				priority:    mt.Priority,
				description: mt.Description,
			})
			break
		}
	}

	if len(ordered) == 0 && len(modelTasks) == len(names) {
		for i, mt := range modelTasks {
			used[i] = true
			ordered = append(ordered, draftCandidate{
				name:        names[i],
				raw:         mt.rawDuration(),
				priority:    mt.Priority,
				description: mt.Description,
			})
		}
	}

	for i, n := range names {
		if !used[i] {
			ordered = append(ordered, draftCandidate{name: n})
		}
	}

	count := len(ordered)
	tasks := make([]DraftTask, count)
	for i, c := range ordered {
		tasks[i] = DraftTask{
			Name:        c.name,
			Duration:    planner.NormalizeDuration(c.raw, c.name, i, count),
			Priority:    normalizePriority(c.priority),
			Description: strings.TrimSpace(c.description),
		}
	}
	return tasks
}

func nameKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func normalizePriority(p string) string {
	switch p = strings.ToLower(strings.TrimSpace(p)); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	default:
		return ""
	}
}
