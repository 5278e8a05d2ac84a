// Package validator performs static integrity checks over template sets.
// Malformed template data is an authoring bug, not a runtime condition:
// these checks run at registry construction and in the test suite over
// the built-in set, so the engine itself never has to recover from a
// broken template.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quillon/quillon/internal/merge"
	"github.com/quillon/quillon/pkg/domain"
)

// CheckSet validates a whole template set, including cross-template ID
// uniqueness. It reports every problem found, not just the first.
func CheckSet(templates []domain.Template) error {
	var problems []string

	seen := make(map[string]struct{}, len(templates))
	for i := range templates {
		t := &templates[i]
		if _, dup := seen[t.ID]; dup {
			problems = append(problems, fmt.Sprintf("duplicate template id %q", t.ID))
		}
		seen[t.ID] = struct{}{}

		problems = append(problems, checkTemplate(t)...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d template problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

// Check validates a single template.
func Check(t *domain.Template) error {
	if problems := checkTemplate(t); len(problems) > 0 {
		return fmt.Errorf("found %d template problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

func checkTemplate(t *domain.Template) []string {
	var problems []string

	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf("template %q: ", t.ID)+fmt.Sprintf(format, args...))
	}

	if t.ID == "" {
		problems = append(problems, "template with empty id")
	}
	if t.Name == "" {
		report("empty name")
	}

	// Question IDs must be unique, and dependsOn must point backwards:
	// the navigator walks the list linearly and never revisits.
	earlier := make(map[string]struct{}, len(t.Questions))
	for i := range t.Questions {
		q := &t.Questions[i]
		if q.ID == "" {
			report("question #%d has an empty id", i)
			continue
		}
		if _, dup := earlier[q.ID]; dup {
			report("duplicate question id %q", q.ID)
		}

		if q.DependsOn != "" {
			if q.DependsOn == q.ID {
				report("question %q depends on itself", q.ID)
			} else if _, ok := earlier[q.DependsOn]; !ok {
				report("question %q depends on %q, which is not declared earlier", q.ID, q.DependsOn)
			}
		}

		switch q.Type {
		case domain.QuestionText, domain.QuestionMultiline, domain.QuestionDate,
			domain.QuestionNumber, domain.QuestionBoolean:
			if len(q.Options) > 0 {
				report("question %q of type %q must not declare options", q.ID, q.Type)
			}
		case domain.QuestionSelect:
			if len(q.Options) == 0 {
				report("select question %q has no options", q.ID)
			}
		default:
			report("question %q has unknown type %q", q.ID, q.Type)
		}

		if v := q.Validation; v != nil && v.Pattern != "" {
			if _, err := regexp.Compile(v.Pattern); err != nil {
				report("question %q has an invalid pattern: %v", q.ID, err)
			}
		}

		earlier[q.ID] = struct{}{}
	}

	for _, id := range t.RequiredFields {
		if _, ok := earlier[id]; !ok {
			report("required field %q does not match any question", id)
		}
	}

	// Every body token must resolve to a question, otherwise it would be
	// silently stripped from every rendered document.
	for _, field := range merge.Fields(t.DocumentBody) {
		if _, ok := earlier[field]; !ok {
			report("body references unknown field %q", field)
		}
	}

	// Conditional blocks must pair up and never nest. An orphaned marker
	// survives to render time, where it is stripped and the block content
	// leaks into every document unconditionally.
	open := ""
	for _, m := range blockMarkerRe.FindAllStringSubmatch(t.DocumentBody, -1) {
		kind, name := m[1], m[2]
		switch {
		case kind == "#" && open != "":
			report("body opens block %q inside block %q; blocks must not nest", name, open)
		case kind == "#":
			open = name
		case open == "":
			report("body closes block %q that was never opened", name)
		case name != open:
			report("body closes block %q while block %q is open", name, open)
		default:
			open = ""
		}
	}
	if open != "" {
		report("body block %q is never closed", open)
	}

	return problems
}

var blockMarkerRe = regexp.MustCompile(`\{\{([#/])(\w+)\}\}`)
