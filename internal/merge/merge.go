// Package merge implements the placeholder substitution and conditional
// block resolution that turns a template body plus answers into a document.
//
// The grammar is deliberately tiny: {{field}} scalar placeholders and
// non-nesting {{#field}}...{{/field}} conditional blocks. No loops, no
// else branches. Rendering is a pure function of (body, answers).
package merge

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/quillon/quillon/pkg/domain"
)

var (
	// Any conditional block left after truthy blocks were unwrapped.
	danglingBlockRe = regexp.MustCompile(`(?s)\{\{#\w+\}\}.*?\{\{/\w+\}\}`)

	// Scalar placeholder.
	fieldRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

	// Anything brace-wrapped that survived the previous passes, including
	// orphaned {{#x}} or {{/x}} markers from malformed bodies.
	leftoverRe = regexp.MustCompile(`\{\{[^}]*\}\}`)

	// Three or more consecutive newlines, allowing blank-line whitespace.
	gapRe = regexp.MustCompile(`\n[ \t]*\n[ \t]*\n+`)
)

// Render merges answers into body and returns the final document text.
//
// Pass order: unwrap the conditional blocks of every truthy answer, drop
// the remaining blocks whole, substitute scalar placeholders, strip
// whatever tokens are left, then collapse the gaps the removals left
// behind. The output never contains "{{" or "}}".
func Render(body string, answers domain.Answers) string {
	out := body

	// Deterministic key order keeps the pass reproducible even though the
	// final result does not depend on it (blocks never nest on a key).
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !answers.Truthy(key) {
			continue
		}
		re, err := blockPattern(key)
		if err != nil {
			continue
		}
		out = re.ReplaceAllString(out, "$1")
	}

	// Blocks whose key was falsy or never answered disappear entirely.
	out = danglingBlockRe.ReplaceAllString(out, "")

	out = fieldRe.ReplaceAllStringFunc(out, func(token string) string {
		field := token[2 : len(token)-2]
		return answers[field]
	})

	// Unresolved tokens are stripped, never emitted literally.
	out = leftoverRe.ReplaceAllString(out, "")

	out = gapRe.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

// Fields returns the set of field names referenced by body, either as
// scalar placeholders or as conditional block keys. Used by the template
// authoring checks.
func Fields(body string) []string {
	seen := make(map[string]struct{})
	var fields []string

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}

	for _, m := range regexp.MustCompile(`\{\{[#/]?(\w+)\}\}`).FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	return fields
}

func blockPattern(key string) (*regexp.Regexp, error) {
	return regexp.Compile(fmt.Sprintf(`(?s)\{\{#%s\}\}(.*?)\{\{/%s\}\}`, regexp.QuoteMeta(key), regexp.QuoteMeta(key)))
}
