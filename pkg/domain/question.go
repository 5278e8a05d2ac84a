package domain

// QuestionType constants define how an answer is collected and coerced.
const (
	// QuestionText collects a single line of free text.
	QuestionText = "text"
	// QuestionMultiline collects free text that may span several lines.
	QuestionMultiline = "multiline-text"
	// QuestionSelect collects one value out of a fixed option list.
	QuestionSelect = "select"
	// QuestionDate collects an ISO date (YYYY-MM-DD).
	QuestionDate = "date"
	// QuestionNumber collects a numeric value.
	QuestionNumber = "number"
	// QuestionBoolean collects a yes/no value, stored as "true" or "false".
	QuestionBoolean = "boolean"
)

// Option is a single selectable choice of a select question.
// Value is what gets stored and substituted; Label is what the user sees.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Validation holds the optional per-question answer constraints.
type Validation struct {
	// Pattern is a Go regular expression the canonical answer must match.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// MinLength / MaxLength bound the canonical answer length in runes.
	// Zero means "no bound".
	MinLength int `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty"`

	// Message overrides the generic pattern failure message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Question is a single prompt inside a template's questionnaire.
type Question struct {
	ID       string `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`

	// Options is only meaningful for select questions. Order is preserved.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`

	// DependsOn names an earlier question of the same template. While that
	// question's answer is absent, empty or "false", this question is
	// ineligible: it is neither asked nor counted toward completion.
	DependsOn string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`

	// Help is an optional hint shown alongside the prompt.
	Help string `json:"help,omitempty" yaml:"help,omitempty"`

	Validation *Validation `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// OptionValues returns the option values in declaration order.
func (q *Question) OptionValues() []string {
	values := make([]string, len(q.Options))
	for i, opt := range q.Options {
		values[i] = opt.Value
	}
	return values
}

// OptionLabel resolves an option value to its display label.
// Unknown values are returned unchanged.
func (q *Question) OptionLabel(value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
