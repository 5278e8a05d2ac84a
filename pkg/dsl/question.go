package dsl

import "github.com/quillon/quillon/pkg/domain"

// QuestionBuilder provides a fluent API for configuring one question.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// Required marks the question as required; its ID joins the template's
// required fields.
func (q *QuestionBuilder) Required() *QuestionBuilder {
	q.question.Required = true
	return q
}

// DependsOn gates the question on an earlier question's truthy answer.
func (q *QuestionBuilder) DependsOn(id string) *QuestionBuilder {
	q.question.DependsOn = id
	return q
}

// Help attaches a hint shown alongside the prompt.
func (q *QuestionBuilder) Help(help string) *QuestionBuilder {
	q.question.Help = help
	return q
}

// Pattern constrains the answer to a regular expression, with an optional
// custom rejection message.
func (q *QuestionBuilder) Pattern(pattern, message string) *QuestionBuilder {
	q.validation().Pattern = pattern
	q.validation().Message = message
	return q
}

// MinLength sets the minimum answer length in runes.
func (q *QuestionBuilder) MinLength(n int) *QuestionBuilder {
	q.validation().MinLength = n
	return q
}

// MaxLength sets the maximum answer length in runes.
func (q *QuestionBuilder) MaxLength(n int) *QuestionBuilder {
	q.validation().MaxLength = n
	return q
}

func (q *QuestionBuilder) validation() *domain.Validation {
	if q.question.Validation == nil {
		q.question.Validation = &domain.Validation{}
	}
	return q.question.Validation
}

// Template returns the parent builder, for call chaining.
func (q *QuestionBuilder) Template() *Builder {
	return q.builder
}
