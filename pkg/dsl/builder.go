// Package dsl provides a fluent builder for authoring templates in Go
// code, as an alternative to markdown template files.
package dsl

import (
	"github.com/quillon/quillon/internal/validator"
	"github.com/quillon/quillon/pkg/domain"
)

// Builder manages the construction of one template.
type Builder struct {
	template  domain.Template
	questions []*QuestionBuilder
}

// New creates a template builder for the given ID.
func New(id string) *Builder {
	return &Builder{
		template: domain.Template{
			ID:       id,
			Category: domain.CategoryOther,
		},
	}
}

// Name sets the display name.
func (b *Builder) Name(name string) *Builder {
	b.template.Name = name
	return b
}

// Description sets the catalogue description.
func (b *Builder) Description(description string) *Builder {
	b.template.Description = description
	return b
}

// Category sets the catalogue category.
func (b *Builder) Category(category domain.Category) *Builder {
	b.template.Category = category
	return b
}

// EstimatedTime sets the human-readable completion estimate.
func (b *Builder) EstimatedTime(estimate string) *Builder {
	b.template.EstimatedTime = estimate
	return b
}

// Body sets the document body with its placeholders.
func (b *Builder) Body(body string) *Builder {
	b.template.DocumentBody = body
	return b
}

func (b *Builder) add(id, text, qtype string) *QuestionBuilder {
	qb := &QuestionBuilder{
		question: domain.Question{ID: id, Text: text, Type: qtype},
		builder:  b,
	}
	b.questions = append(b.questions, qb)
	return qb
}

// Text appends a single-line text question.
func (b *Builder) Text(id, text string) *QuestionBuilder {
	return b.add(id, text, domain.QuestionText)
}

// Multiline appends a multi-line text question.
func (b *Builder) Multiline(id, text string) *QuestionBuilder {
	return b.add(id, text, domain.QuestionMultiline)
}

// Number appends a numeric question.
func (b *Builder) Number(id, text string) *QuestionBuilder {
	return b.add(id, text, domain.QuestionNumber)
}

// Date appends an ISO date question.
func (b *Builder) Date(id, text string) *QuestionBuilder {
	return b.add(id, text, domain.QuestionDate)
}

// Boolean appends a yes/no question.
func (b *Builder) Boolean(id, text string) *QuestionBuilder {
	return b.add(id, text, domain.QuestionBoolean)
}

// Select appends a single-choice question with the given options.
func (b *Builder) Select(id, text string, options ...domain.Option) *QuestionBuilder {
	qb := b.add(id, text, domain.QuestionSelect)
	qb.question.Options = options
	return qb
}

// Opt is a shorthand option constructor for Select.
func Opt(value, label string) domain.Option {
	return domain.Option{Value: value, Label: label}
}

// Build assembles and validates the template.
func (b *Builder) Build() (domain.Template, error) {
	tpl := b.template
	tpl.Questions = make([]domain.Question, len(b.questions))
	tpl.RequiredFields = nil
	for i, qb := range b.questions {
		tpl.Questions[i] = qb.question
		if qb.question.Required {
			tpl.RequiredFields = append(tpl.RequiredFields, qb.question.ID)
		}
	}

	if err := validator.Check(&tpl); err != nil {
		return domain.Template{}, err
	}
	return tpl, nil
}
