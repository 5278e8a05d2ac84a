package runtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/quillon/quillon/pkg/domain"
)

const isoDateLayout = "2006-01-02"

// ValidateAnswer checks one proposed answer against its question's rules
// and returns the canonical string form on success. It never mutates
// anything; callers commit the returned value themselves.
//
// Booleans always come back as "true"/"false", numbers in plain decimal
// notation and dates as YYYY-MM-DD, so eligibility checks and rendering
// work on one consistent encoding.
func ValidateAnswer(q *domain.Question, value any) (string, error) {
	raw, ok := domain.Stringify(value)
	if !ok {
		return "", &domain.ValidationError{
			QuestionID: q.ID,
			Code:       domain.ValidationType,
			Message:    fmt.Sprintf("expected a scalar value, got %T", value),
		}
	}

	canonical := strings.TrimSpace(raw)
	if canonical == "" {
		if q.Required {
			return "", &domain.ValidationError{
				QuestionID: q.ID,
				Code:       domain.ValidationRequired,
				Message:    "an answer is required",
			}
		}
		// Optional questions may be skipped with an empty answer.
		return "", nil
	}

	canonical, err := coerce(q, canonical)
	if err != nil {
		return "", err
	}

	if v := q.Validation; v != nil {
		if v.Pattern != "" {
			matched, err := regexp.MatchString(v.Pattern, canonical)
			if err != nil || !matched {
				msg := v.Message
				if msg == "" {
					msg = "invalid format"
				}
				return "", &domain.ValidationError{
					QuestionID: q.ID,
					Code:       domain.ValidationPattern,
					Message:    msg,
				}
			}
		}

		length := utf8.RuneCountInString(canonical)
		if v.MinLength > 0 && length < v.MinLength {
			return "", &domain.ValidationError{
				QuestionID: q.ID,
				Code:       domain.ValidationLength,
				Message:    fmt.Sprintf("answer must be at least %d characters", v.MinLength),
			}
		}
		if v.MaxLength > 0 && length > v.MaxLength {
			return "", &domain.ValidationError{
				QuestionID: q.ID,
				Code:       domain.ValidationLength,
				Message:    fmt.Sprintf("answer must be at most %d characters", v.MaxLength),
			}
		}
	}

	return canonical, nil
}

// coerce normalizes the trimmed answer into the canonical encoding for the
// question's type.
func coerce(q *domain.Question, answer string) (string, error) {
	switch q.Type {
	case domain.QuestionNumber:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", &domain.ValidationError{
				QuestionID: q.ID,
				Code:       domain.ValidationType,
				Message:    "expected a number",
			}
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case domain.QuestionBoolean:
		b, err := strconv.ParseBool(strings.ToLower(answer))
		if err != nil {
			return "", &domain.ValidationError{
				QuestionID: q.ID,
				Code:       domain.ValidationType,
				Message:    "expected true or false",
			}
		}
		return strconv.FormatBool(b), nil

	case domain.QuestionDate:
		if _, err := time.Parse(isoDateLayout, answer); err != nil {
			return "", &domain.ValidationError{
				QuestionID: q.ID,
				Code:       domain.ValidationType,
				Message:    "expected a date in YYYY-MM-DD form",
			}
		}
		return answer, nil

	case domain.QuestionSelect:
		for _, opt := range q.Options {
			if opt.Value == answer {
				return answer, nil
			}
		}
		return "", &domain.ValidationError{
			QuestionID: q.ID,
			Code:       domain.ValidationType,
			Message:    fmt.Sprintf("value must be one of: %s", strings.Join(q.OptionValues(), ", ")),
		}

	default:
		// text and multiline-text pass through untouched.
		return answer, nil
	}
}
