package domain

// Category groups templates for listing purposes.
type Category string

const (
	CategoryContract        Category = "contract"
	CategoryLease           Category = "lease"
	CategorySale            Category = "sale"
	CategoryPowerOfAttorney Category = "power-of-attorney"
	CategoryOther           Category = "other"
)

// Template is the static definition of one document type: its questionnaire
// plus the placeholder-laden body the answers get merged into.
//
// Templates are read-only once registered. The engine never mutates them.
type Template struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`

	// EstimatedTime is a human-readable completion estimate ("15 min").
	EstimatedTime string `json:"estimated_time,omitempty" yaml:"estimated_time,omitempty"`

	// RequiredFields lists the question IDs that must carry a non-empty
	// answer before the document can be generated.
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`

	// Questions in the order they are asked. DependsOn references must
	// point at earlier entries; the traversal is linear.
	Questions []Question `json:"questions" yaml:"questions"`

	// DocumentBody is plain text with {{field}} placeholders and
	// {{#field}}...{{/field}} conditional blocks.
	DocumentBody string `json:"document_body" yaml:"document_body"`
}

// Summary is the lightweight listing view of a template.
type Summary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
}

// Summary returns the listing view of the template.
func (t *Template) Summary() Summary {
	return Summary{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      t.Category,
		EstimatedTime: t.EstimatedTime,
	}
}

// Question looks up a question by ID. Returns nil when absent.
func (t *Template) Question(id string) *Question {
	for i := range t.Questions {
		if t.Questions[i].ID == id {
			return &t.Questions[i]
		}
	}
	return nil
}

// Label resolves a question ID to its prompt text, falling back to the ID
// itself for unknown fields so callers always get something displayable.
func (t *Template) Label(id string) string {
	if q := t.Question(id); q != nil {
		return q.Text
	}
	return id
}
