package domain

import "time"

// Session is one in-progress document: the template being filled plus the
// answers collected so far. The engine core never touches sessions; they
// belong to the serving layer and its stores.
type Session struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Answers    Answers   `json:"answers"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSession creates an empty session for the given template.
func NewSession(id, documentID string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         id,
		DocumentID: documentID,
		Answers:    make(Answers),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns an independent copy of the session.
func (s *Session) Clone() *Session {
	out := *s
	out.Answers = s.Answers.Clone()
	return &out
}
