// Package quillon generates French legal documents from guided
// questionnaires. Each document type is a template: an ordered list of
// questions (with dependencies, validation rules and option lists) plus a
// plain-text body containing {{field}} placeholders and
// {{#field}}...{{/field}} conditional blocks.
//
// The Engine exposes the full lifecycle: list the catalogue, walk the
// questionnaire one eligible question at a time, validate and canonicalize
// answers, report completion, and render the final document. Rendering is
// deterministic and never leaves a placeholder behind.
//
// Adapters under pkg/adapters and internal/adapters expose the same engine
// over HTTP, MCP and an interactive terminal flow; pkg/session adds
// persistent answer sessions backed by memory, file or Redis stores.
package quillon
