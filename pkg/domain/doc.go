// Package domain holds the core value types of the Quillon engine:
// templates, questions, answers and the error taxonomy shared by every
// adapter. It has no dependencies outside the standard library.
package domain
