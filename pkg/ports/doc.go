// Package ports defines the interfaces between the engine core and its
// adapters, plus the reusable contract test suite every store
// implementation must pass.
package ports
