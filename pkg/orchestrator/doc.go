// Package orchestrator wires the loader → decoder → transformer → renderer
// pipeline behind a single Generate call, with every stage injectable.
package orchestrator
