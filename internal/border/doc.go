// Package border holds the framing engine: the visual state of an editing
// session, the pure derivations computed from it, the controller that keeps
// a host surface and the exported HTML snippet in step with that state, and
// the preset applier used for reset.
package border
