package manifest

import (
	"errors"
	"fmt"
)

// ErrTemplateMissing is returned when the template manifest does not exist.
var ErrTemplateMissing = errors.New("template manifest not found")

// Dependency map fields of a manifest.
const (
	DependenciesField    = "dependencies"
	DevDependenciesField = "devDependencies"
)

// Script is one entry of a manifest's scripts object.
type Script struct {
	Name    string
	Command string
}

// Package is the subset of a sub-project manifest the tool reads.
type Package struct {
	Path    string
	Name    string
	Kind    string   // project.kind, empty when absent
	Scripts []Script // document order
}

// ParseError reports a manifest that is not well-formed or has an unexpected
// shape.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Reason)
}
