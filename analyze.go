// File: analyze.go
// Role: Analyze, the package's single entry point.
package sfta

import (
	"fmt"

	"github.com/sfta-go/sfta/core"
	"github.com/sfta-go/sfta/mcs"
	"github.com/sfta-go/sfta/parser"
	"github.com/sfta-go/sfta/quantity"
)

// Analyze parses source, validates and builds the fault tree it
// describes, and returns a Result ready to answer MCS/quantity queries.
// The first error encountered anywhere in the pipeline stops processing
// immediately; there is no partial result.
func Analyze(source string, opts ...parser.Option) (*Result, error) {
	doc, err := parser.Parse(source, opts...)
	if err != nil {
		return nil, fmt.Errorf("sfta: %w", err)
	}

	tree, err := core.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("sfta: %w", err)
	}

	mcsEngine := mcs.NewEngine(tree)
	return newResult(tree, mcsEngine, quantity.NewEngine(tree, mcsEngine)), nil
}
