// Package utilcss turns utility class tokens found in source files into a
// stylesheet and reports the tokens it could not resolve.
//
// # Building
//
// Scan content files and write the generated CSS:
//
//	config := utilcss.Config{
//		Content: []string{"web/**/*.html", "web/**/*.templ"},
//		Output:  "web/static/utilities.css",
//	}
//	result, err := utilcss.Build(ctx, config)
//
// # Checking
//
// Resolve the same content without writing anything and print issues:
//
//	result, err := utilcss.Check(ctx, config)
//	utilcss.WriteOutput(os.Stdout, result, utilcss.OutputIssues, config)
//
// # Class syntax
//
// A token is "[variant:]*[-]name[-arg]*", for example "mt-4", "-mx-2",
// "hover:p-[3px]" or "md:space-y-1". Variants are state pseudo-classes
// (hover, focus, first, ...) or breakpoints (sm, md, lg, xl, 2xl).
//
// # CLI Tool
//
//	go install github.com/yacobolo/utilcss/cmd/utilcss@latest
package utilcss

import (
	_ "embed"
	"sync"

	engine "github.com/yacobolo/utilcss/internal/utilcss"
)

// FromLinter is the linter name attached to every Issue.
const FromLinter = "utilcss"

// Preflight is the base reset stylesheet that Build prepends when
// Config.Preflight is set.
//
//go:embed preflight.css
var Preflight string

// defaultRegistry loads the embedded lookup tables once per process.
var defaultRegistry = sync.OnceValues(engine.NewRegistry)
