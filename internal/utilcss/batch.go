package utilcss

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Source is the token list extracted from one file.
type Source struct {
	Path   string
	Tokens []Token
}

// FileResult holds everything resolved from one Source, in token order.
type FileResult struct {
	Path     string
	Resolved []Resolved
	Warnings []*Warning
}

// Batch is the merged result of ResolveAll. Files keep the input order.
type Batch struct {
	Files []FileResult
}

// Resolved returns all resolved tokens in input order.
func (b *Batch) Resolved() []Resolved {
	var out []Resolved
	for _, f := range b.Files {
		out = append(out, f.Resolved...)
	}
	return out
}

// Warnings returns all warnings in input order.
func (b *Batch) Warnings() []*Warning {
	var out []*Warning
	for _, f := range b.Files {
		out = append(out, f.Warnings...)
	}
	return out
}

// TokenCount returns the number of tokens processed.
func (b *Batch) TokenCount() int {
	n := 0
	for _, f := range b.Files {
		n += len(f.Resolved) + len(f.Warnings)
	}
	return n
}

// ResolveSource resolves every token of src sequentially.
func (r *Resolver) ResolveSource(src Source) FileResult {
	result := FileResult{Path: src.Path}
	for _, tok := range src.Tokens {
		resolved, err := r.Resolve(tok)
		if err != nil {
			result.Warnings = append(result.Warnings, err.(*Warning))
			continue
		}
		result.Resolved = append(result.Resolved, resolved)
	}
	return result
}

// ResolveAll resolves sources in parallel, one goroutine per file, and
// merges the results in input order. It only fails when ctx is cancelled.
func (r *Resolver) ResolveAll(ctx context.Context, sources []Source) (*Batch, error) {
	results := make([]FileResult, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.ResolveSource(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Batch{Files: results}, nil
}
