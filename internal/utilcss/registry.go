package utilcss

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/maruel/natural"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

// Table names, one YAML file each under tables/.
const (
	TablePadding      = "padding"
	TableMargin       = "margin"
	TableSpaceBetween = "space_between"
	TableStates       = "states"
	TableBreakpoints  = "breakpoints"
)

// Table maps a class suffix to a CSS value. It is never mutated after load.
type Table struct {
	name   string
	values map[string]string
	keys   []string // natural order
}

// NewTable builds a table from a key/value map. The map is copied.
func NewTable(name string, values map[string]string) *Table {
	t := &Table{
		name:   name,
		values: make(map[string]string, len(values)),
		keys:   make([]string, 0, len(values)),
	}
	for k, v := range values {
		t.values[k] = v
		t.keys = append(t.keys, k)
	}
	sort.Sort(natural.StringSlice(t.keys))
	return t
}

// Name returns the table name ("padding", "margin", ...).
func (t *Table) Name() string {
	return t.name
}

// Lookup returns the CSS value for key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns a copy of the keys in natural order ("0", "0.5", "1", ..., "px").
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Registry holds every lookup table. Build it once with NewRegistry and
// share the pointer; all methods are safe for concurrent use.
type Registry struct {
	Padding      *Table
	Margin       *Table
	SpaceBetween *Table
	States       *Table
	Breakpoints  *Table
}

// NewRegistry loads the tables embedded in the binary.
func NewRegistry() (*Registry, error) {
	sub, err := fs.Sub(embeddedTables, "tables")
	if err != nil {
		return nil, fmt.Errorf("open embedded tables: %w", err)
	}
	return LoadRegistry(sub)
}

// LoadRegistry reads "<name>.yaml" for every table from fsys.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	reg := &Registry{}
	targets := []struct {
		name string
		dst  **Table
	}{
		{TablePadding, &reg.Padding},
		{TableMargin, &reg.Margin},
		{TableSpaceBetween, &reg.SpaceBetween},
		{TableStates, &reg.States},
		{TableBreakpoints, &reg.Breakpoints},
	}

	for _, target := range targets {
		table, err := loadTable(fsys, target.name)
		if err != nil {
			return nil, err
		}
		*target.dst = table
	}

	return reg, nil
}

func loadTable(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name+".yaml")
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", name, err)
	}

	// Duplicate keys are rejected by the YAML decoder.
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse table %s: %w", name, err)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			values[k] = val
		case int, int64, float64, bool:
			values[k] = fmt.Sprint(val)
		default:
			return nil, fmt.Errorf("table %s: key %q has non-scalar value", name, k)
		}
	}

	return NewTable(name, values), nil
}
