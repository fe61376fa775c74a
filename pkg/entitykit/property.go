package entitykit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rengaw83/test-entity/pkg/errorkit"
)

// Property is a declared entity property, and the value used to exercise its accessors.
type Property struct {
	Name  string
	Value any
}

// Properties is an ordered declaration of entity properties.
type Properties []Property

// PropertiesOf converts a property map into Properties.
// Names are sorted, so the enumeration order is stable between runs.
func PropertiesOf(m map[string]any) Properties {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	ps := make(Properties, 0, len(names))
	for _, name := range names {
		ps = append(ps, Property{Name: name, Value: m[name]})
	}
	return ps
}

func (ps Properties) Add(name string, value any) Properties {
	return append(ps, Property{Name: name, Value: value})
}

// Validate reports an empty declaration, blank names and duplicates.
func (ps Properties) Validate() error {
	if len(ps) == 0 {
		return ErrInvalidProperties.F("no property is declared")
	}
	var (
		errs []error
		seen = make(map[string]struct{}, len(ps))
	)
	for i, p := range ps {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, ErrInvalidProperties.F("property #%d has no name", i))
			continue
		}
		if _, ok := seen[p.Name]; ok {
			errs = append(errs, ErrInvalidProperties.F("property %q is declared more than once", p.Name))
			continue
		}
		seen[p.Name] = struct{}{}
	}
	return errorkit.Merge(errs...)
}

// Rows enumerates the properties as data rows, one row per property.
func (ps Properties) Rows() []Row {
	rows := make([]Row, 0, len(ps))
	for i, p := range ps {
		rows = append(rows, Row{Index: i, Property: p})
	}
	return rows
}

// Row is a property with its position in the declaration.
type Row struct {
	Index    int
	Property Property
}

// Label is the data row's name, formatted as "<index>_<property>", e.g. "0_id".
func (r Row) Label() string {
	return fmt.Sprintf("%d_%s", r.Index, r.Property.Name)
}
