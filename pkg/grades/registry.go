package grades

import (
	"sort"

	"github.com/shopspring/decimal"
)

// nzScale is the common New Zealand university scale.
func nzScale() []Grade {
	return []Grade{
		{Label: "A+", Min: decimal.RequireFromString("0.90")},
		{Label: "A", Min: decimal.RequireFromString("0.85")},
		{Label: "A-", Min: decimal.RequireFromString("0.80")},
		{Label: "B+", Min: decimal.RequireFromString("0.75")},
		{Label: "B", Min: decimal.RequireFromString("0.70")},
		{Label: "B-", Min: decimal.RequireFromString("0.65")},
		{Label: "C+", Min: decimal.RequireFromString("0.60")},
		{Label: "C", Min: decimal.RequireFromString("0.55")},
		{Label: "C-", Min: decimal.RequireFromString("0.50")},
		{Label: "D", Min: decimal.RequireFromString("0.40")},
		{Label: "E", Min: decimal.Zero},
	}
}

var registry = mustBuild(
	tableSpec{id: "UC", name: "University of Canterbury", aliases: []string{"uc", "canterbury"}, grades: nzScale()},
	tableSpec{id: "OTA", name: "University of Otago", aliases: []string{"otago"}, grades: nzScale()},
	tableSpec{id: "WAI", name: "University of Waikato", aliases: []string{"waikato"}, grades: nzScale()},
)

// DefaultID is the table used when none is configured.
const DefaultID = "UC"

type tableSpec struct {
	id      string
	name    string
	aliases []string
	grades  []Grade
}

func mustBuild(specs ...tableSpec) map[string]*Table {
	m := make(map[string]*Table, len(specs))
	for _, s := range specs {
		t, err := NewTable(s.id, s.name, s.aliases, s.grades)
		if err != nil {
			panic(err)
		}
		m[t.ID] = t
	}
	return m
}

// Lookup finds a registered table by id or alias, ignoring case.
func Lookup(key string) (*Table, bool) {
	if t, ok := registry[key]; ok {
		return t, true
	}
	for _, t := range registry {
		if t.Matches(key) {
			return t, true
		}
	}
	return nil, false
}

// Default returns the default table.
func Default() *Table {
	return registry[DefaultID]
}

// All returns every registered table ordered by id.
func All() []*Table {
	out := make([]*Table, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
