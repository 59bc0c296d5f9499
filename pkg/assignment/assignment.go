// Package assignment models one row of coursework input: a name, a score
// and a weight, each kept as the raw text the user typed plus, when the row
// is complete, the parsed values.
package assignment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind tags which variant an Assignment is.
type Kind int

const (
	// KindStub is a row that is still being typed or doesn't parse.
	KindStub Kind = iota
	// KindValid is a complete row that takes part in resolution.
	KindValid
	// KindAdd is the trailing "add a row" placeholder.
	KindAdd
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindStub:
		return "stub"
	case KindAdd:
		return "add"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Assignment is an immutable value. Edits build a new one with FromStrings.
type Assignment struct {
	id        string
	kind      Kind
	name      string
	scoreStr  string
	weightStr string
	score     Score
	weight    Weight
}

// NewID returns a fresh row identifier.
func NewID() string {
	return uuid.NewString()
}

// FromStrings is the single factory deciding the variant. The row is Valid
// when the name is non-blank, the score parses and the weight parses to a
// value in [0, 1). Anything else is a Stub carrying the raw text.
func FromStrings(name, score, weight, id string) Assignment {
	if id == "" {
		id = NewID()
	}
	a := Assignment{
		id:        id,
		kind:      KindStub,
		name:      name,
		scoreStr:  score,
		weightStr: weight,
	}

	if strings.TrimSpace(name) == "" {
		return a
	}
	s, ok := ParseScore(score)
	if !ok {
		return a
	}
	w, ok := ParseWeight(weight)
	if !ok || !w.Valid() {
		return a
	}

	a.kind = KindValid
	a.score = s
	a.weight = w
	return a
}

// NewAdd returns the add-row placeholder.
func NewAdd() Assignment {
	return Assignment{id: NewID(), kind: KindAdd}
}

func (a Assignment) ID() string        { return a.id }
func (a Assignment) Kind() Kind        { return a.kind }
func (a Assignment) Name() string      { return a.name }
func (a Assignment) ScoreStr() string  { return a.scoreStr }
func (a Assignment) WeightStr() string { return a.weightStr }

// Score returns the parsed score of a Valid row.
func (a Assignment) Score() (Score, bool) {
	if a.kind != KindValid {
		return Score{}, false
	}
	return a.score, true
}

// Weight returns the parsed weight of a Valid row.
func (a Assignment) Weight() (Weight, bool) {
	if a.kind != KindValid {
		return Weight{}, false
	}
	return a.weight, true
}

// Serializable reports whether the row belongs in shared state.
func (a Assignment) Serializable() bool {
	switch a.kind {
	case KindValid, KindStub:
		return true
	default:
		return false
	}
}

// Equal compares the content of two rows, ignoring ids.
func (a Assignment) Equal(o Assignment) bool {
	if a.kind != o.kind {
		return false
	}
	switch a.kind {
	case KindAdd:
		return true
	case KindValid:
		return a.name == o.name &&
			a.score.Equal(o.score) &&
			a.weightStr == o.weightStr
	default:
		return a.name == o.name &&
			a.scoreStr == o.scoreStr &&
			a.weightStr == o.weightStr
	}
}

// Clone returns a copy of the row with a fresh id.
func (a Assignment) Clone() Assignment {
	if a.kind == KindAdd {
		return NewAdd()
	}
	return FromStrings(a.name, a.scoreStr, a.weightStr, NewID())
}

func (a Assignment) String() string {
	switch a.kind {
	case KindAdd:
		return "<add>"
	default:
		return fmt.Sprintf("name: %s, score: %s, weight: %s (%s)", a.name, a.scoreStr, a.weightStr, a.kind)
	}
}
