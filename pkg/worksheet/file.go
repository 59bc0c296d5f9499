package worksheet

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gradereach/gradereach/pkg/assignment"
)

// File is the yaml form of a worksheet.
type File struct {
	Title       string    `yaml:"title,omitempty"`
	Table       string    `yaml:"table,omitempty"`
	OutOf       string    `yaml:"out_of,omitempty"`
	Assignments []FileRow `yaml:"assignments"`
}

// FileRow is one assignment as raw strings.
type FileRow struct {
	Name   string `yaml:"name"`
	Score  string `yaml:"score,omitempty"`
	Weight string `yaml:"weight"`
}

// LoadFile reads a worksheet from a yaml file.
func LoadFile(path string) (Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Worksheet{}, fmt.Errorf("reading worksheet: %w", err)
	}
	return Parse(data)
}

// Parse decodes a yaml worksheet.
func Parse(data []byte) (Worksheet, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Worksheet{}, fmt.Errorf("parsing worksheet: %w", err)
	}
	return f.Worksheet(), nil
}

// Worksheet converts the file form into rows via assignment.FromStrings.
func (f File) Worksheet() Worksheet {
	rows := make([]assignment.Assignment, 0, len(f.Assignments))
	for _, r := range f.Assignments {
		rows = append(rows, assignment.FromStrings(r.Name, r.Score, r.Weight, ""))
	}
	ws := New(f.Title, f.Table, rows...)
	ws.OutOf = f.OutOf
	return ws
}

// ToFile converts a worksheet to its yaml form. The placeholder is dropped.
func ToFile(w Worksheet) File {
	f := File{Title: w.Title, Table: w.TableID, OutOf: w.OutOf}
	for _, a := range w.Rows() {
		if !a.Serializable() {
			continue
		}
		f.Assignments = append(f.Assignments, FileRow{
			Name:   a.Name(),
			Score:  a.ScoreStr(),
			Weight: a.WeightStr(),
		})
	}
	return f
}

// Write encodes w as yaml.
func Write(out io.Writer, w Worksheet) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(ToFile(w)); err != nil {
		return fmt.Errorf("encoding worksheet: %w", err)
	}
	return enc.Close()
}
