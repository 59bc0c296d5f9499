package worksheet_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradereach/gradereach/pkg/assignment"
	"github.com/gradereach/gradereach/pkg/worksheet"
)

func assertPlaceholderLast(t *testing.T, w worksheet.Worksheet) {
	t.Helper()
	all := w.All()
	require.NotEmpty(t, all)
	adds := 0
	for _, a := range all {
		if a.Kind() == assignment.KindAdd {
			adds++
		}
	}
	assert.Equal(t, 1, adds, "exactly one placeholder")
	assert.Equal(t, assignment.KindAdd, all[len(all)-1].Kind(), "placeholder is last")
}

func sample() worksheet.Worksheet {
	return worksheet.New("COSC101", "UC",
		assignment.FromStrings("Assignment 1", "49/50", "2.5", ""),
		assignment.NewAdd(),
		assignment.FromStrings("Project 1", "98/100", "15", ""),
	)
}

func TestNewKeepsSinglePlaceholder(t *testing.T) {
	w := sample()
	assertPlaceholderLast(t, w)
	assert.Equal(t, 2, w.Len())
	assert.Len(t, w.Rows(), 2)
	assert.Len(t, w.All(), 3)

	var zero worksheet.Worksheet
	assert.Equal(t, 0, zero.Len())
	assert.Len(t, zero.All(), 1)
	assert.True(t, zero.Empty())
}

func TestUpdate(t *testing.T) {
	w := sample()
	rows := w.Rows()

	same := assignment.FromStrings("Assignment 1", "49/50", "2.5", "other-id")
	w2, changed, err := w.Update(0, same)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, rows[0].ID(), w2.Rows()[0].ID())

	w3, changed, err := w.Update(0, assignment.FromStrings("Assignment 1", "50/50", "2.5", rows[0].ID()))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "50/50", w3.Rows()[0].ScoreStr())
	assert.Equal(t, "49/50", w.Rows()[0].ScoreStr(), "original is untouched")
	assertPlaceholderLast(t, w3)

	_, _, err = w.Update(0, assignment.NewAdd())
	assert.Error(t, err)
	_, _, err = w.Update(2, same)
	assert.Error(t, err, "the placeholder can't be edited")
}

func TestEditKeepsID(t *testing.T) {
	w := sample()
	id := w.Rows()[1].ID()

	w2, changed, err := w.Edit(1, "Project 1", "", "15")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, id, w2.Rows()[1].ID())
	assert.Equal(t, assignment.KindStub, w2.Rows()[1].Kind())
}

func TestDuplicate(t *testing.T) {
	w := sample()
	w2, err := w.Duplicate(1)
	require.NoError(t, err)

	rows := w2.Rows()
	require.Len(t, rows, 3)
	assert.True(t, rows[1].Equal(rows[2]))
	assert.NotEqual(t, rows[1].ID(), rows[2].ID())
	assert.Equal(t, w.Rows()[1].ID(), rows[2].ID(), "the original moves down")
	assertPlaceholderLast(t, w2)

	_, err = w.Duplicate(-1)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	w := sample()
	w2, err := w.Delete(0)
	require.NoError(t, err)
	require.Equal(t, 1, w2.Len())
	assert.Equal(t, "Project 1", w2.Rows()[0].Name())
	assertPlaceholderLast(t, w2)

	_, err = w.Delete(2)
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	w := sample().Add()
	require.Equal(t, 3, w.Len())
	assert.Equal(t, assignment.KindStub, w.Rows()[2].Kind())
	assertPlaceholderLast(t, w)

	w = w.Append("Exam", "0.8", "40")
	require.Equal(t, 4, w.Len())
	assert.Equal(t, assignment.KindValid, w.Rows()[3].Kind())
	assertPlaceholderLast(t, w)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	data := `
title: COSC101
table: OTA
out_of: "20"
assignments:
  - name: Assignment 1
    score: 49/50
    weight: "2.5"
  - name: Exam
    weight: "50"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	w, err := worksheet.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "COSC101", w.Title)
	assert.Equal(t, "OTA", w.TableID)
	assert.Equal(t, "20", w.OutOf)
	require.Equal(t, 2, w.Len())
	assert.Equal(t, assignment.KindValid, w.Rows()[0].Kind())
	assert.Equal(t, assignment.KindStub, w.Rows()[1].Kind())
	assertPlaceholderLast(t, w)

	_, err = worksheet.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = worksheet.Parse([]byte("{{nope"))
	assert.Error(t, err)
}

func TestWriteParseRoundTrip(t *testing.T) {
	w := sample()
	w.OutOf = "50"

	var buf bytes.Buffer
	require.NoError(t, worksheet.Write(&buf, w))

	back, err := worksheet.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, w.Title, back.Title)
	assert.Equal(t, w.TableID, back.TableID)
	assert.Equal(t, w.OutOf, back.OutOf)
	require.Equal(t, w.Len(), back.Len())
	for i, a := range w.Rows() {
		assert.True(t, a.Equal(back.Rows()[i]), "row %d", i)
	}
}
