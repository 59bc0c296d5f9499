package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with a config path that does not exist,
// so defaults apply regardless of the working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestResolveCmdFlags(t *testing.T) {
	var g globalOpts
	cmd := newResolveCmd(&g)
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "" {
		t.Errorf("default output = %q, want empty (config decides)", outputFmt)
	}

	for _, flag := range []string{"row", "file", "state", "title", "table", "target", "grade", "out-of", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestShareCmdFlags(t *testing.T) {
	var g globalOpts
	f := newShareCmd(&g).Flags()
	for _, flag := range []string{"row", "file", "title", "table", "template", "decode"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		in                  string
		name, score, weight string
		wantErr             bool
	}{
		{in: "Midterm|0.9|40", name: "Midterm", score: "0.9", weight: "40"},
		{in: " Lab 1 | 45/50 | 2.5% ", name: "Lab 1", score: "45/50", weight: "2.5%"},
		{in: "Final||60", name: "Final", score: "", weight: "60"},
		{in: "A|b|c|d", name: "A", score: "b", weight: "c|d"},
		{in: "Midterm|0.9", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		name, score, weight, err := parseRow(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRow(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRow(%q) error: %v", tt.in, err)
			continue
		}
		if name != tt.name || score != tt.score || weight != tt.weight {
			t.Errorf("parseRow(%q) = %q, %q, %q", tt.in, name, score, weight)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve", "--row", "Midterm|0.9|40", "--target", "70", "--out-of", "20", "--title", "COSC101")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, want := range []string{"COSC101", "56.67%", "11.34/20"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestResolveCmdJSON(t *testing.T) {
	out, err := execute(t, "resolve", "--row", "Lab|0.5|30", "--grade", "A+", "--output", "json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(out, `"kind": "unreachable"`) {
		t.Errorf("expected unreachable kind:\n%s", out)
	}
	if !strings.Contains(out, `"table": "UC"`) {
		t.Errorf("expected default table UC:\n%s", out)
	}
}

func TestResolveCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown table", []string{"resolve", "--grade", "A", "--table", "nowhere"}},
		{"bad row", []string{"resolve", "--row", "Midterm"}},
		{"target and grade", []string{"resolve", "--target", "70", "--grade", "A"}},
		{"bad output", []string{"resolve", "--target", "70", "--output", "xml"}},
		{"missing file", []string{"resolve", "--file", "does-not-exist.yaml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResolveCmdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	sheet := `title: COSC101
table: canterbury
assignments:
  - name: Lab
    score: 0.5
    weight: "30"
`
	if err := os.WriteFile(path, []byte(sheet), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "resolve", "--file", path, "--target", "95")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(out, "The maximum you can achieve is 85.00%.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestShareRoundTrip(t *testing.T) {
	encoded, err := execute(t, "share", "--title", "COSC101", "--row", "Midterm|0.9|40", "--row", "Lab|45/50|10")
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	state := strings.TrimSpace(encoded)
	if state == "" || strings.ContainsAny(state, "+/=\n") {
		t.Fatalf("share string should be url-safe, got %q", state)
	}

	decoded, err := execute(t, "share", "--decode", state)
	if err != nil {
		t.Fatalf("share --decode: %v", err)
	}
	for _, want := range []string{"title: COSC101", "name: Midterm", "score: 45/50", "weight: \"10\""} {
		if !strings.Contains(decoded, want) {
			t.Errorf("expected %q in decoded yaml:\n%s", want, decoded)
		}
	}

	out, err := execute(t, "resolve", "--state", state, "--target", "70")
	if err != nil {
		t.Fatalf("resolve --state: %v", err)
	}
	if !strings.Contains(out, "COSC101") {
		t.Errorf("expected title from share string:\n%s", out)
	}
}

func TestShareEmpty(t *testing.T) {
	if _, err := execute(t, "share"); err == nil {
		t.Error("expected error sharing an empty worksheet")
	}
}

func TestTablesCmd(t *testing.T) {
	out, err := execute(t, "tables")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	for _, want := range []string{"UC", "OTA", "WAI", "(default)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	out, err = execute(t, "tables", "otago")
	if err != nil {
		t.Fatalf("tables otago: %v", err)
	}
	if !strings.Contains(out, "A+") || !strings.Contains(out, "90.00%") {
		t.Errorf("expected thresholds:\n%s", out)
	}

	if _, err := execute(t, "tables", "nowhere"); err == nil {
		t.Error("expected error for unknown table")
	}
}
