package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/gradereach/gradereach/pkg/resolve"
)

// TerminalRenderer renders a Report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func kindColor(k resolve.Kind) string {
	if noColor() {
		return ""
	}
	switch k {
	case resolve.KindAchievable, resolve.KindAlreadyReached, resolve.KindAlreadyFinal:
		return colorGreen
	case resolve.KindIncompleteInput, resolve.KindInvalidTarget:
		return colorYellow
	case resolve.KindUnreachable, resolve.KindOverCommitted:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, report *Report) error {
	o := report.Outcome
	d := DisplayFor(o)
	kc := kindColor(o.Kind)

	// Header
	if report.Title != "" {
		fmt.Fprintf(w, "%s\n", bold(report.Title))
	}
	if o.Target.Mode == resolve.ModeGrade {
		fmt.Fprintf(w, "%s\n\n", dim(fmt.Sprintf("Target grade %q (%s)", o.Target.Text(), o.Target.TableID)))
	} else {
		fmt.Fprintf(w, "%s\n\n", dim(fmt.Sprintf("Target percentage %q", o.Target.Text())))
	}

	fmt.Fprintln(w, colored(d.Message, kc))

	switch o.Kind {
	case resolve.KindAlreadyFinal:
		if d.AchievedGrade != "" {
			fmt.Fprintf(w, "  %s %s\n", bold(d.AchievedGrade), dim("("+d.AchievedPercent+"%)"))
		} else {
			fmt.Fprintf(w, "  %s%%\n", bold(d.AchievedPercent))
		}
	case resolve.KindAlreadyReached:
		fmt.Fprintf(w, "  %s\n", dim("Achieved so far: "+d.AchievedPercent+"%"))
	case resolve.KindUnreachable:
		fmt.Fprintf(w, "  %s\n", dim("Best possible result: "+d.MaximumPercent+"%"))
	case resolve.KindAchievable:
		fmt.Fprintf(w, "  %s%%  or  %s/%s\n",
			bold(colored(d.RequiredPercent, kc)), bold(d.RequiredAchieved), d.OutOf)
	}
	fmt.Fprintln(w)

	return nil
}
