// Package surface defines output rendering for gradereach outcomes.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"
	"strings"

	"github.com/gradereach/gradereach/pkg/resolve"
)

// Hmm prefixes messages for input that parses but can't be right.
const Hmm = "Hmm... that doesn't seem right –"

// Report is everything a renderer needs for one calculation.
type Report struct {
	Title   string          `json:"title,omitempty"`
	Outcome resolve.Outcome `json:"outcome"`
}

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *Report) error
}

// Display holds the pre-formatted numbers for an outcome. Percentages are
// rounded up to two places.
type Display struct {
	Message           string `json:"message"`
	AchievedPercent   string `json:"achieved_percent,omitempty"`
	AchievedGrade     string `json:"achieved_grade,omitempty"`
	RequiredPercent   string `json:"required_percent,omitempty"`
	RequiredAchieved  string `json:"required_achieved,omitempty"`
	OutOf             string `json:"out_of,omitempty"`
	WeightLeftPercent string `json:"weight_left_percent,omitempty"`
	CompletedPercent  string `json:"completed_percent,omitempty"`
	MaximumPercent    string `json:"maximum_percent,omitempty"`
	MaximumGrade      string `json:"maximum_grade,omitempty"`
}

// DisplayFor formats the fields relevant to the outcome's kind.
func DisplayFor(o resolve.Outcome) Display {
	d := Display{Message: Message(o)}
	grade := o.Target.Mode == resolve.ModeGrade

	switch o.Kind {
	case resolve.KindOverCommitted:
		d.CompletedPercent = o.CompletedPercent()
	case resolve.KindAlreadyFinal, resolve.KindAlreadyReached:
		d.AchievedPercent = o.AchievedPercent()
		if grade {
			d.AchievedGrade = o.AchievedGrade()
		}
	case resolve.KindUnreachable:
		d.MaximumPercent = o.MaximumPercent()
		if grade {
			d.MaximumGrade = o.MaxGrade()
		}
	case resolve.KindAchievable:
		d.RequiredPercent = o.RequiredPercent()
		d.RequiredAchieved = o.RequiredAchievedStr()
		d.OutOf = o.OutOf.String()
		d.WeightLeftPercent = o.WeightLeftPercent()
	}
	return d
}

// Message is the plain-text sentence shown for an outcome.
func Message(o resolve.Outcome) string {
	grade := o.Target.Mode == resolve.ModeGrade
	target := o.Target.Text()

	switch o.Kind {
	case resolve.KindIncompleteInput:
		return "You haven't filled in all the assignments."
	case resolve.KindInvalidTarget:
		switch {
		case grade && target == "":
			return "Enter your desired grade."
		case grade:
			return Hmm + " the grade " + target + " isn't valid."
		case target == "":
			return "Enter your desired percentage."
		default:
			return Hmm + " " + target + " isn't a valid percentage."
		}
	case resolve.KindOverCommitted:
		return Hmm + " it looks like you've already completed " + o.CompletedPercent() + "% of the course."
	case resolve.KindAlreadyFinal:
		return "Congratulations, you have already completed the course and achieved:"
	case resolve.KindAlreadyReached:
		if grade {
			return "Congratulations, you have already reached " + o.AchievedGrade() + "!"
		}
		return "Congratulations, you have already reached " + percentText(target) + "!"
	case resolve.KindUnreachable:
		if grade {
			best := o.MaxGrade()
			return "Unfortunately, you can't achieve " + WithArticle(target) + ". " +
				"The maximum grade you can achieve is " + WithArticle(best) + "."
		}
		return "Unfortunately, you can't reach " + percentText(target) + ". " +
			"The maximum you can achieve is " + o.MaximumPercent() + "%."
	case resolve.KindAchievable:
		return "Over the remaining " + o.WeightLeftPercent() + "%, you need at least:"
	default:
		return ""
	}
}

func percentText(s string) string {
	if strings.HasSuffix(s, "%") {
		return s
	}
	return s + "%"
}

// WithArticle prefixes a grade label with "a" or "an" as it is read aloud.
// Letter grades are read by letter name ("an A+", "an F", "a B-"); longer
// labels use the usual vowel rule ("a Pass", "an Excellence").
func WithArticle(label string) string {
	if label == "" {
		return label
	}
	first := strings.ToUpper(label[:1])
	if isLetterGrade(label) {
		if strings.Contains("AEFHILMNORSX", first) {
			return "an " + label
		}
		return "a " + label
	}
	if strings.Contains("AEIOU", first) {
		return "an " + label
	}
	return "a " + label
}

func isLetterGrade(label string) bool {
	if len(label) == 0 || len(label) > 3 {
		return false
	}
	for i, r := range label {
		switch {
		case i == 0 && r >= 'A' && r <= 'Z':
		case i > 0 && (r == '+' || r == '-'):
		default:
			return false
		}
	}
	return true
}
