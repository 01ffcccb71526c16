package lint

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Formatter renders a report as a human-readable problem listing.
type Formatter struct {
	UseColor bool
}

// NewFormatter creates a formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Format renders the concise report: one aligned line per problem, grouped
// by file and book, followed by a summary line.
func (f *Formatter) Format(report *Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s | target: %s | files: %d | books: %d | time: %s\n",
		report.Metadata.Tool, report.Metadata.Version, report.Metadata.Target,
		len(report.Files), len(report.Books), report.Metadata.ExecutionTime.Round(time.Millisecond))

	width := f.labelWidth(report)
	for i := range report.Files {
		f.writeFile(&sb, &report.Files[i], width)
	}
	for i := range report.Books {
		f.writeBook(&sb, &report.Books[i], width)
	}

	files, books := report.ErrorCount()
	if report.Erroring() {
		fmt.Fprintf(&sb, "%s %d file(s), %d book(s) with problems\n",
			f.red("✗"), files, books)
	} else {
		fmt.Fprintf(&sb, "%s frontmatter checks passed\n", f.green("✓"))
	}
	return sb.String()
}

// labelWidth computes the display width of the widest erroring path so the
// problem column lines up. Paths can carry wide runes, hence runewidth.
func (f *Formatter) labelWidth(report *Report) int {
	width := 0
	for i := range report.Files {
		if report.Files[i].Erroring() {
			if w := runewidth.StringWidth(report.Files[i].Path); w > width {
				width = w
			}
		}
	}
	for i := range report.Books {
		if report.Books[i].Erroring() {
			if w := runewidth.StringWidth(report.Books[i].Dir); w > width {
				width = w
			}
		}
	}
	return width
}

func (f *Formatter) writeFile(sb *strings.Builder, r *FileResult, width int) {
	if !r.Erroring() {
		return
	}
	label := runewidth.FillRight(r.Path, width)
	if r.IOError != "" {
		fmt.Fprintf(sb, "  %s  %s\n", label, f.red("io: "+r.IOError))
		return
	}
	if len(r.Missing) > 0 {
		fmt.Fprintf(sb, "  %s  missing required keys: %s\n", label, strings.Join(r.Missing, ", "))
	}
	if r.WrongOrder {
		msg := fmt.Sprintf("keys out of canonical order: %s", strings.Join(r.Keys, ", "))
		if r.Fixed {
			msg += " " + f.green("(fixed)")
		}
		fmt.Fprintf(sb, "  %s  %s\n", label, msg)
	}
	if r.SlugInvalid {
		fmt.Fprintf(sb, "  %s  %s\n", label, r.SlugMessage)
	}
}

func (f *Formatter) writeBook(sb *strings.Builder, r *BookResult, width int) {
	if !r.Erroring() {
		return
	}
	label := runewidth.FillRight(r.Dir, width)
	if r.MissingConfigFile {
		fmt.Fprintf(sb, "  %s  %s\n", label, f.red("missing config.yaml"))
		return
	}
	if len(r.MissingKeys) > 0 {
		fmt.Fprintf(sb, "  %s  missing required keys: %s\n", label, strings.Join(r.MissingKeys, ", "))
	}
	for _, msg := range r.ChapterMessages {
		fmt.Fprintf(sb, "  %s  %s\n", label, msg)
	}
	if len(r.DuplicateSlugs) > 0 {
		fmt.Fprintf(sb, "  %s  duplicate chapter slugs: %s\n", label, strings.Join(r.DuplicateSlugs, ", "))
	}
}

func (f *Formatter) red(s string) string {
	if f.UseColor {
		return "\033[31m" + s + "\033[0m"
	}
	return s
}

func (f *Formatter) green(s string) string {
	if f.UseColor {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}
