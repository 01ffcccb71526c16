package lint

import (
	"strings"
	"testing"
	"time"
)

func cleanReport() *Report {
	return &Report{
		Metadata: ReportMetadata{
			Tool:          "frontlint",
			Version:       "dev",
			Target:        ".",
			ExecutionTime: 5 * time.Millisecond,
		},
		Files: []FileResult{
			{Path: "articles/a-perfectly-good-one.md", ContentType: "article"},
		},
	}
}

func TestFormatCleanRun(t *testing.T) {
	out := NewFormatter(false).Format(cleanReport())

	if !strings.Contains(out, "frontmatter checks passed") {
		t.Errorf("output missing pass line: %q", out)
	}
	if strings.Contains(out, "a-perfectly-good-one") {
		t.Errorf("clean files must not be listed: %q", out)
	}
}

func TestFormatProblems(t *testing.T) {
	report := cleanReport()
	report.Files = append(report.Files, FileResult{
		Path:        "articles/out-of-order-post.md",
		ContentType: "article",
		WrongOrder:  true,
		Keys:        []string{"type", "title"},
		Missing:     []string{"emoji"},
	})
	report.Books = append(report.Books, BookResult{
		Dir:            "books/guide",
		DuplicateSlugs: []string{"intro"},
	})

	out := NewFormatter(false).Format(report)

	for _, want := range []string{
		"out-of-order-post.md",
		"missing required keys: emoji",
		"keys out of canonical order: type, title",
		"books/guide",
		"duplicate chapter slugs: intro",
		"1 file(s), 1 book(s) with problems",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatIOError(t *testing.T) {
	report := cleanReport()
	report.Files = append(report.Files, FileResult{
		Path:    "articles/unreadable.md",
		IOError: "permission denied",
	})

	out := NewFormatter(false).Format(report)
	if !strings.Contains(out, "io: permission denied") {
		t.Errorf("output missing io error: %q", out)
	}
}
