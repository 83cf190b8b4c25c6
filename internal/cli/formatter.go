package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/TURKZEN/english-turkish-dictionary/internal/dictionary"
)

// DefaultPlaceholder is shown in place of an absent category.
const DefaultPlaceholder = "unspecified"

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var (
	_          pflag.Value = (*Format)(nil)
	AllFormats             = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
)

func (f *Format) Set(val string) error {
	for _, format := range AllFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

// NotFoundMessage is printed when a query has no matches.
func NotFoundMessage(query string) string {
	return fmt.Sprintf("no entry found for %q", query)
}

// Formatter writes lookup results to an output stream.
type Formatter struct {
	out         io.Writer
	format      Format
	placeholder string
	bold        *color.Color
	faint       *color.Color
}

func NewFormatter(out io.Writer, format Format, placeholder string) *Formatter {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Formatter{
		out:         out,
		format:      format,
		placeholder: placeholder,
		bold:        color.New(color.Bold),
		faint:       color.New(color.Faint),
	}
}

// Print writes the matches for query. Text and table output print a single
// not-found line when there are no matches; JSON and YAML print an empty list.
func (f *Formatter) Print(query string, matches []*dictionary.Entry) error {
	switch f.format {
	case FormatJSON:
		return f.printJSON(matches)
	case FormatYAML:
		return f.printYAML(matches)
	case FormatTable:
		return f.printTable(query, matches)
	case FormatText:
		fallthrough
	default:
		return f.printText(query, matches)
	}
}

func (f *Formatter) printText(query string, matches []*dictionary.Entry) error {
	if len(matches) == 0 {
		return f.printNotFound(query)
	}
	for _, entry := range matches {
		category := entry.CategoryOrDefault(f.placeholder)
		if !entry.HasCategory() {
			category = f.faint.Sprint(category)
		}
		if _, err := fmt.Fprintf(f.out, "%s (%s) [%s]: %s\n",
			f.bold.Sprint(entry.Word),
			category,
			entry.EntryType,
			entry.Translation,
		); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}

func (f *Formatter) printTable(query string, matches []*dictionary.Entry) error {
	if len(matches) == 0 {
		return f.printNotFound(query)
	}
	tbl := table.New("Word", "Category", "Type", "Translation").
		WithWriter(f.out).
		WithHeaderFormatter(f.bold.SprintfFunc())
	for _, entry := range matches {
		tbl.AddRow(entry.Word, entry.CategoryOrDefault(f.placeholder), entry.EntryType, entry.Translation)
	}
	tbl.Print()
	return nil
}

func (f *Formatter) printJSON(matches []*dictionary.Entry) error {
	if matches == nil {
		matches = []*dictionary.Entry{}
	}
	encoder := json.NewEncoder(f.out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(matches); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}

func (f *Formatter) printYAML(matches []*dictionary.Entry) error {
	if matches == nil {
		matches = []*dictionary.Entry{}
	}
	encoder := yaml.NewEncoder(f.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(matches); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close > %w", err)
	}
	return nil
}

func (f *Formatter) printNotFound(query string) error {
	if _, err := fmt.Fprintln(f.out, NotFoundMessage(query)); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	return nil
}
