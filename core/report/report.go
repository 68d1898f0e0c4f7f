package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"csvdiff/core/reconcile"
)

// Mode selects how changes are grouped in the text report.
type Mode string

const (
	// ModeByColumn groups changes by target column, listing affected keys.
	ModeByColumn Mode = "by-column"
	// ModeByKey groups changes by record key, listing affected columns.
	ModeByKey Mode = "by-key"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeByColumn, ModeByKey:
		return true
	default:
		return false
	}
}

// TimeLayout is the timestamp layout used in report headers.
const TimeLayout = "2006-01-02T15:04:05-07:00"

const (
	newline       = "\r\n"
	nullText      = "(null)"
	undefinedText = "(undefined)"
	noneText      = "(none)"
	noChangeText  = "NO CHANGE."
)

// Options carries everything besides the result that ends up in a report.
type Options struct {
	// Mode selects the grouping. Required.
	Mode Mode
	// Previous and Current identify the two inputs (paths or URIs).
	Previous string
	Current  string
	// Generated is the report timestamp, already in the desired zone.
	Generated time.Time
}

// Render writes the text report for res to w using CRLF line endings.
func Render(w io.Writer, res *reconcile.Result, opts Options) error {
	if !opts.Mode.IsValid() {
		return fmt.Errorf("unknown report mode %q", opts.Mode)
	}

	bw := bufio.NewWriter(w)
	lw := &lineWriter{w: bw}

	label := "column"
	if opts.Mode == ModeByKey {
		label = "datakey"
	}
	lw.printf("==Changes[%s](%s)==", label, opts.Generated.Format(TimeLayout))
	lw.printf("Previous(csv1):%s", opts.Previous)
	lw.printf("Current(csv2) :%s", opts.Current)
	lw.printf("Added:%s", joinKeys(res.Added))
	lw.printf("Removed:%s", joinKeys(res.Removed))

	switch opts.Mode {
	case ModeByColumn:
		renderByColumn(lw, res)
	case ModeByKey:
		renderByKey(lw, res)
	}

	if lw.err != nil {
		return lw.err
	}
	return bw.Flush()
}

func renderByColumn(lw *lineWriter, res *reconcile.Result) {
	for _, column := range res.Columns {
		lw.printf("column:%s", column)
		keys := res.KeysChangedIn(column)
		if len(keys) == 0 {
			lw.printf("  %s", noChangeText)
			continue
		}
		lw.printf("  %s:%s", res.KeyColumn, joinKeys(keys))
		for _, key := range keys {
			f, _ := res.Changes[key].Field(column)
			lw.printf("    %s: %s => %s", FormatKey(key), FormatValue(f.Previous), FormatValue(f.Current))
		}
	}
}

func renderByKey(lw *lineWriter, res *reconcile.Result) {
	keys := res.ChangedKeys()
	if len(keys) == 0 {
		lw.printf("%s", noChangeText)
		return
	}
	for _, key := range keys {
		lw.printf("%s:%s", res.KeyColumn, FormatKey(key))
		for _, f := range res.Changes[key].Fields {
			lw.printf("  column:%s %s => %s", f.Column, FormatValue(f.Previous), FormatValue(f.Current))
		}
	}
}

// Document is the JSON form of a report.
type Document struct {
	Mode      Mode              `json:"mode"`
	Generated string            `json:"generated"`
	Previous  string            `json:"previous"`
	Current   string            `json:"current"`
	Result    *reconcile.Result `json:"result"`
}

// RenderJSON writes the report for res to w as an indented JSON document.
func RenderJSON(w io.Writer, res *reconcile.Result, opts Options) error {
	if !opts.Mode.IsValid() {
		return fmt.Errorf("unknown report mode %q", opts.Mode)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{
		Mode:      opts.Mode,
		Generated: opts.Generated.Format(TimeLayout),
		Previous:  opts.Previous,
		Current:   opts.Current,
		Result:    res,
	})
}

// FormatValue renders a field value for the text report.
func FormatValue(v reconcile.Value) string {
	if !v.Valid {
		return nullText
	}
	if v.String == "" {
		return `""`
	}
	return v.String
}

// FormatKey renders a record key for the text report.
func FormatKey(key string) string {
	if key == reconcile.UndefinedKey {
		return undefinedText
	}
	return key
}

func joinKeys(keys []string) string {
	if len(keys) == 0 {
		return noneText
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = FormatKey(k)
	}
	return strings.Join(out, ",")
}

// lineWriter writes CRLF-terminated lines and keeps the first error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) printf(format string, args ...any) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, format+newline, args...)
}
