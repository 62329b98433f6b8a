package export

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"volumetrico/internal/domain"
)

// Format is an export rendering.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ContentType returns the MIME type of the rendering.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

// Write renders records in format f.
func (f Format) Write(out io.Writer, records []domain.ErrorRecord) error {
	switch f {
	case FormatCSV:
		return WriteCSV(out, records)
	case FormatXLSX:
		return WriteXLSX(out, records)
	}
	return fmt.Errorf("unknown export format %q", string(f))
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// The extension is dropped, runs of other characters collapse to one
// underscore, and the result is truncated to 100 chars.
func SanitizeFilename(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "reporte"
	}
	return s
}

// BuildFilename returns the attachment name for an error export.
// Format: {sanitized_report_name}_errores_{YYYY-MM-DD}.{ext}
func BuildFilename(reportName string, f Format, now time.Time) string {
	return fmt.Sprintf("%s_errores_%s.%s", SanitizeFilename(reportName), now.Format("2006-01-02"), string(f))
}
