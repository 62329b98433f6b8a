package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"volumetrico/internal/domain"
	"volumetrico/internal/export"
)

var (
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(30)
	sourceStyle  = lipgloss.NewStyle().Faint(true)
)

func render(w io.Writer, format string, outcomes []outcome) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(outcomes)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outcomes); err != nil {
			return err
		}
		return enc.Close()
	case "csv", "xlsx":
		f, _ := export.ParseFormat(format)
		return f.Write(w, flatten(outcomes))
	default:
		return renderText(w, outcomes)
	}
}

func renderText(w io.Writer, outcomes []outcome) error {
	invalid := 0
	for _, o := range outcomes {
		var status string
		switch {
		case o.Err != "":
			status = invalidStyle.Render("ERROR")
		case o.Report.Valid:
			status = validStyle.Render("VÁLIDO")
		default:
			status = invalidStyle.Render(fmt.Sprintf("%d ERRORES", o.Report.ErrorCount))
		}
		if !o.ok() {
			invalid++
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", nameStyle.Render(o.Name), status); err != nil {
			return err
		}

		if o.Err != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", o.Err); err != nil {
				return err
			}
			continue
		}
		for _, r := range o.Report.Errors {
			line := "  " + kindStyle.Render(r.Kind.String()) + " " + r.Error
			if r.Source != "" {
				line += " " + sourceStyle.Render("("+r.Source+")")
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n%d reportes, %d con errores\n", len(outcomes), invalid)
	return err
}

// flatten merges every outcome's records into one list for the
// spreadsheet renderings. With more than one outcome each source is
// prefixed with its report's base name.
func flatten(outcomes []outcome) []domain.ErrorRecord {
	var records []domain.ErrorRecord
	for _, o := range outcomes {
		prefix := ""
		if len(outcomes) > 1 {
			prefix = filepath.Base(strings.TrimPrefix(o.Name, "s3://")) + ": "
		}
		if o.Err != "" {
			records = append(records, domain.ErrorRecord{
				Kind:   domain.KindInternal,
				Error:  o.Err,
				Source: strings.TrimSuffix(prefix, ": "),
			})
			continue
		}
		for _, r := range o.Report.Errors {
			r.Source = prefix + r.Source
			records = append(records, r)
		}
	}
	return records
}
