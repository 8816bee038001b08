// Package output renders calculation results for people and machines.
// Nothing here feeds back into the arithmetic; currency and rounding are
// applied only at this layer.
package output

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"expense-split/core/flight"
	"expense-split/core/policy"
	"expense-split/core/reimbursement"
	"expense-split/core/types"
	"expense-split/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats
var Formats = []Format{FormatCLI, FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCLI, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatCLI, nil
	}
	return "", errors.NotSupported("output format " + s)
}

// Options tune the human-readable renderers
type Options struct {
	// ShowZeroBands keeps bands the spend never reached
	ShowZeroBands bool
}

// FlightReport pairs a flight split with its display context.
type FlightReport struct {
	Mode     string         `json:"mode" yaml:"mode"`
	Currency types.Currency `json:"currency" yaml:"currency"`
	Result   flight.Result  `json:"result" yaml:"result"`
}

// RenderHotel writes a lodging result in the requested format
func RenderHotel(w io.Writer, format Format, r reimbursement.Result, opts Options) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatMarkdown:
		return hotelMarkdown(w, r, opts)
	default:
		return hotelTable(w, r, opts)
	}
}

// RenderFlight writes a flight split in the requested format
func RenderFlight(w io.Writer, format Format, report FlightReport) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	case FormatMarkdown:
		return flightMarkdown(w, report)
	default:
		return flightTable(w, report)
	}
}

// RenderRules writes the published policy in the requested format
func RenderRules(w io.Writer, format Format, doc policy.Document) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		// the rules read the same in a terminal and in markdown
		return rulesMarkdown(w, doc)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Output("encode json", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Output("encode yaml", err)
	}
	if err := enc.Close(); err != nil {
		return errors.Output("encode yaml", err)
	}
	return nil
}
