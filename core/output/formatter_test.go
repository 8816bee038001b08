package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"expense-split/core/flight"
	"expense-split/core/policy"
	"expense-split/core/reimbursement"
	"expense-split/core/types"
	"expense-split/internal/errors"
)

func hotelResult(t *testing.T, total float64, approved bool) reimbursement.Result {
	t.Helper()
	r, err := reimbursement.Calculate(reimbursement.Input{
		StandardPerNight:   200,
		Nights:             2,
		Mode:               reimbursement.ModeTotal,
		TotalAmount:        &total,
		HasSpecialApproval: approved,
		Currency:           types.CurrencyCNY,
	})
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
	}{
		{"", FormatCLI},
		{"cli", FormatCLI},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, f)
	}

	_, err := ParseFormat("html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestRenderHotelTableHidesZeroBands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatCLI, hotelResult(t, 800, false), Options{}))

	out := buf.String()
	assert.Contains(t, out, "LODGING REIMBURSEMENT")
	assert.Contains(t, out, "Band 1: ≤ standard (¥400.00)")
	assert.Contains(t, out, "Band 3: 1.25× standard (¥500.00) ~ 3× standard (¥1200.00)")
	assert.NotContains(t, out, "Band 4")
	assert.Contains(t, out, "COMPANY PAYS (78.1%)")
	assert.Contains(t, out, "¥625.00")
	assert.Contains(t, out, "EMPLOYEE PAYS (21.9%)")
	assert.Contains(t, out, "¥175.00")
}

func TestRenderHotelTableShowZeroBands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatCLI, hotelResult(t, 800, false), Options{ShowZeroBands: true}))

	assert.Contains(t, buf.String(), "Band 4: > 3× standard (¥1200.00)")
}

func TestRenderTablesKeepBordersAligned(t *testing.T) {
	flightResult, err := flight.SplitUpgrade(1000, 2000, 75)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatCLI, hotelResult(t, 5000, false), Options{ShowZeroBands: true}))
	require.NoError(t, RenderHotel(&buf, FormatCLI, hotelResult(t, 5000, true), Options{}))
	require.NoError(t, RenderFlight(&buf, FormatCLI, FlightReport{Mode: "upgrade", Currency: types.CurrencyUSD, Result: flightResult}))

	out := buf.String()
	assert.Contains(t, out, "Band 3: 1.25× standard (¥500.00) ~ 3× standard (¥1200.00)")
	assert.Contains(t, out, "└─ company 50%")

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, 75, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestRenderHotelTableApproved(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatCLI, hotelResult(t, 1500, true), Options{ShowZeroBands: true}))

	out := buf.String()
	assert.Contains(t, out, "Special approval")
	assert.NotContains(t, out, "Band 1")
	assert.Contains(t, out, "COMPANY PAYS (100.0%)")
}

func TestRenderHotelJSONKeepsAllBands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatJSON, hotelResult(t, 800, false), Options{}))

	var payload struct {
		Kind          string `json:"kind"`
		CompanyAmount string `json:"company_amount"`
		Segments      []struct {
			Segment int    `json:"segment"`
			Amount  string `json:"amount"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))

	assert.Equal(t, "tiered", payload.Kind)
	assert.Equal(t, "625", payload.CompanyAmount)
	require.Len(t, payload.Segments, 4)
	assert.Equal(t, 3, payload.Segments[3].Segment)
	assert.Equal(t, "0", payload.Segments[3].Amount)
}

func TestRenderHotelYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatYAML, hotelResult(t, 800, false), Options{}))

	var payload map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &payload))

	assert.Equal(t, "tiered", payload["kind"])
	assert.Equal(t, "625", payload["company_amount"])
	assert.Len(t, payload["segments"], 4)
}

func TestRenderHotelMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHotel(&buf, FormatMarkdown, hotelResult(t, 800, false), Options{}))

	out := buf.String()
	assert.Contains(t, out, "## Lodging reimbursement")
	assert.Contains(t, out, "| 2 | ¥400.00 ~ 1.25× standard (¥500.00) | ¥100.00 | ¥75.00 (75%) | ¥25.00 (25%) |")
}

func TestRenderFlight(t *testing.T) {
	r, err := flight.SplitUpgrade(3000, 1500, 75)
	require.NoError(t, err)
	report := FlightReport{Mode: "upgrade", Currency: types.CurrencyUSD, Result: r}

	var table bytes.Buffer
	require.NoError(t, RenderFlight(&table, FormatCLI, report))
	assert.Contains(t, table.String(), "FLIGHT COST SPLIT (upgrade)")
	assert.Contains(t, table.String(), "COMPANY PAYS (91.67%)")
	assert.Contains(t, table.String(), "$4125.00")

	var md bytes.Buffer
	require.NoError(t, RenderFlight(&md, FormatMarkdown, report))
	assert.Contains(t, md.String(), "| Employee | $375.00 | 8.33% |")

	var js bytes.Buffer
	require.NoError(t, RenderFlight(&js, FormatJSON, report))
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(js.Bytes(), &payload))
	assert.Equal(t, "USD", payload["currency"])
}

func TestRenderRules(t *testing.T) {
	var md bytes.Buffer
	require.NoError(t, RenderRules(&md, FormatCLI, policy.Rules()))
	assert.Contains(t, md.String(), "| 2. Above standard up to 1.25× standard | (S, 1.25S] | 75% | 25% |")
	assert.Contains(t, md.String(), "`upgrade75`")

	var y bytes.Buffer
	require.NoError(t, RenderRules(&y, FormatYAML, policy.Rules()))
	var doc policy.Document
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &doc))
	assert.Equal(t, policy.Rules(), doc)
}

func TestWriteHotelXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHotelXLSX(&buf, hotelResult(t, 800, false)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(BreakdownSheet)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, "band", rows[0][0])
	assert.Equal(t, []string{"1", "≤ standard (¥400.00)", "400", "1", "0", "400", "0"}, rows[1])
	assert.Equal(t, "4", rows[4][0])

	company, err := f.GetCellValue(BreakdownSheet, "C9")
	require.NoError(t, err)
	assert.Equal(t, "625", company)
}
