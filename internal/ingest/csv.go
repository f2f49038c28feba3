package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"risparmio/internal/domain"
)

// Header names accepted for each field. The source sheets are bilingual, so
// both the English and Italian spellings are recognized.
var headerAliases = map[string]string{
	"date":        "date",
	"data":        "date",
	"description": "description",
	"descrizione": "description",
	"category":    "category",
	"categoria":   "category",
	"type":        "type",
	"tipo":        "type",
	"value":       "value",
	"valore":      "value",
}

// Date layouts tried in order when parsing the date column.
var dateLayouts = []string{"02/01/06", "2006-01-02", "02/01/2006"}

// Result is the outcome of parsing one sheet: the usable transactions plus a
// per-row report of everything that had to be skipped. Skips never fail the
// parse; a structurally unreadable file does.
type Result struct {
	Transactions []*domain.Transaction
	Skipped      []domain.SkippedTransaction
}

// Parser reads transaction sheets from CSV.
type Parser struct {
	excludedIncomeCategories map[string]struct{}
}

// NewParser creates a Parser. Income rows whose category is in
// excludedIncomeCategories are dropped at import time (not reported as
// skipped errors).
func NewParser(excludedIncomeCategories []string) *Parser {
	excluded := make(map[string]struct{}, len(excludedIncomeCategories))
	for _, c := range excludedIncomeCategories {
		excluded[c] = struct{}{}
	}
	return &Parser{excludedIncomeCategories: excluded}
}

// Parse reads one sheet from r. The first record is the header; every
// following record is one transaction. The type column is only required for
// the savings sheet.
func (p *Parser) Parse(r io.Reader, sheet domain.Sheet) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns, err := mapHeader(header, sheet)
	if err != nil {
		return nil, err
	}

	result := &Result{Transactions: []*domain.Transaction{}}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		tx, reason := p.parseRecord(record, columns, sheet)
		if reason != "" {
			result.Skipped = append(result.Skipped, domain.SkippedTransaction{Row: row, Reason: reason})
			continue
		}
		if tx == nil {
			// Filtered row (excluded income category), not an error.
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	if len(result.Transactions) == 0 && len(result.Skipped) == 0 {
		return nil, domain.ErrEmptyFile
	}

	return result, nil
}

// mapHeader resolves the column index for each recognized field.
func mapHeader(header []string, sheet domain.Sheet) (map[string]int, error) {
	columns := make(map[string]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if field, ok := headerAliases[key]; ok {
			columns[field] = i
		}
	}

	required := []string{"date", "category", "value"}
	if sheet == domain.SheetSavings {
		required = append(required, "type")
	}
	for _, field := range required {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("%w: missing %s column", domain.ErrInvalidInput, field)
		}
	}

	return columns, nil
}

// parseRecord converts one CSV record. It returns a non-empty reason when the
// record is malformed, and a nil transaction with an empty reason when the
// record is intentionally filtered.
func (p *Parser) parseRecord(record []string, columns map[string]int, sheet domain.Sheet) (*domain.Transaction, string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rawDate := field("date")
	if rawDate == "" {
		return nil, "missing date"
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, fmt.Sprintf("unparseable date %q", rawDate)
	}

	category := field("category")
	if category == "" {
		return nil, "missing category"
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, fmt.Sprintf("category exceeds %d characters", domain.MaxCategoryLength)
	}

	rawValue := field("value")
	if rawValue == "" {
		return nil, "missing value"
	}
	value, err := decimal.NewFromString(normalizeValue(rawValue))
	if err != nil {
		return nil, fmt.Sprintf("non-numeric value %q", rawValue)
	}

	categoryType := field("type")
	if sheet == domain.SheetSavings && categoryType == "" {
		return nil, "missing category type"
	}

	if sheet == domain.SheetIncome {
		if _, excluded := p.excludedIncomeCategories[category]; excluded {
			return nil, ""
		}
	}

	description := field("description")
	if len(description) > domain.MaxDescriptionLength {
		description = description[:domain.MaxDescriptionLength]
	}

	return &domain.Transaction{
		Sheet:        sheet,
		Date:         date,
		Description:  description,
		Category:     category,
		CategoryType: categoryType,
		Value:        value,
	}, ""
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// normalizeValue strips currency symbols and thousands separators the source
// sheets sometimes carry, and converts a decimal comma to a point.
func normalizeValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "€")
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		// Both separators present: the rightmost one is the decimal
		// separator, so 1.234,56 and 1,234.56 both parse as 1234.56.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return strings.ReplaceAll(s, ",", ".")
}
