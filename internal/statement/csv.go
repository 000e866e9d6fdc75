// Package statement reads bank statement exports into transactions.
package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
)

// Bank identifies the export layout a statement was recognized as.
type Bank string

// Recognized layouts.
const (
	BankNubank  Bank = "Nubank"
	BankInter   Bank = "Inter"
	BankUnknown Bank = "Desconhecido"
)

// Normalized column names every statement must provide.
const (
	ColumnDate   = "date"
	ColumnTitle  = "title"
	ColumnAmount = "amount"
)

var columnAliases = map[string]string{
	"data":      ColumnDate,
	"descrição": ColumnTitle,
	"descriçao": ColumnTitle,
	"descricao": ColumnTitle,
	"valor":     ColumnAmount,
	"value":     ColumnAmount,
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02/01/06",
	"2006/01/02",
	"02-01-2006",
}

// Statement is a parsed export.
type Statement struct {
	Bank         Bank
	Encoding     string
	Transactions []model.Transaction
}

// DetectBank recognizes the export layout from its header row.
func DetectBank(headers []string) Bank {
	has := make(map[string]bool, len(headers))
	for _, h := range headers {
		has[strings.ToLower(h)] = true
	}

	switch {
	case has["date"] && has["title"] && has["amount"]:
		return BankNubank
	case has["data"] && has["descrição"]:
		return BankInter
	default:
		return BankUnknown
	}
}

// NormalizeHeader lowercases and trims a header and maps known Portuguese
// and English aliases onto the normalized column names.
func NormalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if alias, ok := columnAliases[h]; ok {
		return alias
	}
	return h
}

// ParseCSV reads a CSV statement. The first row is the header. Rows whose
// date cannot be parsed keep the raw text in RawDate.
func ParseCSV(r io.Reader) (*Statement, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}
	data, encoding, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode statement: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, common.ErrEmptyStatement
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", common.ErrUnsupportedFormat, err)
	}

	stmt := &Statement{
		Bank:     DetectBank(trimAll(headers)),
		Encoding: encoding,
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		name := NormalizeHeader(h)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	var missing []string
	for _, required := range []string{ColumnDate, ColumnTitle, ColumnAmount} {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", common.ErrUnsupportedFormat, strings.Join(missing, ", "))
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrUnsupportedFormat, line, err)
		}
		if blankRecord(record) {
			continue
		}

		txn, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		stmt.Transactions = append(stmt.Transactions, txn)
	}

	slog.Debug("Parsed CSV statement",
		"bank", stmt.Bank,
		"encoding", encoding,
		"transactions", len(stmt.Transactions))

	return stmt, nil
}

func parseRecord(record []string, index map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	amount, err := ParseAmount(field(ColumnAmount))
	if err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		Title:  field(ColumnTitle),
		Amount: amount,
	}
	rawDate := field(ColumnDate)
	if date, ok := parseDate(rawDate); ok {
		txn.Date = date
	} else {
		txn.RawDate = rawDate
	}
	txn.Hash = txn.GenerateHash()
	return txn, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sniffDelimiter picks ';' for exports whose header uses semicolons and no
// commas, and ',' otherwise.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	if bytes.Count(header, []byte(";")) > 0 && bytes.Count(header, []byte(",")) == 0 {
		return ';'
	}
	return ','
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
