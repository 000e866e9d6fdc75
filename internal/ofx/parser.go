// Package ofx reads OFX and QFX statement downloads.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/statement"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	leadingDate   = regexp.MustCompile(`^\d{2}/\d{2}\s+`)
	charsetRegex  = regexp.MustCompile(`(?m)^\s*CHARSET:\s*([A-Za-z0-9_-]+)`)
)

// Description prefixes banks put in front of the merchant name.
var titlePrefixes = []string{
	"COMPRA NO DEBITO - ",
	"COMPRA NO DEBITO ",
	"COMPRA CARTAO - ",
	"COMPRA CARTAO ",
	"COMPRA NO CREDITO ",
	"PAGAMENTO DEBITO ",
	"POS PURCHASE ",
	"DEBIT CARD PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
}

var genericTitles = map[string]bool{
	"DEBITO":        true,
	"CREDITO":       true,
	"COMPRA":        true,
	"PAGAMENTO":     true,
	"TRANSFERENCIA": true,
	"DEBIT":         true,
	"CREDIT":        true,
	"PAYMENT":       true,
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Some banks write <SEVERITY>Info</SEVERITY>
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML files sometimes lose the closing bracket of a bare opening tag
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// parse decodes and parses an OFX document, returning the encoding the raw
// bytes were read as.
func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read OFX file: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, "", common.ErrEmptyStatement
	}

	// Brazilian banks export CHARSET:1252; ofxgo expects UTF-8 text.
	content, encoding, err := statement.DecodeCharset(raw, headerCharset(raw))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to parse OFX file: %v", common.ErrUnsupportedFormat, err)
	}
	return resp, encoding, nil
}

// ParseFile parses an OFX/QFX file. Amounts are sign-flipped so that, as in
// CSV statements, money spent is positive.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) (*statement.Statement, error) {
	resp, encoding, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	stmt := &statement.Statement{
		Bank:     bankName(resp),
		Encoding: encoding,
	}
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			stmt.Transactions = append(stmt.Transactions,
				p.convertList(s.BankTranList, string(s.BankAcctFrom.AcctID))...)
		}
	}

	for _, msg := range resp.CreditCard {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			stmt.Transactions = append(stmt.Transactions,
				p.convertList(s.BankTranList, string(s.CCAcctFrom.AcctID))...)
		}
	}

	slog.Info("Parsed OFX file",
		"bank", stmt.Bank,
		"total_transactions", len(stmt.Transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return stmt, nil
}

func (p *Parser) convertList(list *ofxgo.TransactionList, accountID string) []model.Transaction {
	if list == nil {
		return nil
	}
	transactions := make([]model.Transaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		tx, err := p.convertTransaction(ofxTx, accountID)
		if err != nil {
			slog.Warn("Skipping OFX transaction",
				"fitid", string(ofxTx.FiTID),
				"error", err)
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions
}

// convertTransaction converts an OFX transaction to our model.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) (model.Transaction, error) {
	amount, err := decimal.NewFromString(ofxTx.TrnAmt.FloatString(2))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}

	tx := model.Transaction{
		Date:      ofxTx.DtPosted.Time,
		Title:     p.extractTitle(ofxTx),
		Amount:    amount.Neg(),
		AccountID: accountID,
		Type:      ofxTx.TrnType.String(),
	}
	tx.Hash = tx.GenerateHash()
	return tx, nil
}

// extractTitle picks the most descriptive text of a transaction and strips
// card-network noise from it.
func (p *Parser) extractTitle(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && (name == "" || genericTitles[strings.ToUpper(name)]) {
		name = strings.TrimSpace(string(tx.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range titlePrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	return strings.TrimSpace(leadingDate.ReplaceAllString(name, ""))
}

// GetAccounts extracts unique account IDs from the OFX file.
func (p *Parser) GetAccounts(_ context.Context, reader io.Reader) ([]string, error) {
	resp, _, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	add := func(id ofxgo.String) {
		if id != "" && !seen[string(id)] {
			seen[string(id)] = true
			accounts = append(accounts, string(id))
		}
	}

	for _, msg := range resp.Bank {
		if s, ok := msg.(*ofxgo.StatementResponse); ok {
			add(s.BankAcctFrom.AcctID)
		}
	}
	for _, msg := range resp.CreditCard {
		if s, ok := msg.(*ofxgo.CCStatementResponse); ok {
			add(s.CCAcctFrom.AcctID)
		}
	}

	return accounts, nil
}

// headerCharset returns the CHARSET value of an SGML OFX header, or "".
func headerCharset(raw []byte) string {
	if m := charsetRegex.FindSubmatch(raw); m != nil {
		return string(m[1])
	}
	return ""
}

func bankName(resp *ofxgo.Response) statement.Bank {
	if org := strings.TrimSpace(string(resp.Signon.Org)); org != "" {
		return statement.Bank(org)
	}
	return statement.BankUnknown
}
