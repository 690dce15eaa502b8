// Package command turns free-text chat messages into typed commands.
//
// Messages are lower-cased and trimmed, then split into a keyword, an amount
// and the remaining words:
//
//	masuk <amount>
//	keluar <amount> [note...]
//	/start
//
// Amounts are plain digits with an optional decimal part. Thousands
// separators, signs and currency symbols are not accepted.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/domain"
)

// Keywords recognised at the start of a message.
const (
	KeywordIncome  = "masuk"
	KeywordExpense = "keluar"
	KeywordStart   = "/start"
)

var (
	ErrUnrecognized    = errors.New("unrecognized command")
	ErrMalformedAmount = errors.New("malformed amount")
)

var amountPattern = regexp.MustCompile(`^(masuk|keluar)\s+(\d+(?:\.\d+)?)`)

// Type tells which action a command asks for.
type Type int

const (
	TypeStart Type = iota + 1
	TypeRecord
)

// Tokens is the tokenizer output for one message.
type Tokens struct {
	Keyword   string
	Amount    string
	Remainder []string
}

// Command is a parsed chat command.
type Command struct {
	Type   Type
	Kind   domain.Kind
	Amount decimal.Decimal
	Note   string
}

// ParseError reports a record command whose amount could not be used.
type ParseError struct {
	Kind  domain.Kind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s command %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize lower-cases and trims a raw message.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize splits a message into keyword, amount and remainder.
// Keyword is empty when the message starts with none of the known keywords;
// Amount is empty when no number directly follows the keyword.
func Tokenize(text string) Tokens {
	norm := Normalize(text)

	var tok Tokens
	switch {
	case norm == KeywordStart:
		tok.Keyword = KeywordStart
		return tok
	case strings.HasPrefix(norm, KeywordIncome):
		tok.Keyword = KeywordIncome
	case strings.HasPrefix(norm, KeywordExpense):
		tok.Keyword = KeywordExpense
	default:
		return tok
	}

	if m := amountPattern.FindStringSubmatch(norm); m != nil {
		tok.Amount = m[2]
	}

	if fields := strings.Fields(norm); len(fields) > 2 {
		tok.Remainder = fields[2:]
	}

	return tok
}

// Parse tokenizes and interprets a message.
func Parse(text string) (Command, error) {
	return FromTokens(Tokenize(text))
}

// FromTokens maps tokenizer output to a command. It never touches I/O.
func FromTokens(tok Tokens) (Command, error) {
	var kind domain.Kind
	switch tok.Keyword {
	case KeywordStart:
		return Command{Type: TypeStart}, nil
	case KeywordIncome:
		kind = domain.KindIncome
	case KeywordExpense:
		kind = domain.KindExpense
	default:
		return Command{}, ErrUnrecognized
	}

	if tok.Amount == "" {
		return Command{}, &ParseError{Kind: kind, Err: ErrMalformedAmount}
	}

	amount, err := decimal.NewFromString(tok.Amount)
	if err != nil {
		return Command{}, &ParseError{Kind: kind, Input: tok.Amount, Err: fmt.Errorf("%w: %v", ErrMalformedAmount, err)}
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return Command{}, &ParseError{Kind: kind, Input: tok.Amount, Err: err}
	}

	cmd := Command{
		Type:   TypeRecord,
		Kind:   kind,
		Amount: amount,
	}
	// Income always gets the default note; only expenses carry free text.
	if kind == domain.KindExpense {
		cmd.Note = strings.Join(tok.Remainder, " ")
	}

	return cmd, nil
}
