// File: parser.go
// Title: Literal Recursive Descent Parser
// Description: Parses the token stream of one command-line token into a
//              value. Any construct outside the literal grammar (binary
//              operators, attribute access, calls, keywords) is a
//              SyntaxError; Parse turns that into the original token.
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial parser implementation

package literal

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Options toggles the grammar quirks
type Options struct {
	// CommentHash makes '#' outside quotes start a comment, so "0#x" is 0.
	CommentHash bool
	// StripLeadingZeros accepts zero-padded integers, so "007" is 7.
	// When off, such tokens stay strings.
	StripLeadingZeros bool
}

// DefaultOptions returns the options used by Parse
func DefaultOptions() Options {
	return Options{CommentHash: true}
}

// SyntaxError reports why a token is not a literal
type SyntaxError struct {
	Message  string
	Position int // rune offset in the token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid literal at offset %d: %s", e.Position, e.Message)
}

// Parser parses tokens with a fixed set of options. It holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	options Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	return &Parser{options: opts}
}

var defaultParser = New(DefaultOptions())

// Parse parses token with the default options
func Parse(token string) any {
	return defaultParser.Parse(token)
}

// Options returns the parser options
func (p *Parser) Options() Options {
	return p.options
}

// Parse returns the value of token, or token itself when it is not a literal
func (p *Parser) Parse(token string) any {
	v, err := p.Eval(token)
	if err != nil {
		return token
	}
	return v
}

// Eval parses token and reports grammar violations as *SyntaxError
func (p *Parser) Eval(token string) (any, error) {
	if token == "" {
		return nil, &SyntaxError{Message: "empty input"}
	}
	if r := []rune(token)[0]; unicode.IsSpace(r) {
		return nil, &SyntaxError{Message: "unexpected indent"}
	}

	tokens, err := NewLexer(token, p.options.CommentHash).Tokenize()
	if err != nil {
		return nil, err
	}

	s := &state{tokens: tokens, options: p.options}
	return s.parseTopLevel()
}

// state walks the token slice of one Eval call
type state struct {
	tokens  []Token
	pos     int
	options Options
}

func (s *state) current() Token {
	return s.tokens[s.pos]
}

func (s *state) advance() {
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
}

func (s *state) errorf(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Position: s.current().Position}
}

func (s *state) expect(tt TokenType) error {
	if s.current().Type != tt {
		return s.errorf("expected %s, found %s", tt, s.current())
	}
	s.advance()
	return nil
}

// parseTopLevel parses an expression or an unbracketed tuple
func (s *state) parseTopLevel() (any, error) {
	v, err := s.parseExpr()
	if err != nil {
		return nil, err
	}

	if s.current().Type == TokenComma {
		items := Tuple{v}
		for s.current().Type == TokenComma {
			s.advance()
			if t := s.current().Type; t == TokenEOF || t == TokenNewline {
				break
			}
			item, err := s.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		v = items
	}

	for s.current().Type == TokenNewline {
		s.advance()
	}
	if s.current().Type != TokenEOF {
		return nil, s.errorf("unexpected %s", s.current())
	}
	return v, nil
}

// parseExpr parses a primary with an optional sign. Signs apply to numbers only.
func (s *state) parseExpr() (any, error) {
	tok := s.current()
	if tok.Type != TokenPlus && tok.Type != TokenMinus {
		return s.parsePrimary()
	}
	s.advance()

	v, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokenPlus {
		switch v.(type) {
		case int, *big.Int, float64:
			return v, nil
		}
		return nil, &SyntaxError{Message: "unary + applies to numbers only", Position: tok.Position}
	}

	switch x := v.(type) {
	case int:
		if x == minInt {
			return new(big.Int).Neg(big.NewInt(int64(x))), nil
		}
		return -x, nil
	case *big.Int:
		return normalizeInt(new(big.Int).Neg(x)), nil
	case float64:
		return -x, nil
	}
	return nil, &SyntaxError{Message: "unary - applies to numbers only", Position: tok.Position}
}

// parsePrimary parses one literal or container
func (s *state) parsePrimary() (any, error) {
	tok := s.current()

	switch tok.Type {
	case TokenNumber:
		s.advance()
		v, err := parseNumber(tok.Value, s.options)
		if err != nil {
			return nil, &SyntaxError{Message: err.Error(), Position: tok.Position}
		}
		return v, nil

	case TokenString:
		var sb strings.Builder
		for s.current().Type == TokenString {
			sb.WriteString(s.current().Value)
			s.advance()
		}
		return sb.String(), nil

	case TokenName:
		s.advance()
		return s.parseName(tok)

	case TokenLeftBracket:
		s.advance()
		items, err := s.parseItems(TokenRightBracket)
		if err != nil {
			return nil, err
		}
		return items, nil

	case TokenLeftParen:
		return s.parseParen()

	case TokenLeftBrace:
		return s.parseBrace()
	}

	return nil, s.errorf("unexpected %s", tok)
}

// parseName resolves a bare word
func (s *state) parseName(tok Token) (any, error) {
	switch tok.Value {
	case "True":
		return true, nil
	case "False":
		return false, nil
	case "None":
		return nil, nil
	case "set":
		if s.current().Type == TokenLeftParen {
			s.advance()
			if err := s.expect(TokenRightParen); err != nil {
				return nil, err
			}
			return Set{}, nil
		}
	}
	if reservedWords[tok.Value] {
		return nil, &SyntaxError{Message: "reserved word " + tok.Value, Position: tok.Position}
	}
	return tok.Value, nil
}

// parseItems parses comma separated expressions up to the closing token
func (s *state) parseItems(closing TokenType) ([]any, error) {
	items := []any{}
	for s.current().Type != closing {
		item, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if s.current().Type != TokenComma {
			break
		}
		s.advance()
	}
	if err := s.expect(closing); err != nil {
		return nil, err
	}
	return items, nil
}

// parseParen parses a tuple or a parenthesized expression
func (s *state) parseParen() (any, error) {
	s.advance()
	if s.current().Type == TokenRightParen {
		s.advance()
		return Tuple{}, nil
	}

	first, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if s.current().Type == TokenRightParen {
		s.advance()
		return first, nil
	}
	if err := s.expect(TokenComma); err != nil {
		return nil, err
	}

	rest, err := s.parseItems(TokenRightParen)
	if err != nil {
		return nil, err
	}
	return append(Tuple{first}, rest...), nil
}

// parseBrace parses a dict or a set
func (s *state) parseBrace() (any, error) {
	s.advance()
	if s.current().Type == TokenRightBrace {
		s.advance()
		return Dict{}, nil
	}

	keyPos := s.current().Position
	first, err := s.parseExpr()
	if err != nil {
		return nil, err
	}

	if s.current().Type != TokenColon {
		members := Set{}
		items := []any{first}
		if s.current().Type == TokenComma {
			s.advance()
			rest, err := s.parseItems(TokenRightBrace)
			if err != nil {
				return nil, err
			}
			items = append(items, rest...)
		} else if err := s.expect(TokenRightBrace); err != nil {
			return nil, err
		}
		for _, item := range items {
			if _, ok := hashKey(item); !ok {
				return nil, &SyntaxError{Message: "unhashable set member", Position: keyPos}
			}
			if !members.Contains(item) {
				members = append(members, item)
			}
		}
		return members, nil
	}

	dict := Dict{}
	key := first
	for {
		if err := s.expect(TokenColon); err != nil {
			return nil, err
		}
		value, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if dict, err = setKey(dict, key, value, keyPos); err != nil {
			return nil, err
		}

		if s.current().Type != TokenComma {
			break
		}
		s.advance()
		if s.current().Type == TokenRightBrace {
			break
		}
		keyPos = s.current().Position
		if key, err = s.parseExpr(); err != nil {
			return nil, err
		}
	}
	if err := s.expect(TokenRightBrace); err != nil {
		return nil, err
	}
	return dict, nil
}

// setKey stores value under key, replacing the value of an equal key in place
func setKey(d Dict, key, value any, pos int) (Dict, error) {
	k, ok := hashKey(key)
	if !ok {
		return nil, &SyntaxError{Message: "unhashable dict key", Position: pos}
	}
	for i, p := range d {
		if pk, _ := hashKey(p.Key); pk == k {
			d[i].Value = value
			return d, nil
		}
	}
	return append(d, Pair{Key: key, Value: value}), nil
}

// Numbers

const minInt = -1 << (strconv.IntSize - 1)

var (
	decimalInt = regexp.MustCompile(`^[0-9](_?[0-9])*$`)
	floatForms = []*regexp.Regexp{
		regexp.MustCompile(`^([0-9](_?[0-9])*)?\.[0-9](_?[0-9])*([eE][+-]?[0-9](_?[0-9])*)?$`),
		regexp.MustCompile(`^[0-9](_?[0-9])*\.?([eE][+-]?[0-9](_?[0-9])*)?$`),
	}
	prefixedInt = map[byte]*regexp.Regexp{
		'x': regexp.MustCompile(`^(_?[0-9a-fA-F])+$`),
		'o': regexp.MustCompile(`^(_?[0-7])+$`),
		'b': regexp.MustCompile(`^(_?[01])+$`),
	}
	prefixBase = map[byte]int{'x': 16, 'o': 8, 'b': 2}
)

var errLeadingZeros = errors.New("leading zeros in decimal integer literals are not permitted")

// parseNumber validates and converts a numeric token
func parseNumber(text string, opts Options) (any, error) {
	if len(text) > 2 && text[0] == '0' {
		p := text[1] | 0x20
		if re, ok := prefixedInt[p]; ok {
			digits := text[2:]
			if !re.MatchString(digits) {
				return nil, fmt.Errorf("invalid base %d literal %q", prefixBase[p], text)
			}
			return parseInt(strings.ReplaceAll(digits, "_", ""), prefixBase[p])
		}
	}

	if strings.ContainsAny(text, ".eE") {
		for _, re := range floatForms {
			if re.MatchString(text) {
				f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
				if err != nil && !errors.Is(err, strconv.ErrRange) {
					return nil, err
				}
				return f, nil
			}
		}
		return nil, fmt.Errorf("invalid float literal %q", text)
	}

	if !decimalInt.MatchString(text) {
		return nil, fmt.Errorf("invalid decimal literal %q", text)
	}
	digits := strings.ReplaceAll(text, "_", "")
	if len(digits) > 1 && digits[0] == '0' {
		trimmed := strings.TrimLeft(digits, "0")
		if trimmed != "" && !opts.StripLeadingZeros {
			return nil, errLeadingZeros
		}
		if trimmed == "" {
			trimmed = "0"
		}
		digits = trimmed
	}
	return parseInt(digits, 10)
}

// parseInt returns an int, or a *big.Int when the value does not fit
func parseInt(digits string, base int) (any, error) {
	if n, err := strconv.ParseInt(digits, base, strconv.IntSize); err == nil {
		return int(n), nil
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", digits)
	}
	return b, nil
}

// normalizeInt narrows b to int when it fits
func normalizeInt(b *big.Int) any {
	if b.IsInt64() {
		n := b.Int64()
		if int64(int(n)) == n {
			return int(n)
		}
	}
	return b
}

// reservedWords cannot appear as bare words
var reservedWords = map[string]bool{
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}
