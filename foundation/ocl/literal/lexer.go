// File: lexer.go
// Title: Literal Lexical Analyzer
// Description: Converts a token into a stream of lexical tokens for the
//              literal parser. Works on runes so bare words may contain any
//              Unicode letter. Line breaks inside brackets are ignored, and
//              a '#' outside quotes starts a comment when enabled.
// Version: v0.1.0
// Created: 2026-09-04
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-04 v0.1.0: Initial lexer implementation

package literal

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal
	TokenNewline

	// Identifiers and literals
	TokenName   // abc, True, None
	TokenNumber // 123, 0x1f, 1.5e3
	TokenString // 'abc', "abc", r'\d'

	// Delimiters
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenComma        // ,
	TokenColon        // :

	// Operators
	TokenPlus     // +
	TokenMinus    // -
	TokenOperator // any other operator character
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenNewline:
		return "NEWLINE"
	case TokenName:
		return "NAME"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenComma:
		return "COMMA"
	case TokenColon:
		return "COLON"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenOperator:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Value    string // raw text; decoded contents for strings
	Position int    // rune offset in input
	Raw      bool   // string carried an r prefix
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Lexer performs lexical analysis of a single command-line token
type Lexer struct {
	input       []rune
	position    int  // current position in input (points to current char)
	readPos     int  // current reading position (after current char)
	ch          rune // current char under examination, 0 at EOF
	depth       int  // bracket nesting depth
	commentHash bool
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string, commentHash bool) *Lexer {
	l := &Lexer{
		input:       []rune(input),
		commentHash: commentHash,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipBlank()

	pos := l.position
	single := func(tt TokenType) Token {
		tok := Token{Type: tt, Value: string(l.ch), Position: pos}
		l.readChar()
		return tok
	}

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Position: pos}
	case '\n':
		return single(TokenNewline)
	case '[':
		l.depth++
		return single(TokenLeftBracket)
	case '(':
		l.depth++
		return single(TokenLeftParen)
	case '{':
		l.depth++
		return single(TokenLeftBrace)
	case ']':
		l.depth--
		return single(TokenRightBracket)
	case ')':
		l.depth--
		return single(TokenRightParen)
	case '}':
		l.depth--
		return single(TokenRightBrace)
	case ',':
		return single(TokenComma)
	case ':':
		return single(TokenColon)
	case '+':
		return single(TokenPlus)
	case '-':
		return single(TokenMinus)
	case '\'', '"':
		return l.readString(pos, "")
	case '.':
		if isDigit(l.peekChar()) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
		}
		return single(TokenOperator)
	}

	switch {
	case isDigit(l.ch):
		return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
	case isNameStart(l.ch):
		name := l.readName()
		if (l.ch == '\'' || l.ch == '"') && isStringPrefix(name) {
			return l.readString(pos, name)
		}
		return Token{Type: TokenName, Value: name, Position: pos}
	case strings.ContainsRune("*/%=<>&|^~@!.;?$`\\", l.ch):
		return single(TokenOperator)
	default:
		return single(TokenIllegal)
	}
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		if tok.Type == TokenIllegal {
			return tokens, &SyntaxError{Message: "illegal character " + tok.Value, Position: tok.Position}
		}
	}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// skipBlank skips spaces, comments, escaped line breaks and line breaks
// inside brackets
func (l *Lexer) skipBlank() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\f' || l.ch == '\r':
			l.readChar()
		case l.ch == '\n' && l.depth > 0:
			l.readChar()
		case l.ch == '\\' && l.peekChar() == '\n':
			l.readChar()
			l.readChar()
		case l.ch == '#' && l.commentHash:
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readName reads an identifier
func (l *Lexer) readName() string {
	start := l.position
	for isNameChar(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// readNumber reads the longest run that could form a numeric literal.
// Validation happens in the parser.
func (l *Lexer) readNumber() string {
	start := l.position
	hex := l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X')
	for {
		switch {
		case isDigit(l.ch) || isNameChar(l.ch) || l.ch == '.':
			prev := l.ch
			l.readChar()
			if !hex && (prev == 'e' || prev == 'E') && (l.ch == '+' || l.ch == '-') {
				l.readChar()
			}
		default:
			return string(l.input[start:l.position])
		}
	}
}

// readString reads a quoted string, decoding escapes unless raw
func (l *Lexer) readString(pos int, prefix string) Token {
	prefix = strings.ToLower(prefix)
	if strings.ContainsAny(prefix, "bf") {
		// bytes and formatted strings are not literal values
		return Token{Type: TokenIllegal, Value: prefix, Position: pos}
	}
	raw := strings.Contains(prefix, "r")

	quote := l.ch
	triple := l.peekChar() == quote && l.peekAt(2) == quote
	if triple {
		l.readChar()
		l.readChar()
	}
	l.readChar()

	var body []rune
	for {
		switch {
		case l.ch == 0:
			return Token{Type: TokenIllegal, Value: "unterminated string", Position: pos}
		case l.ch == '\n' && !triple:
			return Token{Type: TokenIllegal, Value: "line break in string", Position: pos}
		case l.ch == quote && (!triple || (l.peekChar() == quote && l.peekAt(2) == quote)):
			if triple {
				l.readChar()
				l.readChar()
			}
			l.readChar()
			if raw {
				return Token{Type: TokenString, Value: string(body), Position: pos, Raw: true}
			}
			decoded, err := unescape(body)
			if err != nil {
				return Token{Type: TokenIllegal, Value: err.Error(), Position: pos}
			}
			return Token{Type: TokenString, Value: decoded, Position: pos}
		case l.ch == '\\':
			body = append(body, l.ch)
			l.readChar()
			if l.ch == 0 {
				continue
			}
			body = append(body, l.ch)
			l.readChar()
		default:
			body = append(body, l.ch)
			l.readChar()
		}
	}
}

// peekAt returns the character n positions after the current one
func (l *Lexer) peekAt(n int) rune {
	i := l.position + n
	if i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

// unescape decodes backslash escapes of a non-raw string body
func unescape(body []rune) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		r := body[i]
		if r != '\\' || i+1 >= len(body) {
			sb.WriteRune(r)
			continue
		}
		i++
		switch c := body[i]; c {
		case '\n':
		case '\\', '\'', '"':
			sb.WriteRune(c)
		case 'a':
			sb.WriteRune('\a')
		case 'b':
			sb.WriteRune('\b')
		case 'f':
			sb.WriteRune('\f')
		case 'n':
			sb.WriteRune('\n')
		case 'r':
			sb.WriteRune('\r')
		case 't':
			sb.WriteRune('\t')
		case 'v':
			sb.WriteRune('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			n, j := 0, i
			for ; j < len(body) && j < i+3 && body[j] >= '0' && body[j] <= '7'; j++ {
				n = n*8 + int(body[j]-'0')
			}
			sb.WriteRune(rune(n))
			i = j - 1
		case 'x', 'u', 'U':
			width := map[rune]int{'x': 2, 'u': 4, 'U': 8}[c]
			if i+1+width > len(body) {
				return "", fmt.Errorf("truncated \\%c escape", c)
			}
			n := 0
			for _, h := range body[i+1 : i+1+width] {
				d := hexValue(h)
				if d < 0 {
					return "", fmt.Errorf("invalid \\%c escape", c)
				}
				n = n*16 + d
			}
			if n > unicode.MaxRune {
				return "", fmt.Errorf("illegal Unicode character in \\%c escape", c)
			}
			sb.WriteRune(rune(n))
			i += width
		case 'N':
			return "", fmt.Errorf("named Unicode escapes are not supported")
		default:
			sb.WriteRune('\\')
			sb.WriteRune(c)
		}
	}
	return sb.String(), nil
}

// Utility functions

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isNameStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isNameChar(ch rune) bool {
	return isNameStart(ch) || unicode.IsDigit(ch) ||
		unicode.In(ch, unicode.Mn, unicode.Mc, unicode.Pc)
}

func isStringPrefix(name string) bool {
	switch strings.ToLower(name) {
	case "r", "u", "b", "f", "rb", "br", "fr", "rf":
		return true
	}
	return false
}

func hexValue(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}
