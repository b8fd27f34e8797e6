// File: scanner.go
// Title: Lox Scanner
// Description: Converts Lox source text into a token sequence terminated by
//              a single EOF token. Single pass over the source bytes with one
//              and two character lookahead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package scanner

import (
	"strconv"
	"unicode/utf8"

	mlxlog "github.com/msto63/mLox/foundation/core/log"
	"github.com/msto63/mLox/foundation/lox/diag"
	"github.com/msto63/mLox/foundation/lox/literal"
	"github.com/msto63/mLox/foundation/lox/token"
)

// Scanner holds the cursor state of one scan. A Scanner is used once and
// is not safe for concurrent use.
type Scanner struct {
	source string
	tokens []token.Token

	start   int
	current int
	line    int

	opts   Options
	errors diag.ErrorList
}

// New creates a scanner over source
func New(source string, opts Options) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		opts:   opts.withDefaults(),
	}
}

// Scan scans source in one call
func Scan(source string, opts Options) ([]token.Token, error) {
	return New(source, opts).ScanTokens()
}

// ScanTokens scans the whole source. On success the result ends with
// exactly one EOF token on the last line. On failure no tokens are
// returned: the error is a *diag.Error under PolicyAbort and a
// diag.ErrorList under PolicyCollect.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	timer := s.opts.Logger.StartTimer("scan").WithField("bytes", len(s.source))

	for !s.isAtEnd() {
		s.start = s.current
		err := s.scanToken()
		if err == nil {
			continue
		}

		s.opts.Reporter.Report(err)
		if s.opts.Policy == PolicyAbort {
			timer.StopWithError(err)
			return nil, err
		}

		s.errors.Add(err)
		if s.opts.MaxErrors > 0 && s.errors.Len() >= s.opts.MaxErrors {
			s.opts.Logger.Debug("Error limit reached, scan stopped", mlxlog.Fields{
				"max_errors": s.opts.MaxErrors,
				"line":       s.line,
			})
			break
		}
	}

	if s.errors.Len() > 0 {
		timer.StopWithError(s.errors)
		return nil, s.errors
	}

	s.tokens = append(s.tokens, token.New(token.EOF, "", literal.Null(), s.line))
	timer.WithField("tokens", len(s.tokens)).WithField("lines", s.line).Stop()

	return s.tokens, nil
}

func (s *Scanner) scanToken() *diag.Error {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		s.addToken(s.either('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.either('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.either('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.either('=', token.GreaterEqual, token.Greater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		return s.stringLiteral()
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			return s.invalidCharacter(c)
		}
	}

	return nil
}

func (s *Scanner) stringLiteral() *diag.Error {
	startLine := s.line

	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return diag.UnterminatedString(startLine)
	}

	// closing quote
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addLiteral(token.String, literal.String(value))
	return nil
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// A digit run always parses; overflow yields +Inf with ErrRange.
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteral(token.Number, literal.Number(value))
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	s.addToken(s.opts.Keywords.Lookup(s.source[s.start:s.current]))
}

func (s *Scanner) invalidCharacter(c byte) *diag.Error {
	char := string(c)
	if c >= utf8.RuneSelf {
		r, size := utf8.DecodeRuneInString(s.source[s.start:])
		if r != utf8.RuneError {
			char = string(r)
		}
		s.current = s.start + size
	}
	return diag.InvalidCharacter(s.line, char)
}

func (s *Scanner) addToken(kind token.Kind) {
	s.addLiteral(kind, literal.Null())
}

func (s *Scanner) addLiteral(kind token.Kind, value literal.Value) {
	tok := token.New(kind, s.source[s.start:s.current], value, s.line)
	s.tokens = append(s.tokens, tok)

	if s.opts.Logger.IsLevelEnabled(mlxlog.LevelTrace) {
		s.opts.Logger.Trace("Token", mlxlog.Fields{
			"kind":   kind.String(),
			"lexeme": tok.Lexeme,
			"line":   tok.Line,
		})
	}
}

func (s *Scanner) either(expected byte, matched, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return matched
	}
	return otherwise
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
