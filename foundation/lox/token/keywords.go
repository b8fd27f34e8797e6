package token

// Keywords maps every reserved spelling to its kind. It is built once and
// never modified; concurrent scanners read it without locking.
type Keywords map[string]Kind

var defaultKeywords = Keywords{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// DefaultKeywords returns the shared Lox reserved word table. Callers must
// not modify it.
func DefaultKeywords() Keywords {
	return defaultKeywords
}

// Lookup returns the keyword kind for ident, or Identifier
func (k Keywords) Lookup(ident string) Kind {
	if kind, ok := k[ident]; ok {
		return kind
	}
	return Identifier
}

// LookupIdent resolves ident against the default keyword table
func LookupIdent(ident string) Kind {
	return defaultKeywords.Lookup(ident)
}
