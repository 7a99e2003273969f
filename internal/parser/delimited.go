package parser

import (
	"github.com/mix-lang/mix/internal/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenType
	Separator lexer.TokenType

	// Landmarks end the list early during recovery, in addition to the
	// separator and the closing token. Reaching one leaves it unconsumed.
	Landmarks []lexer.TokenType
}

// parseDelimited parses separator-delimited items up to and including the
// closing token; the opening token must already be consumed. A trailing
// separator is accepted. parseItem reports its own errors and returns false
// when nothing usable was parsed. The bool result is false when the closing
// token was not found.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func() (T, bool)) ([]T, bool) {
	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	if cfg.Closing == "" {
		panic("parseDelimited requires a closing token")
	}

	recoverAt := append([]lexer.TokenType{cfg.Separator, cfg.Closing}, cfg.Landmarks...)

	var items []T
	for {
		tok := p.peek()
		if tok.Type == cfg.Closing {
			p.next()
			return items, true
		}
		if tok.Type == lexer.EOF || tok.Is(cfg.Landmarks...) {
			p.errorExpected(cfg.Closing, tok)
			return items, false
		}

		item, ok := parseItem()
		if ok {
			items = append(items, item)
			if p.accept(cfg.Separator) || p.at(cfg.Closing) {
				continue
			}
			p.errorExpectedWhat(tokenName(cfg.Separator)+" or "+tokenName(cfg.Closing), p.peek())
		}

		found, ok := p.synchronize(recoverAt...)
		switch {
		case !ok:
			return items, false
		case found == cfg.Separator:
			p.next()
		case found == cfg.Closing:
			// consumed at the top of the loop
		default:
			return items, false
		}
	}
}
