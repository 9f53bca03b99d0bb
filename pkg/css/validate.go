package css

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
)

// ErrUnsafeValue is returned for token values that would break out of a declaration.
var ErrUnsafeValue = errors.New("unsafe css value")

// ValidateValue checks that v can be used as a declaration value without
// terminating the declaration or the rule it is written into.
func ValidateValue(v string) error {
	depth := 0
	s := scanner.New(v)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return fmt.Errorf("%w: unbalanced parentheses in %q", ErrUnsafeValue, v)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("%w: %q at column %d", ErrUnsafeValue, v, tok.Column)
		case scanner.TokenCDO, scanner.TokenCDC:
			return fmt.Errorf("%w: html comment marker in %q", ErrUnsafeValue, v)
		case scanner.TokenFunction:
			depth++
		case scanner.TokenURI:
			// url(...) is scanned as one token, parentheses included
		case scanner.TokenChar:
			switch tok.Value {
			case ";", "{", "}":
				return fmt.Errorf("%w: %q contains %q", ErrUnsafeValue, v, tok.Value)
			case "(":
				depth++
			case ")":
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: unbalanced parentheses in %q", ErrUnsafeValue, v)
				}
			}
		}
	}
}

// ValidateStylesheet parses text and checks that every rule has a selector.
func ValidateStylesheet(text string) error {
	sheet, err := parser.Parse(text)
	if err != nil {
		return fmt.Errorf("invalid stylesheet: %w", err)
	}
	for i, rule := range sheet.Rules {
		if strings.TrimSpace(rule.Prelude) == "" {
			return fmt.Errorf("invalid stylesheet: rule %d has no selector", i+1)
		}
	}
	return nil
}

// Declared returns the custom property names declared for selector in text.
func Declared(text, selector string) ([]string, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid stylesheet: %w", err)
	}
	var names []string
	for _, rule := range sheet.Rules {
		if strings.TrimSpace(rule.Prelude) != selector {
			continue
		}
		for _, decl := range rule.Declarations {
			names = append(names, decl.Property)
		}
	}
	return names, nil
}
