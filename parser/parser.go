// File: parser.go
// Role: Parse — the line-oriented scanner implementing the grammar
// described in doc.go.
package parser

import (
	"bufio"
	"strings"
)

// recognised property keys per scope.
var (
	globalKeys = map[string]bool{"time_unit": true}
	eventKeys  = map[string]bool{"label": true, "comment": true, "probability": true, "rate": true}
	gateKeys   = map[string]bool{"label": true, "comment": true, "type": true, "inputs": true, "is_paged": true}
)

// Parse scans source line by line and returns the raw global properties
// and object declarations it contains. Parse only enforces grammar shape,
// known-key membership, and no-duplicate-property-per-object; it does not
// interpret values (see core.Build for semantic validation).
func Parse(source string, opts ...Option) (*Document, error) {
	cfg := newParseConfig(opts...)

	doc := &Document{}
	currentIdx := -1 // -1 means "global scope", else index into doc.Declarations

	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			continue // blank line
		}

		leading := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(leading, "#") {
			continue // comment
		}

		switch {
		case strings.HasPrefix(leading, "Event:"), strings.HasPrefix(leading, "Gate:"):
			kind := EventObject
			rest := strings.TrimPrefix(leading, "Event:")
			if strings.HasPrefix(leading, "Gate:") {
				kind = GateObject
				rest = strings.TrimPrefix(leading, "Gate:")
			}
			id, ok := parseHeaderID(rest)
			if !ok {
				return nil, &SyntaxError{Line: lineNo, Token: line, Cause: ErrMalformedLine}
			}
			doc.Declarations = append(doc.Declarations, Declaration{Kind: kind, ID: id, Line: lineNo})
			currentIdx = len(doc.Declarations) - 1

		case strings.HasPrefix(leading, "-"):
			key, value, ok := parsePropertyLine(leading)
			if !ok {
				return nil, &SyntaxError{Line: lineNo, Token: line, Cause: ErrMalformedLine}
			}

			if currentIdx == -1 {
				if !globalKeys[key] {
					if !cfg.allowUnknownGlobal {
						return nil, &SyntaxError{Line: lineNo, Token: key, Cause: ErrUnknownKey}
					}
					continue // lenient mode: unknown global keys are dropped
				}
				for _, p := range doc.Globals {
					if p.Key == key {
						return nil, &SyntaxError{Line: lineNo, Token: key, Cause: ErrDuplicateProperty}
					}
				}
				doc.Globals = append(doc.Globals, Property{Key: key, Value: value, Line: lineNo})
				continue
			}

			decl := &doc.Declarations[currentIdx]
			allowed := eventKeys
			if decl.Kind == GateObject {
				allowed = gateKeys
			}
			if !allowed[key] {
				return nil, &SyntaxError{Line: lineNo, Token: key, Cause: ErrUnknownKey}
			}
			for _, p := range decl.Properties {
				if p.Key == key {
					return nil, &SyntaxError{Line: lineNo, Token: key, Cause: ErrDuplicateProperty}
				}
			}
			decl.Properties = append(decl.Properties, Property{Key: key, Value: value, Line: lineNo})

		default:
			return nil, &SyntaxError{Line: lineNo, Token: line, Cause: ErrMalformedLine}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &SyntaxError{Line: lineNo, Token: err.Error(), Cause: ErrMalformedLine}
	}

	return doc, nil
}

// parseHeaderID consumes the "SP+ id" tail of a header line and returns
// the identifier. rest must be at least one whitespace character followed
// by an id with no internal whitespace, no comma, and no trailing garbage.
func parseHeaderID(rest string) (string, bool) {
	trimmed := strings.TrimLeft(rest, " \t")
	if trimmed == rest || trimmed == "" {
		return "", false // no SP+ separator, or nothing after it
	}
	id := strings.TrimRight(trimmed, " \t")
	if id == "" || strings.ContainsAny(id, " \t") || strings.Contains(id, ",") {
		return "", false
	}
	return id, true
}

// parsePropertyLine parses "- key: value" (leading already confirmed to
// start with "-"). Returns the key and the surrounding-whitespace-trimmed
// value.
func parsePropertyLine(leading string) (key, value string, ok bool) {
	rest := leading[1:] // drop '-'
	trimmed := strings.TrimLeft(rest, " \t")
	if trimmed == rest {
		return "", "", false // "-" not followed by SP+
	}

	colon := strings.IndexByte(trimmed, ':')
	if colon < 0 {
		return "", "", false
	}
	key = trimmed[:colon]
	if !isValidKeyToken(key) {
		return "", "", false
	}

	valuePart := trimmed[colon+1:]
	trimmedValue := strings.TrimLeft(valuePart, " \t")
	if trimmedValue == valuePart && trimmedValue != "" {
		return "", "", false // ":" not followed by SP+ (unless value is empty)
	}
	value = strings.TrimSpace(valuePart)

	return key, value, true
}

// isValidKeyToken reports whether s matches key := [a-zA-Z_][a-zA-Z0-9_]*.
func isValidKeyToken(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			// always legal
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
