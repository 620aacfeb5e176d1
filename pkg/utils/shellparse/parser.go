// Package shellparse provides shell-like command line splitting for the
// external tool commands configured in padring (icon converter, key
// injector). It follows POSIX word splitting rules without performing any
// expansion.
package shellparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not properly closed
	ErrUnclosedQuote = errors.New("unclosed quote in command string")

	// ErrTrailingEscape is returned when a backslash appears at the end of input
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
)

// Split parses a command string into arguments, handling quotes and escapes.
//
// Parsing rules:
//   - Words are separated by whitespace
//   - Single quotes preserve literal values (no escapes)
//   - Double quotes preserve literal values except for backslash escapes
//   - Backslash escapes the next character outside quotes
//   - Empty input returns empty slice
func Split(input string) ([]string, error) {
	if input == "" {
		return []string{}, nil
	}

	var args []string
	var word strings.Builder
	var inSingle, inDouble bool
	var quoted bool // a closed quote pair forms a word even when empty

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '\\' && !inSingle {
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if inDouble {
				// In double quotes only shell-special characters are escapable
				switch next {
				case '"', '\\', '$', '`':
					word.WriteRune(next)
				default:
					word.WriteRune('\\')
					word.WriteRune(next)
				}
			} else {
				word.WriteRune(next)
			}
			continue
		}

		if ch == '\'' && !inDouble {
			if inSingle {
				quoted = true
			}
			inSingle = !inSingle
			continue
		}

		if ch == '"' && !inSingle {
			if inDouble {
				quoted = true
			}
			inDouble = !inDouble
			continue
		}

		if unicode.IsSpace(ch) && !inSingle && !inDouble {
			if word.Len() > 0 || quoted {
				args = append(args, word.String())
				word.Reset()
				quoted = false
			}
			continue
		}

		word.WriteRune(ch)
	}

	if inSingle || inDouble {
		kind := "single"
		if inDouble {
			kind = "double"
		}
		return nil, fmt.Errorf("%w: unclosed %s quote", ErrUnclosedQuote, kind)
	}

	if word.Len() > 0 || quoted {
		args = append(args, word.String())
	}

	return args, nil
}

// MustSplit is like Split but panics on error.
// This is useful for parsing static command strings that are known to be valid.
func MustSplit(input string) []string {
	args, err := Split(input)
	if err != nil {
		panic(fmt.Sprintf("shellparse.MustSplit: %v", err))
	}
	return args
}
