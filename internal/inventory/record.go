package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidID = errors.New("CD ID must be an integer")

type Record struct {
	ID     int    `yaml:"id"`
	Title  string `yaml:"title"`
	Artist string `yaml:"artist"`
}

func NewRecord(id int, title, artist string) Record {
	return Record{ID: id, Title: title, Artist: artist}
}

func (r Record) String() string {
	return fmt.Sprintf("%d\t%s (by:%s)", r.ID, r.Title, r.Artist)
}

// ValidationError reports raw input that could not become a Record field.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, ErrInvalidID)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidID
}

// ParseID accepts an optionally signed base-10 integer with surrounding
// whitespace. Digits may come from any Unicode decimal script and may be
// grouped with single underscores, so "1_000" and "١٢" are valid.
func ParseID(text string) (int, error) {
	if digits, ok := normalizeDigits(strings.TrimSpace(text)); ok {
		if id, err := strconv.Atoi(digits); err == nil {
			return id, nil
		}
	}
	return 0, &ValidationError{Field: "id", Value: text}
}

// normalizeDigits rewrites decimal digits as ASCII and drops underscores
// that sit between two digits. Any other underscore fails.
func normalizeDigits(s string) (string, bool) {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == '_' {
			if i == 0 || i == len(runes)-1 || !unicode.IsDigit(runes[i-1]) || !unicode.IsDigit(runes[i+1]) {
				return "", false
			}
			continue
		}
		if d, ok := digitValue(r); ok {
			b.WriteByte('0' + d)
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// digitValue maps a Unicode decimal digit to its value. Every Nd range
// starts at a zero and runs in whole blocks of ten.
func digitValue(r rune) (byte, bool) {
	if r >= '0' && r <= '9' {
		return byte(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return byte((r - rune(rg.Lo)) % 10), true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if r >= rune(rg.Lo) && r <= rune(rg.Hi) {
			return byte((r - rune(rg.Lo)) % 10), true
		}
	}
	return 0, false
}
