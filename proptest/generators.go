package proptest

import (
	"cdinv/internal/inventory"
	"fmt"
	"strings"

	"pgregory.net/rapid"
)

var (
	iterDirGen   = rapid.StringMatching(`[a-z]{8}`)
	textGen      = rapid.StringMatching(`[\p{L}\p{N} '&.,!()-]{0,30}`)
	extensionGen = rapid.SampledFrom([]string{".dat", ".bin", ".yaml", ".yml", ".db", ".sqlite"})
)

func idGen() *rapid.Generator[int] {
	return rapid.IntRange(-50, 50)
}

func recordGen() *rapid.Generator[inventory.Record] {
	return rapid.Custom(func(t *rapid.T) inventory.Record {
		return inventory.NewRecord(
			idGen().Draw(t, "id"),
			textGen.Draw(t, "title"),
			textGen.Draw(t, "artist"),
		)
	})
}

func recordsGen(minLen, maxLen int) *rapid.Generator[[]inventory.Record] {
	return rapid.SliceOfN(recordGen(), minLen, maxLen)
}

// idTextGen yields the decimal form of an integer, optionally signed,
// grouped with underscores, written in another decimal script and padded
// with whitespace the way users type it.
func idTextGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		id := idGen().Draw(t, "id")
		text := fmt.Sprint(id)
		if rapid.Bool().Draw(t, "grouped") {
			text = groupDigits(text)
		}
		if rapid.Bool().Draw(t, "otherScript") {
			zero := rapid.SampledFrom([]rune{'٠', '۰', '०', '０'}).Draw(t, "zero")
			text = shiftDigits(text, zero)
		}
		if id >= 0 && rapid.Bool().Draw(t, "plus") {
			text = "+" + text
		}
		pad := rapid.SampledFrom([]string{"", " ", "\t", "  "})
		return pad.Draw(t, "lead") + text + pad.Draw(t, "trail")
	})
}

// groupDigits puts an underscore between every pair of adjacent digits.
func groupDigits(text string) string {
	var b strings.Builder
	for i, r := range text {
		if i > 0 && r >= '0' && r <= '9' && text[i-1] >= '0' && text[i-1] <= '9' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func shiftDigits(text string, zero rune) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return zero + (r - '0')
		}
		return r
	}, text)
}

func invalidIDTextGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("   "),
		rapid.Just("abc"),
		rapid.Just("1.5"),
		rapid.Just("1__000"),
		rapid.Just("_1"),
		rapid.Just("1_"),
		rapid.Just("0x10"),
		rapid.Just("1 2"),
		rapid.Just("--1"),
		rapid.StringMatching(`[a-zA-Z]{1,5}[0-9]{0,3}`),
		rapid.StringMatching(`[0-9]{1,3}[a-zA-Z.]{1,3}`),
	)
}

func malformedBinaryGen() *rapid.Generator[[]byte] {
	return rapid.OneOf(
		rapid.Just([]byte("CDIV")),
		rapid.Just([]byte("CDIV\x01\x00\x00\x00\x01")),
		rapid.Just([]byte("CDIV\x02\x00\x00\x00\x00")),
		rapid.Just([]byte("CDIV\x01\xff\xff\xff\xff")),
		rapid.Just([]byte("XXXX\x01\x00\x00\x00\x00")),
		rapid.Custom(func(t *rapid.T) []byte {
			prefix := []byte("CDIV\x01")
			tail := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "tail")
			return append(prefix, tail...)
		}),
		rapid.SliceOfN(rapid.Byte(), 1, 128),
	)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("key: [unclosed"),
		rapid.Just("version: 2\nrecords: []\n"),
		rapid.Just("version: 1\nrecords:\n  - id: one\n"),
		rapid.Just("version: 1\nrecords: {id: 1}\n"),
		rapid.Just("records:\n  - id: [1, 2]\n"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
	)
}
