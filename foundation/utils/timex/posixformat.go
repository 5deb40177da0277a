// File: posixformat.go
// Title: POSIX Format Translation
// Description: Translates POSIX strftime format strings into datefmt letter
//              layouts and into a shape string that shows the width of each
//              field, from which a fixed output length is derived.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package timex

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	"github.com/msto63/isotime/foundation/utils/datefmt"
)

// variableWidth marks a field whose rendered width depends on the value
const variableWidth = "*"

// specifier is the translation of one POSIX conversion
type specifier struct {
	layout string // datefmt letters
	shape  string // one character per output character, or variableWidth
}

// specifiers maps the character after '%' to its translation
var specifiers = map[rune]specifier{
	// year
	'G': {"o", "GGGG"},
	'Y': {"Y", "YYYY"},
	'y': {"y", "yy"},

	// month
	'B': {"F", variableWidth},
	'b': {"M", "bbb"},
	'h': {"M", "hhh"},
	'm': {"m", "mm"},

	// week
	'V': {"W", "VV"},

	// day
	'A': {"l", variableWidth},
	'a': {"D", "aaa"},
	'd': {"d", "dd"},
	'u': {"N", "u"},
	'w': {"w", "w"},

	// hour
	'H': {"H", "HH"},
	'I': {"h", "II"},
	'p': {"A", "pp"},
	'P': {"a", "PP"},

	// minute
	'M': {"i", "MM"},

	// second
	'S': {"s", "SS"},
	's': {"U", variableWidth},

	// timezone
	'z': {"O", "zzzzz"},
	'Z': {"T", variableWidth},

	// composites
	'D': {"m/d/y", "mm/dd/yy"},
	'F': {"Y-m-d", "YYYY-MM-DD"},
	'r': {"h:i:s A", "II:MM:SS pp"},
	'R': {"H:i", "HH:MM"},
	'T': {"H:i:s", "HH:MM:SS"},

	// characters
	'n': {"\n", "n"},
	't': {"\t", "t"},
}

// Renderer renders a datefmt layout, typically for one point in time
type Renderer interface {
	Render(layout string) string
}

// PosixFormat is a POSIX format string together with its datefmt layout
// and shape.
type PosixFormat struct {
	posix  string
	layout string
	shape  string
	length int
	fixed  bool
}

// NewPosixFormat translates a POSIX format string. "%%" stands for a
// literal percent sign; any other conversion missing from the table fails
// with an unsupported error naming it.
func NewPosixFormat(posix string) (*PosixFormat, error) {
	var layout, shape strings.Builder

	runes := []rune(posix)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '%' {
			writeLiteral(&layout, r)
			shape.WriteRune(r)
			continue
		}

		if i+1 == len(runes) {
			return nil, unsupportedSpecifier("%")
		}
		i++

		c := runes[i]
		if c == '%' {
			layout.WriteByte('%')
			shape.WriteByte('%')
			continue
		}

		spec, ok := specifiers[c]
		if !ok {
			return nil, unsupportedSpecifier("%" + string(c))
		}
		layout.WriteString(spec.layout)
		shape.WriteString(spec.shape)
	}

	f := &PosixFormat{
		posix:  posix,
		layout: layout.String(),
		shape:  shape.String(),
	}
	if !strings.Contains(f.shape, variableWidth) {
		f.length = utf8.RuneCountInString(f.shape)
		f.fixed = true
	}

	return f, nil
}

// MustPosixFormat is like NewPosixFormat but panics on error
func MustPosixFormat(posix string) *PosixFormat {
	f, err := NewPosixFormat(posix)
	if err != nil {
		panic(err)
	}
	return f
}

func unsupportedSpecifier(spec string) *coreerror.Error {
	return coreerror.NewUnsupported("Posix format specifier " + spec).
		WithOperation("NewPosixFormat")
}

// writeLiteral copies r into a datefmt layout so that it renders as itself
func writeLiteral(b *strings.Builder, r rune) {
	if r == '\\' || (r < utf8.RuneSelf && isASCIILetter(byte(r))) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Posix returns the format string as given
func (f *PosixFormat) Posix() string {
	return f.posix
}

// Layout returns the datefmt layout
func (f *PosixFormat) Layout() string {
	return f.layout
}

// Shape returns the shape string, e.g. "dd/mm/YYYY" for "%d/%m/%Y"
func (f *PosixFormat) Shape() string {
	return f.shape
}

// Length returns the number of characters every rendering has. ok is false
// when the shape contains a variable width field.
func (f *PosixFormat) Length() (n int, ok bool) {
	return f.length, f.fixed
}

// ApplyTo renders the layout with r
func (f *PosixFormat) ApplyTo(r Renderer) string {
	return r.Render(f.layout)
}

// Format renders t
func (f *PosixFormat) Format(t time.Time) string {
	return f.ApplyTo(datefmt.Time(t))
}

// GoLayout returns the equivalent time package layout. ok is false when the
// format uses a conversion the reference layout cannot express, such as
// the ISO week number.
func (f *PosixFormat) GoLayout() (layout string, ok bool) {
	layout, err := strftime.Layout(f.posix)
	if err != nil {
		return "", false
	}
	return layout, true
}

// String returns the POSIX format string
func (f *PosixFormat) String() string {
	return f.posix
}
