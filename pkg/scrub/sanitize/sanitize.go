// Package sanitize cleans cell text copied from rich-text fields.
//
// A cell containing markup is replaced by the text content of that markup,
// with character references decoded. Every cell is then brought into
// Unicode NFKD form, which maps compatibility characters such as
// non-breaking spaces and ligatures onto their plain decompositions.
package sanitize

import (
	"strings"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Cleaner transforms a single cell value.
type Cleaner interface {
	// Clean returns the cleaned value of a cell.
	Clean(cell string) string
}

// HTMLCleaner strips markup and applies NFKD normalization.
type HTMLCleaner struct{}

// Clean implements Cleaner.
func (HTMLCleaner) Clean(cell string) string {
	return Cell(cell)
}

// Default is the cleaner used by the pipeline.
var Default Cleaner = HTMLCleaner{}

// Cell sanitizes one cell value. Applying Cell to its own output is a no-op
// unless the markup wraps escaped markup: "<b>&lt;i&gt;x&lt;/i&gt;</b>"
// yields "<i>x</i>", which a second pass reduces to "x".
func Cell(s string) string {
	if text, ok := StripMarkup(s); ok {
		s = text
	}
	return norm.NFKD.String(s)
}

// StripMarkup returns the text content of s and true when s contains at
// least one HTML tag. Without tags it returns s unchanged and false.
// Comments and doctypes are dropped from the text.
func StripMarkup(s string) (string, bool) {
	if !strings.Contains(s, "<") {
		return s, false
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	hasTag := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce
			if !hasTag {
				return s, false
			}
			return b.String(), true
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			hasTag = true
		}
	}
}

// Table sanitizes every data cell of t in place using c.
// Header cells are left as they are.
func Table(t *models.Table, c Cleaner) {
	if c == nil {
		c = Default
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if cell == "" {
				continue
			}
			row[i] = c.Clean(cell)
		}
	}
}
