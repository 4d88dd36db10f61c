// Package article turns a case study written in markdown into the blocks the
// case screen draws.
package article

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

type Kind int

const (
	Paragraph Kind = iota
	Heading
	Subheading
	Media
)

type Block struct {
	Kind   Kind
	Text   string
	Aspect float64 // width / height, media only
}

type Article struct {
	Title     string
	Blocks    []Block
	Footnotes []string
}

// Insert places a media block after every paragraph containing After.
type Insert struct {
	After  string
	Label  string
	Aspect float64
}

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New()
	})
	return parserInstance
}

// Parse reads the article structure out of markdown source:
//   - a paragraph that is entirely bold is the title the first time, a
//     heading afterwards
//   - a paragraph opening with a bold run followed by text is a subheading
//     and a paragraph
//   - a paragraph or bullet starting with "*" is a footnote
//   - anything else is a paragraph with soft breaks folded into spaces
func Parse(src []byte) Article {
	doc := parser().Parser().Parse(text.NewReader(src))

	var a Article
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			a.addHeading(plain(node, src))
		case *ast.Paragraph:
			a.addParagraph(node, src)
		case *ast.List:
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				s := plain(item, src)
				if s == "" {
					continue
				}
				if node.Marker == '*' {
					a.Footnotes = append(a.Footnotes, s)
				} else {
					a.Blocks = append(a.Blocks, Block{Kind: Paragraph, Text: s})
				}
			}
		case *ast.ThematicBreak:
		default:
			if s := plain(node, src); s != "" {
				a.Blocks = append(a.Blocks, Block{Kind: Paragraph, Text: s})
			}
		}
	}
	return a
}

func (a *Article) addHeading(s string) {
	if s == "" {
		return
	}
	if a.Title == "" {
		a.Title = s
		return
	}
	a.Blocks = append(a.Blocks, Block{Kind: Heading, Text: s})
}

func (a *Article) addParagraph(p *ast.Paragraph, src []byte) {
	// Judged on the source: goldmark turns "*note*" into emphasis.
	if starred(p, src) {
		note := strings.TrimSpace(strings.TrimPrefix(plain(p, src), "*"))
		if note != "" {
			a.Footnotes = append(a.Footnotes, note)
		}
		return
	}

	if strong := boldOnly(p, src); strong != nil {
		a.addHeading(plain(strong, src))
		return
	}

	if lead, ok := p.FirstChild().(*ast.Emphasis); ok && lead.Level == 2 {
		var rest strings.Builder
		for n := lead.NextSibling(); n != nil; n = n.NextSibling() {
			writeInline(&rest, n, src)
		}
		if body := collapse(rest.String()); body != "" {
			a.Blocks = append(a.Blocks,
				Block{Kind: Subheading, Text: plain(lead, src)},
				Block{Kind: Paragraph, Text: body},
			)
			return
		}
	}

	if s := plain(p, src); s != "" {
		a.Blocks = append(a.Blocks, Block{Kind: Paragraph, Text: s})
	}
}

// WithMedia returns a copy of a with each insert placed after every
// paragraph that contains its anchor phrase.
func (a Article) WithMedia(inserts []Insert) Article {
	out := Article{Title: a.Title, Footnotes: a.Footnotes}
	for _, b := range a.Blocks {
		out.Blocks = append(out.Blocks, b)
		if b.Kind != Paragraph {
			continue
		}
		for _, ins := range inserts {
			if ins.After == "" || !strings.Contains(b.Text, ins.After) {
				continue
			}
			out.Blocks = append(out.Blocks, Block{Kind: Media, Text: ins.Label, Aspect: ins.Aspect})
		}
	}
	return out
}

// Load reads and parses the article at path.
func Load(path string, inserts []Insert) (Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Article{}, fmt.Errorf("read article: %w", err)
	}
	return Parse(data).WithMedia(inserts), nil
}

// ParseAspect parses "w:h" or "w/h", plus the "video" (16:9) and "square"
// shorthands.
func ParseAspect(s string) (float64, error) {
	switch s = strings.TrimSpace(s); s {
	case "", "video":
		return 16.0 / 9.0, nil
	case "square":
		return 1, nil
	}
	w, h, ok := strings.Cut(s, ":")
	if !ok {
		w, h, ok = strings.Cut(s, "/")
	}
	if !ok {
		return 0, fmt.Errorf("invalid aspect %q", s)
	}
	fw, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect %q: %w", s, err)
	}
	fh, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect %q: %w", s, err)
	}
	if fw <= 0 || fh <= 0 {
		return 0, fmt.Errorf("invalid aspect %q", s)
	}
	return fw / fh, nil
}

// starred reports whether the paragraph's source opens with a single "*"
// (optionally escaped), the footnote marker.
func starred(p *ast.Paragraph, src []byte) bool {
	lines := p.Lines()
	if lines.Len() == 0 {
		return false
	}
	seg := lines.At(0)
	first := strings.TrimLeft(string(seg.Value(src)), " \t")
	first = strings.TrimPrefix(first, `\`)
	return strings.HasPrefix(first, "*") && !strings.HasPrefix(first, "**")
}

// boldOnly returns the strong emphasis when it is the paragraph's only
// non-blank content.
func boldOnly(p *ast.Paragraph, src []byte) *ast.Emphasis {
	var strong *ast.Emphasis
	for n := p.FirstChild(); n != nil; n = n.NextSibling() {
		if e, ok := n.(*ast.Emphasis); ok && e.Level == 2 && strong == nil {
			strong = e
			continue
		}
		var b strings.Builder
		writeInline(&b, n, src)
		if strings.TrimSpace(b.String()) != "" {
			return nil
		}
	}
	return strong
}

func plain(n ast.Node, src []byte) string {
	var b strings.Builder
	writeInline(&b, n, src)
	return collapse(b.String())
}

func writeInline(b *strings.Builder, n ast.Node, src []byte) {
	switch node := n.(type) {
	case *ast.Text:
		b.Write(util.UnescapePunctuations(node.Segment.Value(src)))
		if node.SoftLineBreak() || node.HardLineBreak() {
			b.WriteByte(' ')
		}
		return
	case *ast.String:
		b.Write(node.Value)
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(b, c, src)
		if c.Type() == ast.TypeBlock && c.NextSibling() != nil {
			b.WriteByte(' ')
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
