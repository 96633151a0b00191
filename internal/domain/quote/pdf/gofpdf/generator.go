package gofpdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"

	"iq-home/quote_backend/internal/domain/quote"
)

const (
	fontFamily = "DejaVu"

	regularFont     = "DejaVuSans.ttf"
	boldFont        = "DejaVuSans-Bold.ttf"
	obliqueFont     = "DejaVuSans-Oblique.ttf"
	boldObliqueFont = "DejaVuSans-BoldOblique.ttf"
)

// fontFaces lists the styles the body writer can select. Oblique faces are
// optional: without them italic text is set in the upright face.
var fontFaces = []struct {
	style    string
	file     string
	fallback string
}{
	{"", regularFont, ""},
	{"B", boldFont, ""},
	{"I", obliqueFont, regularFont},
	{"BI", boldObliqueFont, boldFont},
}

// Generator renders the overview HTML with the gofpdf basic HTML tokenizer.
// With FontDir set, DejaVu TTF fonts from that directory are used; otherwise
// the core Helvetica font with a cp1252 translator.
type Generator struct {
	FontDir string
	Now     func() time.Time
}

func New(fontDir string) *Generator { return &Generator{FontDir: fontDir, Now: time.Now} }

func (g *Generator) Generate(doc quote.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", g.FontDir)
	family, tr := g.setupFonts(pdf)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("quote pdf: fonts: %w", err)
	}

	title := doc.Title
	if title == "" {
		title = "Quote"
	}
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(8)

	pdf.SetFont(family, "", 11)
	header := doc.CreatedAt.Format("02.01.2006")
	if doc.Number != "" {
		header = fmt.Sprintf("No. %s, %s", doc.Number, header)
	}
	pdf.Cell(0, 6, tr(header))
	pdf.Ln(6)

	if doc.CustomerName != "" {
		pdf.Cell(0, 6, tr("Customer: "+doc.CustomerName))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont(family, "", 10)
	writeBody(pdf, 5, doc.Body, tr)
	pdf.Ln(8)

	pdf.SetFont(family, "", 8)
	pdf.Cell(0, 5, tr("Generated: "+g.now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error().Err(err).Str("number", doc.Number).Msg("quote pdf: output failed")
		return nil, err
	}
	return buf.Bytes(), nil
}

// setupFonts registers the TTF faces by bare file name; gofpdf resolves them
// against the font location passed to gofpdf.New.
func (g *Generator) setupFonts(pdf *gofpdf.Fpdf) (string, func(string) string) {
	if g.FontDir == "" {
		return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	}
	for _, face := range fontFaces {
		file := face.file
		if face.fallback != "" {
			if _, err := os.Stat(filepath.Join(g.FontDir, file)); err != nil {
				file = face.fallback
			}
		}
		log.Debug().Str("dir", g.FontDir).Str("style", face.style).Str("file", file).Msg("quote pdf: load font")
		pdf.AddUTF8Font(fontFamily, face.style, file)
	}
	return fontFamily, func(s string) string { return s }
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// writeBody prints the body with the b, i, u and br tags honoured. Entities
// are decoded per text segment after tokenizing, so an encoded angle bracket
// is printed and never read as a tag.
func writeBody(pdf *gofpdf.Fpdf, lineHt float64, body string, tr func(string) string) {
	var bold, italic, underline int
	setStyle := func() {
		style := ""
		if bold > 0 {
			style += "B"
		}
		if italic > 0 {
			style += "I"
		}
		if underline > 0 {
			style += "U"
		}
		pdf.SetFont("", style, 0)
	}
	for _, seg := range gofpdf.HTMLBasicTokenize(normalizeHTML(body)) {
		switch seg.Cat {
		case 'T':
			pdf.Write(lineHt, tr(decodeEntities(seg.Str)))
		case 'O':
			switch seg.Str {
			case "b":
				bold++
			case "i":
				italic++
			case "u":
				underline++
			case "br":
				pdf.Ln(lineHt)
				continue
			default:
				continue
			}
			setStyle()
		case 'C':
			switch {
			case seg.Str == "b" && bold > 0:
				bold--
			case seg.Str == "i" && italic > 0:
				italic--
			case seg.Str == "u" && underline > 0:
				underline--
			default:
				continue
			}
			setStyle()
		}
	}
}

// The tokenizer only knows inline tags and <br>, so block level tags become
// line breaks. Other tags are passed through and ignored by writeBody.
var blockTags = strings.NewReplacer(
	"<br/>", "<br>",
	"<br />", "<br>",
	"</p>", "<br>",
	"</div>", "<br>",
	"</h1>", "<br>",
	"</h2>", "<br>",
	"</h3>", "<br>",
	"</tr>", "<br>",
	"</li>", "<br>",
	"<li>", "- ",
	"<strong>", "<b>",
	"</strong>", "</b>",
	"<em>", "<i>",
	"</em>", "</i>",
)

var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&euro;", "€",
	"&quot;", `"`,
	"&#39;", "'",
)

func normalizeHTML(s string) string {
	return strings.TrimSpace(blockTags.Replace(s))
}

func decodeEntities(s string) string {
	return entities.Replace(s)
}
