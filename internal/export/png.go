// Package export renders computed results as shareable PNG images
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/shopspring/decimal"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	BrandName = "Future Value Calculator"
	BrandURL  = "www.future-value-calculator.com"
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorText       = color.RGBA{17, 24, 39, 255}
	colorMuted      = color.RGBA{107, 114, 128, 255}
	colorBrand      = color.RGBA{79, 70, 229, 255}   // #4F46E5
	colorRule       = color.RGBA{229, 231, 235, 255} // #E5E7EB
	colorCard       = color.RGBA{238, 242, 255, 255}
	colorBar        = color.RGBA{99, 102, 241, 255}
)

var face = basicfont.Face7x13

const (
	padding    = 32
	lineHeight = 18
	chartH     = 180
)

// PNGExporter draws result cards. The zero value uses an 800px wide canvas and USD.
type PNGExporter struct {
	Width    int
	Currency string
}

// NewPNGExporter returns an exporter formatting money in currency
func NewPNGExporter(currency string) *PNGExporter {
	return &PNGExporter{Width: 800, Currency: currency}
}

func (e *PNGExporter) width() int {
	if e.Width <= 0 {
		return 800
	}
	return e.Width
}

func (e *PNGExporter) currency() string {
	if e.Currency == "" {
		return output.DefaultCurrency
	}
	return e.Currency
}

// Export writes a PNG with the headline values of r, a bar chart of its trajectory and the branding footer
func (e *PNGExporter) Export(w io.Writer, title string, r domain.Result) error {
	if r == nil {
		return fmt.Errorf("no result to export")
	}
	metrics := output.Headlines(r)
	warnings := output.Warnings(r, e.currency())
	bars := balances(r)

	cardRows := (len(metrics) + 1) / 2
	height := padding + 3*lineHeight + 12 + cardRows*56 + len(warnings)*lineHeight + padding + footerHeight()
	if len(bars) > 0 {
		height += chartH + 2*lineHeight
	}

	img := canvas(e.width(), height)
	y := padding
	drawScaled(img, title, padding, y, 2, colorText)
	y += 2 * lineHeight
	drawString(img, r.Kind().Title(), padding, y+12, colorMuted)
	y += lineHeight + 12

	cardW := (e.width() - 2*padding - 16) / 2
	for i, m := range metrics {
		x := padding + (i%2)*(cardW+16)
		top := y + (i/2)*56
		fill(img, image.Rect(x, top, x+cardW, top+48), colorCard)
		drawString(img, m.Label, x+12, top+18, colorMuted)
		drawScaled(img, m.Format(e.currency()), x+12, top+22, 2, colorText)
	}
	y += cardRows * 56

	for _, warn := range warnings {
		drawString(img, "! "+warn, padding, y+12, colorBrand)
		y += lineHeight
	}

	if len(bars) > 0 {
		y += lineHeight
		drawBars(img, image.Rect(padding, y, e.width()-padding, y+chartH), bars, e.currency())
	}

	drawFooter(img, height-footerHeight())
	return png.Encode(w, img)
}

// ExportSaved writes a PNG listing saved calculations with their first headline value
func (e *PNGExporter) ExportSaved(w io.Writer, calcs []output.Calculation) error {
	rowH := 48
	height := padding + 2*lineHeight + len(calcs)*(rowH+8) + padding + footerHeight()
	img := canvas(e.width(), height)

	drawScaled(img, "Saved Calculations", padding, padding, 2, colorText)
	y := padding + 2*lineHeight
	for _, c := range calcs {
		fill(img, image.Rect(padding, y, e.width()-padding, y+rowH), colorCard)
		drawString(img, c.Title(), padding+12, y+20, colorText)
		if c.Result != nil {
			drawString(img, c.Result.Kind().Title(), padding+12, y+38, colorMuted)
			if ms := output.Headlines(c.Result); len(ms) > 0 {
				v := ms[0].Label + ": " + ms[0].Format(e.currency())
				drawString(img, v, e.width()-padding-12-textWidth(v), y+28, colorBrand)
			}
		}
		y += rowH + 8
	}

	drawFooter(img, height-footerHeight())
	return png.Encode(w, img)
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is the download name for an exported image: the lower-cased title with
// whitespace runs replaced by dashes, then the ISO date
func FileName(title string, date time.Time) string {
	slug := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	slug = strings.NewReplacer("/", "-", `\`, "-").Replace(slug)
	if slug == "" {
		slug = "calculation"
	}
	return fmt.Sprintf("%s-%s.png", slug, date.Format("2006-01-02"))
}

// balances returns the per-year balance series of a result's trajectory
func balances(r domain.Result) []decimal.Decimal {
	table := output.TrajectoryTable(r)
	if table == nil {
		return nil
	}
	col := -1
	for i, c := range table.Columns {
		if c.Unit == output.UnitMoney {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}
	out := make([]decimal.Decimal, len(table.Rows))
	for i, row := range table.Rows {
		out[i] = row[col]
	}
	return out
}

func canvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), colorBackground)
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(img, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawString draws s with its baseline at y
func drawString(img *image.RGBA, s string, x, y int, c color.Color) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

// drawScaled draws s scale times larger with its top-left corner at (x, y)
func drawScaled(img *image.RGBA, s string, x, y, scale int, c color.Color) {
	m := face.Metrics()
	w, h := textWidth(s), m.Height.Ceil()
	if w == 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: tmp, Src: image.NewUniform(c), Face: face, Dot: fixed.P(0, m.Ascent.Ceil())}
	d.DrawString(s)
	xdraw.NearestNeighbor.Scale(img, image.Rect(x, y, x+w*scale, y+h*scale), tmp, tmp.Bounds(), xdraw.Over, nil)
}

func drawBars(img *image.RGBA, area image.Rectangle, values []decimal.Decimal, currency string) {
	peak := decimal.Zero
	for _, v := range values {
		peak = decimal.Max(peak, v)
	}
	fill(img, image.Rect(area.Min.X, area.Max.Y-1, area.Max.X, area.Max.Y), colorRule)
	if !peak.IsPositive() {
		return
	}

	slot := area.Dx() / len(values)
	gap := slot / 5
	for i, v := range values {
		if !v.IsPositive() {
			continue
		}
		h := int(v.Div(peak).Mul(decimal.NewFromInt(int64(area.Dy() - lineHeight))).IntPart())
		x := area.Min.X + i*slot
		fill(img, image.Rect(x+gap/2, area.Max.Y-1-h, x+slot-gap/2, area.Max.Y-1), colorBar)
	}
	drawString(img, "Peak "+output.FormatCurrency(peak, currency), area.Min.X, area.Min.Y+12, colorMuted)
}

func footerHeight() int { return 2*lineHeight + 24 }

func drawFooter(img *image.RGBA, top int) {
	b := img.Bounds()
	fill(img, image.Rect(padding, top, b.Dx()-padding, top+1), colorRule)
	center := func(s string) int { return (b.Dx() - textWidth(s)) / 2 }
	drawString(img, BrandName, center(BrandName), top+lineHeight, colorBrand)
	drawString(img, BrandURL, center(BrandURL), top+2*lineHeight, colorBrand)
}
