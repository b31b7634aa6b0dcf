package countries

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/joefazee/atlas/models"
)

// SummaryArtifactKey is the single overwritable slot the rendered snapshot
// lives under. One artifact per deployment, regenerated on every
// successful refresh.
const SummaryArtifactKey = "countries:summary"

// SummarySnapshot is what the renderer sees: repository state at the
// moment of generation.
type SummarySnapshot struct {
	TotalCountries int64
	RefreshedAt    time.Time
	TopByGDP       []models.Country
}

// SummaryRenderer renders a snapshot into artifact bytes.
type SummaryRenderer interface {
	Render(snapshot SummarySnapshot) ([]byte, error)
}

const (
	summaryWidth  = 800
	summaryHeight = 400
	summaryLine   = 24
)

// pngRenderer draws a fixed-size PNG summary. Rendering stays deliberately
// plain: a missing fancy font must never fail a refresh, so the face is
// the compiled-in basicfont.
type pngRenderer struct {
	face font.Face
}

// NewPNGRenderer returns the production renderer.
func NewPNGRenderer() SummaryRenderer {
	return &pngRenderer{face: basicfont.Face7x13}
}

func (p *pngRenderer) Render(snapshot SummarySnapshot) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, summaryWidth, summaryHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := 30
	p.drawText(img, 20, y, "Countries Summary")
	y += summaryLine + 12
	p.drawText(img, 20, y, fmt.Sprintf("Total countries: %d", snapshot.TotalCountries))
	y += summaryLine
	p.drawText(img, 20, y, fmt.Sprintf("Last refreshed at: %s", snapshot.RefreshedAt.UTC().Format(time.RFC3339)))
	y += summaryLine + 12
	p.drawText(img, 20, y, "Top countries by estimated GDP:")
	y += summaryLine

	for i, country := range snapshot.TopByGDP {
		gdp := "N/A"
		if country.EstimatedGDP != nil {
			gdp = formatAmount(*country.EstimatedGDP)
		}
		p.drawText(img, 40, y, fmt.Sprintf("%d. %s - %s", i+1, country.Name, gdp))
		y += summaryLine
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode summary image: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *pngRenderer) drawText(img *image.RGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: p.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// formatAmount renders a float with thousands separators and two decimals,
// e.g. 1234567.891 -> "1,234,567.89".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + "." + fracPart
}
