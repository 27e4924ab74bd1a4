// Package media renders placeholder creatives for generated content. The
// mock generator only fabricates media URLs; this package makes those URLs
// resolve to something the dashboard can actually display.
package media

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cardWidth  = 1200
	cardHeight = 630
)

// brandColors picks the card background per platform.
var brandColors = map[string]color.RGBA{
	"youtube":   {R: 0xCC, G: 0x18, B: 0x18, A: 0xFF},
	"tiktok":    {R: 0x12, G: 0x12, B: 0x12, A: 0xFF},
	"instagram": {R: 0xC1, G: 0x35, B: 0x84, A: 0xFF},
	"facebook":  {R: 0x18, G: 0x77, B: 0xF2, A: 0xFF},
	"twitter":   {R: 0x1D, G: 0xA1, B: 0xF2, A: 0xFF},
	"linkedin":  {R: 0x0A, G: 0x66, B: 0xC2, A: 0xFF},
}

var fallbackColor = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xFF}

// Render writes a PNG card for the platform with the title overlaid.
func Render(w io.Writer, platform, title string) error {
	bg, ok := brandColors[platform]
	if !ok {
		bg = fallbackColor
	}

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(fnt)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.White)

	c.SetFontSize(52)
	y := 240
	for _, line := range wrapTitle(title, 34) {
		if _, err := c.DrawString(line, freetype.Pt(80, y)); err != nil {
			return err
		}
		y += 68
	}

	c.SetFontSize(26)
	if _, err := c.DrawString("amarktai.com · "+platform, freetype.Pt(80, cardHeight-60)); err != nil {
		return err
	}

	return png.Encode(w, img)
}

// wrapTitle breaks the title into lines of at most max characters without
// splitting words.
func wrapTitle(s string, max int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{"Untitled"}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > max {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
