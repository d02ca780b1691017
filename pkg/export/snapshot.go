package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/vanderheijden86/folio/pkg/model"
)

var (
	colorBackdrop = color.RGBA{0x12, 0x12, 0x18, 0xff}
	colorHeaderBG = color.RGBA{0x1c, 0x1c, 0x26, 0xff}
	colorCardBG   = color.RGBA{0x22, 0x22, 0x30, 0xff}
	colorStroke   = color.RGBA{0x3a, 0x3a, 0x4c, 0xff}
	colorText     = color.RGBA{0xee, 0xee, 0xf4, 0xff}
	colorSubtle   = color.RGBA{0x9a, 0x9a, 0xb0, 0xff}
	colorAccent   = color.RGBA{0xbd, 0x93, 0xf9, 0xff}
)

// WriteAuto dispatches on the output extension: .svg or .png.
func WriteAuto(p *model.Portfolio, opts Options) error {
	switch strings.ToLower(filepath.Ext(opts.Path)) {
	case ".svg":
		return WriteSVG(p, opts)
	case ".png":
		return WritePNG(p, opts)
	default:
		return fmt.Errorf("unsupported export format %q (want .svg or .png)", filepath.Ext(opts.Path))
	}
}

// WriteSVG renders the card grid snapshot as an SVG file.
func WriteSVG(p *model.Portfolio, opts Options) error {
	file, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	defer file.Close()
	return renderSVG(file, buildLayout(p, opts))
}

func renderSVG(w io.Writer, layout layoutResult) error {
	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Rect(0, 0, layout.Width, headerH, fmt.Sprintf("fill:%s", css(colorHeaderBG)))

	canvas.Text(marginX, 32, layout.Title,
		fmt.Sprintf("fill:%s;font-size:20px;font-family:monospace;font-weight:bold", css(colorText)))
	if layout.Subtitle != "" {
		canvas.Text(marginX, 54, layout.Subtitle,
			fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(colorSubtle)))
	}

	for _, lc := range layout.Cards {
		canvas.Roundrect(lc.X, lc.Y, cardW, cardH, 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1.2", css(colorCardBG), css(colorStroke)))
		canvas.Text(lc.X+12, lc.Y+24, truncate(lc.Card.Title, 30),
			fmt.Sprintf("fill:%s;font-size:14px;font-family:monospace;font-weight:bold", css(colorText)))
		canvas.Text(lc.X+12, lc.Y+44, lc.Card.CategoryOrDefault(),
			fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", css(colorAccent)))
		if lc.Card.Summary != "" {
			canvas.Text(lc.X+12, lc.Y+62, truncate(lc.Card.Summary, 36),
				fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", css(colorSubtle)))
		}
		canvas.Text(lc.X+12, lc.Y+84, badgeLine(lc),
			fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", css(colorSubtle)))
	}

	canvas.Text(marginX, layout.Height-24, summaryLine(layout),
		fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", css(colorSubtle)))

	canvas.End()
	return nil
}

// WritePNG renders the same layout rasterized.
func WritePNG(p *model.Portfolio, opts Options) error {
	layout := buildLayout(p, opts)

	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetColor(colorHeaderBG)
	dc.DrawRectangle(0, 0, float64(layout.Width), headerH)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(colorText)
	dc.DrawStringAnchored(layout.Title, marginX, 32, 0, 0.5)
	if layout.Subtitle != "" {
		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(layout.Subtitle, marginX, 52, 0, 0.5)
	}

	for _, lc := range layout.Cards {
		x, y := float64(lc.X), float64(lc.Y)

		dc.SetColor(colorCardBG)
		dc.DrawRoundedRectangle(x, y, cardW, cardH, 8)
		dc.Fill()
		dc.SetColor(colorStroke)
		dc.SetLineWidth(1.2)
		dc.DrawRoundedRectangle(x, y, cardW, cardH, 8)
		dc.Stroke()

		dc.SetColor(colorText)
		dc.DrawStringAnchored(truncate(lc.Card.Title, 30), x+12, y+20, 0, 0.5)
		dc.SetColor(colorAccent)
		dc.DrawStringAnchored(lc.Card.CategoryOrDefault(), x+12, y+40, 0, 0.5)
		dc.SetColor(colorSubtle)
		if lc.Card.Summary != "" {
			dc.DrawStringAnchored(truncate(lc.Card.Summary, 36), x+12, y+58, 0, 0.5)
		}
		dc.DrawStringAnchored(badgeLine(lc), x+12, y+80, 0, 0.5)
	}

	dc.SetColor(colorSubtle)
	dc.DrawStringAnchored(summaryLine(layout), marginX, float64(layout.Height)-24, 0, 0.5)

	return dc.SavePNG(opts.Path)
}

// badgeLine renders the recognized tool labels as text, with an overflow
// marker matching the grid's first-badge-plus-count rule at full width.
func badgeLine(lc layoutCard) string {
	if len(lc.Badges) == 0 {
		return ""
	}
	parts := make([]string, 0, len(lc.Badges)+1)
	for _, d := range lc.Badges {
		parts = append(parts, d.Short)
	}
	if lc.More > 0 {
		parts = append(parts, fmt.Sprintf("+%d", lc.More))
	}
	return strings.Join(parts, " · ")
}

func summaryLine(layout layoutResult) string {
	s := layout.Summary
	if s.Cards == 0 {
		return "no projects"
	}
	return fmt.Sprintf("%d projects · %d categories · %.1f tools/card · %d distinct tools",
		s.Cards, len(s.Categories), s.ToolsMean, s.DistinctTools)
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
