package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/vanderheijden86/folio/pkg/model"
)

// Wizard drives the interactive export flow behind `folio --export-wizard`.
type Wizard struct {
	portfolio *model.Portfolio
	opts      Options
}

// NewWizard creates an export wizard for the given portfolio.
func NewWizard(p *model.Portfolio) *Wizard {
	return &Wizard{portfolio: p}
}

// isTerminal checks if stdin is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection.
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// Run collects export options interactively and writes the snapshot.
// It returns the resolved output path.
func (w *Wizard) Run() (string, error) {
	format := "svg"
	out := "portfolio.svg"
	category := ""

	categories := append([]string{""}, sortedCategories(w.portfolio)...)
	catOptions := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		label := c
		if c == "" {
			label = "all categories"
		}
		catOptions = append(catOptions, huh.NewOption(label, c))
	}

	form := newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Export format").
				Options(
					huh.NewOption("SVG (vector, small)", "svg"),
					huh.NewOption("PNG (raster)", "png"),
				).
				Value(&format),
			huh.NewSelect[string]().
				Title("Categories to include").
				Options(catOptions...).
				Value(&category),
			huh.NewInput().
				Title("Output path").
				Value(&out).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output path is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	// Keep the extension in sync with the chosen format.
	if ext := filepath.Ext(out); ext != "."+format {
		out = out[:len(out)-len(ext)] + "." + format
	}

	w.opts = Options{Path: out, Category: category}
	if err := WriteAuto(w.portfolio, w.opts); err != nil {
		return "", err
	}
	return out, nil
}

func sortedCategories(p *model.Portfolio) []string {
	cats := p.Categories()
	sort.Strings(cats)
	return cats
}
