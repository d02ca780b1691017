package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/folio/internal/datasource"
	"github.com/vanderheijden86/folio/pkg/config"
	"github.com/vanderheijden86/folio/pkg/deeplink"
	"github.com/vanderheijden86/folio/pkg/export"
	"github.com/vanderheijden86/folio/pkg/model"
	"github.com/vanderheijden86/folio/pkg/stats"
	"github.com/vanderheijden86/folio/pkg/ui"
	"github.com/vanderheijden86/folio/pkg/version"
	"github.com/vanderheijden86/folio/pkg/watcher"
)

func main() {
	dataPath := flag.String("data", "", "Path to the portfolio data file (yaml/json/sqlite)")
	portfolioName := flag.String("portfolio", "", "Named portfolio from the config file")
	project := flag.String("project", "", "Open this project's modal on startup")
	link := flag.String("link", "", "Startup deep link, e.g. 'project=alpha'")
	exportPath := flag.String("export", "", "Write a snapshot (.svg/.png) and exit")
	exportCategory := flag.String("export-category", "", "Limit the snapshot to one category")
	exportWizard := flag.Bool("export-wizard", false, "Interactive snapshot export and exit")
	themeFlag := flag.String("theme", "", "Theme override: dark or light")
	statsFlag := flag.Bool("stats", false, "Print portfolio statistics and exit")
	noWatch := flag.Bool("no-watch", false, "Disable live reload on data file changes")
	cpuProfile := flag.String("cpu-profile", "", "Write CPU profile to file")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *help {
		fmt.Println("Usage: folio [options]")
		fmt.Println("\nA terminal portfolio viewer with deep-linkable project modals.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("folio %s\n", version.Version)
		os.Exit(0)
	}

	appCfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue with defaults
		appCfg = config.DefaultConfig()
	}
	if *themeFlag != "" {
		appCfg.UI.Theme = *themeFlag
	}

	path, err := resolveDataPath(*dataPath, *portfolioName, appCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	portfolio, err := datasource.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}

	if *statsFlag {
		printStats(portfolio)
		os.Exit(0)
	}

	if *exportWizard {
		out, err := export.NewWizard(portfolio).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", out)
		os.Exit(0)
	}

	if *exportPath != "" {
		opts := export.Options{
			Path:     *exportPath,
			Title:    portfolio.Title,
			Category: *exportCategory,
		}
		if err := export.WriteAuto(portfolio, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *exportPath)
		os.Exit(0)
	}

	m := ui.NewModel(portfolio, path).WithConfig(appCfg)

	if loc, ok := startupLocation(*project, *link); ok {
		m = m.WithLink(loc)
	}

	if !*noWatch {
		w, err := watcher.New(path)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: live reload disabled: %v\n", err)
		} else {
			m = m.WithWatcher(w)
		}
	}
	defer m.Stop()

	if err := runTUIProgram(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error running folio: %v\n", err)
		os.Exit(1)
	}
}

// resolveDataPath picks the data file: --data wins, then a named portfolio
// from the config, then the config's default path, then discovery in the
// working directory.
func resolveDataPath(flagPath, name string, cfg config.Config) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if name != "" {
		p := cfg.FindPortfolio(name)
		if p == nil {
			return "", fmt.Errorf("no portfolio named %q in %s", name, config.ConfigPath())
		}
		return p.ResolvedPath(), nil
	}
	if cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	src, err := datasource.Discover(cwd)
	if err != nil {
		return "", fmt.Errorf("no portfolio data found in %s (use --data)", cwd)
	}
	return src.Path, nil
}

// startupLocation builds the initial deep link. --project is shorthand for
// --link 'project=<id>'; --link takes a full query string and wins when both
// are given.
func startupLocation(project, link string) (deeplink.Location, bool) {
	if link != "" {
		return deeplink.ParseLocation(link), true
	}
	if project != "" {
		return deeplink.Location{}.WithProject(project), true
	}
	return deeplink.Location{}, false
}

func printStats(p *model.Portfolio) {
	s := stats.Summarize(p.Cards)
	cats := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		cats = append(cats, fmt.Sprintf("%s (%d)", c.Category, c.Count))
	}
	fmt.Printf("cards:           %d\n", s.Cards)
	fmt.Printf("categories:      %s\n", strings.Join(cats, ", "))
	fmt.Printf("distinct tools:  %d\n", s.DistinctTools)
	fmt.Printf("tools per card:  %.1f ± %.1f\n", s.ToolsMean, s.ToolsStdDev)
	fmt.Printf("recognized:      %.0f%%\n", s.RecognizedPct*100)
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set FOLIO_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("FOLIO_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
