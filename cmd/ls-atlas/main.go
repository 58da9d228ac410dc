// Command ls-atlas is a terminal viewer for solar-system bodies with
// procedurally synthesized surface textures.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/logging"
	"github.com/litescript/ls-atlas/internal/state"
	"github.com/litescript/ls-atlas/internal/texture"
	"github.com/litescript/ls-atlas/internal/ui"
	"github.com/litescript/ls-atlas/internal/version"
)

// CLI flags for headless mode
var (
	listMode    bool
	bodyName    string
	outPath     string
	showVersion bool
)

func main() {
	apiURL := flag.String("api-url", catalog.DefaultAPIURL, "Body catalog endpoint")
	timeout := flag.Duration("timeout", catalog.DefaultTimeout, "HTTP request timeout")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&listMode, "list", false, "Print catalog summary instead of TUI")
	flag.StringVar(&bodyName, "body", "", "Synthesize texture for a named body (requires -out)")
	flag.StringVar(&outPath, "out", "", "PNG output path for -body (use - for stdout)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	previewSize := flag.Int("size", 0, "Max texture preview width in cells (0 = fit terminal)")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-atlas " + version.Version)
		return
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize components
	client := catalog.NewClient(
		catalog.WithBaseURL(*apiURL),
		catalog.WithTimeout(*timeout),
		catalog.WithLogger(logger.Named("catalog")),
	)
	synth := texture.NewSynthesizer(texture.WithLogger(logger.Named("texture")))
	stateMgr := state.NewManager()

	// Headless modes: no TUI
	if listMode || bodyName != "" {
		runHeadless(ctx, client, synth, logger)
		return
	}

	// Create TUI model
	model := ui.New(stateMgr, synth, *previewSize)

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Fetch the catalog in the background; the list is static, one fetch
	// per session is enough.
	go func() {
		start := time.Now()
		bodies := client.FetchBodies(ctx)
		stateMgr.SetCatalog(bodies, time.Since(start))
		logger.Debug("catalog fetched: %d bodies in %v", len(bodies), time.Since(start))
		p.Send(ui.CatalogMsg{Snapshot: stateMgr.Snapshot()})
	}()

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles -list and -body without starting the TUI.
func runHeadless(ctx context.Context, client *catalog.Client, synth *texture.Synthesizer, logger *logging.Logger) {
	start := time.Now()
	bodies := client.FetchBodies(ctx)
	logger.Debug("catalog fetched: %d bodies in %v", len(bodies), time.Since(start))

	if listMode {
		catalog.WriteSummaryTable(os.Stdout, bodies, start)
		if bodyName == "" {
			return
		}
	}

	body, ok := catalog.FindBody(bodies, bodyName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: body %q not found in catalog\n", bodyName)
		os.Exit(1)
	}

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -body requires -out")
		os.Exit(1)
	}

	img, err := synth.Synthesize(body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if outPath == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: refusing to write PNG to a terminal; redirect or use a file path")
			os.Exit(1)
		}
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := png.Encode(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode PNG: %v\n", err)
		os.Exit(1)
	}
}
