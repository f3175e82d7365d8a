// mirafetch prints a snapshot of host machine facts beside a distribution
// logo.
//
// Usage:
//
//	mirafetch [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/mirafetch/config.toml)
//	-theme string   Color theme name (overrides config)
//	-load-theme string  Path to a TOML theme file to load before rendering
//	-logo string    Distribution id for the ASCII logo (overrides probed id)
//	-no-color       Disable colored output
//	-json           Emit the snapshot as JSON instead of the fetch layout
//	-list-themes    Print available theme names and exit
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/casually-blue/mirafetch/pkg/config"
	"github.com/casually-blue/mirafetch/pkg/display"
	"github.com/casually-blue/mirafetch/pkg/sysinfo"
	"github.com/casually-blue/mirafetch/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Color theme name")
		themeFile   = flag.String("load-theme", "", "Path to a TOML theme file")
		logoID      = flag.String("logo", "", "Distribution id for the ASCII logo")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
		jsonOut     = flag.Bool("json", false, "Emit the snapshot as JSON")
		listThemes  = flag.Bool("list-themes", false, "Print available theme names and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("mirafetch %s (%s)\n", version, commit)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.General.LogLevel, *verbose)

	if *themeFile != "" {
		if err := theme.LoadFile(*themeFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
			os.Exit(1)
		}
	}
	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		return
	}

	// Flag overrides on top of config and environment.
	if *themeName != "" {
		cfg.Display.Theme = *themeName
	}
	if *logoID != "" {
		cfg.Display.Logo = *logoID
	}
	if *noColor {
		cfg.Display.Color = "never"
	}

	prober, err := sysinfo.New()
	if err != nil {
		// The base platform-identity query is the one unrecoverable
		// failure; nothing can be probed without it.
		fmt.Fprintf(os.Stderr, "failed to query platform identity: %v\n", err)
		os.Exit(1)
	}

	fields := display.Snapshot(prober, cfg.Display)
	slog.Debug("snapshot collected", "fields", len(fields))

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(fields); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode snapshot: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logo := cfg.Display.Logo
	if logo == "" {
		logo = prober.ID()
	}
	r := display.Renderer{
		Theme:   theme.Get(cfg.Display.Theme),
		NoColor: !display.ColorEnabled(cfg.Display.Color),
	}
	fmt.Print(r.Render(display.Logo(logo), prober.Username(), prober.Hostname(), fields))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func setupLogging(level string, verbose bool) {
	l := slog.LevelWarn
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	}
	if verbose {
		l = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
