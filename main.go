package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/weapon-stats/internal/app"
	"github.com/atomicstack/weapon-stats/internal/config"
	"github.com/atomicstack/weapon-stats/internal/logging"
	"github.com/atomicstack/weapon-stats/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := collectTTYDetails()
	applyTerminalSize(&runtimeCfg.App, tty)

	session, err := app.Prepare(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events.App.Start(startupTracePayload(runtimeCfg, session, tty))

	if err := app.Run(runtimeCfg.App, session); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyTerminalSize seeds the first frame with the probed terminal size.
func applyTerminalSize(cfg *app.Config, tty ttyDetails) {
	if tty.Detected == nil {
		return
	}
	cfg.TerminalWidth = tty.Detected.Width
	cfg.TerminalHeight = tty.Detected.Height
}

// startupTracePayload records what the browser starts on and why.
func startupTracePayload(cfg config.Config, session app.Session, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	browse := map[string]interface{}{
		"dataSource":        session.Source,
		"requestedCategory": cfg.App.Category,
		"category":          session.Category,
		"requestedLocale":   cfg.App.Locale,
		"locale":            session.Locale.String(),
	}
	if session.Dataset != nil {
		browse["categories"] = len(session.Dataset.Categories())
		browse["weapons"] = session.Dataset.Count()
		browse["categoryWeapons"] = len(session.Dataset.Weapons(session.Category))
	}
	if session.Dictionary != nil {
		browse["dictionaryEntries"] = session.Dictionary.Len()
	}

	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"session": browse,
		"tty":     tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
