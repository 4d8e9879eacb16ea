package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"menusurface/internal/config"
	"menusurface/internal/eventbus"
	"menusurface/internal/tui"
)

// localConfigName is a project-local config checked before the user-level one
const localConfigName = ".menusurface.toml"

func main() {
	// Parse command line arguments
	var configPath string
	var quickOpen bool
	var rtl bool
	var corner string
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.BoolVar(&quickOpen, "quick", false, "Open without animation")
	flag.BoolVar(&rtl, "rtl", false, "Right-to-left layout")
	flag.StringVar(&corner, "corner", "", "Anchor corner (top_start, top_end, bottom_start, bottom_end)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("menusurface.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath == "" {
		if _, statErr := os.Stat(localConfigName); statErr == nil {
			configPath = localConfigName
		}
	}
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	if quickOpen {
		cfg.Surface.QuickOpen = true
	}
	if rtl {
		cfg.Surface.RTL = true
	}
	if corner != "" {
		cfg.Surface.AnchorCorner = corner
	}

	// Log placement outcomes for debugging
	bus.Subscribe(eventbus.EventPositionApplied, func(e eventbus.Event) {
		if event, ok := e.(eventbus.PositionAppliedEvent); ok {
			log.Printf("position applied: origin=%q top=%q bottom=%q left=%q right=%q maxHeight=%q",
				event.Origin, event.Top, event.Bottom, event.Left, event.Right, event.MaxHeight)
		}
	})

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel, err := tui.NewModel(bus, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Save config on exit when enabled
	if cfg.UISettings.AutosaveOnExit && configPath == "" {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
}
