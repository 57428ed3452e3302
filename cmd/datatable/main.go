package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/Shravanidhuri/scalable-project/internal/app"
	"github.com/Shravanidhuri/scalable-project/internal/config"
	"github.com/Shravanidhuri/scalable-project/internal/debug"
	"github.com/Shravanidhuri/scalable-project/internal/stories"
)

func main() {
	storyName := flag.String("story", "", "story to show first ("+strings.Join(stories.Names(), ", ")+")")
	dataPath := flag.String("data", "", "read user rows from a TOML fixture file")
	writeData := flag.String("write-data", "", "write the built-in users as a fixture file and exit")
	debugMode := flag.Bool("debug", false, "write a debug log")
	initConfig := flag.Bool("init-config", false, "write the default config file and exit")
	flag.Parse()

	if *initConfig {
		path := config.ConfigPath()
		if err := config.CreateDefaultConfigFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	if *writeData != "" {
		if err := stories.SaveUsers(*writeData, stories.Users()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *writeData)
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Enable debug logging
	logPath := cfg.Debug.LogFile
	if *debugMode && logPath == "" {
		logPath = config.DefaultLogPath()
	}
	if logPath != "" {
		if err := debug.Enable(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	name := *storyName
	if name == "" {
		name = cfg.UI.DefaultStory
	}
	story, err := stories.Lookup(name)
	if errors.Is(err, stories.ErrUnknownStory) {
		// An invalid default_story was already reported by Validate
		if *storyName != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Available stories: %s\n", strings.Join(stories.Names(), ", "))
			os.Exit(1)
		}
		story, _ = stories.Lookup(stories.Names()[0])
	}

	// Create and run the application
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	model := app.New(cfg, story, *dataPath)
	p := tea.NewProgram(model, opts...)

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Print the final selection like a story's action log
	if m, ok := finalModel.(app.Model); ok && m.ShouldQuit() {
		if sel := m.Selected(); len(sel) > 0 {
			for _, u := range sel {
				fmt.Printf("%d\t%s\t%s\n", u.ID, u.Name, u.Email)
			}
		}
	}
}
