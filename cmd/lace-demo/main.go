package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomworks/lace/internal/config"
	"github.com/loomworks/lace/internal/ui"
)

func main() {
	if os.Getenv("LACE_DEBUG") != "" {
		f, err := tea.LogToFile("lace-debug.log", "lace")
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg := config.Default()
	if err := cfg.LoadFile(config.Path()); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
