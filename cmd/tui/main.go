package main

import (
	"fmt"
	"os"

	"github.com/domino14/krabbels/config"
	"github.com/domino14/krabbels/tui"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "could not load config:", err)
		os.Exit(1)
	}

	app := tui.NewTUIApp(cfg)
	defer app.Cleanup()
	if err := app.Run(); err != nil {
		fmt.Printf("Could not start program :(\n%v\n", err)
		os.Exit(1)
	}
}
