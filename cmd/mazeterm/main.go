package main

import (
	"flag"
	"log"

	"mad-maze/internal/app"
	"mad-maze/internal/termview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}

	v, err := termview.New(screen, opts)
	if err != nil {
		screen.Fini()
		log.Fatalf("generate: %v", err)
	}
	err = v.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
