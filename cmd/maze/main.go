//go:build ebiten

package main

import (
	"flag"
	"log"

	"mad-maze/internal/app"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
