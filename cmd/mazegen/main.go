package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mad-maze/internal/app"
	"mad-maze/internal/core"
	"mad-maze/internal/pipeline"
	"mad-maze/internal/render"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "print registered strategies and exit")
	params := flag.Bool("params", false, "print the resolved strategy parameters")
	quiet := flag.Bool("q", false, "omit the cell map")
	flag.Parse()

	if *list {
		for _, name := range core.StrategyNames() {
			fmt.Println(name)
		}
		return
	}

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	res, err := pipeline.Generate(opts)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	for _, a := range res.Advisories {
		log.Printf("advisory: %s", a)
	}

	fmt.Printf("# %s %dx%d seed=%d regions=%d walls=%d\n",
		res.Strategy.Name(), opts.Width, opts.Height, res.Seed, res.Regions, len(res.Walls))
	if *params {
		for _, g := range res.Params.Groups {
			fmt.Printf("# [%s]\n", g.Name)
			for _, p := range g.Params {
				fmt.Printf("#   %s=%s\n", p.Key, p.Value)
			}
		}
	}
	if !*quiet {
		if err := render.ASCII(os.Stdout, opts.Width, res.Cells); err != nil {
			log.Fatalf("write: %v", err)
		}
	}
	if err := render.WallList(os.Stdout, res.Walls); err != nil {
		log.Fatalf("write: %v", err)
	}
}
