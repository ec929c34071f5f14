package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"mad-maze/internal/core"
	"mad-maze/internal/pipeline"
)

type paramSet struct {
	straight float64
	turn     float64
	branch   float64
	contact  bool
}

func (p paramSet) String() string {
	return fmt.Sprintf("straight=%.2f turn=%.2f branch=%.2f contact=%t", p.straight, p.turn, p.branch, p.contact)
}

func (p paramSet) params(seeds int) map[string]string {
	return map[string]string{
		"seeds":    strconv.Itoa(seeds),
		"straight": strconv.FormatFloat(p.straight, 'f', -1, 64),
		"turn":     strconv.FormatFloat(p.turn, 'f', -1, 64),
		"branch":   strconv.FormatFloat(p.branch, 'f', -1, 64),
		"contact":  strconv.FormatBool(p.contact),
	}
}

type job struct {
	params paramSet
	seed   int64
}

type scenarioResult struct {
	params  paramSet
	seed    int64
	carved  float64
	regions int
	walls   int
	err     error
}

func main() {
	width := flag.Int("width", 64, "grid width")
	height := flag.Int("height", 48, "grid height")
	seeds := flag.Int("seeds", 4, "walker seeds per grid")
	runs := flag.Int("runs", 8, "random seeds per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	straightOptions := []float64{0.6, 0.8, 0.95}
	turnOptions := []float64{0.1, 0.2, 0.35}
	branchOptions := []float64{0.02, 0.05, 0.1}

	var sets []paramSet
	for _, straight := range straightOptions {
		for _, turn := range turnOptions {
			for _, branch := range branchOptions {
				for _, contact := range []bool{false, true} {
					sets = append(sets, paramSet{straight: straight, turn: turn, branch: branch, contact: contact})
				}
			}
		}
	}

	log.Printf("sweeping %d parameter sets x %d seeds (%d workers)", len(sets), *runs, *workers)

	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(*width, *height, *seeds, j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for s := 0; s < *runs; s++ {
				jobs <- job{params: params, seed: int64(s + 1)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s seed=%d: %v", res.params, res.seed, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].params != all[j].params {
			return all[i].params.String() < all[j].params.String()
		}
		return all[i].seed < all[j].seed
	})

	fmt.Println("straight,turn,branch,contact,seed,carved,regions,walls")
	for _, r := range all {
		fmt.Printf("%.2f,%.2f,%.2f,%t,%d,%.4f,%d,%d\n",
			r.params.straight, r.params.turn, r.params.branch, r.params.contact, r.seed, r.carved, r.regions, r.walls)
	}
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))
}

func runScenario(width, height, seeds int, j job) scenarioResult {
	opts := pipeline.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.Seed = strconv.FormatInt(j.seed, 10)
	opts.Strategy = "walker"
	opts.Params = j.params.params(seeds)

	res, err := pipeline.Generate(opts)
	if err != nil {
		return scenarioResult{params: j.params, seed: j.seed, err: err}
	}

	interior := (width - 2) * (height - 2)
	carved := 0
	for _, v := range res.Cells {
		if v == core.Wall {
			carved++
		}
	}
	frac := 0.0
	if interior > 0 {
		frac = float64(carved) / float64(interior)
	}
	return scenarioResult{
		params:  j.params,
		seed:    j.seed,
		carved:  frac,
		regions: res.Regions,
		walls:   len(res.Walls),
	}
}
