// Command plotminard draws Minard's chart with a low-level plotting
// library. By default it opens a window; with -show=false it writes a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/config"
	"berkotech.co/minard/internal/plotchart"
	"berkotech.co/minard/internal/window"
)

// screenDPI is used when the figure is only shown on screen.
const screenDPI = 96

func build(cfg config.Config) (*plotchart.Figure, error) {
	c, err := campaign.Load(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return plotchart.New(c, plotchart.Options{Trend: cfg.Trend})
}

func save(cfg config.Config, f *plotchart.Figure) (string, error) {
	path := cfg.Out(cfg.FigureFile)
	return path, f.Save(path, cfg.DPI)
}

func main() {
	log.SetPrefix("plotminard: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "read tables from `dir`")
	flag.StringVar(&cfg.OutDir, "o", cfg.OutDir, "write the figure to `dir` when not showing it")
	flag.IntVar(&cfg.DPI, "dpi", cfg.DPI, "output resolution in `dots` per inch")
	flag.BoolVar(&cfg.Show, "show", cfg.Show, "show the figure in a window instead of writing a file")
	flag.BoolVar(&cfg.Trend, "trend", cfg.Trend, "add a temperature trend line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	f, err := build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if !cfg.Show {
		path, err := save(cfg, f)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
		return
	}

	img, err := f.Image(screenDPI)
	if err != nil {
		log.Fatal(err)
	}
	if err := window.Show("Napoleon's March to Moscow", img); err != nil {
		log.Fatal(err)
	}
}
