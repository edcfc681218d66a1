// Command ggminard draws Minard's route map and temperature chart as two
// SVG files using a grammar-of-graphics plotting library.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/config"
	"berkotech.co/minard/internal/ggchart"
)

func run(cfg config.Config) error {
	c, err := campaign.Load(cfg.DataDir)
	if err != nil {
		return err
	}

	route := cfg.Out(cfg.RouteFile)
	if err := ggchart.Save(route, ggchart.Route(c), ggchart.RouteSize, cfg.DPI); err != nil {
		return err
	}
	log.Printf("wrote %s", route)

	temps := cfg.Out(cfg.TempFile)
	if err := ggchart.Save(temps, ggchart.Temperature(c), ggchart.TemperatureSize, cfg.DPI); err != nil {
		return err
	}
	log.Printf("wrote %s", temps)
	return nil
}

func main() {
	log.SetPrefix("ggminard: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "read tables from `dir`")
	flag.StringVar(&cfg.OutDir, "o", cfg.OutDir, "write charts to `dir`")
	flag.IntVar(&cfg.DPI, "dpi", cfg.DPI, "output resolution in `dots` per inch")
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

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
