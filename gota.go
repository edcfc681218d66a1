// Command minard summarises the campaign tables: it prints each table with
// its descriptive statistics, survivor figures per direction and the
// temperature trend, and saves a histogram of survivor counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"berkotech.co/minard/internal/campaign"
	"berkotech.co/minard/internal/config"
	"berkotech.co/minard/internal/trend"
)

const histogramFile = "survivors_histogram.png"

// columnValues returns the named column of df as histogram input.
func columnValues(df dataframe.DataFrame, name string) (plotter.Values, error) {
	s := df.Col(name)
	if s.Err != nil {
		return nil, s.Err
	}
	return plotter.Values(s.Float()), nil
}

func SaveHistogram(v plotter.Values, title, path string, bins int) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "Survivors"
	p.Y.Label.Text = "Positions"
	h, err := plotter.NewHist(v, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 4*vg.Inch, path)
}

func summarise(w io.Writer, c *campaign.Campaign) {
	c.Describe(w)

	df, _ := c.Frame(campaign.TroopsFile)
	s := df.Col("survivors")
	fmt.Fprintln(w, "Minimum", s.Min())
	fmt.Fprintln(w, "Maximum", s.Max())
	fmt.Fprintln(w, "Mean", s.Mean())
	fmt.Fprintln(w, "Median", s.Quantile(0.5))

	for _, d := range []campaign.Direction{campaign.Advance, campaign.Retreat} {
		for _, g := range c.Troops.Groups() {
			v := c.Troops.Filter(d, g).Survivors()
			if len(v) == 0 {
				continue
			}
			mean, sd := stat.MeanStdDev(v, nil)
			fmt.Fprintf(w, "%v group %d: n=%d mean=%.0f sd=%.0f start=%.0f end=%.0f\n",
				d, g, len(v), mean, sd, v[0], v[len(v)-1])
		}
	}

	if fit, err := trend.Fit(c.Temperatures); err != nil {
		fmt.Fprintln(w, "Temperature trend:", err)
	} else {
		fmt.Fprintf(w, "Temperature trend: %.2f °C per degree of longitude (R² %.2f)\n", fit.Slope, fit.R2)
	}
}

func main() {
	log.SetPrefix("minard: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	var (
		flagData = flag.String("data", cfg.DataDir, "read tables from `dir`")
		flagOut  = flag.String("o", cfg.OutDir, "write the histogram to `dir`")
		flagBins = flag.Int("bins", 10, "histogram `bins`")
	)
	flag.Parse()
	cfg.DataDir, cfg.OutDir = *flagData, *flagOut
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	c, err := campaign.Load(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	summarise(os.Stdout, c)

	df, _ := c.Frame(campaign.TroopsFile)
	v, err := columnValues(df, "survivors")
	if err != nil {
		log.Fatal(err)
	}
	path := cfg.Out(histogramFile)
	if err := SaveHistogram(v, "Survivors Histogram", path, *flagBins); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)
}
