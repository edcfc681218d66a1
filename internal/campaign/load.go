package campaign

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// File names expected in a data directory.
const (
	CitiesFile       = "cities.txt"
	TemperaturesFile = "temps.txt"
	TroopsFile       = "troops.txt"
)

var (
	ErrEmpty         = errors.New("empty table")
	ErrMissingColumn = errors.New("missing column")
	ErrBadValue      = errors.New("bad value")
)

// ReadTable reads a whitespace separated table. The first non-blank line
// is the header. Blank lines and lines starting with '#' are skipped.
func ReadTable(r io.Reader) (dataframe.DataFrame, error) {
	var (
		records [][]string
		lineno  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(records) > 0 && len(fields) != len(records[0]) {
			return dataframe.DataFrame{}, fmt.Errorf("line %d: %w: have %d fields, header has %d",
				lineno, ErrBadValue, len(fields), len(records[0]))
		}
		records = append(records, fields)
	}
	if err := sc.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}
	if len(records) < 2 {
		return dataframe.DataFrame{}, ErrEmpty
	}

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	return df, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func floatCol(df dataframe.DataFrame, name string) ([]float64, error) {
	if !hasColumn(df, name) {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	v := df.Col(name).Float()
	for i, x := range v {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("row %d: %w in column %q: %q",
				i+1, ErrBadValue, name, df.Col(name).Elem(i).String())
		}
	}
	return v, nil
}

func intCol(df dataframe.DataFrame, name string) ([]int, error) {
	v, err := floatCol(df, name)
	if err != nil {
		return nil, err
	}
	ret := make([]int, len(v))
	for i, x := range v {
		if x != math.Trunc(x) {
			return nil, fmt.Errorf("row %d: %w in column %q: %g is not a whole number",
				i+1, ErrBadValue, name, x)
		}
		ret[i] = int(x)
	}
	return ret, nil
}

func stringCol(df dataframe.DataFrame, name string) ([]string, error) {
	if !hasColumn(df, name) {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	return df.Col(name).Records(), nil
}

func readCities(df dataframe.DataFrame) ([]City, error) {
	longs, err := floatCol(df, "long")
	if err != nil {
		return nil, err
	}
	lats, err := floatCol(df, "lat")
	if err != nil {
		return nil, err
	}
	names, err := stringCol(df, "city")
	if err != nil {
		return nil, err
	}
	cities := make([]City, len(names))
	for i := range cities {
		cities[i] = City{Name: names[i], Long: longs[i], Lat: lats[i]}
	}
	return cities, nil
}

func readTemperatures(df dataframe.DataFrame) ([]Reading, error) {
	longs, err := floatCol(df, "long")
	if err != nil {
		return nil, err
	}
	temps, err := floatCol(df, "temp")
	if err != nil {
		return nil, err
	}
	dates, err := stringCol(df, "date")
	if err != nil {
		return nil, err
	}
	readings := make([]Reading, len(dates))
	for i := range readings {
		readings[i] = Reading{Date: dates[i], Long: longs[i], Celsius: temps[i]}
	}
	return readings, nil
}

func readTroops(df dataframe.DataFrame) (Troops, error) {
	longs, err := floatCol(df, "long")
	if err != nil {
		return nil, err
	}
	lats, err := floatCol(df, "lat")
	if err != nil {
		return nil, err
	}
	survivors, err := intCol(df, "survivors")
	if err != nil {
		return nil, err
	}
	groups, err := intCol(df, "group")
	if err != nil {
		return nil, err
	}
	dirs, err := stringCol(df, "direction")
	if err != nil {
		return nil, err
	}
	var segments []int
	if hasColumn(df, "segment") {
		if segments, err = intCol(df, "segment"); err != nil {
			return nil, err
		}
	}

	troops := make(Troops, len(longs))
	for i := range troops {
		d, err := ParseDirection(dirs[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if survivors[i] < 0 {
			return nil, fmt.Errorf("row %d: %w: negative survivors %d", i+1, ErrBadValue, survivors[i])
		}
		troops[i] = Position{
			Long:      longs[i],
			Lat:       lats[i],
			Survivors: survivors[i],
			Direction: d,
			Group:     groups[i],
		}
	}
	if segments != nil {
		for i := range troops {
			troops[i].Segment = segments[i]
		}
	} else {
		assignSegments(troops)
	}
	return troops, nil
}

// assignSegments numbers runs of consecutive positions sharing a group and
// direction, starting at 1.
func assignSegments(t Troops) {
	seg := 0
	for i := range t {
		if i == 0 || t[i].Group != t[i-1].Group || t[i].Direction != t[i-1].Direction {
			seg++
		}
		t[i].Segment = seg
	}
}

// LoadCities reads a table with long, lat and city columns.
func LoadCities(r io.Reader) ([]City, error) {
	df, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return readCities(df)
}

// LoadTemperatures reads a table with long, temp and date columns.
func LoadTemperatures(r io.Reader) ([]Reading, error) {
	df, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return readTemperatures(df)
}

// LoadTroops reads a table with long, lat, survivors, direction and group
// columns, and an optional segment column.
func LoadTroops(r io.Reader) (Troops, error) {
	df, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return readTroops(df)
}

func loadFrame(dir, name string) (dataframe.DataFrame, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()
	df, err := ReadTable(f)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %w", name, err)
	}
	return df, nil
}

// Load reads cities.txt, temps.txt and troops.txt from dir.
func Load(dir string) (*Campaign, error) {
	var (
		c   Campaign
		err error
	)
	if c.cities, err = loadFrame(dir, CitiesFile); err != nil {
		return nil, err
	}
	if c.temps, err = loadFrame(dir, TemperaturesFile); err != nil {
		return nil, err
	}
	if c.troops, err = loadFrame(dir, TroopsFile); err != nil {
		return nil, err
	}

	if c.Cities, err = readCities(c.cities); err != nil {
		return nil, fmt.Errorf("%s: %w", CitiesFile, err)
	}
	if c.Temperatures, err = readTemperatures(c.temps); err != nil {
		return nil, fmt.Errorf("%s: %w", TemperaturesFile, err)
	}
	if c.Troops, err = readTroops(c.troops); err != nil {
		return nil, fmt.Errorf("%s: %w", TroopsFile, err)
	}
	return &c, nil
}
