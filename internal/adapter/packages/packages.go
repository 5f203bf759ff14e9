package packages

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_tracker/internal/app/tracker"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

var (
	ErrInvalidFile = errors.New("invalid packages file")
)

type file struct {
	Packages []tracker.Package `yaml:"packages"`
}

// Default returns the readings processed when no packages file is given.
func Default() []tracker.Package {
	return []tracker.Package{
		// strokes, hours, weight, pool length, laps
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		// steps, hours, weight
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		// steps, hours, weight, height
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

func Load(path string) ([]tracker.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open packages file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) ([]tracker.Package, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidFileErr("document is empty")
		}
		return nil, invalidFileErr("%w", err)
	}

	if len(doc.Packages) == 0 {
		return nil, invalidFileErr("no packages")
	}

	for i, pkg := range doc.Packages {
		if pkg.Code == "" {
			return nil, invalidFileErr("package #%d: code is missing", i)
		}
	}

	return doc.Packages, nil
}

func invalidFileErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrInvalidFile)
}
