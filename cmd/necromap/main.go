// Command necromap generates a cave level, prints its summary and label
// overlay, and optionally writes the labels to a file or archives the map.
//
//	necromap -height 24 -width 48 -seed 2019 -out labels.txt -db maps.db
//	necromap -db maps.db -load <map-id>
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/necromap/cavemap"
	"github.com/katalvlaran/necromap/store"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("necromap: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("necromap", flag.ContinueOnError)
	height := fs.Int("height", 24, "map height in cells")
	width := fs.Int("width", 48, "map width in cells")
	seed := fs.Int64("seed", 0, "random seed (default: time-seeded)")
	workers := fs.Int("workers", 1, "goroutines used for neighbour counting")
	out := fs.String("out", "", "write the label overlay to this file")
	dbPath := fs.String("db", "", "archive the map in this SQLite database")
	name := fs.String("name", "", "name recorded with the archived map")
	load := fs.String("load", "", "load the archived map with this ID instead of generating (requires -db)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	seedSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if *workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", *workers)
	}
	if *load != "" && *dbPath == "" {
		return fmt.Errorf("-load requires -db")
	}

	var st *store.Store
	if *dbPath != "" {
		var err error
		if st, err = store.Open(*dbPath); err != nil {
			return err
		}
		defer st.Close()
	}

	var m *cavemap.Map
	if *load != "" {
		loaded, rec, err := st.Load(ctx, *load)
		if err != nil {
			return err
		}
		log.Printf("loaded map %s (%q)", rec.ID, rec.Name)
		m = loaded
	} else {
		opts := []cavemap.Option{cavemap.WithWorkers(*workers)}
		if seedSet {
			opts = append(opts, cavemap.WithSeed(*seed))
		}
		generated, err := cavemap.Generate(*height, *width, opts...)
		if err != nil {
			return err
		}
		m = generated
	}

	if err := report(stdout, m); err != nil {
		return err
	}

	if *out != "" {
		if err := writeLabels(*out, m); err != nil {
			return err
		}
		log.Printf("wrote labels to %s", *out)
	}
	if st != nil && *load == "" {
		rec, err := st.Save(ctx, *name, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved as %s\n", rec.ID)
	}
	return nil
}

func report(w io.Writer, m *cavemap.Map) error {
	s := m.Stats()
	if _, err := fmt.Fprintf(w, "making a map: %s\n", m); err != nil {
		return err
	}
	fmt.Fprintf(w, "regions: %d (largest %d, mean %.1f)\n", s.Regions, s.Largest, s.MeanRegion)
	fmt.Fprintln(w)
	return m.WriteLabels(w)
}

func writeLabels(path string, m *cavemap.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := m.WriteLabels(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
