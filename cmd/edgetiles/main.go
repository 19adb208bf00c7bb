// Command edgetiles computes the legal edge-tile catalogue, its shape
// groups and the adjacency table, and writes two text sheets:
//
//	tiles.txt           one row of tile blocks per shape group
//	adjacent_tiles.txt  one framed neighbourhood preview per tile
//
// Settings come from an optional YAML file (see internal/config):
//
//	edgetiles -config edgetiles.yaml
package main

import (
	"flag"
	"log"
	"path/filepath"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/katalvlaran/edgetile/adjacency"
	"github.com/katalvlaran/edgetile/classify"
	"github.com/katalvlaran/edgetile/internal/config"
	"github.com/katalvlaran/edgetile/render"
	"github.com/katalvlaran/edgetile/tile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("edgetiles: ")

	path := flag.String("config", config.DefaultFile, "path to the YAML settings file")
	flag.Parse()

	dir, name := filepath.Split(*path)
	if dir == "" {
		dir = "."
	}
	cfg, err := config.Load(osfs.New(dir), name)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, osfs.New(cfg.OutputDir)); err != nil {
		log.Fatal(err)
	}
}

// run computes every result and writes the sheets to out.
func run(cfg config.Config, out billy.Filesystem) error {
	legal := tile.Legal()
	log.Printf("legal tiles: %d", legal.Len())

	byPop := classify.ByPopulation(legal)
	for n, bucket := range byPop {
		if len(bucket) > 0 {
			log.Printf("population %d: %d tiles", n, len(bucket))
		}
	}

	groups := classify.ByRotation(legal, cfg.AllowOpposite)
	log.Printf("shape groups: %d (allow_opposite=%v)", len(groups), cfg.AllowOpposite)

	table := adjacency.Build(legal)
	log.Printf("adjacency pairs: %d", table.Pairs())

	r := render.New(render.WithSeed(cfg.Seed), render.WithGroupSpacing(cfg.GroupSpacing))
	err := render.WriteSheets(out,
		render.Sheet{Name: cfg.TilesFile, Body: r.Groups(groups)},
		render.Sheet{Name: cfg.AdjacencyFile, Body: r.Adjacency(table)},
	)
	if err != nil {
		return err
	}
	log.Printf("wrote %s and %s to %s", cfg.TilesFile, cfg.AdjacencyFile, out.Root())
	return nil
}
