package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tdewolff/argp"

	"penrose-tiles/renderers"
	"penrose-tiles/tiling"
)

// Tile counts roughly triple per generation; past this the output stops being
// a drawing and starts being a memory benchmark.
const maxGenerations = 14

type Generate struct {
	Pattern     string  `short:"p" default:"sun" desc:"Seed pattern: rhombus, sun or wheel"`
	Generations int     `short:"g" default:"5" desc:"Number of generations, i.e. times inflation is applied"`
	Scale       float64 `short:"s" default:"70" desc:"Scale factor determining the size of the image"`
	Rotation    float64 `short:"r" default:"0" desc:"Degrees (positive counterclockwise) by which the tiling is rotated"`
	Margin      float64 `default:"0" desc:"Output padding as a fraction of the scale"`
	Style       string  `short:"c" default:"" desc:"Style configuration file (yaml, toml or json)"`
	Output      string  `short:"o" default:"tiling.svg" desc:"Output file; the extension selects the encoder"`
	AllSteps    bool    `desc:"Also export every intermediate generation as <name>-NN.<ext>"`
	Verbose     bool    `short:"v" desc:"Debug logging"`
}

func main() {
	root := argp.NewCmd(&Generate{}, "P3 Penrose rhombus tilings by triangle substitution")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Generate) Run() error {
	if cmd.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if cmd.Generations < 0 || cmd.Generations > maxGenerations {
		return fmt.Errorf("generations must be between 0 and %d, got %d", maxGenerations, cmd.Generations)
	}

	cfg := tiling.DefaultConfig()
	if cmd.Style != "" {
		if err := loadStyle(cmd.Style, &cfg); err != nil {
			return err
		}
	}
	cfg.Margin = cmd.Margin
	cfg.Rotation = cmd.Rotation * math.Pi / 180

	if cmd.AllSteps {
		ext := filepath.Ext(cmd.Output)
		stem := strings.TrimSuffix(cmd.Output, ext)
		for g := 0; g <= cmd.Generations; g++ {
			name := fmt.Sprintf("%s-%02d%s", stem, g, ext)
			if err := cmd.export(cfg, g, name); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd.export(cfg, cmd.Generations, cmd.Output)
}

// export builds a fresh tiling from the seed pattern and writes it out.  Run
// mutates tiles in place, so each export starts from new seeds.
func (cmd *Generate) export(cfg tiling.Config, generations int, filename string) error {
	seeds, err := seedTiles(cmd.Pattern, cmd.Scale)
	if err != nil {
		return err
	}
	cv, err := tiling.NewCanvas(cmd.Scale, cfg, seeds...)
	if err != nil {
		return err
	}
	if err := cv.Run(generations); err != nil {
		return err
	}
	proj, err := cv.Project()
	if err != nil {
		return err
	}
	if err := renderers.Write(filename, proj); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":        filename,
		"generations": generations,
		"tiles":       len(proj.Records),
	}).Info("tiling written")
	return nil
}

func seedTiles(pattern string, scale float64) ([]tiling.Tile, error) {
	switch strings.ToLower(pattern) {
	case "rhombus":
		return tiling.SeedRhombus(scale)
	case "sun":
		return tiling.SeedSun(scale)
	case "wheel":
		return tiling.SeedWheel(scale)
	}
	return nil, fmt.Errorf("unknown seed pattern %q", pattern)
}

// style is the file-side view of tiling.Config.
type style struct {
	StrokeColor      string  `mapstructure:"stroke-color"`
	StrokeWidth      float64 `mapstructure:"stroke-width"`
	Reflect          bool    `mapstructure:"reflect"`
	LargeTileColor   string  `mapstructure:"large-tile-color"`
	SmallTileColor   string  `mapstructure:"small-tile-color"`
	LargeTileOpacity float64 `mapstructure:"large-tile-opacity"`
	SmallTileOpacity float64 `mapstructure:"small-tile-opacity"`
	EqualityTol      float64 `mapstructure:"equality-tolerance"`
	DrawArcs         bool    `mapstructure:"draw-arcs"`
	RhombusArcs      bool    `mapstructure:"rhombus-arcs"`
}

func loadStyle(path string, cfg *tiling.Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("stroke-color", cfg.StrokeColor)
	v.SetDefault("stroke-width", cfg.StrokeWidth)
	v.SetDefault("reflect", cfg.Reflect)
	v.SetDefault("large-tile-color", cfg.LargeTileColor)
	v.SetDefault("small-tile-color", cfg.SmallTileColor)
	v.SetDefault("large-tile-opacity", cfg.LargeTileOpacity)
	v.SetDefault("small-tile-opacity", cfg.SmallTileOpacity)
	v.SetDefault("equality-tolerance", cfg.EqualityTol)
	v.SetDefault("draw-arcs", cfg.DrawArcs)
	v.SetDefault("rhombus-arcs", cfg.RhombusArcs)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading style %s: %w", path, err)
	}
	var s style
	if err := v.Unmarshal(&s); err != nil {
		return fmt.Errorf("parsing style %s: %w", path, err)
	}
	cfg.StrokeColor = s.StrokeColor
	cfg.StrokeWidth = s.StrokeWidth
	cfg.Reflect = s.Reflect
	cfg.LargeTileColor = s.LargeTileColor
	cfg.SmallTileColor = s.SmallTileColor
	cfg.LargeTileOpacity = s.LargeTileOpacity
	cfg.SmallTileOpacity = s.SmallTileOpacity
	cfg.EqualityTol = s.EqualityTol
	cfg.DrawArcs = s.DrawArcs
	cfg.RhombusArcs = s.RhombusArcs
	return nil
}
