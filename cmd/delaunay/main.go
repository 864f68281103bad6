package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/pointfile"
	"github.com/osuushi/delaunay/mesh"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Demo of incremental triangulation. Points are either seeded at random inside
// a square region or read from a file (SVG circles, or "x y" lines), inserted
// one at a time, and the result is written as a PNG and/or an HTML chart.
// Heights for the chart come from fractal noise.
func main() {
	app := kingpin.New("delaunay", "Incremental Delaunay triangulation demo.")
	configPath := app.Flag("config", "YAML config file.").Short('c').String()
	points := app.Flag("points", "Number of random points.").Short('n').Int()
	seed := app.Flag("seed", "Random seed (0 uses the clock).").Int64()
	size := app.Flag("size", "Side length of the square region.").Float64()
	input := app.Flag("input", "Point file to triangulate instead of random points.").Short('i').String()
	png := app.Flag("png", "Write a PNG rendering here.").String()
	html := app.Flag("html", "Write an HTML chart here.").String()
	skipCorners := app.Flag("skip-corners", "Drop triangles that use the region corners.").Bool()
	verbose := app.Flag("verbose", "Log every insertion and flip.").Short('v').Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}
	// Flags override the file, but only when given
	overrideInt(&cfg.Points, *points)
	overrideInt64(&cfg.Seed, *seed)
	overrideFloat(&cfg.Size, *size)
	overrideString(&cfg.Input, *input)
	overrideString(&cfg.PNG, *png)
	overrideString(&cfg.HTML, *html)
	cfg.SkipCorners = cfg.SkipCorners || *skipCorners
	cfg.Verbose = cfg.Verbose || *verbose
	app.FatalIfError(cfg.Validate(), "invalid configuration")

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	sites, err := loadSites(cfg)
	if err != nil {
		return err
	}

	tr, err := advanced.New(len(sites)+4, advanced.WithLogger(logger.Named("triangulation")))
	if err != nil {
		return err
	}
	if err := tr.Setup(cfg.Size/2, cfg.Size/2, cfg.Size); err != nil {
		return err
	}

	start := time.Now()
	skipped := 0
	for _, site := range sites {
		if _, err := tr.Insert(site.X, site.Y); err != nil {
			// Out of region and duplicate points are expected from file input
			if errors.Is(err, advanced.ErrOutOfRegion) || errors.Is(err, advanced.ErrDuplicatePoint) {
				logger.Warn("skipping point", zap.Error(err))
				skipped++
				continue
			}
			return err
		}
	}
	logger.Info("triangulated",
		zap.Int("points", tr.NumPoints()),
		zap.Int("triangles", tr.NumTriangles()),
		zap.Int("skipped", skipped),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err := tr.Validate(); err != nil {
		logger.Error("triangulation is invalid", zap.Error(err))
	}

	var buildOpts []mesh.BuildOption
	if cfg.SkipCorners {
		buildOpts = append(buildOpts, mesh.SkipCorners())
	}
	m := mesh.Build(tr, cfg.Noise.Heights(), buildOpts...)

	if cfg.PNG != "" {
		if err := tr.Draw(cfg.Scale).SavePNG(cfg.PNG); err != nil {
			return errors.Wrap(err, "writing png")
		}
		logger.Info("wrote png", zap.String("path", cfg.PNG))
		if term.IsTerminal(int(os.Stdout.Fd())) {
			imgcat.CatFile(cfg.PNG, os.Stdout)
		}
	}

	if cfg.HTML != "" {
		f, err := os.Create(cfg.HTML)
		if err != nil {
			return errors.Wrap(err, "creating html")
		}
		defer f.Close()
		if err := renderChart(f, m); err != nil {
			return errors.Wrap(err, "rendering chart")
		}
		logger.Info("wrote html", zap.String("path", cfg.HTML), zap.Int("triangles", m.NumTriangles()))
	}

	if cfg.PNG == "" && cfg.HTML == "" {
		fmt.Println(tr)
	}
	return nil
}

func loadSites(cfg config.Config) ([]advanced.Point, error) {
	if cfg.Input != "" {
		return pointfile.Read(cfg.Input)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return randomSites(rand.New(rand.NewSource(seed)), cfg.Points, cfg.Size), nil
}

// Uniform points strictly inside the region, kept off its boundary
func randomSites(rng *rand.Rand, n int, size float64) []advanced.Point {
	margin := size * 0.01
	span := size - 2*margin
	sites := make([]advanced.Point, n)
	for i := range sites {
		sites[i] = advanced.Point{
			X: margin + rng.Float64()*span,
			Y: margin + rng.Float64()*span,
		}
	}
	return sites
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func overrideInt64(dst *int64, v int64) {
	if v != 0 {
		*dst = v
	}
}

func overrideFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
