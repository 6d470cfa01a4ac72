// Command labeldemo records labels for a small scene, traces the
// recorded instructions and saves every rendered label as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/geom"
	"github.com/gogpu/replay/recording"
	"github.com/gogpu/replay/style"
)

func main() {
	var (
		output     = flag.String("output", "labels", "directory for label PNGs")
		font       = flag.String("font", "bold 14px sans-serif", "label font")
		pixelRatio = flag.Float64("pixel-ratio", 2, "device pixel ratio")
		resolution = flag.Float64("resolution", 1, "map units per pixel")
		executor   = flag.String("executor", recording.TraceName, "executor to play the replay with")
		verbose    = flag.Bool("v", false, "log debug records")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	replay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := replay.NewSession()
	tr := s.NewTextReplay(geom.Extent{0, 0, 800, 600}, *resolution, *pixelRatio)

	if err := drawScene(tr, *font); err != nil {
		log.Fatalf("Failed to record: %v", err)
	}
	r := tr.Finish()

	exec, err := recording.NewExecutor(*executor, r.Widths)
	if err != nil {
		log.Fatalf("Failed to play: %v", err)
	}
	if err := r.Play(exec); err != nil {
		log.Fatalf("Failed to play: %v", err)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	for i, img := range r.Images() {
		name := filepath.Join(*output, fmt.Sprintf("label-%02d.png", i))
		if err := savePNG(name, img.RGBA()); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}

	st := s.LabelCache().Stats()
	log.Printf("Recorded %d instructions, %d labels saved to %s (cache hit rate %.2f)\n",
		len(r.Instructions), len(r.Images()), *output, st.HitRate())
}

func drawScene(tr *replay.TextReplay, font string) error {
	halo := &style.Stroke{Paint: style.MustParseColor("white"), Width: style.Width(3)}

	// Cities share one label style, so only one image per name is rendered.
	city := &style.Text{
		Font:   font,
		Fill:   &style.Fill{Paint: style.MustParseColor("#333")},
		Stroke: halo,
	}
	for _, c := range []struct {
		name string
		x, y float64
	}{
		{"Lyon", 120, 80},
		{"Nice", 400, 320},
		{"Lyon", 620, 450},
	} {
		city.Text = c.name
		tr.SetTextStyle(city, "cities")
		if err := tr.DrawText(geom.NewPoint(c.x, c.y), c.name); err != nil {
			return err
		}
	}

	lake := &style.Text{
		Text:         "Lac Léman\nLake Geneva",
		Font:         "italic 12px serif",
		Fill:         &style.Fill{Paint: style.MustParseColor("rgb(20, 60, 160)")},
		TextAlign:    style.AlignCenter,
		ExceedLength: true,
	}
	tr.SetTextStyle(lake, nil)
	ring := []float64{200, 200, 500, 200, 500, 300, 200, 300, 200, 200}
	if err := tr.DrawText(geom.NewPolygon(ring, 2, []int{len(ring)}), "lake"); err != nil {
		return err
	}

	river := &style.Text{
		Text:      "Rhône",
		Font:      font,
		Fill:      &style.Fill{Paint: style.MustParseColor("steelblue")},
		Stroke:    halo,
		Placement: style.PlacementLine,
	}
	tr.SetTextStyle(river, "rivers")
	line := []float64{50, 500, 200, 480, 350, 470, 420, 380, 600, 360}
	return tr.DrawText(geom.NewLineString(line, 2), "river")
}

func savePNG(name string, img *image.RGBA) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
