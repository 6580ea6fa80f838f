package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/pipes/pipe"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	iterationsKey = "iterations"
	widthsKey     = "widths"
	heightsKey    = "heights"
	profileKey    = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time propagation through grids of projected pipes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  iterationsKey,
				Usage: "Writes to the source per grid",
				Value: 100,
			},
			&cli.IntSliceFlag{
				Name:  widthsKey,
				Usage: "Number of chains hanging off the source",
				Value: []int64{1, 10, 100, 1_000},
			},
			&cli.IntSliceFlag{
				Name:  heightsKey,
				Usage: "Number of projections in each chain",
				Value: []int64{1, 10, 100, 1_000},
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Int(iterationsKey))
	if iters < 1 {
		return fmt.Errorf("--%s must be positive, got %d", iterationsKey, iters)
	}
	ww, hh := cmd.IntSlice(widthsKey), cmd.IntSlice(heightsKey)

	log.Printf("warming up")
	benchmarkPipes(ww, hh, iters, false)
	benchmarkPipes(ww, hh, iters, true)
	return nil
}

func addOne(v int) int {
	return v + 1
}

func benchmarkPipes(ww, hh []int64, iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Pipes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := pipe.NewCell(1)
			var stops []func()
			for i := int64(0); i < w; i++ {
				var last pipe.Pipe[int] = src
				for j := int64(0); j < h; j++ {
					last = pipe.Project(last, addOne)
				}
				leaf := last
				stops = append(stops, pipe.Watch(leaf, func(pipe.Observable) {
					leaf.Value()
				}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			for _, stop := range stops {
				stop()
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
