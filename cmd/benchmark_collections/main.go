package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/pipes/pipe"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	itemsKey  = "items"
	roundsKey = "rounds"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_collections",
		Usage: "Time Filter and GroupBy under list and element churn",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  itemsKey,
				Usage: "List sizes to benchmark",
				Value: []int64{10, 100, 1_000, 10_000},
			},
			&cli.IntFlag{
				Name:  roundsKey,
				Usage: "Changes applied per list size",
				Value: 1_000,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type item struct {
	id    int
	done  *pipe.Cell[bool]
	owner *pipe.Cell[string]
}

var owners = []string{"ada", "grace", "linus", "rob"}

func makeItems(n int, random *rand.Rand) []*item {
	items := make([]*item, n)
	for i := range items {
		items[i] = &item{
			id:    i,
			done:  pipe.NewCell(random.Intn(2) == 0),
			owner: pipe.NewCell(owners[random.Intn(len(owners))]),
		}
	}
	return items
}

type scenario struct {
	name string
	// build wires the collection under test and returns a function that reads it.
	build func(list pipe.Pipe[[]*item]) (read func() int, stop func())
	// change applies one round of churn.
	change func(all []*item, list *pipe.Cell[[]*item], round int, random *rand.Rand)
}

var scenarios = []scenario{
	{
		name:   "filter, toggle element",
		build:  buildFilter,
		change: toggleOne,
	},
	{
		name:   "filter, resize list",
		build:  buildFilter,
		change: resizeList,
	},
	{
		name:   "group, move element",
		build:  buildGroup,
		change: moveOne,
	},
	{
		name:   "group, resize list",
		build:  buildGroup,
		change: resizeList,
	},
}

func buildFilter(list pipe.Pipe[[]*item]) (func() int, func()) {
	f := pipe.Filter(list, func(it *item) pipe.Pipe[bool] { return it.done })
	stop := pipe.Watch(f, func(pipe.Observable) { f.Value() })
	return func() int { return len(f.Value()) }, stop
}

func buildGroup(list pipe.Pipe[[]*item]) (func() int, func()) {
	g := pipe.GroupBy(list, func(it *item) pipe.Pipe[string] { return it.owner })
	stop := pipe.Watch(g, func(pipe.Observable) { g.Value() })
	return func() int { return len(g.Value()) }, stop
}

func toggleOne(all []*item, _ *pipe.Cell[[]*item], round int, _ *rand.Rand) {
	it := all[round%len(all)]
	it.done.Set(!it.done.Value())
}

func moveOne(all []*item, _ *pipe.Cell[[]*item], round int, random *rand.Rand) {
	it := all[round%len(all)]
	it.owner.Set(owners[random.Intn(len(owners))])
}

func resizeList(all []*item, list *pipe.Cell[[]*item], round int, _ *rand.Rand) {
	// never all[:len(all)] on the first round, which is the list already set
	n := len(all) - (round+1)%len(all)
	list.Set(all[:n])
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting collections benchmark, please wait...")
	defer log.Print("Finished collections benchmark")

	rounds := cmd.Int(roundsKey)
	if rounds < 1 {
		return fmt.Errorf("--%s must be positive, got %d", roundsKey, rounds)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"test", "items", "rounds", "time", "changes/ms", "last read"})

	for _, n := range cmd.IntSlice(itemsKey) {
		if n < 1 {
			return fmt.Errorf("--%s must be positive, got %d", itemsKey, n)
		}
		for _, sc := range scenarios {
			log.Printf("Running '%s' with %d items", sc.name, n)
			random := rand.New(rand.NewSource(0))
			all := makeItems(int(n), random)
			list := pipe.NewCell(all)
			read, stop := sc.build(list)

			start := time.Now()
			for i := 0; i < int(rounds); i++ {
				sc.change(all, list, i, random)
			}
			duration := time.Since(start)
			last := read()
			stop()

			var rate int64
			if ms := float64(duration) / float64(time.Millisecond); ms > 0 {
				rate = int64(float64(rounds) / ms)
			}
			table.Append([]string{
				sc.name,
				humanize.Comma(n),
				humanize.Comma(rounds),
				fmt.Sprint(duration),
				humanize.Comma(rate),
				fmt.Sprint(last),
			})
		}
	}
	table.Render()
	return nil
}
