package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/pipes/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed DeriveN helpers for pipes",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest number of pipes a DeriveN helper takes",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "pipe/derive_generated.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for pipes started !")
	defer func() {
		log.Printf("Codegen for pipes finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 2 {
		return fmt.Errorf("--%s must be at least 2, got %d", genericParamCountKey, count)
	}
	out := cmd.String(outputKey)
	log.Printf("Generating Derive2..Derive%d into %s", count, out)

	contents := templates.DeriveGen(count)
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
