// Command matrizer is the CLI entry point for the optimizer: read a source
// file, parse it, resolve its preamble, preprocess and optimize its
// expression, and emit the result in the target library's syntax. Grounded
// on funxy/cmd/funxy/main.go's file-driven pipeline-running shape, trimmed
// to Matrizer's much smaller set of stages (spec.md §6's CLI contract), and
// assembled from internal/pipeline's Processor chain rather than calling
// each stage by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/cache"
	"github.com/cortexlang/matrizer/internal/engine"
	"github.com/cortexlang/matrizer/internal/pipeline"
	"github.com/cortexlang/matrizer/internal/trace"
)

func main() {
	var (
		traceOn    = flag.Bool("trace", false, "narrate the rewrite search to stderr")
		cachePath  = flag.String("cache", "", "path to a SQLite result cache; empty disables caching")
		configPath = flag.String("config", "", "path to a matrizer.yaml engine configuration")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <source-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *traceOn, *cachePath, *configPath); err != nil {
		if merr, ok := err.(ast.MError); ok {
			fmt.Fprintln(os.Stderr, merr.Show())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

func run(path string, traceOn bool, cachePath, configPath string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cfg := engine.Default()
	if configPath != "" {
		cfg, err = engine.Load(configPath)
		if err != nil {
			return err
		}
	}

	// Every top-level run is tagged with a request ID, attached to trace
	// output (cache entries do not record it), mirroring the
	// ID-per-unit-of-work pattern the teacher's internal/ext tests follow for
	// google/uuid.
	requestID := uuid.New().String()

	tr := trace.Discard()
	if traceOn {
		tr = trace.New(os.Stderr, requestID)
	}

	var store *cache.Store
	if cachePath != "" {
		store, err = cache.Open(cachePath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	ctx := &pipeline.PipelineContext{
		Source: string(src),
		Config: cfg,
		Tracer: tr,
		Cache:  store,
	}
	ctx = pipeline.New(
		pipeline.ParseProcessor{},
		pipeline.ResolveProcessor{},
		pipeline.PreprocessProcessor{},
		pipeline.OptimizeProcessor{},
		pipeline.EmitProcessor{},
	).Run(ctx)

	if ctx.Err != nil {
		return ctx.Err
	}

	fmt.Println(ctx.Rendered)
	return nil
}
