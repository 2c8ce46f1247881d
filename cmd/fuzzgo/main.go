// Command fuzzgo ranks candidate lines against a needle, best match first.
//
// Candidates come from stdin by default, one per line:
//
//	git ls-files | fuzzgo main
//
// Or from a file (compressed files are detected automatically) or an S3
// object:
//
//	fuzzgo --input paths.txt.gz main
//	fuzzgo --input s3://bucket/lists/paths.txt main
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/hupe1980/fuzzgo"
	"github.com/hupe1980/fuzzgo/blobstore"
	s3store "github.com/hupe1980/fuzzgo/blobstore/s3"
	"github.com/hupe1980/fuzzgo/codec"
	"github.com/hupe1980/fuzzgo/ingest"
)

type matchOptions struct {
	workers int
	limit   int
	input   string
	jsonOut bool
	useMmap bool
	verbose bool
}

func main() {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "fuzzgo <needle>",
		Short: "Fuzzy-rank candidate lines against a needle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.GOMAXPROCS(0), "number of scoring workers")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "return at most N matches (0 = all)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "candidate list: '-' for stdin, a file path, or an s3:// URL")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit matches as JSON")
	cmd.Flags().BoolVar(&opts.useMmap, "mmap", false, "memory-map a local input file instead of reading it")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log query details to stderr")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fuzzgo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, needle string, opts *matchOptions) error {
	if opts.workers < 1 {
		return fuzzgo.ErrInvalidWorkerCount
	}

	lines, cleanup, err := loadLines(ctx, opts)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	var matcherOpts []fuzzgo.Option
	if opts.verbose {
		matcherOpts = append(matcherOpts, fuzzgo.WithLogger(fuzzgo.NewTextLogger(slog.LevelDebug)))
	}

	m := fuzzgo.New(lines, matcherOpts...)

	results, err := m.Search([]byte(needle)).
		Workers(opts.workers).
		Limit(opts.limit).
		Execute(ctx)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return printJSON(results)
	}

	for _, r := range results {
		fmt.Printf("%s\n", r.Line)
	}
	fmt.Fprintf(os.Stderr, "matched %d / %d lines\n", len(results), len(lines))
	return nil
}

// loadLines resolves the --input flag to a candidate list. The cleanup
// function, when non-nil, must run after the lines are no longer used.
func loadLines(ctx context.Context, opts *matchOptions) ([][]byte, func() error, error) {
	switch {
	case strings.HasPrefix(opts.input, "s3://"):
		lines, err := loadS3(ctx, opts.input)
		return lines, nil, err

	case opts.input == "-":
		lines, err := ingest.ReadLines(os.Stdin)
		return lines, nil, err

	case opts.useMmap:
		return ingest.MmapLines(opts.input)

	default:
		lines, err := ingest.ReadFile(opts.input)
		return lines, nil, err
	}
}

func loadS3(ctx context.Context, url string) ([][]byte, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(url, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 url %q", url)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	var store blobstore.BlobStore = s3store.NewStore(awss3.NewFromConfig(cfg), bucket, "")
	return ingest.FromBlob(ctx, store, key, nil)
}

type jsonMatch struct {
	Index int    `json:"index"`
	Line  string `json:"line"`
	Score uint16 `json:"score"`
}

func printJSON(results fuzzgo.Results) error {
	out := make([]jsonMatch, len(results))
	for i, r := range results {
		out[i] = jsonMatch{Index: r.Index, Line: string(r.Line), Score: r.Score}
	}
	b, err := codec.Default.Marshal(out)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}
