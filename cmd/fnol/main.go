// Command fnol processes FNOL report files from the command line without a
// database: it prints the extraction, validation, and routing outcome for
// each input.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Fahad-1515/fnol-agent/internal/config"
	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/internal/loader"
	"github.com/Fahad-1515/fnol-agent/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		output  = flag.String("o", "", "write results to a JSON file instead of stdout")
		verbose = flag.Bool("v", false, "verbose output")
		batch   = flag.Bool("b", false, "treat the input as a directory of .txt reports")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: fnol [-o results.json] [-v] [-b] <file-or-directory>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	svc := service.NewClaimService(cfg, nil, nil)

	var paths []string
	if *batch {
		paths, err = filepath.Glob(filepath.Join(input, "*.txt"))
		if err != nil {
			return fmt.Errorf("scan directory %q: %w", input, err)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no .txt files found in %q", input)
		}
		sort.Strings(paths)
	} else {
		paths = []string{input}
	}

	if *verbose && len(paths) > 1 {
		fmt.Printf("Processing batch of %d documents...\n", len(paths))
	}

	ctx := context.Background()
	results := make([]*domain.ProcessResult, 0, len(paths))
	routes := map[domain.Route]int{}
	errCount := 0

	for _, path := range paths {
		result := processFile(ctx, svc, path)
		results = append(results, result)
		if result.Status == domain.ProcessStatusError {
			errCount++
		} else {
			routes[result.RecommendedRoute]++
		}
		if *output == "" {
			printResult(result, *verbose)
		}
	}

	if *verbose && len(paths) > 1 {
		fmt.Println("\nBatch processing complete:")
		fmt.Printf("  Successfully processed: %d\n", len(paths)-errCount)
		fmt.Printf("  Errors: %d\n", errCount)
		for _, route := range domain.Routes {
			if n := routes[route]; n > 0 {
				fmt.Printf("  %s: %d\n", route, n)
			}
		}
	}

	if *output != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", *output, err)
		}
		fmt.Printf("Results written to %s\n", *output)
	}

	return nil
}

func processFile(ctx context.Context, svc service.ClaimService, path string) *domain.ProcessResult {
	name := filepath.Base(path)

	doc, err := loader.Load(path)
	if err != nil {
		return &domain.ProcessResult{
			Document: name,
			Status:   domain.ProcessStatusError,
			Error:    err.Error(),
		}
	}
	return svc.ProcessText(ctx, name, doc.Text)
}

func printResult(r *domain.ProcessResult, verbose bool) {
	fmt.Printf("\n=== %s ===\n", r.Document)
	if r.Status == domain.ProcessStatusError {
		fmt.Printf("  ERROR: %s\n", r.Error)
		return
	}

	fmt.Printf("  Route: %s\n", r.RecommendedRoute)
	fmt.Printf("  Reasoning: %s\n", r.Reasoning)
	if len(r.MissingFields) > 0 {
		fmt.Printf("  Missing fields: %s\n", strings.Join(r.MissingFields, ", "))
	}
	if len(r.Validation.Warnings) > 0 {
		fmt.Printf("  Warnings: %s\n", strings.Join(r.Validation.Warnings, "; "))
	}
	if len(r.Validation.Errors) > 0 {
		fmt.Printf("  Validation errors: %s\n", strings.Join(r.Validation.Errors, "; "))
	}
	if len(r.Validation.Inconsistencies) > 0 {
		fmt.Printf("  Inconsistencies: %s\n", strings.Join(r.Validation.Inconsistencies, "; "))
	}

	if verbose {
		keys := make([]string, 0, len(r.ExtractedFields))
		for k := range r.ExtractedFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("  Extracted fields:")
		for _, k := range keys {
			fmt.Printf("    %s: %v\n", k, r.ExtractedFields[k])
		}
		fmt.Printf("  Processing time: %.3fs\n", r.ProcessingTime)
	}
}
