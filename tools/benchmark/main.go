// Command benchmark load-tests a running uFund API server. It hammers a
// read endpoint with concurrent workers and reports latency percentiles,
// throughput, and error counts, optionally as a markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

const (
	defaultBaseURL  = "http://localhost:8080"
	defaultEndpoint = "/api/v1/needs"
)

type Config struct {
	BaseURL     string
	Endpoint    string
	Token       string        // Optional bearer token for authenticated endpoints
	Requests    int           // Total number of requests to send
	Concurrency int           // Number of concurrent workers
	Timeout     time.Duration // Per-request timeout
	OutputFile  string        // Output markdown file path (optional)
}

type result struct {
	latency    time.Duration
	statusCode int
	err        error
}

type report struct {
	config     Config
	total      int
	succeeded  int
	failed     int
	byStatus   map[int]int
	latencies  []time.Duration
	wallClock  time.Duration
	firstError error
}

func main() {
	cfg := parseFlags()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Benchmarking %s%s: %d requests, %d workers\n\n",
		cfg.BaseURL, cfg.Endpoint, cfg.Requests, cfg.Concurrency)

	rep := run(ctx, cfg)
	out := render(rep)
	fmt.Print(out)

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nReport written to %s\n", cfg.OutputFile)
	}

	if rep.failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() Config {
	cfg := Config{}
	flag.StringVar(&cfg.BaseURL, "url", defaultBaseURL, "Base URL of the API server")
	flag.StringVar(&cfg.Endpoint, "endpoint", defaultEndpoint, "Endpoint path to benchmark")
	flag.StringVar(&cfg.Token, "token", "", "Bearer token for authenticated endpoints")
	flag.IntVar(&cfg.Requests, "requests", 1000, "Total number of requests")
	flag.IntVar(&cfg.Concurrency, "concurrency", 10, "Number of concurrent workers")
	flag.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "Per-request timeout")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file (optional)")
	flag.Parse()

	if cfg.Requests < 1 {
		cfg.Requests = 1
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg
}

func run(ctx context.Context, cfg Config) *report {
	client := &http.Client{Timeout: cfg.Timeout}
	jobs := make(chan struct{}, cfg.Requests)
	results := make(chan result, cfg.Requests)

	var wg sync.WaitGroup
	for range cfg.Concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if ctx.Err() != nil {
					return
				}
				results <- doRequest(ctx, client, cfg)
			}
		}()
	}

	start := time.Now()
	for range cfg.Requests {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	close(results)
	wallClock := time.Since(start)

	rep := &report{
		config:    cfg,
		byStatus:  make(map[int]int),
		wallClock: wallClock,
	}
	for r := range results {
		rep.total++
		if r.err != nil {
			rep.failed++
			if rep.firstError == nil {
				rep.firstError = r.err
			}
			continue
		}
		rep.byStatus[r.statusCode]++
		if r.statusCode >= 200 && r.statusCode < 300 {
			rep.succeeded++
			rep.latencies = append(rep.latencies, r.latency)
		} else {
			rep.failed++
		}
	}
	return rep
}

func doRequest(ctx context.Context, client *http.Client, cfg Config) result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+cfg.Endpoint, nil)
	if err != nil {
		return result{err: err}
	}
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return result{latency: latency, err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return result{latency: latency, statusCode: resp.StatusCode}
}

func render(rep *report) string {
	var b strings.Builder

	b.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&b, "- Endpoint: `%s%s`\n", rep.config.BaseURL, rep.config.Endpoint)
	fmt.Fprintf(&b, "- Requests: %d (%d workers)\n", rep.total, rep.config.Concurrency)
	fmt.Fprintf(&b, "- Wall clock: %s\n", formatDuration(rep.wallClock))
	fmt.Fprintf(&b, "- Throughput: %s\n", formatRate(rep.succeeded, rep.wallClock))
	fmt.Fprintf(&b, "- Succeeded: %d (%s)\n", rep.succeeded, percentageString(rep.succeeded, rep.total))
	fmt.Fprintf(&b, "- Failed: %d\n", rep.failed)
	if rep.firstError != nil {
		fmt.Fprintf(&b, "- First error: %v\n", rep.firstError)
	}

	if len(rep.byStatus) > 0 {
		b.WriteString("\n## Status codes\n\n")
		codes := make([]int, 0, len(rep.byStatus))
		for code := range rep.byStatus {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		for _, code := range codes {
			fmt.Fprintf(&b, "- %d: %d\n", code, rep.byStatus[code])
		}
	}

	if len(rep.latencies) > 0 {
		sorted := make([]time.Duration, len(rep.latencies))
		copy(sorted, rep.latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		b.WriteString("\n## Latency\n\n")
		fmt.Fprintf(&b, "- min: %s\n", formatDuration(sorted[0]))
		fmt.Fprintf(&b, "- p50: %s\n", formatDuration(percentile(sorted, 50)))
		fmt.Fprintf(&b, "- p90: %s\n", formatDuration(percentile(sorted, 90)))
		fmt.Fprintf(&b, "- p99: %s\n", formatDuration(percentile(sorted, 99)))
		fmt.Fprintf(&b, "- max: %s\n", formatDuration(sorted[len(sorted)-1]))
	}

	return b.String()
}
