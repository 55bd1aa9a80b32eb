package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	BaseURL     string
	Requests    int
	Concurrency int
	Email       string
	Password    string
}

type benchStats struct {
	Success     uint64
	Failed      uint64
	mu          sync.Mutex
	Latencies   []time.Duration
	StatusCodes map[int]int
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Load-test a running server (viewer navigation and placeholders)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts)
		},
	}
	cmd.Flags().StringVar(&opts.BaseURL, "url", "http://localhost:9981", "Server base URL")
	cmd.Flags().IntVarP(&opts.Requests, "requests", "n", 1000, "Requests per scenario")
	cmd.Flags().IntVarP(&opts.Concurrency, "workers", "c", 20, "Concurrent workers")
	cmd.Flags().StringVar(&opts.Email, "email", "user@example.com", "Login email")
	cmd.Flags().StringVar(&opts.Password, "password", "password123", "Login password")
	return cmd
}

func runBench(opts benchOptions) error {
	if opts.Requests < 1 || opts.Concurrency < 1 {
		return fmt.Errorf("requests and workers must be positive")
	}

	_ = pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("LOCK", pterm.NewStyle(pterm.FgCyan)),
		pterm.NewLettersFromStringWithStyle("BENCH", pterm.NewStyle(pterm.FgMagenta)),
	).Render()
	pterm.Info.Printf("Target: %s | Workers: %d | Requests: %d\n", opts.BaseURL, opts.Concurrency, opts.Requests)

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Timeout: 10 * time.Second,
		Jar:     jar,
		Transport: &http.Transport{
			MaxIdleConns:        opts.Concurrency,
			MaxIdleConnsPerHost: opts.Concurrency,
		},
	}

	spinner, _ := pterm.DefaultSpinner.Start("Signing in...")
	if err := benchLogin(client, opts); err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success("Signed in as " + opts.Email)

	if code := benchDo(client, http.MethodPost, opts.BaseURL+"/api/viewer/open/1"); code != http.StatusOK {
		return fmt.Errorf("could not open the viewer: HTTP %d", code)
	}

	runScenario("Viewer navigation", opts, func(i int) int {
		return benchDo(client, http.MethodPost, opts.BaseURL+"/api/viewer/next")
	})

	runScenario("Placeholder render", opts, func(i int) int {
		url := fmt.Sprintf("%s/placeholder/%d?s=%d", opts.BaseURL, i%20+1, 64+(i/20)%8*32)
		return benchDo(client, http.MethodGet, url)
	})
	return nil
}

func benchLogin(client *http.Client, opts benchOptions) error {
	body, _ := json.Marshal(map[string]string{"email": opts.Email, "password": opts.Password})
	resp, err := client.Post(opts.BaseURL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("login failed (HTTP %d): %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

func benchDo(client *http.Client, method, url string) int {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return 0
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}

func runScenario(name string, opts benchOptions, operation func(i int) int) {
	bar, _ := pterm.DefaultProgressbar.WithTotal(opts.Requests).WithTitle(name).WithRemoveWhenDone(true).Start()

	stats := &benchStats{
		StatusCodes: make(map[int]int),
		Latencies:   make([]time.Duration, 0, opts.Requests),
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.Concurrency)
	start := time.Now()

	for i := 0; i < opts.Requests; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			t0 := time.Now()
			code := operation(i)
			stats.record(code, time.Since(t0))
			bar.Increment()
		}(i)
	}

	wg.Wait()
	pterm.DefaultSection.Println(name)
	printBenchReport(stats, time.Since(start), opts.Requests)
}

func (s *benchStats) record(code int, d time.Duration) {
	s.mu.Lock()
	s.Latencies = append(s.Latencies, d)
	s.StatusCodes[code]++
	s.mu.Unlock()

	if code >= 200 && code < 400 {
		atomic.AddUint64(&s.Success, 1)
	} else {
		atomic.AddUint64(&s.Failed, 1)
	}
}

// percentiles returns p50, p95 and p99 of latencies, sorting it in place.
func percentiles(latencies []time.Duration) (p50, p95, p99 time.Duration) {
	if len(latencies) == 0 {
		return 0, 0, 0
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	at := func(q float64) time.Duration {
		i := int(float64(len(latencies)) * q)
		if i >= len(latencies) {
			i = len(latencies) - 1
		}
		return latencies[i]
	}
	return at(0.50), at(0.95), at(0.99)
}

func printBenchReport(s *benchStats, totalTime time.Duration, totalReq int) {
	if len(s.Latencies) == 0 {
		return
	}
	p50, p95, p99 := percentiles(s.Latencies)

	data := pterm.TableData{
		{"Metric", "Value"},
		{"Throughput", fmt.Sprintf("%.2f Req/sec", float64(totalReq)/totalTime.Seconds())},
		{"Success Rate", fmt.Sprintf("%.2f%%", float64(atomic.LoadUint64(&s.Success))/float64(totalReq)*100)},
		{"P50 Latency", p50.String()},
		{"P95 Latency", p95.String()},
		{"P99 Latency", p99.String()},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if atomic.LoadUint64(&s.Failed) > 0 {
		pterm.Warning.Println("Status Code Breakdown (Errors):")
		for code, cnt := range s.StatusCodes {
			if code >= 400 || code == 0 {
				fmt.Printf("HTTP %d: %d\n", code, cnt)
			}
		}
	}
}
