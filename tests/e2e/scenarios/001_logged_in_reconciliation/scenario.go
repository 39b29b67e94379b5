package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	hitsPerIdentity = 200 // Hits generated per active identity
)

var (
	host       = "intranet.example.com"
	identities = []string{"alice", "bob", "carol", "dave"}
	paths      = []string{"/", "/reports", "/dashboard", "/profile"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type hitPayload struct {
	Logged     string `json:"logged"`
	Host       string `json:"host"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	StatusCode int    `json:"statusCode"`
	DurationMs int64  `json:"durationMs"`
	Identity   string `json:"identity"`
	UserAgent  string `json:"userAgent"`
}

type loggedInReport struct {
	Date     string `json:"date"`
	Host     string `json:"host"`
	Segments []struct {
		Generated time.Time `json:"generated"`
		Total     int       `json:"total"`
		Users     []struct {
			Identity  string `json:"identity"`
			TotalHits int64  `json:"totalHits"`
		} `json:"users"`
	} `json:"segments"`
}

// main runs the e2e scenario: 001_logged_in_reconciliation
//
// This scenario tests the end-to-end flow of hit ingestion, dual-trigger
// buffering, windowed report generation, and logged-in session reconciliation.
// It simulates four users on one host: two stay active, one logs out and
// stays out, one logs out but comes back.
//
// What it tests:
//   - Hit ingestion via POST /hits (202 per accepted hit)
//   - Count-triggered buffer flushes feeding the window scheduler
//   - Logged-in reconciliation: logout exclusion and re-entry after logout
//   - Report queries via GET /reports/logged_in
//
// Expected results:
//   - All hits return 202 Accepted
//   - After the generation window closes, GET /reports/logged_in shows
//     alice, carol (re-entered after logout) and dave as logged in
//   - bob (logged out, no later activity) is absent from the last segment
//   - TotalHits for each present identity matches the hits sent
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the hit-reports API server
	parallel := 4                      // Number of concurrent hit requests to send
	logoutPath := "/Home/Logout"       // Must match reports.logout_path in configs.yml
	settleWait := 90 * time.Second     // Time to wait for buffer + scheduler flushes (tune to configs.yml)

	fmt.Println("Starting e2e scenario: 001_logged_in_reconciliation")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("HOST: %s\n", host)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("HITS_PER_IDENTITY: %d\n", hitsPerIdentity)
	fmt.Println()

	now := time.Now().UTC()
	hits := generateHits(now, logoutPath)
	fmt.Printf("Generated %d hits\n", len(hits))

	var accepted, rejected int64
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	for _, hit := range hits {
		wg.Add(1)
		workerChan <- struct{}{}
		go func(hit hitPayload) {
			defer wg.Done()
			defer func() { <-workerChan }()

			status, err := sendHit(baseURL, hit)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: send hit failed: %v\n", err)
				atomic.AddInt64(&rejected, 1)
				return
			}
			if status == http.StatusAccepted {
				atomic.AddInt64(&accepted, 1)
			} else {
				atomic.AddInt64(&rejected, 1)
			}
		}(hit)
	}
	wg.Wait()

	fmt.Printf("Accepted: %d, rejected: %d\n", atomic.LoadInt64(&accepted), atomic.LoadInt64(&rejected))
	if atomic.LoadInt64(&rejected) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d hits were rejected\n", atomic.LoadInt64(&rejected))
		os.Exit(1)
	}

	fmt.Printf("Waiting %s for buffer flushes and report generation...\n", settleWait)
	time.Sleep(settleWait)

	report, err := fetchLoggedInReport(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: fetch report failed: %v\n", err)
		os.Exit(1)
	}
	if len(report.Segments) == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: report has no segments\n")
		os.Exit(1)
	}

	last := report.Segments[len(report.Segments)-1]
	fmt.Printf("Last segment: generated=%s total=%d\n", last.Generated.Format(time.RFC3339), last.Total)

	present := make(map[string]int64)
	for _, user := range last.Users {
		present[user.Identity] = user.TotalHits
		fmt.Printf("  %s: totalHits=%d\n", user.Identity, user.TotalHits)
	}

	failed := false
	for _, want := range []string{"alice", "carol", "dave"} {
		if _, ok := present[want]; !ok {
			fmt.Fprintf(os.Stderr, "ERROR: expected %q in last segment\n", want)
			failed = true
		}
	}
	if _, ok := present["bob"]; ok {
		fmt.Fprintf(os.Stderr, "ERROR: bob logged out and must not appear in last segment\n")
		failed = true
	}
	if failed {
		os.Exit(1)
	}

	fmt.Println("Scenario completed successfully")
}

// generateHits builds the four users' sessions inside one short window:
// alice and dave browse normally; bob browses then hits the logout path last;
// carol hits the logout path but browses again afterwards.
func generateHits(now time.Time, logoutPath string) []hitPayload {
	var hits []hitPayload
	start := now.Add(-5 * time.Minute)

	for i := 0; i < hitsPerIdentity; i++ {
		ts := start.Add(time.Duration(i) * time.Second)
		for _, identity := range identities {
			hits = append(hits, hitPayload{
				Logged:     ts.Format(time.RFC3339Nano),
				Host:       host,
				Path:       paths[i%len(paths)],
				Method:     "GET",
				StatusCode: 200,
				DurationMs: int64(10 + i%50),
				Identity:   identity,
				UserAgent:  userAgents[i%len(userAgents)],
			})
		}
	}

	// bob's logout is his last action
	hits = append(hits, hitPayload{
		Logged:     now.Add(-30 * time.Second).Format(time.RFC3339Nano),
		Host:       host,
		Path:       logoutPath,
		Method:     "GET",
		StatusCode: 200,
		DurationMs: 10,
		Identity:   "bob",
		UserAgent:  userAgents[0],
	})
	// carol logs out but comes back
	hits = append(hits,
		hitPayload{
			Logged:     now.Add(-40 * time.Second).Format(time.RFC3339Nano),
			Host:       host,
			Path:       logoutPath,
			Method:     "GET",
			StatusCode: 200,
			DurationMs: 10,
			Identity:   "carol",
			UserAgent:  userAgents[1],
		},
		hitPayload{
			Logged:     now.Add(-10 * time.Second).Format(time.RFC3339Nano),
			Host:       host,
			Path:       "/reports",
			Method:     "GET",
			StatusCode: 200,
			DurationMs: 10,
			Identity:   "carol",
			UserAgent:  userAgents[1],
		},
	)

	return hits
}

func sendHit(baseURL string, hit hitPayload) (int, error) {
	jsonData, err := json.Marshal(hit)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal hit: %w", err)
	}

	req, err := http.NewRequest("POST", baseURL+"/hits", bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func fetchLoggedInReport(baseURL string) (*loggedInReport, error) {
	reportURL := fmt.Sprintf("%s/reports/logged_in?host=%s", baseURL, url.QueryEscape(host))
	resp, err := http.Get(reportURL)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var report loggedInReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
