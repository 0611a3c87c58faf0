package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEvents    = 48000 // Total number of valid events to send
	hoursUsed      = 4     // Events are spread evenly across this many hours
	eventsPerHour  = totalEvents / hoursUsed
	rejectedEvents = 200 // Additional events carrying a blacklisted IP, all expected to be rejected
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
	"curl/7.88.1",
}

// ### End - fixed configs

type incomingEvent struct {
	CustomerID int64  `json:"customerID"`
	TagID      int64  `json:"tagID"`
	UserID     string `json:"userID"`
	RemoteIP   string `json:"remoteIP"`
	Timestamp  int64  `json:"timestamp"`
	UserAgent  string `json:"userAgent"`
}

type hourCount struct {
	Hour         int   `json:"hour"`
	RequestCount int64 `json:"request_count"`
	InvalidCount int64 `json:"invalid_count"`
}

type dailyStats struct {
	CustomerID    int64       `json:"customer_id"`
	Date          string      `json:"date"`
	TotalRequests int64       `json:"total_requests"`
	HourlyStats   []hourCount `json:"hourly_stats"`
}

type eventToSend struct {
	jsonData  []byte
	userAgent string
	wantOK    bool
}

// main runs the e2e scenario: 001_concurrent_hourly_counts
//
// This scenario tests the end-to-end flow of event ingestion and hourly
// aggregation under concurrency. It sends 48,000 valid events for one
// customer, spread evenly across four hours of a single UTC day, with many
// requests racing to increment the same hourly counter. It also sends 200
// events from a blacklisted IP and expects every one of them rejected.
//
// Prerequisites:
//   - Server running with an empty stats table
//   - Reference data loaded via cmd/loader, with customer 1 active and
//      10.0.0.66 present in the IP blacklist
//
// What it tests:
//   - Event ingestion via POST /events endpoint
//   - Concurrent increments of the same (customer, hour) counter lose no updates
//   - Blacklisted-IP rejection with 400 status
//   - Daily stats retrieval via GET /stats/{customerID}/{day}
//
// Expected results:
//   - All valid events return 200
//   - All blacklisted events return 400
//   - The stats response reports total_requests == 48000
//   - Exactly four hourly buckets, each with request_count == 12000
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the traffic analytics API server
	dateUTC := "2025-12-28"            // Date used for generating event timestamps (UTC)
	parallel := 16                     // Number of concurrent requests to send
	customerID := int64(1)             // Customer ID to use in requests, must exist and be active
	blacklistedIP := "10.0.0.66"       // IP that must be present in the server's IP blacklist

	fmt.Println("Starting e2e scenario: 001_concurrent_hourly_counts")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("CUSTOMER_ID: %d\n", customerID)
	fmt.Printf("TOTAL_EVENTS: %d\n", totalEvents)
	fmt.Printf("REJECTED_EVENTS: %d\n", rejectedEvents)
	fmt.Println()

	dayStart, err := time.ParseInLocation("2006-01-02", dateUTC, time.UTC)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Invalid DATE_UTC: %v\n", err)
		os.Exit(1)
	}

	// Generate all events up front so the send loop is pure I/O.
	fmt.Printf("Generating %d events...\n", totalEvents+rejectedEvents)
	events := make([]eventToSend, 0, totalEvents+rejectedEvents)
	for i := 0; i < totalEvents; i++ {
		hour := i % hoursUsed // interleave hours so concurrent requests hit the same buckets
		secondOfHour := (i / hoursUsed) % 3600
		ev := incomingEvent{
			CustomerID: customerID,
			TagID:      int64(i%7 + 1),
			UserID:     fmt.Sprintf("user-%04d", i%500),
			RemoteIP:   fmt.Sprintf("192.168.%d.%d", i%32, i%250+1),
			Timestamp:  dayStart.Add(time.Duration(hour)*time.Hour + time.Duration(secondOfHour)*time.Second).Unix(),
			UserAgent:  userAgents[i%len(userAgents)],
		}
		jsonData, err := json.Marshal(ev)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal event %d: %v\n", i, err)
			os.Exit(1)
		}
		events = append(events, eventToSend{jsonData: jsonData, userAgent: ev.UserAgent, wantOK: true})
	}
	for i := 0; i < rejectedEvents; i++ {
		ev := incomingEvent{
			CustomerID: customerID,
			TagID:      1,
			UserID:     fmt.Sprintf("bad-user-%03d", i),
			RemoteIP:   blacklistedIP,
			Timestamp:  dayStart.Add(2 * time.Hour).Unix(),
			UserAgent:  userAgents[0],
		}
		jsonData, err := json.Marshal(ev)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal rejected event %d: %v\n", i, err)
			os.Exit(1)
		}
		events = append(events, eventToSend{jsonData: jsonData, userAgent: ev.UserAgent, wantOK: false})
	}
	fmt.Printf("Generated %d events\n", len(events))
	fmt.Println()

	// Send all events through a worker pool
	client := &http.Client{Timeout: 30 * time.Second}
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var acceptedRequest int64   // 200 status code
	var rejectedRequest int64   // 400 status code
	var unexpectedRequest int64 // anything else

	for _, ev := range events {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(e eventToSend) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendEvent(client, baseURL, e)
			if err != nil {
				mu.Lock()
				errors = append(errors, err)
				mu.Unlock()
				return
			}

			switch {
			case e.wantOK && statusCode == http.StatusOK:
				atomic.AddInt64(&acceptedRequest, 1)
			case !e.wantOK && statusCode == http.StatusBadRequest:
				atomic.AddInt64(&rejectedRequest, 1)
			default:
				atomic.AddInt64(&unexpectedRequest, 1)
			}
		}(ev)
	}

	wg.Wait()

	fmt.Println("All events sent")
	fmt.Println("=== Statistics ===")
	fmt.Printf("Accepted (200): %d\n", atomic.LoadInt64(&acceptedRequest))
	fmt.Printf("Rejected (400): %d\n", atomic.LoadInt64(&rejectedRequest))
	fmt.Printf("Unexpected status: %d\n", atomic.LoadInt64(&unexpectedRequest))
	fmt.Printf("Transport errors: %d\n", len(errors))
	fmt.Println()

	failed := false
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d sends failed, first: %v\n", len(errors), errors[0])
		failed = true
	}
	if got := atomic.LoadInt64(&acceptedRequest); got != totalEvents {
		fmt.Fprintf(os.Stderr, "ERROR: accepted count = %d, want %d\n", got, totalEvents)
		failed = true
	}
	if got := atomic.LoadInt64(&rejectedRequest); got != rejectedEvents {
		fmt.Fprintf(os.Stderr, "ERROR: rejected count = %d, want %d\n", got, rejectedEvents)
		failed = true
	}

	// Verify the aggregated counters through the stats endpoint
	stats, err := fetchDailyStats(client, baseURL, customerID, dateUTC)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch daily stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Daily stats ===")
	fmt.Printf("total_requests: %d\n", stats.TotalRequests)
	for _, hc := range stats.HourlyStats {
		fmt.Printf("hour %02d: request_count=%d invalid_count=%d\n", hc.Hour, hc.RequestCount, hc.InvalidCount)
	}
	fmt.Println()

	if stats.TotalRequests != totalEvents {
		fmt.Fprintf(os.Stderr, "ERROR: total_requests = %d, want %d\n", stats.TotalRequests, totalEvents)
		failed = true
	}
	if len(stats.HourlyStats) != hoursUsed {
		fmt.Fprintf(os.Stderr, "ERROR: hourly bucket count = %d, want %d\n", len(stats.HourlyStats), hoursUsed)
		failed = true
	}
	for _, hc := range stats.HourlyStats {
		if hc.RequestCount != eventsPerHour {
			fmt.Fprintf(os.Stderr, "ERROR: hour %02d request_count = %d, want %d\n", hc.Hour, hc.RequestCount, eventsPerHour)
			failed = true
		}
	}

	if failed {
		fmt.Fprintln(os.Stderr, "Scenario FAILED")
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func sendEvent(client *http.Client, baseURL string, ev eventToSend) (int, error) {
	req, err := http.NewRequest("POST", baseURL+"/events", bytes.NewReader(ev.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ev.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func fetchDailyStats(client *http.Client, baseURL string, customerID int64, day string) (*dailyStats, error) {
	resp, err := client.Get(fmt.Sprintf("%s/stats/%d/%s", baseURL, customerID, day))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var stats dailyStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return &stats, nil
}
