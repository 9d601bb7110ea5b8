// Package traceio extracts directed interface adjacencies from traceroute
// hop records. It is a port of original_source/trace.py, reading
// pre-extracted JSON hop records from an io.Reader rather than shelling
// out to sc_warts2json itself — invoking an external binary has no place
// in a package whose only job is turning already-parsed JSON into
// adjacency pairs.
package traceio

import (
	"bufio"
	"encoding/json"
	"io"
)

// Hop is one traceroute probe response, the fields trace.py's
// extract_trace reads out of each JSON object.
type Hop struct {
	Addr      string `json:"addr"`
	ProbeTTL  int    `json:"probe_ttl"`
	ICMPQTTL  *int   `json:"icmp_q_ttl,omitempty"`
}

// Trace is one traceroute measurement's JSON record, trace.py's `j`.
type Trace struct {
	HopCount   int    `json:"hop_count"`
	StopReason string `json:"stop_reason"`
	Hops       []Hop  `json:"hops"`
}

// Adjacency is one directed (source, destination) pair extracted from a
// cycle-free trace.
type Adjacency struct {
	Source      string
	Destination string
}

// ExtractHops builds the per-TTL address array trace.py's extract_trace
// computes: each slot is the address agreed on by every hop response at
// that TTL, or "" if hops disagree (trace.py's sentinel False) or no hop
// answered (trace.py's sentinel None).
func ExtractHops(t Trace) []string {
	trace := make([]string, t.HopCount)
	disagreed := make([]bool, t.HopCount)
	for _, hop := range t.Hops {
		if hop.ICMPQTTL != nil && *hop.ICMPQTTL != 1 {
			continue
		}
		ttl := hop.ProbeTTL - 1
		if ttl < 0 || ttl >= t.HopCount {
			continue
		}
		switch {
		case disagreed[ttl]:
			continue
		case trace[ttl] == "":
			trace[ttl] = hop.Addr
		case trace[ttl] != hop.Addr:
			trace[ttl] = ""
			disagreed[ttl] = true
		}
	}
	return trace
}

// CycleFree reports whether no address reappears in trace after a
// different address was seen; empty slots and consecutive repeats of the
// same address are ignored — trace.py's cycle_free.
func CycleFree(trace []string) bool {
	seen := make(map[string]struct{}, len(trace))
	prev := ""
	for _, addr := range trace {
		if addr == "" || addr == prev {
			continue
		}
		if _, ok := seen[addr]; ok {
			return false
		}
		seen[addr] = struct{}{}
		prev = addr
	}
	return true
}

// ProcessTrace extracts the cycle-free adjacency pairs from a single Trace
// whose stop reason is not "LOOP" — trace.py's process_trace_file inner
// logic, applied to one already-decoded record instead of a whole warts
// file at a time.
func ProcessTrace(t Trace) []Adjacency {
	if t.StopReason == "LOOP" {
		return nil
	}
	hops := ExtractHops(t)
	if !CycleFree(hops) {
		return nil
	}
	var out []Adjacency
	for i := 0; i+1 < len(hops); i++ {
		if hops[i] != "" && hops[i+1] != "" && hops[i] != hops[i+1] {
			out = append(out, Adjacency{Source: hops[i], Destination: hops[i+1]})
		}
	}
	return out
}

// Result is the accumulated output of ProcessFile: every address observed
// anywhere in the input (trace.py's addresses, used by the loader to build
// the routing-table lookups) and every directed adjacency extracted from
// cycle-free traces.
type Result struct {
	Addresses   map[string]struct{}
	Adjacencies []Adjacency
}

// ProcessFile reads newline-delimited JSON Trace records from r (the
// output of sc_warts2json, captured ahead of time) and accumulates a
// Result — trace.py's process_trace_file, minus the subprocess.
func ProcessFile(r io.Reader) (Result, error) {
	res := Result{Addresses: make(map[string]struct{})}
	seenAdj := make(map[Adjacency]struct{})
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var t Trace
		if err := json.Unmarshal(line, &t); err != nil {
			return res, err
		}
		if t.Hops == nil {
			continue
		}
		for _, hop := range t.Hops {
			res.Addresses[hop.Addr] = struct{}{}
		}
		for _, adj := range ProcessTrace(t) {
			if _, ok := seenAdj[adj]; ok {
				continue
			}
			seenAdj[adj] = struct{}{}
			res.Adjacencies = append(res.Adjacencies, adj)
		}
	}
	return res, scanner.Err()
}
