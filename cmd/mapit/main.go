// Command mapit runs the MAP-IT inference engine end to end: it reads a
// YAML run configuration (package config), builds the IP->ASN and
// ASN->Org lookup tables (packages ipasn, as2org), extracts adjacencies
// from traceroute files (package traceio), assembles the interface-half
// graph (package halfgraph), runs the inference driver (package infer),
// and writes the resulting records (package output).
//
// Everything in package infer is pure and silent; this command is where
// logging, progress reporting, and file I/O belong.
package main

import (
	"flag"
	"fmt"
	"net/netip"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/netradar/mapit/as2org"
	"github.com/netradar/mapit/config"
	"github.com/netradar/mapit/diagnostics"
	"github.com/netradar/mapit/halfgraph"
	"github.com/netradar/mapit/infer"
	"github.com/netradar/mapit/ipasn"
	"github.com/netradar/mapit/output"
	"github.com/netradar/mapit/ptp"
	"github.com/netradar/mapit/traceio"
)

var configPath = flag.String("config", "mapit.yaml", "path to the run configuration file")

func main() {
	cli.ArgsHelp = ""
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.Main()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ipTable, err := loadIPASN(cfg.Inputs)
	if err != nil {
		log.Fatalf("loading IP->ASN tables: %v", err)
	}
	orgs, err := loadAS2Org(cfg.Inputs.AS2Org)
	if err != nil {
		log.Fatalf("loading AS2Org table: %v", err)
	}

	addresses, adjacencies, err := loadTraces(cfg.Inputs.Traces)
	if err != nil {
		log.Fatalf("reading traceroute files: %v", err)
	}
	log.Infof("Loaded %d addresses, %d adjacencies from %d trace files", len(addresses), len(adjacencies), len(cfg.Inputs.Traces))

	g, err := buildGraph(addresses, adjacencies, ipTable, orgs)
	if err != nil {
		log.Fatalf("building interface-half graph: %v", err)
	}

	rep := diagnostics.Diagnose(g)
	log.Infof("Graph: %d halves, %d in working set, %d components", rep.TotalHalves, rep.WorkingSetSize, rep.Components)
	if rep.Sparse {
		log.Warnf("The interface graph is too sparse. No interface has more than one neighbor in the forward or backward direction.")
	}

	driverCfg := infer.Config{Factor: cfg.Factor, Iterations: cfg.Iterations}
	if cfg.Providers != nil {
		asns := make([]halfgraph.ASN, len(cfg.Providers.ASNs))
		for i, a := range cfg.Providers.ASNs {
			asns[i] = halfgraph.ASN(a)
		}
		orgIDs := make([]halfgraph.OrgId, len(cfg.Providers.Orgs))
		for i, o := range cfg.Providers.Orgs {
			orgIDs[i] = halfgraph.OrgId(o)
		}
		driverCfg.Providers = infer.NewProviders(asns, orgIDs)
	}

	result := infer.Run(g, driverCfg)
	log.Infof("Converged=%v after %d passes; %d total inferences", result.Converged, result.Passes, result.Updates.Len())

	if err := writeOutput(cfg.Output, g, result); err != nil {
		log.Fatalf("writing output: %v", err)
	}
	log.Infof("Done.")
}

func loadIPASN(in config.Inputs) (*ipasn.Table, error) {
	t := ipasn.New()
	if in.BGP != "" {
		f, err := os.Open(in.BGP)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", in.BGP, err)
		}
		defer f.Close()
		if err := t.LoadBGP(f); err != nil {
			return nil, err
		}
	}
	if in.IXPPrefixes != "" {
		f, err := os.Open(in.IXPPrefixes)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", in.IXPPrefixes, err)
		}
		defer f.Close()
		if err := t.LoadIXPPrefixes(f); err != nil {
			return nil, err
		}
	}
	t.AddPrivate()
	t.AddDefault()
	return t, nil
}

func loadAS2Org(path string) (*as2org.Table, error) {
	t := as2org.New()
	if path == "" {
		return t, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return t, t.Load(f)
}

func loadTraces(paths []string) (map[string]struct{}, []traceio.Adjacency, error) {
	addresses := make(map[string]struct{})
	var adjacencies []traceio.Adjacency
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", p, err)
		}
		res, err := traceio.ProcessFile(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		for addr := range res.Addresses {
			addresses[addr] = struct{}{}
		}
		adjacencies = append(adjacencies, res.Adjacencies...)
	}
	return addresses, adjacencies, nil
}

// buildGraph registers every observed address (both directions) with its
// base (asn, org) label and otherside, registers every adjacency, and
// builds the final immutable halfgraph.Graph.
func buildGraph(addresses map[string]struct{}, adjacencies []traceio.Adjacency, ipTable *ipasn.Table, orgs *as2org.Table) (*halfgraph.Graph, error) {
	seen := make(map[uint32]struct{}, len(addresses))
	for addr := range addresses {
		if ip, err := ptp.ToUint32(addr); err == nil {
			seen[ip] = struct{}{}
		}
	}

	b := halfgraph.NewBuilder()
	for addr := range addresses {
		asn := resolveASN(addr, ipTable)
		org := orgs.Org(asn)
		otherside, _ := ptp.OtherSide(addr, seen)
		b.AddHalf(addr, halfgraph.Forward, asn, org, otherside)
		b.AddHalf(addr, halfgraph.Backward, asn, org, otherside)
	}
	for _, adj := range adjacencies {
		b.AddAdjacency(adj.Source, adj.Destination)
	}
	return b.Build()
}

func resolveASN(addr string, ipTable *ipasn.Table) halfgraph.ASN {
	parsed, err := netip.ParseAddr(addr)
	if err != nil {
		return halfgraph.NoRoute
	}
	return ipTable.Lookup(parsed)
}

func writeOutput(path string, g *halfgraph.Graph, result infer.Result) error {
	records := output.Records(g, result.Updates)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return output.WriteCSV(f, records)
}
