// Package config loads a MAP-IT run's file-based configuration from YAML.
// Every path named here is a local file; nothing in this package performs
// network I/O.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Inputs names the local files a run reads.
type Inputs struct {
	// BGP is a CAIDA-style prefix-to-origin-AS dump (ipasn.Table.LoadBGP).
	BGP string `yaml:"bgp"`
	// IXPPrefixes is a plain list of IXP CIDR prefixes, one per line
	// (ipasn.Table.LoadIXPPrefixes).
	IXPPrefixes string `yaml:"ixp_prefixes"`
	// AS2Org is a CAIDA as-org2info.txt-style dump (as2org.Table.Load).
	AS2Org string `yaml:"as2org"`
	// Traces lists newline-delimited-JSON traceroute hop files
	// (traceio.ProcessFile), each already produced by sc_warts2json ahead
	// of time.
	Traces []string `yaml:"traces"`
}

// Providers names the ASNs and Orgs the stub heuristic must not treat as
// a stub customer.
type Providers struct {
	ASNs []int32  `yaml:"asns"`
	Orgs []string `yaml:"orgs"`
}

// Config is a complete run's configuration, loaded once from a YAML file
// and handed to cmd/mapit's wiring.
type Config struct {
	Inputs Inputs `yaml:"inputs"`

	// Factor is the dominance threshold f in [0,1] used to accept a
	// majority org/ASN during inference.
	Factor float64 `yaml:"factor"`
	// Iterations caps the outer loop; 0 means infer.DefaultIterations.
	Iterations int `yaml:"iterations"`
	// Providers is optional; a nil/omitted section disables the stub
	// heuristic entirely.
	Providers *Providers `yaml:"providers"`

	// Output is the path the final Updates records are written to
	// (package output).
	Output string `yaml:"output"`
}

// Load reads and parses a YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Factor < 0 || cfg.Factor > 1 {
		return nil, fmt.Errorf("config: factor %v out of range [0,1]", cfg.Factor)
	}
	return &cfg, nil
}
