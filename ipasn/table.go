// Package ipasn implements the IP -> ASN longest-prefix-match lookup the
// core inference engine needs to assign a base ASN to every observed
// interface address. It is a file-based port of
// original_source/routing_table.py: an in-memory CIDR table built once
// from a CAIDA-style prefix-to-origin-AS dump, an IXP prefix list, and
// the private-address ranges.
//
// There is no live network fetch here — routing_table.py reads its inputs
// from local files (bgp, ixp_prefixes, ixp_asns), and this port preserves
// that: callers pass readers, not URLs.
package ipasn

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"sort"
	"strconv"
	"strings"

	"github.com/netradar/mapit/halfgraph"
)

// Private4 and Private6 are the non-routable prefixes routing_table.py's
// add_private() always installs, taken verbatim from its PRIVATE4/PRIVATE6
// lists (IANA special-use registries).
var (
	Private4 = []string{
		"0.0.0.0/8", "10.0.0.0/8", "100.64.0.0/10", "127.0.0.0/8", "169.254.0.0/16",
		"172.16.0.0/12", "192.0.0.0/24", "192.0.2.0/24", "192.31.196.0/24",
		"192.52.193.0/24", "192.88.99.0/24", "192.168.0.0/16", "192.175.48.0/24",
		"198.18.0.0/15", "198.51.100.0/24", "203.0.113.0/24", "240.0.0.0/4",
		"255.255.255.255/32",
	}
	Private6 = []string{
		"::1/128", "::/128", "::ffff:0:0/96", "64:ff9b::/96", "100::/64",
		"2001::/23", "2001::/32", "2001:1::1/128", "2001:2::/48", "2001:3::/32",
		"2001:4:112::/48", "2001:5::/32", "2001:10::/28", "2001:20::/28",
		"2001:db8::/32", "2002::/16", "2620:4f:8000::/48", "fc00::/7", "fe80::/10",
	}
)

// PrivateASN marks an address within a private/special-use prefix; NoASN
// marks one with no match at all (routing_table.py never leaves this case
// unhandled, since add_default() always installs 0.0.0.0/0 — kept here as
// the fallback for a table a caller builds without a default route).
const (
	PrivateASN halfgraph.ASN = -1
	NoASN      halfgraph.ASN = halfgraph.NoRoute
)

type entry struct {
	prefix netip.Prefix
	asn    halfgraph.ASN
}

// Table is a longest-prefix-match IP->ASN table. Entries are kept sorted
// by prefix length descending so Lookup returns the most specific match
// first; lookup itself is a linear scan, matching the scale routing_table.py
// targets (one table built once per run, queried millions of times, never
// rebuilt concurrently).
type Table struct {
	entries []entry
}

// New returns an empty Table.
func New() *Table {
	return &Table{}
}

// Add registers prefix with the given ASN, replacing any prior entry for
// the identical prefix (routing_table.py's add_prefix via Radix.add,
// whose node.data assignment is itself a last-write-wins overwrite).
func (t *Table) Add(prefix netip.Prefix, asn halfgraph.ASN) {
	prefix = prefix.Masked()
	for i := range t.entries {
		if t.entries[i].prefix == prefix {
			t.entries[i].asn = asn
			return
		}
	}
	t.entries = append(t.entries, entry{prefix: prefix, asn: asn})
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].prefix.Bits() > t.entries[j].prefix.Bits()
	})
}

// AddIXP registers prefix as belonging to an IXP (routing_table.py's
// add_ixp); IXP prefixes carry the halfgraph.IXP sentinel.
func (t *Table) AddIXP(prefix netip.Prefix) {
	t.Add(prefix, halfgraph.IXP)
}

// AddPrivate installs every prefix in Private4 and Private6, tagging them
// PrivateASN (routing_table.py's add_private). Malformed entries in the
// built-in lists are a programming error and panic immediately.
func (t *Table) AddPrivate() {
	for _, p := range append(append([]string{}, Private4...), Private6...) {
		prefix, err := netip.ParsePrefix(p)
		if err != nil {
			panic(fmt.Sprintf("ipasn: invalid built-in private prefix %q: %v", p, err))
		}
		t.Add(prefix, PrivateASN)
	}
}

// AddDefault installs 0.0.0.0/0 with NoASN, so every address resolves to
// at least the "no route" sentinel (routing_table.py's add_default).
func (t *Table) AddDefault() {
	t.Add(netip.MustParsePrefix("0.0.0.0/0"), NoASN)
}

// Lookup returns the ASN of the most specific prefix containing addr, or
// NoASN if the table has no matching entry at all (e.g. AddDefault was
// never called).
func (t *Table) Lookup(addr netip.Addr) halfgraph.ASN {
	for _, e := range t.entries {
		if e.prefix.Contains(addr) {
			return e.asn
		}
	}
	return NoASN
}

// LoadBGP populates t from a CAIDA prefix-to-origin-AS dump: whitespace or
// tab-separated "prefix asn" lines (comment lines beginning with '#' are
// skipped), mirroring routing_table.py's create_routing_table's BGP table
// read. A multi-origin ASN field (containing ',' or '_') is skipped, same
// as the original's filter.
func (t *Table) LoadBGP(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		asnField := fields[len(fields)-1]
		if strings.ContainsAny(asnField, ",_") {
			continue
		}
		asn, err := strconv.Atoi(asnField)
		if err != nil {
			return fmt.Errorf("ipasn: parsing asn field %q: %w", asnField, err)
		}
		prefixStr := fields[0]
		if len(fields) >= 3 {
			prefixStr = fields[0] + "/" + fields[1]
		}
		prefix, err := netip.ParsePrefix(prefixStr)
		if err != nil {
			return fmt.Errorf("ipasn: parsing prefix %q: %w", prefixStr, err)
		}
		t.Add(prefix, halfgraph.ASN(asn))
	}
	return scanner.Err()
}

// LoadIXPPrefixes reads one CIDR prefix per line and registers each as an
// IXP prefix (routing_table.py's ixp_prefixes table).
func (t *Table) LoadIXPPrefixes(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prefix, err := netip.ParsePrefix(line)
		if err != nil {
			return fmt.Errorf("ipasn: parsing ixp prefix %q: %w", line, err)
		}
		t.AddIXP(prefix)
	}
	return scanner.Err()
}
