// Package as2org implements the ASN -> Org mapping the core inference
// engine needs to label an interface half's operator. It is a file-based
// port of original_source/as2org.py's CAIDA AS2Org reader, dropping the
// optional bgp.potaroo.net HTML scrape (a live network fetch out of place
// in a deterministic, I/O-free core) in favor of the CAIDA file alone.
package as2org

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/netradar/mapit/halfgraph"
)

// OrgInfo is one row of the CAIDA "# format: org_id|..." section.
type OrgInfo struct {
	OrgID   halfgraph.OrgId
	Changed string
	Name    string
	Country string
	Source  string
}

// ASInfo is one row of the CAIDA "# format: aut|..." section.
type ASInfo struct {
	ASN     halfgraph.ASN
	Changed string
	Name    string
	OrgID   halfgraph.OrgId
	Source  string
}

// Table is the parsed ASN->Org mapping, original_source/as2org.py's AS2Org
// dict subclass — a plain map here since Go has no dict-subclass idiom.
type Table struct {
	ases map[halfgraph.ASN]ASInfo
	orgs map[halfgraph.OrgId]OrgInfo
}

// New returns an empty Table.
func New() *Table {
	return &Table{ases: make(map[halfgraph.ASN]ASInfo), orgs: make(map[halfgraph.OrgId]OrgInfo)}
}

// Org returns the Org for asn, or a synthetic OrgId built from the ASN
// itself if asn is unmapped — matching as2org.py's AS2Org.__getitem__
// fallback to str(asn).
func (t *Table) Org(asn halfgraph.ASN) halfgraph.OrgId {
	if info, ok := t.ases[asn]; ok {
		return info.OrgID
	}
	return halfgraph.OrgId(strconv.Itoa(int(asn)))
}

// Name returns the org name for asn if known, else the synthetic fallback
// (as2org.py's AS2Org.name).
func (t *Table) Name(asn halfgraph.ASN) string {
	if info, ok := t.ases[asn]; ok {
		if org, ok := t.orgs[info.OrgID]; ok {
			return org.Name
		}
	}
	return strconv.Itoa(int(asn))
}

// Load parses a CAIDA as-org2info.txt-style dump: lines beginning "#
// format: field|field|..." switch the active record type between
// aut-info and org-info rows; subsequent non-comment lines are
// pipe-delimited records of that type. Mirrors as2org.py's read_caida.
func (t *Table) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	const (
		none = iota
		asRecord
		orgRecord
	)
	mode := none
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "# format:") {
			fields := strings.Split(strings.TrimSpace(strings.TrimPrefix(line, "# format:")), "|")
			if len(fields) > 0 && fields[0] == "org_id" {
				mode = orgRecord
			} else {
				mode = asRecord
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		switch mode {
		case asRecord:
			if len(fields) < 5 {
				return fmt.Errorf("as2org: malformed aut record: %q", line)
			}
			asn, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("as2org: parsing asn %q: %w", fields[0], err)
			}
			t.ases[halfgraph.ASN(asn)] = ASInfo{
				ASN: halfgraph.ASN(asn), Changed: fields[1], Name: fields[2],
				OrgID: halfgraph.OrgId(fields[3]), Source: fields[4],
			}
		case orgRecord:
			if len(fields) < 5 {
				return fmt.Errorf("as2org: malformed org record: %q", line)
			}
			orgID := halfgraph.OrgId(fields[0])
			t.orgs[orgID] = OrgInfo{
				OrgID: orgID, Changed: fields[1], Name: fields[2],
				Country: fields[3], Source: fields[4],
			}
		}
	}
	return scanner.Err()
}
