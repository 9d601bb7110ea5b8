package as2org_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/as2org"
	"github.com/netradar/mapit/halfgraph"
)

const sample = `# format: org_id|changed|org_name|country|source
@aut-0-ORGID|20120101|Example Org|US|CAIDA
# format: aut|changed|aut_name|org_id|source
64500|20120101|EXAMPLE-AS|@aut-0-ORGID|CAIDA
`

func TestTable_Load(t *testing.T) {
	tbl := as2org.New()
	require.NoError(t, tbl.Load(strings.NewReader(sample)))

	require.Equal(t, halfgraph.OrgId("@aut-0-ORGID"), tbl.Org(64500))
	require.Equal(t, "Example Org", tbl.Name(64500))
}

func TestTable_UnmappedFallsBackToASN(t *testing.T) {
	tbl := as2org.New()
	require.Equal(t, halfgraph.OrgId("64999"), tbl.Org(64999))
	require.Equal(t, "64999", tbl.Name(64999))
}
