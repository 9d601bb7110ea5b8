package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netradar/mapit/config"
)

const sample = `
inputs:
  bgp: bgp.txt
  ixp_prefixes: ixp.txt
  as2org: as2org.txt
  traces:
    - trace1.json
    - trace2.json
factor: 0.5
iterations: 50
providers:
  asns: [30, 40]
  orgs: ["ProviderOrg"]
output: out.csv
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "bgp.txt", cfg.Inputs.BGP)
	require.Equal(t, []string{"trace1.json", "trace2.json"}, cfg.Inputs.Traces)
	require.Equal(t, 0.5, cfg.Factor)
	require.NotNil(t, cfg.Providers)
	require.Equal(t, []int32{30, 40}, cfg.Providers.ASNs)
}

func TestLoad_RejectsOutOfRangeFactor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factor: 1.5\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
