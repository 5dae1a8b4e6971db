package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/beacon/internal/app"
	"github.com/bnema/beacon/internal/domain"
	"github.com/bnema/beacon/pkg/version"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "version")

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestVersionCmd(t *testing.T) {
	version.Set("1.2.3", "abc123", "2024-05-01")
	t.Cleanup(func() { version.Set("dev", "unknown", "unknown") })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "full", args: []string{"version"}, want: "beacon 1.2.3\nCommit: abc123\nBuilt: 2024-05-01\n"},
		{name: "short", args: []string{"version", "--short"}, want: "1.2.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs(tt.args)

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderCheckTable(t *testing.T) {
	results := []app.CheckResult{
		{
			Service: domain.ServiceConfig{URL: "https://fast.example.com", TimeoutThresholdMs: 1000},
			Outcome: domain.Succeeded(120.44, 200),
		},
		{
			Service: domain.ServiceConfig{URL: "https://slow.example.com", TimeoutThresholdMs: 100},
			Outcome: domain.Succeeded(450, 200),
		},
		{
			Service: domain.ServiceConfig{URL: "https://down.example.com", TimeoutThresholdMs: 500},
			Outcome: domain.Failed(0, errors.New("connection refused")),
		},
	}

	out := renderCheckTable(results)

	assert.Contains(t, out, "https://fast.example.com")
	assert.Contains(t, out, "120.4 ms")
	assert.Contains(t, out, resultOK)
	assert.Contains(t, out, resultSlow)
	assert.Contains(t, out, resultFail)
	assert.Contains(t, out, "connection refused")
	assert.Equal(t, 1, countFailed(results))
}

func TestResultLabel(t *testing.T) {
	svc := domain.ServiceConfig{URL: "https://a.example.com", TimeoutThresholdMs: 500}

	assert.Equal(t, resultOK, resultLabel(app.CheckResult{Service: svc, Outcome: domain.Succeeded(500, 200)}))
	assert.Equal(t, resultSlow, resultLabel(app.CheckResult{Service: svc, Outcome: domain.Succeeded(500.1, 200)}))
	assert.Equal(t, resultFail, resultLabel(app.CheckResult{Service: svc, Outcome: domain.Failed(503, nil)}))
}
