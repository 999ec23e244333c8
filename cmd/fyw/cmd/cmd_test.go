package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"FutureYako/cmd/fyw/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillersCmd(t *testing.T) {
	var out bytes.Buffer
	command := cmd.BillersCmd()
	command.SetOut(&out)
	command.SetArgs([]string{"water"})

	require.NoError(t, command.Execute())
	assert.Contains(t, out.String(), "DAWASA (Water)")
	assert.Contains(t, out.String(), "DUWASA (Water)")
	assert.NotContains(t, out.String(), "Vodacom")
}

func TestAssetsCmd(t *testing.T) {
	var out bytes.Buffer
	command := cmd.AssetsCmd()
	command.SetOut(&out)
	command.SetArgs([]string{"--type", "bond"})

	require.NoError(t, command.Execute())
	assert.Contains(t, out.String(), "Treasury Bond 10 Years")
	assert.Contains(t, out.String(), "TZS 100,000")
	assert.NotContains(t, out.String(), "CRDB")
}

func TestSimulateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: payday
steps:
  - action: create_goal
    goal: Laptop
    target: 1000000
    allocation_type: percentage
    allocation_value: 100
  - action: receive
    amount: 500000
  - action: pay_bill
    biller: tanesco
    reference: "123"
    amount: 1000
`), 0o600))

	var out bytes.Buffer
	command := cmd.SimulateCmd()
	command.SetOut(&out)
	command.SetArgs([]string{"-f", path})

	require.NoError(t, command.Execute())

	output := out.String()
	assert.Contains(t, output, "Scenario: payday")
	assert.Contains(t, output, "received TZS 500,000, saved TZS 50,000")
	assert.Contains(t, output, "FAILED:")
	assert.Contains(t, output, "Total savings:  TZS 50,000")
	assert.Contains(t, output, "1 step(s) failed")
}

func TestDepositCmd(t *testing.T) {
	var out bytes.Buffer
	command := cmd.DepositCmd()
	command.SetOut(&out)
	command.SetArgs([]string{"--amount", "7000"})

	require.NoError(t, command.Execute())
	assert.Contains(t, out.String(), "My Savings")
	assert.Contains(t, out.String(), "TZS 7,000")

	command = cmd.DepositCmd()
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs([]string{"--amount", "abc"})
	assert.Error(t, command.Execute())
}
