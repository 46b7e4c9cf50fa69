package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDemoCmd(t *testing.T) {
	logger = zap.NewNop()

	var out bytes.Buffer
	cmd := demoCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	want := []string{
		"24-05-2004 18:05 with an addition of -5.5 work days is 14-05-2004 12:00",
		"24-05-2004 19:03 with an addition of 44.723656 work days is 27-07-2004 13:47",
		"24-05-2004 18:03 with an addition of -6.7470217 work days is 13-05-2004 10:02",
		"24-05-2004 08:03 with an addition of 12.782709 work days is 10-06-2004 14:18",
		"24-05-2004 07:03 with an addition of 8.276628 work days is 04-06-2004 10:12",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestIncrementCmd(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
working_hours: { start: "08:00", end: "16:00" }
holidays:
  fixed: ["2004-05-27"]
  recurring: ["05-17"]
`), 0o644))

	var out bytes.Buffer
	cmd := incrementCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--start", "2004-05-24 08:03", "--amount", "12.782709"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "24-05-2004 08:03 with an addition of 12.782709 work days is 10-06-2004 14:18\n", out.String())
}

func TestClassifyCmd(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("holidays:\n  recurring: [\"05-17\"]\n"), 0o644))

	var out bytes.Buffer
	cmd := classifyCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2004-05-17", "2004-05-22", "2004-05-24"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "2004-05-17 Mon holiday\n2004-05-22 Sat saturday\n2004-05-24 Mon workday\n", out.String())
}

func TestHolidaysCmd(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	holidayFile := filepath.Join(dir, "holidays.txt")
	require.NoError(t, os.WriteFile(holidayFile, []byte("2004-06-01 fixed Company Day\n"), 0o644))
	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
holidays:
  fixed: ["2004-05-27"]
  recurring: ["05-17"]
  file: `+holidayFile+`
`), 0o644))

	var out bytes.Buffer
	cmd := holidaysCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	want := "05-17      recurring\n" +
		"2004-05-27 fixed\n" +
		"2004-06-01 fixed (Company Day)\n"
	assert.Equal(t, want, out.String())
}

func TestHolidaysCmd_Empty(t *testing.T) {
	logger = zap.NewNop()

	configPath = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("working_hours: { start: \"09:00\", end: \"17:00\" }\n"), 0o644))

	var out bytes.Buffer
	cmd := holidaysCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "No holidays configured\n", out.String())
}
