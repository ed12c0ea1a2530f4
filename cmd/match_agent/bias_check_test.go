package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-matcher/internal/types"
)

func TestBiasCheckCommand_JobLanguageOnly(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.json")
	outPath := filepath.Join(dir, "report.json")
	jobJSON := `{
		"job_id": "6fa459ea-ee8a-3ca4-894e-db77e160355e",
		"title": "Sales Lead",
		"description": "We want an aggressive, dominant, competitive and decisive closer."
	}`
	require.NoError(t, os.WriteFile(jobPath, []byte(jobJSON), 0644))

	biasCheckJob, biasCheckRun, biasCheckCandidates, biasCheckOutput = jobPath, "", "", outPath
	biasCheckVerbose = false

	require.NoError(t, runBiasCheck(biasCheckCmd, nil))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report types.BiasReport
	require.NoError(t, json.Unmarshal(content, &report))
	assert.True(t, report.GenderBias.Detected)
	assert.Greater(t, report.OverallBiasScore, 0.0)
}

func TestBiasCheckCommand_MissingJobFile(t *testing.T) {
	biasCheckJob = filepath.Join(t.TempDir(), "missing.json")
	biasCheckRun, biasCheckCandidates = "", ""
	biasCheckOutput = filepath.Join(t.TempDir(), "report.json")
	biasCheckVerbose = false

	err := runBiasCheck(biasCheckCmd, nil)

	assert.Error(t, err)
}
