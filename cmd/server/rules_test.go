package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRulesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRulesTable(&buf, 1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 21)

	assert.Equal(t, []string{"LEVEL", "HEALTH/ENERGY", "ABILITY", "SKILL", "TRAINING", "PROFICIENCY", "MAX", "ABILITY", "MAX", "DEFENSE"},
		strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "18", "7", "5", "23", "2", "3", "11"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"20", "246", "13", "62", "80", "6", "9", "30"}, strings.Fields(lines[20]))
}

func TestWriteRulesTable_ArchetypeAbilityRaisesTraining(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRulesTable(&buf, 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 22 + 3 + (2+3)*1
	assert.Equal(t, "30", strings.Fields(lines[2])[4])
}
