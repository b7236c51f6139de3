package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCommand(t *testing.T) {
	cmd := NewScanCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "scan", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("dir"))
}

func TestOrdersCommand(t *testing.T) {
	cmd := NewOrdersCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "orders", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("from"))
	assert.NotNil(t, cmd.Flags().Lookup("to"))
}

func TestExportCommand(t *testing.T) {
	cmd := NewExportCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "export", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}

func TestParseWindow(t *testing.T) {
	from, to, err := parseWindow("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.True(t, from.Before(*to))

	_, _, err = parseWindow("08/01/2026", "")
	assert.Error(t, err)

	from, to, err = parseWindow("", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)
}
