package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoriguchi/mindtracer/internal/model"
)

func TestParseFeelings(t *testing.T) {
	feelings, err := parseFeelings("Happy, calm ,TIRED")
	require.NoError(t, err)
	assert.Equal(t, []model.Feeling{model.FeelingHappy, model.FeelingCalm, model.FeelingTired}, feelings)

	_, err = parseFeelings("happy,bogus")
	assert.Error(t, err)

	feelings, err = parseFeelings("")
	require.NoError(t, err)
	assert.Nil(t, feelings)
}

func TestParseContexts(t *testing.T) {
	contexts, err := parseContexts("work,finances")
	require.NoError(t, err)
	assert.Equal(t, []model.Context{model.ContextWork, model.ContextFinances}, contexts)

	_, err = parseContexts("work,cooking")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("2026-03-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), ts.UTC())

	ts, err = parseTimestamp("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, time.March, ts.Month())

	_, err = parseTimestamp("yesterday")
	assert.Error(t, err)
}
