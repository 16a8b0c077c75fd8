package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFlag(t *testing.T) {
	key, values, err := parseFilterFlag("colorFamilies=Blue,Green")
	require.NoError(t, err)
	assert.Equal(t, "colorFamilies", key)
	assert.Equal(t, []string{"Blue", "Green"}, values)
}

func TestParseFilterFlagSingleValue(t *testing.T) {
	key, values, err := parseFilterFlag("brands=Acme")
	require.NoError(t, err)
	assert.Equal(t, "brands", key)
	assert.Equal(t, []string{"Acme"}, values)
}

func TestParseFilterFlagTrimsValues(t *testing.T) {
	_, values, err := parseFilterFlag("brands= Acme , , Olympus ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Olympus"}, values)
}

func TestParseFilterFlagRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "brands", "=Blue", "brands=", "brands= , "} {
		_, _, err := parseFilterFlag(in)
		assert.Error(t, err, "input %q", in)
	}
}
