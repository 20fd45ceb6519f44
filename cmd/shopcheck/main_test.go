package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/themizzi/shopcheck/internal/randomdata"
)

func fixture() generatedFixture {
	g := randomdata.New()
	return generatedFixture{Identity: g.Identity(), Billing: g.BillingAddress()}
}

func TestWriteFixture_JSON(t *testing.T) {
	want := fixture()
	var buf bytes.Buffer

	require.NoError(t, writeFixture(&buf, "json", want))

	var got generatedFixture
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
	assert.Contains(t, buf.String(), `"first_name"`)
}

func TestWriteFixture_YAML(t *testing.T) {
	want := fixture()
	var buf bytes.Buffer

	require.NoError(t, writeFixture(&buf, "yaml", want))

	var got generatedFixture
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
	assert.Contains(t, buf.String(), "billing:")
}

func TestWriteFixture_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeFixture(&buf, "xml", fixture()))
	assert.Zero(t, buf.Len())
}

func TestNewApp_Commands(t *testing.T) {
	app := newApp()
	for _, name := range []string{"serve", "run", "identity"} {
		assert.NotNil(t, app.Command(name), "missing %s command", name)
	}
}
