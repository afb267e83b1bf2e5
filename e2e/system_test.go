package e2e

import (
	"net/http"
	"testing"

	"github.com/kovi/agls/internal/agls"
	"github.com/kovi/agls/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type systemResponse struct {
	Version string `json:"version"`
	AGLS    struct {
		Properties        []string `json:"properties"`
		UnknownProperties []string `json:"unknown_properties"`
	} `json:"agls"`
}

func TestSystem(t *testing.T) {
	w := Perform(t, router, http.MethodGet, "/_/api/v1/system")
	require.Equal(t, http.StatusOK, w.Code)

	var resp systemResponse
	DecodeJSON(t, w, &resp)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, agls.PropertyNames(), resp.AGLS.Properties)
	assert.Empty(t, resp.AGLS.UnknownProperties)
}

func TestSystem_ReportsUnknownProperties(t *testing.T) {
	WithConfig(t, func(c *config.Config) {
		c.AGLS.Metadata = append(c.AGLS.Metadata, agls.MetaSchema{Name: "DCTERMS.audience", Property: "audience"})
	})

	w := Perform(t, router, http.MethodGet, "/_/api/v1/system")
	require.Equal(t, http.StatusOK, w.Code)

	var resp systemResponse
	DecodeJSON(t, w, &resp)
	assert.Equal(t, []string{"audience"}, resp.AGLS.UnknownProperties)
}

func TestRequestID(t *testing.T) {
	w := Perform(t, router, http.MethodGet, "/_/api/v1/system", WithHeader("X-Request-ID", "abc-123"))
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
