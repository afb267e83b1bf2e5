package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kovi/agls/internal/agls"
	"github.com/kovi/agls/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ClearDatabase(db *gorm.DB) {
	// Session with AllowGlobalUpdate: true allows Delete() without a Where clause
	db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&agls.Settings{})
	db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&content.Page{})
}

// CreatePage stores a page directly, bypassing the API.
func CreatePage(t *testing.T, db *gorm.DB, p content.Page) *content.Page {
	t.Helper()
	if p.PageType == "" {
		p.PageType = content.DefaultPageType
	}
	p.URLSegment = content.NormalizeURL(p.URLSegment)
	require.NoError(t, db.Create(&p).Error)
	return &p
}

// WriteContent places a markdown file under dir, removed again when the test ends.
func WriteContent(t *testing.T, dir, rel, data string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(data), 0o644))
	t.Cleanup(func() { os.Remove(full) })
}

// RequestOption defines a function that modifies an http.Request
type RequestOption func(*http.Request)

// Perform performs an HTTP request against the provided handler with optional modifiers
func Perform(t *testing.T, h http.Handler, method, path string, opts ...RequestOption) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, nil)
	assert.NoError(t, err)
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}

// Document parses the recorded response body as HTML.
func Document(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

// --- Specific Options ---

func WithBody(body []byte) RequestOption {
	return func(req *http.Request) {
		req.Body = io.NopCloser(bytes.NewBuffer(body))
		req.ContentLength = int64(len(body))
	}
}

func WithJSON(v any) RequestOption {
	return func(req *http.Request) {
		data, _ := json.Marshal(v)
		req.Body = io.NopCloser(bytes.NewBuffer(data))
		req.Header.Set("Content-Type", "application/json")
	}
}

func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}
