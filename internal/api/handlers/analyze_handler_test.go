package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/londailey6937/chapter-analysis/internal/analysis"
	"github.com/londailey6937/chapter-analysis/internal/extractor"
	"github.com/londailey6937/chapter-analysis/internal/library"
)

func newTestApp() *fiber.App {
	ex := extractor.New(extractor.DefaultConfig(), nil)
	analyzer := analysis.NewAnalyzer(ex, analysis.DefaultEvaluators(), nil)

	app := fiber.New()
	analyzeHandler := NewAnalyzeHandler(analyzer, nil)
	graphHandler := NewGraphHandler(ex)
	app.Post("/api/v1/analyze", analyzeHandler.HandleAnalyze)
	app.Post("/api/v1/graph", graphHandler.HandleGraph)
	app.Get("/api/v1/domains", graphHandler.HandleDomains)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestHandleAnalyze(t *testing.T) {
	app := newTestApp()
	body := `{
		"text": "Photosynthesis is a process that converts light energy into chemical energy. Photosynthesis occurs in chloroplasts because they hold chlorophyll, for example in leaves. Photosynthesis sustains plants.",
		"sections": [{"heading": "Photosynthesis Basics", "start": 0, "end": 100}]
	}`

	status, report := postJSON(t, app, "/api/v1/analyze", body)
	require.Equal(t, fiber.StatusOK, status)

	assert.NotEmpty(t, report["id"])
	assert.Contains(t, report, "overall_score")
	assert.Contains(t, report, "summary")

	graphField, ok := report["graph"].(map[string]interface{})
	require.True(t, ok)
	concepts, ok := graphField["concepts"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, concepts)

	principles, ok := report["principles"].([]interface{})
	require.True(t, ok)
	assert.Len(t, principles, 3)
}

func TestHandleAnalyzeRequiresText(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/v1/analyze", `{"text": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Document text is required", body["error"])
}

func TestHandleAnalyzeRejectsBadJSON(t *testing.T) {
	app := newTestApp()

	status, _ := postJSON(t, app, "/api/v1/analyze", `{"text": `)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleGraph(t *testing.T) {
	app := newTestApp()
	body := `{"text": "An atom bonds through its valence electrons. Atoms form an ionic bond.", "domain": "chemistry"}`

	status, g := postJSON(t, app, "/api/v1/graph", body)
	require.Equal(t, fiber.StatusOK, status)

	concepts, ok := g["concepts"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, concepts)

	first, ok := concepts[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "concept_1", first["id"])
	assert.Contains(t, g, "hierarchy")
	assert.Contains(t, g, "sequence")
}

func TestHandleDomains(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/domains", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string][]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	domains := body["domains"]
	require.Len(t, domains, 2)
	assert.Equal(t, "chemistry", domains[0]["domain"])
	assert.Equal(t, "computing", domains[1]["domain"])
}

func TestResolveLibrary(t *testing.T) {
	custom := &library.Library{Concepts: []library.ConceptDefinition{{Name: "cell"}}}

	lib, mode := resolveLibrary(&AnalyzeRequest{Library: custom})
	assert.Equal(t, custom, lib)
	assert.Equal(t, "custom_library", mode)

	lib, mode = resolveLibrary(&AnalyzeRequest{Library: &library.Library{}})
	assert.Nil(t, lib)
	assert.Equal(t, "discovery", mode)

	lib, mode = resolveLibrary(&AnalyzeRequest{Domain: "chemistry"})
	require.NotNil(t, lib)
	assert.Equal(t, "chemistry", lib.Domain)
	assert.Equal(t, "domain_library", mode)

	lib, mode = resolveLibrary(&AnalyzeRequest{Domain: "astrology"})
	assert.Nil(t, lib)
	assert.Equal(t, "discovery", mode)

	lib, mode = resolveLibrary(&AnalyzeRequest{})
	assert.Nil(t, lib)
	assert.Equal(t, "discovery", mode)
}
