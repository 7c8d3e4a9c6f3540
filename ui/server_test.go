package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vizlens/internal/config"
	"vizlens/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.GinMode = "test"
	cfg.Data.MaxUploadSize = 1 << 20
	return NewServer(cfg, dataset.NewSession(), nil)
}

func uploadCSV(t *testing.T, s *Server, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "data.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, s *Server, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestUploadAndSchema(t *testing.T) {
	s := testServer(t)

	rec := uploadCSV(t, s, "region,sales\nEU,10\nUS,20\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "csv", resp["file_type"])
	assert.NotEmpty(t, resp["dataset_id"])

	rec = doJSON(t, s, http.MethodGet, "/api/schema", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sales")
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	s := testServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("file", "archive.zip")
	part.Write([]byte("zip bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUploadWarnsOnDuplicateHeaders(t *testing.T) {
	s := testServer(t)

	rec := uploadCSV(t, s, "region,region\nEU,US\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "duplicate column headers")
}

func TestSchemaWithoutDataset(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/schema", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileEndpoints(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\n")

	rec := doJSON(t, s, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "completeness")

	rec = doJSON(t, s, http.MethodGet, "/api/profile/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestChartLifecycle(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\nEU,30\n")

	rec := doJSON(t, s, http.MethodPost, "/api/charts", map[string]any{"kind": "bar"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID     string          `json:"id"`
		Config json.RawMessage `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	var config map[string]any
	require.NoError(t, json.Unmarshal(created.Config, &config))
	config["data_mapping"] = map[string]any{"x": "region", "y": "sales"}

	rec = doJSON(t, s, http.MethodPut, "/api/charts/"+created.ID, config)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodGet, "/api/charts/"+created.ID+"/validate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_valid":true`)

	rec = doJSON(t, s, http.MethodGet, "/api/charts/"+created.ID+"/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Rows  []map[string]string `json:"rows"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, 2, data.Count)
	assert.Equal(t, "40", data.Rows[0]["sales"])

	rec = doJSON(t, s, http.MethodDelete, "/api/charts/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/charts/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateChartRejectsUnknownKind(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/charts", map[string]any{"kind": "radar"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_ERROR"`)
}

func TestChartKinds(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/charts/kinds", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var kinds []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kinds))
	assert.Len(t, kinds, 14)
}

func TestClickEventAddsAndListsFilter(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\n")

	rec := doJSON(t, s, http.MethodPost, "/api/charts", map[string]any{"kind": "bar"})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	var config map[string]any
	var full struct {
		Config map[string]any `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
	config = full.Config
	config["data_mapping"] = map[string]any{"x": "region", "y": "sales"}
	doJSON(t, s, http.MethodPut, "/api/charts/"+created.ID, config)

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/charts/%s/events/click", created.ID), map[string]any{"data_index": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodGet, "/api/interactions/filters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "region")

	rec = doJSON(t, s, http.MethodDelete, "/api/interactions/filters", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/interactions/filters", nil)
	assert.True(t, strings.Contains(rec.Body.String(), `"filters":[]`), rec.Body.String())
}

func TestFieldStatsAndValues(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\n")

	rec := doJSON(t, s, http.MethodGet, "/api/fields/sales/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"mean":15`)
	assert.Contains(t, rec.Body.String(), `"sum":30`)

	rec = doJSON(t, s, http.MethodGet, "/api/fields/region/stats", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/fields/region/values", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `["EU","US"]`)
}

func createMappedChart(t *testing.T, s *Server, kind string, overrides map[string]any) string {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/api/charts", map[string]any{"kind": kind})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID     string         `json:"id"`
		Config map[string]any `json:"config"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	for k, v := range overrides {
		created.Config[k] = v
	}
	rec = doJSON(t, s, http.MethodPut, "/api/charts/"+created.ID, created.Config)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return created.ID
}

func TestChartDataSampling(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\nEU,30\nAP,40\nUS,50\n")

	id := createMappedChart(t, s, "scatter", map[string]any{
		"data_mapping": map[string]any{"x": "region", "y": "sales"},
		"aggregation":  map[string]any{"enabled": false},
	})

	rec := doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/data?sample=2&method=head", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)

	rec = doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/data?sample=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartColors(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\nEU,30\n")

	id := createMappedChart(t, s, "scatter", map[string]any{
		"data_mapping": map[string]any{"x": "region", "y": "sales", "color": "sales"},
		"aggregation":  map[string]any{"enabled": false},
		"color_scale":  map[string]any{"type": "blues"},
	})

	rec := doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/colors", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Field  string `json:"field"`
		Colors []struct {
			Normalized float64 `json:"normalized"`
			Color      string  `json:"color"`
		} `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sales", resp.Field)
	require.Len(t, resp.Colors, 3)
	assert.Equal(t, "#f7fbff", resp.Colors[0].Color)
	assert.Equal(t, "#08519c", resp.Colors[2].Color)
	assert.Equal(t, 0.5, resp.Colors[1].Normalized)
}

func TestChartColorsWithoutMapping(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\n")

	id := createMappedChart(t, s, "bar", map[string]any{
		"data_mapping": map[string]any{"x": "region", "y": "sales"},
	})
	rec := doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/colors", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestChartHighlightsFollowHover(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "region,sales\nEU,10\nUS,20\nEU,30\n")

	id := createMappedChart(t, s, "bar", map[string]any{
		"data_mapping": map[string]any{"x": "region", "y": "sales"},
	})

	rec := doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/highlights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"indices":[]`)

	rec = doJSON(t, s, http.MethodPost, "/api/charts/"+id+"/events/hover", map[string]any{"data_index": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/highlights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"indices":[0]`)

	rec = doJSON(t, s, http.MethodPost, "/api/charts/"+id+"/events/hover-end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/charts/"+id+"/highlights", nil)
	assert.Contains(t, rec.Body.String(), `"indices":[]`)
}

func TestResetClearsEverything(t *testing.T) {
	s := testServer(t)
	uploadCSV(t, s, "a,b\n1,2\n")

	rec := doJSON(t, s, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/schema", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLinkCharts(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/interactions/link", map[string]any{"chart_ids": []string{"c1", "c2"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "c1")

	rec = doJSON(t, s, http.MethodPost, "/api/interactions/link", map[string]any{"chart_ids": []string{}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"linked":[]`)
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
