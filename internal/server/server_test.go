// ABOUTME: HTTP API tests over httptest with in-memory stores
// ABOUTME: Covers generation, parsing, validation, registry and sequence peek

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nainya/lexname/internal/logger"
	"github.com/nainya/lexname/internal/metrics"
	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/document"
	"github.com/nainya/lexname/pkg/filename"
	"github.com/nainya/lexname/pkg/registry"
	"github.com/nainya/lexname/pkg/sequence"
	"github.com/nainya/lexname/pkg/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gen := sequence.NewGenerator(sequence.NewBadgerStore(db))
	srv := NewServer(Config{
		Assembler: filename.NewAssembler(gen, nil),
		Registry:  registry.NewStore(db),
		Sequences: gen,
		Taxonomy:  codes.DefaultTaxonomy(),
		Metrics:   metrics.NewMetrics(prometheus.NewRegistry()),
		Log:       logger.NewLogger(logger.Config{Level: "error", Output: io.Discard}),
	})

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postMetadata(t *testing.T, ts *httptest.Server, meta *document.Metadata) generateResponse {
	t.Helper()

	body, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal metadata: %v", err)
	}
	resp, err := http.Post(ts.URL+"/v1/filenames", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected 201, got %d: %s", resp.StatusCode, raw)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out interface{}) int {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestGenerateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	out := postMetadata(t, ts, &document.Metadata{
		Country:   "BD",
		DocType:   "ACT",
		Year:      1860,
		ActNumber: "XLV",
		Title:     "The Penal Code, 1860",
		Subject:   "CRM",
		Status:    "AMD",
	})

	want := "BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_CRM_AMD_V01_en_0000000000000000.pdf"
	if out.Filename != want {
		t.Errorf("Expected %s, got %s", want, out.Filename)
	}
	if out.FolderHint != "BD/ACT/1851-1900" {
		t.Errorf("Expected folder hint, got %s", out.FolderHint)
	}
	if out.Components == nil || out.Components.GlobalID != "BD00000001" {
		t.Errorf("Expected components with global ID, got %+v", out.Components)
	}
}

func TestGenerateRegistersRecord(t *testing.T) {
	ts := newTestServer(t)

	out := postMetadata(t, ts, &document.Metadata{
		Country: "BD", DocType: "ACT", Year: 1994, Title: "The Companies Act 18 of 1994",
	})

	var rec registry.Record
	status := getJSON(t, ts, "/v1/registry/"+out.Components.GlobalID, &rec)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if rec.Filename != out.Filename {
		t.Errorf("Registry filename mismatch: %s vs %s", rec.Filename, out.Filename)
	}

	var list listResponse
	status = getJSON(t, ts, "/v1/registry?country=BD&year=1994", &list)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if list.Count != 1 {
		t.Errorf("Expected 1 record for BD/1994, got %d", list.Count)
	}
}

func TestGenerateRejectsBadPayload(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/filenames", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestParseEndpoint(t *testing.T) {
	ts := newTestServer(t)

	out := postMetadata(t, ts, &document.Metadata{
		Country: "BD", DocType: "ACT", Year: 1860, ActNumber: "XLV", Title: "The Penal Code, 1860",
	})

	var parsed parseResponse
	status := getJSON(t, ts, "/v1/filenames/"+out.Filename, &parsed)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if parsed.Components.DocNum != "XLV" || parsed.Components.Year != 1860 {
		t.Errorf("Parse mismatch: %+v", parsed.Components)
	}

	if status := getJSON(t, ts, "/v1/filenames/garbage.pdf", nil); status != http.StatusNotFound {
		t.Errorf("Expected 404 for unparseable name, got %d", status)
	}
}

func TestValidateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	bad := "BD00000001_BD_ACT_GEN_1860_XLV_PenalCode_XX_AMD_V01_en_0000000000000000.pdf"
	var out validateResponse
	status := getJSON(t, ts, "/v1/filenames/"+bad+"/validate", &out)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if out.Valid {
		t.Error("Expected invalid result")
	}
	found := false
	for _, e := range out.Errors {
		if strings.Contains(e, "Invalid subject code: XX") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected subject error, got %v", out.Errors)
	}
	if out.Components == nil {
		t.Error("Validation must not discard parsed components")
	}
}

func TestRegistryGetMissing(t *testing.T) {
	ts := newTestServer(t)
	if status := getJSON(t, ts, "/v1/registry/BD99999999", nil); status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
}

func TestRegistryListRequiresParams(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/registry")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestYearlyPeekEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var out yearlyResponse
	status := getJSON(t, ts, "/v1/sequences/yearly?country=BD&category=CAS&year=1998", &out)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if out.Current != 0 {
		t.Errorf("Expected untouched counter, got %d", out.Current)
	}

	// An unreported case draws the yearly sequence.
	postMetadata(t, ts, &document.Metadata{
		Country: "BD", DocType: "CAS", Subtype: "HCD", CaseType: "WP", Year: 1998,
	})

	status = getJSON(t, ts, "/v1/sequences/yearly?country=BD&category=CAS&year=1998", &out)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if out.Current != 1 {
		t.Errorf("Expected counter 1 after unreported case, got %d", out.Current)
	}
}
