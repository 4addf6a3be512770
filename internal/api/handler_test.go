package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	Register(app)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestAnalyzeRequiresFile(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("POST", "/api/analyze", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=----test")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode == fiber.StatusOK {
		t.Error("expected non-200 for missing file")
	}
}

func uploadTranscript(t *testing.T, app *fiber.App, filename, content string, fields map[string]string) AnalyzeResponse {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var result AnalyzeResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v\nbody: %s", err, raw)
	}
	return result
}

func TestAnalyzeTranscript(t *testing.T) {
	app := setupTestApp()

	transcript := "[SAHAL]\n$50.00 ayaad u dirtay John Doe(\n" +
		"[SAHAL]\nWaxaad $25.00 ka heshay Jane Smith(\n" +
		"[SAHAL]\nsome unknown phrase"

	result := uploadTranscript(t, app, "transcript.txt", transcript, nil)

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	if result.Count != 2 {
		t.Errorf("count: got %d, want 2", result.Count)
	}
	if len(result.Unmatched) != 1 {
		t.Errorf("unmatched: got %d, want 1", len(result.Unmatched))
	}
	if result.BlockCount != 3 {
		t.Errorf("block count: got %d, want 3", result.BlockCount)
	}
	if result.Summary == nil {
		t.Fatal("expected a summary")
	}
	if result.Summary.UniqueContacts != 2 {
		t.Errorf("unique contacts: got %d, want 2", result.Summary.UniqueContacts)
	}
	if result.ContactsCSV == "" {
		t.Error("expected contacts CSV in response")
	}
}

func TestAnalyzeEmptyTranscript(t *testing.T) {
	app := setupTestApp()

	result := uploadTranscript(t, app, "empty.txt", "", nil)
	if !result.Success {
		t.Fatalf("empty transcript should succeed, got error %q", result.Error)
	}
	if result.Count != 0 || len(result.Unmatched) != 0 {
		t.Errorf("expected empty analysis, got count=%d unmatched=%d", result.Count, len(result.Unmatched))
	}
	// Empty result slices must encode as [], not null.
	if result.Transactions == nil {
		t.Error("transactions should be an empty list, not null")
	}
}

func TestAnalyzeRejectsUnsupportedExtension(t *testing.T) {
	app := setupTestApp()

	result := uploadTranscript(t, app, "transcript.docx", "whatever", nil)
	if result.Success {
		t.Error("expected failure for unsupported file type")
	}
}

func TestAnalyzeTopNValidation(t *testing.T) {
	app := setupTestApp()

	result := uploadTranscript(t, app, "t.txt", "[SAHAL]\n$5.00 ayaad u dirtay A(", map[string]string{"top_n": "zero"})
	if result.Success {
		t.Error("expected failure for non-numeric top_n")
	}
}
