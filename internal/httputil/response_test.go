package httputil

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSONSetsHeadersAndStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"Created", http.StatusCreated},
		{"BadRequest", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			WriteJSON(recorder, tt.statusCode, map[string]string{"key": "value"})
			if recorder.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, recorder.Code)
			}
			if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}
		})
	}
}

func TestWriteJSONEncodesStructBody(t *testing.T) {
	type card struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	recorder := httptest.NewRecorder()
	WriteJSON(recorder, http.StatusOK, card{ID: "sakura-cafe", Title: "Sakura Café"})

	var decoded card
	if err := json.NewDecoder(recorder.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if decoded.ID != "sakura-cafe" || decoded.Title != "Sakura Café" {
		t.Errorf("unexpected body %+v", decoded)
	}
}

func TestWriteErrorProducesCorrectJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	WriteError(recorder, http.StatusNotFound, "card not found")

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}
	var decoded ErrorBody
	if err := json.NewDecoder(recorder.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if decoded.Error != "card not found" {
		t.Errorf("expected error=card not found, got %s", decoded.Error)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Reason string `json:"reason"`
	}
	tests := []struct {
		name    string
		body    string
		max     int64
		wantErr bool
	}{
		{"valid", `{"reason":"blocked"}`, 1024, false},
		{"malformed", `{"reason":`, 1024, true},
		{"trailing data", `{"reason":"a"}{"reason":"b"}`, 1024, true},
		{"too large", `{"reason":"` + strings.Repeat("x", 100) + `"}`, 32, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := DecodeJSON(strings.NewReader(tt.body), tt.max, &p)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRenderHTMLWritesPage(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`<h1>{{.}}</h1>`))
	recorder := httptest.NewRecorder()

	RenderHTML(recorder, http.StatusOK, tmpl, "<StoryBite>")

	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("expected html content type, got %s", ct)
	}
	if body := recorder.Body.String(); body != "<h1>&lt;StoryBite&gt;</h1>" {
		t.Errorf("expected escaped body, got %q", body)
	}
}

func TestRenderHTMLFailureWritesNoPartialPage(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`<h1>start</h1>{{.Missing.Field}}`))
	recorder := httptest.NewRecorder()

	RenderHTML(recorder, http.StatusOK, tmpl, struct{ Missing *struct{ Field string } }{})

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "<h1>start</h1>") {
		t.Error("expected no partial page output")
	}
}
