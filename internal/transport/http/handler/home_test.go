package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadSuccess(t *testing.T) {
	store := newFakeStore()
	completer := &fakeCompleter{reply: "a fine summary"}
	router := newTestRouter(store, completer, &fakeMailer{})

	body, contentType := multipartUpload(t, []byte("hello transcript"), "summarize briefly", true)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302 redirect, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.created != 1 {
		t.Fatalf("Expected exactly one record, got %d", store.created)
	}

	stored := store.transcripts["t-1"]
	if stored == nil {
		t.Fatal("Expected record t-1 to exist")
	}
	if stored.OriginalText != "hello transcript" {
		t.Errorf("Expected decoded file content stored, got %q", stored.OriginalText)
	}
	if stored.SummaryText != "a fine summary" {
		t.Errorf("Expected generator output stored, got %q", stored.SummaryText)
	}

	location := rec.Header().Get("Location")
	if location != "/summary/t-1/" {
		t.Errorf("Expected redirect to view page, got %q", location)
	}
}

func TestUploadMissingFile(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeCompleter{reply: "x"}, &fakeMailer{})

	body, contentType := multipartUpload(t, nil, "summarize", false)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected rendered error page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please upload a transcript file.") {
		t.Errorf("Expected missing-file error, got %q", rec.Body.String())
	}
	if store.created != 0 {
		t.Errorf("Expected no record, got %d", store.created)
	}
}

func TestUploadInvalidUTF8(t *testing.T) {
	store := newFakeStore()
	completer := &fakeCompleter{reply: "x"}
	router := newTestRouter(store, completer, &fakeMailer{})

	body, contentType := multipartUpload(t, []byte{0xff, 0xfe, 0xfd}, "summarize", true)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected rendered error page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid file format. Please upload a valid text file.") {
		t.Errorf("Expected invalid-format error, got %q", rec.Body.String())
	}
	if store.created != 0 {
		t.Errorf("Expected no record, got %d", store.created)
	}
	if completer.calls != 0 {
		t.Errorf("Expected no generation call, got %d", completer.calls)
	}
}

func TestUploadGenerationFailure(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, &fakeCompleter{err: errors.New("model overloaded")}, &fakeMailer{})

	body, contentType := multipartUpload(t, []byte("transcript"), "summarize", true)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected rendered error page instead of redirect, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "API Error:") {
		t.Errorf("Expected API error message, got %q", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "model overloaded") {
		t.Errorf("Raw provider error leaked into page: %q", rec.Body.String())
	}
	if store.created != 0 {
		t.Errorf("Expected no record on generation failure, got %d", store.created)
	}
}

func TestHomePage(t *testing.T) {
	router := newTestRouter(newFakeStore(), &fakeCompleter{}, &fakeMailer{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}
