package staticfiles

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestHandler_ServesFileFromRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/hello.txt", nil)
	Handler(dir).ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "hello" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}
