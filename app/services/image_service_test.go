package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uploadRequest builds a multipart request with one image part so the test
// goes through the same FormFile path the handlers use.
func uploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Write part: %v", err)
	}
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/admin/upload-image", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestSaveStoresFileUnderUploads(t *testing.T) {
	publicDir := t.TempDir()
	svc := NewImageService(publicDir)

	r := uploadRequest(t, "foto.png", "image/png", []byte("fake png bytes"))
	file, header, err := r.FormFile("image")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	defer file.Close()

	path, err := svc.Save(file, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(path, UploadPrefix) {
		t.Errorf("path = %q, want %q prefix", path, UploadPrefix)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path = %q, want .png suffix", path)
	}

	onDisk := filepath.Join(publicDir, filepath.FromSlash(path))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSaveRejectsBadExtensionAndContentType(t *testing.T) {
	svc := NewImageService(t.TempDir())

	cases := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"executable extension", "virus.exe", "image/png"},
		{"mismatched content type", "foto.png", "application/octet-stream"},
		{"no extension", "foto", "image/png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := uploadRequest(t, tc.filename, tc.contentType, []byte("data"))
			file, header, err := r.FormFile("image")
			if err != nil {
				t.Fatalf("FormFile: %v", err)
			}
			defer file.Close()

			if _, err := svc.Save(file, header); !errors.Is(err, ErrInvalidImageType) {
				t.Errorf("err = %v, want ErrInvalidImageType", err)
			}
		})
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	svc := NewImageService(t.TempDir())

	r := uploadRequest(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte("a"), maxImageSize+1))
	file, header, err := r.FormFile("image")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	defer file.Close()

	if _, err := svc.Save(file, header); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestDeleteRemovesOnlyUploadPaths(t *testing.T) {
	publicDir := t.TempDir()
	svc := NewImageService(publicDir)

	uploadDir := filepath.Join(publicDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		t.Fatal(err)
	}
	stored := filepath.Join(uploadDir, "item-x.png")
	if err := os.WriteFile(stored, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	outside := filepath.Join(publicDir, "logo.png")
	if err := os.WriteFile(outside, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	managed := "uploads/item-x.png"
	svc.Delete(&managed)
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Error("managed file still on disk")
	}

	unmanaged := "logo.png"
	svc.Delete(&unmanaged)
	if _, err := os.Stat(outside); err != nil {
		t.Error("file outside uploads/ was removed")
	}

	// Already-deleted files and nil references are fine.
	svc.Delete(&managed)
	svc.Delete(nil)
}
