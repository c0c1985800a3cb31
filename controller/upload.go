package controller

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// maxUploadSize caps image uploads at 1 MiB.
const maxUploadSize = 1 << 20

// Upload accepts a multipart image (JPEG or PNG only) and stores it under
// the upload directory with a fresh name. The response carries the stored
// path for use as a tweet's image reference.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File too large or malformed upload"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	// Sniff the real content type; the client-supplied header is not trusted.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		writeError(w, err)
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	if contentType != "image/jpeg" && contentType != "image/png" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Only JPEG and PNG images are allowed"})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, err)
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		writeError(w, err)
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		if contentType == "image/png" {
			ext = ".png"
		} else {
			ext = ".jpg"
		}
	}
	path := filepath.Join(h.uploadDir, uuid.NewString()+ext)

	out, err := os.Create(path)
	if err != nil {
		writeError(w, err)
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":  "File uploaded successfully",
		"filePath": path,
	})
}
