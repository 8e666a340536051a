package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// UploadPrefix is the path prefix every stored image reference carries.
	// Only paths under it are ever deleted from disk.
	UploadPrefix = "uploads/"

	maxImageSize = 5 << 20 // 5 MiB
)

var (
	ErrInvalidImageType = errors.New("yalnızca resim dosyaları yüklenebilir (jpg, jpeg, png, gif, webp)")
	ErrImageTooLarge    = errors.New("resim dosyası 5 MB sınırını aşıyor")
)

var allowedImageTypes = map[string][]string{
	".jpg":  {"image/jpeg", "image/jpg"},
	".jpeg": {"image/jpeg", "image/jpg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
}

// ImageService owns the upload directory. A record references at most one
// live file at a time: the previous file is removed from disk before a new
// path is recorded.
type ImageService struct {
	publicDir string
}

func NewImageService(publicDir string) *ImageService {
	return &ImageService{publicDir: publicDir}
}

// Save validates and stores an uploaded image, returning its relative path
// ("uploads/<name>"). Both the extension and the declared content type must
// name an accepted image format.
func (s *ImageService) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > maxImageSize {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	accepted, ok := allowedImageTypes[ext]
	if !ok {
		return "", ErrInvalidImageType
	}
	declared := header.Header.Get("Content-Type")
	typeOK := false
	for _, t := range accepted {
		if declared == t {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return "", ErrInvalidImageType
	}

	uploadDir := filepath.Join(s.publicDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("image: create upload dir: %w", err)
	}

	name := "item-" + uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("image: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, maxImageSize+1)); err != nil {
		return "", fmt.Errorf("image: write file: %w", err)
	}

	return UploadPrefix + name, nil
}

// Delete removes the referenced file from disk when the path lives under the
// upload prefix. A missing file counts as already deleted.
func (s *ImageService) Delete(image *string) {
	if image == nil || !strings.HasPrefix(*image, UploadPrefix) {
		return
	}
	path := filepath.Join(s.publicDir, filepath.FromSlash(*image))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("image: could not remove %s: %v", path, err)
	}
}
