package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the route under which stored files are served.
const URLPrefix = "/uploads"

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("only jpg, jpeg and png files are allowed")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Store saves uploaded images under a single directory and hands out the
// relative paths they are served from.
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Save validates the upload (extension whitelist, size cap, content sniff)
// and writes it under a random name. It returns the relative URL path the
// file is served from.
func (s *Store) Save(header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Sniff the leading bytes: the extension alone is not trusted.
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if !strings.HasPrefix(http.DetectContentType(buf[:n]), "image/") {
		return "", ErrUnsupportedType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(out.Name())
		return "", err
	}

	return path.Join(URLPrefix, name), nil
}

// Remove deletes a previously stored file best-effort; callers never treat a
// leftover file as a failure.
func (s *Store) Remove(relPath string) {
	name := path.Base(relPath)
	if name == "." || name == "/" {
		return
	}
	os.Remove(filepath.Join(s.dir, name))
}

// Dir returns the directory files are stored in, for static serving.
func (s *Store) Dir() string {
	return s.dir
}
