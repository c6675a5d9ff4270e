package projects

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxSignImageBytes int64 = 5 * 1024 * 1024

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

func validateSignImage(file *multipart.FileHeader) error {
	if file.Size > maxSignImageBytes {
		return errors.New("sign image must not exceed 5MB")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return errors.New("sign image must be a jpg, jpeg, png or gif file")
	}
	return nil
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// saveSignImage stores the uploaded file under a fresh uuid name and
// returns the stored path.
func saveSignImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := validateSignImage(file); err != nil {
		return "", err
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	dest := filepath.Join(dir, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// removeSignImage deletes a previously stored file, ignoring the case
// where it is already gone.
func removeSignImage(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
