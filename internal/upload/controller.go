package upload

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sheet-template-api/internal/apperr"
	"sheet-template-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	MaxUploadSize = 10 << 20
	// multipart framing on top of the file itself
	multipartOverhead = 1 << 20
)

type UploadController struct {
	UploadService *UploadService
	UploadsDir    string
}

func (uc *UploadController) UploadFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(apperr.Validation("File too large. Maximum size is 10MB"))
			return
		}
		_ = c.Error(apperr.Validation("No file uploaded"))
		return
	}

	if fh.Size > MaxUploadSize {
		_ = c.Error(apperr.Validation("File too large. Maximum size is 10MB"))
		return
	}

	mime := util.MimeFromFilenameOrMime(fh.Filename, fh.Header.Get("Content-Type"))
	if !util.IsSpreadsheetMime(mime) {
		_ = c.Error(apperr.Validation("Only Excel files are allowed"))
		return
	}

	if err := os.MkdirAll(uc.UploadsDir, 0o755); err != nil {
		_ = c.Error(apperr.Upstream("Failed to store uploaded file", err))
		return
	}

	dst := filepath.Join(uc.UploadsDir, storedName(fh.Filename))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		_ = c.Error(apperr.Upstream("Failed to store uploaded file", err))
		return
	}
	defer os.Remove(dst)

	ctx := c.Request.Context()
	result, err := uc.UploadService.ProcessExcelFile(ctx, dst, fh.Filename)
	if err != nil {
		_ = c.Error(err)
		return
	}
	uc.UploadService.ArchiveUpload(ctx, dst, fh.Filename)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"fileName":   result.FileName,
		"components": result.Components,
	})
}

// storedName gives every upload a unique on-disk name that keeps the
// original extension.
func storedName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%s%s", uuid.NewString(), util.SanitizePart(util.StripExtension(filepath.Base(original))), ext)
}
