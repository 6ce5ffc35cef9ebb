package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"sheet-template-api/internal/util"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

type Archiver interface {
	Archive(ctx context.Context, localPath, originalFileName string) (string, error)
}

var newGCSClientHook = func(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

// GCSArchiver copies uploaded workbooks to uploads/<uuid>-<name> in Bucket.
type GCSArchiver struct {
	Bucket string
}

func (a *GCSArchiver) Archive(ctx context.Context, localPath, originalFileName string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	client, err := newGCSClientHook(ctx)
	if err != nil {
		return "", fmt.Errorf("gcs client: %w", err)
	}
	defer client.Close()

	objectName := util.UploadObjectName(uuid.NewString(), originalFileName)
	w := client.Bucket(a.Bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = util.MimeFromFilenameOrMime(originalFileName, "")

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", objectName, err)
	}

	return util.GCSURL(a.Bucket, objectName), nil
}
