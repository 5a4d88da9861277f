package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/habitflow/habitflow-cli/internal/models"
)

// MaxAttachmentSize caps inline attachments; the whole document is held in
// memory and written on every mutation.
const MaxAttachmentSize = 2 << 20

// LoadAttachment reads a file into an inline note attachment.
func LoadAttachment(path string) (models.Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("failed to read attachment: %w", err)
	}
	if info.Size() > MaxAttachmentSize {
		return models.Attachment{}, fmt.Errorf("attachment %s is too large (%d bytes, max %d)", path, info.Size(), MaxAttachmentSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("failed to read attachment: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return models.Attachment{
		Name:       filepath.Base(path),
		Type:       mimeType,
		Size:       info.Size(),
		Data:       base64.StdEncoding.EncodeToString(data),
		UploadedAt: time.Now(),
	}, nil
}
