// Package upload stores post attachments on disk under a configured
// directory and hands back the public path to record on the post.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tradeboard/internal/httperr"
)

// Store writes uploaded files into Dir and serves them under /uploads.
type Store struct {
	Dir string
}

func New(dir string) *Store { return &Store{Dir: dir} }

// Save stores the single optional multipart file from the named field.
// Returns the public path of the stored file, or "" when the submission
// carried no file (which is not an error). Names combine a millisecond
// timestamp, a random suffix and the original filename so concurrent
// uploads of the same file cannot collide.
func (s *Store) Save(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// no file chosen, or not a multipart form at all
		return "", nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", httperr.NewStorage("could not create upload directory", err)
	}
	name := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", httperr.NewStorage("could not store upload", err)
	}
	return "/uploads/" + name, nil
}
