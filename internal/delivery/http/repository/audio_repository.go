package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type (
	// AudioRepository stores merged dialogue audio files. The local
	// filesystem is the only persistent state in this service.
	AudioRepository interface {
		Save(filename string, data []byte) error
		Path(filename string) (string, error)
	}

	audioRepository struct {
		dir string
	}
)

func NewAudioRepository(dir string) AudioRepository {
	if dir == "" {
		dir = filepath.Join("static", "audio")
	}
	return &audioRepository{dir: dir}
}

func (r *audioRepository) Save(filename string, data []byte) error {
	if err := validateFilename(filename); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating audio directory: %w", err)
	}
	return os.WriteFile(filepath.Join(r.dir, filename), data, 0o644)
}

func (r *audioRepository) Path(filename string) (string, error) {
	if err := validateFilename(filename); err != nil {
		return "", err
	}
	path := filepath.Join(r.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// validateFilename rejects names that could escape the audio directory.
func validateFilename(filename string) error {
	if filename == "" ||
		filename != filepath.Base(filename) ||
		strings.Contains(filename, "..") {
		return fmt.Errorf("invalid audio filename %q", filename)
	}
	return nil
}
