package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// fileRepository stores the cart as an ordered JSON list of order lines.
// Writes go through a temp file plus rename so a crashed write never leaves
// a half-written cart behind.
type fileRepository struct {
	path string
}

func NewFileRepository(path string) CartRepository {
	return &fileRepository{path: path}
}

func (f *fileRepository) Load(_ context.Context) ([]domain.OrderLine, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var lines []domain.OrderLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}
	return lines, nil
}

func (f *fileRepository) Save(_ context.Context, lines []domain.OrderLine) error {
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace cart file: %w", err)
	}
	return nil
}
