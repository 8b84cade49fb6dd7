package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

const DefaultsFile = "variants.yaml"

//go:embed default-variants.yaml
var defaultVariants []byte

// DefaultVariants returns the embedded built-in configuration.
func DefaultVariants() []byte { return defaultVariants }

// WriteDefaultVariantsIfMissing writes variants.yaml to targetDir if it does not exist.
func WriteDefaultVariantsIfMissing(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	p := filepath.Join(targetDir, DefaultsFile)
	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(p, defaultVariants, 0o644)
}
