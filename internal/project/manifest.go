package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest описывает содержимое hel.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config — разобранный TOML манифеста.
type Config struct {
	Package PackageConfig `toml:"package"`
}

// PackageConfig — секция [package].
type PackageConfig struct {
	Name string `toml:"name"`
	Root string `toml:"root"` // относительный путь к корневому файлу, по умолчанию main.hel
}

// LoadManifest читает и валидирует hel.toml по указанному пути.
func LoadManifest(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Package.Root == "" {
		cfg.Package.Root = "main.hel"
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// RootFile возвращает путь к корневому файлу пакета: директория манифеста
// плюс [package].root (абсолютный, если абсолютен путь к манифесту).
func (m *Manifest) RootFile() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Package.Root))
}
