package project

import (
	"os"
	"path/filepath"
)

// ManifestName — имя манифеста пакета.
const ManifestName = "hel.toml"

// FindHelToml ищет hel.toml, поднимаясь от startDir к корню файловой системы.
// Возвращает путь к манифесту и флаг найденности.
func FindHelToml(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}

	for {
		candidate := filepath.Join(dir, ManifestName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", false, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
