package utils

import (
	"path/filepath"
	"strings"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// OutputPath derives the machine-code filename from an assembly source
// path: the .asm extension (any case) becomes .hack, any other
// extension is replaced, and an extensionless path gets .hack appended.
func OutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".hack"
	}
	return strings.TrimSuffix(inPath, ext) + ".hack"
}
