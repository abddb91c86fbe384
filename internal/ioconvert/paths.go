package ioconvert

import (
	"os"
	"path/filepath"
	"strings"
)

// OutputPath returns the path of the taxonomy table. Unless an explicit
// path is given, the table is placed next to the input as
// <input-basename>_info.txt.
func OutputPath(inputPath, explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"_info.txt")
}

// OtherNamesPath returns the path of the other names table. Unless an
// explicit path is given, "_OtherNames" is inserted before the extension
// of the taxonomy table path.
func OtherNamesPath(outputPath, explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "_OtherNames" + ext
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
