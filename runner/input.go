package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// FileNamer maps a day to the input file name inside the data directory.
type FileNamer func(day int) string

// PlainDayFile names inputs day1.txt … day25.txt.
func PlainDayFile(day int) string { return fmt.Sprintf("day%d.txt", day) }

// PaddedDayFile names inputs day01.txt … day25.txt.
func PaddedDayFile(day int) string { return fmt.Sprintf("day%02d.txt", day) }

// InputPath joins dir and the name produced by name (PlainDayFile if nil).
func InputPath(dir string, day int, name FileNamer) string {
	if name == nil {
		name = PlainDayFile
	}

	return filepath.Join(dir, name(day))
}

// ReadInput reads the whole file at path as UTF-8 text.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrInputRead, path)
	}

	return string(data), nil
}
