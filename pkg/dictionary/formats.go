package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the text formats the loaders accept
type FileFormat int

const (
	FormatUnknown     FileFormat = iota
	FormatWordList               // one or more words per line
	FormatHyphenation            // one hyphenated word per line, e.g. Fen-ster
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Word List",
		Extensions:  []string{".txt", ".words"},
		MinSize:     1,
	},
	FormatHyphenation: {
		Format:      FormatHyphenation,
		Description: "Hyphenation List",
		Extensions:  []string{".txt", ".hyph"},
		MinSize:     1,
	},
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	log.Debugf("File %s validated as %s", filename, formatInfo.Description)
	return nil
}

// DetectFileFormat guesses the format from the extension and, for .txt
// files, from whether the first entry contains a hyphen.
func DetectFileFormat(filename string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hyph":
		return FormatHyphenation, nil
	case ".words":
		return FormatWordList, nil
	case ".txt":
	default:
		return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "-") {
			return FormatHyphenation, nil
		}
		return FormatWordList, nil
	}
	if err := scanner.Err(); err != nil {
		return FormatUnknown, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return FormatUnknown, fmt.Errorf("file %s has no entries", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
