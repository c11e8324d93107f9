package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateDirectoryPath validates that a directory path exists
func ValidateDirectoryPath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", path)
		}
		return fmt.Errorf("error accessing directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	if Contains([]string{"text", "json", "yaml"}, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateBlockName validates a block name
func ValidateBlockName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("block name cannot be empty")
	}

	invalidChars := []string{"/", "\\", "..", "~", "$", "`"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("block name contains invalid character: %s", char)
		}
	}

	return nil
}

// ParseRecordNumber turns a 1-based record number into an index into a
// collection of length n
func ParseRecordNumber(s string, n int) (int, error) {
	num, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid testimonial number %q", s)
	}
	if num < 1 || num > n {
		if n == 0 {
			return 0, fmt.Errorf("testimonial %d does not exist (block is empty)", num)
		}
		return 0, fmt.Errorf("testimonial %d does not exist (have 1-%d)", num, n)
	}
	return num - 1, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
