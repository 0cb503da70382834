package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/log"
	"github.com/shadeworks/shade/internal/paths"
)

// ReadLines returns the raw lines of ~/.shaderc. A missing or empty file is
// created and seeded with the visible default keys.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = seedLines()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// WriteLines replaces ~/.shaderc atomically: the lines go to a temp file in
// the same directory which is synced and renamed over the original.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(configPath), ".shaderc.tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return err
	}

	success = true
	return nil
}

// seedLines renders the commented template written on first use.
func seedLines() []string {
	lines := []string{
		"# shade configuration",
		"# Edit values below or use: shade config set <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		value := DefaultValue(key.Name)
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
