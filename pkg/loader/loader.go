package loader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Loader reads the raw sales file and splits it into data lines.
// Decoding walks a chain of candidate encodings; the file header and blank
// lines are dropped. A missing input file is not an error: the pipeline
// continues with zero records.
type Loader struct {
	encodings []string
	logger    *log.Logger
}

func New(encodings []string, logger *log.Logger) *Loader {
	return &Loader{
		encodings: encodings,
		logger:    logger,
	}
}

// ReadLines returns the data lines of the file at path, header excluded.
func (l *Loader) ReadLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("input file not found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var lines []string
	for i, line := range strings.Split(l.decode(raw), "\n") {
		if i == 0 {
			// header row
			continue
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// decode tries each configured encoding in order and falls back to replacing
// undecodable bytes rather than failing the whole read.
func (l *Loader) decode(raw []byte) string {
	for _, name := range l.encodings {
		switch strings.ToLower(name) {
		case "utf-8", "utf8":
			if utf8.Valid(raw) {
				return string(raw)
			}
			l.logger.Debug("input is not valid utf-8, trying next encoding")
		case "latin-1", "latin1", "iso-8859-1":
			decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
			if err == nil {
				return string(decoded)
			}
			l.logger.Debug("latin-1 decode failed", "error", err)
		case "utf-16", "utf16":
			decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(raw)
			if err == nil {
				return string(decoded)
			}
			l.logger.Debug("utf-16 decode failed", "error", err)
		default:
			l.logger.Debug("unknown encoding in chain", "encoding", name)
		}
	}

	l.logger.Warn("no configured encoding decoded the input, replacing bad bytes")
	return strings.ToValidUTF8(string(raw), "�")
}
