package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

var encodings = []string{"utf-8", "latin-1", "utf-16"}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestReadLinesSkipsHeaderAndBlanks(t *testing.T) {
	content := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n" +
		"T1|2024-01-01|P101|Mouse|2|500|C1|North\n" +
		"\n" +
		"   \n" +
		"T2|2024-01-01|P102|Keyboard|1|1500|C2|South\n"

	l := New(encodings, log.Default())
	lines, err := l.ReadLines(writeFile(t, []byte(content)))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 data lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "T1|") || !strings.HasPrefix(lines[1], "T2|") {
		t.Errorf("Unexpected lines: %v", lines)
	}
}

func TestReadLinesLatin1Fallback(t *testing.T) {
	// 0xE9 is é in latin-1 and invalid on its own in utf-8.
	content := []byte("Header\nT1|2024-01-01|P101|Caf\xe9|2|500|C1|North\n")

	l := New(encodings, log.Default())
	lines, err := l.ReadLines(writeFile(t, content))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	if len(lines) != 1 {
		t.Fatalf("Expected 1 data line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Café") {
		t.Errorf("Expected latin-1 fallback decoding, got %q", lines[0])
	}
}

func TestReadLinesCRLF(t *testing.T) {
	content := "Header\r\nT1|2024-01-01|P101|Mouse|2|500|C1|North\r\n"

	l := New(encodings, log.Default())
	lines, err := l.ReadLines(writeFile(t, []byte(content)))
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}

	if len(lines) != 1 || strings.HasSuffix(lines[0], "\r") {
		t.Errorf("Expected carriage returns stripped, got %q", lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	l := New(encodings, log.Default())
	lines, err := l.ReadLines(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("Missing file should not be an error, got %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no lines for missing file, got %v", lines)
	}
}
