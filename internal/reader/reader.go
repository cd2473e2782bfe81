// Package reader provides the file-side helpers around an awk run: header
// extraction, a numbered preview and separator detection.
//
// Only the first lines of a file are ever read; the file itself is handed to
// awk for processing.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/vegasq/awkstudio/internal/awk"
)

// DefaultPreviewLines is the number of lines shown by Preview when n <= 0
const DefaultPreviewLines = 10

// detectable lists the separators DetectSeparator looks for
const detectable = ",;|:"

const utf8BOM = "\uFEFF"

// Reader reads a delimited text file line by line.
//
// It owns the OS file handle; call Close when done.
type Reader struct {
	file *os.File
	buf  *bufio.Reader
	line int
}

// NewReader opens the file at path for reading.
//
// Example:
//
//	r, err := NewReader("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "failed to stat file")
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, errors.Errorf("%s is a directory", path)
	}

	return &Reader{
		file: file,
		buf:  bufio.NewReader(file),
	}, nil
}

// ReadLine returns the next line without its line terminator. It returns
// io.EOF once no data is left.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.buf.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read line")
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", io.EOF
	}

	r.line++
	line = strings.TrimRight(line, "\r\n")
	if r.line == 1 {
		line = strings.TrimPrefix(line, utf8BOM)
	}
	return line, nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// firstLine returns the first line of the file, or "" for an empty file
func firstLine(path string) (string, error) {
	r, err := NewReader(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()

	line, err := r.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return line, err
}

// ReadHeader returns the field names of the first record.
//
// The line is split on sep, or on runs of whitespace for awk.Whitespace.
// An empty file yields no fields.
func ReadHeader(path string, sep awk.Separator) ([]string, error) {
	line, err := firstLine(path)
	if err != nil {
		return nil, err
	}
	return SplitRecord(line, sep), nil
}

// SplitRecord splits one record the way awk does for sep
func SplitRecord(line string, sep awk.Separator) []string {
	if sep == awk.Whitespace {
		return strings.Fields(line)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return []string{}
	}
	return strings.Split(line, string(sep))
}

// Preview returns the first n lines of the file numbered from 1.
// Fewer lines are returned when the file is shorter.
func Preview(path string, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultPreviewLines
	}

	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	lines := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("%3d | %s", i, line))
	}
	return lines, nil
}

// DetectSeparator guesses the separator from the first line.
//
// The most frequent of , ; | : wins, ties going to the character seen first.
// awk.Whitespace is returned when none of them occurs.
func DetectSeparator(path string) (awk.Separator, error) {
	line, err := firstLine(path)
	if err != nil {
		return awk.Whitespace, err
	}
	return detectInLine(line), nil
}

func detectInLine(line string) awk.Separator {
	counts := make(map[rune]int)
	var order []rune
	for _, r := range line {
		if !strings.ContainsRune(detectable, r) {
			continue
		}
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	best := awk.Whitespace
	bestCount := 0
	for _, r := range order {
		if counts[r] > bestCount {
			best, bestCount = awk.Separator(string(r)), counts[r]
		}
	}
	return best
}
