package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readSeries parses whitespace separated numbers. Blank lines and
// lines starting with # are skipped.
func readSeries(r io.Reader) ([]float64, error) {
	var data []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q", line, field)
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return data, nil
}

// openInput returns stdin for "" and "-", the named file otherwise.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func loadSeries(path string, stdin io.Reader) ([]float64, error) {
	in, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := readSeries(in)
	if err != nil {
		if path == "" || path == "-" {
			path = "stdin"
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
