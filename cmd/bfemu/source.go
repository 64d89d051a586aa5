package main

import (
	"fmt"
	"io"
	"os"
)

// loadSource reads the whole program text from path, or from stdin when path
// is empty.
func loadSource(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
