package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// resolveInputPath returns the first positional argument, or prompts on in for
// a path when none was given
func resolveInputPath(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	fmt.Fprint(out, "Enter markdown file path: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input path: %w", err)
	}

	path := cleanPath(line)
	if path == "" {
		return "", errors.New("no markdown file path provided")
	}
	return path, nil
}

// cleanPath strips whitespace and the quotes terminals add to dragged-in paths
func cleanPath(raw string) string {
	path := strings.TrimSpace(raw)
	if len(path) >= 2 {
		first, last := path[0], path[len(path)-1]
		if (first == '"' || first == '\'') && first == last {
			path = strings.TrimSpace(path[1 : len(path)-1])
		}
	}
	return path
}
