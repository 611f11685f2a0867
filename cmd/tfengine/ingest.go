package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/halvard/tfengine"
)

// ingestFile reads a documents file and adds each line's document to
// engine. Each line has the form:
//
//	id<TAB>status<TAB>ratings<TAB>text
//
// ratings is a comma-separated list of integers (may be empty). Blank
// lines and lines starting with '#' are skipped.
func ingestFile(engine *tfengine.Engine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open documents file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, "\t", 4)
		if len(fields) != 4 {
			return fmt.Errorf("documents file %s line %d: expected 4 tab-separated fields, got %d", path, lineNo, len(fields))
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("documents file %s line %d: bad id %q: %w", path, lineNo, fields[0], err)
		}
		status, err := tfengine.ParseStatus(fields[1])
		if err != nil {
			return fmt.Errorf("documents file %s line %d: %w", path, lineNo, err)
		}
		ratings, err := parseRatings(fields[2])
		if err != nil {
			return fmt.Errorf("documents file %s line %d: %w", path, lineNo, err)
		}

		if err := engine.AddDocument(id, fields[3], status, ratings); err != nil {
			return fmt.Errorf("documents file %s line %d: %w", path, lineNo, err)
		}
	}
	return scanner.Err()
}

func parseRatings(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ratings := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad rating %q: %w", p, err)
		}
		ratings = append(ratings, n)
	}
	return ratings, nil
}
