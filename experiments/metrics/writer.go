package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

var resultsHeader = []string{"Configuration", "Wins for X", "Wins for O", "Draws", "Average Game Duration"}

// AppendResults appends one row per summary to the CSV log at path, creating
// it with a header row when it does not exist yet.
func AppendResults(path string, summaries ...Summary) error {
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat results file: %w", err)
	}

	if dir := filepath.Dir(path); !exists && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if !exists {
		if err := writer.Write(resultsHeader); err != nil {
			return fmt.Errorf("failed to write results header: %w", err)
		}
	}

	for _, s := range summaries {
		row := []string{
			s.Label,
			strconv.Itoa(s.WinsX),
			strconv.Itoa(s.WinsO),
			strconv.Itoa(s.Draws),
			strconv.FormatFloat(s.AverageDuration().Seconds(), 'f', 6, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write results row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}

// WriteMoveRecords writes per-move metrics of a batch to a new CSV file.
func WriteMoveRecords(path string, records []MoveRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"game", "step", "player", "column", "attempts", "fallback", "duration", "iterations", "playouts", "tree_size"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Attempts),
			strconv.FormatBool(record.Fallback),
			record.Duration.String(),
			strconv.FormatInt(record.Iterations, 10),
			strconv.FormatInt(record.Playouts, 10),
			strconv.Itoa(record.TreeSize),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
