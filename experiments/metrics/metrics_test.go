package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connect4/game"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	t.Run("counting outcomes and durations", func(t *testing.T) {
		s := Summary{Label: "test"}
		s.Add(GameMetric{Winner: game.X, Duration: time.Second})
		s.Add(GameMetric{Winner: game.O, Duration: 2 * time.Second})
		s.Add(GameMetric{Winner: game.Draw, Duration: 3 * time.Second})

		require.Equal(t, 3, s.Games)
		require.Equal(t, 1, s.WinsX)
		require.Equal(t, 1, s.WinsO)
		require.Equal(t, 1, s.Draws)
		require.Equal(t, 2*time.Second, s.AverageDuration())
	})

	t.Run("averaging an empty batch to zero", func(t *testing.T) {
		require.Zero(t, Summary{}.AverageDuration())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestAppendResults(t *testing.T) {
	summary := Summary{Label: "RandomAgent vs MCTSAgent, 100 iterations", Games: 2, WinsX: 1, WinsO: 1, TotalDuration: time.Second}

	t.Run("writing the header once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results", "agents.csv")
		require.NoError(t, AppendResults(path, summary))
		require.NoError(t, AppendResults(path, summary))

		rows := readCSV(t, path)
		require.Len(t, rows, 3)
		require.Equal(t, resultsHeader, rows[0])
		require.Equal(t, []string{summary.Label, "1", "1", "0", "0.500000"}, rows[1])
		require.Equal(t, rows[1], rows[2])
	})
}

func TestWriteMoveRecords(t *testing.T) {
	t.Run("writing one row per move", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "moves.csv")
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 0, Player: game.X, Column: 3, Attempts: 1, Iterations: 100, Playouts: 100, TreeSize: 101}},
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.O, Column: 0, Attempts: 3, Fallback: true}},
		}
		require.NoError(t, WriteMoveRecords(path, records))

		rows := readCSV(t, path)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "0", "X", "3", "1", "false", "0s", "100", "100", "101"}, rows[1])
		require.Equal(t, "true", rows[2][5])
	})
}

func TestWriteChart(t *testing.T) {
	t.Run("rendering every configuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.html")
		summaries := []Summary{
			{Label: "HeuristicAgent vs MCTSAgent, 100 iterations", WinsX: 3, WinsO: 6, Draws: 1},
			{Label: "MCTSAgent vs HeuristicAgent, 100 iterations", WinsX: 7, WinsO: 2, Draws: 1},
		}
		require.NoError(t, WriteChart(path, summaries))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		html := string(content)
		require.True(t, strings.Contains(html, "Agent performance"))
		require.Contains(t, html, "Wins for X")
	})
}
