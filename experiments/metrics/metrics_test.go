package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes and cutoffs per search", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddCutoff()

		got := c.Complete(7)

		require.Equal(t, 3, got.Depth)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 7, got.Value)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddNode()
		c.Start(2)

		require.Equal(t, 0, c.Complete(0).Nodes)
	})

	t.Run("dummy collector only keeps the value", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddNode()

		require.Equal(t, SearchMetric{Value: -2}, c.Complete(-2))
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 2}, {ID: 2, Random: true}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{Winner: "black", TotalMoves: 40}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, SearchMetric: SearchMetric{Depth: 2, Nodes: 49}}}}))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return records
	}

	configs := read("agent_configs.csv")
	require.Len(t, configs, 3, "Header plus one row per agent")
	require.Equal(t, []string{"2", "0", "0", "true"}, configs[2])

	games := read("game_records.csv")
	require.Equal(t, "black", games[1][4])
	require.Equal(t, "40", games[1][8])

	moves := read("move_records.csv")
	require.Equal(t, "49", moves[1][5])
}

func TestWriterReportsFailures(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "depth")
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(w.Dir()))

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 1}})

	require.ErrorContains(t, err, "agent_configs.csv")
}
