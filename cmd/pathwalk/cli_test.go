package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathwalk/gridgraph"
	"github.com/katalvlaran/pathwalk/walker"
)

// resetWalkFlags restores the walk command's flag globals to their defaults.
func resetWalkFlags() {
	walkWidth, walkHeight = 10, 10
	walkStart, walkEnd = pointFlag{}, pointFlag{}
	walkExponent, walkPace = walker.DefaultExponent, walker.DefaultStepPace
	walkBias = walker.BiasLinear
	walkMaxSteps, walkSeed, walkFill = 0, 0, 1
	walkRender, walkJSON = false, false
}

func captureCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("3,7")
	require.NoError(t, err)
	require.Equal(t, gridgraph.Pt(3, 7), p)

	p, err = parsePoint(" 0 , 12 ")
	require.NoError(t, err)
	require.Equal(t, gridgraph.Pt(0, 12), p)

	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		_, err := parsePoint(bad)
		require.Error(t, err, "input %q", bad)
	}

	var f pointFlag
	require.Equal(t, "", f.String())
	require.NoError(t, f.Set("4,5"))
	require.Equal(t, "4,5", f.String())
	require.Equal(t, "x,y", f.Type())
}

func TestWalkCmd_Text(t *testing.T) {
	logger = zap.NewNop()
	resetWalkFlags()
	defer resetWalkFlags()

	require.NoError(t, walkStart.Set("0,0"))
	require.NoError(t, walkEnd.Set("9,9"))
	walkSeed = 42
	walkRender = true

	cmd, buf := captureCmd()
	require.NoError(t, runWalk(cmd, nil))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "start (0,0) end (9,9) budget 22 "), out)
	require.Contains(t, out, "Legend:")
	require.Contains(t, out, "- #: 1 path")
}

func TestWalkCmd_JSON(t *testing.T) {
	logger = zap.NewNop()
	resetWalkFlags()
	defer resetWalkFlags()

	walkWidth, walkHeight = 15, 8
	walkSeed = 3
	walkJSON = true

	cmd, buf := captureCmd()
	require.NoError(t, runWalk(cmd, nil))

	var res walkOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.NotEmpty(t, res.Path)
	require.Equal(t, res.Start, res.Path[0])
	require.Equal(t, len(res.Path)-1, res.Stats.Steps)

	g, _ := gridgraph.NewGrid(8, 15)
	require.NoError(t, res.Path.Validate(g))
}

func TestWalkCmd_Errors(t *testing.T) {
	logger = zap.NewNop()
	defer resetWalkFlags()

	resetWalkFlags()
	require.NoError(t, walkStart.Set("0,0"))
	cmd, _ := captureCmd()
	require.Error(t, runWalk(cmd, nil), "start without end")

	resetWalkFlags()
	walkExponent = -1
	require.ErrorIs(t, runWalk(cmd, nil), walker.ErrBadExponent)

	resetWalkFlags()
	walkBias = "zigzag"
	require.ErrorIs(t, runWalk(cmd, nil), walker.ErrUnknownBias)

	resetWalkFlags()
	walkWidth = 0
	require.ErrorIs(t, runWalk(cmd, nil), gridgraph.ErrEmptyGrid)

	resetWalkFlags()
	require.NoError(t, walkStart.Set("0,0"))
	require.NoError(t, walkEnd.Set("9,9"))
	walkMaxSteps = 2
	require.ErrorIs(t, runWalk(cmd, nil), walker.ErrNotConverged)
}

func TestPaintCmd(t *testing.T) {
	logger = zap.NewNop()
	defer func() { paintConfig, paintJSON = "", false }()

	dir := t.TempDir()
	paintConfig = filepath.Join(dir, "map.yaml")
	plan := `
width: 20
height: 10
seed: 4
legend: {1: "=", 2: "~"}
features:
  - name: road
    fill: 1
    start: [0, 5]
    end: [19, 5]
  - name: river
    fill: 2
    count: 2
`
	require.NoError(t, os.WriteFile(paintConfig, []byte(plan), 0o644))

	cmd, buf := captureCmd()
	require.NoError(t, runPaint(cmd, nil))
	out := buf.String()
	require.Contains(t, out, "- =: 1 road")
	require.Contains(t, out, "- road #0 (fill 1): (0,5) -> (19,5)")
	require.Equal(t, 2, strings.Count(out, "- river #"))

	paintJSON = true
	cmd, buf = captureCmd()
	require.NoError(t, runPaint(cmd, nil))
	var res struct {
		Features []struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res.Features, 3)
	require.NotEmpty(t, res.Features[0].ID)

	paintConfig = filepath.Join(dir, "missing.yaml")
	require.Error(t, runPaint(cmd, nil))
}

func TestSampleCmd(t *testing.T) {
	defer func() {
		sampleWidth, sampleHeight = 10, 10
		sampleSeed, sampleExponent = walker.DefaultSeed, walker.DefaultExponent
	}()
	sampleWidth, sampleHeight, sampleExponent = 12, 6, walker.DefaultExponent

	run := func(seed int64) string {
		sampleSeed = seed
		cmd, buf := captureCmd()
		require.NoError(t, runSample(cmd, nil))
		return buf.String()
	}
	require.Equal(t, run(walker.DefaultSeed), run(0), "seed 0 must map to the default seed")

	sampleExponent = math.NaN()
	cmd, _ := captureCmd()
	require.ErrorIs(t, runSample(cmd, nil), walker.ErrBadExponent)
}

func TestSampleCmd_ViaRoot(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"sample", "--width", "12", "--height", "6", "--seed", "8"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "start "))
	require.True(t, strings.HasPrefix(lines[1], "end "))

	// "start (x,y) on <edge> edge"
	se := strings.Fields(lines[0])[3]
	ee := strings.Fields(lines[1])[3]
	require.NotEqual(t, se, ee, "endpoints must sit on different edges")
}
