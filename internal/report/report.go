// Package report summarizes a finished generation run for the headless CLI.
package report

import (
	"errors"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Faultbox/terragen/internal/pipeline"
)

// ErrIncomplete is returned when summarizing a run that has not finished.
var ErrIncomplete = errors.New("generation not complete")

var json = jsoniter.Config{
	IndentionStep:           2,
	MarshalFloatWith6Digits: true,
	EscapeHTML:              false,
	SortMapKeys:             true,
}.Froze()

// Report is the JSON summary of one run.
type Report struct {
	Seed      uint64   `json:"seed"`
	Size      int      `json:"size"`
	UnitSize  float32  `json:"unit_size"`
	Stages    []string `json:"stages"`
	Ticks     int      `json:"ticks"`
	ElapsedMS int64    `json:"elapsed_ms"`

	Height HeightStats `json:"height"`
	Mesh   MeshStats   `json:"mesh"`
}

// HeightStats describes the raw heightmap.
type HeightStats struct {
	Min           float32 `json:"min"`
	Max           float32 `json:"max"`
	Mean          float32 `json:"mean"`
	WaterFraction float32 `json:"water_fraction"`
}

// MeshStats describes the built mesh.
type MeshStats struct {
	Vertices   int        `json:"vertices"`
	Triangles  int        `json:"triangles"`
	Degenerate int        `json:"degenerate"`
	BoundsMin  [3]float32 `json:"bounds_min"`
	BoundsMax  [3]float32 `json:"bounds_max"`
}

// Build summarizes a finished pipeline. waterLine is the normalized height
// at or below which a cell counts as water.
func Build(p *pipeline.Pipeline, ticks int, elapsed time.Duration, waterLine float32) (Report, error) {
	mesh := p.Mesh()
	if !p.Done() || mesh == nil {
		return Report{}, ErrIncomplete
	}

	s := p.Settings()
	hf := p.Heightmap()

	var sum float64
	var water int
	for v := range hf.Values() {
		sum += float64(v)
	}
	for v := range hf.Normalized() {
		if v <= waterLine {
			water++
		}
	}

	n := float32(hf.Len())
	return Report{
		Seed:      p.Seed(),
		Size:      s.Terrain.Size,
		UnitSize:  s.Terrain.UnitSize,
		Stages:    p.StageNames(),
		Ticks:     ticks,
		ElapsedMS: elapsed.Milliseconds(),
		Height: HeightStats{
			Min:           hf.Min(),
			Max:           hf.Max(),
			Mean:          float32(sum) / n,
			WaterFraction: float32(water) / n,
		},
		Mesh: MeshStats{
			Vertices:   mesh.VertexCount(),
			Triangles:  mesh.TriangleCount(),
			Degenerate: mesh.Degenerate,
			BoundsMin:  mesh.Bounds.Min,
			BoundsMax:  mesh.Bounds.Max,
		},
	}, nil
}

// Write encodes r as indented JSON followed by a newline.
func Write(w io.Writer, r Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
