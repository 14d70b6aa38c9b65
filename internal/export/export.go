// Package export orchestrates a full observation export: resample the
// schedule, sample observations, partition them and write the subset
// files in the requested formats.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/flowcal/wellobs/internal/codec"
	"github.com/flowcal/wellobs/internal/obs"
	"github.com/flowcal/wellobs/internal/resample"
	"github.com/flowcal/wellobs/internal/schedule"
)

// Options configures one export run.
type Options struct {
	// Vectors maps measurement vector names to their error model.
	Vectors map[string]obs.VectorConfig

	// TrainingFraction is the share of anchors assigned to the training
	// subset, in (0, 1].
	TrainingFraction float64

	// Policy selects the anchor date grid.
	Policy resample.Policy

	// Codecs are the formats to write. Each subset is written once per
	// codec.
	Codecs []codec.Codec

	// BasePath is the output path stem. Subset suffix and format
	// extension are appended: <BasePath>_training.ertobs and so on.
	BasePath string
}

// File records one written output file.
type File struct {
	Path    string
	Format  string
	Subset  obs.Subset
	Entries int
}

// Result summarizes a completed export run.
type Result struct {
	// RunID is a time-sortable UUIDv7 identifying this run in logs.
	RunID string

	Anchors      []time.Time
	Observations int
	Files        []File
}

// Run performs the export. The schedule is read-only throughout; parallel
// Run calls against the same schedule are safe.
//
// File writes are all-or-nothing: each file is encoded to memory first
// and only then written, so a failing encode never leaves a partial file
// behind.
func Run(s *schedule.Schedule, opts Options) (*Result, error) {
	runID := uuid.Must(uuid.NewV7()).String()
	log := slog.With("run_id", runID)

	anchors, err := resample.Dates(s, opts.Policy)
	if err != nil {
		return nil, err
	}
	log.Debug("resampled schedule", "policy", string(opts.Policy), "anchors", len(anchors))

	split, err := obs.Partition(len(anchors), opts.TrainingFraction)
	if err != nil {
		return nil, err
	}

	complete := obs.Sample(s, anchors, opts.Vectors)
	log.Debug("sampled observations", "keys", len(complete.Keys()), "entries", complete.Len())

	result := &Result{
		RunID:        runID,
		Anchors:      anchors,
		Observations: complete.Len(),
	}

	for _, subset := range obs.Subsets {
		window := split.Range(subset)
		sub := complete.Select(window.Dates(anchors))
		for _, c := range opts.Codecs {
			path := fmt.Sprintf("%s%s.%s", opts.BasePath, subset, c.Extension())
			if err := writeFile(path, c, sub); err != nil {
				return nil, err
			}
			log.Info("wrote observation file",
				"path", path, "format", c.Name(), "entries", sub.Len())
			result.Files = append(result.Files, File{
				Path:    path,
				Format:  c.Name(),
				Subset:  subset,
				Entries: sub.Len(),
			})
		}
	}
	return result, nil
}

func writeFile(path string, c codec.Codec, set *obs.Set) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf, set); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
