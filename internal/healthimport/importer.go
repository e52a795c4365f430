// Package healthimport converts exported platform health-data samples
// into mind state entries. Samples pass through fixed lookup tables;
// anything the domain does not recognize is dropped at this boundary so
// partial or invalid entries never reach the analysis engine.
package healthimport

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
	"github.com/tmoriguchi/mindtracer/internal/service"
)

// Sample is one state-of-mind record in an exported health-data file.
type Sample struct {
	StartDate    time.Time `json:"startDate"`
	Kind         string    `json:"kind"`
	Labels       []string  `json:"labels"`
	Associations []string  `json:"associations"`
	Valence      float64   `json:"valence"`
}

// kindTable maps external kinds exactly; anything else rejects the sample.
var kindTable = map[string]model.Kind{
	"momentaryEmotion": model.KindMomentaryEmotion,
	"dailyMood":        model.KindDailyMood,
}

// labelTable maps external emotion labels into domain feelings.
// Unrecognized labels are silently dropped.
var labelTable = map[string]model.Feeling{
	"happy":    model.FeelingHappy,
	"sad":      model.FeelingSad,
	"anxious":  model.FeelingAnxious,
	"calm":     model.FeelingCalm,
	"content":  model.FeelingContent,
	"excited":  model.FeelingExcited,
	"stressed": model.FeelingStressed,
	"tired":    model.FeelingTired,
	"lonely":   model.FeelingLonely,
	"angry":    model.FeelingAngry,
}

// associationTable maps external association labels into domain contexts.
// The external vocabulary names money and dating; the domain calls those
// finances and relationships.
var associationTable = map[string]model.Context{
	"work":     model.ContextWork,
	"family":   model.ContextFamily,
	"friends":  model.ContextFriends,
	"health":   model.ContextHealth,
	"tasks":    model.ContextTasks,
	"identity": model.ContextIdentity,
	"money":    model.ContextFinances,
	"dating":   model.ContextRelationships,
}

// MapSample converts one exported sample into an entry. It returns an
// error when the sample's kind is unrecognized or no labels survive the
// mapping; such samples produce no entry at all.
func MapSample(sample Sample) (model.Entry, error) {
	kind, ok := kindTable[sample.Kind]
	if !ok {
		return model.Entry{}, fmt.Errorf("kind %q: %w", sample.Kind, common.ErrUnrecognizedKind)
	}

	var feelings []model.Feeling
	for _, label := range sample.Labels {
		if f, ok := labelTable[strings.ToLower(label)]; ok {
			feelings = append(feelings, f)
		}
	}
	if len(feelings) == 0 {
		return model.Entry{}, common.ErrNoFeelings
	}

	var contexts []model.Context
	for _, assoc := range sample.Associations {
		if c, ok := associationTable[strings.ToLower(assoc)]; ok {
			contexts = append(contexts, c)
		}
	}

	entry := model.NewEntry(sample.StartDate, kind, sample.Valence, feelings, contexts,
		nil, "", map[string]string{"source": "healthkit"})
	return entry, nil
}

// Importer reads exported health-data files into the entry store.
type Importer struct {
	store    service.EntryStore
	progress func(total int) Progress
}

// Progress reports per-sample advancement during an import.
type Progress interface {
	Add(n int) error
}

// NewImporter creates an importer writing to the given store. The
// progress factory may be nil when no display is wanted.
func NewImporter(store service.EntryStore, progress func(total int) Progress) *Importer {
	return &Importer{store: store, progress: progress}
}

// ImportFile reads one exported JSON file and adds every mappable sample
// to the store. Rejected samples are counted, logged at debug level, and
// otherwise ignored.
func (i *Importer) ImportFile(path string) (service.ImportResult, error) {
	f, err := os.Open(path) //nolint:gosec // user-supplied import path
	if err != nil {
		return service.ImportResult{}, common.NewUserError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer func() { _ = f.Close() }()

	return i.Import(f)
}

// Import reads an exported JSON sample array from r into the store.
func (i *Importer) Import(r io.Reader) (service.ImportResult, error) {
	var samples []Sample
	if err := json.NewDecoder(r).Decode(&samples); err != nil {
		return service.ImportResult{}, fmt.Errorf("failed to decode health export: %w", err)
	}

	var bar Progress
	if i.progress != nil {
		bar = i.progress(len(samples))
	}

	var result service.ImportResult
	for _, sample := range samples {
		if bar != nil {
			_ = bar.Add(1)
		}

		entry, err := MapSample(sample)
		if err != nil {
			slog.Debug("Skipping health sample", "kind", sample.Kind, "reason", err)
			result.Skipped++
			continue
		}

		if err := i.store.Add(entry); err != nil {
			return result, fmt.Errorf("failed to store imported entry: %w", err)
		}
		result.Imported++
	}

	slog.Info("Health import finished", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}
