package backup

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
)

const formatVersion = 1

// Record kinds, in export order. Parents precede their children.
const (
	KindUsers             = "users"
	KindDictionaries      = "dictionaries"
	KindDictionaryEntries = "dictionary_entries"
	KindGrammars          = "grammars"
	KindGrammarRules      = "grammar_rules"
	KindRoadmaps          = "roadmaps"
	KindProgress          = "progress"
)

var allKinds = []string{
	KindUsers,
	KindDictionaries,
	KindDictionaryEntries,
	KindGrammars,
	KindGrammarRules,
	KindRoadmaps,
	KindProgress,
}

var kindTypes = map[string]reflect.Type{
	KindUsers:             reflect.TypeOf(entity.User{}),
	KindDictionaries:      reflect.TypeOf(entity.Dictionary{}),
	KindDictionaryEntries: reflect.TypeOf(entity.DictionaryEntry{}),
	KindGrammars:          reflect.TypeOf(entity.Grammar{}),
	KindGrammarRules:      reflect.TypeOf(entity.GrammarRule{}),
	KindRoadmaps:          reflect.TypeOf(entity.Roadmap{}),
	KindProgress:          reflect.TypeOf(entity.UserProgress{}),
}

var (
	errNoKindsSelected = errors.New("backup: no record kinds selected")
	errMissingMeta     = errors.New("backup: missing meta record")
)

// Kinds returns every record kind a snapshot export can contain.
func Kinds() []string {
	return append([]string{}, allKinds...)
}

type ProgressReporter interface {
	StartTable(kind string, total int)
	Increment(kind string, delta int)
	FinishTable(kind string)
}

type noopProgress struct{}

func (noopProgress) StartTable(string, int) {}
func (noopProgress) Increment(string, int)  {}
func (noopProgress) FinishTable(string)     {}

// Service encodes entity snapshots as JSON lines: one meta record followed by one record per row.
type Service struct {
	clock      func() time.Time
	schemaHash string
}

type Option func(*Service)

// WithClock overrides the clock used to stamp exported_at.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs a snapshot backup service.
func NewService(opts ...Option) *Service {
	svc := &Service{
		clock:      time.Now,
		schemaHash: computeSchemaHash(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// SchemaHash fingerprints the exported field layout.
func (s *Service) SchemaHash() string {
	return s.schemaHash
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	kinds    []string
	reporter ProgressReporter
}

// WithKinds restricts export to the provided record kinds.
func WithKinds(kinds []string) ExportOption {
	return func(cfg *exportConfig) {
		if len(kinds) == 0 {
			return
		}
		cfg.kinds = append([]string{}, kinds...)
	}
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

type ImportOption func(*importConfig)

type importConfig struct {
	kinds []string
}

// WithImportKinds restricts import to the provided record kinds.
func WithImportKinds(kinds []string) ImportOption {
	return func(cfg *importConfig) {
		if len(kinds) == 0 {
			return
		}
		cfg.kinds = append([]string{}, kinds...)
	}
}

// Meta describes an export; it is always the first record.
type Meta struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	SchemaHash string         `json:"schema_hash"`
	Kinds      []string       `json:"kinds"`
	RowCounts  map[string]int `json:"row_counts"`
}

type record struct {
	Type       string         `json:"type"`
	Version    int            `json:"version,omitempty"`
	ExportedAt *time.Time     `json:"exported_at,omitempty"`
	SchemaHash string         `json:"schema_hash,omitempty"`
	Kinds      []string       `json:"kinds,omitempty"`
	RowCounts  map[string]int `json:"row_counts,omitempty"`
	Payload    any            `json:"payload,omitempty"`
}

type rawRecord struct {
	Type       string          `json:"type"`
	Version    int             `json:"version"`
	ExportedAt *time.Time      `json:"exported_at"`
	SchemaHash string          `json:"schema_hash"`
	Kinds      []string        `json:"kinds"`
	RowCounts  map[string]int  `json:"row_counts"`
	Payload    json.RawMessage `json:"payload"`
}

// Export writes the selected collections of snap to w.
func (s *Service) Export(ctx context.Context, w io.Writer, snap *entity.Snapshot, opts ...ExportOption) error {
	if snap == nil {
		return errors.New("backup: snapshot is required")
	}
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	kinds, err := selectKinds(cfg.kinds)
	if err != nil {
		return err
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}

	rows := make(map[string][]any, len(kinds))
	counts := make(map[string]int, len(kinds))
	for _, kind := range kinds {
		rows[kind] = collect(snap, kind)
		counts[kind] = len(rows[kind])
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	now := s.clock().UTC()
	meta := record{
		Type:       "meta",
		Version:    formatVersion,
		ExportedAt: &now,
		SchemaHash: s.schemaHash,
		Kinds:      kinds,
		RowCounts:  counts,
	}
	if err := writeRecord(writer, meta); err != nil {
		return err
	}

	for _, kind := range kinds {
		reporter.StartTable(kind, counts[kind])
		for _, row := range rows[kind] {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writeRecord(writer, record{Type: kind, Payload: row}); err != nil {
				return fmt.Errorf("write %s: %w", kind, err)
			}
			reporter.Increment(kind, 1)
		}
		reporter.FinishTable(kind)
	}
	return writer.Flush()
}

// Import decodes a snapshot from r. The returned snapshot is reconciled.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ...ImportOption) (*entity.Snapshot, Meta, error) {
	cfg := importConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	kinds, err := selectKinds(cfg.kinds)
	if err != nil {
		return nil, Meta{}, err
	}
	wanted := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		wanted[kind] = true
	}

	snap := entity.EmptySnapshot()
	br := bufio.NewReader(r)
	var (
		metaSeen bool
		meta     Meta
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, Meta{}, err
		}
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, Meta{}, fmt.Errorf("read backup: %w", err)
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var rec rawRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, Meta{}, fmt.Errorf("decode record: %w", err)
			}

			switch rec.Type {
			case "meta":
				if rec.Version != formatVersion {
					return nil, Meta{}, fmt.Errorf("backup: unsupported format version %d", rec.Version)
				}
				metaSeen = true
				meta = Meta{
					Version:    rec.Version,
					SchemaHash: rec.SchemaHash,
					Kinds:      rec.Kinds,
					RowCounts:  rec.RowCounts,
				}
				if rec.ExportedAt != nil {
					meta.ExportedAt = *rec.ExportedAt
				}
			default:
				if !metaSeen {
					return nil, Meta{}, errMissingMeta
				}
				if _, known := kindTypes[rec.Type]; !known {
					return nil, Meta{}, fmt.Errorf("backup: unknown record type %q", rec.Type)
				}
				if !wanted[rec.Type] {
					// Skip kinds not requested.
					break
				}
				if len(rec.Payload) == 0 {
					return nil, Meta{}, fmt.Errorf("backup: missing payload for %s", rec.Type)
				}
				if err := apply(snap, rec.Type, rec.Payload); err != nil {
					return nil, Meta{}, fmt.Errorf("decode payload for %s: %w", rec.Type, err)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if !metaSeen {
		return nil, Meta{}, errMissingMeta
	}
	snap.Reconcile()
	return snap, meta, nil
}

// Counts returns the number of records of every kind in snap.
func Counts(snap *entity.Snapshot) map[string]int {
	counts := make(map[string]int, len(allKinds))
	for _, kind := range allKinds {
		counts[kind] = len(collect(snap, kind))
	}
	return counts
}

func collect(snap *entity.Snapshot, kind string) []any {
	var out []any
	switch kind {
	case KindUsers:
		for _, u := range snap.Users {
			out = append(out, u)
		}
	case KindDictionaries:
		for _, d := range snap.Dictionaries {
			out = append(out, d)
		}
	case KindDictionaryEntries:
		for _, dictID := range sortedKeys(snap.DictionaryEntries) {
			for _, e := range snap.DictionaryEntries[dictID] {
				e.DictionaryID = dictID
				out = append(out, e)
			}
		}
	case KindGrammars:
		for _, g := range snap.Grammars {
			out = append(out, g)
		}
	case KindGrammarRules:
		for _, grammarID := range sortedKeys(snap.GrammarRules) {
			for _, r := range snap.GrammarRules[grammarID] {
				r.GrammarID = grammarID
				out = append(out, r)
			}
		}
	case KindRoadmaps:
		for _, r := range snap.Roadmaps {
			out = append(out, r)
		}
	case KindProgress:
		for _, p := range snap.Progress {
			out = append(out, p)
		}
	}
	return out
}

func apply(snap *entity.Snapshot, kind string, payload json.RawMessage) error {
	switch kind {
	case KindUsers:
		var u entity.User
		if err := json.Unmarshal(payload, &u); err != nil {
			return err
		}
		snap.Users = append(snap.Users, u)
	case KindDictionaries:
		var d entity.Dictionary
		if err := json.Unmarshal(payload, &d); err != nil {
			return err
		}
		snap.Dictionaries = append(snap.Dictionaries, d)
	case KindDictionaryEntries:
		var e entity.DictionaryEntry
		if err := json.Unmarshal(payload, &e); err != nil {
			return err
		}
		if e.DictionaryID == "" {
			return errors.New("entry without dictionary_id")
		}
		snap.DictionaryEntries[e.DictionaryID] = append(snap.DictionaryEntries[e.DictionaryID], e)
	case KindGrammars:
		var g entity.Grammar
		if err := json.Unmarshal(payload, &g); err != nil {
			return err
		}
		snap.Grammars = append(snap.Grammars, g)
	case KindGrammarRules:
		var r entity.GrammarRule
		if err := json.Unmarshal(payload, &r); err != nil {
			return err
		}
		if r.GrammarID == "" {
			return errors.New("rule without grammar_id")
		}
		snap.GrammarRules[r.GrammarID] = append(snap.GrammarRules[r.GrammarID], r)
	case KindRoadmaps:
		var r entity.Roadmap
		if err := json.Unmarshal(payload, &r); err != nil {
			return err
		}
		snap.Roadmaps = append(snap.Roadmaps, r)
	case KindProgress:
		var p entity.UserProgress
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		snap.Progress = append(snap.Progress, p)
	}
	return nil
}

func selectKinds(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return Kinds(), nil
	}
	seen := make(map[string]bool, len(requested))
	for _, raw := range requested {
		kind := strings.TrimSpace(strings.ToLower(raw))
		if kind == "" {
			continue
		}
		if _, ok := kindTypes[kind]; !ok {
			return nil, fmt.Errorf("backup: unknown record kind %q", raw)
		}
		seen[kind] = true
	}
	var out []string
	for _, kind := range allKinds {
		if seen[kind] {
			out = append(out, kind)
		}
	}
	if len(out) == 0 {
		return nil, errNoKindsSelected
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func computeSchemaHash() string {
	h := sha256.New()
	for _, kind := range allKinds {
		fields := jsonFields(kindTypes[kind])
		sort.Strings(fields)
		fmt.Fprintf(h, "%s:%s;", kind, strings.Join(fields, ","))
	}
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func jsonFields(t reflect.Type) []string {
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

func writeRecord(w io.Writer, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return nil
}
