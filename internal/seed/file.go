package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/eslsoft/lexiroad/internal/usecase/backup"
)

// FileProvider loads a snapshot previously written by the export command.
type FileProvider struct {
	path string
	svc  *backup.Service
}

// NewFileProvider reads the JSONL (optionally gzip compressed) snapshot at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path, svc: backup.NewService()}
}

func (p *FileProvider) Load(ctx context.Context) (*Snapshot, error) {
	snap, _, err := p.LoadWithMeta(ctx)
	return snap, err
}

// LoadWithMeta also returns the header record written at export time.
func (p *FileProvider) LoadWithMeta(ctx context.Context) (*Snapshot, backup.Meta, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, backup.Meta{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	reader, closeFn, err := maybeGzip(f)
	if err != nil {
		return nil, backup.Meta{}, err
	}
	defer closeFn()

	snap, meta, err := p.svc.Import(ctx, reader)
	if err != nil {
		return nil, backup.Meta{}, fmt.Errorf("import snapshot %s: %w", p.path, err)
	}
	return snap, meta, nil
}

// maybeGzip sniffs the gzip magic bytes so callers need not know how the file was written.
func maybeGzip(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("open gzip reader: %w", err)
		}
		return gz, func() { _ = gz.Close() }, nil
	}
	return br, func() {}, nil
}
