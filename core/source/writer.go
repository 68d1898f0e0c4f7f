package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"csvdiff/core/report"
	"csvdiff/core/storage"

	"go.uber.org/zap"
)

// ErrUnsupportedOutput is returned when a report is sent to a database table.
var ErrUnsupportedOutput = errors.New("unsupported output location")

// Writer stores rendered reports.
type Writer struct {
	clients *Clients
	log     *zap.Logger
}

// NewWriter creates a writer backed by the given clients.
func NewWriter(clients *Clients, log *zap.Logger) *Writer {
	return &Writer{clients: clients, log: log}
}

// Write replaces the report at loc with the output of render.
func (w *Writer) Write(ctx context.Context, loc Locator, contentType string, render func(io.Writer) error) error {
	switch loc.Kind {
	case KindFile:
		if err := report.WriteFile(loc.Path, render); err != nil {
			return err
		}

	case KindObject:
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		client, err := w.clients.Storage()
		if err != nil {
			return err
		}
		if err := storage.Upload(ctx, client, loc.Bucket, loc.Object, buf.Bytes(), contentType); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, loc.Raw)
	}

	w.log.Info("Report written", zap.String("output", loc.Raw))
	return nil
}
