package diff

import (
	"context"
	"fmt"
	"io"
	"time"

	"csvdiff/core/config"
	"csvdiff/core/logger"
	"csvdiff/core/reconcile"
	"csvdiff/core/report"
	"csvdiff/core/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request describes one comparison. Empty settings fall back to the
// configured defaults.
type Request struct {
	Previous      string `json:"previous"`
	Current       string `json:"current"`
	Output        string `json:"output,omitempty"`
	Mode          string `json:"mode,omitempty"`
	KeyColumn     string `json:"key,omitempty"`
	TargetColumns string `json:"columns,omitempty"`
	Format        string `json:"format,omitempty"`
}

// Outcome is a finished comparison together with the report header data.
type Outcome struct {
	RunID   string
	Result  *reconcile.Result
	Options report.Options
	Format  string
}

// Inspection describes a single snapshot as seen through a key column.
type Inspection struct {
	Source     string   `json:"source"`
	Header     []string `json:"header"`
	Rows       int      `json:"rows"`
	KeyColumn  string   `json:"key_column"`
	Keys       int      `json:"keys"`
	Duplicates []string `json:"duplicates"`
	Undefined  int      `json:"undefined"`
}

// Service runs comparisons between snapshots.
type Service struct {
	loader    *source.Loader
	writer    *source.Writer
	defaults  config.DiffConfig
	reportCfg report.Config
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new diff service.
func NewService(loader *source.Loader, writer *source.Writer, defaults config.DiffConfig, reportCfg report.Config, logger *zap.Logger) *Service {
	return &Service{
		loader:    loader,
		writer:    writer,
		defaults:  defaults,
		reportCfg: reportCfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Settings merges the request overrides into the defaults and validates them.
func (s *Service) Settings(req Request) (config.DiffConfig, error) {
	settings := s.defaults
	if req.Mode != "" {
		settings.Mode = req.Mode
	}
	if req.KeyColumn != "" {
		settings.KeyColumn = req.KeyColumn
	}
	if req.TargetColumns != "" {
		settings.TargetColumns = req.TargetColumns
	}
	if err := settings.Validate(); err != nil {
		return config.DiffConfig{}, err
	}
	return settings, nil
}

func (s *Service) format(req Request) (string, error) {
	format := req.Format
	if format == "" {
		format = s.reportCfg.Format
	}
	if !(report.Config{Format: format}).IsValidFormat() {
		return "", fmt.Errorf("%w: unknown report format %q", config.ErrInvalidArgument, format)
	}
	return format, nil
}

// Run loads both snapshots named in req, compares them and, when req.Output
// is set, stores the report there. Nothing is written if any step fails.
func (s *Service) Run(ctx context.Context, req Request) (*Outcome, error) {
	if err := config.RequireArgs([]string{"previous", "current"}, []string{req.Previous, req.Current}); err != nil {
		return nil, err
	}
	settings, err := s.Settings(req)
	if err != nil {
		return nil, err
	}
	format, err := s.format(req)
	if err != nil {
		return nil, err
	}

	prevLoc, err := s.loader.Parse(req.Previous)
	if err != nil {
		return nil, err
	}
	currLoc, err := s.loader.Parse(req.Current)
	if err != nil {
		return nil, err
	}
	var outLoc source.Locator
	if req.Output != "" {
		if outLoc, err = s.loader.Parse(req.Output); err != nil {
			return nil, err
		}
	}

	prev, curr, err := s.loader.LoadPair(ctx, prevLoc, currLoc)
	if err != nil {
		return nil, err
	}

	out, err := s.Compare(prev, curr, settings)
	if err != nil {
		return nil, err
	}
	out.Format = format

	if req.Output != "" {
		err := s.writer.Write(ctx, outLoc, ContentType(format), func(w io.Writer) error {
			return s.Render(w, out)
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Compare reconciles two loaded datasets with validated settings.
func (s *Service) Compare(prev, curr *reconcile.Dataset, settings config.DiffConfig) (*Outcome, error) {
	loc, err := s.reportCfg.Location()
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	l := logger.WithRun(s.logger, runID)
	l.Info("Reconciliation started",
		zap.String("previous", prev.Name),
		zap.String("current", curr.Name),
		zap.String("mode", settings.Mode),
		zap.String("key_column", settings.KeyColumn),
		zap.Strings("columns", settings.Columns()),
	)

	start := time.Now()
	res, err := reconcile.Reconcile(*prev, *curr, settings.KeyColumn, settings.Columns())
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return nil, err
	}

	if res.Summary.Duplicates > 0 {
		l.Warn("Duplicate keys found, last row wins", zap.Int("duplicates", res.Summary.Duplicates))
	}
	l.Info("Reconciliation finished",
		zap.Int("added", res.Summary.Added),
		zap.Int("removed", res.Summary.Removed),
		zap.Int("changed", res.Summary.Changed),
		zap.Duration("duration", time.Since(start)),
	)

	return &Outcome{
		RunID:  runID,
		Result: res,
		Options: report.Options{
			Mode:      settings.ReportMode(),
			Previous:  prev.Name,
			Current:   curr.Name,
			Generated: s.now().In(loc),
		},
		Format: s.reportCfg.Format,
	}, nil
}

// Render writes the report of out in its format.
func (s *Service) Render(w io.Writer, out *Outcome) error {
	if out.Format == report.FormatJSON {
		return report.RenderJSON(w, out.Result, out.Options)
	}
	return report.Render(w, out.Result, out.Options)
}

// Inspect loads one snapshot and reports how it indexes by keyColumn.
// An empty keyColumn uses the configured one.
func (s *Service) Inspect(ctx context.Context, raw, keyColumn string) (*Inspection, error) {
	if err := config.RequireArgs([]string{"source"}, []string{raw}); err != nil {
		return nil, err
	}
	if keyColumn == "" {
		keyColumn = s.defaults.KeyColumn
	}
	if err := config.RequireArgs([]string{"key column"}, []string{keyColumn}); err != nil {
		return nil, err
	}
	if keyColumn == config.Unset {
		return nil, fmt.Errorf("%w: diff.key_column is %s", config.ErrInvalidArgument, config.Unset)
	}

	loc, err := s.loader.Parse(raw)
	if err != nil {
		return nil, err
	}
	ds, err := s.loader.Load(ctx, loc)
	if err != nil {
		return nil, err
	}
	table, err := reconcile.Index(*ds, keyColumn)
	if err != nil {
		return nil, err
	}

	return &Inspection{
		Source:     ds.Name,
		Header:     ds.Header,
		Rows:       table.RowCount,
		KeyColumn:  keyColumn,
		Keys:       table.Len(),
		Duplicates: append([]string{}, table.Duplicates...),
		Undefined:  table.Undefined,
	}, nil
}

// ContentType returns the MIME type of a report format.
func ContentType(format string) string {
	if format == report.FormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// RequireRemote rejects local file locators. The HTTP API only reads from
// and writes to object storage or the database.
func (s *Service) RequireRemote(raws ...string) error {
	for _, raw := range raws {
		if raw == "" {
			continue
		}
		loc, err := s.loader.Parse(raw)
		if err != nil {
			return err
		}
		if loc.Kind == source.KindFile {
			return fmt.Errorf("%w: %q is a local path, use s3:// or db://", config.ErrInvalidArgument, raw)
		}
	}
	return nil
}
