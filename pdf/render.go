package pdf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"pkt.systems/keysheet"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document *keysheet.Document
	Writer   io.Writer
	Theme    keysheet.Theme
	Config   Config
	// Footer is drawn in the bottom-right corner. Empty skips it.
	Footer string
	Logger *slog.Logger
}

// Render lays out a cheat sheet on one page and writes the PDF to
// req.Writer. Document and configuration problems are reported before
// anything is written.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	layout, canvas, err := prepare(req)
	if err != nil {
		return err
	}
	draw(layout, req.Document, req.Footer)
	if err := canvas.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// SaveFile renders req into path. The PDF is written to a temporary file
// next to path and renamed over it, so path is either fully replaced or
// left untouched. req.Writer is ignored.
func SaveFile(path string, req RenderRequest) error {
	var buf bytes.Buffer
	req.Writer = &buf
	if err := Render(req); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("pdf render: save %s: %w", path, err)
	}
	return nil
}

func prepare(req RenderRequest) (*Layout, *fpdfCanvas, error) {
	if err := req.Document.Validate(); err != nil {
		return nil, nil, fmt.Errorf("pdf render: %w", err)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.FontSize <= 0 || cfg.TitleFontSize <= 0 || cfg.LineSpacing <= 0 {
		return nil, nil, fmt.Errorf("pdf render: invalid font configuration")
	}
	theme := req.Theme
	if theme == nil {
		theme = keysheet.DefaultTheme()
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	canvas, err := newFPDFCanvas(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf render: %w", err)
	}
	canvas.setMetadata(req.Document.Title)
	layout, err := NewLayout(canvas, req.Document.ColumnCount, cfg, theme.Palette(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf render: %w", err)
	}
	logger.Debug("layout ready",
		"columns", layout.ColumnCount(),
		"column_width", layout.ColumnWidth(),
		"categories", len(req.Document.Categories),
		"bindings", req.Document.BindingCount(),
	)
	return layout, canvas, nil
}

func draw(l *Layout, doc *keysheet.Document, footer string) {
	l.RenderTitle(doc.Title)
	for _, cat := range doc.Categories {
		l.RenderCategoryHeader(cat.Name)
		for _, b := range cat.Bindings {
			l.RenderBinding(b.Keys, b.Description)
		}
		l.log.Debug("category placed", "name", cat.Name, "column", l.ActiveColumn(), "cursor", l.Cursor(l.ActiveColumn()))
		l.SelectNextColumn()
	}
	if footer != "" {
		l.RenderFooterLink(footer)
	}
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
