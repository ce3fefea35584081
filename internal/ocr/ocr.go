// Package ocr runs the tesseract CLI against an image and reports the
// recognized text together with per-word confidence and bounding boxes.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mikocoral05/viscera/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"

	TessdataDir   string
	HeicConverter string

	PSM int // e.g., 6 is good for a uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	ArtifactCacheDir string
}

// Document is the recognition output: raw text plus word- and line-level
// observations with confidence in [0,100].
type Document struct {
	Text     string
	Words    []Word
	Lines    []Line
	Language string
	Duration time.Duration
	Warnings []string
}

type Box struct {
	X0, Y0, X1, Y1 int
}

type Word struct {
	Text       string
	Confidence *float64
	BBox       *Box
}

type Line struct {
	Text       string
	Confidence *float64
	BBox       *Box
}

type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Engine{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Recognize runs tesseract against path (or an in-memory buffer spilled to a
// temp file) and returns the recognized document.
func (e *Engine) Recognize(ctx context.Context, path string, data []byte, lang string, psm int) (Document, error) {
	start := time.Now()

	if len(data) > 0 {
		tmp, cleanup, err := spillBuffer(data)
		if err != nil {
			return Document{}, err
		}
		defer cleanup()
		path = tmp
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsImageExt(ext) {
		e.logger.Error("unsupported ocr extension", "extension", ext)
		return Document{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var warns []string
	if constants.IsHEICExt(ext) {
		out, w, cleanup, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
		warns = append(warns, w...)
		if err != nil {
			e.logger.Error("heic conversion failed", "path", path, "error", err)
			return Document{Warnings: warns}, err
		}
		defer cleanup()
		path = out
	}

	if lang == "" {
		lang = e.cfg.TesseractLang
	}
	if psm <= 0 {
		psm = e.cfg.PSM
	}

	txt, w1, err := e.tesseractText(ctx, path, lang, psm)
	warns = append(warns, w1...)
	if err != nil {
		return Document{Warnings: warns}, err
	}

	words, lines, w2, err := e.tesseractWords(ctx, path, lang, psm)
	warns = append(warns, w2...)
	if err != nil {
		return Document{Warnings: warns}, err
	}

	return Document{
		Text:     Normalize(txt),
		Words:    words,
		Lines:    lines,
		Language: lang,
		Duration: time.Since(start),
		Warnings: warns,
	}, nil
}

func (e *Engine) tesseractText(ctx context.Context, path, lang string, psm int) (string, []string, error) {
	args := e.baseArgs(path, lang, psm)

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

func (e *Engine) tesseractWords(ctx context.Context, path, lang string, psm int) ([]Word, []Line, []string, error) {
	args := append(e.baseArgs(path, lang, psm), "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, nil, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	words, lines := parseTSV(out)
	return words, lines, nil, nil
}

func (e *Engine) baseArgs(path, lang string, psm int) []string {
	args := []string{path, "stdout", "-l", lang}
	if psm > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", psm))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}

// spillBuffer writes an in-memory image to a temp file for the CLI.
func spillBuffer(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "viscera-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("spill image buffer: %w", err)
	}
	cleanup := func() { _ = os.Remove(f.Name()) }
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("spill image buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("spill image buffer: %w", err)
	}
	return f.Name(), cleanup, nil
}
