package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/async"
	"github.com/mikocoral05/viscera/internal/common"
	"github.com/mikocoral05/viscera/internal/engine"
	"github.com/mikocoral05/viscera/internal/export"
	"github.com/mikocoral05/viscera/internal/extract"
	"github.com/mikocoral05/viscera/internal/ocr"
	"github.com/mikocoral05/viscera/internal/preset"
	"github.com/mikocoral05/viscera/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to process images from (required)")
		category = flag.String("category", "", "document category preset applied to every image")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		workers  = flag.Int("workers", 4, "concurrent extraction workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "extractions.xlsx")
	}

	var cat constants.Category
	if *category != "" {
		c, ok := constants.Canonicalize(*category)
		if !ok {
			printError("Error: unknown category %q (known: %s)\n", *category, strings.Join(preset.Names(), ", "))
			os.Exit(1)
		}
		cat = c
	}

	// Logger
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.Engine.UTCOffsetHours != 8 {
		engine.DefaultLocation = time.FixedZone(
			fmt.Sprintf("UTC%+d", cfg.Engine.UTCOffsetHours), cfg.Engine.UTCOffsetHours*3600)
	}

	dbPath := cfg.Store.Path
	if *inmem {
		dbPath = ":memory:"
	}
	st, err := store.Open(dbPath, slogger)
	if err != nil {
		log.Fatalf("open results database: %v", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Errorf("close results database: %v", cerr)
		}
	}()

	ocrEngine := ocr.NewEngine(ocr.Config{
		Tesseract:        cfg.OCR.Tesseract,
		TesseractLang:    cfg.OCR.TesseractLang,
		TessdataDir:      cfg.OCR.TessdataDir,
		PSM:              cfg.OCR.PSM,
		OEM:              cfg.OCR.OEM,
		HeicConverter:    cfg.OCR.HeicConverter,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, slogger)
	pipeline := extract.NewPipeline(extract.NewOCRAdapter(ocrEngine, slogger), slogger)

	handler := func(jobCtx context.Context, job async.Job) error {
		jobCtx, cancel := context.WithTimeout(common.WithTraceID(jobCtx, job.TraceID), cfg.OCR.Timeout)
		defer cancel()

		if err := st.MarkRunning(jobCtx, job.ID); err != nil {
			return err
		}
		res, err := pipeline.Run(jobCtx, extract.ImageRef{Path: job.Path}, extract.Options{Category: cat})
		if err != nil {
			_ = st.FinishFailure(jobCtx, job.ID, err.Error())
			return err
		}

		var parsedJSON []byte
		if res.Parsed != nil {
			if err := preset.ValidateRecord(res.Parsed); err != nil {
				_ = st.FinishFailure(jobCtx, job.ID, fmt.Sprintf("record validation: %v", err))
				return err
			}
			parsedJSON, err = json.Marshal(res.Parsed)
			if err != nil {
				_ = st.FinishFailure(jobCtx, job.ID, err.Error())
				return err
			}
		}
		return st.FinishSuccess(jobCtx, job.ID, res.ConfidenceAvg, parsedJSON)
	}
	pool := async.NewPool(*workers, *workers*2, handler, slogger)

	// Walk the directory, enqueueing every supported image.
	var matched, skipped int
	walkErr := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("walk %s: %v", path, err)
			return nil // continue walking
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != *dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !constants.IsImageExt(ext) {
			skipped++
			return nil
		}
		matched++
		job := async.Job{
			ID:          uuid.New(),
			Path:        path,
			SubmittedAt: time.Now(),
			TraceID:     uuid.NewString(),
		}
		if err := st.EnqueueJob(ctx, job.ID, path, cat); err != nil {
			return err
		}
		return pool.Enqueue(ctx, job)
	})
	if walkErr != nil {
		log.Errorf("walk aborted: %v", walkErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	pool.Shutdown(shutdownCtx)
	cancel()

	log.Infow("batch complete", "matched", matched, "skipped", skipped)

	// Export the results workbook.
	svc := export.NewService(st, slogger)
	data, err := svc.ExportXLSX(ctx)
	if err != nil {
		log.Fatalf("export workbook: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Infof("wrote %s", *out)
}
