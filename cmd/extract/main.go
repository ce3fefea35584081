package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/common"
	"github.com/mikocoral05/viscera/internal/engine"
	"github.com/mikocoral05/viscera/internal/extract"
	"github.com/mikocoral05/viscera/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		image    = flag.String("image", "", "path to the image to process (required)")
		category = flag.String("category", "", "document category preset (optional)")
		lang     = flag.String("lang", "", "OCR language code (default from env)")
		psm      = flag.Int("psm", 0, "tesseract page segmentation mode")
	)
	flag.Parse()

	if *image == "" {
		logger.Error("usage", "cmd", "extract -image <path> [-category <name>]")
		os.Exit(2)
	}

	var cat constants.Category
	if *category != "" {
		c, ok := constants.Canonicalize(*category)
		if !ok {
			logger.Error("unknown category", "category", *category, "known", constants.AsStringSlice())
			os.Exit(2)
		}
		cat = c
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Engine.UTCOffsetHours != 8 {
		engine.DefaultLocation = time.FixedZone(
			fmt.Sprintf("UTC%+d", cfg.Engine.UTCOffsetHours), cfg.Engine.UTCOffsetHours*3600)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.OCR.Timeout)
	defer cancel()

	ocrEngine := ocr.NewEngine(ocr.Config{
		Tesseract:        cfg.OCR.Tesseract,
		TesseractLang:    cfg.OCR.TesseractLang,
		TessdataDir:      cfg.OCR.TessdataDir,
		PSM:              cfg.OCR.PSM,
		OEM:              cfg.OCR.OEM,
		HeicConverter:    cfg.OCR.HeicConverter,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)
	pipeline := extract.NewPipeline(extract.NewOCRAdapter(ocrEngine, logger), logger)

	start := time.Now()
	res, err := pipeline.Run(ctx, extract.ImageRef{Path: *image}, extract.Options{
		Category: cat,
		Language: *lang,
		PSM:      *psm,
	})
	dur := time.Since(start)
	if err != nil {
		logger.Error("extraction failed", "image", *image, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"image", *image,
		"category", string(cat),
		"words", len(res.Words),
		"duration_ms", dur.Milliseconds(),
	)

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
