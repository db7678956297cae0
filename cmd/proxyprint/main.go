package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/proxyprint/proxyprint"
	"github.com/proxyprint/proxyprint/internal/config"
	"github.com/proxyprint/proxyprint/internal/paper"
)

func main() {
	var (
		inputDir     string
		outputFile   string
		configFile   string
		paperSpec    string
		marginMM     float64
		gapMM        float64
		orientation  string
		cropMarks    bool
		blackBorders bool
		verbose      bool
	)

	flag.StringVar(&inputDir, "input", "", "Folder with card images (png/jpg/...)")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.StringVar(&configFile, "config", "", "Optional YAML config file with layout defaults")
	flag.StringVar(&paperSpec, "paper", "", "Paper: a4, letter, a3 or custom e.g. 210x297mm / 8.5x11in")
	flag.Float64Var(&marginMM, "margin-mm", -1, "Outer margin (mm)")
	flag.Float64Var(&gapMM, "gap-mm", -1, "Gap between cards (mm)")
	flag.StringVar(&orientation, "orientation", "", "Page orientation: auto, portrait or landscape")
	flag.BoolVar(&cropMarks, "cropmarks", false, "Add crop marks")
	flag.BoolVar(&blackBorders, "black-borders", false, "Fill gaps with black for easier cutting")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputDir == "" {
		fmt.Println("Error: input folder is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(verbose)
	defer logger.Sync()

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Flags override config file values.
	if paperSpec == "" {
		paperSpec = cfg.Paper
	}
	if marginMM < 0 {
		marginMM = cfg.MarginMM
	}
	if gapMM < 0 {
		gapMM = cfg.GapMM
	}
	if orientation == "" {
		orientation = cfg.Orientation
	}
	if outputFile == "" {
		outputFile = cfg.Output
	}

	generator := proxyprint.NewWithOptions(proxyprint.Options{
		Paper:          paperSpec,
		Margin:         marginMM * paper.Millimeter,
		Gap:            gapMM * paper.Millimeter,
		Orientation:    proxyprint.Orientation(strings.ToLower(orientation)),
		CropMarks:      cropMarks || cfg.CropMarks,
		BlackBorders:   blackBorders || cfg.BlackBorders,
		CropMarkLength: 5 * paper.Millimeter,
		CropMarkOffset: 0.3 * paper.Millimeter,
		Title:          "Card print sheet",
		Logger:         logger,
	})

	result, err := generator.GenerateDir(inputDir, outputFile)
	if err != nil {
		logger.Fatal("Failed to generate document", zap.Error(err))
	}

	if result.Failed > 0 {
		logger.Warn("some images could not be placed",
			zap.Int("failed", result.Failed),
			zap.Int("placed", result.Placed))
	}

	fmt.Printf("Done: %d images -> %s | %d*%d per page (%d/page), %d pages.\n",
		result.Images, outputFile, result.Rows, result.Cols, result.PerPage, result.Pages)
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
