package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/proxyprint/proxyprint/internal/scryfall"
)

func main() {
	var (
		noTokens       bool
		noVariations   bool
		downloadImages bool
		imageVersion   string
		out            string
		delay          float64
		verbose        bool
	)

	flag.BoolVar(&noTokens, "no-tokens", false, "Do not include token sets")
	flag.BoolVar(&noVariations, "no-variations", false, "Do not include alternate prints")
	flag.BoolVar(&downloadImages, "download-images", false, "Download images instead of writing a card list")
	flag.StringVar(&imageVersion, "image-version", "png", "Image size: png, large, normal, art_crop or border_crop (for print: png)")
	flag.StringVar(&out, "out", "output", "TXT file for the card list, or folder for images")
	flag.Float64Var(&delay, "delay", 0.12, "Delay between requests (seconds)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	sets := flag.Args()
	if len(sets) == 0 {
		fmt.Println("Error: at least one set code is required, e.g. spm mar m21")
		flag.Usage()
		os.Exit(1)
	}
	if !validVersion(imageVersion) {
		fmt.Printf("Error: unknown image version %q (allowed: %s)\n",
			imageVersion, strings.Join(scryfall.ImageVersions, ", "))
		os.Exit(1)
	}

	logger := newLogger(verbose)
	defer logger.Sync()

	client := scryfall.NewClient(logger)
	client.Delay = time.Duration(delay * float64(time.Second))

	cards, err := client.SearchSets(context.Background(), sets, scryfall.SearchOptions{
		IncludeTokens:     !noTokens,
		IncludeVariations: !noVariations,
	})
	if err != nil {
		logger.Fatal("Failed to fetch card listing", zap.Error(err))
	}

	if !downloadImages {
		path := out
		if !strings.HasSuffix(path, ".txt") {
			path += ".txt"
		}
		if err := scryfall.WriteCardList(cards, path); err != nil {
			logger.Fatal("Failed to write card list", zap.Error(err))
		}
		abs, _ := filepath.Abs(path)
		fmt.Printf("Wrote %d cards -> %s\n", len(cards), abs)
		return
	}

	total := client.DownloadImages(cards, imageVersion, out)
	abs, _ := filepath.Abs(out)
	fmt.Printf("Downloaded %d images -> %s\n", total, abs)
}

func validVersion(v string) bool {
	for _, known := range scryfall.ImageVersions {
		if v == known {
			return true
		}
	}
	return false
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
