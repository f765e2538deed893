package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"tripbrief/internal/config"
	"tripbrief/internal/infra"
	"tripbrief/internal/logging"
	"tripbrief/internal/modules/itinerary"
)

func main() {
	providerFlag := flag.String("provider", "", "model provider: gemini or openai (overrides TRIPBRIEF_AI_PROVIDER)")
	modelFlag := flag.String("model", "", "model identifier (overrides TRIPBRIEF_MODEL)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <destination>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	destination := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(destination) == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Read()
	if *providerFlag != "" {
		cfg.AI.Provider = strings.ToLower(*providerFlag)
	}
	if *modelFlag != "" {
		cfg.AI.Model = *modelFlag
	}

	os.Exit(run(cfg, destination))
}

func run(cfg config.Config, destination string) int {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Error("load config", "err", err)
		return 1
	}

	ctx := context.Background()
	provider, err := infra.NewProvider(ctx, cfg)
	if err != nil {
		logger.Error("init AI provider", "err", err)
		return 1
	}
	defer provider.Close()

	logger.Debug("fetching itinerary", "destination", destination, "model", provider.Model())
	record, err := itinerary.NewService(provider).GetItinerary(ctx, destination)
	if err != nil {
		logger.Error("fetch itinerary", "kind", itinerary.Cause(err).String(), "err", err)
		return 1
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		logger.Error("encode itinerary", "err", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}
