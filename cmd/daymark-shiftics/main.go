package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/daymark/internal/ics"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	input := flag.String("in", "", "path to the source .ics file")
	output := flag.String("out", "", "path to write the shifted .ics file (default: <in>.shifted.ics)")
	target := flag.String("target", "", "date the earliest event should land on (YYYY-MM-DD)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("daymark-shiftics", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *input == "" || *target == "" {
		fmt.Fprintf(os.Stderr, "Usage: daymark-shiftics -in <file.ics> -target <YYYY-MM-DD> [-out <file.ics>]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	targetDate, err := time.Parse("2006-01-02", *target)
	if err != nil {
		log.Error("invalid target date", "target", *target, "error", err)
		os.Exit(1)
	}

	content, err := os.ReadFile(*input)
	if err != nil {
		log.Error("failed to read input", "path", *input, "error", err)
		os.Exit(1)
	}

	shifted, delta, err := ics.Shift(content, targetDate)
	if err != nil {
		log.Error("nothing to shift", "path", *input, "error", err)
		os.Exit(1)
	}

	outPath := *output
	if outPath == "" {
		outPath = *input + ".shifted.ics"
	}
	if err := os.WriteFile(outPath, shifted, 0o644); err != nil {
		log.Error("failed to write output", "path", outPath, "error", err)
		os.Exit(1)
	}

	log.Info("timetable shifted",
		"in", *input,
		"out", outPath,
		"delta_days", int(delta.Hours()/24),
	)
}
