package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/CloudyJayC/DocumentScannerAI/internal/api"
	"github.com/CloudyJayC/DocumentScannerAI/internal/config"
	"github.com/CloudyJayC/DocumentScannerAI/internal/llm"
	"github.com/CloudyJayC/DocumentScannerAI/internal/report"
	"github.com/CloudyJayC/DocumentScannerAI/internal/scanner"
	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/logger"
)

func main() {
	filePath := flag.String("file", "", "Path to the PDF file to analyze")
	configPath := flag.String("config", "", "Path to a YAML config file (optional)")
	outPath := flag.String("out", "", "Report output path (default: <file>_report.<ext>)")
	format := flag.String("format", "text", "Report format: text or html")
	serve := flag.Bool("serve", false, "Run the HTTP API instead of a one-shot scan")
	port := flag.Int("port", 8080, "API port when -serve is set")
	flag.Parse()

	logger.Setup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitErr(fmt.Sprintf("config: %v", err))
	}

	s := scanner.New(cfg, llm.NewClient(cfg))

	if *serve {
		if err := api.NewServer(*port, s).Start(); err != nil {
			exitErr(fmt.Sprintf("server: %v", err))
		}
		return
	}

	if *filePath == "" {
		flag.Usage()
		exitErr("a PDF file is required (use -file)")
	}

	data, err := s.Run(context.Background(), *filePath)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInput):
			exitErr(fmt.Sprintf("rejected: %v", err))
		case errors.Is(err, apperrors.ErrExtraction):
			exitErr(fmt.Sprintf("could not read file: %v", err))
		case errors.Is(err, apperrors.ErrServiceUnavailable):
			exitErr(err.Error())
		default:
			exitErr(fmt.Sprintf("analysis failed: %v", err))
		}
	}

	out := *outPath
	if out == "" {
		if *format == "html" {
			out = *filePath + "_report.html"
		} else {
			out = *filePath + "_report.txt"
		}
	}
	if err := report.ForFormat(*format).Export(data, out); err != nil {
		exitErr(fmt.Sprintf("write report: %v", err))
	}

	slog.Info("report written", "path", out, "analysis_source", data.AnalysisSource)
	fmt.Printf("Report saved to: %s\n", out)
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "Error: "+msg)
	os.Exit(1)
}
