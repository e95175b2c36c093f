package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/esuntp/network-test/internal/report"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	container, err := BuildContainer(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netdiag: %v\n", err)
		os.Exit(1)
	}

	logger := container.Logger
	logger.Info("starting diagnostic run",
		"app", container.Config.App.Name,
		"version", container.Config.App.Version,
	)

	plan := container.BuildPlan()
	resultSet := container.Orchestrator.Run(context.Background(), plan)

	text := report.Render(resultSet)
	fmt.Print(text)

	if dir := container.Config.Report.Dir; dir != "" {
		path, err := writeReport(dir, text)
		if err != nil {
			logger.Warn("report not written to disk", "error", err.Error())
		} else {
			logger.Info("report written", "path", path)
		}
	}
}

func writeReport(dir, text string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("netdiag-%s.txt", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
