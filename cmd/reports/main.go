// cmd/reports/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iscsys/backend-go/internal/cache"
	"github.com/iscsys/backend-go/internal/config"
	"github.com/iscsys/backend-go/internal/domain"
	"github.com/iscsys/backend-go/internal/repository/postgres"
	"github.com/iscsys/backend-go/internal/service"
	"github.com/iscsys/backend-go/internal/storage"
	"github.com/urfave/cli/v2"
)

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "start",
			Usage: "Inclusive range start (YYYY-MM-DD), empty for open",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "Inclusive range end (YYYY-MM-DD), empty for open",
		},
		&cli.BoolFlag{
			Name:  "upload",
			Usage: "Upload the export to object storage after writing it",
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "reports",
		Usage: "Export analytics reports as CSV",
		Commands: []*cli.Command{
			{
				Name:   "truth-table",
				Usage:  "Export the reconciled stock ledger for a date range",
				Flags:  rangeFlags(),
				Action: runTruthTableExport,
			},
			{
				Name:   "wastage",
				Usage:  "Export the wastage attribution report for a date range",
				Flags:  rangeFlags(),
				Action: runWastageExport,
			},
			{
				Name:   "list",
				Usage:  "List exports previously uploaded to object storage",
				Action: runListExports,
			},
			{
				Name:      "fetch",
				Usage:     "Download an uploaded export into the export directory",
				ArgsUsage: "<export-name>",
				Action:    runFetchExport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newService(cfg *config.Config) (*service.ReportService, func(), error) {
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := service.NewReportService(
		postgres.NewInventoryRepository(db),
		postgres.NewMovementRepository(db),
		cache.NewNoopReportCache(),
		cfg.Analytics.UsageWindowDays,
	)
	return svc, func() { db.Close() }, nil
}

func parseRange(c *cli.Context) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		Start: c.String("start"),
		End:   c.String("end"),
	}
	for _, bound := range []string{filter.Start, filter.End} {
		if bound == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", bound); err != nil {
			return domain.ReportFilter{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", bound)
		}
	}
	return filter, nil
}

func runTruthTableExport(c *cli.Context) error {
	cfg := config.Load()
	filter, err := parseRange(c)
	if err != nil {
		return err
	}

	svc, closeDB, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	table, err := svc.TruthTable(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to build truth table: %w", err)
	}

	data, err := renderTruthTableCSV(table)
	if err != nil {
		return err
	}

	return writeExport(ctx, cfg, c.Bool("upload"), exportName("truth_table", filter), data)
}

func runWastageExport(c *cli.Context) error {
	cfg := config.Load()
	filter, err := parseRange(c)
	if err != nil {
		return err
	}

	svc, closeDB, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	report, err := svc.WastageReport(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to build wastage report: %w", err)
	}

	data, err := renderWastageCSV(report)
	if err != nil {
		return err
	}

	return writeExport(ctx, cfg, c.Bool("upload"), exportName("wastage", filter), data)
}

const exportPrefix = "exports/"

func newStorageClient(cfg *config.Config) (storage.ObjectStorage, error) {
	if !cfg.Storage.Enabled {
		return nil, fmt.Errorf("object storage is not enabled")
	}
	return storage.NewMinioClient(cfg.Storage)
}

func runListExports(c *cli.Context) error {
	cfg := config.Load()
	client, err := newStorageClient(cfg)
	if err != nil {
		return err
	}

	objects, err := remoteExports(context.Background(), client)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		log.Println("No uploaded exports found")
		return nil
	}
	for _, obj := range objects {
		log.Printf("%s (%d bytes)", strings.TrimPrefix(obj.Key, exportPrefix), obj.Size)
	}
	return nil
}

func runFetchExport(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("export name is required")
	}

	cfg := config.Load()
	client, err := newStorageClient(cfg)
	if err != nil {
		return err
	}

	dest, err := fetchExport(context.Background(), client, name, cfg.Analytics.ExportDir)
	if err != nil {
		return err
	}
	log.Printf("Fetched %s", dest)
	return nil
}

func remoteExports(ctx context.Context, store storage.ObjectStorage) ([]storage.ObjectInfo, error) {
	objects, err := store.ListObjects(ctx, exportPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	return objects, nil
}

func fetchExport(ctx context.Context, store storage.ObjectStorage, name, dir string) (string, error) {
	dest := filepath.Join(dir, name)
	if err := store.DownloadObject(ctx, exportPrefix+name, dest); err != nil {
		return "", fmt.Errorf("failed to fetch export %s: %w", name, err)
	}
	return dest, nil
}

func exportName(report string, filter domain.ReportFilter) string {
	start := filter.Start
	if start == "" {
		start = "open"
	}
	end := filter.End
	if end == "" {
		end = "open"
	}
	return fmt.Sprintf("%s_%s_%s.csv", report, start, end)
}

func writeExport(ctx context.Context, cfg *config.Config, upload bool, name string, data []byte) error {
	path := filepath.Join(cfg.Analytics.ExportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export %s: %w", path, err)
	}
	log.Printf("Wrote %s (%d bytes)", path, len(data))

	if !upload {
		return nil
	}

	client, err := newStorageClient(cfg)
	if err != nil {
		return err
	}
	if err := client.UploadObject(ctx, exportPrefix+name, data); err != nil {
		return err
	}
	log.Printf("Uploaded %s%s", exportPrefix, name)
	return nil
}
