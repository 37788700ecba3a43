package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory containing seed CSV files",
		Value:   "./data/seeds",
		EnvVars: []string{"SEED_DATA_DIR"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Initialize the schema and load inventory data",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Create the inventory and movement tables",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runInitSchema,
			},
			{
				Name:   "inventory",
				Usage:  "Load inventory items from inventory_items.csv",
				Flags:  []cli.Flag{newDBURLFlag(), newDataDirFlag()},
				Action: runSeedInventory,
			},
			{
				Name:   "movements",
				Usage:  "Load deduction and wastage history from deductions.csv and wastage.csv",
				Flags:  []cli.Flag{newDBURLFlag(), newDataDirFlag()},
				Action: runSeedMovements,
			},
			{
				Name:  "all",
				Usage: "Initialize the schema and load everything",
				Flags: []cli.Flag{newDBURLFlag(), newDataDirFlag()},
				Action: func(c *cli.Context) error {
					if err := runInitSchema(c); err != nil {
						return err
					}
					if err := runSeedInventory(c); err != nil {
						return err
					}
					return runSeedMovements(c)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Dates are stored as YYYY-MM-DD text so the report layer can filter them
// with plain string comparison.
const schema = `
CREATE TABLE IF NOT EXISTS inventory_items (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	unit          TEXT NOT NULL DEFAULT '',
	quantity      DOUBLE PRECISION NOT NULL DEFAULT 0,
	min_stock     DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
	category      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS deductions (
	id         BIGSERIAL PRIMARY KEY,
	item_id    TEXT NOT NULL,
	item_name  TEXT NOT NULL DEFAULT '',
	quantity   DOUBLE PRECISION NOT NULL,
	order_id   TEXT NOT NULL DEFAULT '',
	total_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
	date       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS wastage (
	id         BIGSERIAL PRIMARY KEY,
	item_id    TEXT NOT NULL,
	item_name  TEXT NOT NULL DEFAULT '',
	quantity   DOUBLE PRECISION NOT NULL,
	reason     TEXT NOT NULL DEFAULT 'Other',
	cost_loss  DOUBLE PRECISION NOT NULL DEFAULT 0,
	date       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_deductions_date ON deductions (date);
CREATE INDEX IF NOT EXISTS idx_deductions_item ON deductions (item_id);
CREATE INDEX IF NOT EXISTS idx_wastage_date ON wastage (date);
CREATE INDEX IF NOT EXISTS idx_wastage_item ON wastage (item_id);
`

func runInitSchema(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Println("Creating schema...")
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("Schema ready")
	return nil
}

func runSeedInventory(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	path := filepath.Join(c.String("data-dir"), "inventory_items.csv")
	count, err := seedInventoryItems(ctx, tx, path)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Seeded %d inventory items", count)
	return nil
}

func runSeedMovements(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dataDir := c.String("data-dir")

	deductions, err := seedDeductions(ctx, tx, filepath.Join(dataDir, "deductions.csv"))
	if err != nil {
		return err
	}
	wastage, err := seedWastage(ctx, tx, filepath.Join(dataDir, "wastage.csv"))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Seeded %d deductions and %d wastage events", deductions, wastage)
	return nil
}

// seedInventoryItems expects columns id, name, unit, quantity, min_stock,
// cost_per_unit, category in any order.
func seedInventoryItems(ctx context.Context, tx *sql.Tx, path string) (int, error) {
	log.Printf("Seeding inventory_items from %s", path)

	const query = `
		INSERT INTO inventory_items (id, name, unit, quantity, min_stock, cost_per_unit, category, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			unit = EXCLUDED.unit,
			quantity = EXCLUDED.quantity,
			min_stock = EXCLUDED.min_stock,
			cost_per_unit = EXCLUDED.cost_per_unit,
			category = EXCLUDED.category,
			updated_at = NOW()
	`

	count := 0
	err := forEachRecord(path, func(row map[string]string) error {
		quantity, err := parseFloat(row["quantity"])
		if err != nil {
			return fmt.Errorf("invalid quantity for item %s: %w", row["id"], err)
		}
		minStock, err := parseFloat(row["min_stock"])
		if err != nil {
			return fmt.Errorf("invalid min_stock for item %s: %w", row["id"], err)
		}
		costPerUnit, err := parseFloat(row["cost_per_unit"])
		if err != nil {
			return fmt.Errorf("invalid cost_per_unit for item %s: %w", row["id"], err)
		}

		if _, err := tx.ExecContext(ctx, query,
			row["id"], row["name"], row["unit"],
			quantity, minStock, costPerUnit, row["category"],
		); err != nil {
			return fmt.Errorf("failed to upsert item %s: %w", row["id"], err)
		}
		count++
		return nil
	})
	return count, err
}

// seedDeductions expects columns item_id, item_name, quantity, order_id,
// total_cost, date, created_at.
func seedDeductions(ctx context.Context, tx *sql.Tx, path string) (int, error) {
	log.Printf("Seeding deductions from %s", path)

	const query = `
		INSERT INTO deductions (item_id, item_name, quantity, order_id, total_cost, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	count := 0
	err := forEachRecord(path, func(row map[string]string) error {
		quantity, err := parseFloat(row["quantity"])
		if err != nil {
			return fmt.Errorf("invalid quantity for deduction of %s: %w", row["item_id"], err)
		}
		totalCost, err := parseFloat(row["total_cost"])
		if err != nil {
			return fmt.Errorf("invalid total_cost for deduction of %s: %w", row["item_id"], err)
		}
		date, createdAt, err := parseEventDates(row)
		if err != nil {
			return fmt.Errorf("deduction of %s: %w", row["item_id"], err)
		}

		if _, err := tx.ExecContext(ctx, query,
			row["item_id"], row["item_name"], quantity,
			row["order_id"], totalCost, date, createdAt,
		); err != nil {
			return fmt.Errorf("failed to insert deduction of %s: %w", row["item_id"], err)
		}
		count++
		return nil
	})
	return count, err
}

// seedWastage expects columns item_id, item_name, quantity, reason,
// cost_loss, date, created_at.
func seedWastage(ctx context.Context, tx *sql.Tx, path string) (int, error) {
	log.Printf("Seeding wastage from %s", path)

	const query = `
		INSERT INTO wastage (item_id, item_name, quantity, reason, cost_loss, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	count := 0
	err := forEachRecord(path, func(row map[string]string) error {
		quantity, err := parseFloat(row["quantity"])
		if err != nil {
			return fmt.Errorf("invalid quantity for wastage of %s: %w", row["item_id"], err)
		}
		costLoss, err := parseFloat(row["cost_loss"])
		if err != nil {
			return fmt.Errorf("invalid cost_loss for wastage of %s: %w", row["item_id"], err)
		}
		date, createdAt, err := parseEventDates(row)
		if err != nil {
			return fmt.Errorf("wastage of %s: %w", row["item_id"], err)
		}

		reason := strings.TrimSpace(row["reason"])
		if reason == "" {
			reason = "Other"
		}

		if _, err := tx.ExecContext(ctx, query,
			row["item_id"], row["item_name"], quantity,
			reason, costLoss, date, createdAt,
		); err != nil {
			return fmt.Errorf("failed to insert wastage of %s: %w", row["item_id"], err)
		}
		count++
		return nil
	})
	return count, err
}

// forEachRecord streams a headed CSV file, handing each record to fn as a
// header-keyed map.
func forEachRecord(path string, fn func(row map[string]string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

func parseFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
}

// parseEventDates returns the calendar date and the creation timestamp for
// a movement row. A missing created_at falls back to midnight UTC of the
// calendar date so ordering stays stable.
func parseEventDates(row map[string]string) (string, time.Time, error) {
	date := strings.TrimSpace(row["date"])
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	raw := strings.TrimSpace(row["created_at"])
	if raw == "" {
		createdAt, _ := time.Parse("2006-01-02", date)
		return date, createdAt, nil
	}

	createdAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid created_at %q: %w", raw, err)
	}
	return date, createdAt, nil
}
