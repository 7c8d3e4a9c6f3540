// Package postgres implements the dataset repository over sqlx.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vizlens/domain/core"
	"vizlens/domain/dataset"
	"vizlens/domain/profile"
	"vizlens/ports"

	"github.com/jmoiron/sqlx"
)

// datasetRepository implements ports.DatasetRepository
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sqlx.DB) ports.DatasetRepository {
	return &datasetRepository{db: db}
}

// Migrate creates the repository's tables if they do not exist
func Migrate(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		original_filename TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_size BIGINT NOT NULL DEFAULT 0,
		record_count INT NOT NULL DEFAULT 0,
		field_count INT NOT NULL DEFAULT 0,
		missing_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT 'upload',
		status TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		schema JSONB,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS dataset_profiles (
		dataset_id TEXT PRIMARY KEY REFERENCES datasets(id) ON DELETE CASCADE,
		report JSONB NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run dataset migrations: %w", err)
	}
	return nil
}

// Create inserts a new dataset record
func (r *datasetRepository) Create(ctx context.Context, ds *dataset.Dataset) error {
	schemaJSON, err := json.Marshal(ds.Schema)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	query := `INSERT INTO datasets (
		id, original_filename, file_type, file_size, record_count, field_count,
		missing_rate, source, status, error_message, schema, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		ds.ID, ds.OriginalFilename, ds.FileType, ds.FileSize, ds.RecordCount, ds.FieldCount,
		ds.MissingRate, ds.Source, ds.Status, ds.ErrorMessage, schemaJSON, ds.CreatedAt, ds.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	return nil
}

// GetByID retrieves a dataset by its ID
func (r *datasetRepository) GetByID(ctx context.Context, id core.DatasetID) (*dataset.Dataset, error) {
	query := `SELECT id, original_filename, file_type, file_size, record_count, field_count,
		missing_rate, source, status, error_message, schema, created_at, updated_at
	FROM datasets WHERE id = $1`

	row := r.db.QueryRowxContext(ctx, query, id)
	ds, err := scanDataset(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dataset %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return ds, nil
}

// List returns dataset records newest first
func (r *datasetRepository) List(ctx context.Context, limit, offset int) ([]*dataset.Dataset, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, original_filename, file_type, file_size, record_count, field_count,
		missing_rate, source, status, error_message, schema, created_at, updated_at
	FROM datasets ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	datasets := []*dataset.Dataset{}
	for rows.Next() {
		ds, err := scanDataset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// UpdateStatus transitions a dataset's processing state
func (r *datasetRepository) UpdateStatus(ctx context.Context, id core.DatasetID, status dataset.DatasetStatus, errorMsg string) error {
	query := `UPDATE datasets SET status = $2, error_message = $3, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, status, errorMsg)
	if err != nil {
		return fmt.Errorf("failed to update dataset status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("dataset %s not found", id)
	}
	return nil
}

// SaveProfile upserts the profile report for a dataset
func (r *datasetRepository) SaveProfile(ctx context.Context, id core.DatasetID, report *profile.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal profile report: %w", err)
	}
	query := `INSERT INTO dataset_profiles (dataset_id, report) VALUES ($1, $2)
		ON CONFLICT (dataset_id) DO UPDATE SET report = EXCLUDED.report`
	if _, err := r.db.ExecContext(ctx, query, id, reportJSON); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile loads the stored profile report for a dataset
func (r *datasetRepository) GetProfile(ctx context.Context, id core.DatasetID) (*profile.Report, error) {
	var reportJSON []byte
	err := r.db.QueryRowxContext(ctx, `SELECT report FROM dataset_profiles WHERE dataset_id = $1`, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile for dataset %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var report profile.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile report: %w", err)
	}
	return &report, nil
}

// Delete removes a dataset and its profile
func (r *datasetRepository) Delete(ctx context.Context, id core.DatasetID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDataset(row rowScanner) (*dataset.Dataset, error) {
	var ds dataset.Dataset
	var schemaJSON []byte
	err := row.Scan(
		&ds.ID, &ds.OriginalFilename, &ds.FileType, &ds.FileSize, &ds.RecordCount, &ds.FieldCount,
		&ds.MissingRate, &ds.Source, &ds.Status, &ds.ErrorMessage, &schemaJSON, &ds.CreatedAt, &ds.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(schemaJSON) > 0 {
		if err := json.Unmarshal(schemaJSON, &ds.Schema); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
		}
	}
	return &ds, nil
}
