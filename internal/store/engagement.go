// Package store archives per-video collection envelopes in SQLite Cloud
// so engagement data can be queried across runs. The archive is
// optional: the collector only opens it when a connection string is
// configured, and archive failures never affect the on-disk artifacts.
package store

import (
	"fmt"
	"log"
	"strings"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Database represents the archive connection and operations
type Database struct {
	db *sqlitecloud.SQCloud
}

// NewDatabase connects to SQLite Cloud and ensures the archive table exists
func NewDatabase(connString string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(connString))

	db, err := sqlitecloud.Connect(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %v", err)
	}

	database := &Database{db: db}
	if err := database.createTables(); err != nil {
		return nil, err
	}

	return database, nil
}

// maskConnectionString hides the API key in logs for security
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

// executeSQL executes a SQL command using SQLite Cloud
func (d *Database) executeSQL(sql string, args ...interface{}) error {
	if len(args) > 0 {
		return d.db.ExecuteArray(sql, args)
	}
	return d.db.Execute(sql)
}

// createTables creates the archive table if it doesn't exist
func (d *Database) createTables() error {
	sql := `CREATE TABLE IF NOT EXISTS video_engagement (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		video_id TEXT NOT NULL,
		json_response TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT unique_video_engagement UNIQUE(run_id, video_id)
	)`

	if err := d.executeSQL(sql); err != nil {
		return fmt.Errorf("failed to create table: %v", err)
	}
	return nil
}

// StoreEngagement upserts the enriched envelope for one collected video
func (d *Database) StoreEngagement(runID, videoID string, envelope []byte) error {
	log.Printf("Archiving engagement for video %s (run %s)", videoID, runID)

	sql := `INSERT INTO video_engagement (run_id, video_id, json_response)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id, video_id)
		DO UPDATE SET json_response = excluded.json_response, created_at = CURRENT_TIMESTAMP`

	if err := d.executeSQL(sql, runID, videoID, string(envelope)); err != nil {
		return fmt.Errorf("failed to store engagement: %v", err)
	}
	return nil
}

// Close closes the archive connection
func (d *Database) Close() {
	if d.db != nil {
		d.db.Close()
	}
}
