package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"babylog/internal/errors"
	"babylog/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS nappies (
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	changer TEXT NOT NULL,
	contains_wee INTEGER NOT NULL DEFAULT 0,
	contains_poo INTEGER NOT NULL DEFAULT 0,
	poo_colour TEXT,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sleeping (
	sleep_id INTEGER NOT NULL,
	sleep_start_time TEXT NOT NULL,
	sleep_end_time TEXT,
	time_to_settle INTEGER NOT NULL DEFAULT 0,
	sleep_location TEXT NOT NULL DEFAULT '',
	temporary_wake_up_times TEXT NOT NULL DEFAULT '[]',
	settling_techniques TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS drinking (
	feed_date TEXT NOT NULL,
	bottle_fed INTEGER NOT NULL DEFAULT 0,
	duration REAL,
	start_side TEXT,
	start_side_time REAL,
	bottle_quantity REAL
);
`

// SQLiteStore is the local single-file backend. Repeated fields (wake-up
// times, settling techniques) are serialized as JSON arrays in text columns.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errors.Storef("failed to open database: %v", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return errors.Storef("failed to create schema: %v", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'babylog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errors.Storef("failed to open database: %v", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetConfigPath returns the path to the underlying database file.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) FetchDiapers() ([]models.DiaperRecord, error) {
	rows, err := s.db.Query(`SELECT date, time, changer, contains_wee, contains_poo, poo_colour, notes FROM nappies`)
	if err != nil {
		return nil, errors.Storef("failed to read nappies: %v", err)
	}
	defer rows.Close()

	var recs []models.DiaperRecord
	for rows.Next() {
		var r models.DiaperRecord
		var colour sql.NullString
		if err := rows.Scan(&r.Date, &r.Time, &r.Changer, &r.ContainsWee, &r.ContainsPoo, &colour, &r.Notes); err != nil {
			return nil, errors.Storef("failed to scan nappy row: %v", err)
		}
		if colour.Valid {
			c := colour.String
			r.PooColour = &c
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// ReplaceDiapers overwrites the whole nappies table with exactly the given
// records, in one transaction.
func (s *SQLiteStore) ReplaceDiapers(recs []models.DiaperRecord) error {
	return s.replace("nappies",
		`INSERT INTO nappies (date, time, changer, contains_wee, contains_poo, poo_colour, notes) VALUES (?,?,?,?,?,?,?)`,
		len(recs), func(i int) []interface{} {
			r := recs[i]
			var colour interface{}
			if r.PooColour != nil {
				colour = *r.PooColour
			}
			return []interface{}{r.Date, r.Time, r.Changer, r.ContainsWee, r.ContainsPoo, colour, r.Notes}
		})
}

func (s *SQLiteStore) FetchSleeps() ([]models.SleepRecord, error) {
	rows, err := s.db.Query(`SELECT sleep_id, sleep_start_time, sleep_end_time, time_to_settle, sleep_location, temporary_wake_up_times, settling_techniques FROM sleeping`)
	if err != nil {
		return nil, errors.Storef("failed to read sleeping: %v", err)
	}
	defer rows.Close()

	var recs []models.SleepRecord
	for rows.Next() {
		var r models.SleepRecord
		var start string
		var end sql.NullString
		var wakes, techniques string
		if err := rows.Scan(&r.SleepID, &start, &end, &r.TimeToSettle, &r.SleepLocation, &wakes, &techniques); err != nil {
			return nil, errors.Storef("failed to scan sleeping row: %v", err)
		}
		if r.SleepStartTime, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, errors.Storef("bad sleep_start_time %q: %v", start, err)
		}
		if end.Valid {
			t, err := time.Parse(time.RFC3339, end.String)
			if err != nil {
				return nil, errors.Storef("bad sleep_end_time %q: %v", end.String, err)
			}
			r.SleepEndTime = &t
		}
		if err := json.Unmarshal([]byte(wakes), &r.TemporaryWakeUpTimes); err != nil {
			return nil, errors.Storef("bad temporary_wake_up_times: %v", err)
		}
		if err := json.Unmarshal([]byte(techniques), &r.SettlingTechniques); err != nil {
			return nil, errors.Storef("bad settling_techniques: %v", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// ReplaceSleeps overwrites the whole sleeping table in one transaction.
func (s *SQLiteStore) ReplaceSleeps(recs []models.SleepRecord) error {
	return s.replace("sleeping",
		`INSERT INTO sleeping (sleep_id, sleep_start_time, sleep_end_time, time_to_settle, sleep_location, temporary_wake_up_times, settling_techniques) VALUES (?,?,?,?,?,?,?)`,
		len(recs), func(i int) []interface{} {
			r := recs[i]
			var end interface{}
			if r.SleepEndTime != nil {
				end = r.SleepEndTime.Format(time.RFC3339)
			}
			wakes := marshalTimeList(r.TemporaryWakeUpTimes)
			techniques, _ := json.Marshal(nonNil(r.SettlingTechniques))
			return []interface{}{r.SleepID, r.SleepStartTime.Format(time.RFC3339), end, r.TimeToSettle, r.SleepLocation, wakes, string(techniques)}
		})
}

func (s *SQLiteStore) FetchFeeds() ([]models.FeedRecord, error) {
	rows, err := s.db.Query(`SELECT feed_date, bottle_fed, duration, start_side, start_side_time, bottle_quantity FROM drinking`)
	if err != nil {
		return nil, errors.Storef("failed to read drinking: %v", err)
	}
	defer rows.Close()

	var recs []models.FeedRecord
	for rows.Next() {
		var r models.FeedRecord
		var date string
		var duration, sideTime, quantity sql.NullFloat64
		var side sql.NullString
		if err := rows.Scan(&date, &r.BottleFed, &duration, &side, &sideTime, &quantity); err != nil {
			return nil, errors.Storef("failed to scan drinking row: %v", err)
		}
		if r.FeedDate, err = time.Parse(time.RFC3339, date); err != nil {
			return nil, errors.Storef("bad feed_date %q: %v", date, err)
		}
		if duration.Valid {
			v := duration.Float64
			r.Duration = &v
		}
		if side.Valid {
			r.StartSide = models.Side(side.String)
		}
		if sideTime.Valid {
			v := sideTime.Float64
			r.StartSideTime = &v
		}
		if quantity.Valid {
			v := quantity.Float64
			r.BottleQuantity = &v
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// ReplaceFeeds overwrites the whole drinking table in one transaction.
func (s *SQLiteStore) ReplaceFeeds(recs []models.FeedRecord) error {
	return s.replace("drinking",
		`INSERT INTO drinking (feed_date, bottle_fed, duration, start_side, start_side_time, bottle_quantity) VALUES (?,?,?,?,?,?)`,
		len(recs), func(i int) []interface{} {
			r := recs[i]
			var side interface{}
			if r.StartSide != "" {
				side = string(r.StartSide)
			}
			return []interface{}{r.FeedDate.Format(time.RFC3339), r.BottleFed,
				nullableFloat(r.Duration), side, nullableFloat(r.StartSideTime), nullableFloat(r.BottleQuantity)}
		})
}

// replace runs the full-table overwrite: delete everything, insert the new
// collection, commit. A failure rolls back and surfaces a store error; the
// caller must not assume anything about the table until it re-reads.
func (s *SQLiteStore) replace(table, insert string, n int, args func(i int) []interface{}) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Storef("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return errors.Storef("failed to clear %s: %v", table, err)
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return errors.Storef("failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			return errors.Storef("failed to insert into %s: %v", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Storef("failed to commit %s replace: %v", table, err)
	}
	return nil
}

func marshalTimeList(ts []time.Time) string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Format(time.RFC3339))
	}
	b, _ := json.Marshal(out)
	return string(b)
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func nullableFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
