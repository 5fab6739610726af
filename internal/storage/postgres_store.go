package storage

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"encoding/json"

	pq "github.com/lib/pq"

	"babylog/internal/errors"
	"babylog/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS nappies (
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	changer TEXT NOT NULL,
	contains_wee BOOLEAN NOT NULL DEFAULT FALSE,
	contains_poo BOOLEAN NOT NULL DEFAULT FALSE,
	poo_colour TEXT,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sleeping (
	sleep_id BIGINT NOT NULL,
	sleep_start_time TIMESTAMPTZ NOT NULL,
	sleep_end_time TIMESTAMPTZ,
	time_to_settle INTEGER NOT NULL DEFAULT 0,
	sleep_location TEXT NOT NULL DEFAULT '',
	temporary_wake_up_times JSONB NOT NULL DEFAULT '[]',
	settling_techniques JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS drinking (
	feed_date TIMESTAMPTZ NOT NULL,
	bottle_fed BOOLEAN NOT NULL DEFAULT FALSE,
	duration DOUBLE PRECISION,
	start_side TEXT,
	start_side_time DOUBLE PRECISION,
	bottle_quantity DOUBLE PRECISION
);
`

var (
	ErrInvalidConnectionString = stderrors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = stderrors.New("connection string must not contain a password")
)

// PostgresStore is the remote analytic-table backend. The write model is the
// same wholesale replace as every other Provider: TRUNCATE plus bulk insert
// inside one transaction.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

// NewPostgresStore creates a store for the given connection string.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password, which is never allowed on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return true
			}
		}
		return false
	}
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}

// CheckConnString checks that a connection string is a valid PostgreSQL URI
// or DSN. It does not reject embedded passwords; that rule applies only to
// connection strings given on the command line.
func CheckConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	return nil
}

// ValidateConnString checks that a connection string is a valid PostgreSQL
// URI or DSN and carries no embedded password.
func ValidateConnString(connStr string) (bool, error) {
	if err := CheckConnString(connStr); err != nil {
		return false, err
	}
	if HasEmbeddedCredentials(connStr) {
		return false, ErrEmbeddedCredentials
	}
	return true, nil
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return errors.Storef("failed to open database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	s.db = db

	if err := s.db.Ping(); err != nil {
		if strings.Contains(err.Error(), "SSL is not enabled on the server") {
			return errors.Storef("failed to connect to database: %v (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return errors.Storef("failed to connect to database: %v", err)
	}
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return errors.Storef("failed to create schema: %v", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetConfigPath returns a non-sensitive identifier instead of the full
// connection string.
func (s *PostgresStore) GetConfigPath() string {
	return "postgresql"
}

func (s *PostgresStore) FetchDiapers() ([]models.DiaperRecord, error) {
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

func (s *PostgresStore) ReplaceDiapers(recs []models.DiaperRecord) error {
	return s.replace("nappies",
		`INSERT INTO nappies (date, time, changer, contains_wee, contains_poo, poo_colour, notes) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		len(recs), func(i int) []interface{} {
			r := recs[i]
			var colour interface{}
			if r.PooColour != nil {
				colour = *r.PooColour
			}
			return []interface{}{r.Date, r.Time, r.Changer, r.ContainsWee, r.ContainsPoo, colour, r.Notes}
		})
}

func (s *PostgresStore) FetchSleeps() ([]models.SleepRecord, error) {
	rows, err := s.db.Query(`SELECT sleep_id, sleep_start_time, sleep_end_time, time_to_settle, sleep_location, temporary_wake_up_times, settling_techniques FROM sleeping`)
	if err != nil {
		return nil, errors.Storef("failed to read sleeping: %v", err)
	}
	defer rows.Close()

	var recs []models.SleepRecord
	for rows.Next() {
		var r models.SleepRecord
		var end sql.NullTime
		var wakes, techniques []byte
		if err := rows.Scan(&r.SleepID, &r.SleepStartTime, &end, &r.TimeToSettle, &r.SleepLocation, &wakes, &techniques); err != nil {
			return nil, errors.Storef("failed to scan sleeping row: %v", err)
		}
		if end.Valid {
			t := end.Time
			r.SleepEndTime = &t
		}
		if err := json.Unmarshal(wakes, &r.TemporaryWakeUpTimes); err != nil {
			return nil, errors.Storef("bad temporary_wake_up_times: %v", err)
		}
		if err := json.Unmarshal(techniques, &r.SettlingTechniques); err != nil {
			return nil, errors.Storef("bad settling_techniques: %v", err)
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (s *PostgresStore) ReplaceSleeps(recs []models.SleepRecord) error {
	return s.replace("sleeping",
		`INSERT INTO sleeping (sleep_id, sleep_start_time, sleep_end_time, time_to_settle, sleep_location, temporary_wake_up_times, settling_techniques) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		len(recs), func(i int) []interface{} {
			r := recs[i]
			var end interface{}
			if r.SleepEndTime != nil {
				end = *r.SleepEndTime
			}
			wakes, _ := json.Marshal(nonNilTimes(r.TemporaryWakeUpTimes))
			techniques, _ := json.Marshal(nonNil(r.SettlingTechniques))
			return []interface{}{r.SleepID, r.SleepStartTime, end, r.TimeToSettle, r.SleepLocation, wakes, techniques}
		})
}

func (s *PostgresStore) FetchFeeds() ([]models.FeedRecord, error) {
	rows, err := s.db.Query(`SELECT feed_date, bottle_fed, duration, start_side, start_side_time, bottle_quantity FROM drinking`)
	if err != nil {
		return nil, errors.Storef("failed to read drinking: %v", err)
	}
	defer rows.Close()

	var recs []models.FeedRecord
	for rows.Next() {
		var r models.FeedRecord
		var duration, sideTime, quantity sql.NullFloat64
		var side sql.NullString
		if err := rows.Scan(&r.FeedDate, &r.BottleFed, &duration, &side, &sideTime, &quantity); err != nil {
			return nil, errors.Storef("failed to scan drinking row: %v", err)
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

func (s *PostgresStore) ReplaceFeeds(recs []models.FeedRecord) error {
	return s.replace("drinking",
		`INSERT INTO drinking (feed_date, bottle_fed, duration, start_side, start_side_time, bottle_quantity) VALUES ($1,$2,$3,$4,$5,$6)`,
		len(recs), func(i int) []interface{} {
			r := recs[i]
			var side interface{}
			if r.StartSide != "" {
				side = string(r.StartSide)
			}
			return []interface{}{r.FeedDate, r.BottleFed,
				nullableFloat(r.Duration), side, nullableFloat(r.StartSideTime), nullableFloat(r.BottleQuantity)}
		})
}

func (s *PostgresStore) replace(table, insert string, n int, args func(i int) []interface{}) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Storef("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("TRUNCATE " + table); err != nil {
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

func nonNilTimes(ts []time.Time) []time.Time {
	if ts == nil {
		return []time.Time{}
	}
	return ts
}
