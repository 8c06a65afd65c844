package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		phone_number VARCHAR UNIQUE NOT NULL,
		name VARCHAR,
		area VARCHAR,
		password VARCHAR,
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id SERIAL PRIMARY KEY,
		title VARCHAR NOT NULL,
		description VARCHAR,
		image_url VARCHAR,
		voice_url VARCHAR,
		latitude FLOAT,
		longitude FLOAT,
		department VARCHAR,
		issue_type VARCHAR,
		status VARCHAR DEFAULT 'Pending',
		estimated_completion_time VARCHAR,
		severity_score FLOAT,
		confidence_score FLOAT,
		department_suggested VARCHAR,
		yes_votes INTEGER DEFAULT 0,
		no_votes INTEGER DEFAULT 0,
		idk_votes INTEGER DEFAULT 0,
		votes INTEGER DEFAULT 0,
		community_yes_ratio FLOAT DEFAULT 0.5,
		department_urgency_index FLOAT DEFAULT 0.5,
		critical_area_weight FLOAT DEFAULT 0.3,
		priority_score FLOAT DEFAULT 0.0,
		user_feedback VARCHAR,
		user_feedback_rating INTEGER,
		reporter_id INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS votes (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id),
		complaint_id INTEGER REFERENCES complaints(id),
		vote_type VARCHAR(10),
		UNIQUE(user_id, complaint_id)
	)`,
	`CREATE TABLE IF NOT EXISTS department_urgency_matrix (
		id SERIAL PRIMARY KEY,
		department VARCHAR,
		issue_type VARCHAR,
		urgency_index FLOAT,
		UNIQUE(department, issue_type)
	)`,
	`CREATE TABLE IF NOT EXISTS critical_places (
		id SERIAL PRIMARY KEY,
		name VARCHAR,
		place_type VARCHAR,
		location geography(POINT, 4326),
		weight FLOAT
	)`,
	`CREATE TABLE IF NOT EXISTS workers (
		id SERIAL PRIMARY KEY,
		name VARCHAR,
		department VARCHAR,
		status VARCHAR,
		phone VARCHAR,
		location VARCHAR,
		rating FLOAT,
		active_tasks INTEGER DEFAULT 0,
		completed_tasks INTEGER DEFAULT 0
	)`,
}

const seedUrgencyMatrix = `
	INSERT INTO department_urgency_matrix (department, issue_type, urgency_index) VALUES
	('Water Supply', 'Water Leakage', 0.6),
	('Water Supply', 'Low Water Pressure', 0.4),
	('Water Supply', 'Broken Pipeline', 1.0),
	('Water Supply', 'No Water Supply', 0.8),
	('Electricity', 'Exposed Wire', 1.0),
	('Electricity', 'Power Failure', 0.9),
	('Electricity', 'Transformer Issue', 0.9),
	('Road & Infrastructure', 'Pothole', 0.6),
	('Road & Infrastructure', 'Road Crack', 0.4),
	('Road & Infrastructure', 'Blocked Drain', 0.8),
	('Road & Infrastructure', 'Broken Footpath', 0.5),
	('Waste Management', 'Garbage Heap', 0.5),
	('Waste Management', 'Stray Animal Issue', 0.7),
	('Waste Management', 'Drainage Block', 0.8),
	('Streetlight Maintenance', 'Light Not Working', 0.4),
	('Streetlight Maintenance', 'Continuous Dimm', 0.3),
	('Sanitation', 'Clogged Sewer', 0.9),
	('Sanitation', 'Public Toilet Issue', 0.7)
	ON CONFLICT DO NOTHING
`

const seedCriticalPlaces = `
	INSERT INTO critical_places (name, place_type, location, weight)
	SELECT 'City Hospital', 'Hospital', ST_SetSRID(ST_MakePoint(77.2090, 28.6139), 4326)::geography, 1.0
	WHERE NOT EXISTS (SELECT 1 FROM critical_places)
`

// Bootstrap creates the schema and seeds the reference tables. Idempotent;
// runs once at process start.
func (s *Store) Bootstrap(ctx context.Context) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		if _, err := tx.Exec(ctx, seedUrgencyMatrix); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, seedCriticalPlaces); err != nil {
			return err
		}
		return nil
	})
}
