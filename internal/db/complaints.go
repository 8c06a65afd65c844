package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/urbansathi/backend/internal/models"
)

// NULL tallies predate the vote columns; treat them as zero on every read.
const complaintColumns = `id, title, description, image_url, voice_url, latitude, longitude,
	department, issue_type, status, estimated_completion_time,
	severity_score, confidence_score, department_suggested,
	COALESCE(yes_votes, 0), COALESCE(no_votes, 0), COALESCE(idk_votes, 0), COALESCE(votes, 0),
	community_yes_ratio, department_urgency_index, critical_area_weight, priority_score,
	user_feedback, user_feedback_rating, reporter_id, created_at`

func scanComplaint(row pgx.Row) (models.Complaint, error) {
	var c models.Complaint
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.VoiceURL, &c.Latitude, &c.Longitude,
		&c.Department, &c.IssueType, &c.Status, &c.EstimatedCompletionTime,
		&c.SeverityScore, &c.ConfidenceScore, &c.DepartmentSuggested,
		&c.YesVotes, &c.NoVotes, &c.IdkVotes, &c.Votes,
		&c.CommunityYesRatio, &c.DepartmentUrgencyIndex, &c.CriticalAreaWeight, &c.PriorityScore,
		&c.UserFeedback, &c.UserFeedbackRating, &c.ReporterID, &c.CreatedAt,
	)
	return c, err
}

func (s *Store) InsertComplaint(ctx context.Context, c *models.Complaint) error {
	return s.Pool.QueryRow(ctx, `
		INSERT INTO complaints (
			title, description, image_url, voice_url, latitude, longitude,
			department, issue_type, status,
			severity_score, confidence_score, department_suggested,
			yes_votes, no_votes, idk_votes, votes,
			community_yes_ratio, department_urgency_index, critical_area_weight, priority_score,
			reporter_id, created_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,NOW())
		RETURNING id, created_at
	`,
		c.Title, c.Description, c.ImageURL, c.VoiceURL, c.Latitude, c.Longitude,
		c.Department, c.IssueType, c.Status,
		c.SeverityScore, c.ConfidenceScore, c.DepartmentSuggested,
		c.YesVotes, c.NoVotes, c.IdkVotes, c.Votes,
		c.CommunityYesRatio, c.DepartmentUrgencyIndex, c.CriticalAreaWeight, c.PriorityScore,
		c.ReporterID,
	).Scan(&c.ID, &c.CreatedAt)
}

func (s *Store) GetComplaint(ctx context.Context, id int64) (models.Complaint, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id = $1`, id)
	return scanComplaint(row)
}

// GetComplaintForUpdate locks the complaint row for the duration of the
// transaction, serializing concurrent vote tallies per complaint.
func (s *Store) GetComplaintForUpdate(ctx context.Context, tx pgx.Tx, id int64) (models.Complaint, error) {
	row := tx.QueryRow(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE id = $1 FOR UPDATE`, id)
	return scanComplaint(row)
}

func (s *Store) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+complaintColumns+` FROM complaints ORDER BY priority_score DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ListComplaintsByReporter(ctx context.Context, reporterID int64) ([]models.Complaint, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+complaintColumns+` FROM complaints WHERE reporter_id = $1 ORDER BY created_at DESC`, reporterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateComplaintVotes persists the tallies together with the derived scoring
// fields; both always change in the same vote transaction.
func (s *Store) UpdateComplaintVotes(ctx context.Context, tx pgx.Tx, c models.Complaint) error {
	_, err := tx.Exec(ctx, `
		UPDATE complaints
		SET yes_votes = $1, no_votes = $2, idk_votes = $3, votes = $4,
			community_yes_ratio = $5, department_urgency_index = $6,
			critical_area_weight = $7, priority_score = $8
		WHERE id = $9
	`, c.YesVotes, c.NoVotes, c.IdkVotes, c.Votes,
		c.CommunityYesRatio, c.DepartmentUrgencyIndex, c.CriticalAreaWeight, c.PriorityScore,
		c.ID)
	return err
}

func (s *Store) UpdateComplaintStatus(ctx context.Context, id int64, status, estimatedTime *string) (models.Complaint, error) {
	row := s.Pool.QueryRow(ctx, `
		UPDATE complaints
		SET status = COALESCE($1, status),
			estimated_completion_time = COALESCE($2, estimated_completion_time)
		WHERE id = $3
		RETURNING `+complaintColumns+`
	`, status, estimatedTime, id)
	return scanComplaint(row)
}

func (s *Store) UpdateComplaintFeedback(ctx context.Context, id int64, feedback string, rating *int) error {
	_, err := s.Pool.Exec(ctx, `UPDATE complaints SET user_feedback = $1, user_feedback_rating = $2 WHERE id = $3`,
		feedback, rating, id)
	return err
}

// DuplicateCandidate is an existing open complaint blocking a new submission.
type DuplicateCandidate struct {
	ID        int64
	Latitude  float64
	Longitude float64
}

// FindOpenDuplicateWithin returns the nearest open complaint of the same
// (department, issue type) within radiusM meters of the given point.
func (s *Store) FindOpenDuplicateWithin(ctx context.Context, department, issueType string, lat, lng, radiusM float64) (DuplicateCandidate, bool, error) {
	var cand DuplicateCandidate
	err := s.Pool.QueryRow(ctx, `
		SELECT id, latitude, longitude FROM complaints
		WHERE department = $1
		AND issue_type = $2
		AND status IN ('Pending', 'In Progress')
		AND latitude IS NOT NULL AND longitude IS NOT NULL
		AND ST_Distance(
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
			ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography
		) <= $5
		ORDER BY ST_Distance(
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
			ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography
		) ASC
		LIMIT 1
	`, department, issueType, lng, lat, radiusM).Scan(&cand.ID, &cand.Latitude, &cand.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DuplicateCandidate{}, false, nil
		}
		return DuplicateCandidate{}, false, err
	}
	return cand, true, nil
}
