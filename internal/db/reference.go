package db

import (
	"context"

	"github.com/urbansathi/backend/internal/models"
)

// UrgencyFor is an exact (department, issue type) lookup. Absence surfaces as
// pgx.ErrNoRows; the scoring engine maps any error to its default.
func (s *Store) UrgencyFor(ctx context.Context, department, issueType string) (float64, error) {
	var urgency float64
	err := s.Pool.QueryRow(ctx,
		`SELECT urgency_index FROM department_urgency_matrix WHERE department = $1 AND issue_type = $2`,
		department, issueType).Scan(&urgency)
	if err != nil {
		return 0, err
	}
	return urgency, nil
}

// HighestWeightCriticalPlaceWithin returns the weight of the highest-weight
// critical place within radiusM meters of the point, nearest first on ties.
func (s *Store) HighestWeightCriticalPlaceWithin(ctx context.Context, lat, lng, radiusM float64) (float64, error) {
	var weight float64
	err := s.Pool.QueryRow(ctx, `
		SELECT weight FROM critical_places
		WHERE ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) <= $3
		ORDER BY weight DESC,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) ASC
		LIMIT 1
	`, lng, lat, radiusM).Scan(&weight)
	if err != nil {
		return 0, err
	}
	return weight, nil
}

func (s *Store) ListUrgencyMatrix(ctx context.Context) ([]models.UrgencyMatrixEntry, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT department, issue_type, urgency_index FROM department_urgency_matrix ORDER BY department, issue_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.UrgencyMatrixEntry
	for rows.Next() {
		var e models.UrgencyMatrixEntry
		if err := rows.Scan(&e.Department, &e.IssueType, &e.UrgencyIndex); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
