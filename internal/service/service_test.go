package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/urbansathi/backend/internal/classify"
	"github.com/urbansathi/backend/internal/db"
	"github.com/urbansathi/backend/internal/models"
	"github.com/urbansathi/backend/internal/scoring"
)

// fixedUrgency and noCriticalPlace keep scoring deterministic in tests and
// off the mocked pool, so expectations only cover the store calls under test.
type fixedUrgency float64

func (f fixedUrgency) UrgencyFor(ctx context.Context, department, issueType string) (float64, error) {
	return float64(f), nil
}

type noCriticalPlace struct{}

func (noCriticalPlace) HighestWeightCriticalPlaceWithin(ctx context.Context, lat, lng, radiusM float64) (float64, error) {
	return 0, pgx.ErrNoRows
}

func newTestService(t *testing.T) (*ComplaintService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	svc := &ComplaintService{
		Store: db.NewWithPool(mock),
		Engine: scoring.Engine{
			Urgency: fixedUrgency(1.0),
			Area:    noCriticalPlace{},
			Logger:  zerolog.Nop(),
		},
		Classifier: classify.Stub{},
		Logger:     zerolog.Nop(),
	}
	return svc, mock
}

var complaintCols = []string{
	"id", "title", "description", "image_url", "voice_url", "latitude", "longitude",
	"department", "issue_type", "status", "estimated_completion_time",
	"severity_score", "confidence_score", "department_suggested",
	"yes_votes", "no_votes", "idk_votes", "votes",
	"community_yes_ratio", "department_urgency_index", "critical_area_weight", "priority_score",
	"user_feedback", "user_feedback_rating", "reporter_id", "created_at",
}

func complaintRow(c models.Complaint) *pgxmock.Rows {
	return pgxmock.NewRows(complaintCols).AddRow(
		c.ID, c.Title, c.Description, c.ImageURL, c.VoiceURL, c.Latitude, c.Longitude,
		c.Department, c.IssueType, c.Status, c.EstimatedCompletionTime,
		c.SeverityScore, c.ConfidenceScore, c.DepartmentSuggested,
		c.YesVotes, c.NoVotes, c.IdkVotes, c.Votes,
		c.CommunityYesRatio, c.DepartmentUrgencyIndex, c.CriticalAreaWeight, c.PriorityScore,
		c.UserFeedback, c.UserFeedbackRating, c.ReporterID, c.CreatedAt,
	)
}

func floatPtr(v float64) *float64 { return &v }

// anyArgs builds n AnyArg matchers; pgxmock requires the expected argument
// count to match even when the values don't matter.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
