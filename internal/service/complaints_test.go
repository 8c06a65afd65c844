package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansathi/backend/internal/models"
)

func createInput() CreateComplaintInput {
	return CreateComplaintInput{
		Title:       "Broken pipeline near market",
		ImageURL:    "https://cdn.example.com/photo.jpg",
		Latitude:    floatPtr(28.6139),
		Longitude:   floatPtr(77.2090),
		Department:  "Water Supply",
		Subcategory: "Broken Pipeline",
	}
}

func TestCreate_DuplicateSuppressed(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude FROM complaints`).
		WithArgs("Water Supply", "Broken Pipeline", 77.2090, 28.6139, DuplicateRadiusMeters).
		WillReturnRows(pgxmock.NewRows([]string{"id", "latitude", "longitude"}).
			AddRow(int64(42), 28.6141, 77.2092))

	_, err := svc.Create(context.Background(), models.User{ID: 1}, createInput())

	var conflictErr ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, CodeDuplicateComplaint, conflictErr.Code)
	assert.Equal(t, int64(42), conflictErr.ExistingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NoDuplicateNearby(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude FROM complaints`).
		WithArgs("Water Supply", "Broken Pipeline", 77.2090, 28.6139, DuplicateRadiusMeters).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(anyArgs(21)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

	c, err := svc.Create(context.Background(), models.User{ID: 1}, createInput())
	require.NoError(t, err)

	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, models.StatusPending, c.Status)
	// zero votes, urgency 1.0, no critical place: round(0.5*6 + 2 + 0.6, 2)
	assert.InDelta(t, 5.6, c.PriorityScore, 1e-9)
	assert.Equal(t, "Roads & Bridges", c.DepartmentSuggested)
	assert.InDelta(t, 7.5, c.SeverityScore, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ForceCreateSkipsDuplicateGate(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(anyArgs(21)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), time.Now()))

	in := createInput()
	in.ForceCreate = true

	c, err := svc.Create(context.Background(), models.User{ID: 1}, in)
	require.NoError(t, err)
	assert.Equal(t, int64(8), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_MissingCoordinatesSkipsDuplicateGate(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(anyArgs(21)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), time.Now()))

	in := createInput()
	in.Latitude = nil
	in.Longitude = nil

	c, err := svc.Create(context.Background(), models.User{ID: 1}, in)
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateCheckFailsOpen(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT id, latitude, longitude FROM complaints`).
		WithArgs("Water Supply", "Broken Pipeline", 77.2090, 28.6139, DuplicateRadiusMeters).
		WillReturnError(errors.New("query canceled"))
	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(anyArgs(21)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

	c, err := svc.Create(context.Background(), models.User{ID: 1}, createInput())
	require.NoError(t, err)
	assert.Equal(t, int64(11), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc, mock := newTestService(t)

	status := "Escalated"
	_, err := svc.UpdateStatus(context.Background(), 10, &status, nil)

	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, mock := newTestService(t)

	status := models.StatusResolved
	mock.ExpectQuery(`UPDATE complaints`).
		WithArgs(anyArgs(3)...).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.UpdateStatus(context.Background(), 99, &status, nil)

	var notFoundErr NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Success(t *testing.T) {
	svc, mock := newTestService(t)

	c := openComplaint()
	c.Status = models.StatusResolved
	status := models.StatusResolved
	eta := "2 days"

	mock.ExpectQuery(`UPDATE complaints`).
		WithArgs(&status, &eta, int64(10)).
		WillReturnRows(complaintRow(c))

	updated, err := svc.UpdateStatus(context.Background(), 10, &status, &eta)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitFeedback_OnlyReporter(t *testing.T) {
	svc, mock := newTestService(t)

	c := openComplaint()
	c.Status = models.StatusResolved
	c.ReporterID = 2

	mock.ExpectQuery(`FROM complaints WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(complaintRow(c))

	err := svc.SubmitFeedback(context.Background(), models.User{ID: 99}, 10, "fixed fast", nil)

	var notFoundErr NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitFeedback_RequiresResolvedStatus(t *testing.T) {
	svc, mock := newTestService(t)

	c := openComplaint()

	mock.ExpectQuery(`FROM complaints WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(complaintRow(c))

	err := svc.SubmitFeedback(context.Background(), models.User{ID: 2}, 10, "thanks", nil)

	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitFeedback_Success(t *testing.T) {
	svc, mock := newTestService(t)

	c := openComplaint()
	c.Status = models.StatusResolved
	rating := 5

	mock.ExpectQuery(`FROM complaints WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(complaintRow(c))
	mock.ExpectExec(`UPDATE complaints SET user_feedback`).
		WithArgs("fixed fast", &rating, int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := svc.SubmitFeedback(context.Background(), models.User{ID: 2}, 10, "fixed fast", &rating)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
