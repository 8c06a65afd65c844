package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/urbansathi/backend/internal/classify"
	"github.com/urbansathi/backend/internal/db"
	"github.com/urbansathi/backend/internal/geo"
	"github.com/urbansathi/backend/internal/models"
	"github.com/urbansathi/backend/internal/scoring"
)

// DuplicateRadiusMeters is how close an open complaint of the same
// (department, issue type) must be to suppress a new submission.
const DuplicateRadiusMeters = 50.0

type ComplaintService struct {
	Store      *db.Store
	Engine     scoring.Engine
	Classifier classify.Classifier
	Logger     zerolog.Logger
}

type CreateComplaintInput struct {
	Title       string
	Description *string
	ImageURL    string
	VoiceURL    *string
	Latitude    *float64
	Longitude   *float64
	Department  string
	Subcategory string
	ForceCreate bool
}

// Create runs the duplicate gate, classifies, scores, and persists a new
// complaint. The check-then-insert window is not closed; two simultaneous
// submissions of the same issue can both land, which is accepted as
// best-effort duplicate suppression.
func (s *ComplaintService) Create(ctx context.Context, reporter models.User, in CreateComplaintInput) (models.Complaint, error) {
	if !in.ForceCreate && in.Latitude != nil && in.Longitude != nil {
		cand, found, err := s.Store.FindOpenDuplicateWithin(ctx,
			in.Department, in.Subcategory, *in.Latitude, *in.Longitude, DuplicateRadiusMeters)
		switch {
		case err != nil:
			// Fail-open: submission availability wins over duplicate strictness.
			s.Logger.Warn().Err(err).Msg("duplicate check failed, proceeding with creation")
		case found:
			s.Logger.Info().
				Int64("existing_id", cand.ID).
				Float64("distance_m", geo.HaversineMeters(*in.Latitude, *in.Longitude, cand.Latitude, cand.Longitude)).
				Msg("duplicate complaint suppressed")
			return models.Complaint{}, ConflictError{
				Code:       CodeDuplicateComplaint,
				Message:    "Similar issue exists",
				ExistingID: cand.ID,
			}
		}
	}

	assessment := s.Classifier.ClassifyComplaint(ctx, in.Title, derefString(in.Description))

	c := models.Complaint{
		Title:               in.Title,
		Description:         in.Description,
		ImageURL:            in.ImageURL,
		VoiceURL:            in.VoiceURL,
		Latitude:            in.Latitude,
		Longitude:           in.Longitude,
		Department:          in.Department,
		IssueType:           in.Subcategory,
		Status:              models.StatusPending,
		SeverityScore:       assessment.SeverityScore,
		ConfidenceScore:     assessment.ConfidenceScore,
		DepartmentSuggested: assessment.DepartmentSuggested,
		ReporterID:          reporter.ID,
	}

	res := s.Engine.Score(ctx, scoring.Input{
		YesVotes:   c.YesVotes,
		NoVotes:    c.NoVotes,
		IdkVotes:   c.IdkVotes,
		Department: c.Department,
		IssueType:  c.IssueType,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
	})
	applyScore(&c, res)

	if err := s.Store.InsertComplaint(ctx, &c); err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

func (s *ComplaintService) List(ctx context.Context) ([]models.Complaint, error) {
	return s.Store.ListComplaints(ctx)
}

func (s *ComplaintService) ListByReporter(ctx context.Context, reporterID int64) ([]models.Complaint, error) {
	return s.Store.ListComplaintsByReporter(ctx, reporterID)
}

// UpdateStatus is the administrative mutation gating vote eligibility.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, status, estimatedTime *string) (models.Complaint, error) {
	if status != nil {
		switch *status {
		case models.StatusPending, models.StatusInProgress, models.StatusResolved, models.StatusRejected:
		default:
			return models.Complaint{}, ValidationError{Message: "Unknown status: " + *status}
		}
	}
	c, err := s.Store.UpdateComplaintStatus(ctx, id, status, estimatedTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Complaint{}, NotFoundError{Message: "Complaint not found"}
		}
		return models.Complaint{}, err
	}
	return c, nil
}

// SubmitFeedback records reporter feedback on a resolved complaint.
func (s *ComplaintService) SubmitFeedback(ctx context.Context, user models.User, complaintID int64, feedback string, rating *int) error {
	c, err := s.Store.GetComplaint(ctx, complaintID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFoundError{Message: "Complaint not found or unauthorized"}
		}
		return err
	}
	if c.ReporterID != user.ID {
		return NotFoundError{Message: "Complaint not found or unauthorized"}
	}
	if c.Status != models.StatusResolved {
		return ValidationError{Message: "Feedback can only be provided for resolved issues"}
	}
	return s.Store.UpdateComplaintFeedback(ctx, complaintID, feedback, rating)
}

func applyScore(c *models.Complaint, res scoring.Result) {
	c.CommunityYesRatio = res.CommunityYesRatio
	c.DepartmentUrgencyIndex = res.DepartmentUrgencyIndex
	c.CriticalAreaWeight = res.CriticalAreaWeight
	c.PriorityScore = res.PriorityScore
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
