package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/urbansathi/backend/internal/db"
	"github.com/urbansathi/backend/internal/models"
	"github.com/urbansathi/backend/internal/scoring"
)

// CastVote appends to the vote ledger and atomically recomputes the derived
// score fields. The complaint row is locked for the whole transaction, so
// concurrent votes on the same complaint serialize instead of losing
// increments.
func (s *ComplaintService) CastVote(ctx context.Context, user models.User, complaintID int64, voteType string) (models.Complaint, error) {
	switch voteType {
	case models.VoteYes, models.VoteNo, models.VoteIdk:
	default:
		return models.Complaint{}, ValidationError{Message: "Invalid vote type. Must be Yes, No, or Idk."}
	}

	var updated models.Complaint
	err := s.Store.WithTx(ctx, func(tx pgx.Tx) error {
		c, err := s.Store.GetComplaintForUpdate(ctx, tx, complaintID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return NotFoundError{Message: "Complaint not found"}
			}
			return err
		}

		if !c.VotingOpen() {
			return ConflictError{Code: CodeVotingClosed, Message: "Voting is closed for this issue."}
		}

		voted, err := s.Store.HasVote(ctx, tx, user.ID, complaintID)
		if err != nil {
			return err
		}
		if voted {
			return ConflictError{Code: CodeDuplicateVote, Message: "You have already voted on this issue."}
		}

		err = s.Store.InsertVote(ctx, tx, models.Vote{
			UserID:      user.ID,
			ComplaintID: complaintID,
			VoteType:    voteType,
		})
		if err != nil {
			// The UNIQUE(user_id, complaint_id) constraint backstops the
			// existence check above.
			if db.IsUniqueViolation(err) {
				return ConflictError{Code: CodeDuplicateVote, Message: "You have already voted on this issue."}
			}
			return err
		}

		switch voteType {
		case models.VoteYes:
			c.YesVotes++
		case models.VoteNo:
			c.NoVotes++
		case models.VoteIdk:
			c.IdkVotes++
		}
		c.Votes = c.YesVotes + c.NoVotes + c.IdkVotes

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

		if err := s.Store.UpdateComplaintVotes(ctx, tx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return models.Complaint{}, err
	}
	return updated, nil
}

// VotedComplaintIDs lists the complaints the user already voted on.
func (s *ComplaintService) VotedComplaintIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.Store.ListVotedComplaintIDs(ctx, userID)
}
