package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/urbansathi/backend/internal/models"
)

// HasVote reports whether the user already voted on the complaint. Runs
// inside the vote transaction so the check is covered by the row lock.
func (s *Store) HasVote(ctx context.Context, tx pgx.Tx, userID, complaintID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM votes WHERE user_id = $1 AND complaint_id = $2)`,
		userID, complaintID).Scan(&exists)
	return exists, err
}

func (s *Store) InsertVote(ctx context.Context, tx pgx.Tx, v models.Vote) error {
	_, err := tx.Exec(ctx, `INSERT INTO votes (user_id, complaint_id, vote_type) VALUES ($1, $2, $3)`,
		v.UserID, v.ComplaintID, v.VoteType)
	return err
}

func (s *Store) ListVotedComplaintIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := s.Pool.Query(ctx, `SELECT complaint_id FROM votes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
