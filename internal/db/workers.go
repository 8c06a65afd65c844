package db

import (
	"context"

	"github.com/urbansathi/backend/internal/models"
)

func (s *Store) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, name, department, status, phone, location, rating,
			COALESCE(active_tasks, 0), COALESCE(completed_tasks, 0)
		FROM workers ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Worker
	for rows.Next() {
		var w models.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Department, &w.Status, &w.Phone, &w.Location,
			&w.Rating, &w.ActiveTasks, &w.CompletedTasks); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *Store) InsertWorkers(ctx context.Context, workers []models.Worker) error {
	for _, w := range workers {
		if _, err := s.Pool.Exec(ctx, `
			INSERT INTO workers (name, department, status, phone, location, rating, active_tasks, completed_tasks)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`, w.Name, w.Department, w.Status, w.Phone, w.Location, w.Rating, w.ActiveTasks, w.CompletedTasks); err != nil {
			return err
		}
	}
	return nil
}
