package service

import (
	"context"

	"github.com/urbansathi/backend/internal/models"
)

// ListWorkers returns the roster, seeding demo rows on first read of an
// empty table.
func (s *ComplaintService) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	workers, err := s.Store.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}
	if len(workers) > 0 {
		return workers, nil
	}

	seed := []models.Worker{
		{Name: "Rajinder Kumar", Department: "Roads & Bridges", Status: "Active", Phone: "+91 9876543100", Location: "Sector 14", Rating: 4.8},
		{Name: "Suresh Patil", Department: "Waste Mgmt", Status: "On Leave", Phone: "+91 9876543101", Location: "N/A", Rating: 4.9},
		{Name: "Amit Sharma", Department: "Water Supply", Status: "Assigned", Phone: "+91 9876543102", Location: "MG Road", Rating: 4.5},
	}
	if err := s.Store.InsertWorkers(ctx, seed); err != nil {
		return nil, err
	}
	return s.Store.ListWorkers(ctx)
}
