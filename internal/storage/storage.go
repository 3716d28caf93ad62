package storage

import (
	"context"
	"errors"

	"github.com/levushkin/orders-backend/internal/models"
)

type SubmissionsStorage interface {
	AddSubmission(ctx context.Context, data *models.SubmissionData) error
	GetSubmission(ctx context.Context, uid string) (*models.SubmissionData, error)
	GetSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionData, error)
	UpdateSubmission(ctx context.Context, uid string, status string, adminNotes string) error
}

var (
	ErrNotFound      = errors.New("submission not found")
	ErrAlreadyExists = errors.New("already exists")
)
