package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/levushkin/orders-backend/internal/models"
)

const (
	InsertSubmission = `INSERT INTO SUBMISSIONS (uid, firstname, lastname, phone, email, telegram, region, city, address, comment, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
						RETURNING id, created_at, updated_at;`
	GetSubmissionByUID = `SELECT id, uid, firstname, lastname, phone, email, telegram, region, city, address, comment, status, admin_notes, created_at, updated_at
						  FROM SUBMISSIONS WHERE uid=$1;`
	GetSubmissions = `SELECT id, uid, firstname, lastname, phone, email, telegram, region, city, address, comment, status, admin_notes, created_at, updated_at
					  FROM SUBMISSIONS
					  WHERE ($1 = '' OR status = $1)
					  ORDER BY created_at DESC
					  LIMIT $2;`
	UpdateSubmission = `UPDATE SUBMISSIONS
						SET status = $1,
						    admin_notes = $2,
						    updated_at = NOW()
						WHERE uid = $3;`
)

type SubmissionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSubmissionsStorage(db *Database) SubmissionsStorage {
	return &SubmissionDatabase{DB: db}
}

// AddSubmission - сохраняет новую заявку, заполняя внутренний
// идентификатор и отметки времени из БД
func (s *SubmissionDatabase) AddSubmission(ctx context.Context, data *models.SubmissionData) error {
	err := s.DB.Pool.QueryRow(ctx, InsertSubmission,
		data.UID,
		data.Firstname,
		data.Lastname,
		data.Phone,
		data.Email,
		data.Telegram,
		data.Region,
		data.City,
		data.Address,
		data.Comment,
		data.Status,
	).Scan(&data.ID, &data.CreatedAt, &data.UpdatedAt)

	if err == nil {
		return nil
	}

	// Проверяем именно нарушение уникальности uid
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	return fmt.Errorf("failed to add submission: %w", err)
}

func (s *SubmissionDatabase) GetSubmission(ctx context.Context, uid string) (*models.SubmissionData, error) {
	var data models.SubmissionData
	err := s.DB.Pool.QueryRow(ctx, GetSubmissionByUID, uid).Scan(
		&data.ID,
		&data.UID,
		&data.Firstname,
		&data.Lastname,
		&data.Phone,
		&data.Email,
		&data.Telegram,
		&data.Region,
		&data.City,
		&data.Address,
		&data.Comment,
		&data.Status,
		&data.AdminNotes,
		&data.CreatedAt,
		&data.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &data, nil
}

func (s *SubmissionDatabase) GetSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionData, error) {
	var submissions []models.SubmissionData
	rows, err := s.DB.Pool.Query(ctx, GetSubmissions, filter.Status, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}
	for rows.Next() {
		var data models.SubmissionData
		err := rows.Scan(
			&data.ID,
			&data.UID,
			&data.Firstname,
			&data.Lastname,
			&data.Phone,
			&data.Email,
			&data.Telegram,
			&data.Region,
			&data.City,
			&data.Address,
			&data.Comment,
			&data.Status,
			&data.AdminNotes,
			&data.CreatedAt,
			&data.UpdatedAt,
		)
		if err != nil {
			return submissions, fmt.Errorf("failed scan submission data: %w", err)
		}
		submissions = append(submissions, data)
	}
	return submissions, err
}

// UpdateSubmission - изменение статуса и заметок администратора.
// Остальные поля заявки после создания не меняются.
func (s *SubmissionDatabase) UpdateSubmission(ctx context.Context, uid string, status string, adminNotes string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateSubmission, status, adminNotes, uid)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
