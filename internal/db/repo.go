package db

import (
	"context"
	"database/sql"

	"arogya-chatbot/pkg"

	"github.com/google/uuid"
)

// Repository wraps database operations for consultations and messages. A
// single postgres database backs the audit trail; nothing here feeds back
// into retrieval.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// CreateConsultation opens a new consultation record and returns it.
func (r *Repository) CreateConsultation(ctx context.Context, language pkg.Language, location *string) (*pkg.Consultation, error) {
	c := pkg.Consultation{
		ID:       uuid.New().String(),
		Language: language,
		Location: location,
	}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO consultations (id, language, location)
         VALUES ($1, $2, $3)
         RETURNING created_at`,
		c.ID, c.Language, c.Location,
	).Scan(&c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkEmergency flags a consultation as having triggered the emergency
// short-circuit.
func (r *Repository) MarkEmergency(ctx context.Context, consultationID string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE consultations SET is_emergency = TRUE WHERE id = $1`,
		consultationID)
	return err
}

// CreateMessage stores a new message within a consultation.
func (r *Repository) CreateMessage(ctx context.Context, consultationID string, role pkg.MessageRole, content string) (*pkg.ChatMessage, error) {
	var m pkg.ChatMessage
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO chat_messages (consultation_id, role, content)
         VALUES ($1, $2, $3)
         RETURNING id, consultation_id, role, content, created_at`,
		consultationID, role, content,
	).Scan(&m.ID, &m.ConsultationID, &m.Role, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTranscript returns all messages of a consultation ordered by creation
// time.
func (r *Repository) GetTranscript(ctx context.Context, consultationID string) ([]pkg.ChatMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, consultation_id, role, content, created_at
         FROM chat_messages
         WHERE consultation_id = $1
         ORDER BY created_at ASC`, consultationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var transcript []pkg.ChatMessage
	for rows.Next() {
		var m pkg.ChatMessage
		if err := rows.Scan(&m.ID, &m.ConsultationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		transcript = append(transcript, m)
	}
	return transcript, rows.Err()
}

// ListRecentEmergencies returns the most recent emergency-flagged
// consultations, newest first, for the monitoring channel consumers.
func (r *Repository) ListRecentEmergencies(ctx context.Context, limit int) ([]pkg.Consultation, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, language, location, is_emergency, created_at
         FROM consultations
         WHERE is_emergency
         ORDER BY created_at DESC
         LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []pkg.Consultation
	for rows.Next() {
		var c pkg.Consultation
		if err := rows.Scan(&c.ID, &c.Language, &c.Location, &c.IsEmergency, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
