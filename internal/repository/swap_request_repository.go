package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/swap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSwapRequestNotFound = errors.New("skill request not found")

// SwapRequestRow is a request denormalized with the counterparty's display
// identity and both skill names, as list endpoints return it.
type SwapRequestRow struct {
	Request          swap.SkillRequest
	SenderUsername   string
	SenderName       string
	ReceiverUsername string
	ReceiverName     string
	WantedSkill      string
	OfferedSkill     string
}

type SwapRequestRepository interface {
	Create(ctx context.Context, req swap.SkillRequest) (swap.SkillRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (swap.SkillRequest, error)
	GetRowByID(ctx context.Context, id uuid.UUID) (SwapRequestRow, error)
	ListIncoming(ctx context.Context, receiverID uuid.UUID) ([]SwapRequestRow, error)
	ListOutgoing(ctx context.Context, senderID uuid.UUID) ([]SwapRequestRow, error)
	// UpdateStatus flips a still-pending request to the given terminal status.
	// ErrSwapRequestNotFound means the row is gone or no longer pending; the
	// caller distinguishes the two by re-reading.
	UpdateStatus(ctx context.Context, id uuid.UUID, status swap.Status) (swap.SkillRequest, error)
}

type PostgresSwapRequestRepository struct {
	db database.DB
}

func NewPostgresSwapRequestRepository(db database.DB) *PostgresSwapRequestRepository {
	return &PostgresSwapRequestRepository{db: db}
}

func (r *PostgresSwapRequestRepository) Create(ctx context.Context, req swap.SkillRequest) (swap.SkillRequest, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skill_requests (id, sender_id, receiver_id, wanted_skill_id, offered_skill_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, sender_id, receiver_id, wanted_skill_id, offered_skill_id, status, created_at, updated_at`,
		req.ID, req.SenderID, req.ReceiverID, req.WantedSkillID, req.OfferedSkillID, string(req.Status),
	)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (swap.SkillRequest, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, sender_id, receiver_id, wanted_skill_id, offered_skill_id, status, created_at, updated_at
		 FROM skill_requests
		 WHERE id = $1`,
		id,
	)
	req, err := scanSwapRequest(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return swap.SkillRequest{}, ErrSwapRequestNotFound
		}
		return swap.SkillRequest{}, err
	}
	return req, nil
}

func (r *PostgresSwapRequestRepository) GetRowByID(ctx context.Context, id uuid.UUID) (SwapRequestRow, error) {
	rows, err := r.db.Query(ctx, swapRequestRowQuery+` WHERE r.id = $1`, id)
	if err != nil {
		return SwapRequestRow{}, err
	}
	defer rows.Close()

	out, err := scanSwapRequestRows(rows)
	if err != nil {
		return SwapRequestRow{}, err
	}
	if len(out) == 0 {
		return SwapRequestRow{}, ErrSwapRequestNotFound
	}
	return out[0], nil
}

const swapRequestRowQuery = `
SELECT r.id, r.sender_id, r.receiver_id, r.wanted_skill_id, r.offered_skill_id,
       r.status, r.created_at, r.updated_at,
       su.username, COALESCE(NULLIF(TRIM(COALESCE(su.first_name, '') || ' ' || COALESCE(su.last_name, '')), ''), su.username),
       ru.username, COALESCE(NULLIF(TRIM(COALESCE(ru.first_name, '') || ' ' || COALESCE(ru.last_name, '')), ''), ru.username),
       ws.name, os.name
FROM skill_requests r
JOIN users su ON su.id = r.sender_id
JOIN users ru ON ru.id = r.receiver_id
JOIN skills ws ON ws.id = r.wanted_skill_id
JOIN skills os ON os.id = r.offered_skill_id`

func (r *PostgresSwapRequestRepository) ListIncoming(ctx context.Context, receiverID uuid.UUID) ([]SwapRequestRow, error) {
	rows, err := r.db.Query(ctx,
		swapRequestRowQuery+` WHERE r.receiver_id = $1 ORDER BY r.created_at DESC`,
		receiverID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSwapRequestRows(rows)
}

func (r *PostgresSwapRequestRepository) ListOutgoing(ctx context.Context, senderID uuid.UUID) ([]SwapRequestRow, error) {
	rows, err := r.db.Query(ctx,
		swapRequestRowQuery+` WHERE r.sender_id = $1 ORDER BY r.created_at DESC`,
		senderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSwapRequestRows(rows)
}

func (r *PostgresSwapRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status swap.Status) (swap.SkillRequest, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skill_requests
		 SET status = $1, updated_at = now()
		 WHERE id = $2 AND status = $3
		 RETURNING id, sender_id, receiver_id, wanted_skill_id, offered_skill_id, status, created_at, updated_at`,
		string(status), id, string(swap.StatusPending),
	)
	req, err := scanSwapRequest(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return swap.SkillRequest{}, ErrSwapRequestNotFound
		}
		return swap.SkillRequest{}, err
	}
	return req, nil
}

func scanSwapRequest(row database.Row) (swap.SkillRequest, error) {
	var req swap.SkillRequest
	var status string
	err := row.Scan(
		&req.ID, &req.SenderID, &req.ReceiverID,
		&req.WantedSkillID, &req.OfferedSkillID,
		&status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return swap.SkillRequest{}, err
	}
	req.Status = swap.Status(status)
	return req, nil
}

func scanSwapRequestRows(rows database.Rows) ([]SwapRequestRow, error) {
	out := make([]SwapRequestRow, 0)
	for rows.Next() {
		var row SwapRequestRow
		var status string
		err := rows.Scan(
			&row.Request.ID, &row.Request.SenderID, &row.Request.ReceiverID,
			&row.Request.WantedSkillID, &row.Request.OfferedSkillID,
			&status, &row.Request.CreatedAt, &row.Request.UpdatedAt,
			&row.SenderUsername, &row.SenderName,
			&row.ReceiverUsername, &row.ReceiverName,
			&row.WantedSkill, &row.OfferedSkill,
		)
		if err != nil {
			return nil, err
		}
		row.Request.Status = swap.Status(status)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
