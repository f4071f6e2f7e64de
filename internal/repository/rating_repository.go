package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrAlreadyRated   = errors.New("already rated")
	ErrRatedUserGone  = errors.New("rated user not found")
	// ErrInvalidRating surfaces when a write trips one of the table's check
	// constraints (score range, self-rating). Callers validate first, so
	// hitting this means the request raced past that validation.
	ErrInvalidRating = errors.New("rating violates constraints")
)

// RatingRow denormalizes a rating with both parties' display identity.
type RatingRow struct {
	Rating           rating.Rating
	SenderUsername   string
	SenderName       string
	ReceiverUsername string
	ReceiverName     string
}

type RatingRepository interface {
	Create(ctx context.Context, rt rating.Rating) (rating.Rating, error)
	// GetBySender, Update, and Delete are scoped to sender_id so a caller can
	// only touch ratings they authored; a non-matching id surfaces as not found.
	GetBySender(ctx context.Context, id, senderID uuid.UUID) (rating.Rating, error)
	Update(ctx context.Context, id, senderID uuid.UUID, score int, feedback *string) (rating.Rating, error)
	Delete(ctx context.Context, id, senderID uuid.UUID) error
	ListReceived(ctx context.Context, receiverID uuid.UUID) ([]RatingRow, error)
	Stats(ctx context.Context, receiverID uuid.UUID) (rating.Stats, error)
}

type PostgresRatingRepository struct {
	db database.DB
}

func NewPostgresRatingRepository(db database.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) Create(ctx context.Context, rt rating.Rating) (rating.Rating, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO ratings (id, sender_id, receiver_id, score, feedback)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, sender_id, receiver_id, score, feedback, created_at, updated_at`,
		rt.ID, rt.SenderID, rt.ReceiverID, rt.Score, rt.Feedback,
	)

	created, err := scanRating(row)
	if err != nil {
		if isUniqueViolation(err) && strings.Contains(constraintName(err), "sender_id_receiver_id") {
			return rating.Rating{}, ErrAlreadyRated
		}
		if isForeignKeyViolation(err) {
			return rating.Rating{}, ErrRatedUserGone
		}
		if isCheckViolation(err) {
			return rating.Rating{}, ErrInvalidRating
		}
		return rating.Rating{}, err
	}
	return created, nil
}

func (r *PostgresRatingRepository) GetBySender(ctx context.Context, id, senderID uuid.UUID) (rating.Rating, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, sender_id, receiver_id, score, feedback, created_at, updated_at
		 FROM ratings
		 WHERE id = $1 AND sender_id = $2`,
		id, senderID,
	)

	rt, err := scanRating(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return rating.Rating{}, ErrRatingNotFound
		}
		return rating.Rating{}, err
	}
	return rt, nil
}

func (r *PostgresRatingRepository) Update(ctx context.Context, id, senderID uuid.UUID, score int, feedback *string) (rating.Rating, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE ratings
		 SET score = $1, feedback = $2, updated_at = now()
		 WHERE id = $3 AND sender_id = $4
		 RETURNING id, sender_id, receiver_id, score, feedback, created_at, updated_at`,
		score, feedback, id, senderID,
	)

	updated, err := scanRating(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return rating.Rating{}, ErrRatingNotFound
		}
		if isCheckViolation(err) {
			return rating.Rating{}, ErrInvalidRating
		}
		return rating.Rating{}, err
	}
	return updated, nil
}

func (r *PostgresRatingRepository) Delete(ctx context.Context, id, senderID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM ratings WHERE id = $1 AND sender_id = $2`,
		id, senderID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

func (r *PostgresRatingRepository) ListReceived(ctx context.Context, receiverID uuid.UUID) ([]RatingRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rt.id, rt.sender_id, rt.receiver_id, rt.score, rt.feedback, rt.created_at, rt.updated_at,
		        su.username, COALESCE(NULLIF(TRIM(COALESCE(su.first_name, '') || ' ' || COALESCE(su.last_name, '')), ''), su.username),
		        ru.username, COALESCE(NULLIF(TRIM(COALESCE(ru.first_name, '') || ' ' || COALESCE(ru.last_name, '')), ''), ru.username)
		 FROM ratings rt
		 JOIN users su ON su.id = rt.sender_id
		 JOIN users ru ON ru.id = rt.receiver_id
		 WHERE rt.receiver_id = $1
		 ORDER BY rt.created_at DESC`,
		receiverID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RatingRow, 0)
	for rows.Next() {
		var row RatingRow
		err := rows.Scan(
			&row.Rating.ID, &row.Rating.SenderID, &row.Rating.ReceiverID,
			&row.Rating.Score, &row.Rating.Feedback,
			&row.Rating.CreatedAt, &row.Rating.UpdatedAt,
			&row.SenderUsername, &row.SenderName,
			&row.ReceiverUsername, &row.ReceiverName,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRatingRepository) Stats(ctx context.Context, receiverID uuid.UUID) (rating.Stats, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(score), 0), COUNT(*) FROM ratings WHERE receiver_id = $1`,
		receiverID,
	)

	var avg float64
	var total int
	if err := row.Scan(&avg, &total); err != nil {
		return rating.Stats{}, err
	}
	return rating.Stats{Average: roundTo2(avg), Total: total}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func scanRating(row database.Row) (rating.Rating, error) {
	var rt rating.Rating
	err := row.Scan(
		&rt.ID, &rt.SenderID, &rt.ReceiverID,
		&rt.Score, &rt.Feedback,
		&rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return rating.Rating{}, err
	}
	return rt, nil
}
