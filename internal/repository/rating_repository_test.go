package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		if i >= len(r.values) {
			break
		}
		switch p := d.(type) {
		case *float64:
			*p = r.values[i].(float64)
		case *int:
			*p = r.values[i].(int)
		}
	}
	return nil
}

// fakeDB answers every QueryRow with a canned row.
type fakeDB struct {
	row fakeRow
}

func (f *fakeDB) Ping(context.Context) error  { return nil }
func (f *fakeDB) Close() error                { return nil }
func (f *fakeDB) SQLDB() *sql.DB              { return nil }
func (f *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}
func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return f.row
}
func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, nil
}

func TestRoundTo2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{4, 4},
		{11.0 / 3.0, 3.67},
		{1.0 / 3.0, 0.33},
		{4.125, 4.13},
	}
	for _, tc := range cases {
		if got := roundTo2(tc.in); got != tc.want {
			t.Fatalf("roundTo2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStatsRoundsAverage(t *testing.T) {
	repo := NewPostgresRatingRepository(&fakeDB{row: fakeRow{values: []any{11.0 / 3.0, 3}}})

	stats, err := repo.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Average != 3.67 || stats.Total != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStatsNoRatings(t *testing.T) {
	repo := NewPostgresRatingRepository(&fakeDB{row: fakeRow{values: []any{0.0, 0}}})

	stats, err := repo.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Average != 0 || stats.Total != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestCreateMapsConstraintErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"duplicate pair",
			&pgconn.PgError{Code: "23505", ConstraintName: "ratings_sender_id_receiver_id_key"},
			ErrAlreadyRated,
		},
		{
			"receiver deleted",
			&pgconn.PgError{Code: "23503", ConstraintName: "ratings_receiver_id_fkey"},
			ErrRatedUserGone,
		},
		{
			"score out of range",
			&pgconn.PgError{Code: "23514", ConstraintName: "ratings_score_check"},
			ErrInvalidRating,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewPostgresRatingRepository(&fakeDB{row: fakeRow{err: tc.err}})
			_, err := repo.Create(context.Background(), rating.Rating{
				ID:         uuid.New(),
				SenderID:   uuid.New(),
				ReceiverID: uuid.New(),
				Score:      5,
			})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}
