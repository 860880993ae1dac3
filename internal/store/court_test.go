package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"esporteagenda/internal/database"
	"esporteagenda/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func assignCourt(c model.Court, dest ...any) {
	*dest[0].(*int) = c.ID
	*dest[1].(*string) = c.Name
	*dest[2].(*string) = c.Category
	*dest[3].(*string) = c.ImageURL
	*dest[4].(**int) = c.OwnerID
	*dest[5].(*string) = c.Address
	*dest[6].(*string) = c.Description
	*dest[7].(*string) = c.OpeningTime
	*dest[8].(*string) = c.ClosingTime
	*dest[9].(*time.Time) = c.CreatedAt
}

func TestListCourts(t *testing.T) {
	owner := 5
	sample := model.Court{ID: 1, Name: "Quadra de Tênis A", Category: "Saibro", OwnerID: &owner}

	t.Run("ok", func(t *testing.T) {
		rows := &fakeRows{n: 2, scanFn: func(_ int, dest ...any) error {
			assignCourt(sample, dest...)
			return nil
		}}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		list, err := ListCourts(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Quadra de Tênis A", list[0].Name)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("boom") },
		}
		_, err := ListCourts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("scan err", func(t *testing.T) {
		rows := &fakeRows{n: 1, scanFn: func(int, ...any) error { return errors.New("scan") }}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := ListCourts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows err", func(t *testing.T) {
		rows := &fakeRows{err: errors.New("late")}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := ListCourts(context.Background(), db)
		require.Error(t, err)
	})
}

func TestListCourtsByOwner(t *testing.T) {
	owner := 5
	sample := model.Court{ID: 2, OwnerID: &owner}

	t.Run("ok", func(t *testing.T) {
		var gotArgs []any
		rows := &fakeRows{n: 1, scanFn: func(_ int, dest ...any) error {
			assignCourt(sample, dest...)
			return nil
		}}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotArgs = args
				return rows, nil
			},
		}
		list, err := ListCourtsByOwner(context.Background(), db, 5)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, []any{5}, gotArgs)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("boom") },
		}
		_, err := ListCourtsByOwner(context.Background(), db, 5)
		require.Error(t, err)
	})
}

func TestGetCourtByID(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scan: func(dest ...any) error {
					assignCourt(model.Court{ID: 3, OpeningTime: "08:00", ClosingTime: "22:00"}, dest...)
					return nil
				}}
			},
		}
		got, err := GetCourtByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, 3, got.ID)
		require.Equal(t, "08:00", got.OpeningTime)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
			},
		}
		_, err := GetCourtByID(context.Background(), db, 3)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestCreateCourt(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scan: func(dest ...any) error {
					*dest[0].(*int) = 9
					*dest[1].(*time.Time) = time.Now()
					return nil
				}}
			},
		}
		owner := 4
		got, err := CreateCourt(context.Background(), db, &model.Court{Name: "Nova", OwnerID: &owner})
		require.NoError(t, err)
		require.Equal(t, 9, got.ID)
	})

	t.Run("err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeRow{scan: func(...any) error { return errors.New("boom") }}
			},
		}
		_, err := CreateCourt(context.Background(), db, &model.Court{})
		require.Error(t, err)
	})
}

func TestUpdateCourtDetails(t *testing.T) {
	court := &model.Court{ID: 3, Name: "Quadra B", OpeningTime: "09:00", ClosingTime: "18:00"}

	t.Run("owned", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		updated, err := UpdateCourtDetails(context.Background(), db, 4, court)
		require.NoError(t, err)
		require.True(t, updated)
	})

	t.Run("not owned", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		updated, err := UpdateCourtDetails(context.Background(), db, 99, court)
		require.NoError(t, err)
		require.False(t, updated)
	})

	t.Run("err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		_, err := UpdateCourtDetails(context.Background(), db, 4, court)
		require.Error(t, err)
	})
}

func TestDeleteCourtCascade(t *testing.T) {
	t.Run("deletes reservations then the court", func(t *testing.T) {
		var statements []string
		committed := false
		tx := &database.FakeTx{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				statements = append(statements, sql)
				require.Equal(t, []any{3}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			CommitFn: func(context.Context) error { committed = true; return nil },
		}
		db := &database.FakeDB{
			BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil },
		}
		require.NoError(t, DeleteCourtCascade(context.Background(), db, 3))
		require.True(t, committed)
		require.Len(t, statements, 2)
		require.Contains(t, statements[0], "reservations")
		require.Contains(t, statements[1], "courts")
	})

	t.Run("begin fails", func(t *testing.T) {
		db := &database.FakeDB{
			BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("begin") },
		}
		require.Error(t, DeleteCourtCascade(context.Background(), db, 3))
	})

	t.Run("statement fails and commit never runs", func(t *testing.T) {
		rolledBack := false
		tx := &database.FakeTx{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
			CommitFn:   func(context.Context) error { t.Fatal("commit after failure"); return nil },
			RollbackFn: func(context.Context) error { rolledBack = true; return nil },
		}
		db := &database.FakeDB{
			BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil },
		}
		require.Error(t, DeleteCourtCascade(context.Background(), db, 3))
		require.True(t, rolledBack)
	})

	t.Run("commit fails", func(t *testing.T) {
		tx := &database.FakeTx{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			CommitFn: func(context.Context) error { return errors.New("commit") },
		}
		db := &database.FakeDB{
			BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil },
		}
		require.Error(t, DeleteCourtCascade(context.Background(), db, 3))
	})
}
