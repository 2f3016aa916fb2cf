package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"braindrop/internal/logger"
	"braindrop/models"
)

func newTestRaindropRepo(t *testing.T) (*raindropRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &raindropRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func raindropRows(raindrops ...models.Raindrop) *sqlmock.Rows {
	rows := sqlmock.NewRows(raindropColumns)
	for _, r := range raindrops {
		values, _ := raindropValues(r)
		driverValues := make([]driver.Value, len(values))
		for i, v := range values {
			driverValues[i] = v
		}
		rows.AddRow(driverValues...)
	}
	return rows
}

func TestRaindropsGetAll_Success(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	stored := models.Raindrop{
		ID:         1,
		Collection: -1,
		Created:    created,
		Link:       "https://example.com/",
		Tags:       []models.Tag{"go"},
		Title:      "Example",
		Type:       models.TypeLink,
	}

	mock.ExpectQuery("SELECT (.+) FROM raindrops").
		WillReturnRows(raindropRows(stored))

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 raindrop, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].Title != "Example" {
		t.Errorf("unexpected raindrop: %+v", got[0])
	}
	if len(got[0].Tags) != 1 || got[0].Tags[0] != "go" {
		t.Errorf("expected tags [go], got %v", got[0].Tags)
	}
	if !got[0].Created.Equal(created) {
		t.Errorf("expected created %v, got %v", created, got[0].Created)
	}
}

func TestRaindropsGetAll_QueryError(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM raindrops").
		WillReturnError(errors.New("disk gone"))

	_, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestRaindropsGetAll_ScanError(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	// intentionally wrong shape → scan error
	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)
	mock.ExpectQuery("SELECT (.+) FROM raindrops").
		WillReturnRows(rows)

	_, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestRaindropsSave_Success(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO raindrops").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), models.Raindrop{ID: 5, Link: "https://example.com/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRaindropsSave_ExecError(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO raindrops").
		WillReturnError(errors.New("locked"))

	err := repo.Save(context.Background(), models.Raindrop{ID: 5})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestRaindropsDelete_Success(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM raindrops").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRaindropsReplaceAll_Success(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM raindrops").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO raindrops").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO raindrops").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), []models.Raindrop{
		{ID: 1, Link: "https://one.example.com/"},
		{ID: 2, Link: "https://two.example.com/"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRaindropsReplaceAll_RollsBackOnInsertError(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM raindrops").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO raindrops").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []models.Raindrop{{ID: 1}})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRaindropsReplaceAll_BeginError(t *testing.T) {
	repo, mock, db := newTestRaindropRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	err := repo.ReplaceAll(context.Background(), nil)
	if !errors.Is(err, ErrOpeningTransaction) {
		t.Fatalf("expected ErrOpeningTransaction, got %v", err)
	}
}
