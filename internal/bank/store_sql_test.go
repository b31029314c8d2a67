package bank

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/BourneJH/exam-application/internal/db"
)

func sqliteStore(t *testing.T) *SQLStore {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "bank.db")
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return NewSQLStore(dbh)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := sqliteStore(t)

	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}
	if n, err := st.Count(ctx); err != nil || n != 3 {
		t.Fatalf("count = %d, %v", n, err)
	}

	q, err := st.Get(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if q.Prompt != "two" || q.Correct != "B" || len(q.Options) != 2 {
		t.Errorf("got %+v", q)
	}

	qs, err := st.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 3 || qs[0].ID != 1 || qs[1].ID != 2 {
		t.Errorf("list = %+v", qs)
	}

	if _, err := st.Get(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSQLStoreReplaceDropsOldBank(t *testing.T) {
	ctx := context.Background()
	st := sqliteStore(t)
	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}
	if err := st.Replace(ctx, sampleQuestions()[:1]); err != nil {
		t.Fatal(err)
	}
	if n, _ := st.Count(ctx); n != 1 {
		t.Errorf("count = %d after replace, want 1", n)
	}
}

func TestSQLStoreAppendRenumbers(t *testing.T) {
	ctx := context.Background()
	st := sqliteStore(t)
	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}
	extra := []Question{
		{ID: 1, Prompt: "added", Options: []Option{{Letter: "A", Text: "a"}}},
	}
	if err := st.Append(ctx, extra); err != nil {
		t.Fatal(err)
	}
	q, err := st.Get(ctx, 4)
	if err != nil || q.Prompt != "added" {
		t.Errorf("appended = %+v, %v", q, err)
	}
}

func TestSQLStoreMedia(t *testing.T) {
	ctx := context.Background()
	st := sqliteStore(t)
	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	if err := st.SetMedia(ctx, 1, 3, "fig.gif", "image/gif"); err != nil {
		t.Fatal(err)
	}
	ref, err := st.GetMedia(ctx, 1, 3)
	if err != nil || ref.Slot != 3 || ref.MIME != "image/gif" {
		t.Fatalf("media = %+v, %v", ref, err)
	}

	q, _ := st.Get(ctx, 1)
	if len(q.Media) != 1 || q.Media[0].Name != "fig.gif" {
		t.Errorf("question media = %+v", q.Media)
	}

	if err := st.SetMedia(ctx, 42, 1, "x", "y"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := st.SetMedia(ctx, 1, 9, "x", "y"); err == nil {
		t.Error("slot out of range accepted")
	}
}
