package bank

import (
	"context"
	"errors"
	"testing"
)

func sampleQuestions() []Question {
	return []Question{
		{ID: 1, Prompt: "one", Options: []Option{{Letter: "A", Text: "a"}, {Letter: "B", Text: "b"}}, Correct: "A"},
		{ID: 2, Prompt: "two", Options: []Option{{Letter: "A", Text: "a"}, {Letter: "B", Text: "b"}}, Correct: "B"},
		{ID: 3, Prompt: "three", Options: []Option{{Letter: "A", Text: "a"}, {Letter: "B", Text: "b"}}},
	}
}

func TestMemoryStoreReplaceAndList(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}
	qs, err := st.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 3 || qs[0].ID != 1 || qs[2].ID != 3 {
		t.Fatalf("list = %+v", qs)
	}

	// Re-import replaces the whole bank.
	if err := st.Replace(ctx, sampleQuestions()[:1]); err != nil {
		t.Fatal(err)
	}
	if n, _ := st.Count(ctx); n != 1 {
		t.Errorf("count = %d after replace, want 1", n)
	}
	if _, err := st.Get(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreAppendRenumbersCollisions(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}
	extra := []Question{
		{ID: 2, Prompt: "colliding", Options: []Option{{Letter: "A", Text: "a"}}},
	}
	if err := st.Append(ctx, extra); err != nil {
		t.Fatal(err)
	}
	if n, _ := st.Count(ctx); n != 4 {
		t.Fatalf("count = %d, want 4", n)
	}
	q, err := st.Get(ctx, 4)
	if err != nil || q.Prompt != "colliding" {
		t.Errorf("renumbered question = %+v, %v", q, err)
	}
}

func TestMemoryStoreMediaSlots(t *testing.T) {
	ctx := context.Background()
	st := NewInMemoryStore()
	if err := st.Replace(ctx, sampleQuestions()); err != nil {
		t.Fatal(err)
	}

	if err := st.SetMedia(ctx, 1, 0, "x.png", "image/png"); err == nil {
		t.Error("slot 0 accepted")
	}
	if err := st.SetMedia(ctx, 1, MaxMediaSlots+1, "x.png", "image/png"); err == nil {
		t.Error("slot beyond cap accepted")
	}
	if err := st.SetMedia(ctx, 99, 1, "x.png", "image/png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	if err := st.SetMedia(ctx, 1, 2, "diagram.png", "image/png"); err != nil {
		t.Fatal(err)
	}
	ref, err := st.GetMedia(ctx, 1, 2)
	if err != nil || ref.Name != "diagram.png" || ref.MIME != "image/png" {
		t.Fatalf("media = %+v, %v", ref, err)
	}
	if _, err := st.GetMedia(ctx, 1, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty slot err = %v, want ErrNotFound", err)
	}

	// Overwrite the same slot.
	if err := st.SetMedia(ctx, 1, 2, "new.jpg", "image/jpeg"); err != nil {
		t.Fatal(err)
	}
	ref, _ = st.GetMedia(ctx, 1, 2)
	if ref.MIME != "image/jpeg" {
		t.Errorf("media = %+v", ref)
	}
	q, _ := st.Get(ctx, 1)
	if len(q.Media) != 1 {
		t.Errorf("media refs = %+v, want one slot", q.Media)
	}
}

func TestGradableOnly(t *testing.T) {
	qs := sampleQuestions()
	qs = append(qs, Question{
		ID:      4,
		Prompt:  "answer letter not among options",
		Options: []Option{{Letter: "A", Text: "a"}},
		Correct: "D",
	})
	g := GradableOnly(qs)
	if len(g) != 2 {
		t.Fatalf("gradable = %d, want 2", len(g))
	}
	for _, q := range g {
		if !q.Gradable() {
			t.Errorf("ungradable question %d in gradable bank", q.ID)
		}
	}
}
