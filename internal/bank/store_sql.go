package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLStore persists the bank in the questions table (sqlite or
// postgres, same statements). Options are stored as JSON, media slots
// as three name/mime column pairs like the original single-file DB so
// the bank file stays portable.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Replace(ctx context.Context, qs []Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}
	for _, q := range qs {
		if err := insertQuestion(ctx, tx, q); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLStore) Append(ctx context.Context, qs []Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	var next sql.NullInt64
	if err := tx.QueryRowContext(ctx, `SELECT MAX(id) FROM questions`).Scan(&next); err != nil {
		return err
	}
	hi := int(next.Int64)
	for _, q := range qs {
		hi++
		q.ID = hi
		if err := insertQuestion(ctx, tx, q); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertQuestion(ctx context.Context, tx *sql.Tx, q Question) error {
	oj, err := json.Marshal(q.Options)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO questions (id,prompt,options_json,correct_letter)
		VALUES ($1,$2,$3,$4)`,
		q.ID, q.Prompt, string(oj), q.Correct)
	return err
}

const questionCols = `id,prompt,options_json,correct_letter,
	media1_name,media1_mime,media2_name,media2_mime,media3_name,media3_mime`

func scanQuestion(row interface{ Scan(...any) error }) (Question, error) {
	var q Question
	var oj string
	var names, mimes [MaxMediaSlots]sql.NullString
	err := row.Scan(&q.ID, &q.Prompt, &oj, &q.Correct,
		&names[0], &mimes[0], &names[1], &mimes[1], &names[2], &mimes[2])
	if err != nil {
		return Question{}, err
	}
	if err := json.Unmarshal([]byte(oj), &q.Options); err != nil {
		return Question{}, err
	}
	for i := 0; i < MaxMediaSlots; i++ {
		if names[i].Valid && names[i].String != "" {
			q.Media = append(q.Media, MediaRef{Slot: i + 1, Name: names[i].String, MIME: mimes[i].String})
		}
	}
	return q, nil
}

func (s *SQLStore) Get(ctx context.Context, id int) (Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+questionCols+` FROM questions WHERE id=$1`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, ErrNotFound
	}
	return q, err
}

func (s *SQLStore) List(ctx context.Context) ([]Question, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+questionCols+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	return n, err
}

func (s *SQLStore) SetMedia(ctx context.Context, id, slot int, name, mime string) error {
	if slot < 1 || slot > MaxMediaSlots {
		return fmt.Errorf("media slot %d out of range 1..%d", slot, MaxMediaSlots)
	}
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE questions SET media%d_name=$1, media%d_mime=$2 WHERE id=$3`, slot, slot),
		name, mime, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) GetMedia(ctx context.Context, id, slot int) (MediaRef, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return MediaRef{}, err
	}
	for _, ref := range q.Media {
		if ref.Slot == slot {
			return ref, nil
		}
	}
	return MediaRef{}, ErrNotFound
}
