package impl

import (
	"context"
	"database/sql"
	"strings"

	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
)

// deleteChunk bounds how many entries a single clear-all statement removes,
// so the operation never loads or locks the whole table at once.
const deleteChunk = 1000

func (d *dbImpl) InsertEntry(ctx context.Context, p db.CreateEntryParams) (int64, error) {
	uid := sql.NullInt64{}
	if p.UserID != nil {
		uid = sql.NullInt64{Valid: true, Int64: *p.UserID}
	}

	res, err := d.db.ExecContext(ctx,
		"INSERT INTO activity_log(uid, article_id, action, comment, created_at) VALUES (?,?,?,'',?)",
		uid, p.ArticleID, string(p.Action), p.Created)
	if err != nil {
		return 0, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) GetEntry(ctx context.Context, id int64) (domain.ActivityEntry, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT id, uid, article_id, action, comment, created_at FROM activity_log WHERE id = ?", id)
	return d.scanEntry(row.Scan)
}

func (d *dbImpl) ListEntries(ctx context.Context, f db.EntryFilter) ([]domain.ActivityEntry, error) {
	query, args := buildEntryQuery(
		"SELECT id, uid, article_id, action, comment, created_at FROM activity_log", f, true)

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		e, err := d.scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, d.HandleError(rows.Err())
}

func (d *dbImpl) CountEntries(ctx context.Context, f db.EntryFilter) (count int64, err error) {
	query, args := buildEntryQuery("SELECT COUNT(*) FROM activity_log", f, false)
	err = d.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) UpdateEntryComment(ctx context.Context, id int64, comment string) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE activity_log SET comment = ? WHERE id = ?", comment, id)
	if err != nil {
		return d.HandleError(err)
	}
	return d.requireRow(res)
}

func (d *dbImpl) DeleteEntry(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM activity_log WHERE id = ?", id)
	if err != nil {
		return d.HandleError(err)
	}
	return d.requireRow(res)
}

// DeleteAllEntries clears the log in one transaction, so a failure partway
// through leaves every entry in place. Each statement still only touches
// deleteChunk ids at a time.
func (d *dbImpl) DeleteAllEntries(ctx context.Context) (int64, error) {
	var total int64
	err := d.WithTx(func(tx *sql.Tx) error {
		for {
			res, err := tx.ExecContext(ctx,
				"DELETE FROM activity_log WHERE id IN (SELECT id FROM activity_log LIMIT ?)", deleteChunk)
			if err != nil {
				return d.HandleError(err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return d.HandleError(err)
			}
			total += n
			if n < deleteChunk {
				return nil
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (d *dbImpl) scanEntry(scan func(...any) error) (domain.ActivityEntry, error) {
	var e domain.ActivityEntry
	var uid sql.NullInt64
	err := scan(&e.ID, &uid, &e.ArticleID, (*string)(&e.Action), &e.Comment, &e.Created)
	if err != nil {
		return domain.ActivityEntry{}, d.HandleError(err)
	}
	if uid.Valid {
		e.UserID = &uid.Int64
	}
	return e, nil
}

func (d *dbImpl) requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// entryColumns is the sort whitelist; anything else falls back to id.
var entryColumns = map[string]string{
	"id":         "id",
	"uid":        "uid",
	"article_id": "article_id",
	"action":     "action",
	"created_at": "created_at",
}

func buildEntryQuery(base string, f db.EntryFilter, ordered bool) (string, []any) {
	var conds []string
	var args []any

	if f.UserID != 0 {
		conds = append(conds, "uid = ?")
		args = append(args, f.UserID)
	}
	if f.ArticleID != 0 {
		conds = append(conds, "article_id = ?")
		args = append(args, f.ArticleID)
	}
	if f.Action != "" {
		conds = append(conds, "action = ?")
		args = append(args, string(f.Action))
	}

	q := base
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}

	if ordered {
		col, ok := entryColumns[f.SortBy]
		if !ok {
			col = "id"
		}
		dir := "ASC"
		if f.SortDesc {
			dir = "DESC"
		}
		q += " ORDER BY " + col + " " + dir

		if f.Limit > 0 {
			q += " LIMIT ? OFFSET ?"
			args = append(args, f.Limit, f.Offset)
		}
	}

	return q, args
}
