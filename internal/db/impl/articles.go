package impl

import (
	"context"
	"database/sql"
	"time"

	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
)

func (d *dbImpl) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	var a domain.Article
	var display sql.NullString
	row := d.db.QueryRowContext(ctx,
		"SELECT id, category, title, display_title, body, created_at FROM articles WHERE id = ?", id)
	err := row.Scan(&a.ID, &a.Category, &a.Title, &display, &a.Body, &a.Created)
	if err != nil {
		return domain.Article{}, d.HandleError(err)
	}
	a.DisplayTitle = display.String
	return a, nil
}

func (d *dbImpl) CreateArticle(ctx context.Context, p db.CreateArticleParams) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		"INSERT INTO articles(category, title, body, created_at) VALUES (?,?,?,?)",
		p.Category, p.Title, p.Body, time.Now().Unix())
	if err != nil {
		return 0, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) UpdateArticle(ctx context.Context, id int64, title, body string) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE articles SET title = ?, body = ? WHERE id = ?", title, body, id)
	if err != nil {
		return d.HandleError(err)
	}
	return d.requireRow(res)
}

func (d *dbImpl) ListNewsMissingDisplayTitle(ctx context.Context, afterID int64, limit int) ([]domain.Article, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, category, title, display_title, body, created_at
		FROM articles
		WHERE category = ? AND (display_title IS NULL OR display_title = '') AND id > ?
		ORDER BY id LIMIT ?`,
		domain.CategoryNews, afterID, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		var display sql.NullString
		if err := rows.Scan(&a.ID, &a.Category, &a.Title, &display, &a.Body, &a.Created); err != nil {
			return nil, d.HandleError(err)
		}
		a.DisplayTitle = display.String
		articles = append(articles, a)
	}
	return articles, d.HandleError(rows.Err())
}

func (d *dbImpl) SetDisplayTitle(ctx context.Context, id int64, title string) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE articles SET display_title = ? WHERE id = ?", title, id)
	if err != nil {
		return d.HandleError(err)
	}
	return d.requireRow(res)
}
