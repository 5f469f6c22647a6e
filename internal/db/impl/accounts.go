package impl

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tsnews/newsdesk/internal/db"
	"github.com/tsnews/newsdesk/internal/domain"
)

func (d *dbImpl) EmailExists(ctx context.Context, email string) (exists bool, err error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT TRUE FROM users WHERE email = ?)", email)
	if err = row.Scan(&exists); err != nil {
		err = fmt.Errorf("can't check email: %w", d.HandleError(err))
	}
	return
}

func (d *dbImpl) InsertUser(ctx context.Context, p db.CreateUserParams) (int64, error) {
	age := sql.NullInt64{}
	if p.Age != nil {
		age = sql.NullInt64{Valid: true, Int64: int64(*p.Age)}
	}

	res, err := d.db.ExecContext(ctx, `INSERT INTO users(
			username,
			email,
			password,
			age,
			country,
			about,
			admin,
			created_at
		) VALUES (?,?,?,?,?,?,?,?)`,
		p.Username,
		p.Email,
		p.Password,
		age,
		nullString(p.Country),
		nullString(p.About),
		p.Admin,
		time.Now().Unix(),
	)
	if err != nil {
		return 0, d.HandleError(err)
	}

	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) GetAuthDataByEmail(ctx context.Context, email string) (domain.UserAuth, error) {
	var u domain.UserAuth
	row := d.db.QueryRowContext(ctx,
		"SELECT id, username, email, password, admin FROM users WHERE email = ?", email)
	err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.Password, &u.Admin)
	if err != nil {
		return domain.UserAuth{}, d.HandleError(err)
	}
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{Valid: s != "", String: s}
}
