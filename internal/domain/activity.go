package domain

// ActionKind is the kind of tracked interaction with an article.
type ActionKind string

const (
	ActionView ActionKind = "view"
	ActionEdit ActionKind = "edit"
)

func (a ActionKind) Valid() bool {
	return a == ActionView || a == ActionEdit
}

// ActivityEntry is one recorded view or edit of a news article. UserID is nil
// for views by anonymous visitors. Created is epoch seconds, set once at
// insert time.
type ActivityEntry struct {
	ID        int64
	UserID    *int64
	ArticleID int64
	Action    ActionKind
	Comment   string
	Created   int64
}

// OwnedBy reports whether the entry belongs to the given user. Anonymous
// entries belong to nobody.
func (e ActivityEntry) OwnedBy(userID int64) bool {
	return e.UserID != nil && userID != 0 && *e.UserID == userID
}
