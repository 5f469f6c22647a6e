package domain

// CategoryNews is the only article category whose views and edits are
// tracked.
const CategoryNews = "news"

type Article struct {
	ID       int64
	Category string
	Title    string
	// DisplayTitle is the presentation title, empty until set by an editor or
	// backfilled from Title.
	DisplayTitle string
	Body         string
	Created      int64
}

// Tracked reports whether interactions with the article are recorded.
func (a Article) Tracked() bool {
	return a.Category == CategoryNews
}
