package domain

// Permission names mirror the grants of the statistics admin surface.
type Permission string

const (
	// PermStatsAll allows viewing and editing every user's activity entries.
	PermStatsAll Permission = "view and edit all user statistics"
	// PermStatsOwn allows viewing and editing only one's own entries.
	PermStatsOwn Permission = "view and edit own user statistics"
)

// Identity is the requester context passed to every access-controlled
// operation. The zero value is anonymous and holds no permissions, so
// ambiguous identities deny by default.
type Identity struct {
	UserID int64
	Admin  bool
}

func (i Identity) Anonymous() bool {
	return i.UserID == 0
}

func (i Identity) HasPermission(p Permission) bool {
	switch p {
	case PermStatsAll:
		return i.Admin
	case PermStatsOwn:
		return i.Admin || i.UserID != 0
	}
	return false
}
