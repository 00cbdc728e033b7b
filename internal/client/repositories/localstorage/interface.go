package localstorage

import "context"

// Keys written by the session store and the theme command.
const (
	KeyToken     = "token"
	KeyRole      = "role"
	KeyClub      = "club"
	KeyUserID    = "user_id"
	KeyStudentID = "student_id"
	KeyTheme     = "theme"
)

// SessionKeys are removed on logout.
var SessionKeys = []string{KeyToken, KeyRole, KeyClub, KeyUserID, KeyStudentID}

type Repository interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key string, value string) error
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
