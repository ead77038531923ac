package cli

import (
	"time"

	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/habits"
	"github.com/habitflow/habitflow/internal/storage"
)

// Context is passed to every command's Run method.
type Context struct {
	Repo    *habits.Repository
	Store   storage.Provider
	DataDir string
}

// Today returns the current day at midnight local time.
func (c *Context) Today() time.Time {
	return dateutil.NormalizeToDay(time.Now())
}
