package cli

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if data already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	_, exists, err := ctx.Store.Get(constants.StorageKey)
	if err != nil {
		return err
	}
	if exists && !c.Force {
		return fmt.Errorf("storage already initialized (use --force to reset)")
	}
	if exists {
		if err := ctx.Store.Delete(constants.StorageKey); err != nil {
			return err
		}
		if err := ctx.Repo.Load(); err != nil {
			return err
		}
	}

	if err := ctx.Repo.Flush(); err != nil {
		return err
	}

	fmt.Println("Initialized habitflow storage.")
	return nil
}
