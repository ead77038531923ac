package cli

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/identity"
	"github.com/habitflow/habitflow/internal/models"
)

type ProfileCmd struct {
	Show  ProfileShowCmd  `cmd:"" help:"Show the current user profile." default:"1"`
	Edit  ProfileEditCmd  `cmd:"" help:"Create or update the user profile."`
	Clear ProfileClearCmd `cmd:"" help:"Sign out and clear the stored profile."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	profile := ctx.Repo.Profile()
	if profile == nil {
		seed, err := identity.Current()
		if err != nil {
			fmt.Println("No profile found. Use 'habitflow profile edit --name ...' to sign in.")
			return nil
		}
		created, err := ctx.Repo.CreateProfileFromIdentity(seed.ID, seed.Name, seed.Email, seed.Avatar)
		if err != nil {
			return err
		}
		profile = &created
	}

	fmt.Printf("Name:  %s\n", profile.Name)
	if profile.Email != "" {
		fmt.Printf("Email: %s\n", profile.Email)
	}
	if profile.Bio != "" {
		fmt.Printf("Bio:   %s\n", profile.Bio)
	}
	fmt.Printf("Since: %s\n", profile.CreatedAt)

	agg := ctx.Repo.Aggregator(ctx.Today())
	fmt.Println("\nLast 7 days:")
	for _, d := range agg.WeeklyChartData() {
		fmt.Printf("  %s %s (%d)\n", d.Day, bar(d.Completed), d.Completed)
	}
	return nil
}

func bar(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "#"
	}
	return out
}

type ProfileEditCmd struct {
	Name   *string `help:"Display name."`
	Email  *string `help:"Email address."`
	Avatar *string `help:"Avatar URL."`
	Bio    *string `help:"Short bio."`
}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	if ctx.Repo.Profile() == nil {
		// First edit doubles as sign-in: seed identity, then apply the patch.
		seed, err := identity.Current()
		if err != nil {
			if c.Name == nil {
				return fmt.Errorf("no profile yet; --name is required to create one")
			}
			seed = identity.Seed{Name: *c.Name}
			if c.Email != nil {
				seed.Email = *c.Email
			}
			if err := identity.Save(seed); err != nil {
				return err
			}
			seed, _ = identity.Current()
		}
		if _, err := ctx.Repo.CreateProfileFromIdentity(seed.ID, seed.Name, seed.Email, seed.Avatar); err != nil {
			return err
		}
	}

	patch := models.ProfilePatch{
		Name:   c.Name,
		Email:  c.Email,
		Avatar: c.Avatar,
		Bio:    c.Bio,
	}
	updated, err := ctx.Repo.UpdateProfile(patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated profile for %s\n", updated.Name)
	return nil
}

type ProfileClearCmd struct{}

func (c *ProfileClearCmd) Run(ctx *Context) error {
	if err := ctx.Repo.ClearProfile(); err != nil {
		return err
	}
	if err := identity.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out. Habit data kept.")
	return nil
}
