package account

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow-cli/internal/auth"
	"github.com/habitflow/habitflow-cli/internal/cli"
)

type AccountCmd struct {
	Register RegisterCmd `cmd:"" help:"Create the local account."`
	Login    LoginCmd    `cmd:"" help:"Verify credentials against the local account."`
	Whoami   WhoamiCmd   `cmd:"" help:"Show the registered account."`
	Remove   RemoveCmd   `cmd:"" help:"Remove the local account (habit data is kept)."`
}

type RegisterCmd struct {
	Name  string `help:"Display name."`
	Email string `help:"Email address."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	name, email := c.Name, c.Email
	var passphrase string

	var fields []huh.Field
	if name == "" {
		fields = append(fields, huh.NewInput().Title("Name").Value(&name))
	}
	if email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(&email))
	}
	fields = append(fields, huh.NewInput().Title("Passphrase").EchoMode(huh.EchoModePassword).Value(&passphrase))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	user, err := auth.Register(ctx.Tracker, name, email, passphrase)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! Account registered for %s.\n", user.Name, user.Email)
	return nil
}

type LoginCmd struct {
	Email string `arg:"" help:"Email address."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	var passphrase string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Passphrase").EchoMode(huh.EchoModePassword).Value(&passphrase),
	))
	if err := form.Run(); err != nil {
		return err
	}

	user, err := auth.Verify(ctx.Tracker, c.Email, passphrase)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	user := ctx.Tracker.User()
	if user == nil {
		fmt.Println("No account registered. Use 'habitflow account register'.")
		return nil
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Printf("Member since %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}

type RemoveCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Remove the local account?").
				Description("Habits, completions, and journal entries are kept.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := auth.Remove(ctx.Tracker); err != nil {
		return err
	}
	fmt.Println("Account removed.")
	return nil
}
