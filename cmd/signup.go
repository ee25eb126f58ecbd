package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type signupCmd struct {
	userFlags
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new user" }
func (*signupCmd) Usage() string {
	return `ffn signup -u <username> -p <password>

  Creates a new user. Usernames and passwords must not contain spaces;
  they are truncated to 29 and 19 characters respectively.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	app, err := loadApp()
	if err != nil {
		return fail(err)
	}
	u, err := app.SignUp(c.username, c.password)
	if err != nil {
		return fail(err)
	}
	saveApp(app)
	fmt.Printf("Sign up successful. Welcome %s, you can now log in.\n", u.Name())
	return subcommands.ExitSuccess
}
