// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fusion"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// EnvFile overrides the default data file path; the -f flag wins over both.
const EnvFile = "FUSION_FILE"

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.
var dataFile = flag.String("f", "", "Path to the data file (default $FUSION_FILE or userdata.txt)")

// Commands lists every subcommand. A main package registers them on a
// subcommands.Commander and executes the selected one.
var Commands = []subcommands.Command{
	&signupCmd{},
	&openCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&logCmd{},
	&marketCmd{},
	&buyCmd{},
	&sipCmd{},
	&portfolioCmd{},
	&topicCmd{},
}

// dataPath resolves the data file from the flag, the environment (including
// a .env file), or the default.
func dataPath() string {
	if *dataFile != "" {
		return *dataFile
	}
	_ = godotenv.Load()
	if p := os.Getenv(EnvFile); p != "" {
		return p
	}
	return fusion.DefaultFile
}

// loadApp builds the app and populates it from the data file.
func loadApp() (*fusion.App, error) {
	app := fusion.NewApp(dataPath())
	if err := app.Load(); err != nil {
		return nil, err
	}
	return app, nil
}

// saveApp flushes the app to the data file. A write failure is reported as
// a warning and the command still succeeds: the in-memory operation already
// happened.
func saveApp(app *fusion.App) {
	if err := app.Save(); err != nil {
		log.Printf("warning: state not persisted: %v", err)
	}
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// userFlags is embedded by every command that acts on behalf of a user.
type userFlags struct {
	username string
	password string
}

func (u *userFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&u.username, "u", "", "Username")
	f.StringVar(&u.password, "p", "", "Password")
}

// login authenticates against the directory. This is a session entry: it
// re-simulates market prices and applies the SIP growth step, so mutating
// commands must save afterwards.
func (u *userFlags) login(app *fusion.App) (*fusion.User, error) {
	return app.Login(u.username, u.password)
}
