package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███████╗ ██████╗██╗  ██╗ ██████╗ ██╗      █████╗ ██████╗
██╔════╝██╔════╝██║  ██║██╔═══██╗██║     ██╔══██╗██╔══██╗
███████╗██║     ███████║██║   ██║██║     ███████║██████╔╝
╚════██║██║     ██╔══██║██║   ██║██║     ██╔══██║██╔══██╗
███████║╚██████╗██║  ██║╚██████╔╝███████╗██║  ██║██║  ██║
╚══════╝ ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝`

// promptOptions holds the user's responses to the first-run prompts.
type promptOptions struct {
	DefaultTarget string
	DarkTheme     bool
	Notify        bool
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.Display.DarkTheme = opts.DarkTheme
		c.Notifications.Enabled = opts.Notify
		c.Timer.DefaultTarget = opts.DefaultTarget

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (promptOptions, error) {
	opts := promptOptions{
		DarkTheme: true,
		Notify:    true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure scholar for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'scholar edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Focus session target").
				Description("Shown as a progress bar while a session runs").
				Options(
					huh.NewOption("No target", "").Selected(true),
					huh.NewOption("25 minutes", "25m"),
					huh.NewOption("50 minutes", "50m"),
					huh.NewOption("90 minutes", "90m"),
					huh.NewOption("2 hours", "2h"),
				).
				Value(&opts.DefaultTarget),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Desktop notifications when a session ends?").
				Value(&opts.Notify),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use colours suited to a dark terminal background?").
				Value(&opts.DarkTheme),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}
