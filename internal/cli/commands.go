// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/platform"
)

func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createTUICommand(),
		app.createListCommand(),
		app.createShowCommand(),
		app.createRequestCommand(),
		app.createDashboardCommand(),
		app.createVersionCommand(),
	}
}

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive catalog",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.runTUI(ctx)
		},
	}
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List catalog apps",
		Description: `List apps matching a search, departments and rating.

CATEGORIES:
  HR, Engineering, Sales, IT, Finance, Marketing, Design

SORT KEYS:
  popularity (default), newest, recommended

EXAMPLES:
  appcatalog list --query chat
  appcatalog list -c engineering -c design --sort newest
  appcatalog --plain list --popular`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "match name, description or category",
			},
			&cli.StringSliceFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "restrict to a department (repeatable)",
			},
			&cli.BoolFlag{
				Name:    "popular",
				Aliases: []string{"p"},
				Usage:   "only apps rated 4 or higher",
			},
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "sort key: popularity, newest, recommended",
			},
		},
		Action: app.handleList,
	}
}

func (app *CLI) handleList(_ context.Context, cmd *cli.Command) error {
	query := catalog.Query{
		Text:        cmd.String("query"),
		PopularOnly: cmd.Bool("popular"),
		Sort:        app.cfg.SortKey(),
	}

	if name := cmd.String("sort"); name != "" {
		sortKey, err := catalog.ParseSortKey(name)
		if err != nil {
			return app.exitError(err)
		}

		query.Sort = sortKey
	}

	for _, name := range cmd.StringSlice("category") {
		category, err := domain.ParseCategory(name)
		if err != nil {
			return app.exitError(err)
		}

		query = query.ToggleCategory(category)
	}

	handler, err := app.newHandler()
	if err != nil {
		return err
	}

	_, err = handler.List(query)

	return app.exitError(err)
}

func (app *CLI) createShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show app details",
		ArgsUsage: "<id|name>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			ref, err := singleArg(cmd)
			if err != nil {
				return err
			}

			handler, err := app.newHandler()
			if err != nil {
				return err
			}

			_, err = handler.Show(ref)

			return app.exitError(err)
		},
	}
}

func (app *CLI) createRequestCommand() *cli.Command {
	return &cli.Command{
		Name:      "request",
		Usage:     "Request access to an app",
		ArgsUsage: "<id|name>",
		Description: `Submit a simulated access request. The request is pending until
reviewed and lives only for this invocation.

EXAMPLES:
  appcatalog request figma
  appcatalog --json request --yes 4`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "submit without asking for confirmation",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			ref, err := singleArg(cmd)
			if err != nil {
				return err
			}

			handler, err := app.newHandler()
			if err != nil {
				return err
			}

			confirm := app.confirm
			if cmd.Bool("yes") {
				confirm = nil
			}

			_, _, err = handler.Request(ref, confirm)

			return app.exitError(err)
		},
	}
}

func (app *CLI) createDashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Show your apps, pending requests and recommendations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "role",
				Aliases: []string{"r"},
				Usage:   "role for recommendations: general, engineering",
				Value:   string(domain.RoleGeneral),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			role, err := domain.ParseRole(cmd.String("role"))
			if err != nil {
				return app.exitError(err)
			}

			handler, err := app.newHandler()
			if err != nil {
				return err
			}

			_, err = handler.Dashboard(role)

			return app.exitError(err)
		},
	}
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			if app.json {
				return app.exitError(app.out.Adapter().Success("", map[string]string{"version": app.version}))
			}

			_, err := fmt.Fprintf(app.stdout, "%s %s\n", platform.AppName, app.version)

			return err
		},
	}
}

func singleArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", domain.NewExitError(ExitUsageError,
			fmt.Sprintf("%s requires exactly one app id or name", cmd.Name), nil)
	}

	return cmd.Args().First(), nil
}
