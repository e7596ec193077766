// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/janderssonse/appcatalog/internal/cli/handlers"
	"github.com/janderssonse/appcatalog/internal/console"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/session"
)

// ErrConfirmationRequired is returned when a request needs confirming but
// there is no terminal to ask on.
var ErrConfirmationRequired = errors.New("stdin is not a terminal: pass --yes to submit without confirmation")

// confirmRequest asks on the terminal whether to submit a request for app.
func confirmRequest(app domain.App) (bool, error) {
	if !console.Interactive() {
		return false, ErrConfirmationRequired
	}

	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Request access to %s %s?", app.Icon, app.Name)).
				Description(session.ApprovalNotice).
				Affirmative("Confirm Request").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, handlers.ErrRequestDeclined
		}

		return false, err
	}

	return confirmed, nil
}
