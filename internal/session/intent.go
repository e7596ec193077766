// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import (
	"fmt"
)

// Intent is a user action raised by the presentation layer.
type Intent interface {
	intent()
}

// ChangeView is a navigation tab selection.
type ChangeView struct{ View View }

// ShowDetails opens the detail view for an app.
type ShowDetails struct{ AppID string }

// BeginRequest opens the access request confirmation for an app.
type BeginRequest struct{ AppID string }

// Confirm submits the open access request.
type Confirm struct{}

// Cancel dismisses the open access request.
type Cancel struct{}

// ToggleRole switches between the two roles.
type ToggleRole struct{}

// GoBack leaves the detail view for the catalog.
type GoBack struct{}

func (ChangeView) intent()   {}
func (ShowDetails) intent()  {}
func (BeginRequest) intent() {}
func (Confirm) intent()      {}
func (Cancel) intent()       {}
func (ToggleRole) intent()   {}
func (GoBack) intent()       {}

// Dispatch applies an intent to the session. Only intents that name an app
// missing from the catalog, or an unknown view, return an error.
func (s *Session) Dispatch(in Intent) error {
	switch in := in.(type) {
	case ChangeView:
		return s.Navigate(in.View)
	case ShowDetails:
		return s.ViewDetails(in.AppID)
	case BeginRequest:
		return s.RequestAccess(in.AppID)
	case Confirm:
		s.ConfirmRequest()
	case Cancel:
		s.CancelRequest()
	case ToggleRole:
		s.SwitchRole()
	case GoBack:
		s.Back()
	default:
		return fmt.Errorf("unsupported intent %T", in)
	}

	return nil
}
