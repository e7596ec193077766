// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package session owns the mutable state of a catalog session: the app list
// with access flags, the request history, the current role, the active view
// and the selected app. Every mutation is a named operation on Session.
//
// A Session is single-writer and not safe for concurrent use. The TUI
// mutates it only from Bubble Tea's Update loop.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/janderssonse/appcatalog/internal/catalog"
	"github.com/janderssonse/appcatalog/internal/domain"
	"github.com/janderssonse/appcatalog/internal/logging"
	"github.com/janderssonse/appcatalog/internal/stringutil"
	"github.com/sirupsen/logrus"
)

// Notification texts.
const (
	RequestSubmittedDescription = "Your request will be reviewed within 2-3 business days."
	ApprovalNotice              = "This app requires Manager + IT approval. " + RequestSubmittedDescription
	requestIDPrefix             = "req-"
)

// Session is the access/request state manager and view router.
type Session struct {
	apps     []domain.App
	requests []domain.PendingRequest
	role     domain.Role
	view     View

	selectedID string
	confirming bool

	technicalApps []string
	notifier      Notifier
	clock         func() time.Time
	log           logrus.FieldLogger

	lastRequestMillis int64
	requestIDs        map[string]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier sets the notification surface.
func WithNotifier(notifier Notifier) Option {
	return func(s *Session) {
		if notifier != nil {
			s.notifier = notifier
		}
	}
}

// WithClock overrides the time source used for request IDs and dates.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTechnicalApps sets the app names whose access follows the role.
func WithTechnicalApps(names []string) Option {
	return func(s *Session) {
		if len(names) > 0 {
			s.technicalApps = append([]string(nil), names...)
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// New starts a session from seed data: catalog view, no selection, General role.
func New(seed catalog.Seed, opts ...Option) *Session {
	seed = seed.Clone()

	s := &Session{
		apps:          seed.Apps,
		requests:      seed.Requests,
		role:          domain.RoleGeneral,
		view:          ViewCatalog,
		technicalApps: catalog.DefaultTechnicalApps(),
		notifier:      Discard,
		clock:         time.Now,
		log:           logging.Discard(),
		requestIDs:    make(map[string]struct{}, len(seed.Requests)),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, request := range s.requests {
		s.requestIDs[request.ID] = struct{}{}
	}

	return s
}

// Apps returns a copy of the current app list.
func (s *Session) Apps() []domain.App {
	return domain.CloneApps(s.apps)
}

// Requests returns a copy of the request history, newest first.
func (s *Session) Requests() []domain.PendingRequest {
	out := make([]domain.PendingRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

// Role returns the current role.
func (s *Session) Role() domain.Role {
	return s.role
}

// View returns the active view.
func (s *Session) View() View {
	return s.view
}

// App looks an app up by ID.
func (s *Session) App(id string) (domain.App, bool) {
	for _, app := range s.apps {
		if app.ID == id {
			return app.Clone(), true
		}
	}

	return domain.App{}, false
}

// FindApp looks an app up by ID, then by case-insensitive name.
func (s *Session) FindApp(ref string) (domain.App, bool) {
	ref = strings.TrimSpace(ref)
	if app, ok := s.App(ref); ok {
		return app, true
	}

	for _, app := range s.apps {
		if stringutil.EqualFoldAny(app.Name, []string{ref}) {
			return app.Clone(), true
		}
	}

	return domain.App{}, false
}

// Selected returns the selected app as it currently is in the catalog.
func (s *Session) Selected() (domain.App, bool) {
	if s.selectedID == "" {
		return domain.App{}, false
	}

	return s.App(s.selectedID)
}

// IsConfirming reports whether a request confirmation is open.
func (s *Session) IsConfirming() bool {
	return s.confirming
}

// Navigate switches to view from a navigation tab and clears the selection.
func (s *Session) Navigate(view View) error {
	parsed, err := ParseView(string(view))
	if err != nil {
		return err
	}

	s.view = parsed
	s.selectedID = ""
	s.confirming = false

	s.log.WithField("view", parsed).Debug("navigate")

	return nil
}

// ViewDetails selects an app and opens its detail view.
func (s *Session) ViewDetails(appID string) error {
	if err := s.selectApp(appID); err != nil {
		return err
	}

	s.view = ViewAppDetail

	s.log.WithField("app_id", appID).Debug("view details")

	return nil
}

// Back returns to the catalog.
func (s *Session) Back() {
	s.view = ViewCatalog
	s.confirming = false

	s.log.WithField("view", s.view).Debug("back")
}

// RequestAccess selects an app and opens the confirmation. The view is kept.
func (s *Session) RequestAccess(appID string) error {
	if err := s.selectApp(appID); err != nil {
		return err
	}

	s.confirming = true

	s.log.WithField("app_id", appID).Debug("request access")

	return nil
}

// CancelRequest closes the confirmation without submitting.
func (s *Session) CancelRequest() {
	s.confirming = false
}

// ConfirmRequest closes the confirmation and submits the request.
func (s *Session) ConfirmRequest() (domain.PendingRequest, bool) {
	s.confirming = false

	return s.SubmitRequest()
}

// SubmitRequest records a pending request for the selected app, notifies the
// user and moves to the my-apps view. It does nothing when no app is
// selected. The app's access flag is not changed.
func (s *Session) SubmitRequest() (domain.PendingRequest, bool) {
	app, ok := s.Selected()
	if !ok {
		s.log.Debug("submit request ignored: no app selected")

		return domain.PendingRequest{}, false
	}

	now := s.clock()
	request := domain.PendingRequest{
		ID:          s.nextRequestID(now),
		AppName:     app.Name,
		AppIcon:     app.Icon,
		RequestDate: now.Format(domain.RequestDateLayout),
		Status:      domain.StatusPending,
	}

	s.requests = append([]domain.PendingRequest{request}, s.requests...)
	s.view = ViewMyApps

	s.notifier.Notify("Access request submitted for "+app.Name, RequestSubmittedDescription)

	s.log.WithFields(logrus.Fields{
		"app_id":     app.ID,
		"request_id": request.ID,
	}).Info("access request submitted")

	return request, true
}

// SwitchRole toggles the role and updates access for the technical apps:
// granted for the Engineering role, revoked for General. Returns the new role.
func (s *Session) SwitchRole() domain.Role {
	s.role = s.role.Toggle()
	granted := s.role.IsTechnical()

	for i := range s.apps {
		if stringutil.EqualFoldAny(s.apps[i].Name, s.technicalApps) {
			s.apps[i].HasAccess = granted
		}
	}

	s.notifier.Notify(
		fmt.Sprintf("Switched to %s role", s.role),
		fmt.Sprintf("Your app access has been updated for the %s role.", s.role),
	)

	s.log.WithField("role", s.role).Info("role switched")

	return s.role
}

// Dashboard summarises the session for the my-apps and requests views.
func (s *Session) Dashboard() domain.DashboardResult {
	return domain.DashboardResult{
		Role:        s.role,
		MyApps:      catalog.WithAccess(s.apps),
		Requests:    s.Requests(),
		Recommended: catalog.Recommended(s.apps),
	}
}

func (s *Session) selectApp(appID string) error {
	if _, ok := s.App(appID); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownApp, appID)
	}

	s.selectedID = appID

	return nil
}

// nextRequestID derives a unique ID from the clock, bumping past the last
// issued value when two requests land in the same millisecond.
func (s *Session) nextRequestID(now time.Time) string {
	millis := now.UnixMilli()
	if millis <= s.lastRequestMillis {
		millis = s.lastRequestMillis + 1
	}

	id := fmt.Sprintf("%s%d", requestIDPrefix, millis)
	for {
		if _, taken := s.requestIDs[id]; !taken {
			break
		}

		millis++
		id = fmt.Sprintf("%s%d", requestIDPrefix, millis)
	}

	s.lastRequestMillis = millis
	s.requestIDs[id] = struct{}{}

	return id
}
