// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package session

// Notifier shows a transient, fire-and-forget message to the user.
type Notifier interface {
	Notify(title, description string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, description string)

// Notify calls f.
func (f NotifierFunc) Notify(title, description string) {
	f(title, description)
}

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(string, string) {}) //nolint:gochecknoglobals

// Notification is a recorded notification.
type Notification struct {
	Title       string
	Description string
}

// Recorder keeps every notification it receives, oldest first.
type Recorder struct {
	Notifications []Notification
}

// Notify records the notification.
func (r *Recorder) Notify(title, description string) {
	r.Notifications = append(r.Notifications, Notification{Title: title, Description: description})
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}

	return r.Notifications[len(r.Notifications)-1], true
}
