// Package watcher streams phase transitions from the activation server and
// logs them. Dropped events trigger a fresh phase query so the log always
// ends up consistent with the server.
package watcher
