// Package client backs the alarmctl commands: it connects to the daemon with
// the settings from the config file, renders alarms for the terminal and
// watches the daemon for ringing alarms.
package client
