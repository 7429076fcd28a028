package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

const timeLayout = "Mon 02 Jan 15:04 MST"

// PrintAlarms writes the alarms as a table.
func PrintAlarms(w io.Writer, defs []domain.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "ID\tON\tTIME\tDAYS\tSTATE\tNEXT\tLABEL")

	for _, def := range defs {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%02d:%02d\t%s\t%s\t%s\t%s\n",
			def.ID, onOff(def.Enabled), def.Hour, def.Minute, def.Days, def.State, formatTrigger(def.NextTrigger), def.Label)
	}

	return tw.Flush()
}

// PrintAlarm writes one alarm with every field.
func PrintAlarm(w io.Writer, def domain.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"id", def.ID.String()},
		{"enabled", onOff(def.Enabled)},
		{"time", fmt.Sprintf("%02d:%02d", def.Hour, def.Minute)},
		{"days", def.Days.String()},
		{"prealert", onOff(def.PreAlert)},
		{"skip next", onOff(def.SkipNext)},
		{"vibrate", onOff(def.Vibrate)},
		{"tone", def.Tone},
		{"label", def.Label},
		{"state", string(def.State)},
		{"next trigger", formatTrigger(def.NextTrigger)},
	}

	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}

	return tw.Flush()
}

func onOff(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func formatTrigger(at time.Time) string {
	if at.IsZero() {
		return "-"
	}

	return at.Local().Format(timeLayout)
}
