package alarms

import (
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// currentVersion is the layout written by this package.
const currentVersion = 2

// document is the on-disk layout.
type document struct {
	Version     int                   `yaml:"version"`
	Initialized bool                  `yaml:"initialized"`
	NextID      int                   `yaml:"next_id"`
	Alarms      map[domain.ID]*record `yaml:"alarms"`
}

// legacyDocument is the version 1 layout: a plain list without an id counter.
type legacyDocument struct {
	Version     int       `yaml:"version"`
	Initialized bool      `yaml:"initialized"`
	Alarms      []*record `yaml:"alarms"`
}

// record is one persisted alarm.
type record struct {
	ID          domain.ID `yaml:"id"`
	Enabled     bool      `yaml:"enabled"`
	Hour        int       `yaml:"hour"`
	Minute      int       `yaml:"minute"`
	Days        uint8     `yaml:"days"`
	PreAlert    bool      `yaml:"prealert"`
	SkipNext    bool      `yaml:"skip_next"`
	Tone        string    `yaml:"tone,omitempty"`
	Vibrate     bool      `yaml:"vibrate"`
	Label       string    `yaml:"label,omitempty"`
	NextTrigger time.Time `yaml:"next_trigger,omitempty"`
	Occurrence  time.Time `yaml:"occurrence,omitempty"`
	State       string    `yaml:"state"`
}

func newDocument() *document {
	return &document{
		Version: currentVersion,
		NextID:  1,
		Alarms:  make(map[domain.ID]*record),
	}
}

// fromRecord converts a persisted record into the domain Definition.
// Unknown state tags fall back to disabled so a damaged entry never blocks startup.
func fromRecord(r *record) domain.Definition {
	state, err := domain.ParseState(r.State)
	if err != nil {
		state = domain.StateDisabled
	}

	def := domain.Definition{
		ID:       r.ID,
		Enabled:  r.Enabled,
		Hour:     r.Hour,
		Minute:   r.Minute,
		Days:     domain.DaysOfWeek(r.Days),
		PreAlert: r.PreAlert,
		SkipNext: r.SkipNext,
		Tone:     r.Tone,
		Vibrate:  r.Vibrate,
		Label:    r.Label,
		State:    state,
	}

	if state.HasTrigger() {
		def.NextTrigger = r.NextTrigger
		def.Occurrence = r.Occurrence
	}

	return def
}

// toRecord converts the domain Definition into its persisted form.
func toRecord(def domain.Definition) *record {
	r := &record{
		ID:       def.ID,
		Enabled:  def.Enabled,
		Hour:     def.Hour,
		Minute:   def.Minute,
		Days:     uint8(def.Days),
		PreAlert: def.PreAlert,
		SkipNext: def.SkipNext,
		Tone:     def.Tone,
		Vibrate:  def.Vibrate,
		Label:    def.Label,
		State:    string(def.State),
	}

	if def.State.HasTrigger() && !def.NextTrigger.IsZero() {
		r.NextTrigger = def.NextTrigger
		r.Occurrence = def.Occurrence
	}

	if r.State == "" {
		r.State = string(domain.StateDisabled)
	}

	return r
}

// upgrade converts a version 1 document. The id counter resumes after the highest id seen.
func upgrade(old *legacyDocument) *document {
	doc := newDocument()
	doc.Initialized = old.Initialized

	for _, r := range old.Alarms {
		if r == nil {
			continue
		}

		doc.Alarms[r.ID] = r
		if int(r.ID) >= doc.NextID {
			doc.NextID = int(r.ID) + 1
		}
	}

	return doc
}

// clone returns a deep copy safe to marshal outside the lock.
func (d *document) clone() *document {
	out := &document{
		Version:     d.Version,
		Initialized: d.Initialized,
		NextID:      d.NextID,
		Alarms:      make(map[domain.ID]*record, len(d.Alarms)),
	}

	for id, r := range d.Alarms {
		copied := *r
		out.Alarms[id] = &copied
	}

	return out
}
