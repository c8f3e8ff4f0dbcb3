package midi

import (
	"io"
	"math"
	"sort"

	"github.com/jsphweid/musicobjects/composition"
	"github.com/jsphweid/musicobjects/constants"
	"github.com/jsphweid/musicobjects/note"
	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/jsphweid/musicobjects/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Score is what survives a trip through a MIDI file: notes grouped by onset,
// named markers and a single metre.
type Score struct {
	Notes   composition.Timeline[[]note.Note]
	Markers composition.Timeline[composition.Marker]
	Metre   rhythm.Metre
}

func DefaultMetre() rhythm.Metre {
	tempo := rhythm.MustTempo(constants.DefaultBpm)
	r := rhythm.NewRhythm(tempo, rhythm.NewBeatAssignment(rhythm.Quarter))
	ts := rhythm.MustTimeSignature(constants.DefaultMeterBeats, constants.DefaultMeterUnit)
	return rhythm.NewMetre(r, ts)
}

// order puts meta events first and note-offs before note-ons at a shared tick.
type tickEvent struct {
	tick  uint64
	order int
	msg   smf.Message
}

const (
	orderMeta = iota
	orderNoteOff
	orderNoteOn
)

func wholeTicks(tpq uint16) uint64 {
	return 4 * uint64(tpq)
}

// ticksOf rounds down to the nearest tick. An invalid duration is zero
// ticks and never exact.
func ticksOf(d rhythm.Duration, tpq uint16) (uint64, bool) {
	if !d.Valid() {
		return 0, false
	}
	n := uint64(d.Numerator()) * wholeTicks(tpq)
	return n / uint64(d.Denominator()), n%uint64(d.Denominator()) == 0
}

func (c Config) tickAt(pos rhythm.Duration) (uint64, error) {
	switch pos.Compare(c.Origin) {
	case 0:
		return 0, nil
	case -1:
		return 0, errors.Wrapf(ErrBeforeOrigin, "%v is before %v", pos, c.Origin)
	}
	offset, err := pos.Sub(c.Origin)
	if err != nil {
		return 0, err
	}
	ticks, exact := ticksOf(offset, c.TicksPerQuarter)
	if !exact {
		c.logf("Rounding %v down to tick %d", pos, ticks)
	}
	return ticks, nil
}

func (c Config) positionAt(tick uint64) (rhythm.Duration, error) {
	if tick == 0 {
		return c.Origin, nil
	}
	offset, err := durationOfTicks(tick, c.TicksPerQuarter)
	if err != nil {
		return rhythm.Duration{}, err
	}
	return c.Origin.Add(offset)
}

func durationOfTicks(ticks uint64, tpq uint16) (rhythm.Duration, error) {
	whole := wholeTicks(tpq)
	g := util.GCD(ticks, whole)
	n, d := ticks/g, whole/g
	if n > math.MaxUint32 || d > math.MaxUint32 {
		return rhythm.Duration{}, errors.Wrapf(rhythm.ErrOverflow, "%d ticks", ticks)
	}
	return rhythm.NewDuration(uint32(n), uint32(d))
}

// quarterBPM restates the tempo in quarter notes per minute, which is the
// only unit a MIDI tempo event carries.
func quarterBPM(r rhythm.Rhythm) (float64, error) {
	if !r.Tempo().Valid() {
		return 0, errors.Wrapf(rhythm.ErrInvalidTempo, "%v", r.Tempo())
	}
	quarters, err := r.BeatAssignment().Beat().Ratio().Quotient(rhythm.Quarter.Ratio())
	if err != nil {
		return 0, err
	}
	return r.Tempo().BPM() * quarters, nil
}

func (c Config) metaEvents(s Score) ([]tickEvent, error) {
	bpm, err := quarterBPM(s.Metre.Rhythm())
	if err != nil {
		return nil, err
	}
	events := []tickEvent{{order: orderMeta, msg: smf.MetaTempo(bpm)}}

	ts := s.Metre.TimeSignature()
	beats, unit := ts.Beats(), ts.Unit()
	switch {
	case beats > math.MaxUint8 || unit > math.MaxUint8:
		c.logf("Skipping time signature %v because it does not fit a meter event", ts)
	case unit&(unit-1) != 0:
		c.logf("Skipping time signature %v because %d is not a power of two", ts, unit)
	default:
		events = append(events, tickEvent{order: orderMeta, msg: smf.MetaMeter(uint8(beats), uint8(unit))})
	}

	var markerErr error
	s.Markers.Each(func(e composition.Entry[composition.Marker]) bool {
		tick, err := c.tickAt(e.Position)
		if err != nil {
			markerErr = errors.Wrapf(err, "marker %q", e.Value.Name)
			return false
		}
		events = append(events, tickEvent{tick: tick, order: orderMeta, msg: smf.MetaMarker(e.Value.Name)})
		return true
	})
	return events, markerErr
}

func (c Config) noteEvents(s Score) ([]tickEvent, error) {
	var events []tickEvent
	channel := util.Min(c.Channel, 15)
	velocity := util.Min(c.Velocity, 127)

	var noteErr error
	s.Notes.Each(func(e composition.Entry[[]note.Note]) bool {
		start, err := c.tickAt(e.Position)
		if err != nil {
			noteErr = err
			return false
		}
		for _, n := range e.Value {
			key, err := KeyOf(n.Pitch)
			if err != nil {
				c.logf("Skipping %v because %v", n, err)
				continue
			}
			if !n.Duration.Valid() {
				c.logf("Skipping %v because it has no valid duration", n)
				continue
			}
			length, _ := ticksOf(n.Duration, c.TicksPerQuarter)
			if length == 0 {
				length = 1
			}
			events = append(events,
				tickEvent{tick: start, order: orderNoteOn, msg: smf.Message(midi.NoteOn(channel, key, velocity))},
				tickEvent{tick: start + length, order: orderNoteOff, msg: smf.Message(midi.NoteOff(channel, key))},
			)
		}
		return true
	})
	return events, noteErr
}

// Export writes the score as a single-track SMF. Timeline positions are
// measured from cfg.Origin.
func Export(w io.Writer, s Score, cfg Config) error {
	c, err := cfg.validate()
	if err != nil {
		return err
	}

	meta, err := c.metaEvents(s)
	if err != nil {
		return err
	}
	notes, err := c.noteEvents(s)
	if err != nil {
		return err
	}
	events := append(meta, notes...)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].order < events[j].order
	})

	var track smf.Track
	var last uint64
	for _, evt := range events {
		delta := evt.tick - last
		if delta > math.MaxUint32 {
			return errors.Wrapf(rhythm.ErrOverflow, "delta of %d ticks", delta)
		}
		track = append(track, smf.Event{Delta: uint32(delta), Message: evt.msg})
		last = evt.tick
	}
	track.Close(0)

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(c.TicksPerQuarter)
	if err := res.Add(track); err != nil {
		return errors.Wrap(err, "adding track")
	}
	_, err = res.WriteTo(w)
	return errors.Wrap(err, "writing midi")
}

type heldNote struct {
	start   uint64
	key     uint8
	channel uint8
}

// Import reads every track of s into one Score. Notes that start together
// share a timeline entry, ordered by pitch. Only the first tempo and meter
// events are kept; without them the score gets DefaultMetre.
func Import(s *smf.SMF, cfg Config) (Score, error) {
	c, err := cfg.validate()
	if err != nil {
		return Score{}, err
	}
	tpq, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return Score{}, errors.Wrapf(ErrUnsupportedTimeFormat, "%v", s.TimeFormat)
	}
	c.TicksPerQuarter = uint16(tpq)

	var bpm float64
	var meterNum, meterDenom uint8
	var markers []composition.Marker
	onsets := make(map[uint64][]note.Note)

	for _, events := range s.Tracks {
		held := make(map[uint16][]heldNote)
		var absTicks uint64
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel, key, velocity uint8
			var tempo float64
			var num, denom uint8
			var text string
			switch {
			case event.Message.GetMetaTempo(&tempo):
				if bpm == 0 {
					bpm = tempo
				} else {
					c.logf("Skipping tempo %v at tick %d because a score has one tempo", tempo, absTicks)
				}
			case event.Message.GetMetaMeter(&num, &denom):
				if meterNum == 0 {
					meterNum, meterDenom = num, denom
				} else {
					c.logf("Skipping meter %d/%d at tick %d because a score has one metre", num, denom, absTicks)
				}
			case event.Message.GetMetaMarker(&text):
				pos, err := c.positionAt(absTicks)
				if err != nil {
					return Score{}, err
				}
				markers = append(markers, composition.Marker{Name: text, Position: pos})
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				id := uint16(channel)<<8 | uint16(key)
				held[id] = append(held[id], heldNote{start: absTicks, key: key, channel: channel})
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				id := uint16(channel)<<8 | uint16(key)
				stack := held[id]
				if len(stack) == 0 {
					c.logf("Skipping note off %d at tick %d because it was never pressed", key, absTicks)
					continue
				}
				h := stack[0]
				held[id] = stack[1:]
				if absTicks == h.start {
					c.logf("Skipping key %d at tick %d because it has no length", key, absTicks)
					continue
				}
				n, err := c.noteOf(h, absTicks)
				if err != nil {
					return Score{}, err
				}
				onsets[h.start] = append(onsets[h.start], n)
			}
		}
		for _, stack := range held {
			for _, h := range stack {
				c.logf("Skipping key %d at tick %d because it is never released", h.key, h.start)
			}
		}
	}

	metre, err := c.metreOf(bpm, meterNum, meterDenom)
	if err != nil {
		return Score{}, err
	}
	res := Score{Metre: metre}
	for _, tick := range util.GetKeysSorted(onsets) {
		pos, err := c.positionAt(tick)
		if err != nil {
			return Score{}, err
		}
		group := onsets[tick]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Pitch.Less(group[j].Pitch)
		})
		if res.Notes, err = res.Notes.Insert(pos, group); err != nil {
			return Score{}, err
		}
	}
	if res.Markers, err = composition.Markers(markers...); err != nil {
		return Score{}, err
	}
	return res, nil
}

func (c Config) noteOf(h heldNote, end uint64) (note.Note, error) {
	p, err := PitchOf(h.key)
	if err != nil {
		return note.Note{}, err
	}
	d, err := durationOfTicks(end-h.start, c.TicksPerQuarter)
	if err != nil {
		return note.Note{}, err
	}
	return note.New(p, d), nil
}

func (c Config) metreOf(bpm float64, num, denom uint8) (rhythm.Metre, error) {
	metre := DefaultMetre()
	r := metre.Rhythm()
	if bpm != 0 {
		tempo, err := rhythm.NewTempo(bpm)
		if err != nil {
			return rhythm.Metre{}, err
		}
		r = rhythm.NewRhythm(tempo, rhythm.NewBeatAssignment(rhythm.Quarter))
	}
	ts := metre.TimeSignature()
	if num != 0 && denom != 0 {
		var err error
		if ts, err = rhythm.NewTimeSignature(uint32(num), uint32(denom)); err != nil {
			return rhythm.Metre{}, err
		}
	}
	return rhythm.NewMetre(r, ts), nil
}
