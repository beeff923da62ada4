package choreo

// Project owns three performer tracks and the backing-track duration. All
// mutation goes through the tracks' methods; consumers of the resolution
// engine only ever read.
type Project struct {
	Title           string
	BackingDuration float64
	Tracks          [NumSlots]*Track
}

// NewProject creates an empty project with its three fixed performer slots.
func NewProject(title string) *Project {
	p := &Project{Title: title}
	for i := range p.Tracks {
		p.Tracks[i] = &Track{Slot: i + 1}
	}
	return p
}

// Track returns the track for a 1-based performer slot.
func (p *Project) Track(slot int) (*Track, error) {
	if slot < 1 || slot > NumSlots {
		return nil, ErrSlotRange
	}
	return p.Tracks[slot-1], nil
}

// Duration is the playable range: the backing track or the latest layer end
// across every performer, whichever is longer. Derived on demand so layer
// edits are always reflected.
func (p *Project) Duration() float64 {
	d := p.BackingDuration
	for _, tr := range p.Tracks {
		if end := tr.End(); end > d {
			d = end
		}
	}
	return d
}
