package domain

// Position is the playback position of one audio resource, in seconds.
// Duration is only meaningful once DurationKnown is set by a metadata load.
type Position struct {
	Current       float64
	Duration      float64
	DurationKnown bool
}

// Progress returns the played share in percent, or 0 while the duration is unknown.
func (p Position) Progress() float64 {
	if !p.DurationKnown || p.Duration <= 0 {
		return 0
	}
	pct := p.Current / p.Duration * 100
	if pct > 100 {
		return 100
	}
	return pct
}
