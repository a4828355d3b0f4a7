package dashboard

// sequencer issues per-section load numbers. Only the completion carrying the
// latest number issued for its section may be applied; anything older lost a
// race with a newer load and is dropped. The model owns it by value and only
// touches it from Update.
type sequencer struct {
	issued [sectionCount]uint64
}

// next issues a new number for s.
func (q *sequencer) next(s Section) uint64 {
	q.issued[s]++
	return q.issued[s]
}

// current reports whether seq is the latest number issued for s.
func (q *sequencer) current(s Section, seq uint64) bool {
	return s.valid() && seq != 0 && q.issued[s] == seq
}

// latest is the last number issued for s, 0 if none.
func (q *sequencer) latest(s Section) uint64 {
	return q.issued[s]
}
