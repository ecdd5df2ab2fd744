package catalog

// Era identifies which generation of the retention schedule applies to a
// record. Schedules are replaced wholesale every few years; a record is always
// judged by the schedule that was in force when it was created.
type Era string

const (
	// Era2005 is the document-oriented schedule, in force 2005-2013.
	Era2005 Era = "2005"
	// Era2014 is the first process-oriented schedule, in force 2014-2019.
	Era2014 Era = "2014"
	// Era2020 is the current process-oriented schedule, in force since 2020.
	Era2020 Era = "2020"
)

// Eras returns all schedule eras in chronological order.
func Eras() []Era {
	return []Era{Era2005, Era2014, Era2020}
}

// Bounds returns the inclusive year range of an era. An open era has no end
// year and ok reports false for the end.
func (e Era) Bounds() (start int, end int, open bool) {
	switch e {
	case Era2005:
		return 2005, 2013, false
	case Era2014:
		return 2014, 2019, false
	case Era2020:
		return 2020, 0, true
	}
	return 0, 0, false
}

// EraForYear resolves the schedule era for a record created in the given
// year. Years before the earliest schedule fall back to that schedule rather
// than failing: pre-history records still need a resolution.
func EraForYear(year int) Era {
	switch {
	case year >= 2020:
		return Era2020
	case year >= 2014:
		return Era2014
	default:
		return Era2005
	}
}
