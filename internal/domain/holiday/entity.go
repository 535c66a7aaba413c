package holiday

import "time"

// DateLayout is the key format of a HolidayMap.
const DateLayout = "2006-01-02"

type Holiday struct {
	Date time.Time
	Name string
}

// HolidayMap maps "YYYY-MM-DD" to the holiday name. It is supplied by the storage boundary
// and only ever read here.
type HolidayMap map[string]string

// ToMap builds the lookup from holiday rows.
func ToMap(holidays []Holiday) HolidayMap {
	m := make(HolidayMap, len(holidays))
	for _, h := range holidays {
		m[h.Date.Format(DateLayout)] = h.Name
	}
	return m
}
