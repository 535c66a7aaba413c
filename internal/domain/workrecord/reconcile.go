package workrecord

import "sort"

type ReconciliationStatus string

const (
	StatusBalanced     ReconciliationStatus = "balanced"
	StatusUnreconciled ReconciliationStatus = "unreconciled"
)

// Reconciliation compares the attendance-derived net time with the itemized details.
// It is a classification only and never blocks a save.
type Reconciliation struct {
	Status      ReconciliationStatus `json:"status"`
	DetailTotal int                  `json:"detail_total"`
	Net         int                  `json:"net_worked"`
}

func (r Reconciliation) Balanced() bool {
	return r.Status == StatusBalanced
}

// Reconcile classifies one day by exact equality of the two totals.
func Reconcile(record WorkRecord) Reconciliation {
	rec := Reconciliation{
		DetailTotal: record.DetailTotal(),
		Net:         record.NetWorked(),
		Status:      StatusUnreconciled,
	}
	if rec.DetailTotal == rec.Net {
		rec.Status = StatusBalanced
	}
	return rec
}

type DayReconciliation struct {
	Day int `json:"day"`
	Reconciliation
}

// ReconcileMonth classifies every record, ordered by day.
func ReconcileMonth(records []WorkRecord) []DayReconciliation {
	out := make([]DayReconciliation, 0, len(records))
	for _, r := range records {
		out = append(out, DayReconciliation{Day: r.Day, Reconciliation: Reconcile(r)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Unreconciled returns only the days whose totals disagree, ordered by day.
func Unreconciled(records []WorkRecord) []DayReconciliation {
	var out []DayReconciliation
	for _, d := range ReconcileMonth(records) {
		if !d.Balanced() {
			out = append(out, d)
		}
	}
	return out
}
