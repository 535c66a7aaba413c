package report

import (
	"sort"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/timecalc"
	"github.com/shopspring/decimal"
)

// MonthlyTotalMinutes sums the attendance-derived net time. The detail breakdown is not
// used since it may be incomplete.
func MonthlyTotalMinutes(records []workrecord.WorkRecord) int {
	total := 0
	for _, r := range records {
		total += r.NetWorked()
	}
	return total
}

// NameLookup resolves master-data ids to display names. Unknown ids resolve to "".
type NameLookup interface {
	ClientName(id string) string
	ProjectName(id string) string
}

// Names is a map-backed NameLookup.
type Names struct {
	Clients  map[string]string
	Projects map[string]string
}

func (n Names) ClientName(id string) string  { return n.Clients[id] }
func (n Names) ProjectName(id string) string { return n.Projects[id] }

type ProjectTotal struct {
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	ProjectID     string          `json:"project_id"`
	ProjectName   string          `json:"project_name"`
	TotalMinutes  int             `json:"total_minutes"`
	TotalWorkTime string          `json:"total_work_time"`
	TotalHours    decimal.Decimal `json:"total_hours"`
}

type projectKey struct {
	clientID  string
	projectID string
}

// ProjectSummary groups every detail of the month by (client, project). Entries are
// ordered by client name then project name, ids breaking ties, and zero totals are
// dropped, so the result does not depend on the order of records or details.
func ProjectSummary(records []workrecord.WorkRecord, names NameLookup) []ProjectTotal {
	totals := make(map[projectKey]int)
	for _, r := range records {
		for _, d := range r.Details {
			totals[projectKey{d.ClientID, d.ProjectID}] += d.WorkTime
		}
	}

	out := make([]ProjectTotal, 0, len(totals))
	for k, minutes := range totals {
		if minutes == 0 {
			continue
		}
		out = append(out, ProjectTotal{
			ClientID:      k.clientID,
			ClientName:    names.ClientName(k.clientID),
			ProjectID:     k.projectID,
			ProjectName:   names.ProjectName(k.projectID),
			TotalMinutes:  minutes,
			TotalWorkTime: timecalc.FormatDuration(minutes),
			TotalHours:    timecalc.MinutesToHours(minutes),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ClientName != b.ClientName {
			return a.ClientName < b.ClientName
		}
		if a.ProjectName != b.ProjectName {
			return a.ProjectName < b.ProjectName
		}
		if a.ClientID != b.ClientID {
			return a.ClientID < b.ClientID
		}
		return a.ProjectID < b.ProjectID
	})
	return out
}
