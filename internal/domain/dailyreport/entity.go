package dailyreport

import "time"

// DailyReport is the narrative an employee writes for one day next to the work record.
type DailyReport struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	WorkSummary   string
	Problems      string
	Challenges    string
	TomorrowTasks string
	Thoughts      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
