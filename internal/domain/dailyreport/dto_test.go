package dailyreport

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDailyReportRequestValidate(t *testing.T) {
	req := SaveDailyReportRequest{
		EmployeeID:  "emp-1",
		Date:        "2025-05-02",
		WorkSummary: "Shipped the export",
		Details:     []workrecord.WorkDetailRequest{{ClientID: "c", ProjectID: "p", WorkTime: "8:15"}},
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, 2, req.ParsedDate().Day())

	req.Date = "2025-02-30"
	req.Thoughts = strings.Repeat("x", 4001)
	req.Details = []workrecord.WorkDetailRequest{{WorkTime: "nine"}}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "thoughts")
	assert.Contains(t, fields, "details[0].work_time")
}
