// Package servicetest provides an in-memory implementation of every repository so the
// services can be exercised without PostgreSQL.
package servicetest

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/dailyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/client"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/master/project"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/monthlyreport"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/workrecord"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The fakes report constraint violations the way PostgreSQL does.
var (
	errUniqueViolation     = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	errForeignKeyViolation = &pgconn.PgError{Code: "23503", Message: "update or delete violates foreign key constraint"}
)

type monthKey struct {
	employeeID string
	year       int
	month      int
}

type dayKey struct {
	monthKey
	day int
}

type dateKey struct {
	employeeID string
	date       string
}

type state struct {
	employees map[string]employee.Employee
	clients   map[string]client.Client
	projects  map[string]project.Project
	reports   map[monthKey]monthlyreport.MonthlyReport
	records   map[dayKey]workrecord.WorkRecord
	daily     map[dateKey]dailyreport.DailyReport
	holidays  []holiday.Holiday
}

func (s state) clone() state {
	records := make(map[dayKey]workrecord.WorkRecord, len(s.records))
	for k, v := range s.records {
		records[k] = v.Clone()
	}
	return state{
		employees: maps.Clone(s.employees),
		clients:   maps.Clone(s.clients),
		projects:  maps.Clone(s.projects),
		reports:   maps.Clone(s.reports),
		records:   records,
		daily:     maps.Clone(s.daily),
		holidays:  slices.Clone(s.holidays),
	}
}

// Store keeps all rows in maps. Its transactor restores the previous state when the
// transaction function fails.
type Store struct {
	mu  sync.Mutex
	st  state
	seq int
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		st: state{
			employees: map[string]employee.Employee{},
			clients:   map[string]client.Client{},
			projects:  map[string]project.Project{},
			reports:   map[monthKey]monthlyreport.MonthlyReport{},
			records:   map[dayKey]workrecord.WorkRecord{},
			daily:     map[dateKey]dailyreport.DailyReport{},
		},
		Now: time.Now,
	}
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// WithinTransaction implements database.Transactor.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// AddEmployee stores e as is, generating an id when it has none.
func (s *Store) AddEmployee(e employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = s.nextID("emp")
	}
	if e.EmploymentType == "" {
		e.EmploymentType = employee.EmploymentTypeFullTime
	}
	s.st.employees[e.ID] = e
	return e
}

func (s *Store) AddClient(name string) client.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := client.Client{ID: s.nextID("client"), Name: name}
	s.st.clients[c.ID] = c
	return c
}

func (s *Store) AddProject(clientID, name string) project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := project.Project{ID: s.nextID("project"), ClientID: clientID, Name: name, ClientName: s.st.clients[clientID].Name}
	s.st.projects[p.ID] = p
	return p
}

func (s *Store) AddHoliday(date time.Time, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.holidays = append(s.st.holidays, holiday.Holiday{Date: date, Name: name})
}

// Report returns the stored report and whether it exists.
func (s *Store) Report(employeeID string, year, month int) (monthlyreport.MonthlyReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.reports[monthKey{employeeID, year, month}]
	return r, ok
}

// PutReport overwrites a stored report, bypassing the revision guard.
func (s *Store) PutReport(r monthlyreport.MonthlyReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.nextID("report")
	}
	s.st.reports[monthKey{r.EmployeeID, r.Year, r.Month}] = r
}

func (s *Store) Employees() employee.EmployeeRepository          { return employeeRepo{s} }
func (s *Store) Clients() client.ClientRepository                { return clientRepo{s} }
func (s *Store) Projects() project.ProjectRepository             { return projectRepo{s} }
func (s *Store) Reports() monthlyreport.MonthlyReportRepository  { return reportRepo{s} }
func (s *Store) Records() workrecord.WorkRecordRepository        { return recordRepo{s} }
func (s *Store) DailyReports() dailyreport.DailyReportRepository { return dailyRepo{s} }
func (s *Store) Holidays() holiday.HolidayRepository             { return holidayRepo{s} }

type employeeRepo struct{ s *Store }

func (r employeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.st.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (r employeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.st.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (r employeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []employee.Employee
	for _, e := range r.s.st.employees {
		if e.Retired && !filter.IncludeRetired {
			continue
		}
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EmployeeCode < list[j].EmployeeCode })
	return list, nil
}

func (r employeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.employees {
		if existing.EmployeeCode == e.EmployeeCode {
			return employee.Employee{}, errUniqueViolation
		}
	}
	e.ID = r.s.nextID("emp")
	r.s.st.employees[e.ID] = e
	return e, nil
}

func (r employeeRepo) Update(_ context.Context, e employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.employees[e.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.s.st.employees[e.ID] = e
	return nil
}

type clientRepo struct{ s *Store }

func (r clientRepo) nameTaken(name, exceptID string) bool {
	for _, c := range r.s.st.clients {
		if c.Name == name && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (r clientRepo) Create(_ context.Context, c client.Client) (client.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, "") {
		return client.Client{}, errUniqueViolation
	}
	c.ID = r.s.nextID("client")
	r.s.st.clients[c.ID] = c
	return c, nil
}

func (r clientRepo) GetByID(_ context.Context, id string) (client.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.clients[id]
	if !ok {
		return client.Client{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r clientRepo) List(context.Context) ([]client.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := slices.Collect(maps.Values(r.s.st.clients))
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r clientRepo) Update(_ context.Context, req client.UpdateClientRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.clients[req.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if req.Name != nil {
		if r.nameTaken(*req.Name, c.ID) {
			return errUniqueViolation
		}
		c.Name = *req.Name
	}
	r.s.st.clients[c.ID] = c
	return nil
}

func (r clientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.clients[id]; !ok {
		return pgx.ErrNoRows
	}
	for _, p := range r.s.st.projects {
		if p.ClientID == id {
			return errForeignKeyViolation
		}
	}
	delete(r.s.st.clients, id)
	return nil
}

type projectRepo struct{ s *Store }

func (r projectRepo) nameTaken(clientID, name, exceptID string) bool {
	for _, p := range r.s.st.projects {
		if p.ClientID == clientID && p.Name == name && p.ID != exceptID {
			return true
		}
	}
	return false
}

func (r projectRepo) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(p.ClientID, p.Name, "") {
		return project.Project{}, errUniqueViolation
	}
	p.ID = r.s.nextID("project")
	p.ClientName = r.s.st.clients[p.ClientID].Name
	r.s.st.projects[p.ID] = p
	return p, nil
}

func (r projectRepo) GetByID(_ context.Context, id string) (project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.projects[id]
	if !ok {
		return project.Project{}, pgx.ErrNoRows
	}
	return p, nil
}

func (r projectRepo) List(_ context.Context, filter project.ProjectFilter) ([]project.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []project.Project
	for _, p := range r.s.st.projects {
		if filter.ClientID != nil && p.ClientID != *filter.ClientID {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r projectRepo) Update(_ context.Context, req project.UpdateProjectRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.projects[req.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if req.ClientID != nil {
		p.ClientID = *req.ClientID
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if r.nameTaken(p.ClientID, p.Name, p.ID) {
		return errUniqueViolation
	}
	p.ClientName = r.s.st.clients[p.ClientID].Name
	r.s.st.projects[p.ID] = p
	return nil
}

func (r projectRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.projects[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.st.projects, id)
	return nil
}

type reportRepo struct{ s *Store }

func (r reportRepo) Get(_ context.Context, employeeID string, year, month int) (monthlyreport.MonthlyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rep, ok := r.s.st.reports[monthKey{employeeID, year, month}]
	if !ok {
		return monthlyreport.MonthlyReport{}, pgx.ErrNoRows
	}
	return rep, nil
}

func (r reportRepo) ListByMonth(_ context.Context, year, month int) ([]monthlyreport.MonthlyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []monthlyreport.MonthlyReport
	for k, rep := range r.s.st.reports {
		if k.year == year && k.month == month {
			list = append(list, rep)
		}
	}
	return list, nil
}

func (r reportRepo) Save(_ context.Context, rep monthlyreport.MonthlyReport) (monthlyreport.MonthlyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := monthKey{rep.EmployeeID, rep.Year, rep.Month}
	current, exists := r.s.st.reports[key]
	switch {
	case rep.IsNew() && exists:
		return monthlyreport.MonthlyReport{}, monthlyreport.ErrConcurrentModification
	case !rep.IsNew() && (!exists || current.Revision != rep.Revision):
		return monthlyreport.MonthlyReport{}, monthlyreport.ErrConcurrentModification
	}
	now := r.s.Now()
	if rep.IsNew() {
		rep.ID = r.s.nextID("report")
		rep.CreatedAt = now
	}
	rep.Revision++
	rep.UpdatedAt = now
	r.s.st.reports[key] = rep
	return rep, nil
}

type recordRepo struct{ s *Store }

func (r recordRepo) ListByMonth(_ context.Context, employeeID string, year, month int) ([]workrecord.WorkRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []workrecord.WorkRecord
	for k, rec := range r.s.st.records {
		if k.monthKey == (monthKey{employeeID, year, month}) {
			list = append(list, rec.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Day < list[j].Day })
	return list, nil
}

func (r recordRepo) GetByDay(_ context.Context, employeeID string, year, month, day int) (workrecord.WorkRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.st.records[dayKey{monthKey{employeeID, year, month}, day}]
	if !ok {
		return workrecord.WorkRecord{}, pgx.ErrNoRows
	}
	return rec.Clone(), nil
}

func (r recordRepo) Upsert(_ context.Context, employeeID string, year, month int, record workrecord.WorkRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := dayKey{monthKey{employeeID, year, month}, record.Day}
	stored := record.Clone()
	stored.Details = r.s.st.records[key].Details
	r.s.st.records[key] = stored
	return nil
}

func (r recordRepo) ReplaceDetails(_ context.Context, employeeID string, year, month, day int, details []workrecord.WorkDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := dayKey{monthKey{employeeID, year, month}, day}
	rec, ok := r.s.st.records[key]
	if !ok {
		return fmt.Errorf("work record for day %d does not exist", day)
	}
	rec.Details = make([]workrecord.WorkDetail, 0, len(details))
	for _, d := range details {
		if d.ID == "" {
			d.ID = r.s.nextID("detail")
		}
		rec.Details = append(rec.Details, d)
	}
	r.s.st.records[key] = rec
	return nil
}

type dailyRepo struct{ s *Store }

func (r dailyRepo) Get(_ context.Context, employeeID string, date time.Time) (dailyreport.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.st.daily[dateKey{employeeID, date.Format(dailyreport.DateLayout)}]
	if !ok {
		return dailyreport.DailyReport{}, pgx.ErrNoRows
	}
	return d, nil
}

func (r dailyRepo) Upsert(_ context.Context, report dailyreport.DailyReport) (dailyreport.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := dateKey{report.EmployeeID, report.Date.Format(dailyreport.DateLayout)}
	now := r.s.Now()
	if existing, ok := r.s.st.daily[key]; ok {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
	} else {
		report.ID = r.s.nextID("daily")
		report.CreatedAt = now
	}
	report.UpdatedAt = now
	r.s.st.daily[key] = report
	return report, nil
}

type holidayRepo struct{ s *Store }

func (r holidayRepo) GetByYear(_ context.Context, year int) ([]holiday.Holiday, error) {
	return r.filter(func(d time.Time) bool { return d.Year() == year }), nil
}

func (r holidayRepo) GetByMonth(_ context.Context, year, month int) ([]holiday.Holiday, error) {
	return r.filter(func(d time.Time) bool { return d.Year() == year && int(d.Month()) == month }), nil
}

func (r holidayRepo) filter(keep func(time.Time) bool) []holiday.Holiday {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []holiday.Holiday
	for _, h := range r.s.st.holidays {
		if keep(h.Date) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
