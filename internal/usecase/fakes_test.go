package usecase

import (
	"time"

	"hrm-backend/internal/apperror"
	"hrm-backend/internal/model"
	"hrm-backend/internal/repository"
)

// In-memory stand-ins for the repository interfaces. They mimic the
// store-level rules the real repositories enforce (unique codes, the
// single open salary row, the pending-only leave transition) so the
// usecases can be exercised without a database.

type fakeEmployeeRepo struct {
	employees map[uint]*model.Employee
	nextID    uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[uint]*model.Employee{}, nextID: 1}
}

func (f *fakeEmployeeRepo) add(emp *model.Employee) *model.Employee {
	if emp.ID == 0 {
		emp.ID = f.nextID
		f.nextID++
	}
	f.employees[emp.ID] = emp
	return emp
}

func (f *fakeEmployeeRepo) Create(emp *model.Employee) error {
	for _, existing := range f.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return apperror.ConstraintViolation("uq_employee_code", "duplicate employee code")
		}
		if existing.Email == emp.Email {
			return apperror.ConstraintViolation("uq_employee_email", "duplicate email")
		}
	}
	f.add(emp)
	return nil
}

func (f *fakeEmployeeRepo) CreateWithInitialSalary(emp *model.Employee, salary *model.Salary) error {
	if err := f.Create(emp); err != nil {
		return err
	}
	salary.EmployeeID = emp.ID
	return nil
}

func (f *fakeEmployeeRepo) FindByID(id uint, opts repository.ListOptions) (*model.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, apperror.NotFound("employee not found")
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) FindByCode(code string) (*model.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return nil, apperror.NotFound("employee not found")
}

func (f *fakeEmployeeRepo) FindByEmail(email string) (*model.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return nil, apperror.NotFound("employee not found")
}

func (f *fakeEmployeeRepo) GetAll(search string, opts repository.ListOptions) ([]model.Employee, error) {
	var out []model.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByDepartmentAndStatus(departmentID uint, status model.EmploymentStatus, opts repository.ListOptions) ([]model.Employee, error) {
	var out []model.Employee
	for _, emp := range f.employees {
		if emp.DepartmentID != nil && *emp.DepartmentID == departmentID && emp.EmploymentStatus == status {
			out = append(out, *emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(emp *model.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return apperror.NotFound("employee not found")
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Terminate(id uint) error {
	emp, ok := f.employees[id]
	if !ok {
		return apperror.NotFound("employee not found")
	}
	emp.EmploymentStatus = model.EmploymentTerminated
	return nil
}

func (f *fakeEmployeeRepo) HardDelete(id uint) error {
	if _, ok := f.employees[id]; !ok {
		return apperror.NotFound("employee not found")
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Count() (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeSalaryRepo struct {
	salaries []*model.Salary
	nextID   uint
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{nextID: 1}
}

func (f *fakeSalaryRepo) Create(salary *model.Salary) error {
	if salary.EffectiveTo == nil {
		for _, s := range f.salaries {
			if s.EmployeeID == salary.EmployeeID && s.EffectiveTo == nil {
				return apperror.ConstraintViolation("uq_open_salary",
					"employee already has an open-ended salary")
			}
		}
	}
	salary.ID = f.nextID
	f.nextID++
	f.salaries = append(f.salaries, salary)
	return nil
}

func (f *fakeSalaryRepo) GetByEmployee(employeeID uint, opts repository.ListOptions) ([]model.Salary, error) {
	var out []model.Salary
	for _, s := range f.salaries {
		if s.EmployeeID == employeeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSalaryRepo) GetCurrent(employeeID uint, asOf time.Time) (*model.Salary, error) {
	var best *model.Salary
	for _, s := range f.salaries {
		if s.EmployeeID != employeeID || !s.Covers(asOf) {
			continue
		}
		if best == nil || s.EffectiveFrom.After(best.EffectiveFrom) ||
			(s.EffectiveFrom.Equal(best.EffectiveFrom) && s.ID > best.ID) {
			best = s
		}
	}
	if best == nil {
		return nil, apperror.NotFound("no salary effective on the given date")
	}
	return best, nil
}

func (f *fakeSalaryRepo) SupersedeCurrent(employeeID uint, baseSalary float64, effectiveFrom time.Time) (*model.Salary, error) {
	var current *model.Salary
	for _, s := range f.salaries {
		if s.EmployeeID == employeeID && s.EffectiveTo == nil {
			current = s
			break
		}
	}
	if current != nil {
		if effectiveFrom.Before(current.EffectiveFrom) {
			return nil, apperror.InvalidValue("check_salary_dates",
				"new salary cannot start before the current one")
		}
		closed := effectiveFrom
		current.EffectiveTo = &closed
	}

	next := &model.Salary{
		EmployeeID:    employeeID,
		BaseSalary:    baseSalary,
		EffectiveFrom: effectiveFrom,
	}
	if err := f.Create(next); err != nil {
		return nil, err
	}
	return next, nil
}

func (f *fakeSalaryRepo) StatsByDepartment(departmentID *uint) ([]repository.DepartmentSalaryStats, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	leaves map[uint]*model.Leave
	nextID uint
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: map[uint]*model.Leave{}, nextID: 1}
}

func (f *fakeLeaveRepo) add(leave *model.Leave) *model.Leave {
	if leave.ID == 0 {
		leave.ID = f.nextID
		f.nextID++
	}
	f.leaves[leave.ID] = leave
	return leave
}

func (f *fakeLeaveRepo) Create(leave *model.Leave) error {
	f.add(leave)
	return nil
}

func (f *fakeLeaveRepo) FindByID(id uint) (*model.Leave, error) {
	leave, ok := f.leaves[id]
	if !ok {
		return nil, apperror.NotFound("leave not found")
	}
	return leave, nil
}

func (f *fakeLeaveRepo) GetByEmployee(employeeID uint, status *model.LeaveStatus, opts repository.ListOptions) ([]model.Leave, error) {
	var out []model.Leave
	for _, l := range f.leaves {
		if l.EmployeeID != employeeID {
			continue
		}
		if status != nil && l.Status != *status {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetPending(opts repository.ListOptions) ([]model.Leave, error) {
	var out []model.Leave
	for _, l := range f.leaves {
		if l.Status == model.LeavePending {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetOverlapping(start, end time.Time, status *model.LeaveStatus) ([]model.Leave, error) {
	var out []model.Leave
	for _, l := range f.leaves {
		if l.StartDate.After(end) || l.EndDate.Before(start) {
			continue
		}
		if status != nil && l.Status != *status {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) HasConflict(employeeID uint, start, end time.Time, excludeID uint) (bool, error) {
	for _, l := range f.leaves {
		if l.EmployeeID != employeeID || l.ID == excludeID {
			continue
		}
		if l.Status != model.LeavePending && l.Status != model.LeaveApproved {
			continue
		}
		if !l.StartDate.After(end) && !l.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) SumDays(employeeID uint, leaveType model.LeaveType, status model.LeaveStatus, year int) (int, error) {
	total := 0
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID && l.LeaveType == leaveType && l.Status == status && l.StartDate.Year() == year {
			total += l.TotalDays
		}
	}
	return total, nil
}

func (f *fakeLeaveRepo) Decide(id uint, next model.LeaveStatus, approverID uint, decidedAt time.Time) (*model.Leave, error) {
	leave, ok := f.leaves[id]
	if !ok {
		return nil, apperror.NotFound("leave not found")
	}
	if !leave.Status.CanTransitionTo(next) {
		return nil, apperror.InvalidStateTransition(
			"leave is " + string(leave.Status) + ", only pending leaves can be decided")
	}
	leave.Status = next
	leave.ApprovedBy = &approverID
	leave.ApprovedAt = &decidedAt
	return leave, nil
}

type fakeAttendanceRepo struct {
	attendances []*model.Attendance
	nextID      uint
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1}
}

func (f *fakeAttendanceRepo) Create(att *model.Attendance) error {
	for _, a := range f.attendances {
		if a.EmployeeID == att.EmployeeID && a.Date.Equal(att.Date) {
			return apperror.ConstraintViolation("uq_employee_date",
				"attendance already recorded for this day")
		}
	}
	att.ID = f.nextID
	f.nextID++
	f.attendances = append(f.attendances, att)
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(employeeID uint, date time.Time) (*model.Attendance, error) {
	for _, a := range f.attendances {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, apperror.NotFound("attendance not found")
}

func (f *fakeAttendanceRepo) GetByEmployee(employeeID uint, from, to *time.Time, opts repository.ListOptions) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, a := range f.attendances {
		if a.EmployeeID != employeeID {
			continue
		}
		if from != nil && a.Date.Before(*from) {
			continue
		}
		if to != nil && a.Date.After(*to) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetByMonth(employeeID uint, year int, month time.Month) ([]model.Attendance, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	var out []model.Attendance
	for _, a := range f.attendances {
		if a.EmployeeID == employeeID && !a.Date.Before(first) && a.Date.Before(next) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountByStatus(filters repository.AttendanceFilters) (map[model.AttendanceStatus]int64, error) {
	counts := map[model.AttendanceStatus]int64{}
	for _, a := range f.attendances {
		if filters.EmployeeID != nil && a.EmployeeID != *filters.EmployeeID {
			continue
		}
		counts[a.Status]++
	}
	return counts, nil
}

func (f *fakeAttendanceRepo) Update(att *model.Attendance) error {
	for i, a := range f.attendances {
		if a.ID == att.ID {
			f.attendances[i] = att
			return nil
		}
	}
	return apperror.NotFound("attendance not found")
}

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return apperror.ConstraintViolation("uq_username", "duplicate username")
		}
		if u.Email == user.Email {
			return apperror.ConstraintViolation("uq_user_email", "duplicate email")
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepo) FindByEmployeeID(employeeID uint) (*model.User, error) {
	for _, u := range f.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepo) GetAll(role *model.UserRole, isActive *bool, opts repository.ListOptions) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if role != nil && u.Role != *role {
			continue
		}
		if isActive != nil && u.IsActive != *isActive {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperror.NotFound("user not found")
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) TouchLastLogin(id uint, at time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.LastLogin = &at
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	delete(f.users, id)
	return nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) LeaveDecided(toEmail string, leave *model.Leave) error {
	f.sent = append(f.sent, toEmail)
	return nil
}
