package attendance_test

import (
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

func TestAttendanceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AttendanceService Suite")
}

// Mock repository for testing
type mockAttendanceRepository struct {
	records     []*attendanceDatamodel.Attendance
	lastRange   attendance.DateRange
	createError error
	listError   error
	nextID      int64
}

func newMockAttendanceRepository() *mockAttendanceRepository {
	return &mockAttendanceRepository{nextID: 1}
}

func (m *mockAttendanceRepository) Create(att *attendanceDatamodel.Attendance) error {
	if m.createError != nil {
		return m.createError
	}
	att.ID = m.nextID
	m.nextID++
	att.CreatedAt = time.Now()
	m.records = append(m.records, att)
	return nil
}

func (m *mockAttendanceRepository) ListForEmployee(employeeID int64, rng attendance.DateRange) ([]*attendanceDatamodel.Attendance, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	m.lastRange = rng
	var result []*attendanceDatamodel.Attendance
	for _, record := range m.records {
		if record.EmployeeID == employeeID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepository) Count(rng attendance.DateRange, status string) (int64, error) {
	var count int64
	for _, record := range m.records {
		if status == "" || record.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockAttendanceRepository) StatsForEmployee(employeeID int64, rng attendance.DateRange) (attendance.Stats, error) {
	var stats attendance.Stats
	for _, record := range m.records {
		if record.EmployeeID != employeeID {
			continue
		}
		switch record.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusAbsent:
			stats.Absent++
		}
		stats.Total++
	}
	return stats, nil
}

type mockEmployeeDirectory struct {
	employees map[int64]*employeeDatamodel.Employee
}

func newMockEmployeeDirectory(ids ...int64) *mockEmployeeDirectory {
	m := &mockEmployeeDirectory{employees: make(map[int64]*employeeDatamodel.Employee)}
	for _, id := range ids {
		m.employees[id] = &employeeDatamodel.Employee{ID: id, FullName: "Employee", Email: "e@x.com", Department: "Ops"}
	}
	return m
}

func (m *mockEmployeeDirectory) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	emp, exists := m.employees[id]
	if !exists {
		return nil, nil
	}
	return emp, nil
}

var _ = Describe("AttendanceService", func() {
	var (
		repo      *mockAttendanceRepository
		directory *mockEmployeeDirectory
		service   *attendance.Service
	)

	BeforeEach(func() {
		repo = newMockAttendanceRepository()
		directory = newMockEmployeeDirectory(1)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = attendance.NewService(repo, directory, logger)
	})

	Describe("MarkAttendance", func() {
		It("should mark attendance for an existing employee", func() {
			marked, err := service.MarkAttendance(&attendance.MarkAttendanceDTO{
				EmployeeID: 1,
				Date:       "2024-01-15T09:30:00Z",
				Status:     attendance.StatusPresent,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(marked.ID).To(BeNumerically(">", 0))
			Expect(marked.EmployeeID).To(Equal(int64(1)))
			Expect(marked.Status).To(Equal(attendance.StatusPresent))
		})

		It("should return not-found for an unknown employee and create no row", func() {
			_, err := service.MarkAttendance(&attendance.MarkAttendanceDTO{
				EmployeeID: 99,
				Date:       "2024-01-15",
				Status:     attendance.StatusPresent,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
			Expect(appErr.StatusCode).To(Equal(http.StatusNotFound))
			Expect(repo.records).To(BeEmpty())
		})

		It("should strip the timezone offset while keeping the wall clock", func() {
			marked, err := service.MarkAttendance(&attendance.MarkAttendanceDTO{
				EmployeeID: 1,
				Date:       "2024-01-15T09:30:00+07:00",
				Status:     attendance.StatusPresent,
			})

			Expect(err).NotTo(HaveOccurred())
			expected := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
			Expect(marked.Date).To(Equal(expected))
		})

		It("should accept a bare calendar date", func() {
			marked, err := service.MarkAttendance(&attendance.MarkAttendanceDTO{
				EmployeeID: 1,
				Date:       "2024-01-15",
				Status:     attendance.StatusAbsent,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(marked.Date).To(Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
		})

		It("should reject an unknown status", func() {
			_, err := service.MarkAttendance(&attendance.MarkAttendanceDTO{
				EmployeeID: 1,
				Date:       "2024-01-15",
				Status:     "Late",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidStatus))
			Expect(repo.records).To(BeEmpty())
		})

		It("should reject an unparseable date", func() {
			_, err := service.MarkAttendance(&attendance.MarkAttendanceDTO{
				EmployeeID: 1,
				Date:       "15/01/2024",
				Status:     attendance.StatusPresent,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDate))
		})
	})

	Describe("ListForEmployee", func() {
		It("should return not-found for an unknown employee", func() {
			_, err := service.ListForEmployee(99, nil, nil)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeNotFound))
		})

		It("should widen calendar-date filters to inclusive day bounds", func() {
			start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
			end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

			_, err := service.ListForEmployee(1, &start, &end)
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.lastRange.Start).NotTo(BeNil())
			Expect(*repo.lastRange.Start).To(Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
			Expect(repo.lastRange.End).NotTo(BeNil())
			Expect(*repo.lastRange.End).To(Equal(time.Date(2024, 1, 20, 23, 59, 59, 999999000, time.UTC)))
		})

		It("should return an empty slice when no records exist", func() {
			records, err := service.ListForEmployee(1, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})
	})
})
