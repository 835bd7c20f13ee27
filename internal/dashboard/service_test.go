package dashboard_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/dashboard"
)

func TestDashboardService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DashboardService Suite")
}

type fakeRecord struct {
	employeeID int64
	date       time.Time
	status     string
}

type mockRoster struct {
	employees []*employeeDatamodel.Employee
}

func (m *mockRoster) GetAll() ([]*employeeDatamodel.Employee, error) {
	return m.employees, nil
}

func (m *mockRoster) Count() (int64, error) {
	return int64(len(m.employees)), nil
}

type mockCounter struct {
	records []fakeRecord
}

func (m *mockCounter) inRange(record fakeRecord, rng attendance.DateRange) bool {
	if rng.Start != nil && record.date.Before(*rng.Start) {
		return false
	}
	if rng.End != nil && record.date.After(*rng.End) {
		return false
	}
	return true
}

func (m *mockCounter) Count(rng attendance.DateRange, status string) (int64, error) {
	var count int64
	for _, record := range m.records {
		if !m.inRange(record, rng) {
			continue
		}
		if status != "" && record.status != status {
			continue
		}
		count++
	}
	return count, nil
}

func (m *mockCounter) StatsForEmployee(employeeID int64, rng attendance.DateRange) (attendance.Stats, error) {
	var stats attendance.Stats
	for _, record := range m.records {
		if record.employeeID != employeeID || !m.inRange(record, rng) {
			continue
		}
		switch record.status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusAbsent:
			stats.Absent++
		}
		stats.Total++
	}
	return stats, nil
}

func employeeRow(id int64, name string) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:         id,
		FullName:   name,
		Email:      name + "@company.com",
		Department: "Engineering",
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC)
}

var _ = Describe("DashboardService", func() {
	var (
		roster  *mockRoster
		counter *mockCounter
		service *dashboard.Service
	)

	BeforeEach(func() {
		roster = &mockRoster{}
		counter = &mockCounter{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = dashboard.NewService(roster, counter, logger)
	})

	Describe("GetSummary", func() {
		It("should report a 0.0 rate when no attendance exists, for any filters", func() {
			roster.employees = []*employeeDatamodel.Employee{employeeRow(1, "alice")}

			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
			for _, bounds := range [][2]*time.Time{{nil, nil}, {&start, nil}, {nil, &end}, {&start, &end}} {
				summary, err := service.GetSummary(bounds[0], bounds[1])
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.TotalEmployees).To(Equal(int64(1)))
				Expect(summary.TotalAttendanceRecords).To(BeZero())
				Expect(summary.AttendanceRate).To(Equal(0.0))
			}
		})

		It("should count a single present day as a 100.0 rate", func() {
			roster.employees = []*employeeDatamodel.Employee{employeeRow(1, "alice")}
			counter.records = []fakeRecord{
				{employeeID: 1, date: day(1), status: attendance.StatusPresent},
				{employeeID: 1, date: day(2), status: attendance.StatusAbsent},
			}

			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			end := start
			summary, err := service.GetSummary(&start, &end)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalAttendanceRecords).To(Equal(int64(1)))
			Expect(summary.PresentCount).To(Equal(int64(1)))
			Expect(summary.AbsentCount).To(BeZero())
			Expect(summary.AttendanceRate).To(Equal(100.0))
		})

		It("should round the rate to two decimal places", func() {
			counter.records = []fakeRecord{
				{employeeID: 1, date: day(1), status: attendance.StatusPresent},
				{employeeID: 1, date: day(2), status: attendance.StatusAbsent},
				{employeeID: 1, date: day(3), status: attendance.StatusAbsent},
			}

			summary, err := service.GetSummary(nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.AttendanceRate).To(Equal(33.33))
		})

		It("should never filter the employee count", func() {
			roster.employees = []*employeeDatamodel.Employee{employeeRow(1, "alice"), employeeRow(2, "bob")}

			start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
			summary, err := service.GetSummary(&start, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalEmployees).To(Equal(int64(2)))
		})
	})

	Describe("GetEmployeeStats", func() {
		BeforeEach(func() {
			roster.employees = []*employeeDatamodel.Employee{
				employeeRow(1, "alice"),
				employeeRow(2, "bob"),
				employeeRow(3, "carol"),
			}
			counter.records = []fakeRecord{
				{employeeID: 1, date: day(1), status: attendance.StatusPresent},
				{employeeID: 1, date: day(2), status: attendance.StatusAbsent},
				{employeeID: 2, date: day(1), status: attendance.StatusAbsent},
			}
		})

		It("should include every employee when no status filter is given", func() {
			stats, err := service.GetEmployeeStats("", nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(HaveLen(3))
			Expect(stats[0].ID).To(Equal(int64(1)))
			Expect(stats[0].PresentCount).To(Equal(int64(1)))
			Expect(stats[0].AbsentCount).To(Equal(int64(1)))
			Expect(stats[0].TotalRecords).To(Equal(int64(2)))
			Expect(stats[2].TotalRecords).To(BeZero())
		})

		It("should exclude employees with no present records under status=Present", func() {
			stats, err := service.GetEmployeeStats(attendance.StatusPresent, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(HaveLen(1))
			Expect(stats[0].ID).To(Equal(int64(1)))
		})

		It("should exclude employees with no absent records under status=Absent", func() {
			stats, err := service.GetEmployeeStats(attendance.StatusAbsent, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(HaveLen(2))
			Expect(stats[0].ID).To(Equal(int64(1)))
			Expect(stats[1].ID).To(Equal(int64(2)))
		})

		It("should apply date filters before the status filter", func() {
			start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
			stats, err := service.GetEmployeeStats(attendance.StatusPresent, &start, nil)
			Expect(err).NotTo(HaveOccurred())
			// alice's present record is on day 1, outside the filter
			Expect(stats).To(BeEmpty())
		})

		It("should keep roster order", func() {
			stats, err := service.GetEmployeeStats("", nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats[0].ID).To(BeNumerically("<", stats[1].ID))
			Expect(stats[1].ID).To(BeNumerically("<", stats[2].ID))
		})

		It("should reject an unknown status filter", func() {
			_, err := service.GetEmployeeStats("Late", nil, nil)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidStatus))
		})
	})
})
