package cmd

import (
	"fmt"
	"log"
	"time"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM attendances").Error; err != nil {
				log.Fatalf("failed to clear attendances: %v", err)
			}
			if err := db.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		roster := []employeeDatamodel.Employee{
			{FullName: "John Doe", Email: "john.doe@company.com", Department: "Engineering"},
			{FullName: "Jane Smith", Email: "jane.smith@company.com", Department: "Marketing"},
			{FullName: "Bob Wilson", Email: "bob.wilson@company.com", Department: "Sales"},
		}

		for i := range roster {
			emp := &roster[i]
			var exists int64
			if err := db.Model(&employeeDatamodel.Employee{}).Where("email = ?", emp.Email).Count(&exists).Error; err != nil {
				log.Fatalf("failed to check employee %s: %v", emp.Email, err)
			}
			if exists > 0 {
				fmt.Printf("employee %s already exists; skipping\n", emp.Email)
				continue
			}
			if err := db.Create(emp).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", emp.Email, err)
			}
			fmt.Println("Seeded employee:", emp.Email)

			// one week of attendance per seeded employee, weekdays only
			day := time.Now().AddDate(0, 0, -7)
			for d := 0; d < 7; d++ {
				date := day.AddDate(0, 0, d)
				if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
					continue
				}
				status := attendance.StatusPresent
				if d%4 == 0 {
					status = attendance.StatusAbsent
				}
				record := attendanceDatamodel.Attendance{
					EmployeeID: emp.ID,
					Date:       attendance.StartOfDay(date).Add(9 * time.Hour),
					Status:     status,
				}
				if err := db.Create(&record).Error; err != nil {
					log.Fatalf("failed to insert attendance for %s: %v", emp.Email, err)
				}
			}
		}

		fmt.Println("Seeding complete")
	},
}
