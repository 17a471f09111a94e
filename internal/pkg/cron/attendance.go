package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an ABSENT record for every employee with no
// attendance for the previous day. The job ticks hourly but only acts during
// the first hour of the day so a restart never double-processes.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	marked := 0
	for _, emp := range employees {
		existing, err := j.attendanceRepo.GetBySubjectAndDate(ctx, emp.Email, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check attendance", "email", emp.Email, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		remarks := "Marked absent automatically"
		_, err = j.attendanceRepo.Create(ctx, attendance.Record{
			Email:   emp.Email,
			Date:    yesterday,
			Status:  attendance.StatusAbsent,
			Remarks: &remarks,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark absent", "email", emp.Email, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked, "date", yesterday.Format("2006-01-02"))
	return nil
}
