package service

import (
	"context"
	"time"

	"github.com/pawsuite/salon-api/internal/application/reporting"
	"github.com/pawsuite/salon-api/internal/domain/repository"
)

// ReportService assembles reporting snapshots from storage and runs the
// report calculators over them.
type ReportService struct {
	appointmentRepo repository.AppointmentRepository
	transactionRepo repository.TransactionRepository
	serviceRepo     repository.ServiceRepository
	staffRepo       repository.StaffRepository
	customerRepo    repository.CustomerRepository
	settingsRepo    repository.SettingsRepository
}

// NewReportService creates a new report service
func NewReportService(
	appointmentRepo repository.AppointmentRepository,
	transactionRepo repository.TransactionRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *ReportService {
	return &ReportService{
		appointmentRepo: appointmentRepo,
		transactionRepo: transactionRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		customerRepo:    customerRepo,
		settingsRepo:    settingsRepo,
	}
}

// snapshot loads everything a report needs for the given range. Catalog,
// staff, and customer rows are loaded in full; only the time-bound facts are
// range-restricted.
func (s *ReportService) snapshot(ctx context.Context, r reporting.DateRange) (reporting.Snapshot, error) {
	var snap reporting.Snapshot
	var err error

	if snap.Appointments, err = s.appointmentRepo.ListBetween(ctx, r.Start, r.End); err != nil {
		return snap, err
	}
	if snap.Transactions, err = s.transactionRepo.ListBetween(ctx, r.Start, r.End); err != nil {
		return snap, err
	}
	if snap.Services, err = s.serviceRepo.ListAll(ctx); err != nil {
		return snap, err
	}
	if snap.Staff, err = s.staffRepo.ListAll(ctx); err != nil {
		return snap, err
	}
	if snap.Customers, err = s.customerRepo.ListAll(ctx); err != nil {
		return snap, err
	}
	if snap.Settings, err = s.settingsRepo.Get(ctx); err != nil {
		return snap, err
	}

	return snap, nil
}

// Summary builds the full report for the filter set
func (s *ReportService) Summary(ctx context.Context, f reporting.Filters) (*reporting.Summary, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}
	summary := reporting.BuildSummary(snap, f, now)
	return &summary, nil
}

// RevenueReport is the revenue section of the summary with its resolved range
type RevenueReport struct {
	Range   reporting.DateRange      `json:"range"`
	Revenue reporting.RevenueMetrics `json:"revenue"`
}

// Revenue builds the revenue section only
func (s *ReportService) Revenue(ctx context.Context, f reporting.Filters) (*RevenueReport, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	appts := reporting.FilterAppointments(snap.Appointments, f, r)
	txns := reporting.FilterTransactions(snap.Transactions, f, r)
	return &RevenueReport{
		Range:   r,
		Revenue: reporting.Revenue(appts, txns, snap.Settings),
	}, nil
}

// MarginReport is the margin section of the summary with its resolved range
type MarginReport struct {
	Range   reporting.DateRange     `json:"range"`
	Margins reporting.MarginMetrics `json:"margins"`
}

// Margins builds the margin section only
func (s *ReportService) Margins(ctx context.Context, f reporting.Filters) (*MarginReport, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	appts := reporting.FilterAppointments(snap.Appointments, f, r)
	txns := reporting.FilterTransactions(snap.Transactions, f, r)
	rev := reporting.Revenue(appts, txns, snap.Settings)
	return &MarginReport{
		Range:   r,
		Margins: reporting.Margins(appts, snap.Services, snap.Staff, rev),
	}, nil
}

// AppointmentReport is the appointment funnel section with its resolved range
type AppointmentReport struct {
	Range        reporting.DateRange          `json:"range"`
	Appointments reporting.AppointmentMetrics `json:"appointments"`
}

// Appointments builds the appointment funnel section only
func (s *ReportService) Appointments(ctx context.Context, f reporting.Filters) (*AppointmentReport, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	appts := reporting.FilterAppointments(snap.Appointments, f, r)
	return &AppointmentReport{
		Range:        r,
		Appointments: reporting.AppointmentStats(appts),
	}, nil
}

// RetentionReport is the retention section with its resolved range
type RetentionReport struct {
	Range     reporting.DateRange        `json:"range"`
	Retention reporting.RetentionMetrics `json:"retention"`
}

// Retention builds the retention section only
func (s *ReportService) Retention(ctx context.Context, f reporting.Filters) (*RetentionReport, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	appts := reporting.FilterAppointments(snap.Appointments, f, r)
	return &RetentionReport{
		Range:     r,
		Retention: reporting.Retention(appts, snap.Customers, snap.Settings, now),
	}, nil
}

// ServiceBreakdownReport is the per-service breakdown with its resolved range
type ServiceBreakdownReport struct {
	Range     reporting.DateRange      `json:"range"`
	ByService []reporting.ServiceGroup `json:"by_service"`
}

// ServiceBreakdown builds the per-service breakdown only
func (s *ReportService) ServiceBreakdown(ctx context.Context, f reporting.Filters) (*ServiceBreakdownReport, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	appts := reporting.FilterAppointments(snap.Appointments, f, r)
	return &ServiceBreakdownReport{
		Range:     r,
		ByService: reporting.ServiceBreakdown(appts, snap.Services),
	}, nil
}

// StaffBreakdownReport is the per-staff breakdown with its resolved range
type StaffBreakdownReport struct {
	Range   reporting.DateRange    `json:"range"`
	ByStaff []reporting.StaffGroup `json:"by_staff"`
}

// StaffBreakdown builds the per-staff breakdown only
func (s *ReportService) StaffBreakdown(ctx context.Context, f reporting.Filters) (*StaffBreakdownReport, error) {
	now := time.Now()
	r := reporting.ResolveRange(f, now)
	snap, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	appts := reporting.FilterAppointments(snap.Appointments, f, r)
	return &StaffBreakdownReport{
		Range:   r,
		ByStaff: reporting.StaffBreakdown(appts, snap.Staff),
	}, nil
}
