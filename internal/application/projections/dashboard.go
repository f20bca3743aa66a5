package projections

import (
	"context"

	billStore "ratedesk/internal/adapters/storage/bill"
	planAmendmentStore "ratedesk/internal/adapters/storage/planamendment"
	providerAlertStore "ratedesk/internal/adapters/storage/provideralert"
	alertDomain "ratedesk/internal/domain/provideralert"
)

// RecentAlertLimit caps the alerts shown on the dashboard.
const RecentAlertLimit = 10

// GetDashboardDeps holds read-side dependencies for the dashboard.
type GetDashboardDeps struct {
	BillStore          billStore.Store
	ProviderAlertStore providerAlertStore.Store
	PlanAmendmentStore planAmendmentStore.Store
}

// DashboardResult carries the admin dashboard overview.
type DashboardResult struct {
	BillCount      int
	AlertCount     int
	AmendmentCount int
	RecentAlerts   []alertDomain.Alert
}

// QueryGetDashboard assembles record counts and the newest provider alerts.
// POST: Returns the overview, or the first store error encountered
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (DashboardResult, error) {
	var result DashboardResult
	var err error

	if result.BillCount, err = deps.BillStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.AlertCount, err = deps.ProviderAlertStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.AmendmentCount, err = deps.PlanAmendmentStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.RecentAlerts, err = deps.ProviderAlertStore.ListRecent(ctx, RecentAlertLimit); err != nil {
		return DashboardResult{}, err
	}
	return result, nil
}
