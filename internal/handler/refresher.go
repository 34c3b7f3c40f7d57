package handler

import (
	"context"

	"github.com/gerenciamento-cursos/painel/internal/gateway"
	"github.com/gerenciamento-cursos/painel/internal/state"
	"github.com/gerenciamento-cursos/painel/internal/workflow"
)

// storeRefresher implements workflow.Refresher by re-fetching the affected
// snapshots from the backend, keeping the pessimistic-refresh contract: the
// re-fetch is the only way a mutation reaches local state.
type storeRefresher struct {
	gw    *gateway.Client
	store *state.Store
}

// NewStoreRefresher builds the refresher backing the enrollment workflow.
func NewStoreRefresher(gw *gateway.Client, store *state.Store) workflow.Refresher {
	return &storeRefresher{gw: gw, store: store}
}

func (r *storeRefresher) ReloadEnrollments(ctx context.Context) error {
	_, err := r.store.RefreshEnrollments(ctx, r.gw)
	return err
}

// ReloadDashboard rebuilds the snapshots the dashboard counters derive from;
// the counters themselves are recomputed from fresh fetches on every view.
func (r *storeRefresher) ReloadDashboard(ctx context.Context) error {
	if _, err := r.store.RefreshCourses(ctx, r.gw); err != nil {
		return err
	}
	if _, err := r.store.RefreshStudents(ctx, r.gw); err != nil {
		return err
	}
	_, err := r.store.RefreshTeachers(ctx, r.gw)
	return err
}
