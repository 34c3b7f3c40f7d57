// Package session resolves the authenticated identity and answers every
// role-gating question the panel asks. Gating here is advisory UI polish; the
// backend independently enforces authorization.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

type identityResolver interface {
	Me(ctx context.Context) (*models.Identity, error)
}

// Manager caches the identity for the lifetime of the session. The identity
// is fetched once per bootstrap and dropped on Clear.
type Manager struct {
	resolver identityResolver
	logger   *zap.Logger

	mu       sync.Mutex
	identity *models.Identity
}

// NewManager constructs a Manager.
func NewManager(resolver identityResolver, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{resolver: resolver, logger: logger}
}

// Resolve returns the current identity, fetching it on first use. Any network
// failure or non-2xx answer is treated identically: not authenticated.
func (m *Manager) Resolve(ctx context.Context) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity != nil {
		return m.identity, nil
	}

	identity, err := m.resolver.Me(ctx)
	if err != nil {
		m.logger.Debug("identity check failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthenticated.Code, appErrors.ErrUnauthenticated.Status, appErrors.ErrUnauthenticated.Message)
	}
	m.identity = identity
	return identity, nil
}

// Set installs an identity directly, used right after a successful login.
func (m *Manager) Set(identity *models.Identity) {
	m.mu.Lock()
	m.identity = identity
	m.mu.Unlock()
}

// Clear drops the cached identity; the next Resolve hits the backend again.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.identity = nil
	m.mu.Unlock()
}

// HasPermission is the single capability primitive: it reports whether the
// identity's role is in the allow-list. A nil identity holds no capability.
func HasPermission(identity *models.Identity, roles ...models.Role) bool {
	if identity == nil {
		return false
	}
	for _, role := range roles {
		if identity.Role == role {
			return true
		}
	}
	return false
}
