package clientstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/proveo/clientkit/pkg/broadcast"
	"github.com/proveo/clientkit/pkg/statemachine"
	"github.com/proveo/clientkit/pkg/statestore"
)

// Store keys. Exact names are a deployment choice but must stay
// consistent; these match the Proveo web client's.
const (
	KeyLanguage         = "language"
	KeyLoggedIn         = "loggedIn"
	KeyCompanyPublished = "companyPublished"
	KeyCSRFToken        = "csrfToken"
)

// Login flag states and the events that may move between them.
const (
	StateLoggedOut statemachine.State = "loggedOut"
	StateLoggedIn  statemachine.State = "loggedIn"

	// EventAuthConfirmed fires on an observed 2xx from the
	// authentication check or an explicit override after login/signup.
	EventAuthConfirmed statemachine.Event = "authConfirmed"
	// EventAuthDenied fires on an observed non-2xx from the
	// authentication check.
	EventAuthDenied statemachine.Event = "authDenied"
	// EventLogout fires on an explicit logout.
	EventLogout statemachine.Event = "logout"
	// EventUnauthorized fires on a 401 received on any request. A 403
	// is an authorization problem, not a loss of authentication, and
	// has no event on purpose.
	EventUnauthorized statemachine.Event = "unauthorized"
)

// Change is a state mutation delivered to subscribers, regardless of
// whether it originated locally or in another client instance.
type Change = statestore.Change

const changeBuffer = 16

// Manager is the client-state facade: typed accessors over the
// persisted values, the logout cascade, the login state machine, and
// one unified notification stream combining local writes with writes
// made by other holders of the same store.
type Manager struct {
	store statestore.Store
	bus   *broadcast.Memory[Change]
	login *statemachine.Machine
	log   *slog.Logger

	// mu serializes writes so the logout cascade's read-modify-write
	// is atomic per handle.
	mu sync.Mutex

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a Manager over the given store. The login machine is
// rehydrated from the persisted flag. A nil log disables logging.
func New(ctx context.Context, store statestore.Store, log *slog.Logger) (*Manager, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	login := statemachine.New(StateLoggedOut)
	login.AddTransition(StateLoggedOut, StateLoggedIn, EventAuthConfirmed)
	login.AddTransition(StateLoggedIn, StateLoggedOut, EventAuthDenied)
	login.AddTransition(StateLoggedIn, StateLoggedOut, EventLogout)
	login.AddTransition(StateLoggedIn, StateLoggedOut, EventUnauthorized)

	m := &Manager{
		store: store,
		bus:   broadcast.NewMemory[Change](changeBuffer),
		login: login,
		log:   log,
		done:  make(chan struct{}),
	}

	v, ok, err := store.Get(ctx, KeyLoggedIn)
	if err != nil {
		return nil, err
	}
	if ok && v == "true" {
		login.Force(StateLoggedIn)
	}

	m.wg.Add(1)
	go m.pumpExternal()

	return m, nil
}

// Subscribe returns a subscriber delivering every state change, local
// or external, until ctx is cancelled.
func (m *Manager) Subscribe(ctx context.Context) broadcast.Subscriber[Change] {
	return m.bus.Subscribe(ctx)
}

// LoginState exposes the login machine's current state.
func (m *Manager) LoginState() statemachine.State {
	return m.login.Current()
}

// Language returns the stored language preference, normalized, or the
// default when unset or invalid.
func (m *Manager) Language(ctx context.Context) string {
	v, ok, err := m.store.Get(ctx, KeyLanguage)
	if err != nil || !ok {
		return DefaultLanguage
	}
	return NormalizeLanguage(v)
}

// SetLanguage persists the normalized language preference and notifies
// subscribers.
func (m *Manager) SetLanguage(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persist(ctx, KeyLanguage, NormalizeLanguage(code))
}

// LoggedIn reports the persisted login flag.
func (m *Manager) LoggedIn(ctx context.Context) bool {
	return m.getBool(ctx, KeyLoggedIn)
}

// SetLoggedIn sets the login flag. Setting it false is a logout: the
// company-published flag and the CSRF token are cascade-cleared in the
// same critical section, so login=false always implies
// companyPublished=false and no CSRF token.
func (m *Manager) SetLoggedIn(ctx context.Context, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !v {
		return m.logoutLocked(ctx, EventLogout)
	}

	if m.login.Can(EventAuthConfirmed) {
		_ = m.login.Fire(ctx, EventAuthConfirmed)
	}
	return m.persist(ctx, KeyLoggedIn, "true")
}

// CompanyPublished reports the persisted company-published flag.
func (m *Manager) CompanyPublished(ctx context.Context) bool {
	return m.getBool(ctx, KeyCompanyPublished)
}

// SetCompanyPublished persists the company-published flag. It never
// cascades; only the login setter owns cross-flag invariants.
func (m *Manager) SetCompanyPublished(ctx context.Context, v bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persist(ctx, KeyCompanyPublished, encodeBool(v))
}

// CSRFToken returns the held CSRF token, if any.
func (m *Manager) CSRFToken(ctx context.Context) (string, bool) {
	v, ok, err := m.store.Get(ctx, KeyCSRFToken)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// SetCSRFToken stores the backend-issued CSRF token.
func (m *Manager) SetCSRFToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persist(ctx, KeyCSRFToken, token)
}

// ClearCSRFToken removes the held CSRF token.
func (m *Manager) ClearCSRFToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(ctx, KeyCSRFToken)
}

// ReconcileLoggedIn applies a freshly observed authentication result.
// The persisted flag is rewritten only when it disagrees with the
// observation, so agreeing observations cause no redundant
// notifications.
func (m *Manager) ReconcileLoggedIn(ctx context.Context, observed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getBool(ctx, KeyLoggedIn) == observed {
		return nil
	}

	if observed {
		if m.login.Can(EventAuthConfirmed) {
			_ = m.login.Fire(ctx, EventAuthConfirmed)
		}
		return m.persist(ctx, KeyLoggedIn, "true")
	}
	return m.logoutLocked(ctx, EventAuthDenied)
}

// ReconcileCompanyPublished applies a freshly observed publication
// state, rewriting the flag only on disagreement.
func (m *Manager) ReconcileCompanyPublished(ctx context.Context, observed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getBool(ctx, KeyCompanyPublished) == observed {
		return nil
	}
	return m.persist(ctx, KeyCompanyPublished, encodeBool(observed))
}

// HandleUnauthorized reacts to a 401 observed on any request: an
// authenticated client logs out, an already logged-out client is left
// alone. 403 responses must not be routed here.
func (m *Manager) HandleUnauthorized(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.login.Current() != StateLoggedIn {
		return nil
	}
	m.log.InfoContext(ctx, "received 401, clearing login state")
	return m.logoutLocked(ctx, EventUnauthorized)
}

// Close shuts down the notification stream. The underlying store is
// owned by the caller and stays open.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
		err = m.bus.Close()
	})
	return err
}

// logoutLocked clears the login flag and cascades. The dependent state
// goes first and the login flip is persisted and announced last, so a
// subscriber reacting to the loggedIn change can never read
// login=false next to a published company or a held token. Callers
// hold m.mu.
func (m *Manager) logoutLocked(ctx context.Context, event statemachine.Event) error {
	if m.login.Can(event) {
		_ = m.login.Fire(ctx, event)
	}

	if err := m.persist(ctx, KeyCompanyPublished, "false"); err != nil {
		return err
	}
	if _, held := m.CSRFToken(ctx); held {
		if err := m.remove(ctx, KeyCSRFToken); err != nil {
			return err
		}
	}
	return m.persist(ctx, KeyLoggedIn, "false")
}

// persist writes the canonical encoding and raises the local
// notification exactly once. Callers hold m.mu.
func (m *Manager) persist(ctx context.Context, key, value string) error {
	if err := m.store.Set(ctx, key, value); err != nil {
		m.log.ErrorContext(ctx, "state write failed", "key", key, "error", err)
		return err
	}
	m.bus.Broadcast(Change{Key: key, Value: value})
	return nil
}

func (m *Manager) remove(ctx context.Context, key string) error {
	if err := m.store.Delete(ctx, key); err != nil {
		m.log.ErrorContext(ctx, "state delete failed", "key", key, "error", err)
		return err
	}
	m.bus.Broadcast(Change{Key: key, Deleted: true})
	return nil
}

func (m *Manager) getBool(ctx context.Context, key string) bool {
	v, ok, err := m.store.Get(ctx, key)
	return err == nil && ok && v == "true"
}

func encodeBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// pumpExternal feeds changes made by other store holders into the same
// bus local writes use, so one subscription observes both. External
// login flips also rehydrate the login machine; the remote end already
// enforced the cascade before publishing.
func (m *Manager) pumpExternal() {
	defer m.wg.Done()

	for {
		select {
		case <-m.done:
			return
		case c, ok := <-m.store.External():
			if !ok {
				return
			}
			if c.Key == KeyLoggedIn {
				if !c.Deleted && c.Value == "true" {
					m.login.Force(StateLoggedIn)
				} else {
					m.login.Force(StateLoggedOut)
				}
			}
			m.bus.Broadcast(c)
		}
	}
}
