package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmate-app/tourmate-cli/internal/auth"
	"github.com/tourmate-app/tourmate-cli/internal/logging"
	"github.com/tourmate-app/tourmate-cli/internal/models"
)

type stubBackend struct {
	loginErr   error
	role       models.Role
	loginEmail string
	registered bool
}

func (s *stubBackend) Login(ctx context.Context, email, password string) (*models.Session, error) {
	s.loginEmail = email
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &models.Session{Token: "t", User: models.User{Name: "Amaya", Email: email, Role: s.role}}, nil
}

func (s *stubBackend) Register(ctx context.Context, name, email, password string) error {
	s.registered = true
	return nil
}

func (s *stubBackend) GoogleLogin(ctx context.Context, code string) (*models.Session, error) {
	return s.Login(ctx, "oauth@example.com", "")
}

type stubStore struct {
	sess  *models.Session
	saves int
}

func (m *stubStore) Current(ctx context.Context) (*models.Session, error) { return m.sess, nil }
func (m *stubStore) Save(ctx context.Context, s models.Session) error {
	m.saves++
	m.sess = &s
	return nil
}
func (m *stubStore) Clear(ctx context.Context) error { m.sess = nil; return nil }

// newAuthApp builds an App with stubbed backend, store, and input seams.
func newAuthApp(t *testing.T, backend *stubBackend, store *stubStore, inputs ...string) *App {
	t.Helper()
	silencePrintln(t)

	i := 0
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(inputs) {
			return "", io.EOF
		}
		v := inputs[i]
		i++
		return v, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	return &App{
		log:     logging.NewNop(),
		session: store,
		flow:    auth.NewFlow(backend, store, logging.NewNop()),
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	store := &stubStore{}
	a := newAuthApp(t, &stubBackend{role: models.RoleAdmin}, store, "amaya@example.com")

	require.NoError(t, a.Login(context.Background()))
	require.NotNil(t, a.current)
	assert.True(t, a.isAdmin())
	require.NotNil(t, store.sess)
	assert.Equal(t, "t", store.sess.Token)
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	store := &stubStore{}
	a := newAuthApp(t, &stubBackend{loginErr: errors.New("refused")}, store, "amaya@example.com")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Nil(t, a.current)
	assert.Equal(t, 0, store.saves)
}

func TestRegisterFlowsIntoLoginWithPrefilledEmail(t *testing.T) {
	store := &stubStore{}
	backend := &stubBackend{role: models.RoleTourist}
	// Inputs: name, email; the follow-up login reuses the registered email.
	a := newAuthApp(t, backend, store, "Amaya", "amaya@example.com")

	require.NoError(t, a.Register(context.Background()))
	assert.True(t, backend.registered)
	assert.Equal(t, "amaya@example.com", backend.loginEmail, "login must be pre-filled with the registered email")
	require.NotNil(t, a.current)
}

func TestLogoutClearsSession(t *testing.T) {
	store := &stubStore{sess: &models.Session{Token: "t"}}
	a := newAuthApp(t, &stubBackend{}, store)
	a.current = &models.Session{Token: "t"}

	require.NoError(t, a.Logout(context.Background()))
	assert.Nil(t, a.current)
	assert.Nil(t, store.sess)
}
