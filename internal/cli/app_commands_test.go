package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/judix-app/judix-cli/internal/models"
	"github.com/judix-app/judix-cli/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

// memStore implements session.Store in memory.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}
func (m *memStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memStore) Clear(ctx context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

type fakeAS struct {
	loginUser *models.User
	loginErr  error

	meUser *models.User
	meErr  error

	registerErr error
	lastReg     models.Registration

	updUser *models.User
	updErr  error
	lastUpd models.ProfileUpdate

	logoutCalled bool
}

func (f *fakeAS) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginUser, f.loginErr
}
func (f *fakeAS) Me(ctx context.Context) (*models.User, error) { return f.meUser, f.meErr }
func (f *fakeAS) Register(ctx context.Context, reg models.Registration) error {
	f.lastReg = reg
	return f.registerErr
}
func (f *fakeAS) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.lastUpd = upd
	return f.updUser, f.updErr
}
func (f *fakeAS) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return nil
}

type fakeCS struct {
	listOut []models.Case
	listErr error

	getOut *models.Case
	getErr error
	getID  string

	createOut  *models.Case
	createErr  error
	lastDraft  models.CaseDraft
	updateOut  *models.Case
	updateErr  error
	lastID     string
	lastUpdate models.CaseUpdate

	deleteErr error
	deletedID string
}

func (f *fakeCS) List(ctx context.Context) ([]models.Case, error) { return f.listOut, f.listErr }
func (f *fakeCS) Get(ctx context.Context, id string) (*models.Case, error) {
	f.getID = id
	return f.getOut, f.getErr
}
func (f *fakeCS) Create(ctx context.Context, d models.CaseDraft) (*models.Case, error) {
	f.lastDraft = d
	return f.createOut, f.createErr
}
func (f *fakeCS) Update(ctx context.Context, id string, u models.CaseUpdate) (*models.Case, error) {
	f.lastID = id
	f.lastUpdate = u
	return f.updateOut, f.updateErr
}
func (f *fakeCS) SetStatus(ctx context.Context, id string, st models.CaseStatus) (*models.Case, error) {
	return f.Update(ctx, id, models.CaseUpdate{Status: &st})
}
func (f *fakeCS) Archive(ctx context.Context, id string) (*models.Case, error) {
	archived := true
	return f.Update(ctx, id, models.CaseUpdate{IsArchived: &archived})
}
func (f *fakeCS) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestApp(as *fakeAS, cs *fakeCS, reader *bufio.Reader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := &App{
		session:     session.New(newMemStore()),
		authService: as,
		caseService: cs,
		reader:      reader,
		out:         &out,
	}
	return app, &out
}

func someCase(id string) models.Case {
	return models.Case{
		ID:         id,
		Title:      "Smith v. Jones",
		ClientName: "Ann Smith",
		CaseType:   models.CaseTypeCivil,
		Status:     models.StatusActive,
		FiledAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ------------ tests ------------

func TestApp_Login(t *testing.T) {
	orig := getPassword
	getPassword = func(_ io.Writer) (string, error) { return "pw", nil }
	defer func() { getPassword = orig }()

	as := &fakeAS{loginUser: &models.User{ID: "u1", Username: "ann"}}
	app, out := newTestApp(as, &fakeCS{}, readerFromLines("ann@example.com"))

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Logged in as ann")
}

func TestApp_Login_FailureStaysLoggedOut(t *testing.T) {
	orig := getPassword
	getPassword = func(_ io.Writer) (string, error) { return "pw", nil }
	defer func() { getPassword = orig }()

	as := &fakeAS{loginErr: errors.New("invalid credentials")}
	app, _ := newTestApp(as, &fakeCS{}, readerFromLines("ann@example.com"))

	err := app.Login(context.Background())
	require.Error(t, err)
	assert.False(t, app.isLoggedIn())
}

func TestApp_Register(t *testing.T) {
	orig := getPassword
	getPassword = func(_ io.Writer) (string, error) { return "pw", nil }
	defer func() { getPassword = orig }()

	as := &fakeAS{}
	app, out := newTestApp(as, &fakeCS{}, readerFromLines("ann", "ann@example.com", "attorney in Boston"))

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, models.Registration{
		Username: "ann",
		Email:    "ann@example.com",
		Password: "pw",
		Bio:      "attorney in Boston",
	}, as.lastReg)
	assert.Contains(t, out.String(), "Registration successful")
	assert.False(t, app.isLoggedIn(), "registration must not log the user in")
}

func TestApp_List_AppliesDashboardFilter(t *testing.T) {
	cs := &fakeCS{listOut: []models.Case{
		someCase("1"),
		{ID: "2", Title: "Estate of Brown", ClientName: "Bob Brown", Status: models.StatusDraft},
		{ID: "3", Title: "Archived matter", ClientName: "Ann Smith", Status: models.StatusActive, IsArchived: true},
	}}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines())
	app.user = &models.User{Username: "ann"}

	require.NoError(t, app.List(context.Background(), []string{"smith"}))

	s := out.String()
	assert.Contains(t, s, "Smith v. Jones")
	assert.NotContains(t, s, "Estate of Brown")
	assert.NotContains(t, s, "Archived matter")
}

func TestApp_List_StatusFilterPersists(t *testing.T) {
	cs := &fakeCS{listOut: []models.Case{
		someCase("1"),
		{ID: "2", Title: "Estate of Brown", ClientName: "Bob Brown", Status: models.StatusDraft},
	}}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines())

	require.NoError(t, app.Filter(context.Background(), []string{"draft"}))
	require.NoError(t, app.List(context.Background(), nil))

	s := out.String()
	assert.Contains(t, s, "Estate of Brown")
	assert.NotContains(t, s, "Smith v. Jones")

	out.Reset()
	require.NoError(t, app.Filter(context.Background(), []string{"all"}))
	require.NoError(t, app.List(context.Background(), nil))
	assert.Contains(t, out.String(), "Smith v. Jones")
}

func TestApp_Filter_RejectsUnknownStatus(t *testing.T) {
	app, _ := newTestApp(&fakeAS{}, &fakeCS{}, readerFromLines())
	err := app.Filter(context.Background(), []string{"open"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestApp_Show(t *testing.T) {
	c := someCase("c7")
	cs := &fakeCS{getOut: &c}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines())

	require.NoError(t, app.Show(context.Background(), []string{"c7"}))
	assert.Equal(t, "c7", cs.getID)
	assert.Contains(t, out.String(), "Smith v. Jones")
}

func TestApp_Create(t *testing.T) {
	created := someCase("c9")
	cs := &fakeCS{createOut: &created}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines(
		"Smith v. Jones",   // title
		"breach of contract", // description
		"Ann Smith",        // client name
		"ann@example.com",  // client email
		"civil",            // case type
		"draft",            // status
		"2024-03-01",       // filed date
	))

	require.NoError(t, app.Create(context.Background()))

	assert.Equal(t, "Smith v. Jones", cs.lastDraft.Title)
	assert.Equal(t, "Ann Smith", cs.lastDraft.ClientName)
	assert.Equal(t, models.CaseTypeCivil, cs.lastDraft.CaseType)
	assert.Equal(t, models.StatusDraft, cs.lastDraft.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), cs.lastDraft.FiledAt)
	assert.Contains(t, out.String(), "Created case c9")
}

func TestApp_Create_RejectsInvalidDraft(t *testing.T) {
	cs := &fakeCS{}
	app, _ := newTestApp(&fakeAS{}, cs, readerFromLines(
		"Smith v. Jones",
		"",
		"Ann Smith",
		"not-an-email", // invalid client email
		"civil",
		"draft",
		"2024-03-01",
	))

	err := app.Create(context.Background())
	require.Error(t, err)
	assert.Empty(t, cs.lastDraft.Title, "an invalid draft must never reach the service")
}

func TestApp_SetStatus(t *testing.T) {
	updated := someCase("c1")
	updated.Status = models.StatusClosed
	cs := &fakeCS{updateOut: &updated}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines())

	require.NoError(t, app.SetStatus(context.Background(), []string{"c1", "closed"}))
	require.NotNil(t, cs.lastUpdate.Status)
	assert.Equal(t, models.StatusClosed, *cs.lastUpdate.Status)
	assert.Contains(t, out.String(), "now closed")
}

func TestApp_SetStatus_Usage(t *testing.T) {
	app, _ := newTestApp(&fakeAS{}, &fakeCS{}, readerFromLines())
	err := app.SetStatus(context.Background(), []string{"c1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestApp_Archive(t *testing.T) {
	updated := someCase("c1")
	updated.IsArchived = true
	cs := &fakeCS{updateOut: &updated}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines())

	require.NoError(t, app.Archive(context.Background(), []string{"c1"}))
	require.NotNil(t, cs.lastUpdate.IsArchived)
	assert.True(t, *cs.lastUpdate.IsArchived)
	assert.Nil(t, cs.lastUpdate.Status, "archiving must not touch status")
	assert.Contains(t, out.String(), "Archived case c1")
}

func TestApp_Delete_RequiresConfirmation(t *testing.T) {
	cs := &fakeCS{}
	app, out := newTestApp(&fakeAS{}, cs, readerFromLines("no"))

	require.NoError(t, app.Delete(context.Background(), []string{"c1"}))
	assert.Empty(t, cs.deletedID)
	assert.Contains(t, out.String(), "Aborted")

	app2, out2 := newTestApp(&fakeAS{}, cs, readerFromLines("yes"))
	require.NoError(t, app2.Delete(context.Background(), []string{"c1"}))
	assert.Equal(t, "c1", cs.deletedID)
	assert.Contains(t, out2.String(), "Deleted case c1")
}

func TestApp_Logout(t *testing.T) {
	as := &fakeAS{}
	app, out := newTestApp(as, &fakeCS{}, readerFromLines())
	app.user = &models.User{Username: "ann"}
	app.statusFilter = models.StatusActive

	require.NoError(t, app.Logout(context.Background()))
	assert.True(t, as.logoutCalled)
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.statusFilter)
	assert.Contains(t, out.String(), "Logged out.")
}

func TestApp_OnSessionExpired(t *testing.T) {
	app, out := newTestApp(&fakeAS{}, &fakeCS{}, readerFromLines())
	app.user = &models.User{Username: "ann"}

	app.onSessionExpired()

	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Session expired")
}

func TestApp_Profile_NothingToUpdate(t *testing.T) {
	as := &fakeAS{}
	app, out := newTestApp(as, &fakeCS{}, readerFromLines("", ""))

	require.NoError(t, app.Profile(context.Background()))
	assert.Nil(t, as.lastUpd.Username)
	assert.Nil(t, as.lastUpd.Bio)
	assert.Contains(t, out.String(), "Nothing to update")
}

func TestApp_Profile_UpdatesBio(t *testing.T) {
	updated := &models.User{ID: "u1", Username: "ann", Bio: "senior attorney"}
	as := &fakeAS{updUser: updated}
	app, out := newTestApp(as, &fakeCS{}, readerFromLines("", "senior attorney"))

	require.NoError(t, app.Profile(context.Background()))
	require.NotNil(t, as.lastUpd.Bio)
	assert.Equal(t, "senior attorney", *as.lastUpd.Bio)
	assert.Nil(t, as.lastUpd.Username)
	assert.Contains(t, out.String(), "Profile updated.")
}
