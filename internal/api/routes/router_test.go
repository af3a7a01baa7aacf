package routes_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/support-tracker/internal/api/middleware"
	"github.com/linskybing/support-tracker/internal/api/routes"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/config/db"
	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

type server struct {
	router *gin.Engine
	svc    *application.Services
}

func newServer(t *testing.T, store application.ObjectStore) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.Init("test-secret")
	config.WatchInterval = 50 * time.Millisecond

	conn := testutils.NewSQLiteDB(t)
	require.NoError(t, db.Seed(conn, db.SeedData{
		Statuses: config.DefaultStatuses,
		Admin:    db.SeedAdmin{Email: adminEmail, Password: adminPassword},
	}))

	svc := application.New(repository.NewRepositories(conn), store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &server{router: routes.NewRouter(svc, logger), svc: svc}
}

func (s *server) client() *testutils.HTTPClient {
	return testutils.NewHTTPClient(s.router)
}

func (s *server) register(t *testing.T, email string) *testutils.HTTPClient {
	t.Helper()
	c := s.client()
	resp, err := c.POST("/api/auth/register", map[string]string{"email": email, "password": "secret1"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	return c
}

func (s *server) admin(t *testing.T) *testutils.HTTPClient {
	t.Helper()
	c := s.client()
	resp, err := c.POST("/api/auth/login", map[string]string{"email": adminEmail, "password": adminPassword})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	return c
}

func createTicket(t *testing.T, c *testutils.HTTPClient, title string) ticket.Ticket {
	t.Helper()
	resp, err := c.POST("/api/tickets", map[string]string{"title": title, "description": "Y"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var tk ticket.Ticket
	require.NoError(t, resp.DecodeData(&tk))
	return tk
}

type listBody struct {
	Data []ticket.Ticket `json:"data"`
	Meta ticket.PageMeta `json:"meta"`
}

func listTickets(t *testing.T, c *testutils.HTTPClient, query map[string]string) listBody {
	t.Helper()
	resp, err := c.GET("/api/tickets", query)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var body listBody
	require.NoError(t, resp.DecodeJSON(&body))
	return body
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func path(format string, id uint) string {
	return strings.Replace(format, ":id", itoa(id), 1)
}

// --------------------- Scenarios ---------------------
func TestRegisterStartsClientSession(t *testing.T) {
	s := newServer(t, nil)
	c := s.client()

	resp, err := c.POST("/api/auth/register", map[string]string{"email": "a@b.com", "password": "secret1"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, c.Cookie(config.SessionName))
	assert.True(t, c.Cookie(config.SessionName).HttpOnly)

	var created user.User
	require.NoError(t, resp.DecodeData(&created))
	assert.Equal(t, user.RoleClient, created.Role)
	assert.NotContains(t, string(resp.Body), "password")

	resp, err = c.GET("/api/auth/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me user.User
	require.NoError(t, resp.DecodeData(&me))
	assert.Equal(t, "a@b.com", me.Email)
	assert.Equal(t, user.RoleClient, me.Role)

	resp, err = c.POST("/api/auth/register", map[string]string{"email": "A@b.com", "password": "secret1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"email already registered"}, resp.Errors())
}

func TestCreateTicketUsesFirstStatus(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")

	tk := createTicket(t, c, "X")
	assert.Equal(t, "X", tk.Title)
	assert.Equal(t, "Y", tk.Description)
	assert.Equal(t, "ToDo", tk.StatusName)
	assert.NotNil(t, tk.Tags)

	resp, err := c.POST("/api/tickets", map[string]string{"title": " ", "description": "Y"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"title and description are required"}, resp.Errors())
}

func TestAdminTagSyncThenClear(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	a := s.admin(t)
	tk := createTicket(t, c, "tag me")

	var tagIDs []uint
	for _, name := range []string{"urgent", "billing"} {
		resp, err := a.POST("/api/tags", map[string]string{"name": name})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var tg tag.Tag
		require.NoError(t, resp.DecodeData(&tg))
		tagIDs = append(tagIDs, tg.ID)
	}

	resp, err := a.PATCH(path("/api/tickets/:id", tk.ID), map[string]any{"tags": tagIDs})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	var updated ticket.Ticket
	require.NoError(t, resp.DecodeData(&updated))
	assert.Len(t, updated.Tags, 2)

	resp, err = a.PATCH(path("/api/tickets/:id", tk.ID), map[string]any{"tags": []uint{}})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.DecodeData(&updated))
	assert.Empty(t, updated.Tags)

	resp, err = c.GET(path("/api/tickets/:id", tk.ID))
	require.NoError(t, err)
	var seen ticket.Ticket
	require.NoError(t, resp.DecodeData(&seen))
	assert.Empty(t, seen.Tags)
}

func TestListOutsideDateRangeIsEmpty(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	createTicket(t, c, "today")

	body := listTickets(t, c, map[string]string{"dateFrom": "2000-01-01", "dateTo": "2000-01-31"})
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.EqualValues(t, 0, body.Meta.Total)
	assert.Equal(t, 1, body.Meta.Pages)

	resp, err := c.GET("/api/tickets", map[string]string{"dateFrom": "not-a-date"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"invalid dateFrom"}, resp.Errors())
}

func TestClientScopeAllStillOwnTickets(t *testing.T) {
	s := newServer(t, nil)
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")
	createTicket(t, alice, "alice ticket")
	createTicket(t, bob, "bob ticket")

	body := listTickets(t, alice, map[string]string{"scope": "all"})
	require.Len(t, body.Data, 1)
	assert.Equal(t, "alice ticket", body.Data[0].Title)

	body = listTickets(t, s.admin(t), map[string]string{"scope": "all"})
	assert.Len(t, body.Data, 2)
}

func TestEmptyReplyIsRejected(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	a := s.admin(t)
	tk := createTicket(t, c, "reply")

	resp, err := a.POST(path("/api/tickets/:id/reply", tk.ID), map[string]string{"message": "   "})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"message is required"}, resp.Errors())

	resp, err = a.POST(path("/api/tickets/:id/reply", tk.ID), map[string]string{"message": "Looking into it"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reply ticket.Reply
	require.NoError(t, resp.DecodeData(&reply))
	assert.Equal(t, adminEmail, reply.AdminEmail)
}

// --------------------- Auth and routing ---------------------
func TestLoginFailuresShareMessage(t *testing.T) {
	s := newServer(t, nil)
	s.register(t, "client@example.com")

	wrong, err := s.client().POST("/api/auth/login", map[string]string{"email": "client@example.com", "password": "nope123"})
	require.NoError(t, err)
	unknown, err := s.client().POST("/api/auth/login", map[string]string{"email": "ghost@example.com", "password": "secret1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, wrong.StatusCode)
	assert.Equal(t, wrong.StatusCode, unknown.StatusCode)
	assert.Equal(t, wrong.Errors(), unknown.Errors())
	assert.Equal(t, []string{"invalid credentials"}, wrong.Errors())
}

func TestLogoutEndsSession(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")

	resp, err := c.POST("/api/auth/logout", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"message":"logged out"}}`, string(resp.Body))
	assert.Nil(t, c.Cookie(config.SessionName))

	resp, err = c.GET("/api/auth/me")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":null}`, string(resp.Body))

	resp, err = c.GET("/api/tickets")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerTokenIsAccepted(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	token := c.Cookie(config.SessionName).Value

	resp, err := s.client().Do(testutils.Request{
		Method:  http.MethodGet,
		Path:    "/api/auth/me",
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	require.NoError(t, err)
	var me user.User
	require.NoError(t, resp.DecodeData(&me))
	assert.Equal(t, "client@example.com", me.Email)
}

func TestRoleGuards(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	a := s.admin(t)
	tk := createTicket(t, c, "guarded")

	tests := []struct {
		name   string
		client *testutils.HTTPClient
		req    testutils.Request
		status int
	}{
		{"anonymous list", s.client(), testutils.Request{Method: http.MethodGet, Path: "/api/tickets"}, http.StatusUnauthorized},
		{"admin cannot file tickets", a, testutils.Request{Method: http.MethodPost, Path: "/api/tickets", Body: map[string]string{"title": "a", "description": "b"}}, http.StatusForbidden},
		{"client cannot patch", c, testutils.Request{Method: http.MethodPatch, Path: path("/api/tickets/:id", tk.ID), Body: map[string]any{}}, http.StatusForbidden},
		{"client cannot reply", c, testutils.Request{Method: http.MethodPost, Path: path("/api/tickets/:id/reply", tk.ID), Body: map[string]string{"message": "hi"}}, http.StatusForbidden},
		{"client cannot read history", c, testutils.Request{Method: http.MethodGet, Path: path("/api/tickets/:id/history", tk.ID)}, http.StatusForbidden},
		{"client cannot create tags", c, testutils.Request{Method: http.MethodPost, Path: "/api/tags", Body: map[string]string{"name": "x"}}, http.StatusForbidden},
		{"client can list statuses", c, testutils.Request{Method: http.MethodGet, Path: "/api/statuses"}, http.StatusOK},
		{"invalid id", a, testutils.Request{Method: http.MethodGet, Path: "/api/tickets/abc"}, http.StatusUnprocessableEntity},
		{"missing ticket", a, testutils.Request{Method: http.MethodGet, Path: "/api/tickets/9999"}, http.StatusUnprocessableEntity},
		{"malformed json", a, testutils.Request{Method: http.MethodPatch, Path: path("/api/tickets/:id", tk.ID), Body: "{not json"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.client.Do(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode, string(resp.Body))
			if tt.status >= http.StatusBadRequest {
				assert.NotEmpty(t, resp.Errors())
			}
		})
	}
}

func TestOtherClientsTicketIsForbidden(t *testing.T) {
	s := newServer(t, nil)
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")
	tk := createTicket(t, alice, "private")

	resp, err := bob.GET(path("/api/tickets/:id", tk.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, []string{"forbidden"}, resp.Errors())
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s := newServer(t, nil)
	c := s.client()

	resp, err := c.GET("/api/nothing-here")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"errors":["not found"]}`, string(resp.Body))

	resp, err = c.DELETE("/api/tickets")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.JSONEq(t, `{"errors":["method not allowed"]}`, string(resp.Body))
}

func TestHistoryAndStatusFlow(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	a := s.admin(t)
	tk := createTicket(t, c, "flow")

	resp, err := a.GET("/api/statuses")
	require.NoError(t, err)
	var statuses []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, resp.DecodeData(&statuses))
	require.Len(t, statuses, 4)

	resp, err = a.PATCH(path("/api/tickets/:id", tk.ID), map[string]any{"status_id": statuses[3].ID})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := listTickets(t, a, map[string]string{"scope": "all", "status": "Done"})
	require.Len(t, body.Data, 1)
	byID := listTickets(t, a, map[string]string{"scope": "all", "status": itoa(statuses[3].ID)})
	assert.Equal(t, body.Meta, byID.Meta)

	resp, err = a.DELETE(path("/api/statuses/:id", statuses[3].ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"status is used by tickets"}, resp.Errors())

	resp, err = a.GET(path("/api/tickets/:id/history", tk.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []audit.AuditLog
	require.NoError(t, resp.DecodeData(&logs))
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionTicketStatusChanged, logs[0].Action)
	assert.Equal(t, audit.ActionTicketCreated, logs[1].Action)
}

// --------------------- Attachments ---------------------
type memStore struct {
	objects map[string][]byte
}

func (m *memStore) PutObject(_ context.Context, key, _ string, r io.Reader, _ int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStore) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.objects[key])), nil
}

func (m *memStore) RemoveObject(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func TestAttachmentUploadAndDownload(t *testing.T) {
	s := newServer(t, &memStore{objects: map[string][]byte{}})
	c := s.register(t, "client@example.com")
	tk := createTicket(t, c, "with file")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "trace.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("stack trace"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := c.Do(testutils.Request{
		Method:  http.MethodPost,
		Path:    path("/api/tickets/:id/attachments", tk.ID),
		Body:    &buf,
		Headers: map[string]string{"Content-Type": mw.FormDataContentType()},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var created struct {
		ID       uint   `json:"id"`
		FileName string `json:"file_name"`
	}
	require.NoError(t, resp.DecodeData(&created))
	assert.Equal(t, "trace.txt", created.FileName)

	resp, err = c.GET(path("/api/tickets/:id/attachments/", tk.ID) + itoa(created.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "stack trace", string(resp.Body))
	assert.Contains(t, resp.Headers.Get("Content-Disposition"), `filename="trace.txt"`)
}

func TestAttachmentsDisabled(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	tk := createTicket(t, c, "no storage")

	resp, err := c.GET(path("/api/tickets/:id/attachments", tk.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"attachments are disabled"}, resp.Errors())
}

// --------------------- Watch ---------------------
func TestWatchStreamsChanges(t *testing.T) {
	s := newServer(t, nil)
	c := s.register(t, "client@example.com")
	tk := createTicket(t, c, "watched")

	srv := httptest.NewServer(s.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path("/api/tickets/:id/watch", tk.ID)
	header := http.Header{}
	header.Set("Cookie", config.SessionName+"="+c.Cookie(config.SessionName).Value)

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var first struct {
		Data ticket.Ticket `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, tk.ID, first.Data.ID)
	assert.Empty(t, first.Data.Replies)

	admin, err := s.svc.Auth.Repos.User.GetUserByEmail(context.Background(), adminEmail)
	require.NoError(t, err)
	_, err = s.svc.TicketAdmin.AddReply(context.Background(), tk.ID, admin.ID, "on it")
	require.NoError(t, err)

	var next struct {
		Data ticket.Ticket `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&next))
	require.Len(t, next.Data.Replies, 1)
	assert.Equal(t, "on it", next.Data.Replies[0].Body)
}

func TestWatchRequiresAccess(t *testing.T) {
	s := newServer(t, nil)
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")
	tk := createTicket(t, alice, "private")

	resp, err := bob.GET(path("/api/tickets/:id/watch", tk.ID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
