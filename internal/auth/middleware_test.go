package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

type rejection struct {
	check  string
	status int
}

type fakeRecorder struct {
	rejections []rejection
}

func (f *fakeRecorder) RecordAuthRejection(check string, status int) {
	f.rejections = append(f.rejections, rejection{check: check, status: status})
}

type errorBody struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type identityBody struct {
	Subject  string `json:"subject"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Company  string `json:"company"`
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(errorBody{Status: de.HTTPStatus, Title: de.Title, Message: de.Message})
		},
	})
}

func echoIdentity(c *fiber.Ctx) error {
	var body identityBody
	if claims, ok := ClaimsFromContext(c); ok {
		body.Subject = string(claims.Identity.Subject())
		body.ID = claims.Identity.ID()
	}
	body.Username, _ = UsernameFromContext(c)
	body.Company, _ = CompanyFromContext(c)
	return c.JSON(body)
}

func doRequest(t *testing.T, app *fiber.App, target, token string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func newAuthorizer(recorder RejectionRecorder) (*Authorizer, *TokenManager) {
	tm := NewTokenManager(testSecret, 60)
	return NewAuthorizer(tm, zap.NewNop(), recorder), tm
}

func mustIssue(t *testing.T, issue func(string) (string, time.Time, error), id string) string {
	t.Helper()
	token, _, err := issue(id)
	require.NoError(t, err)
	return token
}

func routes(a *Authorizer) *fiber.App {
	app := newTestApp()
	app.Get("/any", a.RequireAuthorization(), echoIdentity)
	app.Get("/user", a.RequireUserAuthorization(), echoIdentity)
	app.Get("/company", a.RequireCompanyAuthorization(), echoIdentity)
	app.Get("/users/:username", a.RequireCorrectUser("username"), echoIdentity)
	app.Get("/companies/:handle", a.RequireCorrectCompany("handle"), echoIdentity)
	return app
}

// ---- Tests ----

func TestRequireAuthorization_AttachesExactClaims(t *testing.T) {
	a, tm := newAuthorizer(nil)
	token, exp, err := tm.IssueUserToken("alice")
	require.NoError(t, err)

	var captured Claims
	app := newTestApp()
	app.Get("/any", a.RequireAuthorization(), func(c *fiber.Ctx) error {
		var ok bool
		captured, ok = ClaimsFromContext(c)
		assert.True(t, ok)
		return c.SendStatus(http.StatusOK)
	})

	resp, _ := doRequest(t, app, "/any", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, UserIdentity{Username: "alice"}, captured.Identity)
	assert.True(t, exp.Truncate(time.Second).Equal(captured.ExpiresAt))
}

func TestRequireAuthorization_AcceptsBothRoles(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)

	resp, body := doRequest(t, app, "/any", mustIssue(t, tm.IssueCompanyToken, "acme"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got identityBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "COMPANY", got.Subject)
	assert.Equal(t, "acme", got.ID)
	assert.Empty(t, got.Company, "generic check must not set role annotations")
}

func TestAuthorizer_RejectsBadTokens(t *testing.T) {
	past := NewTokenManager(testSecret, 1)
	past.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	badTokens := map[string]func(t *testing.T) string{
		"missing": func(t *testing.T) string { return "" },
		"malformed": func(t *testing.T) string {
			return "abc.def.ghi"
		},
		"expired": func(t *testing.T) string {
			return mustIssue(t, past.IssueUserToken, "alice")
		},
		"foreign secret": func(t *testing.T) string {
			return mustIssue(t, NewTokenManager("someone-else", 60).IssueUserToken, "alice")
		},
	}

	targets := []struct {
		name    string
		path    string
		status  int
		title   string
		message string
	}{
		{"authorization", "/any", http.StatusUnauthorized, "Unauthorized", MsgAuthenticationRequired},
		{"user", "/user", http.StatusUnauthorized, "Unauthorized", MsgUsersOnly},
		{"company", "/company", http.StatusUnauthorized, "Unauthorized", MsgCompaniesOnly},
		{"correct user", "/users/alice", http.StatusForbidden, "Forbidden", MsgNotAllowed},
		{"correct company", "/companies/acme", http.StatusForbidden, "Forbidden", MsgNotAllowed},
	}

	for tokenName, makeToken := range badTokens {
		for _, target := range targets {
			t.Run(tokenName+"/"+target.name, func(t *testing.T) {
				recorder := &fakeRecorder{}
				a, _ := newAuthorizer(recorder)
				app := routes(a)

				resp, body := doRequest(t, app, target.path, makeToken(t))
				require.Equal(t, target.status, resp.StatusCode)

				var got errorBody
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, target.status, got.Status)
				assert.Equal(t, target.title, got.Title)
				assert.Equal(t, target.message, got.Message)

				require.Len(t, recorder.rejections, 1)
				assert.Equal(t, target.status, recorder.rejections[0].status)
			})
		}
	}
}

func TestRequireUserAuthorization(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)

	resp, body := doRequest(t, app, "/user", mustIssue(t, tm.IssueUserToken, "alice"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got identityBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, got.Company)

	resp, body = doRequest(t, app, "/user", mustIssue(t, tm.IssueCompanyToken, "acme"))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errGot errorBody
	require.NoError(t, json.Unmarshal(body, &errGot))
	assert.Equal(t, MsgUsersOnly, errGot.Message)
}

func TestRequireCompanyAuthorization(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)

	resp, body := doRequest(t, app, "/company", mustIssue(t, tm.IssueCompanyToken, "acme"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got identityBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "acme", got.Company)
	assert.Empty(t, got.Username)

	resp, body = doRequest(t, app, "/company", mustIssue(t, tm.IssueUserToken, "alice"))
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errGot errorBody
	require.NoError(t, json.Unmarshal(body, &errGot))
	assert.Equal(t, "Only companies can access this resource.", errGot.Message)
}

func TestRequireCorrectUser(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)
	alice := mustIssue(t, tm.IssueUserToken, "alice")

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "owner", path: "/users/alice", token: alice, status: http.StatusOK},
		{name: "other user", path: "/users/bob", token: alice, status: http.StatusForbidden},
		{name: "case differs", path: "/users/Alice", token: alice, status: http.StatusForbidden},
		{name: "prefix only", path: "/users/alic", token: alice, status: http.StatusForbidden},
		{name: "company token with same name", path: "/users/alice", token: mustIssue(t, tm.IssueCompanyToken, "alice"), status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doRequest(t, app, tt.path, tt.token)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireCorrectCompany(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)
	acme := mustIssue(t, tm.IssueCompanyToken, "acme")

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "owner", path: "/companies/acme", token: acme, status: http.StatusOK},
		{name: "other company", path: "/companies/globex", token: acme, status: http.StatusForbidden},
		{name: "user token with same name", path: "/companies/acme", token: mustIssue(t, tm.IssueUserToken, "acme"), status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doRequest(t, app, tt.path, tt.token)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestCompanyRoundTrip(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)

	resp, body := doRequest(t, app, "/company", mustIssue(t, tm.IssueCompanyToken, "acme"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got identityBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "acme", got.Company)
}

func TestStackedChecksAreIdempotent(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := newTestApp()
	app.Get("/twice", a.RequireUserAuthorization(), a.RequireUserAuthorization(), echoIdentity)

	user := mustIssue(t, tm.IssueUserToken, "alice")
	company := mustIssue(t, tm.IssueCompanyToken, "acme")

	for i := 0; i < 2; i++ {
		resp, _ := doRequest(t, app, "/twice", user)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doRequest(t, app, "/twice", company)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestBearerPrefixIsTolerated(t *testing.T) {
	a, tm := newAuthorizer(nil)
	app := routes(a)

	resp, _ := doRequest(t, app, "/any", "Bearer "+mustIssue(t, tm.IssueUserToken, "alice"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: "raw.token.value", want: "raw.token.value"},
		{header: "  raw.token.value ", want: "raw.token.value"},
		{header: "Bearer raw.token.value", want: "raw.token.value"},
		{header: "bearer raw.token.value", want: "raw.token.value"},
		{header: "Bearer", want: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenFromHeader(tt.header))
		})
	}
}

func TestContextAccessors_EmptyWithoutMiddleware(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := ClaimsFromContext(c)
		assert.False(t, ok)
		_, ok = UsernameFromContext(c)
		assert.False(t, ok)
		_, ok = CompanyFromContext(c)
		assert.False(t, ok)
		return c.SendStatus(http.StatusNoContent)
	})

	resp, _ := doRequest(t, app, "/", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
