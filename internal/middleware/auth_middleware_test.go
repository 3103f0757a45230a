package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
	"github.com/intervue/platform-api/internal/util"
)

type fakeUserLoader struct {
	users map[string]*model.User
}

func (f *fakeUserLoader) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type gateFixture struct {
	app   *fiber.App
	store *service.SessionStore
	users *fakeUserLoader
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := service.NewSessionStore(rdb, 0)
	users := &fakeUserLoader{users: map[string]*model.User{}}

	app := fiber.New(fiber.Config{ErrorHandler: util.ErrorHandler})
	app.Use(Sessions(store, users))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/dashboard", RequireRoles(
		model.RoleAdmin, model.RoleClient, model.RoleClientCoordinator, model.RoleSuperCoordinator,
	), ok)
	app.Get("/dashboard/admin/companies", RequireRoles(model.RoleAdmin, model.RoleSuperCoordinator), ok)
	app.Get("/organization", RequireRoles(model.RoleClient, model.RoleClientCoordinator), ok)
	app.Get("/interviewer", RequireRoles(model.RoleInterviewer), ok)
	app.Get("/candidate", RequireRoles(model.RoleCandidate), ok)
	app.Get("/me", RequireRoles(), func(c *fiber.Ctx) error {
		actor, _ := ActorFromCtx(c)
		return c.SendString(string(actor.Role))
	})

	return &gateFixture{app: app, store: store, users: users}
}

// login seeds a user row and a live session, returning the bearer token.
func (f *gateFixture) login(t *testing.T, rawRole string) string {
	t.Helper()
	id := uuid.New()
	f.users.users[id.String()] = &model.User{
		ID:       id,
		FullName: "Test Actor",
		Email:    id.String() + "@example.com",
		Role:     model.Role(rawRole),
	}
	token, err := f.store.Create(context.Background(), id.String())
	require.NoError(t, err)
	return token
}

func (f *gateFixture) get(t *testing.T, path, token string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestGateGuestIsRedirectedToLogin(t *testing.T) {
	f := newGateFixture(t)

	resp, body := f.get(t, "/dashboard", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", gjson.GetBytes(body, "code").String())
	assert.Equal(t, "/login", gjson.GetBytes(body, "meta.login_url").String())
	assert.Equal(t, "/dashboard", gjson.GetBytes(body, "meta.from").String())
}

func TestGateInvalidTokenIsGuest(t *testing.T) {
	f := newGateFixture(t)

	resp, body := f.get(t, "/dashboard", "not-a-real-token")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", gjson.GetBytes(body, "code").String())
}

func TestGateWrongRoleIsForbidden(t *testing.T) {
	f := newGateFixture(t)
	token := f.login(t, "interviewer")

	resp, body := f.get(t, "/dashboard", token)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTHORIZATION_DENIED", gjson.GetBytes(body, "code").String())
	assert.Equal(t, "/unauthorized", gjson.GetBytes(body, "meta.redirect_to").String())
}

func TestGateRoleRouteMatrix(t *testing.T) {
	routes := []string{"/dashboard", "/dashboard/admin/companies", "/organization", "/interviewer", "/candidate"}
	allowed := map[string]map[string]bool{
		"admin":              {"/dashboard": true, "/dashboard/admin/companies": true},
		"super_coordinator":  {"/dashboard": true, "/dashboard/admin/companies": true},
		"client":             {"/dashboard": true, "/organization": true},
		"client_coordinator": {"/dashboard": true, "/organization": true},
		"interviewer":        {"/interviewer": true},
		"candidate":          {"/candidate": true},
		"accountant":         {},
	}

	for role, routesAllowed := range allowed {
		t.Run(role, func(t *testing.T) {
			f := newGateFixture(t)
			token := f.login(t, role)
			for _, route := range routes {
				resp, _ := f.get(t, route, token)
				want := fiber.StatusForbidden
				if routesAllowed[route] {
					want = fiber.StatusOK
				}
				assert.Equal(t, want, resp.StatusCode, "role %s on %s", role, route)
			}
		})
	}
}

func TestGateCanonicalizesLegacyRole(t *testing.T) {
	f := newGateFixture(t)
	token := f.login(t, "interviewee")

	resp, _ := f.get(t, "/candidate", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := f.get(t, "/me", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "candidate", string(body))
}

func TestGateUnknownStoredRoleDegradesToGuest(t *testing.T) {
	f := newGateFixture(t)
	token := f.login(t, "superuser")

	resp, body := f.get(t, "/dashboard", token)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTHENTICATION_REQUIRED", gjson.GetBytes(body, "code").String())
}

func TestGateEmptyRequiredSetAdmitsAnyActor(t *testing.T) {
	f := newGateFixture(t)
	token := f.login(t, "accountant")

	resp, body := f.get(t, "/me", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "accountant", string(body))

	resp, _ = f.get(t, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// A session whose user row vanished must not authenticate.
func TestGateDanglingSessionIsGuest(t *testing.T) {
	f := newGateFixture(t)
	token := f.login(t, "admin")
	f.users.users = map[string]*model.User{}

	resp, _ := f.get(t, "/dashboard", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
