package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-platform-admin-ws/internal/middleware"
	"go-platform-admin-ws/internal/model"
	"go-platform-admin-ws/internal/repository"
	"go-platform-admin-ws/internal/service"
	"go-platform-admin-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Platform{}, &model.ProjectRole{}, &model.FlowTemplate{}))

	roleService := service.NewRoleService(repository.NewRoleRepo(db), nil)
	roleHandler := NewRoleHandler(roleService)

	app := fiber.New()
	api := app.Group("/api/v1", middleware.RequireAuth())
	api.Get("/project-roles", roleHandler.GetRoles)
	api.Post("/project-roles", roleHandler.CreateRole)
	api.Post("/project-roles/:id", roleHandler.UpdateRole)
	api.Delete("/project-roles/:id", roleHandler.DeleteRole)
	return app
}

func authToken(t *testing.T, platformID uuid.UUID) string {
	t.Helper()
	token, err := jwt.GenerateToken(uuid.New(), platformID, "admin@example.com")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeRole(t *testing.T, resp *http.Response) model.ProjectRole {
	t.Helper()
	var role model.ProjectRole
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&role))
	return role
}

func TestRoleRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/project-roles", "", nil)
	require.Equal(t, 401, resp.StatusCode)
}

func TestRoleLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	platformID := uuid.New()
	token := authToken(t, platformID)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/v1/project-roles", token, fiber.Map{
		"name":        "Viewer",
		"permissions": []string{model.PermissionReadFlow},
	})
	require.Equal(t, 201, resp.StatusCode)
	created := decodeRole(t, resp)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, platformID, created.PlatformID)

	// Update by id
	resp = doJSON(t, app, http.MethodPost, "/api/v1/project-roles/"+created.ID.String(), token, fiber.Map{
		"name": "Viewer2",
	})
	require.Equal(t, 200, resp.StatusCode)
	updated := decodeRole(t, resp)
	require.Equal(t, "Viewer2", updated.Name)
	require.Equal(t, []string{model.PermissionReadFlow}, updated.Permissions)

	// List reflects the patch
	resp = doJSON(t, app, http.MethodGet, "/api/v1/project-roles", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	var roles []model.ProjectRole
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roles))
	require.Len(t, roles, 1)
	require.Equal(t, "Viewer2", roles[0].Name)

	// Delete
	resp = doJSON(t, app, http.MethodDelete, "/api/v1/project-roles/"+created.ID.String(), token, nil)
	require.Equal(t, 204, resp.StatusCode)

	// Gone from the listing, repeated delete is a 404
	resp = doJSON(t, app, http.MethodGet, "/api/v1/project-roles", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	roles = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roles))
	require.Empty(t, roles)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/project-roles/"+created.ID.String(), token, nil)
	require.Equal(t, 404, resp.StatusCode)
}

func TestRoleListIsTenantScoped(t *testing.T) {
	app := newTestApp(t)
	platformA := uuid.New()
	platformB := uuid.New()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/project-roles", authToken(t, platformA), fiber.Map{
		"name":        "A Only",
		"permissions": []string{},
	})
	require.Equal(t, 201, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/project-roles", authToken(t, platformB), nil)
	require.Equal(t, 200, resp.StatusCode)
	var roles []model.ProjectRole
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roles))
	require.Empty(t, roles)
}

func TestCreateRoleValidation(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, uuid.New())

	resp := doJSON(t, app, http.MethodPost, "/api/v1/project-roles", token, fiber.Map{
		"permissions": []string{},
	})
	require.Equal(t, 400, resp.StatusCode)
}

func TestUpdateRoleRejectsBadID(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, uuid.New())

	resp := doJSON(t, app, http.MethodPost, "/api/v1/project-roles/not-a-uuid", token, fiber.Map{
		"name": "X",
	})
	require.Equal(t, 400, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/project-roles/%s", uuid.New()), token, fiber.Map{
		"name": "X",
	})
	require.Equal(t, 404, resp.StatusCode)
}
