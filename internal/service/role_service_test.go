package service

import (
	"testing"

	"go-platform-admin-ws/internal/model"
	"go-platform-admin-ws/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Platform{}, &model.ProjectRole{}, &model.FlowTemplate{}))
	return db
}

func newRoleService(t *testing.T) RoleService {
	t.Helper()
	return NewRoleService(repository.NewRoleRepo(openTestDB(t)), nil)
}

func TestCreateThenListIncludesRoleOnce(t *testing.T) {
	svc := newRoleService(t)
	platformID := uuid.New()

	created, err := svc.Create(platformID, &CreateRoleRequest{
		Name:        "Viewer",
		Permissions: []string{model.PermissionReadFlow},
	}, "tester")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	roles, err := svc.List(platformID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, created.ID, roles[0].ID)

	second, err := svc.Create(platformID, &CreateRoleRequest{
		Name:        "Editor",
		Permissions: []string{model.PermissionReadFlow, model.PermissionWriteFlow},
	}, "tester")
	require.NoError(t, err)
	require.NotEqual(t, created.ID, second.ID)
}

func TestListNeverLeaksForeignTenantRoles(t *testing.T) {
	svc := newRoleService(t)
	platformA := uuid.New()
	platformB := uuid.New()

	_, err := svc.Create(platformA, &CreateRoleRequest{Name: "A Role", Permissions: []string{}}, "tester")
	require.NoError(t, err)
	_, err = svc.Create(platformB, &CreateRoleRequest{Name: "B Role", Permissions: []string{}}, "tester")
	require.NoError(t, err)

	roles, err := svc.List(platformA)
	require.NoError(t, err)
	for _, role := range roles {
		require.Equal(t, platformA, role.PlatformID)
	}
	require.Len(t, roles, 1)
}

func TestListReturnsEmptySliceForUnknownPlatform(t *testing.T) {
	svc := newRoleService(t)

	roles, err := svc.List(uuid.New())
	require.NoError(t, err)
	require.NotNil(t, roles)
	require.Empty(t, roles)
}

func TestCreateRejectsMissingName(t *testing.T) {
	svc := newRoleService(t)

	_, err := svc.Create(uuid.New(), &CreateRoleRequest{Permissions: []string{}}, "tester")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc := newRoleService(t)
	platformID := uuid.New()

	created, err := svc.Create(platformID, &CreateRoleRequest{
		Name:        "Viewer",
		Permissions: []string{model.PermissionReadFlow},
	}, "tester")
	require.NoError(t, err)

	newName := "Viewer2"
	updated, err := svc.Update(platformID, created.ID, &UpdateRoleRequest{Name: &newName}, "tester")
	require.NoError(t, err)
	require.Equal(t, "Viewer2", updated.Name)
	// Permissions were not part of the patch and must be untouched
	require.Equal(t, []string{model.PermissionReadFlow}, updated.Permissions)

	newPermissions := []string{model.PermissionReadFlow, model.PermissionReadRun}
	updated, err = svc.Update(platformID, created.ID, &UpdateRoleRequest{Permissions: &newPermissions}, "tester")
	require.NoError(t, err)
	require.Equal(t, "Viewer2", updated.Name)
	require.Equal(t, newPermissions, updated.Permissions)

	roles, err := svc.List(platformID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, "Viewer2", roles[0].Name)
}

func TestUpdateUnknownRoleReturnsNotFound(t *testing.T) {
	svc := newRoleService(t)

	name := "Anything"
	_, err := svc.Update(uuid.New(), uuid.New(), &UpdateRoleRequest{Name: &name}, "tester")
	require.ErrorIs(t, err, ErrRoleNotFound)
}

func TestUpdateRejectsForeignPlatform(t *testing.T) {
	svc := newRoleService(t)
	platformA := uuid.New()

	created, err := svc.Create(platformA, &CreateRoleRequest{Name: "Viewer", Permissions: []string{}}, "tester")
	require.NoError(t, err)

	name := "Hijacked"
	_, err = svc.Update(uuid.New(), created.ID, &UpdateRoleRequest{Name: &name}, "tester")
	require.ErrorIs(t, err, ErrRoleNotFound)
}

func TestDeleteRemovesRoleAndRepeatsNotFound(t *testing.T) {
	svc := newRoleService(t)
	platformID := uuid.New()

	created, err := svc.Create(platformID, &CreateRoleRequest{Name: "Viewer", Permissions: []string{}}, "tester")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(platformID, created.ID))

	roles, err := svc.List(platformID)
	require.NoError(t, err)
	require.Empty(t, roles)

	// Deleting again fails the same way every time
	require.ErrorIs(t, svc.Delete(platformID, created.ID), ErrRoleNotFound)
	require.ErrorIs(t, svc.Delete(platformID, created.ID), ErrRoleNotFound)
}
