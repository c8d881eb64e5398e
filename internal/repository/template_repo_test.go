package repository

import (
	"testing"

	"go-platform-admin-ws/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepoScopesByPlatform(t *testing.T) {
	db := openTestDB(t)
	repo := NewTemplateRepo(db)

	platformA := uuid.New()
	platformB := uuid.New()

	require.NoError(t, repo.Create(&model.FlowTemplate{PlatformID: platformA, Name: "Slack Digest", Flow: `{}`}))
	require.NoError(t, repo.Create(&model.FlowTemplate{PlatformID: platformB, Name: "Sheets Sync", Flow: `{}`}))

	templates, err := repo.FindAllByPlatform(platformA)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, "Slack Digest", templates[0].Name)
}

func TestTemplateRepoDeleteReportsRowsAffected(t *testing.T) {
	db := openTestDB(t)
	repo := NewTemplateRepo(db)

	platformID := uuid.New()
	template := &model.FlowTemplate{PlatformID: platformID, Name: "Slack Digest", Flow: `{}`}
	require.NoError(t, repo.Create(template))

	affected, err := repo.Delete(uuid.New(), template.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, affected)

	affected, err = repo.Delete(platformID, template.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}
