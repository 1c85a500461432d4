package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) repository.ReminderRepository {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return NewReminderRepository(db)
}

func TestReminderCreateAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &entity.Reminder{NewsID: 3, RequesterID: 5})
	require.NoError(t, err)
	require.NotZero(t, id)

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint(3), found.NewsID)
	assert.Equal(t, uint(5), found.RequesterID)
	assert.Nil(t, found.SchedulerHandle)
	assert.False(t, found.Scheduled())
}

func TestReminderFindByNewsAndRequesterReturnsOldest(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, &entity.Reminder{NewsID: 3, RequesterID: 5})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Reminder{NewsID: 3, RequesterID: 5})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Reminder{NewsID: 3, RequesterID: 6})
	require.NoError(t, err)

	found, err := repo.FindByNewsAndRequester(ctx, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, first, found.ID, "duplicates resolve to the oldest row")
}

func TestReminderFindByNewsAndRequesterMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByNewsAndRequester(context.Background(), 99, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReminderAttachHandleOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &entity.Reminder{NewsID: 1, RequesterID: 2})
	require.NoError(t, err)

	require.NoError(t, repo.AttachHandle(ctx, id, "first-handle"))
	require.NoError(t, repo.AttachHandle(ctx, id, "second-handle"))

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found.Scheduled())
	assert.Equal(t, "second-handle", *found.SchedulerHandle)
}

func TestReminderDeleteMissingIsNoop(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 4242))

	id, err := repo.Create(ctx, &entity.Reminder{NewsID: 1, RequesterID: 2})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReminderFindAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := repo.Create(ctx, &entity.Reminder{NewsID: uint(i), RequesterID: 1})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
