package repositories

import (
	"testing"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationReadTracking(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLNotificationRepository(db)
	alice := testutil.CreateUser(t, db, "alice@x.com", models.RoleRegistered, "")
	bob := testutil.CreateUser(t, db, "bob@x.com", models.RoleRegistered, "")
	eve := testutil.CreateUser(t, db, "eve@x.com", models.RoleRegistered, "")

	n := &models.Notification{Title: "Hello", Message: "World"}
	require.NoError(t, repo.CreateNotification(n, []uint{alice.ID, bob.ID, alice.ID}))
	assert.Equal(t, models.NotificationSystem, n.NotificationType)

	var recipients int64
	db.Model(&models.NotificationRecipient{}).Where("notification_id = ?", n.ID).Count(&recipients)
	assert.EqualValues(t, 2, recipients)

	assert.ErrorIs(t, repo.MarkAsRead(n.ID, eve.ID), gorm.ErrRecordNotFound)

	require.NoError(t, repo.MarkAsRead(n.ID, alice.ID))
	require.NoError(t, repo.MarkAsRead(n.ID, alice.ID))
	reads, err := repo.CountReads(n.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, reads)

	got, err := repo.GetForRecipient(n.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	got, err = repo.GetForRecipient(n.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)

	unread, err := repo.GetUnreadCount(bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)
	unread, err = repo.GetUnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestNotificationListingAndMarkAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLNotificationRepository(db)
	user := testutil.CreateUser(t, db, "u@x.com", models.RoleRegistered, "")
	other := testutil.CreateUser(t, db, "o@x.com", models.RoleRegistered, "")

	first := &models.Notification{Title: "first"}
	second := &models.Notification{Title: "second"}
	require.NoError(t, repo.CreateNotification(first, []uint{user.ID}))
	require.NoError(t, repo.CreateNotification(second, []uint{user.ID}))
	require.NoError(t, repo.CreateNotification(&models.Notification{Title: "not mine"}, []uint{other.ID}))
	require.NoError(t, repo.MarkAsRead(first.ID, user.ID))

	all, total, err := repo.GetByRecipientID(user.ID, false, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Title)
	assert.False(t, all[0].IsRead)
	assert.True(t, all[1].IsRead)

	unread, total, err := repo.GetByRecipientID(user.ID, true, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID, unread[0].ID)

	require.NoError(t, repo.MarkAllAsRead(user.ID))
	require.NoError(t, repo.MarkAllAsRead(user.ID))
	count, err := repo.GetUnreadCount(user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.GetUnreadCount(other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
