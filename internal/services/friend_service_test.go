package services_test

import (
	"context"
	"testing"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSendFriendRequest_Success - заявка появляется только у получателя
func TestSendFriendRequest_Success(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	alice := store.seedUser("alice", models.UserRoleUser)
	bob := store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	err := svc.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.True(t, store.requestsOf(bob.ID)[alice.ID], "у Боба должна быть входящая заявка от Алисы")
	assert.Empty(t, store.requestsOf(alice.ID), "у отправителя заявка не хранится")
	assert.Empty(t, store.friendsOf(alice.ID), "заявка не делает пользователей друзьями")
	assert.Empty(t, store.friendsOf(bob.ID))
}

func TestSendFriendRequest_Duplicate(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	require.NoError(t, svc.SendFriendRequest(context.Background(), "alice", "bob"))

	err := svc.SendFriendRequest(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, appErrors.ErrAlreadyRequested)
}

func TestSendFriendRequest_UnknownUser(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	svc := services.NewFriendService(store)

	err := svc.SendFriendRequest(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)

	err = svc.SendFriendRequest(context.Background(), "ghost", "alice")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestSendFriendRequest_EmptyUsername(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	svc := services.NewFriendService(store)

	err := svc.SendFriendRequest(context.Background(), "", "alice")
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)

	err = svc.SendFriendRequest(context.Background(), "alice", "")
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)
}

// TestAddFriend_Symmetry - дружба записывается с обеих сторон одним действием
func TestAddFriend_Symmetry(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	alice := store.seedUser("alice", models.UserRoleUser)
	bob := store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	require.NoError(t, svc.AddFriend(context.Background(), "alice", "bob"))

	assert.True(t, store.friendsOf(alice.ID)[bob.ID])
	assert.True(t, store.friendsOf(bob.ID)[alice.ID])
}

// TestAddFriend_ResolvesRequest - принятие гасит встречную заявку
func TestAddFriend_ResolvesRequest(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	alice := store.seedUser("alice", models.UserRoleUser)
	bob := store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	// Алиса просится к Бобу, Боб принимает
	require.NoError(t, svc.SendFriendRequest(context.Background(), "alice", "bob"))
	require.NoError(t, svc.AddFriend(context.Background(), "bob", "alice"))

	assert.True(t, store.friendsOf(alice.ID)[bob.ID])
	assert.True(t, store.friendsOf(bob.ID)[alice.ID])
	assert.Empty(t, store.requestsOf(bob.ID), "принятая заявка должна быть снята")
}

func TestAddFriend_AlreadyFriends(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	require.NoError(t, svc.AddFriend(context.Background(), "alice", "bob"))

	err := svc.AddFriend(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, appErrors.ErrAlreadyFriends)

	// Проверка работает и с другой стороны
	err = svc.AddFriend(context.Background(), "bob", "alice")
	assert.ErrorIs(t, err, appErrors.ErrAlreadyFriends)
}

func TestRemoveFriend_Symmetry(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	alice := store.seedUser("alice", models.UserRoleUser)
	bob := store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	require.NoError(t, svc.AddFriend(context.Background(), "alice", "bob"))
	require.NoError(t, svc.RemoveFriend(context.Background(), "bob", "alice"))

	assert.Empty(t, store.friendsOf(alice.ID))
	assert.Empty(t, store.friendsOf(bob.ID))
}

func TestRemoveFriend_NotFriends(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	store.seedUser("bob", models.UserRoleUser)
	svc := services.NewFriendService(store)

	err := svc.RemoveFriend(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, appErrors.ErrNotFriends)
}

// TestFriendGraph_SymmetryAfterSequence - после любой цепочки операций
// граф остается симметричным: A в друзьях B <=> B в друзьях A
func TestFriendGraph_SymmetryAfterSequence(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	names := []string{"alice", "bob", "carol", "dave"}
	for _, name := range names {
		store.seedUser(name, models.UserRoleUser)
	}
	svc := services.NewFriendService(store)
	ctx := context.Background()

	steps := []func() error{
		func() error { return svc.SendFriendRequest(ctx, "alice", "bob") },
		func() error { return svc.AddFriend(ctx, "bob", "alice") },
		func() error { return svc.AddFriend(ctx, "carol", "alice") },
		func() error { return svc.SendFriendRequest(ctx, "dave", "bob") },
		func() error { return svc.RemoveFriend(ctx, "alice", "bob") },
		func() error { return svc.AddFriend(ctx, "dave", "carol") },
		func() error { return svc.RemoveFriend(ctx, "alice", "carol") },
		func() error { return svc.AddFriend(ctx, "bob", "dave") },
	}
	for i, step := range steps {
		require.NoError(t, step(), "шаг %d", i)

		for _, rec := range store.users {
			for friendID := range rec.friendIDs {
				assert.True(t, store.friendsOf(friendID)[rec.user.ID],
					"шаг %d: дружба %d-%d записана только с одной стороны", i, rec.user.ID, friendID)
			}
		}
	}
}

func TestGetFriends_EmptyListIsNotNil(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	svc := services.NewFriendService(store)

	friends, err := svc.GetFriends(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)

	requests, err := svc.GetFriendRequests(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Empty(t, requests)
}

func TestGetFriends_Listing(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.seedUser("alice", models.UserRoleUser)
	store.seedUser("bob", models.UserRoleUser)
	store.seedUser("carol", models.UserRoleUser)
	svc := services.NewFriendService(store)
	ctx := context.Background()

	require.NoError(t, svc.AddFriend(ctx, "alice", "bob"))
	require.NoError(t, svc.SendFriendRequest(ctx, "carol", "alice"))

	friends, err := svc.GetFriends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)

	requests, err := svc.GetFriendRequests(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "carol", requests[0].Username)
}

func TestGetFriends_Errors(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	svc := services.NewFriendService(store)

	_, err := svc.GetFriends(context.Background(), "")
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)

	_, err = svc.GetFriends(context.Background(), "ghost")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)

	_, err = svc.GetFriendRequests(context.Background(), "")
	assert.ErrorIs(t, err, appErrors.ErrInvalidArgument)
}
