package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/application/subscription/dto"
	"litreview/internal/application/testutil"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

func TestApplySubscriptionUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(s *testutil.Store, alice, bob uint)
		cmd         func(alice, bob uint) ApplySubscriptionCommand
		wantStatus  dto.Status
		wantSuccess bool
		wantMessage string
		wantFollows int
	}{
		{
			name: "subscribe",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: bob, Action: ActionSubscribe}
			},
			wantStatus:  dto.StatusSubscribed,
			wantSuccess: true,
			wantMessage: "You are now following bob!",
			wantFollows: 1,
		},
		{
			name: "subscribe by username",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUsername: "bob", Action: ActionSubscribe}
			},
			wantStatus:  dto.StatusSubscribed,
			wantSuccess: true,
			wantMessage: "You are now following bob!",
			wantFollows: 1,
		},
		{
			name: "subscribe twice",
			setup: func(s *testutil.Store, alice, bob uint) {
				s.AddFollow(t, alice, bob)
			},
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: bob, Action: ActionSubscribe}
			},
			wantStatus:  dto.StatusAlreadyFollowing,
			wantMessage: "Already following bob!",
			wantFollows: 1,
		},
		{
			name: "subscribe to self",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: alice, Action: ActionSubscribe}
			},
			wantStatus:  dto.StatusSelfReference,
			wantMessage: "You can't subscribe to yourself!",
		},
		{
			name: "unsubscribe from self",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: alice, Action: ActionUnsubscribe}
			},
			wantStatus:  dto.StatusSelfReference,
			wantMessage: "You can't unsubscribe from yourself!",
		},
		{
			name: "unknown user",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: 999, Action: ActionSubscribe}
			},
			wantStatus:  dto.StatusUserNotFound,
			wantMessage: "User does not exist",
		},
		{
			name: "unknown username",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUsername: "nobody", Action: ActionUnsubscribe}
			},
			wantStatus:  dto.StatusUserNotFound,
			wantMessage: "User does not exist",
		},
		{
			name: "unsubscribe",
			setup: func(s *testutil.Store, alice, bob uint) {
				s.AddFollow(t, alice, bob)
				s.AddFollow(t, bob, alice)
			},
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: bob, Action: ActionUnsubscribe}
			},
			wantStatus:  dto.StatusUnsubscribed,
			wantSuccess: true,
			wantMessage: "You are no longer following bob.",
			wantFollows: 1,
		},
		{
			name: "unsubscribe when not following",
			setup: func(s *testutil.Store, alice, bob uint) {
				s.AddFollow(t, bob, alice)
			},
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: bob, Action: ActionUnsubscribe}
			},
			wantStatus:  dto.StatusNotFollowing,
			wantMessage: "You were not following bob!",
			wantFollows: 1,
		},
		{
			name: "invalid action",
			cmd: func(alice, bob uint) ApplySubscriptionCommand {
				return ApplySubscriptionCommand{ActorID: alice, TargetUserID: bob, Action: "block"}
			},
			wantStatus:  dto.StatusInvalidAction,
			wantMessage: "Unknown action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewStore()
			alice := store.AddUser(t, "alice")
			bob := store.AddUser(t, "bob")
			if tt.setup != nil {
				tt.setup(store, alice.ID(), bob.ID())
			}
			uc := NewApplySubscriptionUseCase(store.Users(), store.Follows(), store, logger.NewNopLogger())

			result, err := uc.Execute(context.Background(), tt.cmd(alice.ID(), bob.ID()))

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			_, _, _, follows := store.Counts()
			assert.Equal(t, tt.wantFollows, follows)
		})
	}
}

func TestApplySubscriptionUseCase_FailureKinds(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	bob := store.AddUser(t, "bob")
	uc := NewApplySubscriptionUseCase(store.Users(), store.Follows(), store, logger.NewNopLogger())
	ctx := context.Background()

	self, err := uc.Execute(ctx, ApplySubscriptionCommand{ActorID: alice.ID(), TargetUserID: alice.ID(), Action: ActionSubscribe})
	require.NoError(t, err)
	assert.True(t, errors.IsSelfReferenceError(self.Failure))
	assert.Equal(t, self.Message, errors.GetAppError(self.Failure).Message)

	missing, err := uc.Execute(ctx, ApplySubscriptionCommand{ActorID: alice.ID(), TargetUsername: "nobody", Action: ActionSubscribe})
	require.NoError(t, err)
	assert.True(t, errors.IsNotFoundError(missing.Failure))

	invalid, err := uc.Execute(ctx, ApplySubscriptionCommand{ActorID: alice.ID(), TargetUserID: bob.ID(), Action: "block"})
	require.NoError(t, err)
	require.NotNil(t, errors.GetAppError(invalid.Failure))
	assert.Equal(t, errors.ErrorTypeBadRequest, errors.GetAppError(invalid.Failure).Type)

	ok, err := uc.Execute(ctx, ApplySubscriptionCommand{ActorID: alice.ID(), TargetUserID: bob.ID(), Action: ActionSubscribe})
	require.NoError(t, err)
	assert.NoError(t, ok.Failure)

	again, err := uc.Execute(ctx, ApplySubscriptionCommand{ActorID: alice.ID(), TargetUserID: bob.ID(), Action: ActionSubscribe})
	require.NoError(t, err)
	assert.True(t, errors.IsConflictError(again.Failure))
}

// racingFollows hides existing edges from the pre-insert check, as when a
// concurrent request inserts the same edge in between.
type racingFollows struct {
	*testutil.FollowRepository
}

func (racingFollows) Exists(ctx context.Context, followerID, followedUserID uint) (bool, error) {
	return false, nil
}

func TestApplySubscriptionUseCase_UniqueViolationIsAlreadyFollowing(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	bob := store.AddUser(t, "bob")
	store.AddFollow(t, alice.ID(), bob.ID())

	uc := NewApplySubscriptionUseCase(store.Users(), racingFollows{store.Follows()}, store, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), ApplySubscriptionCommand{ActorID: alice.ID(), TargetUserID: bob.ID(), Action: ActionSubscribe})

	require.NoError(t, err)
	assert.Equal(t, dto.StatusAlreadyFollowing, result.Status)
	_, _, _, follows := store.Counts()
	assert.Equal(t, 1, follows)
}

func TestApplySubscriptionUseCase_StoreFailure(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	bob := store.AddUser(t, "bob")
	store.Fail("follows.Create", stderrors.New("db down"))

	uc := NewApplySubscriptionUseCase(store.Users(), store.Follows(), store, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), ApplySubscriptionCommand{ActorID: alice.ID(), TargetUserID: bob.ID(), Action: ActionSubscribe})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestListSubscriptionsUseCase_Execute(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	carol := store.AddUser(t, "carol")
	bob := store.AddUser(t, "bob")
	store.AddFollow(t, alice.ID(), carol.ID())
	store.AddFollow(t, alice.ID(), bob.ID())
	store.AddFollow(t, carol.ID(), alice.ID())

	uc := NewListSubscriptionsUseCase(store.Follows(), logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), ListSubscriptionsQuery{ActorID: alice.ID()})

	require.NoError(t, err)
	require.Len(t, result.Following, 2)
	assert.Equal(t, "bob", result.Following[0].Username)
	assert.Equal(t, "carol", result.Following[1].Username)
	require.Len(t, result.Followers, 1)
	assert.Equal(t, "carol", result.Followers[0].Username)
	assert.NotNil(t, result.Followers[0].Since)
}

func TestListUsersUseCase_Execute(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	bob := store.AddUser(t, "bob")
	store.AddUser(t, "bobby")
	store.AddUser(t, "carol")
	store.AddFollow(t, alice.ID(), bob.ID())

	uc := NewListUsersUseCase(store.Users(), store.Follows(), logger.NewNopLogger())

	all, err := uc.Execute(context.Background(), ListUsersQuery{ActorID: alice.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	for _, u := range all.Users {
		assert.NotEqual(t, "alice", u.Username)
	}

	matched, err := uc.Execute(context.Background(), ListUsersQuery{ActorID: alice.ID(), Search: "BOB"})
	require.NoError(t, err)
	require.Len(t, matched.Users, 2)
	assert.Equal(t, "bob", matched.Users[0].Username)
	assert.True(t, matched.Users[0].IsFollowing)
	assert.False(t, matched.Users[1].IsFollowing)
}
