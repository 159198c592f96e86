package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litreview/internal/application/testutil"
	"litreview/internal/domain/user"
	"litreview/internal/shared/biztime"
	"litreview/internal/shared/config"
	"litreview/internal/shared/errors"
	"litreview/internal/shared/logger"
)

var sessionConfig = config.SessionConfig{DefaultExpDays: 1, RememberExpDays: 14}

func newSignIn(store *testutil.Store) *SignInUseCase {
	return NewSignInUseCase(store.Users(), store.Sessions(), &testutil.FakeHasher{}, testutil.FakeTokens{}, sessionConfig, logger.NewNopLogger())
}

func TestSignUpUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		cmd      SignUpCommand
		existing string
		wantErr  func(error) bool
		wantName string
	}{
		{
			name:     "valid sign up",
			cmd:      SignUpCommand{Username: "alice", Password: "correct horse", PasswordConfirm: "correct horse"},
			wantName: "alice",
		},
		{
			name:     "username is normalized",
			cmd:      SignUpCommand{Username: "  ｂｏｂ ", Password: "correct horse", PasswordConfirm: "correct horse"},
			wantName: "bob",
		},
		{
			name:    "invalid username characters",
			cmd:     SignUpCommand{Username: "al ice", Password: "correct horse", PasswordConfirm: "correct horse"},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "confirmation mismatch",
			cmd:     SignUpCommand{Username: "alice", Password: "correct horse", PasswordConfirm: "correct horsE"},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "password too short",
			cmd:     SignUpCommand{Username: "alice", Password: "short", PasswordConfirm: "short"},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "numeric password",
			cmd:     SignUpCommand{Username: "alice", Password: "1234567890", PasswordConfirm: "1234567890"},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "password contains username",
			cmd:     SignUpCommand{Username: "alice", Password: "xxALICExx", PasswordConfirm: "xxALICExx"},
			wantErr: errors.IsValidationError,
		},
		{
			name:     "duplicate username",
			cmd:      SignUpCommand{Username: "alice", Password: "correct horse", PasswordConfirm: "correct horse"},
			existing: "alice",
			wantErr:  errors.IsConflictError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewStore()
			if tt.existing != "" {
				store.AddUser(t, tt.existing)
			}
			uc := NewSignUpUseCase(store.Users(), &testutil.FakeHasher{}, logger.NewNopLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, result.Username)

			stored, err := store.Users().GetByUsername(context.Background(), tt.wantName)
			require.NoError(t, err)
			assert.Equal(t, "hashed:"+tt.cmd.Password, stored.PasswordHash())
		})
	}
}

func TestSignUpUseCase_HashFailure(t *testing.T) {
	store := testutil.NewStore()
	uc := NewSignUpUseCase(store.Users(), &testutil.FakeHasher{HashErr: stderrors.New("boom")}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), SignUpCommand{Username: "alice", Password: "correct horse", PasswordConfirm: "correct horse"})

	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
}

func TestSignInUseCase_Execute(t *testing.T) {
	testutil.TickingClock(t)
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	uc := newSignIn(store)

	result, err := uc.Execute(context.Background(), SignInCommand{Username: "alice", Password: "alice", IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID(), result.User.ID)
	assert.True(t, strings.HasPrefix(result.Token, "1."))

	userID, sessionID, err := testutil.FakeTokens{}.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID(), userID)
	session, err := store.Sessions().GetByID(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", session.IPAddress)
	assert.Equal(t, result.ExpiresAt, session.ExpiresAt)
}

func TestSignInUseCase_RememberMeExtendsSession(t *testing.T) {
	testutil.TickingClock(t)
	store := testutil.NewStore()
	store.AddUser(t, "alice")
	uc := newSignIn(store)

	short, err := uc.Execute(context.Background(), SignInCommand{Username: "alice", Password: "alice"})
	require.NoError(t, err)
	long, err := uc.Execute(context.Background(), SignInCommand{Username: "alice", Password: "alice", RememberMe: true})
	require.NoError(t, err)

	assert.Greater(t, long.ExpiresAt.Sub(short.ExpiresAt), 12*24*time.Hour)
}

func TestSignInUseCase_FailuresAreIndistinguishable(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser(t, "alice")
	uc := newSignIn(store)

	_, wrongPassword := uc.Execute(context.Background(), SignInCommand{Username: "alice", Password: "nope"})
	_, unknownUser := uc.Execute(context.Background(), SignInCommand{Username: "mallory", Password: "nope"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, errors.ErrorTypeInvalidCredentials, errors.GetAppError(wrongPassword).Type)
	assert.Equal(t, errors.GetAppError(wrongPassword).Code, errors.GetAppError(unknownUser).Code)
}

func TestSignOutUseCase_Execute(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser(t, "alice")
	signedIn, err := newSignIn(store).Execute(context.Background(), SignInCommand{Username: "alice", Password: "alice"})
	require.NoError(t, err)
	_, sessionID, err := testutil.FakeTokens{}.Verify(signedIn.Token)
	require.NoError(t, err)

	uc := NewSignOutUseCase(store.Sessions(), logger.NewNopLogger())
	require.NoError(t, uc.Execute(context.Background(), SignOutCommand{ActorID: signedIn.User.ID, SessionID: sessionID}))

	_, err = store.Sessions().GetByID(context.Background(), sessionID)
	assert.True(t, errors.IsNotFoundError(err))

	// Repeating is harmless.
	require.NoError(t, uc.Execute(context.Background(), SignOutCommand{ActorID: signedIn.User.ID, SessionID: sessionID}))
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	store.AddUser(t, "bob")

	signIn := newSignIn(store)
	var sessions []string
	for i := 0; i < 3; i++ {
		res, err := signIn.Execute(context.Background(), SignInCommand{Username: "alice", Password: "alice"})
		require.NoError(t, err)
		_, sid, err := testutil.FakeTokens{}.Verify(res.Token)
		require.NoError(t, err)
		sessions = append(sessions, sid)
	}
	bobSession, err := signIn.Execute(context.Background(), SignInCommand{Username: "bob", Password: "bob"})
	require.NoError(t, err)
	_, bobSID, err := testutil.FakeTokens{}.Verify(bobSession.Token)
	require.NoError(t, err)

	uc := NewChangePasswordUseCase(store.Users(), store.Sessions(), &testutil.FakeHasher{}, store, logger.NewNopLogger())

	t.Run("wrong old password", func(t *testing.T) {
		err := uc.Execute(context.Background(), ChangePasswordCommand{
			ActorID: alice.ID(), SessionID: sessions[0], OldPassword: "wrong", NewPassword: "brand new pass", NewPasswordConfirm: "brand new pass",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("weak new password", func(t *testing.T) {
		err := uc.Execute(context.Background(), ChangePasswordCommand{
			ActorID: alice.ID(), SessionID: sessions[0], OldPassword: "alice", NewPassword: "12345678", NewPasswordConfirm: "12345678",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		err := uc.Execute(context.Background(), ChangePasswordCommand{
			ActorID: alice.ID(), SessionID: sessions[0], OldPassword: "alice", NewPassword: "brand new pass", NewPasswordConfirm: "other",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("success revokes other sessions", func(t *testing.T) {
		err := uc.Execute(context.Background(), ChangePasswordCommand{
			ActorID: alice.ID(), SessionID: sessions[0], OldPassword: "alice", NewPassword: "brand new pass", NewPasswordConfirm: "brand new pass",
		})
		require.NoError(t, err)

		stored, err := store.Users().GetByID(context.Background(), alice.ID())
		require.NoError(t, err)
		assert.Equal(t, "hashed:brand new pass", stored.PasswordHash())

		_, err = store.Sessions().GetByID(context.Background(), sessions[0])
		assert.NoError(t, err)
		for _, sid := range sessions[1:] {
			_, err = store.Sessions().GetByID(context.Background(), sid)
			assert.True(t, errors.IsNotFoundError(err))
		}
		_, err = store.Sessions().GetByID(context.Background(), bobSID)
		assert.NoError(t, err, "other users keep their sessions")
	})
}

func TestChangePasswordUseCase_RollsBackOnFailure(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	store.Fail("users.UpdatePassword", stderrors.New("db down"))
	uc := NewChangePasswordUseCase(store.Users(), store.Sessions(), &testutil.FakeHasher{}, store, logger.NewNopLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		ActorID: alice.ID(), OldPassword: "alice", NewPassword: "brand new pass", NewPasswordConfirm: "brand new pass",
	})

	require.Error(t, err)
	stored, err := store.Users().GetByID(context.Background(), alice.ID())
	require.NoError(t, err)
	assert.Equal(t, "hashed:alice", stored.PasswordHash())
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	bob := store.AddUser(t, "bob")
	carol := store.AddUser(t, "carol")
	store.AddFollow(t, alice.ID(), bob.ID())
	store.AddFollow(t, alice.ID(), carol.ID())
	store.AddFollow(t, carol.ID(), alice.ID())

	uc := NewGetProfileUseCase(store.Users(), store.Follows(), logger.NewNopLogger())

	profile, err := uc.Execute(context.Background(), GetProfileQuery{ActorID: alice.ID()})
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(2), profile.FollowingCount)
	assert.Equal(t, int64(1), profile.FollowersCount)

	_, err = uc.Execute(context.Background(), GetProfileQuery{ActorID: 999})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestValidateSessionUseCase_Execute(t *testing.T) {
	store := testutil.NewStore()
	alice := store.AddUser(t, "alice")
	signedIn, err := newSignIn(store).Execute(context.Background(), SignInCommand{Username: "alice", Password: "alice"})
	require.NoError(t, err)

	uc := NewValidateSessionUseCase(store.Users(), store.Sessions(), testutil.FakeTokens{}, logger.NewNopLogger())

	t.Run("valid token", func(t *testing.T) {
		principal, err := uc.Execute(context.Background(), signedIn.Token)
		require.NoError(t, err)
		assert.Equal(t, alice.ID(), principal.UserID)
		assert.Equal(t, "alice", principal.Username)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "")
		assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "garbage")
		assert.Equal(t, errors.ErrorTypeTokenInvalid, errors.GetAppError(err).Type)
	})

	t.Run("token for another user", func(t *testing.T) {
		_, sid, err := testutil.FakeTokens{}.Verify(signedIn.Token)
		require.NoError(t, err)
		_, err = uc.Execute(context.Background(), "77."+sid)
		assert.Equal(t, errors.ErrorTypeTokenInvalid, errors.GetAppError(err).Type)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "1.nosuchsession")
		assert.Equal(t, errors.ErrorTypeSessionExpired, errors.GetAppError(err).Type)
	})

	t.Run("expired session is removed", func(t *testing.T) {
		session, err := user.NewSession(alice.ID(), "", "", biztime.NowUTC().Add(-time.Minute))
		require.NoError(t, err)
		require.NoError(t, store.Sessions().Create(context.Background(), session))

		_, err = uc.Execute(context.Background(), "1."+session.ID)
		assert.Equal(t, errors.ErrorTypeSessionExpired, errors.GetAppError(err).Type)

		_, err = store.Sessions().GetByID(context.Background(), session.ID)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
