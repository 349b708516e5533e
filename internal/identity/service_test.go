package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	SetHashCost(bcrypt.MinCost)
}

func storedUser(t *testing.T, role model.Role) model.User {
	t.Helper()
	hashed, err := HashPassword("secret1")
	require.NoError(t, err)
	return model.User{ID: 7, Name: "ana", Email: "ana@example.com", Password: hashed, Role: role}
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	admin := &Principal{ID: 1, Role: model.RoleAdmin}
	user := &Principal{ID: 2, Role: model.RoleUser}

	tests := []struct {
		name      string
		principal *Principal
		required  model.Role
		wantErr   error
	}{
		{"anonymous_any", nil, AnyRole, marketerrors.ErrUnauthenticated},
		{"anonymous_admin", nil, model.RoleAdmin, marketerrors.ErrUnauthenticated},
		{"user_any", user, AnyRole, nil},
		{"user_admin", user, model.RoleAdmin, marketerrors.ErrForbidden},
		{"admin_admin", admin, model.RoleAdmin, nil},
		{"admin_any", admin, AnyRole, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Authorize(tc.principal, tc.required)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_LoginAndVerify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := NewMockUserStore(ctrl)
	svc := NewService(store, "test-secret", time.Hour)

	user := storedUser(t, model.RoleUser)
	store.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(user, nil)
	store.EXPECT().GetUser(gomock.Any(), uint(7)).Return(user, nil)

	token, err := svc.Login(context.Background(), " ana@example.com ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "bearer", token.TokenType)
	require.Equal(t, uint(7), token.UserID)
	require.Equal(t, model.RoleUser, token.UserRole)
	require.NotEmpty(t, token.AccessToken)

	p, err := svc.Verify(context.Background(), token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, &Principal{ID: 7, Name: "ana", Email: "ana@example.com", Role: model.RoleUser}, p)
}

func TestService_LoginFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		password  string
		mockSetup func(store *MockUserStore, user model.User)
		wantErr   error
	}{
		{
			name:     "unknown_email",
			password: "secret1",
			mockSetup: func(store *MockUserStore, _ model.User) {
				store.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(model.User{}, marketerrors.ErrNotFound)
			},
			wantErr: marketerrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong_password",
			password: "nope",
			mockSetup: func(store *MockUserStore, user model.User) {
				store.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: marketerrors.ErrInvalidCredentials,
		},
		{
			name:     "store_down",
			password: "secret1",
			mockSetup: func(store *MockUserStore, _ model.User) {
				store.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(model.User{}, marketerrors.ErrStorage)
			},
			wantErr: marketerrors.ErrStorage,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			store := NewMockUserStore(ctrl)
			tc.mockSetup(store, storedUser(t, model.RoleUser))

			_, err := NewService(store, "test-secret", time.Hour).Login(context.Background(), "ana@example.com", tc.password)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_VerifyRejects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := NewMockUserStore(ctrl)
	svc := NewService(store, "test-secret", time.Hour)

	user := storedUser(t, model.RoleUser)
	store.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(user, nil).AnyTimes()

	token, err := svc.Login(context.Background(), user.Email, "secret1")
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), "not-a-token")
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("other_secret", func(t *testing.T) {
		other := NewService(store, "another-secret", time.Hour)
		_, err := other.Verify(context.Background(), token.AccessToken)
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewService(store, "test-secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Verify(context.Background(), token.AccessToken)
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("none_alg", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(context.Background(), raw)
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("deleted_user", func(t *testing.T) {
		store.EXPECT().GetUser(gomock.Any(), uint(7)).Return(model.User{}, marketerrors.ErrNotFound)
		_, err := svc.Verify(context.Background(), token.AccessToken)
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        model.NewUser
		mockSetup func(store *MockUserStore)
		wantErr   error
	}{
		{
			name: "ok",
			in:   model.NewUser{Name: "bob", Email: "bob@example.com", Password: "hunter2"},
			mockSetup: func(store *MockUserStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
					require.Equal(t, model.RoleUser, u.Role)
					require.True(t, CheckPassword(u.Password, "hunter2"))
					u.ID = 3
					return nil
				})
			},
		},
		{
			name:      "short_password",
			in:        model.NewUser{Name: "bob", Email: "bob@example.com", Password: "abc"},
			mockSetup: func(*MockUserStore) {},
			wantErr:   marketerrors.ErrInvalidInput,
		},
		{
			name:      "missing_email",
			in:        model.NewUser{Name: "bob", Password: "hunter2"},
			mockSetup: func(*MockUserStore) {},
			wantErr:   marketerrors.ErrInvalidInput,
		},
		{
			name: "duplicate_email",
			in:   model.NewUser{Name: "bob", Email: "bob@example.com", Password: "hunter2"},
			mockSetup: func(store *MockUserStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(marketerrors.ErrConflict)
			},
			wantErr: marketerrors.ErrConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			store := NewMockUserStore(ctrl)
			tc.mockSetup(store)

			view, err := NewService(store, "s", time.Hour).Register(context.Background(), tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint(3), view.ID)
			require.Equal(t, model.RoleUser, view.Role)
		})
	}
}

func TestService_EnsureAdmin(t *testing.T) {
	t.Parallel()

	t.Run("creates_when_missing", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := NewMockUserStore(ctrl)
		store.EXPECT().GetUserByEmail(gomock.Any(), "root@example.com").Return(model.User{}, marketerrors.ErrNotFound)
		store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
			require.Equal(t, model.RoleAdmin, u.Role)
			return nil
		})
		require.NoError(t, NewService(store, "s", time.Hour).EnsureAdmin(context.Background(), "root", "root@example.com", "toor123"))
	})

	t.Run("keeps_existing", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := NewMockUserStore(ctrl)
		store.EXPECT().GetUserByEmail(gomock.Any(), "root@example.com").Return(model.User{ID: 1}, nil)
		require.NoError(t, NewService(store, "s", time.Hour).EnsureAdmin(context.Background(), "root", "root@example.com", "toor123"))
	})

	t.Run("unconfigured", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := NewMockUserStore(ctrl)
		require.NoError(t, NewService(store, "s", time.Hour).EnsureAdmin(context.Background(), "root", "", ""))
	})

	t.Run("lookup_fails", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := NewMockUserStore(ctrl)
		store.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("boom"))
		require.Error(t, NewService(store, "s", time.Hour).EnsureAdmin(context.Background(), "root", "root@example.com", "toor123"))
	})
}
