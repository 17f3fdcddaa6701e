package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/paharpur/siteadmin/internal/common"
	"github.com/paharpur/siteadmin/internal/server/auth"
	sc "github.com/paharpur/siteadmin/internal/server/config"
)

func newTestUserService(t *testing.T) (*UserService, *fakeRepoManager, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cfg := &sc.Config{SecretKey: "test-secret", TokenValidityDuration: time.Hour}
	rm := newFakeRepoManager()
	return NewUserService(db, rm, cfg), rm, mock, db
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, rm, mock, db := newTestUserService(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3r!secret")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "admin", user.Role)
	require.NotEqual(t, "Sup3r!secret", user.PasswordHash)

	stored := rm.users.byEmail["alice@example.com"]
	require.NotNil(t, stored)

	token, got, err := svc.Login(context.Background(), "alice@example.com", "Sup3r!secret")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	// the token must embed the user id under the configured secret
	uid, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	svc, _, _, db := newTestUserService(t)
	defer db.Close()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "short")
	require.Error(t, err)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc, _, mock, db := newTestUserService(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3r!secret")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Register(context.Background(), "alice2", "alice@example.com", "Sup3r!secret")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _, mock, db := newTestUserService(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3r!secret")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "not-the-password")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, db := newTestUserService(t)
	defer db.Close()

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever-1A!")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_List(t *testing.T) {
	svc, _, mock, db := newTestUserService(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "Sup3r!secret")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = svc.Register(context.Background(), "bob", "bob@example.com", "Sup3r!secret")
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestUserService_GetByID_Unknown(t *testing.T) {
	svc, _, _, db := newTestUserService(t)
	defer db.Close()

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}
