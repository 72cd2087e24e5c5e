// Copyright (c) 2026 ArtFolio. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/platform/sec"
	"github.com/artfolio/artfolio/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	users  map[int64]*auth.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[int64]*auth.User{}, nextID: 1}
}

func (repository *fakeUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	if user, ok := repository.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range repository.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range repository.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByEmailExcluding(_ context.Context, email string, excludeID int64) (*auth.User, error) {
	for _, user := range repository.users {
		if user.Email == email && user.ID != excludeID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	for _, existing := range repository.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperr.Conflict("User already exists")
		}
	}
	user.ID = repository.nextID
	repository.nextID++
	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

func (repository *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	if _, ok := repository.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	copied := *user
	repository.users[user.ID] = &copied
	return nil
}

// newTestService wires a Service against the in-memory repository and a
// real token signer.
func newTestService(t *testing.T) (*auth.Service, *fakeUserRepository, *sec.TokenService) {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret-do-not-use", "artfolio.test", time.Hour)
	require.NoError(t, err)

	repository := newFakeUserRepository()
	return auth.NewService(repository, tokens), repository, tokens
}

// registerAndLogin seeds an account and returns its live session.
func registerAndLogin(t *testing.T, service *auth.Service, email, username string) *auth.AuthSession {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, service.Register(ctx, auth.RegisterInput{
		Email:    email,
		Username: username,
		Password: "correct horse battery",
	}))

	session, err := service.Login(ctx, auth.LoginInput{Email: email, Password: "correct horse battery"})
	require.NoError(t, err)
	return session
}

/*
TestRegister_NeverAutoLogsIn verifies registration persists the account
without issuing any token.
*/
func TestRegister_NeverAutoLogsIn(t *testing.T) {
	service, repository, _ := newTestService(t)
	ctx := context.Background()

	err := service.Register(ctx, auth.RegisterInput{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	stored, err := repository.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana", stored.Username)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash, "password must be hashed")
}

/*
TestRegister_DuplicateEmail verifies a second registration with the same
email fails with a Conflict.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	input := auth.RegisterInput{Email: "ana@example.com", Username: "ana", Password: "correct horse battery"}
	require.NoError(t, service.Register(ctx, input))

	input.Username = "other"
	err := service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

/*
TestLogin_FailuresAreIndistinguishable verifies unknown email and wrong
password produce the exact same Unauthorized error.
*/
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.Register(ctx, auth.RegisterInput{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "correct horse battery",
	}))

	_, unknownEmailErr := service.Login(ctx, auth.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	_, wrongPasswordErr := service.Login(ctx, auth.LoginInput{Email: "ana@example.com", Password: "wrong"})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())

	unknownApp := apperr.As(unknownEmailErr)
	wrongApp := apperr.As(wrongPasswordErr)
	require.NotNil(t, unknownApp)
	require.NotNil(t, wrongApp)
	assert.Equal(t, unknownApp.HTTPStatus, wrongApp.HTTPStatus)
}

/*
TestLogin_TokenCarriesSnapshot verifies the issued token embeds the
profile snapshot and a numeric subject.
*/
func TestLogin_TokenCarriesSnapshot(t *testing.T) {
	service, _, tokens := newTestService(t)

	session := registerAndLogin(t, service, "ana@example.com", "ana")
	require.NotEmpty(t, session.Token)

	claims, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID())
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "ana", claims.Username)
	assert.Nil(t, claims.Bio)
}

/*
TestRefresh_MintsFreshSnapshot verifies refresh re-reads the account so the
new token reflects profile changes made after the old token was issued.
*/
func TestRefresh_MintsFreshSnapshot(t *testing.T) {
	service, _, tokens := newTestService(t)
	ctx := context.Background()

	session := registerAndLogin(t, service, "ana@example.com", "ana")

	// Mutate the profile after the first token was issued.
	_, err := service.UpdateBio(ctx, session.User.ID, "Painter from Porto")
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, session.Token)
	require.NoError(t, err)

	claims, err := tokens.Verify(refreshed.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.Bio)
	assert.Equal(t, "Painter from Porto", *claims.Bio)

	// The old token remains valid but stale until it expires.
	staleClaims, err := tokens.Verify(session.Token)
	require.NoError(t, err)
	assert.Nil(t, staleClaims.Bio)
}

/*
TestRefresh_RejectsGarbageAndDeletedUsers verifies refresh fails with
Unauthorized for invalid tokens and for tokens of vanished accounts.
*/
func TestRefresh_RejectsGarbageAndDeletedUsers(t *testing.T) {
	service, repository, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Refresh(ctx, "not.a.token")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)

	session := registerAndLogin(t, service, "ana@example.com", "ana")
	delete(repository.users, session.User.ID)

	_, err = service.Refresh(ctx, session.Token)
	require.Error(t, err)
	appError = apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
}

/*
TestUpdateContactInfo_EmailUniqueness verifies contact updates reject an
email held by another account but accept keeping your own.
*/
func TestUpdateContactInfo_EmailUniqueness(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	ana := registerAndLogin(t, service, "ana@example.com", "ana")
	registerAndLogin(t, service, "ben@example.com", "ben")

	// Taking another account's email is a conflict.
	_, err := service.UpdateContactInfo(ctx, ana.User.ID, auth.ContactInfoInput{Email: "ben@example.com"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// Keeping your own email with new phone details is fine.
	phone := "+351 900 000 000"
	session, err := service.UpdateContactInfo(ctx, ana.User.ID, auth.ContactInfoInput{
		Email: "ana@example.com",
		Phone: &phone,
	})
	require.NoError(t, err)
	require.NotNil(t, session.User.Phone)
	assert.Equal(t, phone, *session.User.Phone)
}

/*
TestProfileMutations_ReSignToken verifies every profile mutation returns a
token embedding the just-updated field.
*/
func TestProfileMutations_ReSignToken(t *testing.T) {
	service, _, tokens := newTestService(t)
	ctx := context.Background()

	session := registerAndLogin(t, service, "ana@example.com", "ana")

	updated, err := service.UpdateWebsite(ctx, session.User.ID, "https://ana.art")
	require.NoError(t, err)
	claims, err := tokens.Verify(updated.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.Website)
	assert.Equal(t, "https://ana.art", *claims.Website)

	updated, err = service.UpdateProfileImage(ctx, session.User.ID, "/uploads/profiles/abc.png")
	require.NoError(t, err)
	claims, err = tokens.Verify(updated.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.ProfileImage)
	assert.Equal(t, "/uploads/profiles/abc.png", *claims.ProfileImage)
}
