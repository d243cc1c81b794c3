package userservice_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
	"github.com/jakob-rzeppa/fnmock/example/userservice"
	"github.com/jakob-rzeppa/fnmock/testutil/helper"
)

func Test_UserService_FetchUserName_WithMock(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	service, err := userservice.NewUserService(double.ModeTest, store, nil)
	require.NoError(t, err)

	fetchMock := helper.GivenMockFromStore[userservice.FetchUserNameParams, userservice.FetchUserNameResult](
		t, store, "userservice.fetchUserName")
	fetchMock.Setup(func(params userservice.FetchUserNameParams) userservice.FetchUserNameResult {
		return userservice.FetchUserNameResult{Name: fmt.Sprintf("user_%d", params.ID)}
	})

	first, err := service.FetchUserName(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "user_42", first)

	second, err := service.FetchUserName(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "user_7", second)

	assert.NoError(t, fetchMock.AssertTimes(2))
	assert.NoError(t, fetchMock.AssertWith(userservice.FetchUserNameParams{ID: 42}))
	assert.NoError(t, fetchMock.AssertWith(userservice.FetchUserNameParams{ID: 7}))
	assert.Error(t, fetchMock.AssertWith(userservice.FetchUserNameParams{ID: 99}))
}

func Test_UserService_NotifyUser_SendsToFetchedUser(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	service, err := userservice.NewUserService(double.ModeTest, store, nil)
	require.NoError(t, err)

	fetchMock := helper.GivenMockFromStore[userservice.FetchUserNameParams, userservice.FetchUserNameResult](
		t, store, "userservice.fetchUserName")
	fetchMock.Setup(func(params userservice.FetchUserNameParams) userservice.FetchUserNameResult {
		return userservice.FetchUserNameResult{Name: fmt.Sprintf("user_%d@test.com", params.ID)}
	})

	sendMock := helper.GivenMockFromStore[userservice.SendEmailParams, error](
		t, store, "userservice.sendEmail")
	sendMock.Setup(func(userservice.SendEmailParams) error { return nil })

	err = service.NotifyUser(context.Background(), 42, "Welcome!")
	require.NoError(t, err)

	assert.NoError(t, fetchMock.AssertTimes(1))
	assert.NoError(t, sendMock.AssertTimes(1))
	assert.NoError(t, sendMock.AssertWith(userservice.SendEmailParams{
		To:      "user_42@test.com",
		Subject: "Welcome!",
	}))
}

func Test_UserService_NotifyUser_StopsWhenFetchFails(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	service, err := userservice.NewUserService(double.ModeTest, store, nil)
	require.NoError(t, err)

	databaseDown := errors.New("database error")

	fetchMock := helper.GivenMockFromStore[userservice.FetchUserNameParams, userservice.FetchUserNameResult](
		t, store, "userservice.fetchUserName")
	fetchMock.Setup(func(userservice.FetchUserNameParams) userservice.FetchUserNameResult {
		return userservice.FetchUserNameResult{Err: databaseDown}
	})

	sendMock := helper.GivenMockFromStore[userservice.SendEmailParams, error](
		t, store, "userservice.sendEmail")
	sendMock.Setup(func(userservice.SendEmailParams) error {
		t.Fatal("sendEmail must not be called when the lookup fails")
		return nil
	})

	err = service.NotifyUser(context.Background(), 1, "Welcome!")
	assert.ErrorIs(t, err, databaseDown)

	assert.NoError(t, fetchMock.AssertTimes(1))
	assert.NoError(t, sendMock.AssertTimes(0))
}

func Test_UserService_TestMode_FallsBackToRealImplementationWhenUnset(t *testing.T) {
	reg := registry.NewRegistry()
	store := reg.Context(helper.GivenContextKey(t))

	service, err := userservice.NewUserService(double.ModeTest, store, nil)
	require.NoError(t, err)

	sendMock := helper.GivenMockFromStore[userservice.SendEmailParams, error](
		t, store, "userservice.sendEmail")

	// sendEmail's double is unconfigured, so the wired path runs the real
	// implementation and records nothing
	fetchMock := helper.GivenMockFromStore[userservice.FetchUserNameParams, userservice.FetchUserNameResult](
		t, store, "userservice.fetchUserName")
	fetchMock.Setup(func(userservice.FetchUserNameParams) userservice.FetchUserNameResult {
		return userservice.FetchUserNameResult{Name: "user_1"}
	})

	err = service.NotifyUser(context.Background(), 1, "Welcome!")
	require.NoError(t, err)
	assert.NoError(t, sendMock.AssertTimes(0))
}
