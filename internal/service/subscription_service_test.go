package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/subnego_go_server/internal/model/dto"
	"github.com/qs3c/subnego_go_server/internal/store"
	"github.com/qs3c/subnego_go_server/internal/testutil"
)

func setupSubscriptionService(t *testing.T) (*SubscriptionService, *store.Store) {
	t.Helper()

	st := store.New()
	return NewSubscriptionService(st), st
}

func TestSubscriptionService_Create_Success(t *testing.T) {
	service, st := setupSubscriptionService(t)

	user := testutil.TestUser(t, st)

	sub, err := service.Create(user.ID, &dto.CreateSubscriptionRequest{
		ProviderName: "providerx",
		Plan:         "basic",
		Cost:         14.99,
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, sub.UserID)
	assert.Equal(t, "monthly", sub.BillingCycle) // 缺省计费周期
	assert.NotEmpty(t, sub.ID)

	_, ok := st.GetSubscription(sub.ID)
	assert.True(t, ok)
}

func TestSubscriptionService_Create_UserNotFound(t *testing.T) {
	service, _ := setupSubscriptionService(t)

	_, err := service.Create("nonexistent", &dto.CreateSubscriptionRequest{
		ProviderName: "providerx",
		Plan:         "basic",
		Cost:         14.99,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubscriptionService_ListByUser(t *testing.T) {
	service, st := setupSubscriptionService(t)

	alice := testutil.TestUser(t, st)
	bob := testutil.TestUser(t, st)

	s1 := testutil.TestSubscription(t, st, alice.ID)
	s2 := testutil.TestSubscription(t, st, alice.ID)
	testutil.TestSubscription(t, st, bob.ID)

	subs := service.ListByUser(alice.ID)
	assert.Len(t, subs, 2)

	ids := []string{subs[0].ID, subs[1].ID}
	assert.ElementsMatch(t, []string{s1.ID, s2.ID}, ids)
}

func TestSubscriptionService_ListByUser_UnknownUser(t *testing.T) {
	service, st := setupSubscriptionService(t)

	user := testutil.TestUser(t, st)
	testutil.TestSubscription(t, st, user.ID)

	subs := service.ListByUser("nonexistent")
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}
