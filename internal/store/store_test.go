package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/subnego_go_server/internal/model"
)

func TestStore_PutGetUser(t *testing.T) {
	st := New()

	user := model.NewUserProfile()
	st.PutUser(user)

	got, ok := st.GetUser(user.ID)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, model.ConsentPending, got.ConsentStatus)
}

func TestStore_GetUser_NotFound(t *testing.T) {
	st := New()

	_, ok := st.GetUser("nonexistent")
	assert.False(t, ok)
}

func TestStore_Subscriptions_Snapshot(t *testing.T) {
	st := New()

	user := model.NewUserProfile()
	st.PutUser(user)

	s1 := model.NewSubscription(user.ID, "provA", "basic", 10.0, "")
	s2 := model.NewSubscription(user.ID, "provB", "pro", 20.0, "yearly")
	st.PutSubscription(s1)
	st.PutSubscription(s2)

	subs := st.Subscriptions()
	require.Len(t, subs, 2)

	// 快照切片的改动不影响存储本身
	subs[0] = nil
	subs[1] = nil
	assert.Len(t, st.Subscriptions(), 2)
}

func TestStore_DraftAndOutcomeTables(t *testing.T) {
	st := New()

	draft := model.NewNegotiationDraft("sub-1", map[string]string{"email": "support@prov.com"}, "msg", "neutral")
	st.PutDraft(draft)

	got, ok := st.GetDraft(draft.ID)
	require.True(t, ok)
	assert.Equal(t, model.DraftStatusDrafted, got.Status)

	outcome := model.NewNegotiationOutcome(draft.ID, "summary", map[string]string{"discount": "10%"}, model.ResultSucceeded)
	st.PutOutcome(outcome)

	gotOutcome, ok := st.GetOutcome(outcome.ID)
	require.True(t, ok)
	assert.Equal(t, draft.ID, gotOutcome.DraftID)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	st := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			st.PutUser(model.NewUserProfile())
		}()
		go func() {
			defer wg.Done()
			_ = st.Subscriptions()
		}()
	}
	wg.Wait()
}
