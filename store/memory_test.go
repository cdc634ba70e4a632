package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/model"
)

func TestDealCRUD(t *testing.T) {
	s := NewMemStore()

	deal := &model.Deal{ClientName: "أكاديمية النور", ClientType: "academy", Stage: "lead", Owner: "sara", Status: "new"}
	require.NoError(t, s.CreateDeal(deal))
	assert.NotEmpty(t, deal.ID)
	assert.False(t, deal.CreatedAt.IsZero())

	got, err := s.GetDeal(deal.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "أكاديمية النور", got.ClientName)

	updated, err := s.UpdateDeal(deal.ID, map[string]any{"stage": "negotiation", "value": "5000"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "negotiation", updated.Stage)
	assert.Equal(t, "5000", updated.Value)
	assert.Equal(t, "sara", updated.Owner)

	require.NoError(t, s.DeleteDeal(deal.ID))
	got, err = s.GetDeal(deal.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetMissingReturnsNilNil(t *testing.T) {
	s := NewMemStore()

	deal, err := s.GetDeal("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, deal)

	updated, err := s.UpdateDeal("no-such-id", map[string]any{"stage": "won"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.DeleteDeal("no-such-id"))
	require.NoError(t, s.DeleteTask("no-such-id"))
	require.NoError(t, s.Sales().DeleteConversation("no-such-id"))
}

func TestListDealsNewestFirst(t *testing.T) {
	s := NewMemStore()

	first := &model.Deal{ClientName: "a", ClientType: "trainer", Stage: "lead", Owner: "o", Status: "new", CreatedAt: time.Now().Add(-time.Hour)}
	second := &model.Deal{ClientName: "b", ClientType: "trainer", Stage: "lead", Owner: "o", Status: "new", CreatedAt: time.Now()}
	require.NoError(t, s.CreateDeal(first))
	require.NoError(t, s.CreateDeal(second))

	deals, err := s.ListDeals()
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, "b", deals[0].ClientName)
	assert.Equal(t, "a", deals[1].ClientName)
}

func TestSopStepsOrderedByStepNumber(t *testing.T) {
	s := NewMemStore()

	for _, n := range []int{3, 1, 2} {
		require.NoError(t, s.CreateSopStep(&model.SopStep{StepNumber: n, Title: "step", Objective: "o", ResponsibleRole: "sdr", Actions: "a", SuccessCriteria: "c"}))
	}

	steps, err := s.ListSopSteps()
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, 1, steps[0].StepNumber)
	assert.Equal(t, 2, steps[1].StepNumber)
	assert.Equal(t, 3, steps[2].StepNumber)
}

func TestTaskCompletedAtPatch(t *testing.T) {
	s := NewMemStore()

	task := &model.Task{Title: "call back", Priority: "medium", Status: "pending", Category: "general"}
	require.NoError(t, s.CreateTask(task))

	now := time.Now()
	updated, err := s.UpdateTask(task.ID, map[string]any{"status": "completed", "completedAt": now})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "completed", updated.Status)
	require.NotNil(t, updated.CompletedAt)

	updated, err = s.UpdateTask(task.ID, map[string]any{"status": "pending", "completedAt": nil})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "pending", updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestReflectionByDate(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.CreateDailyReflection(&model.DailyReflection{Date: "2026-08-30", Learned: "x", Mood: 4}))
	require.NoError(t, s.CreateDailyReflection(&model.DailyReflection{Date: "2026-08-31", Learned: "y", Mood: 2}))

	r, err := s.GetDailyReflectionByDate("2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "y", r.Learned)

	r, err = s.GetDailyReflectionByDate("2026-09-01")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestConversationDeleteCascadesMessages(t *testing.T) {
	s := NewMemStore()
	convs := s.Sales()

	conv := &model.Conversation{Title: "محادثة جديدة"}
	require.NoError(t, convs.CreateConversation(conv))
	require.NoError(t, convs.CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleUser, Content: "hi"}))
	require.NoError(t, convs.CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleAssistant, Content: "hello"}))

	other := &model.Conversation{Title: "other"}
	require.NoError(t, convs.CreateConversation(other))
	require.NoError(t, convs.CreateMessage(&model.Message{ConversationID: other.ID, Role: model.RoleUser, Content: "keep me"}))

	require.NoError(t, convs.DeleteConversation(conv.ID))

	msgs, err := convs.ListMessages(conv.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	kept, err := convs.ListMessages(other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestMessagesListedOldestFirst(t *testing.T) {
	s := NewMemStore()
	convs := s.Sales()

	conv := &model.Conversation{Title: "t"}
	require.NoError(t, convs.CreateConversation(conv))

	base := time.Now()
	require.NoError(t, convs.CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleUser, Content: "first", CreatedAt: base.Add(-2 * time.Minute)}))
	require.NoError(t, convs.CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleAssistant, Content: "second", CreatedAt: base.Add(-time.Minute)}))
	require.NoError(t, convs.CreateMessage(&model.Message{ConversationID: conv.ID, Role: model.RoleUser, Content: "third", CreatedAt: base}))

	msgs, err := convs.ListMessages(conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)
}

func TestNamespacesAreIndependent(t *testing.T) {
	s := NewMemStore()

	salesConv := &model.Conversation{Title: "sales"}
	require.NoError(t, s.Sales().CreateConversation(salesConv))

	csConv := &model.Conversation{Title: "cs"}
	require.NoError(t, s.CS().CreateConversation(csConv))

	salesList, err := s.Sales().ListConversations()
	require.NoError(t, err)
	require.Len(t, salesList, 1)
	assert.Equal(t, "sales", salesList[0].Title)

	csList, err := s.CS().ListConversations()
	require.NoError(t, err)
	require.Len(t, csList, 1)
	assert.Equal(t, "cs", csList[0].Title)

	got, err := s.CS().GetConversation(salesConv.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateIgnoresUnknownField(t *testing.T) {
	s := NewMemStore()

	deal := &model.Deal{ClientName: "c", ClientType: "trainer", Stage: "lead", Owner: "o", Status: "new"}
	require.NoError(t, s.CreateDeal(deal))

	updated, err := s.UpdateDeal(deal.ID, map[string]any{"notAField": "x", "notes": "kept"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "kept", updated.Notes)
}
