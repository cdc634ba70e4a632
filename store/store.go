package store

import "salesdesk/model"

// ConversationStore is one assistant namespace. The sales and customer
// success assistants get separate instances backed by separate tables and
// never see each other's conversations.
type ConversationStore interface {
	ListConversations() ([]model.Conversation, error)
	GetConversation(id string) (*model.Conversation, error)
	CreateConversation(conv *model.Conversation) error
	// DeleteConversation removes the conversation's messages first so no
	// orphans survive; deleting an unknown id is a no-op.
	DeleteConversation(id string) error
	// ListMessages returns the transcript in ascending creation order.
	ListMessages(conversationID string) ([]model.Message, error)
	CreateMessage(msg *model.Message) error
}

// Store is the resource store behind the REST layer. Lookups return
// (nil, nil) for a missing id, updates return (nil, nil) when there is
// nothing to update, and deletes are idempotent. List order is newest
// first except where an entity carries its own ordinal (SOP steps).
//
// Partial updates take field names as they appear on the wire (camelCase
// JSON keys); each implementation maps them onto its own storage.
type Store interface {
	Sales() ConversationStore
	CS() ConversationStore

	GetUser(id string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	CreateUser(u *model.User) error

	ListDeals() ([]model.Deal, error)
	GetDeal(id string) (*model.Deal, error)
	CreateDeal(d *model.Deal) error
	UpdateDeal(id string, updates map[string]any) (*model.Deal, error)
	DeleteDeal(id string) error

	ListKnowledgeFiles() ([]model.KnowledgeFile, error)
	GetKnowledgeFile(id string) (*model.KnowledgeFile, error)
	CreateKnowledgeFile(f *model.KnowledgeFile) error
	DeleteKnowledgeFile(id string) error

	ListSopSteps() ([]model.SopStep, error)
	CreateSopStep(s *model.SopStep) error
	UpdateSopStep(id string, updates map[string]any) (*model.SopStep, error)

	ListTasks() ([]model.Task, error)
	CreateTask(t *model.Task) error
	UpdateTask(id string, updates map[string]any) (*model.Task, error)
	DeleteTask(id string) error

	ListDailyReflections() ([]model.DailyReflection, error)
	GetDailyReflectionByDate(date string) (*model.DailyReflection, error)
	CreateDailyReflection(r *model.DailyReflection) error
	UpdateDailyReflection(id string, updates map[string]any) (*model.DailyReflection, error)
	DeleteDailyReflection(id string) error

	ListClientQualifications() ([]model.ClientQualification, error)
	CreateClientQualification(q *model.ClientQualification) error
	UpdateClientQualification(id string, updates map[string]any) (*model.ClientQualification, error)
	DeleteClientQualification(id string) error

	ListReferrals() ([]model.Referral, error)
	CreateReferral(r *model.Referral) error
	UpdateReferral(id string, updates map[string]any) (*model.Referral, error)
	DeleteReferral(id string) error

	ListClientAnalyses() ([]model.ClientAnalysis, error)
	CreateClientAnalysis(a *model.ClientAnalysis) error
	UpdateClientAnalysis(id string, updates map[string]any) (*model.ClientAnalysis, error)
	DeleteClientAnalysis(id string) error
}
