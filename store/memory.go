package store

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"salesdesk/model"
)

// MemStore keeps every table in process memory. It backs the tests and
// the no-database development mode; observable semantics match GormStore.
type MemStore struct {
	mu          sync.RWMutex
	users       memTable[model.User]
	deals       memTable[model.Deal]
	files       memTable[model.KnowledgeFile]
	sopSteps    memTable[model.SopStep]
	tasks       memTable[model.Task]
	reflections memTable[model.DailyReflection]
	quals       memTable[model.ClientQualification]
	referrals   memTable[model.Referral]
	analyses    memTable[model.ClientAnalysis]
	sales       memConversations
	cs          memConversations
}

func NewMemStore() *MemStore {
	s := &MemStore{}
	s.sales.mu = &s.mu
	s.cs.mu = &s.mu
	return s
}

func (s *MemStore) Sales() ConversationStore { return &s.sales }
func (s *MemStore) CS() ConversationStore    { return &s.cs }

// memTable stores rows in insertion order, which doubles as creation
// order; list() reverses it for the newest-first contract.
type memTable[T any] struct {
	rows []*T
}

func (t *memTable[T]) insert(row *T) {
	fillDefaults(row)
	t.rows = append(t.rows, row)
}

func (t *memTable[T]) list() []T {
	out := make([]T, 0, len(t.rows))
	for i := len(t.rows) - 1; i >= 0; i-- {
		out = append(out, *t.rows[i])
	}
	return out
}

func (t *memTable[T]) find(id string) *T {
	for _, r := range t.rows {
		if recordID(r) == id {
			row := *r
			return &row
		}
	}
	return nil
}

func (t *memTable[T]) patch(id string, updates map[string]any) (*T, error) {
	for i, r := range t.rows {
		if recordID(r) != id {
			continue
		}
		merged, err := overlay(r, updates)
		if err != nil {
			return nil, err
		}
		t.rows[i] = merged
		row := *merged
		return &row, nil
	}
	return nil, nil
}

func (t *memTable[T]) remove(id string) {
	for i, r := range t.rows {
		if recordID(r) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return
		}
	}
}

// fillDefaults assigns the generated id and creation timestamp that the
// database layer would otherwise provide.
func fillDefaults(row any) {
	v := reflect.ValueOf(row).Elem()
	if f := v.FieldByName("ID"); f.IsValid() && f.Kind() == reflect.String && f.String() == "" {
		f.SetString(uuid.New().String())
	}
	if f := v.FieldByName("CreatedAt"); f.IsValid() {
		if ts, ok := f.Interface().(time.Time); ok && ts.IsZero() {
			f.Set(reflect.ValueOf(time.Now()))
		}
	}
}

func recordID(row any) string {
	f := reflect.ValueOf(row).Elem().FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

// overlay applies a partial update by merging the wire-format field map
// over the record's JSON form, so both stores accept the same keys.
func overlay[T any](row *T, updates map[string]any) (*T, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k, v := range updates {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return nil, fmt.Errorf("invalid update payload: %w", err)
	}
	return &out, nil
}

func (s *MemStore) GetUser(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.find(id), nil
}

func (s *MemStore) GetUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users.rows {
		if u.Username == username {
			row := *u
			return &row, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.insert(u)
	return nil
}

func (s *MemStore) ListDeals() ([]model.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deals.list(), nil
}

func (s *MemStore) GetDeal(id string) (*model.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deals.find(id), nil
}

func (s *MemStore) CreateDeal(d *model.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals.insert(d)
	return nil
}

func (s *MemStore) UpdateDeal(id string, updates map[string]any) (*model.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deals.patch(id, updates)
}

func (s *MemStore) DeleteDeal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals.remove(id)
	return nil
}

func (s *MemStore) ListKnowledgeFiles() ([]model.KnowledgeFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files.list(), nil
}

func (s *MemStore) GetKnowledgeFile(id string) (*model.KnowledgeFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files.find(id), nil
}

func (s *MemStore) CreateKnowledgeFile(f *model.KnowledgeFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files.insert(f)
	return nil
}

func (s *MemStore) DeleteKnowledgeFile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files.remove(id)
	return nil
}

func (s *MemStore) ListSopSteps() ([]model.SopStep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SopStep, 0, len(s.sopSteps.rows))
	for _, r := range s.sopSteps.rows {
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StepNumber < out[j].StepNumber })
	return out, nil
}

func (s *MemStore) CreateSopStep(step *model.SopStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sopSteps.insert(step)
	return nil
}

func (s *MemStore) UpdateSopStep(id string, updates map[string]any) (*model.SopStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sopSteps.patch(id, updates)
}

func (s *MemStore) ListTasks() ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.list(), nil
}

func (s *MemStore) CreateTask(t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks.insert(t)
	return nil
}

func (s *MemStore) UpdateTask(id string, updates map[string]any) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.patch(id, updates)
}

func (s *MemStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks.remove(id)
	return nil
}

func (s *MemStore) ListDailyReflections() ([]model.DailyReflection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reflections.list(), nil
}

func (s *MemStore) GetDailyReflectionByDate(date string) (*model.DailyReflection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reflections.rows {
		if r.Date == date {
			row := *r
			return &row, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateDailyReflection(r *model.DailyReflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections.insert(r)
	return nil
}

func (s *MemStore) UpdateDailyReflection(id string, updates map[string]any) (*model.DailyReflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reflections.patch(id, updates)
}

func (s *MemStore) DeleteDailyReflection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections.remove(id)
	return nil
}

func (s *MemStore) ListClientQualifications() ([]model.ClientQualification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quals.list(), nil
}

func (s *MemStore) CreateClientQualification(q *model.ClientQualification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quals.insert(q)
	return nil
}

func (s *MemStore) UpdateClientQualification(id string, updates map[string]any) (*model.ClientQualification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quals.patch(id, updates)
}

func (s *MemStore) DeleteClientQualification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quals.remove(id)
	return nil
}

func (s *MemStore) ListReferrals() ([]model.Referral, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.referrals.list(), nil
}

func (s *MemStore) CreateReferral(r *model.Referral) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals.insert(r)
	return nil
}

func (s *MemStore) UpdateReferral(id string, updates map[string]any) (*model.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.referrals.patch(id, updates)
}

func (s *MemStore) DeleteReferral(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals.remove(id)
	return nil
}

func (s *MemStore) ListClientAnalyses() ([]model.ClientAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analyses.list(), nil
}

func (s *MemStore) CreateClientAnalysis(a *model.ClientAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses.insert(a)
	return nil
}

func (s *MemStore) UpdateClientAnalysis(id string, updates map[string]any) (*model.ClientAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyses.patch(id, updates)
}

func (s *MemStore) DeleteClientAnalysis(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses.remove(id)
	return nil
}

// memConversations is one in-memory assistant namespace. It shares the
// parent store's lock.
type memConversations struct {
	mu    *sync.RWMutex
	convs memTable[model.Conversation]
	msgs  memTable[model.Message]
}

func (m *memConversations) ListConversations() ([]model.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.convs.list(), nil
}

func (m *memConversations) GetConversation(id string) (*model.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.convs.find(id), nil
}

func (m *memConversations) CreateConversation(conv *model.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.convs.insert(conv)
	return nil
}

func (m *memConversations) DeleteConversation(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.msgs.rows[:0]
	for _, msg := range m.msgs.rows {
		if msg.ConversationID != id {
			kept = append(kept, msg)
		}
	}
	m.msgs.rows = kept
	m.convs.remove(id)
	return nil
}

func (m *memConversations) ListMessages(conversationID string) ([]model.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Message
	for _, msg := range m.msgs.rows {
		if msg.ConversationID == conversationID {
			out = append(out, *msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memConversations) CreateMessage(msg *model.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs.insert(msg)
	return nil
}
