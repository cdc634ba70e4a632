package store

import (
	"errors"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"salesdesk/model"
)

// GormStore is the MySQL-backed Store.
type GormStore struct {
	db    *gorm.DB
	sales gormConversations
	cs    gormConversations
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:    db,
		sales: gormConversations{db: db, convTable: "conversations", msgTable: "messages"},
		cs:    gormConversations{db: db, convTable: "cs_conversations", msgTable: "cs_messages"},
	}
}

func (s *GormStore) Sales() ConversationStore { return &s.sales }
func (s *GormStore) CS() ConversationStore    { return &s.cs }

func listDesc[T any](db *gorm.DB) ([]T, error) {
	var out []T
	err := db.Order("created_at desc").Find(&out).Error
	return out, err
}

func getByID[T any](db *gorm.DB, id string) (*T, error) {
	var row T
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func updateByID[T any](db *gorm.DB, id string, updates map[string]any) (*T, error) {
	row, err := getByID[T](db, id)
	if err != nil || row == nil {
		return nil, err
	}
	if len(updates) == 0 {
		return row, nil
	}
	cols := make(map[string]any, len(updates))
	for k, v := range updates {
		cols[toColumn(k)] = v
	}
	if err := db.Model(row).Where("id = ?", id).Updates(cols).Error; err != nil {
		return nil, err
	}
	return getByID[T](db, id)
}

func deleteByID[T any](db *gorm.DB, id string) error {
	var zero T
	return db.Where("id = ?", id).Delete(&zero).Error
}

// toColumn turns a wire field name into its column name
// (awarenessLevel -> awareness_level).
func toColumn(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *GormStore) GetUser(id string) (*model.User, error) {
	return getByID[model.User](s.db, id)
}

func (s *GormStore) GetUserByUsername(username string) (*model.User, error) {
	var u model.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) CreateUser(u *model.User) error { return s.db.Create(u).Error }

func (s *GormStore) ListDeals() ([]model.Deal, error)       { return listDesc[model.Deal](s.db) }
func (s *GormStore) GetDeal(id string) (*model.Deal, error) { return getByID[model.Deal](s.db, id) }
func (s *GormStore) CreateDeal(d *model.Deal) error         { return s.db.Create(d).Error }
func (s *GormStore) UpdateDeal(id string, updates map[string]any) (*model.Deal, error) {
	return updateByID[model.Deal](s.db, id, updates)
}
func (s *GormStore) DeleteDeal(id string) error { return deleteByID[model.Deal](s.db, id) }

func (s *GormStore) ListKnowledgeFiles() ([]model.KnowledgeFile, error) {
	return listDesc[model.KnowledgeFile](s.db)
}
func (s *GormStore) GetKnowledgeFile(id string) (*model.KnowledgeFile, error) {
	return getByID[model.KnowledgeFile](s.db, id)
}
func (s *GormStore) CreateKnowledgeFile(f *model.KnowledgeFile) error { return s.db.Create(f).Error }
func (s *GormStore) DeleteKnowledgeFile(id string) error {
	return deleteByID[model.KnowledgeFile](s.db, id)
}

func (s *GormStore) ListSopSteps() ([]model.SopStep, error) {
	var out []model.SopStep
	err := s.db.Order("step_number").Find(&out).Error
	return out, err
}
func (s *GormStore) CreateSopStep(step *model.SopStep) error { return s.db.Create(step).Error }
func (s *GormStore) UpdateSopStep(id string, updates map[string]any) (*model.SopStep, error) {
	return updateByID[model.SopStep](s.db, id, updates)
}

func (s *GormStore) ListTasks() ([]model.Task, error) { return listDesc[model.Task](s.db) }
func (s *GormStore) CreateTask(t *model.Task) error   { return s.db.Create(t).Error }
func (s *GormStore) UpdateTask(id string, updates map[string]any) (*model.Task, error) {
	return updateByID[model.Task](s.db, id, updates)
}
func (s *GormStore) DeleteTask(id string) error { return deleteByID[model.Task](s.db, id) }

func (s *GormStore) ListDailyReflections() ([]model.DailyReflection, error) {
	return listDesc[model.DailyReflection](s.db)
}
func (s *GormStore) GetDailyReflectionByDate(date string) (*model.DailyReflection, error) {
	var r model.DailyReflection
	err := s.db.Where("date = ?", date).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
func (s *GormStore) CreateDailyReflection(r *model.DailyReflection) error {
	return s.db.Create(r).Error
}
func (s *GormStore) UpdateDailyReflection(id string, updates map[string]any) (*model.DailyReflection, error) {
	return updateByID[model.DailyReflection](s.db, id, updates)
}
func (s *GormStore) DeleteDailyReflection(id string) error {
	return deleteByID[model.DailyReflection](s.db, id)
}

func (s *GormStore) ListClientQualifications() ([]model.ClientQualification, error) {
	return listDesc[model.ClientQualification](s.db)
}
func (s *GormStore) CreateClientQualification(q *model.ClientQualification) error {
	return s.db.Create(q).Error
}
func (s *GormStore) UpdateClientQualification(id string, updates map[string]any) (*model.ClientQualification, error) {
	return updateByID[model.ClientQualification](s.db, id, updates)
}
func (s *GormStore) DeleteClientQualification(id string) error {
	return deleteByID[model.ClientQualification](s.db, id)
}

func (s *GormStore) ListReferrals() ([]model.Referral, error) { return listDesc[model.Referral](s.db) }
func (s *GormStore) CreateReferral(r *model.Referral) error   { return s.db.Create(r).Error }
func (s *GormStore) UpdateReferral(id string, updates map[string]any) (*model.Referral, error) {
	return updateByID[model.Referral](s.db, id, updates)
}
func (s *GormStore) DeleteReferral(id string) error { return deleteByID[model.Referral](s.db, id) }

func (s *GormStore) ListClientAnalyses() ([]model.ClientAnalysis, error) {
	return listDesc[model.ClientAnalysis](s.db)
}
func (s *GormStore) CreateClientAnalysis(a *model.ClientAnalysis) error {
	return s.db.Create(a).Error
}
func (s *GormStore) UpdateClientAnalysis(id string, updates map[string]any) (*model.ClientAnalysis, error) {
	return updateByID[model.ClientAnalysis](s.db, id, updates)
}
func (s *GormStore) DeleteClientAnalysis(id string) error {
	return deleteByID[model.ClientAnalysis](s.db, id)
}

// gormConversations addresses one conversation/message table pair. The
// sales and CS instances differ only in table names.
type gormConversations struct {
	db        *gorm.DB
	convTable string
	msgTable  string
}

func (g *gormConversations) ListConversations() ([]model.Conversation, error) {
	var out []model.Conversation
	err := g.db.Table(g.convTable).Order("created_at desc").Find(&out).Error
	return out, err
}

func (g *gormConversations) GetConversation(id string) (*model.Conversation, error) {
	var c model.Conversation
	err := g.db.Table(g.convTable).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (g *gormConversations) CreateConversation(conv *model.Conversation) error {
	return g.db.Table(g.convTable).Create(conv).Error
}

func (g *gormConversations) DeleteConversation(id string) error {
	if err := g.db.Table(g.msgTable).Where("conversation_id = ?", id).Delete(&model.Message{}).Error; err != nil {
		return err
	}
	return g.db.Table(g.convTable).Where("id = ?", id).Delete(&model.Conversation{}).Error
}

func (g *gormConversations) ListMessages(conversationID string) ([]model.Message, error) {
	var out []model.Message
	err := g.db.Table(g.msgTable).Where("conversation_id = ?", conversationID).
		Order("created_at").Find(&out).Error
	return out, err
}

func (g *gormConversations) CreateMessage(msg *model.Message) error {
	return g.db.Table(g.msgTable).Create(msg).Error
}
