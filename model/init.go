package model

import "salesdesk/platform"

func InstallDB() {
	db := platform.DB
	if err := db.AutoMigrate(
		&User{},
		&Deal{},
		&Conversation{},
		&Message{},
		&KnowledgeFile{},
		&SopStep{},
		&Task{},
		&DailyReflection{},
		&ClientQualification{},
		&Referral{},
		&ClientAnalysis{}); err != nil {
		panic(err)
	}
	// The customer success assistant keeps its own copies of the
	// conversation tables.
	if err := db.Table("cs_conversations").AutoMigrate(&Conversation{}); err != nil {
		panic(err)
	}
	if err := db.Table("cs_messages").AutoMigrate(&Message{}); err != nil {
		panic(err)
	}
}
