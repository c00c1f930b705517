package model

import "time"

// StudentProgress accumulates one student's work on one topic.
// (student_id, topic_id) is unique; the ledger upserts against it.
type StudentProgress struct {
	ID                   string     `json:"id" gorm:"primaryKey;size:36"`
	StudentID            string     `json:"studentId" gorm:"not null;uniqueIndex:idx_student_topic;size:36"`
	TopicID              string     `json:"topicId" gorm:"not null;uniqueIndex:idx_student_topic;size:36"`
	CompletionPercentage float64    `json:"completionPercentage" gorm:"not null"`
	TimeSpent            int        `json:"timeSpent" gorm:"not null"`
	QuestionsAttempted   int        `json:"questionsAttempted" gorm:"not null"`
	QuestionsCorrect     int        `json:"questionsCorrect" gorm:"not null"`
	LastAccessed         *time.Time `json:"lastAccessed,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

// AllModels lists every table created at start-up.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Student{},
		&Subject{},
		&Topic{},
		&StudentProgress{},
		&Game{},
		&GameSession{},
		&GameParticipant{},
		&Achievement{},
		&StudentAchievement{},
	}
}
