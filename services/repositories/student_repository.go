package repositories

import (
	"time"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository owns progress rows and the points/level columns.
type StudentRepository struct {
	BaseRepository
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *StudentRepository) GetStudentByUserID(userID string) (*model.Student, error) {
	var student model.Student
	if err := ds.db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (ds *StudentRepository) GetStudent(studentID string) (*model.Student, error) {
	var student model.Student
	if err := ds.db.Where("id = ?", studentID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (ds *StudentRepository) TopicExists(topicID string) (bool, error) {
	var count int64
	if err := ds.db.Model(&model.Topic{}).Where("id = ?", topicID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertProgress writes one progress update for (studentID, req.TopicID).
// Completion is replaced; time and question counters accumulate.
func (ds *StudentRepository) UpsertProgress(tx *gorm.DB, studentID string, req dto.ProgressRequest, now time.Time) error {
	row := model.StudentProgress{
		ID:                   newID(),
		StudentID:            studentID,
		TopicID:              req.TopicID,
		CompletionPercentage: req.CompletionPercentage,
		TimeSpent:            req.TimeSpent,
		QuestionsAttempted:   req.QuestionsAttempted,
		QuestionsCorrect:     req.QuestionsCorrect,
		LastAccessed:         &now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	return ds.conn(tx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completion_percentage": req.CompletionPercentage,
			"time_spent":            gorm.Expr("student_progress.time_spent + ?", req.TimeSpent),
			"questions_attempted":   gorm.Expr("student_progress.questions_attempted + ?", req.QuestionsAttempted),
			"questions_correct":     gorm.Expr("student_progress.questions_correct + ?", req.QuestionsCorrect),
			"last_accessed":         now,
			"updated_at":            now,
		}),
	}).Create(&row).Error
}

func (ds *StudentRepository) GetProgress(studentID, topicID string) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := ds.db.Where("student_id = ? AND topic_id = ?", studentID, topicID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// awardSQL increments the counters and derives the level in one statement.
// MySQL evaluates SET assignments left to right, so total_points already
// holds the new value there; other dialects see the pre-update row.
func awardSQL(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return `UPDATE students SET total_points = total_points + ?, daily_points = daily_points + ?,
			current_level = total_points DIV 100 + 1, updated_at = ? WHERE id = ?`
	}
	return `UPDATE students SET total_points = total_points + ?, daily_points = daily_points + ?,
		current_level = (total_points + ?) / 100 + 1, updated_at = ? WHERE id = ?`
}

// AwardPoints is the only writer of total_points, daily_points and
// current_level. Pass the caller's transaction so its own writes commit
// or roll back together with the points.
func (ds *StudentRepository) AwardPoints(tx *gorm.DB, studentID string, delta int) (*dto.AwardResult, error) {
	db := ds.conn(tx)

	var before model.Student
	if err := db.Select("id", "current_level").Where("id = ?", studentID).First(&before).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	args := []interface{}{delta, delta}
	if db.Dialector.Name() != "mysql" {
		args = append(args, delta)
	}
	args = append(args, now, studentID)

	if err := db.Exec(awardSQL(db), args...).Error; err != nil {
		return nil, err
	}

	var after model.Student
	if err := db.Where("id = ?", studentID).First(&after).Error; err != nil {
		return nil, err
	}

	return &dto.AwardResult{
		StudentID:    after.ID,
		PointsEarned: delta,
		TotalPoints:  after.TotalPoints,
		PrevLevel:    before.CurrentLevel,
		NewLevel:     after.CurrentLevel,
	}, nil
}

type leaderboardRow struct {
	StudentID    string
	FirstName    string
	LastName     string
	TotalPoints  int
	CurrentLevel int
	GradeLevel   int
}

// Leaderboard ranks active students by total points, ties broken by
// student id so the order is stable between calls.
func (ds *StudentRepository) Leaderboard(limit int) ([]dto.LeaderboardEntry, error) {
	var rows []leaderboardRow
	err := ds.db.Table("students").
		Select(`students.id AS student_id, users.first_name, users.last_name,
			students.total_points, students.current_level, students.grade_level`).
		Joins("JOIN users ON users.id = students.user_id").
		Where("users.is_active = ?", true).
		Order("students.total_points DESC").
		Order("students.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:         i + 1,
			StudentID:    r.StudentID,
			Name:         r.FirstName + " " + r.LastName,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			TotalPoints:  r.TotalPoints,
			CurrentLevel: r.CurrentLevel,
			GradeLevel:   r.GradeLevel,
		})
	}
	return entries, nil
}

// SubjectProgress averages completion per subject for one student.
func (ds *StudentRepository) SubjectProgress(studentID string) ([]dto.SubjectProgress, error) {
	var rows []dto.SubjectProgress
	err := ds.db.Table("student_progress").
		Select(`subjects.id AS subject_id, subjects.name AS subject_name,
			AVG(student_progress.completion_percentage) AS avg_progress,
			SUM(CASE WHEN student_progress.completion_percentage >= 100 THEN 1 ELSE 0 END) AS topics_completed`).
		Joins("JOIN topics ON topics.id = student_progress.topic_id").
		Joins("JOIN subjects ON subjects.id = topics.subject_id").
		Where("student_progress.student_id = ?", studentID).
		Group("subjects.id, subjects.name").
		Order("subjects.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (ds *StudentRepository) Achievements(studentID string) ([]dto.StudentAchievementResponse, error) {
	var rows []dto.StudentAchievementResponse
	err := ds.db.Table("student_achievements").
		Select(`achievements.name, achievements.description, achievements.icon_url,
			achievements.points_reward, student_achievements.earned_at, student_achievements.points_earned`).
		Joins("JOIN achievements ON achievements.id = student_achievements.achievement_id").
		Where("student_achievements.student_id = ?", studentID).
		Order("student_achievements.earned_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (ds *StudentRepository) ListStudents() ([]dto.AdminStudent, error) {
	var rows []dto.AdminStudent
	err := ds.db.Table("users").
		Select(`users.id, students.id AS student_id, users.first_name, users.last_name, users.email,
			users.is_active, students.grade_level, students.current_level, students.total_points,
			students.daily_points, students.streak_days, students.last_login`).
		Joins("JOIN students ON students.user_id = users.id").
		Where("users.role = ?", model.RoleStudent).
		Order("students.total_points DESC").
		Order("students.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
