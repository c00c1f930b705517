package repositories

import (
	"time"

	"github.com/lac-hong-legacy/edu_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles user and credential database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

const userWithStudentColumns = `users.*,
	students.id AS student_id,
	students.grade_level AS grade_level,
	students.current_level AS current_level,
	students.total_points AS total_points,
	students.daily_points AS daily_points,
	students.streak_days AS streak_days,
	students.last_login AS last_login`

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) getUserWithStudent(where string, arg interface{}) (*model.UserWithStudent, error) {
	var rows []model.UserWithStudent
	err := ds.db.Table("users").
		Select(userWithStudentColumns).
		Joins("LEFT JOIN students ON students.user_id = users.id").
		Where(where, arg).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// GetUserWithStudent loads a user and, for students, the linked student row.
func (ds *UserRepository) GetUserWithStudent(userID string) (*model.UserWithStudent, error) {
	return ds.getUserWithStudent("users.id = ?", userID)
}

func (ds *UserRepository) GetUserWithStudentByEmail(email string) (*model.UserWithStudent, error) {
	return ds.getUserWithStudent("users.email = ?", email)
}

func (ds *UserRepository) IsEmailAvailable(email string) (bool, error) {
	var count int64
	if err := ds.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateUserWithStudent inserts the user and, when student is non-nil, its
// student row in one transaction.
func (ds *UserRepository) CreateUserWithStudent(user *model.User, student *model.Student) error {
	now := time.Now()
	if user.ID == "" {
		user.ID = newID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	return ds.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if student == nil {
			return nil
		}

		if student.ID == "" {
			student.ID = newID()
		}
		student.UserID = user.ID
		if student.CurrentLevel == 0 {
			student.CurrentLevel = model.LevelFor(student.TotalPoints)
		}
		student.CreatedAt = now
		student.UpdatedAt = now
		return tx.Create(student).Error
	})
}

// RecordLogin stamps last_login and advances the login streak. Users without
// a student row are left untouched and yield gorm.ErrRecordNotFound.
func (ds *UserRepository) RecordLogin(userID string, now time.Time) (*model.Student, error) {
	var student model.Student
	err := ds.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("user_id = ?", userID)
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&student).Error; err != nil {
			return err
		}

		student.StreakDays = model.NextStreak(student.StreakDays, student.LastLogin, now)
		student.LastLogin = &now

		return tx.Model(&model.Student{}).Where("id = ?", student.ID).Updates(map[string]interface{}{
			"streak_days": student.StreakDays,
			"last_login":  now,
			"updated_at":  now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (ds *UserRepository) UpdateAvatar(userID, avatarURL string) error {
	result := ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"avatar_url": avatarURL,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetActive flips the active flag; accounts are never hard-deleted.
func (ds *UserRepository) SetActive(userID string, active bool) error {
	result := ds.db.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ds *UserRepository) CountActiveUsers(role string) (int64, error) {
	var count int64
	q := ds.db.Model(&model.User{}).Where("is_active = ?", true)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
