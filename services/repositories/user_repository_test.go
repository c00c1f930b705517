package repositories

import (
	"testing"
	"time"

	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateUserWithStudent(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepository(db)

	user := &model.User{
		Username:     "adalovelace1",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Role:         model.RoleStudent,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		IsActive:     true,
	}
	student := &model.Student{GradeLevel: 4}
	require.NoError(t, repo.CreateUserWithStudent(user, student))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.ID, student.UserID)
	assert.Equal(t, 1, student.CurrentLevel)

	joined, err := repo.GetUserWithStudentByEmail("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, joined.ID)
	require.NotNil(t, joined.StudentID)
	assert.Equal(t, student.ID, *joined.StudentID)
	require.NotNil(t, joined.GradeLevel)
	assert.Equal(t, 4, *joined.GradeLevel)

	available, err := repo.IsEmailAvailable("ada@example.com")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCreateUserWithStudentDuplicateEmailRollsBack(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepository(db)
	testutil.SeedUser(t, db, "dup@example.com", model.RoleStudent)

	user := &model.User{Username: "dup2", Email: "dup@example.com", PasswordHash: "x", Role: model.RoleStudent, FirstName: "Du", LastName: "Pe"}
	err := repo.CreateUserWithStudent(user, &model.Student{GradeLevel: 2})
	require.Error(t, err)

	var students int64
	require.NoError(t, db.Model(&model.Student{}).Count(&students).Error)
	assert.Zero(t, students)
}

func TestGetUserWithStudentForStaff(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepository(db)
	admin := testutil.SeedUser(t, db, "admin@example.com", model.RoleAdmin)

	joined, err := repo.GetUserWithStudent(admin.ID)
	require.NoError(t, err)
	assert.Nil(t, joined.StudentID)
	assert.Nil(t, joined.TotalPoints)

	_, err = repo.GetUserWithStudent("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecordLoginStreak(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepository(db)
	u, _ := testutil.SeedStudent(t, db, "ada", "lovelace", 0)

	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	s, err := repo.RecordLogin(u.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 1, s.StreakDays)

	s, err = repo.RecordLogin(u.ID, day.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, s.StreakDays)

	s, err = repo.RecordLogin(u.ID, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, s.StreakDays)

	s, err = repo.RecordLogin(u.ID, day.AddDate(0, 0, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, s.StreakDays)

	admin := testutil.SeedUser(t, db, "staff@example.com", model.RoleAdmin)
	_, err = repo.RecordLogin(admin.ID, day)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetActive(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepository(db)
	u := testutil.SeedUser(t, db, "t@example.com", model.RoleTeacher)

	require.NoError(t, repo.SetActive(u.ID, false))
	got, err := repo.GetUser(u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, repo.SetActive("missing", true), gorm.ErrRecordNotFound)
}
