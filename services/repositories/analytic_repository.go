package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"gorm.io/gorm"
)

type AnalyticRepository struct {
	BaseRepository
}

func NewAnalyticRepository(db *gorm.DB) *AnalyticRepository {
	return &AnalyticRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AnalyticRepository) count(ctx context.Context, value interface{}, query string, args ...interface{}) (int64, error) {
	var n int64
	err := ds.db.WithContext(ctx).Model(value).Where(query, args...).Count(&n).Error
	return n, err
}

func (ds *AnalyticRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	return ds.count(ctx, &model.User{}, "is_active = ?", true)
}

func (ds *AnalyticRepository) CountActiveStudents(ctx context.Context) (int64, error) {
	return ds.count(ctx, &model.User{}, "role = ? AND is_active = ?", model.RoleStudent, true)
}

func (ds *AnalyticRepository) CountActiveGames(ctx context.Context) (int64, error) {
	return ds.count(ctx, &model.Game{}, "is_active = ?", true)
}

func (ds *AnalyticRepository) CountActiveSubjects(ctx context.Context) (int64, error) {
	return ds.count(ctx, &model.Subject{}, "is_active = ?", true)
}

func (ds *AnalyticRepository) CountCompletedSessions(ctx context.Context) (int64, error) {
	return ds.count(ctx, &model.GameSession{}, "status = ?", model.SessionStatusCompleted)
}

// AverageProgress is the mean completion over progress rows that have started.
func (ds *AnalyticRepository) AverageProgress(ctx context.Context) (float64, error) {
	var avg float64
	err := ds.db.WithContext(ctx).Model(&model.StudentProgress{}).
		Select("COALESCE(AVG(completion_percentage), 0)").
		Where("completion_percentage > ?", 0).
		Scan(&avg).Error
	return avg, err
}

type activityRow struct {
	FirstName string
	LastName  string
	GameName  string
	Score     *int
	CreatedAt time.Time
}

// RecentActivity merges the latest registrations and game plays, newest first.
func (ds *AnalyticRepository) RecentActivity(ctx context.Context, perKind, limit int) ([]dto.ActivityItem, error) {
	db := ds.db.WithContext(ctx)

	var registrations []activityRow
	err := db.Table("users").
		Select("users.first_name, users.last_name, users.created_at").
		Where("users.role = ?", model.RoleStudent).
		Order("users.created_at DESC").
		Limit(perKind).
		Scan(&registrations).Error
	if err != nil {
		return nil, err
	}

	var plays []activityRow
	err = db.Table("game_participants").
		Select(`users.first_name, users.last_name, games.name AS game_name,
			game_participants.score, game_participants.joined_at AS created_at`).
		Joins("JOIN users ON users.id = game_participants.user_id").
		Joins("JOIN game_sessions ON game_sessions.id = game_participants.session_id").
		Joins("JOIN games ON games.id = game_sessions.game_id").
		Where("game_sessions.status = ?", model.SessionStatusCompleted).
		Order("game_participants.joined_at DESC").
		Limit(perKind).
		Scan(&plays).Error
	if err != nil {
		return nil, err
	}

	items := make([]dto.ActivityItem, 0, len(registrations)+len(plays))
	for _, r := range registrations {
		items = append(items, dto.ActivityItem{
			ActivityType: dto.ActivityStudentRegistered,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			CreatedAt:    r.CreatedAt,
		})
	}
	for _, r := range plays {
		items = append(items, dto.ActivityItem{
			ActivityType: dto.ActivityGameCompleted,
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			GameName:     r.GameName,
			Score:        r.Score,
			CreatedAt:    r.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// StudentPerformance summarises one student's progress per subject.
func (ds *AnalyticRepository) StudentPerformance(ctx context.Context, studentID string) ([]dto.SubjectPerformance, error) {
	var rows []dto.SubjectPerformance
	err := ds.db.WithContext(ctx).Table("student_progress").
		Select(`subjects.name AS subject_name,
			AVG(student_progress.completion_percentage) AS avg_completion,
			SUM(student_progress.time_spent) AS total_time,
			COUNT(student_progress.id) AS topics_attempted`).
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

type gameStatRow struct {
	GameName      string
	GameType      string
	TotalSessions int
	AvgScore      *float64
	UniquePlayers int
}

// GameStats reports popularity per active game, most played first.
func (ds *AnalyticRepository) GameStats(ctx context.Context) ([]dto.GameAnalytics, error) {
	var rows []gameStatRow
	err := ds.db.WithContext(ctx).Table("games").
		Select(`games.name AS game_name, games.game_type,
			COUNT(DISTINCT game_sessions.id) AS total_sessions,
			AVG(game_participants.score) AS avg_score,
			COUNT(DISTINCT game_participants.user_id) AS unique_players`).
		Joins("LEFT JOIN game_sessions ON game_sessions.game_id = games.id").
		Joins("LEFT JOIN game_participants ON game_participants.session_id = game_sessions.id").
		Where("games.is_active = ?", true).
		Group("games.id, games.name, games.game_type").
		Order("total_sessions DESC").
		Order("games.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]dto.GameAnalytics, 0, len(rows))
	for _, r := range rows {
		stat := dto.GameAnalytics{
			GameName:      r.GameName,
			GameType:      r.GameType,
			TotalSessions: r.TotalSessions,
			UniquePlayers: r.UniquePlayers,
		}
		if r.AvgScore != nil {
			stat.AvgScore = *r.AvgScore
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
