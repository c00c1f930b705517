package seeders

import (
	"time"

	"github.com/lac-hong-legacy/edu_api/model"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GameSeeder handles seeding games and achievements
type GameSeeder struct {
	db *gorm.DB
}

// NewGameSeeder creates a new game seeder
func NewGameSeeder(db *gorm.DB) *GameSeeder {
	return &GameSeeder{db: db}
}

// SeedGames seeds the game catalogue. Subjects must exist first.
func (s *GameSeeder) SeedGames() error {
	for _, game := range s.getGames() {
		if err := createIfMissing(s.db, &model.Game{}, game.ID, &game, game.Name); err != nil {
			return err
		}
	}

	log.Info("Game seeding completed successfully")
	return nil
}

// SeedAchievements seeds the achievement definitions
func (s *GameSeeder) SeedAchievements() error {
	for _, achievement := range s.getAchievements() {
		if err := createIfMissing(s.db, &model.Achievement{}, achievement.ID, &achievement, achievement.Name); err != nil {
			return err
		}
	}

	log.Info("Achievement seeding completed successfully")
	return nil
}

func (s *GameSeeder) getGames() []model.Game {
	now := time.Now()

	return []model.Game{
		{
			ID:              "game_math_quiz_adventure",
			Name:            "Math Quiz Adventure",
			Description:     "Fun math quiz with adventure elements",
			GameType:        model.GameTypeQuiz,
			SubjectID:       strPtr("subject_math_1"),
			DifficultyLevel: "medium",
			PointsReward:    100,
			TimeLimit:       300,
			IsActive:        true,
			CreatedAt:       now,
		},
		{
			ID:              "game_science_puzzle_lab",
			Name:            "Science Puzzle Lab",
			Description:     "Interactive science puzzles",
			GameType:        model.GameTypePuzzle,
			SubjectID:       strPtr("subject_science_1"),
			DifficultyLevel: "medium",
			PointsReward:    80,
			TimeLimit:       240,
			IsActive:        true,
			CreatedAt:       now.Add(time.Second),
		},
		{
			ID:              "game_word_building",
			Name:            "Word Building Challenge",
			Description:     "Build words and learn vocabulary",
			GameType:        model.GameTypeStrategy,
			SubjectID:       strPtr("subject_english_1"),
			DifficultyLevel: "medium",
			PointsReward:    90,
			TimeLimit:       180,
			IsActive:        true,
			CreatedAt:       now.Add(2 * time.Second),
		},
	}
}

func (s *GameSeeder) getAchievements() []model.Achievement {
	now := time.Now()

	return []model.Achievement{
		{ID: "achievement_first_steps", Name: "First Steps", Description: "Complete your first lesson", PointsReward: 50, CriteriaType: model.CriteriaCompletion, CriteriaValue: 1, IsActive: true, CreatedAt: now},
		{ID: "achievement_streak_master", Name: "Streak Master", Description: "Maintain a 7-day learning streak", PointsReward: 100, CriteriaType: model.CriteriaStreak, CriteriaValue: 7, IsActive: true, CreatedAt: now},
		{ID: "achievement_perfect_score", Name: "Perfect Score", Description: "Get 100% accuracy on a quiz", PointsReward: 200, CriteriaType: model.CriteriaAccuracy, CriteriaValue: 100, IsActive: true, CreatedAt: now},
		{ID: "achievement_social_butterfly", Name: "Social Butterfly", Description: "Join 3 study groups", PointsReward: 150, CriteriaType: model.CriteriaSocial, CriteriaValue: 3, IsActive: true, CreatedAt: now},
	}
}

func strPtr(s string) *string {
	return &s
}
