package seeders

import (
	"errors"
	"time"

	"github.com/lac-hong-legacy/edu_api/model"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogSeeder handles seeding subjects and their topics
type CatalogSeeder struct {
	db *gorm.DB
}

// NewCatalogSeeder creates a new catalog seeder
func NewCatalogSeeder(db *gorm.DB) *CatalogSeeder {
	return &CatalogSeeder{db: db}
}

// SeedSubjects seeds subjects first, then the topics that reference them
func (s *CatalogSeeder) SeedSubjects() error {
	for _, subject := range s.getSubjects() {
		if err := createIfMissing(s.db, &model.Subject{}, subject.ID, &subject, subject.Name); err != nil {
			return err
		}
	}

	for _, topic := range s.getTopics() {
		if err := createIfMissing(s.db, &model.Topic{}, topic.ID, &topic, topic.Name); err != nil {
			return err
		}
	}

	log.Info("Subject and topic seeding completed successfully")
	return nil
}

func (s *CatalogSeeder) getSubjects() []model.Subject {
	now := time.Now()

	return []model.Subject{
		{ID: "subject_math_1", Name: "Mathematics", GradeLevel: 1, Description: "Basic math concepts for grade 1", ColorCode: "#EF4444", IsActive: true, CreatedAt: now},
		{ID: "subject_science_1", Name: "Science", GradeLevel: 1, Description: "Introduction to science for grade 1", ColorCode: "#10B981", IsActive: true, CreatedAt: now},
		{ID: "subject_english_1", Name: "English", GradeLevel: 1, Description: "English language and literature", ColorCode: "#3B82F6", IsActive: true, CreatedAt: now},
		{ID: "subject_math_2", Name: "Mathematics", GradeLevel: 2, Description: "Advanced math concepts for grade 2", ColorCode: "#F59E0B", IsActive: true, CreatedAt: now},
		{ID: "subject_science_2", Name: "Science", GradeLevel: 2, Description: "Science exploration for grade 2", ColorCode: "#8B5CF6", IsActive: true, CreatedAt: now},
		{ID: "subject_technology_3", Name: "Technology", GradeLevel: 3, Description: "Computers, the internet and how software works", ColorCode: "#06B6D4", IsActive: true, CreatedAt: now},
		{ID: "subject_engineering_3", Name: "Engineering", GradeLevel: 3, Description: "Simple machines, materials and design", ColorCode: "#F97316", IsActive: true, CreatedAt: now},
	}
}

func (s *CatalogSeeder) getTopics() []model.Topic {
	now := time.Now()
	topic := func(id, subjectID, name, description, difficulty string, minutes int) model.Topic {
		return model.Topic{
			ID:                id,
			SubjectID:         subjectID,
			Name:              name,
			Description:       description,
			DifficultyLevel:   difficulty,
			EstimatedDuration: minutes,
			IsActive:          true,
			CreatedAt:         now,
		}
	}

	return []model.Topic{
		topic("topic_math_1_counting", "subject_math_1", "Counting to 100", "Count forwards and backwards in ones and tens", "beginner", 20),
		topic("topic_math_1_addition", "subject_math_1", "Addition within 20", "Add two numbers with a sum up to 20", "beginner", 25),
		topic("topic_math_1_shapes", "subject_math_1", "Shapes", "Name and sort circles, squares and triangles", "beginner", 15),
		topic("topic_science_1_plants", "subject_science_1", "Plants", "What plants need to grow", "beginner", 20),
		topic("topic_science_1_weather", "subject_science_1", "Weather", "Sun, rain, wind and the seasons", "beginner", 20),
		topic("topic_english_1_phonics", "subject_english_1", "Phonics", "Letter sounds and blending", "beginner", 25),
		topic("topic_math_2_subtraction", "subject_math_2", "Subtraction within 100", "Subtract two-digit numbers with regrouping", "intermediate", 30),
		topic("topic_math_2_multiplication", "subject_math_2", "Times tables", "Multiplication facts for 2, 5 and 10", "intermediate", 30),
		topic("topic_science_2_animals", "subject_science_2", "Animal habitats", "Where animals live and why", "intermediate", 25),
		topic("topic_technology_3_internet", "subject_technology_3", "The internet", "How computers talk to each other", "intermediate", 30),
		topic("topic_engineering_3_machines", "subject_engineering_3", "Simple machines", "Levers, pulleys and wheels", "intermediate", 30),
	}
}

// createIfMissing inserts row unless a record with id already exists in
// the table of probe.
func createIfMissing(db *gorm.DB, probe interface{}, id string, row interface{}, label string) error {
	err := db.Where("id = ?", id).First(probe).Error
	switch {
	case err == nil:
		log.Debugf("%s already exists, skipping", label)
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.WithError(err).Errorf("Error checking %s", label)
		return err
	}

	if err := db.Create(row).Error; err != nil {
		log.WithError(err).Errorf("Error creating %s", label)
		return err
	}
	log.Infof("Created %s", label)
	return nil
}
