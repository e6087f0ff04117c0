package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	CourseRepository  *CourseRepository
	InquiryRepository *InquiryRepository
	StatsRepository   *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		CourseRepository:  NewCourseRepository(db),
		InquiryRepository: NewInquiryRepository(db),
		StatsRepository:   NewStatsRepository(db),
	}
}
