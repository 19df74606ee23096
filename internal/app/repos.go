package app

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Repos struct {
	Account  repos.AccountRepo
	Course   repos.CourseRepo
	File     repos.FileRepo
	Profile  repos.ProfileRepo
	Research repos.ResearchRepo
}

func wireRepos(db *mongo.Database, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Account:  repos.NewAccountRepo(db, log),
		Course:   repos.NewCourseRepo(db, log),
		File:     repos.NewFileRepo(db, log),
		Profile:  repos.NewProfileRepo(db, log),
		Research: repos.NewResearchRepo(db, log),
	}
}
