package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
)

type seedJob struct {
	title       string
	description string
	location    string
	employer    int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	pool := pg.PoolHandle()
	if pool == nil {
		logger.Fatal("POSTGRES_DSN is required for seeding")
	}

	logger.Info("seeding database")

	// start fresh
	for _, table := range []string{"applications", "jobs", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			logger.Fatal("failed to clear table", zap.String("table", table), zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepository(pool)
	jobRepo := repository.NewJobRepository(pool)

	employers := []struct {
		name  string
		email string
	}{
		{"Tech Innovations Inc.", "hr@techinnovations.com"},
		{"Digital Solutions Ltd.", "jobs@digitalsolutions.com"},
		{"Cloud Systems Global", "careers@cloudsystems.com"},
	}

	employerIDs := make([]string, 0, len(employers))
	for _, e := range employers {
		user, err := createUser(ctx, userRepo, cfg.Auth.BcryptCost, e.name, e.email, "employer123", domain.RoleEmployer)
		if err != nil {
			logger.Fatal("failed to create employer", zap.String("email", e.email), zap.Error(err))
		}
		employerIDs = append(employerIDs, user.ID)
	}

	if _, err := createUser(ctx, userRepo, cfg.Auth.BcryptCost, "John Developer", "john@example.com", "seeker123", domain.RoleUser); err != nil {
		logger.Fatal("failed to create job seeker", zap.Error(err))
	}

	jobs := []seedJob{
		{"Senior Full Stack Developer", "We are looking for an experienced Full Stack Developer to join our growing team. You will work with React, Node.js, and PostgreSQL to build scalable applications. Requirements: 5+ years of experience, strong TypeScript knowledge, and experience with cloud platforms.", "San Francisco, CA", 0},
		{"Frontend Engineer - React", "Join our frontend team to build beautiful and responsive user interfaces. You will collaborate with designers and backend engineers to create amazing user experiences. Required: React expertise, CSS/Tailwind CSS, and TypeScript.", "New York, NY", 0},
		{"Backend Engineer - Node.js", "We need a talented backend engineer to develop robust APIs and microservices. You will work with Node.js, Express, and PostgreSQL. Experience with Docker and Kubernetes is a plus. Competitive salary and benefits.", "Austin, TX", 1},
		{"DevOps Engineer", "Help us build and maintain our cloud infrastructure. You will work with AWS, Docker, Kubernetes, and CI/CD pipelines. We are looking for someone with strong Linux skills and cloud deployment experience.", "Seattle, WA", 1},
		{"Data Scientist", "Join our data science team to work on machine learning projects. You will use Python, TensorFlow, and SQL to analyze and visualize data. PhD or Master's in CS/Statistics preferred.", "Boston, MA", 2},
		{"Product Manager", "Lead product strategy and development for our flagship product. You will work with engineering, design, and marketing teams. Experience with SaaS products and agile methodologies required.", "Remote", 2},
		{"UI/UX Designer", "Create amazing user experiences and interfaces. You will work with Figma, prototyping tools, and collaborate with engineers. Portfolio required. Experience with accessibility standards is a plus.", "Los Angeles, CA", 0},
		{"Mobile Developer - iOS", "Develop native iOS applications using Swift. You will work on our mobile app that serves millions of users. Requirements: 3+ years Swift experience, knowledge of SwiftUI, and App Store submission experience.", "San Jose, CA", 1},
	}

	for _, j := range jobs {
		job := &domain.Job{
			Title:       j.title,
			Description: j.description,
			Location:    j.location,
			EmployerID:  employerIDs[j.employer],
		}
		if err := jobRepo.Create(ctx, job); err != nil {
			logger.Fatal("failed to create job", zap.String("title", j.title), zap.Error(err))
		}
	}

	logger.Info("seeding completed",
		zap.Int("employers", len(employers)),
		zap.Int("jobs", len(jobs)))
	logger.Info("test accounts",
		zap.String("employer", "hr@techinnovations.com / employer123"),
		zap.String("seeker", "john@example.com / seeker123"))
}

func createUser(ctx context.Context, users repository.UserRepository, bcryptCost int, name, email, password string, role domain.Role) (*domain.User, error) {
	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
