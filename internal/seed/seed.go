package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
	"github.com/ideahub/ideahub/internal/service"
	"github.com/ideahub/ideahub/pkg/config"
)

// Seeder populates a development database with sample data. Running it
// twice is safe; rows identified by email, name or title are not duplicated.
type Seeder struct {
	repo   *db.Repository
	cfg    *config.SeedConfig
	logger *zap.Logger
	rng    *rand.Rand

	users    *service.UserService
	projects *service.ProjectService
	comments *service.CommentService
	messages *service.MessageService
	search   *service.SearchService
}

// New creates a new seeder
func New(repo *db.Repository, cfg *config.SeedConfig, logger *zap.Logger) *Seeder {
	return &Seeder{
		repo:     repo,
		cfg:      cfg,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		users:    service.NewUserService(repo, logger),
		projects: service.NewProjectService(repo, logger),
		comments: service.NewCommentService(repo, logger),
		messages: service.NewMessageService(repo, logger),
		search:   service.NewSearchService(repo, logger),
	}
}

var categories = []models.Category{
	{Name: "Technology", Description: "Software, hardware and everything in between", Icon: "cpu", Color: "#007bff"},
	{Name: "Business & Finance", Description: "Products for commerce, money and markets", Icon: "briefcase", Color: "#28a745"},
	{Name: "Community & Social", Description: "Ideas that bring people together", Icon: "users", Color: "#fd7e14"},
	{Name: "Health & Fitness", Description: "Wellbeing, sport and medical tooling", Icon: "heart", Color: "#dc3545"},
	{Name: "Education", Description: "Learning tools and teaching aids", Icon: "book", Color: "#6f42c1"},
	{Name: "Arts & Entertainment", Description: "Creative and recreational projects", Icon: "music", Color: "#e83e8c"},
}

var tagNames = []string{
	"IoT", "Python", "Mobile App", "AI", "Machine Learning", "React",
	"Web Development", "JavaScript", "Database", "Go", "Open Source",
	"Hardware", "Game", "API", "Automation",
}

type sampleUser struct {
	username  string
	email     string
	firstName string
	lastName  string
	bio       string
	skills    []string
	staff     bool
}

var sampleUsers = []sampleUser{
	{
		username:  "admin",
		email:     "admin@wantanidea.com",
		firstName: "Admin",
		lastName:  "User",
		staff:     true,
	},
	{
		username:  "john_dev",
		email:     "john@example.com",
		firstName: "John",
		lastName:  "Developer",
		bio:       "Full-stack developer with 5 years of experience",
		skills:    []string{"Python", "React", "Django", "JavaScript"},
	},
	{
		username:  "jane_designer",
		email:     "jane@example.com",
		firstName: "Jane",
		lastName:  "Designer",
		bio:       "UI/UX designer passionate about user experience",
		skills:    []string{"Figma", "Adobe XD", "HTML", "CSS"},
	},
	{
		username:  "mike_ml",
		email:     "mike@example.com",
		firstName: "Mike",
		lastName:  "AI Engineer",
		bio:       "Machine learning engineer working on innovative AI solutions",
		skills:    []string{"Python", "TensorFlow", "PyTorch", "Data Science"},
	},
}

type sampleProject struct {
	title         string
	description   string
	category      string
	difficulty    string
	estimatedTime string
	skills        []string
	techStack     []string
	tags          []string
	authorEmail   string
}

var sampleProjects = []sampleProject{
	{
		title:         "Smart Garden Monitoring System",
		description:   "Develop an IoT-based system that monitors soil moisture, temperature, and light levels in gardens. The system should send alerts to users when plants need watering or care, and provide recommendations for optimal plant growth.",
		category:      "Technology",
		difficulty:    models.DifficultyIntermediate,
		estimatedTime: models.TimeEstimateMonth,
		skills:        []string{"Python", "Arduino", "IoT", "Mobile Development"},
		techStack:     []string{"Python", "Arduino", "React Native", "Firebase"},
		tags:          []string{"IoT", "Python", "Mobile App"},
		authorEmail:   "john@example.com",
	},
	{
		title:         "AI-Powered Personal Finance Assistant",
		description:   "Create an intelligent personal finance app that analyzes spending patterns, categorizes expenses automatically, and provides personalized budgeting recommendations using machine learning algorithms.",
		category:      "Business & Finance",
		difficulty:    models.DifficultyAdvanced,
		estimatedTime: models.TimeEstimateQuarter,
		skills:        []string{"Machine Learning", "Python", "React", "Data Analysis"},
		techStack:     []string{"Python", "TensorFlow", "React", "PostgreSQL"},
		tags:          []string{"AI", "Machine Learning", "React"},
		authorEmail:   "mike@example.com",
	},
	{
		title:         "Community Skill Exchange Platform",
		description:   "Build a platform where community members can exchange skills and services. Users can offer their expertise (e.g., coding, cooking, music lessons) in exchange for learning new skills from others.",
		category:      "Community & Social",
		difficulty:    models.DifficultyBeginner,
		estimatedTime: models.TimeEstimateWeeks,
		skills:        []string{"Web Development", "JavaScript", "Database Design"},
		techStack:     []string{"JavaScript", "Node.js", "MongoDB", "HTML/CSS"},
		tags:          []string{"Web Development", "JavaScript", "Database"},
		authorEmail:   "jane@example.com",
	},
}

// Run seeds the database
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.seedTags(ctx); err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}

	users, err := s.seedUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	projects, err := s.seedProjects(ctx, users)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	if err := s.seedEngagement(ctx, users, projects); err != nil {
		return fmt.Errorf("seed engagement: %w", err)
	}
	if err := s.seedAnalytics(ctx, users, projects); err != nil {
		return fmt.Errorf("seed analytics: %w", err)
	}

	s.logger.Info("Sample data created",
		zap.Int("users", len(users)),
		zap.Int("projects", len(projects)))
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	repo := db.NewCategoryRepository(s.repo)
	for i := range categories {
		category := categories[i]
		category.IsActive = true
		if _, err := repo.GetByName(ctx, category.Name); err == nil {
			continue
		} else if !db.IsNotFound(err) {
			return err
		}
		if err := repo.Create(ctx, &category); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTags(ctx context.Context) error {
	repo := db.NewTagRepository(s.repo)
	for _, name := range tagNames {
		if _, err := repo.GetByName(ctx, name); err == nil {
			continue
		} else if !db.IsNotFound(err) {
			return err
		}
		if err := repo.Create(ctx, &models.Tag{Name: name}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]*models.User, error) {
	repo := db.NewUserRepository(s.repo)

	var users []*models.User
	create := func(u sampleUser) error {
		existing, err := repo.GetByEmail(ctx, u.email)
		if err == nil {
			users = append(users, existing)
			return nil
		}
		if !db.IsNotFound(err) {
			return err
		}

		skills, _ := json.Marshal(u.skills)
		user := &models.User{
			Email:      u.email,
			Username:   u.username,
			FirstName:  u.firstName,
			LastName:   u.lastName,
			Bio:        u.bio,
			Skills:     skills,
			IsVerified: true,
			IsActive:   true,
			IsStaff:    u.staff,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		users = append(users, user)
		return nil
	}

	for _, u := range sampleUsers {
		if err := create(u); err != nil {
			return nil, err
		}
	}

	for i := len(users); i < s.cfg.Users; i++ {
		if err := create(sampleUser{
			username:  fmt.Sprintf("maker%03d", i),
			email:     fmt.Sprintf("maker%03d@example.com", i),
			firstName: "Maker",
			lastName:  fmt.Sprintf("%03d", i),
			bio:       "Generated development account",
			skills:    pick(s.rng, tagNames, 3),
		}); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Seeder) seedProjects(ctx context.Context, users []*models.User) ([]*models.ProjectIdea, error) {
	categoryRepo := db.NewCategoryRepository(s.repo)
	projectRepo := db.NewProjectRepository(s.repo)

	userByEmail := make(map[string]*models.User, len(users))
	for _, u := range users {
		userByEmail[u.Email] = u
	}

	var projects []*models.ProjectIdea
	admin := userByEmail["admin@wantanidea.com"]

	create := func(p sampleProject) error {
		existing, err := projectRepo.GetByTitle(ctx, p.title)
		if err == nil {
			projects = append(projects, existing)
			return nil
		}
		if !db.IsNotFound(err) {
			return err
		}

		category, err := categoryRepo.GetByName(ctx, p.category)
		if err != nil {
			return err
		}
		author, ok := userByEmail[p.authorEmail]
		if !ok {
			return fmt.Errorf("unknown author %s", p.authorEmail)
		}

		skills, _ := json.Marshal(p.skills)
		stack, _ := json.Marshal(p.techStack)
		project := &models.ProjectIdea{
			Title:          p.title,
			Description:    p.description,
			CategoryID:     category.ID,
			Difficulty:     p.difficulty,
			EstimatedTime:  p.estimatedTime,
			RequiredSkills: skills,
			TechStack:      stack,
			AuthorID:       author.ID,
		}
		if err := s.projects.Create(ctx, project); err != nil {
			return err
		}
		if _, err := s.projects.Transition(ctx, project.ID, models.StatusPublished, admin.ID); err != nil {
			return err
		}
		for _, tagName := range p.tags {
			if err := s.projects.AttachTag(ctx, project.ID, tagName); err != nil && !db.IsConstraintViolation(err) {
				return err
			}
		}
		projects = append(projects, project)
		return nil
	}

	for _, p := range sampleProjects {
		if err := create(p); err != nil {
			return nil, err
		}
	}

	all, err := categoryRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for i := len(projects); i < s.cfg.Projects; i++ {
		title := fmt.Sprintf("Generated Idea %03d", i)
		existing, err := projectRepo.GetByTitle(ctx, title)
		if err == nil {
			projects = append(projects, existing)
			continue
		}
		if !db.IsNotFound(err) {
			return nil, err
		}

		category := all[s.rng.Intn(len(all))]
		author := users[s.rng.Intn(len(users))]
		project := &models.ProjectIdea{
			Title:         title,
			Description:   "Generated development project idea.",
			CategoryID:    category.ID,
			Difficulty:    models.Difficulties[s.rng.Intn(len(models.Difficulties))],
			EstimatedTime: models.TimeEstimates[s.rng.Intn(len(models.TimeEstimates))],
			AuthorID:      author.ID,
		}
		if err := s.projects.Create(ctx, project); err != nil {
			return nil, err
		}
		// Publish most generated projects, leave the rest in draft
		if s.rng.Intn(10) < 8 {
			if _, err := s.projects.Transition(ctx, project.ID, models.StatusPublished, admin.ID); err != nil {
				return nil, err
			}
		}
		for _, tagName := range pick(s.rng, tagNames, 2) {
			if err := s.projects.AttachTag(ctx, project.ID, tagName); err != nil && !db.IsConstraintViolation(err) {
				return nil, err
			}
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *Seeder) seedEngagement(ctx context.Context, users []*models.User, projects []*models.ProjectIdea) error {
	statsRepo := db.NewProjectStatsRepository(s.repo)

	for _, project := range projects {
		var likes, comments int64

		for _, user := range users {
			if s.rng.Intn(4) != 0 {
				continue
			}
			err := s.projects.Like(ctx, project.ID, user.ID)
			if db.IsConstraintViolation(err) {
				continue
			}
			if err != nil {
				return err
			}
			likes++
		}

		views := int64(s.rng.Intn(200))
		for i := int64(0); i < views; i++ {
			view := &models.ProjectView{
				ProjectID: project.ID,
				SessionID: uuid.NewString(),
				IPAddress: fmt.Sprintf("198.51.100.%d", s.rng.Intn(255)),
			}
			if err := s.projects.RecordView(ctx, view); err != nil {
				return err
			}
		}

		var firstComment *models.Comment
		for i := 0; i < s.rng.Intn(4); i++ {
			author := users[s.rng.Intn(len(users))]
			comment := &models.Comment{
				ProjectID: project.ID,
				AuthorID:  author.ID,
				Content:   fmt.Sprintf("Comment %d on %s", i+1, project.Title),
			}
			if err := s.comments.Post(ctx, comment); err != nil {
				return err
			}
			comments++
			if firstComment == nil {
				firstComment = comment
			}
		}

		if firstComment != nil && s.rng.Intn(2) == 0 {
			reply := &models.Comment{
				ProjectID: project.ID,
				AuthorID:  project.AuthorID,
				ParentID:  sql.NullInt64{Int64: firstComment.ID, Valid: true},
				Content:   "Thanks for the feedback!",
			}
			if err := s.comments.Post(ctx, reply); err != nil {
				return err
			}
			comments++
		}

		if s.rng.Intn(3) == 0 {
			owner, err := db.NewUserRepository(s.repo).GetByID(ctx, project.AuthorID)
			if err != nil {
				return err
			}
			message := &models.Message{
				ProjectID:   project.ID,
				RecipientID: owner.ID,
				SenderName:  "Interested Visitor",
				SenderEmail: "visitor@example.com",
				Subject:     "Question about " + project.Title,
				Content:     "I would love to hear more about this idea.",
				MessageType: models.MessageTypeInquiry,
			}
			if err := s.messages.Send(ctx, message); err != nil {
				return err
			}
		}

		if _, err := statsRepo.GetByProject(ctx, project.ID); db.IsNotFound(err) {
			if err := statsRepo.Create(ctx, &models.ProjectStats{
				ProjectID:    project.ID,
				ViewCount:    views,
				LikeCount:    likes,
				CommentCount: comments,
			}); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAnalytics(ctx context.Context, users []*models.User, projects []*models.ProjectIdea) error {
	repo := db.NewAnalyticsRepository(s.repo)
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for day := 0; day < s.cfg.Days; day++ {
		date := today.AddDate(0, 0, -day)

		for _, project := range projects {
			if s.rng.Intn(3) != 0 {
				continue
			}
			views := int64(s.rng.Intn(50))
			if err := repo.UpsertProjectAnalytics(ctx, &models.ProjectAnalytics{
				ProjectID:     project.ID,
				Date:          date,
				Views:         views,
				UniqueViews:   views / 2,
				Likes:         int64(s.rng.Intn(10)),
				Comments:      int64(s.rng.Intn(5)),
				DirectTraffic: views / 3,
				SearchTraffic: views / 4,
			}); err != nil {
				return err
			}
		}

		if err := repo.UpsertPlatformStatistics(ctx, &models.PlatformStatistics{
			Date:          date,
			TotalUsers:    int64(len(users)),
			ActiveUsers:   int64(s.rng.Intn(len(users) + 1)),
			TotalProjects: int64(len(projects)),
		}); err != nil {
			return err
		}
	}

	queries := []string{"machine learning", "react dashboard", "garden sensors", "budget app", "beginner python"}
	for _, q := range queries {
		if err := s.search.Record(ctx, &models.SearchQuery{
			Query:        q,
			ResultsCount: int64(s.rng.Intn(30)),
			SessionID:    uuid.NewString(),
		}); err != nil {
			return err
		}
	}

	week := today.AddDate(0, 0, -7)
	for rank, project := range projects {
		if rank >= 10 {
			break
		}
		if err := repo.UpsertTrendingProject(ctx, &models.TrendingProject{
			ProjectID:   project.ID,
			Timeframe:   models.TimeframeWeek,
			PeriodStart: week,
			PeriodEnd:   today,
			TrendScore:  float64(100 - rank*7),
			Rank:        int64(rank + 1),
		}); err != nil {
			return err
		}
	}
	return nil
}

func pick(rng *rand.Rand, from []string, n int) []string {
	idx := rng.Perm(len(from))
	if n > len(from) {
		n = len(from)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, from[i])
	}
	return out
}
