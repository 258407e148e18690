// Command seed loads a demo data set: a staff account, a few participants
// and volunteers, and two upcoming events with registration questions.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/communitydesk/eventdesk/internal/config"
	"github.com/communitydesk/eventdesk/internal/db"
	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/logger"
	"github.com/communitydesk/eventdesk/internal/repository"
	"github.com/communitydesk/eventdesk/internal/repository/dao"
	"github.com/communitydesk/eventdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("config.Load -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("logger.Init -> %w", err)
	}

	var gormDB *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		gormDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		gormDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("db.OpenPostgres -> %w", err)
	}

	ctx := context.Background()

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(gormDB)))
	eventSvc := service.NewEventService(repository.NewEventRepository(dao.NewEventDAO(gormDB)))

	users := []domain.User{
		{Name: "Dana Okafor", Email: "dana@eventdesk.local", Role: domain.RoleStaff, Password: "staffpass1"},
		{Name: "Priya Shah", Email: "priya@eventdesk.local", Role: domain.RoleParticipant, Password: "password1"},
		{Name: "Marcus Lee", Email: "marcus@eventdesk.local", Role: domain.RoleVolunteer, Tier: domain.TierSilver, Password: "password2"},
	}
	for _, u := range users {
		created, err := userSvc.CreateUser(ctx, u)
		if err != nil {
			zap.L().Warn("skipping user", zap.String("email", u.Email), zap.Error(err))

			continue
		}
		zap.L().Info("seeded user", zap.Uint("id", created.ID), zap.String("email", created.Email))
	}

	nextSaturday := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour).Add(10 * time.Hour)
	events := []domain.Event{
		{
			Name:     "Community Garden Day",
			Start:    nextSaturday,
			End:      nextSaturday.Add(4 * time.Hour),
			Location: "Riverside Allotments",
			Questions: []domain.Question{
				{
					Text:       "Any dietary requirements for lunch?",
					Type:       domain.QuestionTypeText,
					TargetRole: domain.RoleParticipant,
				},
				{
					Text:       "Which shift can you cover?",
					Type:       domain.QuestionTypeSelect,
					Options:    []string{"Morning", "Afternoon"},
					TargetRole: domain.RoleVolunteer,
				},
			},
		},
		{
			Name:     "Winter Fundraiser Gala",
			Start:    nextSaturday.AddDate(0, 1, 0).Add(8 * time.Hour),
			End:      nextSaturday.AddDate(0, 1, 0).Add(13 * time.Hour),
			Location: "Town Hall",
			MinTier:  domain.TierSilver,
			Questions: []domain.Question{
				{
					Text:       "Which activities interest you?",
					Type:       domain.QuestionTypeMultiSelect,
					Options:    []string{"Auction", "Raffle", "Dinner"},
					TargetRole: domain.RoleParticipant,
				},
			},
		},
	}
	for _, e := range events {
		created, err := eventSvc.CreateEvent(ctx, e)
		if err != nil {
			zap.L().Warn("skipping event", zap.String("name", e.Name), zap.Error(err))

			continue
		}
		zap.L().Info("seeded event", zap.Uint("id", created.ID), zap.String("name", created.Name))
	}

	return nil
}
