package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/valegre/turno/internal/db"
	"github.com/valegre/turno/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	repositories    *db.Repositories
	scheduleService *services.ScheduleService
	periodService   *services.PeriodService
	templates       map[string]*template.Template
}

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type reassignInput struct {
	UserID uint `json:"user_id" form:"user_id"`
}

type periodInput struct {
	UserID    uint   `json:"user_id" form:"user_id"`
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"ownerTag": services.OwnerTag,
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"dashboard",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	repositories := db.NewRepositories(database)
	scheduleService := services.NewScheduleService(repositories.FeedingDays, repositories.Users, location)
	if err := scheduleService.Refresh(); err != nil {
		return nil, fmt.Errorf("load schedule ledger: %w", err)
	}

	return &Handler{
		db:              database,
		secretKey:       []byte(secret),
		location:        location,
		cookieSecure:    cookieSecure,
		repositories:    repositories,
		scheduleService: scheduleService,
		periodService:   services.NewPeriodService(repositories.Periods, repositories.Users, location),
		templates:       templates,
	}, nil
}
