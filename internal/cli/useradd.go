package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/valegre/turno/internal/db"
	"github.com/valegre/turno/internal/models"
	"github.com/valegre/turno/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// RunAddUserCommand creates a roster user with a generated temporary
// password. The roster is only ever managed here; the web surface has no
// registration.
func RunAddUserCommand(dbPath string, name string, email string, nonRotating bool) error {
	displayName := strings.TrimSpace(name)
	if displayName == "" {
		return errors.New("name is required")
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	exists, err := users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return fmt.Errorf("user %s already exists", normalizedEmail)
	}

	temporaryPassword, err := security.TemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user := models.User{
		Name:         displayName,
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		NonRotating:  nonRotating,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(&user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Printf("✅ User %s created (id %d)\n", user.Name, user.ID)
	if nonRotating {
		fmt.Println("User is excluded from compensatory rotation.")
	}
	fmt.Printf("Temporary password: %s\n", temporaryPassword)

	return nil
}
