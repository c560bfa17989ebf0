package database

import (
	"fmt"

	"github.com/pawsuite/salon-api/internal/config"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Msg("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		// Accounts and RBAC
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Salon domain
		&entity.Customer{},
		&entity.Pet{},
		&entity.Service{},
		&entity.Staff{},
		&entity.Appointment{},
		&entity.Transaction{},
		&entity.TransactionItem{},

		// System entities
		&entity.SalonSettings{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

var rolePermissions = map[string][]string{
	"admin": {
		"manage-appointments",
		"manage-customers",
		"manage-catalog",
		"manage-staff",
		"manage-checkout",
		"manage-settings",
		"manage-users",
		"view-reports",
	},
	"manager": {
		"manage-appointments",
		"manage-customers",
		"manage-catalog",
		"manage-staff",
		"manage-checkout",
		"manage-settings",
		"view-reports",
	},
	"groomer": {
		"manage-appointments",
		"manage-customers",
	},
	"receptionist": {
		"manage-appointments",
		"manage-customers",
		"manage-checkout",
	},
}

// SeedDefaultData seeds roles, permissions, the settings row, and an optional
// admin account configured through ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedDefaultData(db *gorm.DB) error {
	log.Info().Msg("seeding default data")

	permissionNames := map[string]bool{}
	for _, perms := range rolePermissions {
		for _, p := range perms {
			permissionNames[p] = true
		}
	}

	for name := range permissionNames {
		var existing entity.Permission
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Permission{Name: name}).Error; err != nil {
				log.Warn().Err(err).Str("permission", name).Msg("failed to create permission")
			}
		}
	}

	var allPermissions []entity.Permission
	db.Find(&allPermissions)
	byName := make(map[string]entity.Permission, len(allPermissions))
	for _, p := range allPermissions {
		byName[p.Name] = p
	}

	for roleName, permNames := range rolePermissions {
		var role entity.Role
		if err := db.Where("name = ?", roleName).First(&role).Error; err == nil {
			continue
		}

		perms := make([]entity.Permission, 0, len(permNames))
		for _, name := range permNames {
			if p, ok := byName[name]; ok {
				perms = append(perms, p)
			}
		}
		role = entity.Role{Name: roleName, Permissions: perms}
		if err := db.Create(&role).Error; err != nil {
			log.Warn().Err(err).Str("role", roleName).Msg("failed to create role")
		}
	}

	seedSettings(db)
	seedAdminUser(db)

	log.Info().Msg("default data seeding completed")
	return nil
}

// seedSettings creates the single salon settings row when missing
func seedSettings(db *gorm.DB) {
	var existing entity.SalonSettings
	if err := db.First(&existing).Error; err != nil {
		if err := db.Create(entity.DefaultSalonSettings()).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed salon settings")
		}
	}
}

// seedAdminUser creates the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and the account does not exist yet.
func seedAdminUser(db *gorm.DB) {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")
	if adminEmail == "" || adminPassword == "" {
		return
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("failed to hash admin password")
		return
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		log.Warn().Err(err).Msg("admin role missing, skipping admin user seed")
		return
	}

	if adminName == "" {
		adminName = "Salon Admin"
	}
	firstName := adminName
	lastName := ""
	for i, c := range adminName {
		if c == ' ' {
			firstName = adminName[:i]
			lastName = adminName[i+1:]
			break
		}
	}

	adminUser := entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Provider:  "local",
		Roles:     []entity.Role{adminRole},
	}
	if err := db.Create(&adminUser).Error; err != nil {
		log.Warn().Err(err).Msg("failed to create admin user")
		return
	}
	log.Info().Str("email", adminEmail).Msg("admin user created")
}
