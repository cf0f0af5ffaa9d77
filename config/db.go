package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitcoach-backend/models"
)

var DB *gorm.DB

// DatabaseName holds the resolved schema name for the diagnostic endpoint.
var DatabaseName string

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DATABASE_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DATABASE_NAME", "fitcoach_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}

// SeedDatabase ensures a default consent template exists so signing works
// out of the box on a fresh schema.
func SeedDatabase() {
	var count int64
	DB.Model(&models.ConsentTemplate{}).Count(&count)
	if count > 0 {
		log.Println("Consent templates already seeded")
		return
	}

	template := models.ConsentTemplate{
		ID:      uuid.NewString(),
		Title:   "General Training Consent",
		Version: "v1.0",
		Content: "I consent to participate in coached training sessions and acknowledge the associated risks.",
	}
	if err := DB.Create(&template).Error; err != nil {
		log.Printf("warning: failed to seed consent template: %v", err)
		return
	}
	log.Println("Default consent template seeded")
}

func ConnectDatabase() error {
	dsn, dbName, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db
	DatabaseName = dbName

	if err := DB.AutoMigrate(
		&models.Client{},
		&models.Measurement{},
		&models.Session{},
		&models.WorkoutLog{},
		&models.NutritionEntry{},
		&models.Payment{},
		&models.ConsentTemplate{},
		&models.SignedConsent{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
