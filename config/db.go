package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"restaurant-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
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
		return "", fmt.Errorf("mysql url missing database name")
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

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "restaurant_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures the minimum fixture rows exist: a default admin, the
// restaurant settings row, and a starter menu. Idempotent by count checks.
func SeedDatabase() {
	// ---------------- Admin ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@restaurant.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Restaurant settings ----------------
	var settingCount int64
	DB.Model(&models.RestaurantSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.RestaurantSetting{
			Name:     "My Restaurant",
			Currency: "THB",
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed restaurant settings: %v", err)
		} else {
			log.Println("Restaurant settings seeded")
		}
	}

	// ---------------- Menu ----------------
	var categoryCount int64
	DB.Model(&models.MenuCategory{}).Count(&categoryCount)
	if categoryCount == 0 {
		categories := []models.MenuCategory{
			{RestaurantID: 1, Name: "Mains", DisplayOrder: 1},
			{RestaurantID: 1, Name: "Drinks", DisplayOrder: 2},
			{RestaurantID: 1, Name: "Desserts", DisplayOrder: 3},
		}
		if err := DB.Create(&categories).Error; err != nil {
			log.Printf("warning: failed to seed menu categories: %v", err)
			return
		}

		items := []models.MenuItem{
			{CategoryID: categories[0].ID, Name: "Pad Thai", Price: 12000, IsAvailable: true},
			{CategoryID: categories[0].ID, Name: "Green Curry", Price: 15000, IsAvailable: true},
			{CategoryID: categories[1].ID, Name: "Iced Tea", Price: 5000, IsAvailable: true},
			{CategoryID: categories[2].ID, Name: "Mango Sticky Rice", Price: 9000, IsAvailable: true},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed menu items: %v", err)
		} else {
			log.Println("Menu seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
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

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.RestaurantSetting{},
		&models.Customer{},
		&models.FloorPlan{},
		&models.Table{},
		&models.TableConfig{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
