package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hoteleo-server/models"
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
	dbName := envOrDefault("DB_NAME", "hoteleo")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts a handful of demo rooms when the table is empty, one
// per price bracket so the budget filter has something to show.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		return
	}

	rooms := []models.Room{
		{
			Title:        "Cozy City Single",
			Image:        "https://images.hoteleo.dev/rooms/city-single.jpg",
			Price:        850,
			Description:  "Compact single room near the old town.",
			Location:     "Lisbon",
			BedType:      "Single",
			Size:         "18 sqm",
			MaxGuests:    1,
			Amenities:    []string{"WiFi", "Air conditioning"},
			Features:     []string{"City view"},
			Availability: true,
		},
		{
			Title:        "Garden Double",
			Image:        "https://images.hoteleo.dev/rooms/garden-double.jpg",
			Price:        1200,
			Description:  "Double room opening onto the courtyard garden.",
			Location:     "Porto",
			BedType:      "Double",
			Size:         "26 sqm",
			MaxGuests:    2,
			Amenities:    []string{"WiFi", "Breakfast", "Minibar"},
			Features:     []string{"Garden view", "Balcony"},
			Availability: true,
		},
		{
			Title:        "Ocean View Suite",
			Image:        "https://images.hoteleo.dev/rooms/ocean-suite.jpg",
			Price:        2100,
			Description:  "Corner suite with a full ocean panorama.",
			Location:     "Madeira",
			BedType:      "King",
			Size:         "48 sqm",
			MaxGuests:    4,
			Amenities:    []string{"WiFi", "Breakfast", "Minibar", "Bathtub"},
			Features:     []string{"Ocean view", "Balcony", "Lounge area"},
			Tags:         []string{"popular"},
			Availability: true,
		},
	}

	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed demo rooms: %v", err)
		return
	}
	log.Println("Demo rooms seeded")
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

	if err := DB.AutoMigrate(&models.Room{}); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
