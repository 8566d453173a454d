package database

import (
	"context"
	"fmt"

	"student-manager/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SeedStudents are inserted by Migrate when seeding is requested and the
// table is empty.
var SeedStudents = []models.Student{
	{Name: "Ann", Course: models.CourseMath, Mobile: "555"},
	{Name: "Bob", Course: models.CoursePhysics, Mobile: "556"},
	{Name: "Alice", Course: models.CourseBiology, Mobile: "5551234"},
}

// Migrate creates the students table if it does not exist.
func (p *Provider) Migrate(ctx context.Context, seed bool) error {
	p.log.Info("🔄 Starting database migration...", map[string]interface{}{"driver": p.opts.Driver})

	dbx, err := p.WithCreate().Connect(ctx)
	if err != nil {
		return err
	}
	defer dbx.Close()

	var dialector gorm.Dialector
	switch p.opts.Driver {
	case DriverMySQL:
		dialector = mysql.New(mysql.Config{Conn: dbx.DB})
	case DriverSQLite:
		dialector = &sqlite.Dialector{Conn: dbx.DB}
	default:
		dialector = postgres.New(postgres.Config{Conn: dbx.DB})
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return fmt.Errorf("error opening gorm session: %w", err)
	}
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&models.Student{}); err != nil {
		return &WriteError{Op: "migrate", Err: err}
	}
	p.log.Info("✅ Students table verified (id, name, course, mobile)", nil)

	if !seed {
		return nil
	}
	return p.seed(db)
}

func (p *Provider) seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Student{}).Count(&count).Error; err != nil {
		return &QueryError{Op: "seed", Err: err}
	}
	if count > 0 {
		p.log.Info("Database already has data, skipping seed", map[string]interface{}{"rows": count})
		return nil
	}

	students := make([]models.Student, len(SeedStudents))
	copy(students, SeedStudents)
	if err := db.Create(&students).Error; err != nil {
		return &WriteError{Op: "seed", Err: err}
	}

	p.log.Info("🌱 Initial data seeded", map[string]interface{}{"rows": len(students)})
	return nil
}
