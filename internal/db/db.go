package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/glowhub/salon-scheduler/internal/config"
	"github.com/glowhub/salon-scheduler/internal/logger"
	"github.com/glowhub/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Service{},
		&models.BusinessHours{},
		&models.Customer{},
		&models.Appointment{},
		&models.Blockout{},
		&models.AuditLog{},
	); err != nil {
		logger.L().Fatal("failed to migrate", zap.Error(err))
	}

	installExclusionConstraint(db)

	db.Exec(`
        UPDATE tenants
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}

// As colunas de instante migram como timestamptz, então o range da constraint
// precisa ser tstzrange (tsrange só aceita timestamp sem fuso).
const exclusionConstraintDDL = `
        DO $$ BEGIN
            ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    tenant_id WITH =,
                    professional_id WITH =,
                    tstzrange(start_time, end_time) WITH &&
                )
                WHERE (status <> 'CANCELED');
        EXCEPTION
            WHEN duplicate_object THEN NULL;
            WHEN duplicate_table THEN NULL;
        END $$
    `

// installExclusionConstraint é a guarda autoritativa contra overbooking: mesmo
// que duas requisições passem pela checagem de conflito ao mesmo tempo, o
// banco rejeita a segunda escrita (SQLSTATE 23P01).
func installExclusionConstraint(db *gorm.DB) {
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)

	if res := db.Exec(exclusionConstraintDDL); res.Error != nil {
		logger.L().Fatal("failed to install exclusion constraint", zap.Error(res.Error))
	}
}
