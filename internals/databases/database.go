package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"monitorias_backend/internals/configs"
	convocatoriaModel "monitorias_backend/internals/features/convocatorias/convocatoria/model"
	inscripcionModel "monitorias_backend/internals/features/convocatorias/inscripcion/model"
	notificacionModel "monitorias_backend/internals/features/notificaciones/notificacion/model"
	postulacionModel "monitorias_backend/internals/features/postulaciones/postulacion/model"
	seleccionModel "monitorias_backend/internals/features/postulaciones/seleccion/model"
	userModel "monitorias_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=monitorias&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a la base de datos: %v", err)
	}
	DB = db
	log.Println("✅ DB conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate crea/actualiza el esquema de todas las entidades del dominio.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UsuarioModel{},
		&convocatoriaModel.ConvocatoriaModel{},
		&inscripcionModel.InscripcionModel{},
		&postulacionModel.PostulacionModel{},
		&postulacionModel.EvaluacionModel{},
		&seleccionModel.ConfiguracionSeleccionModel{},
		&seleccionModel.ReporteDescartesModel{},
		&notificacionModel.NotificacionModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate falló: %v", err)
	}
	log.Println("✅ Esquema migrado.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
