package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"monitorias_backend/internals/constants"
)

type UsuarioModel struct {
	UsuarioID           uint      `gorm:"column:usuario_id;primaryKey;autoIncrement" json:"usuario_id"`
	UsuarioNombre       string    `gorm:"column:usuario_nombre;type:varchar(150);not null" json:"usuario_nombre"`
	UsuarioCorreo       string    `gorm:"column:usuario_correo;type:varchar(150);uniqueIndex;not null" json:"usuario_correo"`
	UsuarioPasswordHash string    `gorm:"column:usuario_password_hash;type:varchar(200);not null" json:"-"`
	UsuarioRol          string    `gorm:"column:usuario_rol;type:varchar(50);not null" json:"usuario_rol"`
	UsuarioCodigo       *string   `gorm:"column:usuario_codigo;type:varchar(50)" json:"usuario_codigo,omitempty"`
	UsuarioSemestre     *string   `gorm:"column:usuario_semestre;type:varchar(10)" json:"usuario_semestre,omitempty"` // solo estudiantes: "1".."10"
	UsuarioPromedio     *float64  `gorm:"column:usuario_promedio" json:"usuario_promedio,omitempty"`
	UsuarioHorasDisp    *int      `gorm:"column:usuario_horas_disponibles" json:"usuario_horas_disponibles,omitempty"`
	UsuarioHorario      *string   `gorm:"column:usuario_horario;type:varchar(100)" json:"usuario_horario,omitempty"`
	UsuarioCreatedAt    time.Time `gorm:"column:usuario_created_at;autoCreateTime" json:"usuario_created_at"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

func (u *UsuarioModel) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UsuarioPasswordHash = string(hash)
	return nil
}

func (u *UsuarioModel) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UsuarioPasswordHash), []byte(password)) == nil
}

func (u *UsuarioModel) IsCoordinator() bool { return u.UsuarioRol == constants.RoleCoordinator }
func (u *UsuarioModel) IsProfessor() bool   { return u.UsuarioRol == constants.RoleProfessor }
func (u *UsuarioModel) IsStudent() bool     { return u.UsuarioRol == constants.RoleStudent }

// EsGestor: coordinadores y profesores administran convocatorias y decisiones.
func (u *UsuarioModel) EsGestor() bool {
	return u.IsCoordinator() || u.IsProfessor()
}
