package users

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"monitorias_backend/internals/constants"
	userModel "monitorias_backend/internals/features/users/user/model"
)

type semilla struct {
	Codigo    string
	Correo    string
	Nombre    string
	Rol       string
	Semestre  string
	Promedio  float64
	HorasDisp int
	Horario   string
}

var usuariosIniciales = []semilla{
	{Codigo: "UCOORD-001", Correo: "coordinador@udem.edu.co", Nombre: "Coordinador Académico", Rol: constants.RoleCoordinator, HorasDisp: 10, Horario: "Lun-Vie 08:00-17:00"},
	{Codigo: "UPROF-001", Correo: "profesor@udem.edu.co", Nombre: "Dr. Pedro Martínez", Rol: constants.RoleProfessor, HorasDisp: 8, Horario: "Lun-Jue 08:00-12:00"},
	{Codigo: "USTUD-001", Correo: "estudiante@udem.edu.co", Nombre: "Juan Pérez", Rol: constants.RoleStudent, Semestre: "5", Promedio: 4.3, HorasDisp: 12},
	{Codigo: "USTUD-002", Correo: "maria@udem.edu.co", Nombre: "María González", Rol: constants.RoleStudent, Semestre: "3", Promedio: 4.0, HorasDisp: 10},
	{Codigo: "USTUD-003", Correo: "carlos@udem.edu.co", Nombre: "Carlos Rodríguez", Rol: constants.RoleStudent, Semestre: "7", Promedio: 4.6, HorasDisp: 6},
}

// SeedDefaultUsers carga las cuentas de arranque solo si la tabla está vacía.
func SeedDefaultUsers(db *gorm.DB) error {
	var existente userModel.UsuarioModel
	err := db.First(&existente).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	for _, s := range usuariosIniciales {
		u := userModel.UsuarioModel{
			UsuarioNombre: s.Nombre,
			UsuarioCorreo: s.Correo,
			UsuarioRol:    s.Rol,
		}
		codigo := s.Codigo
		u.UsuarioCodigo = &codigo
		if s.Semestre != "" {
			semestre := s.Semestre
			u.UsuarioSemestre = &semestre
		}
		if s.Promedio > 0 {
			promedio := s.Promedio
			u.UsuarioPromedio = &promedio
		}
		if s.HorasDisp > 0 {
			horas := s.HorasDisp
			u.UsuarioHorasDisp = &horas
		}
		if s.Horario != "" {
			horario := s.Horario
			u.UsuarioHorario = &horario
		}
		if err := u.SetPassword("123456"); err != nil {
			return err
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}
	log.Printf("[INFO] Usuarios de arranque creados: %d", len(usuariosIniciales))
	return nil
}
