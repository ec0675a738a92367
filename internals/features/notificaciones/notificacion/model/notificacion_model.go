package model

import (
	"time"

	"gorm.io/datatypes"

	userModel "monitorias_backend/internals/features/users/user/model"
)

const (
	TipoInfo    = "info"
	TipoSuccess = "success"
	TipoWarning = "warning"
	TipoError   = "error"
)

// TipoValido normaliza el tipo recibido; valores desconocidos caen a info.
func TipoValido(tipo string) string {
	switch tipo {
	case TipoInfo, TipoSuccess, TipoWarning, TipoError:
		return tipo
	default:
		return TipoInfo
	}
}

type NotificacionModel struct {
	NotificacionID uint `gorm:"column:notificacion_id;primaryKey;autoIncrement" json:"notificacion_id"`

	NotificacionUsuarioID uint                    `gorm:"column:notificacion_usuario_id;not null;index" json:"notificacion_usuario_id"`
	Usuario               *userModel.UsuarioModel `gorm:"foreignKey:NotificacionUsuarioID;references:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`

	NotificacionTitulo  string `gorm:"column:notificacion_titulo;type:varchar(200);not null" json:"notificacion_titulo"`
	NotificacionMensaje string `gorm:"column:notificacion_mensaje;type:text;not null" json:"notificacion_mensaje"`
	NotificacionTipo    string `gorm:"column:notificacion_tipo;type:varchar(20);not null;default:info" json:"notificacion_tipo"`

	NotificacionLeida   bool       `gorm:"column:notificacion_leida;not null;default:false" json:"notificacion_leida"`
	NotificacionLeidaAt *time.Time `gorm:"column:notificacion_leida_at" json:"notificacion_leida_at,omitempty"`

	NotificacionPayload datatypes.JSONMap `gorm:"column:notificacion_payload;type:jsonb" json:"notificacion_payload,omitempty"`

	NotificacionCreatedAt time.Time `gorm:"column:notificacion_created_at;autoCreateTime;index" json:"notificacion_created_at"`
}

func (NotificacionModel) TableName() string {
	return "notificaciones"
}

// MarcarLeida es idempotente: conserva la primera fecha de lectura.
func (m *NotificacionModel) MarcarLeida(now time.Time) {
	if m.NotificacionLeida {
		return
	}
	m.NotificacionLeida = true
	m.NotificacionLeidaAt = &now
}
