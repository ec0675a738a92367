package service

import (
	"errors"

	"gorm.io/gorm"

	notifModel "monitorias_backend/internals/features/notificaciones/notificacion/model"
	"monitorias_backend/internals/helpers/timeutil"
)

// Nueva agrupa los datos de una notificación por crear.
type Nueva struct {
	UsuarioID uint
	Titulo    string
	Mensaje   string
	Tipo      string
	Payload   map[string]interface{}
}

// Crear persiste una notificación. Los callers la tratan como efecto
// secundario recuperable: un error aquí nunca debe tumbar la operación
// principal (se loguea y, si aplica, se alerta al actor).
func Crear(db *gorm.DB, n Nueva) (*notifModel.NotificacionModel, error) {
	payload := n.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	notif := notifModel.NotificacionModel{
		NotificacionUsuarioID: n.UsuarioID,
		NotificacionTitulo:    n.Titulo,
		NotificacionMensaje:   n.Mensaje,
		NotificacionTipo:      notifModel.TipoValido(n.Tipo),
		NotificacionPayload:   payload,
	}
	if err := db.Create(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

// Listar devuelve las notificaciones del usuario, más recientes primero.
func Listar(db *gorm.DB, usuarioID uint, soloNoLeidas bool, limite int) ([]notifModel.NotificacionModel, error) {
	q := db.Where("notificacion_usuario_id = ?", usuarioID)
	if soloNoLeidas {
		q = q.Where("notificacion_leida = ?", false)
	}
	q = q.Order("notificacion_created_at DESC")
	if limite > 0 {
		q = q.Limit(limite)
	}

	var notifs []notifModel.NotificacionModel
	if err := q.Find(&notifs).Error; err != nil {
		return nil, err
	}
	return notifs, nil
}

// MarcarLeidaPorID marca como leída una notificación del usuario.
// Devuelve nil sin error cuando no existe.
func MarcarLeidaPorID(db *gorm.DB, notificacionID, usuarioID uint) (*notifModel.NotificacionModel, error) {
	var notif notifModel.NotificacionModel
	err := db.
		Where("notificacion_id = ? AND notificacion_usuario_id = ?", notificacionID, usuarioID).
		First(&notif).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	notif.MarcarLeida(timeutil.NowUTC())
	if err := db.Save(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

// MarcarTodasLeidas devuelve cuántas notificaciones pasaron a leídas.
func MarcarTodasLeidas(db *gorm.DB, usuarioID uint) (int64, error) {
	now := timeutil.NowUTC()
	res := db.Model(&notifModel.NotificacionModel{}).
		Where("notificacion_usuario_id = ? AND notificacion_leida = ?", usuarioID, false).
		Updates(map[string]interface{}{
			"notificacion_leida":    true,
			"notificacion_leida_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
