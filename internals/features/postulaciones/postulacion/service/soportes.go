package service

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// Límite de tamaño del archivo decodificado (5 MiB, inclusive).
const MaxSoporteBytes = 5 << 20

var extensionesPermitidas = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ErrorSoporte: soporte adjunto que no pasó la validación.
type ErrorSoporte struct {
	Mensaje string
}

func (e *ErrorSoporte) Error() string { return e.Mensaje }

// ValidarSoportes valida y normaliza el adjunto de hoja de vida. Entrada
// esperada: {"cvNombre": "hv.pdf", "cvBase64": "..."}. Devuelve el mapa
// normalizado con cvSize (bytes decodificados) o nil si no se adjuntó nada.
func ValidarSoportes(soportes map[string]interface{}) (map[string]interface{}, error) {
	if len(soportes) == 0 {
		return nil, nil
	}

	nombre, _ := soportes["cvNombre"].(string)
	contenido, _ := soportes["cvBase64"].(string)
	nombre = strings.TrimSpace(nombre)
	contenido = strings.TrimSpace(contenido)
	if nombre == "" || contenido == "" {
		return nil, &ErrorSoporte{Mensaje: "El archivo adjunto es inválido"}
	}

	ext := strings.ToLower(filepath.Ext(nombre))
	if !extensionesPermitidas[ext] {
		return nil, &ErrorSoporte{Mensaje: "Solo se permiten archivos PDF o DOCX"}
	}

	decodificado, err := base64.StdEncoding.Strict().DecodeString(contenido)
	if err != nil {
		return nil, &ErrorSoporte{Mensaje: "El archivo adjunto no es válido"}
	}
	if len(decodificado) > MaxSoporteBytes {
		return nil, &ErrorSoporte{Mensaje: "El archivo supera el tamaño máximo permitido de 5 MB"}
	}

	return map[string]interface{}{
		"cvNombre": nombre,
		"cvBase64": contenido,
		"cvSize":   len(decodificado),
	}, nil
}
