package service

import (
	"encoding/base64"
	"strings"
	"testing"
)

func soporteValido(nombre string, contenido []byte) map[string]interface{} {
	return map[string]interface{}{
		"cvNombre": nombre,
		"cvBase64": base64.StdEncoding.EncodeToString(contenido),
	}
}

func TestValidarSoportes(t *testing.T) {
	t.Run("pdf válido se normaliza con cvSize", func(t *testing.T) {
		contenido := []byte("hoja de vida en pdf")
		out, err := ValidarSoportes(soporteValido("hv.pdf", contenido))
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if out["cvNombre"] != "hv.pdf" {
			t.Errorf("cvNombre = %v", out["cvNombre"])
		}
		if out["cvSize"] != len(contenido) {
			t.Errorf("cvSize = %v, se esperaba %d", out["cvSize"], len(contenido))
		}
	})

	t.Run("sin adjunto devuelve nil sin error", func(t *testing.T) {
		out, err := ValidarSoportes(nil)
		if err != nil || out != nil {
			t.Fatalf("out = %v, err = %v", out, err)
		}
		out, err = ValidarSoportes(map[string]interface{}{})
		if err != nil || out != nil {
			t.Fatalf("mapa vacío: out = %v, err = %v", out, err)
		}
	})

	t.Run("extensión mayúscula se acepta", func(t *testing.T) {
		if _, err := ValidarSoportes(soporteValido("HV.DOCX", []byte("doc"))); err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
	})

	t.Run("extensión no permitida", func(t *testing.T) {
		_, err := ValidarSoportes(soporteValido("virus.exe", []byte("x")))
		if err == nil || !strings.Contains(err.Error(), "PDF o DOCX") {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("base64 corrupto", func(t *testing.T) {
		_, err := ValidarSoportes(map[string]interface{}{
			"cvNombre": "hv.pdf",
			"cvBase64": "esto no es base64!!!",
		})
		if err == nil || !strings.Contains(err.Error(), "no es válido") {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("faltan campos", func(t *testing.T) {
		_, err := ValidarSoportes(map[string]interface{}{"cvNombre": "hv.pdf"})
		if err == nil || !strings.Contains(err.Error(), "adjunto es inválido") {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("exactamente 5 MiB pasa", func(t *testing.T) {
		out, err := ValidarSoportes(soporteValido("hv.pdf", make([]byte, MaxSoporteBytes)))
		if err != nil {
			t.Fatalf("error inesperado: %v", err)
		}
		if out["cvSize"] != MaxSoporteBytes {
			t.Errorf("cvSize = %v", out["cvSize"])
		}
	})

	t.Run("un byte sobre el límite se rechaza", func(t *testing.T) {
		_, err := ValidarSoportes(soporteValido("hv.pdf", make([]byte, MaxSoporteBytes+1)))
		if err == nil || !strings.Contains(err.Error(), "tamaño máximo") {
			t.Fatalf("err = %v", err)
		}
	})
}
