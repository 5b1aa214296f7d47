// Package relay implementa los identificadores globales y cursores opacos
// que usa la API GraphQL (convención Relay: base64("Tipo:id")).
package relay

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedID el identificador no tiene el formato esperado.
var ErrMalformedID = errors.New("relay: identificador mal formado")

// ToGlobalID codifica base64("TypeName:id").
func ToGlobalID(typeName string, id int64) string {
	raw := typeName + ":" + strconv.FormatInt(id, 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// FromGlobalID decodifica un ID global y devuelve el tipo y el ID de base de datos.
func FromGlobalID(globalID string) (typeName string, id int64, err error) {
	decoded, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrMalformedID, err)
	}
	typeName, rawID, ok := strings.Cut(string(decoded), ":")
	if !ok || typeName == "" {
		return "", 0, ErrMalformedID
	}
	id, err = strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, ErrMalformedID
	}
	return typeName, id, nil
}

// ResolveID acepta un ID global del tipo indicado o un ID numérico crudo
// (compatibilidad con clientes que envían el ID de base de datos).
func ResolveID(typeName, input string) (int64, error) {
	input = strings.TrimSpace(input)
	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		if id <= 0 {
			return 0, ErrMalformedID
		}
		return id, nil
	}
	gotType, id, err := FromGlobalID(input)
	if err != nil {
		return 0, err
	}
	if gotType != typeName {
		return 0, fmt.Errorf("%w: se esperaba %s, se recibió %s", ErrMalformedID, typeName, gotType)
	}
	return id, nil
}
