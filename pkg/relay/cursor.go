package relay

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const cursorPrefix = "cursor:"

// EncodeCursor genera el cursor opaco de una fila a partir de su ID.
func EncodeCursor(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.FormatInt(id, 10)))
}

// DecodeCursor devuelve el ID codificado en el cursor.
func DecodeCursor(cursor string) (int64, error) {
	decoded, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, ErrMalformedID
	}
	raw, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return 0, ErrMalformedID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, ErrMalformedID
	}
	return id, nil
}
